package record

import (
	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

// Send records a completed point-to-point send (spec.md §3).
type Send struct {
	EventCommon
	Receiver        uint64
	Comm            idref.CommRef
	Tag             uint32
	MessageLength   uint64
}

func (Send) Kind() Kind { return KindSend }

func (r *Send) Translate(t Translator) error {
	v, err := translate(t, idref.Comm, uint64(r.Comm))
	if err != nil {
		return err
	}
	r.Comm = idref.CommRef(v)
	return nil
}

func (r Send) marshalBody(w *chunk.Writer) {
	w.WriteU64(r.Receiver)
	w.WriteU32(uint32(r.Comm))
	w.WriteU32(r.Tag)
	w.WriteU64(r.MessageLength)
}

func unmarshalSendBody(r *chunk.Reader) (receiver uint64, comm idref.CommRef, tag uint32, length uint64, err error) {
	if receiver, err = r.ReadU64(); err != nil {
		return
	}
	var c uint32
	if c, err = r.ReadU32(); err != nil {
		return
	}
	comm = idref.CommRef(c)
	if tag, err = r.ReadU32(); err != nil {
		return
	}
	length, err = r.ReadU64()
	return
}

func (r Send) Marshal(w *chunk.Writer) error { r.marshalBody(w); return nil }

func UnmarshalSend(r *chunk.Reader) (*Send, error) {
	receiver, comm, tag, length, err := unmarshalSendBody(r)
	if err != nil {
		return nil, err
	}
	return &Send{Receiver: receiver, Comm: comm, Tag: tag, MessageLength: length}, nil
}

// Recv records a completed point-to-point receive.
type Recv struct {
	EventCommon
	Sender        uint64
	Comm          idref.CommRef
	Tag           uint32
	MessageLength uint64
}

func (Recv) Kind() Kind { return KindRecv }

func (r *Recv) Translate(t Translator) error {
	v, err := translate(t, idref.Comm, uint64(r.Comm))
	if err != nil {
		return err
	}
	r.Comm = idref.CommRef(v)
	return nil
}

func (r Recv) Marshal(w *chunk.Writer) error {
	w.WriteU64(r.Sender)
	w.WriteU32(uint32(r.Comm))
	w.WriteU32(r.Tag)
	w.WriteU64(r.MessageLength)
	return nil
}

func UnmarshalRecv(r *chunk.Reader) (*Recv, error) {
	sender, comm, tag, length, err := unmarshalSendBody(r)
	if err != nil {
		return nil, err
	}
	return &Recv{Sender: sender, Comm: comm, Tag: tag, MessageLength: length}, nil
}

// requestID-keyed non-blocking lifecycle events; a SendRequest/RecvRequest
// names a future completion by an opaque request id, later resolved by a
// matching SendComplete/RecvComplete, RequestTestFailed, or
// RequestCancelled (spec.md §3: "full non-blocking send/recv lifecycle").

type SendRequest struct {
	EventCommon
	Receiver      uint64
	Comm          idref.CommRef
	Tag           uint32
	MessageLength uint64
	RequestID     uint64
}

func (SendRequest) Kind() Kind { return KindSendRequest }

func (r *SendRequest) Translate(t Translator) error {
	v, err := translate(t, idref.Comm, uint64(r.Comm))
	if err != nil {
		return err
	}
	r.Comm = idref.CommRef(v)
	return nil
}

func (r SendRequest) Marshal(w *chunk.Writer) error {
	w.WriteU64(r.Receiver)
	w.WriteU32(uint32(r.Comm))
	w.WriteU32(r.Tag)
	w.WriteU64(r.MessageLength)
	w.WriteU64(r.RequestID)
	return nil
}

func UnmarshalSendRequest(r *chunk.Reader) (*SendRequest, error) {
	receiver, comm, tag, length, err := unmarshalSendBody(r)
	if err != nil {
		return nil, err
	}
	reqID, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &SendRequest{Receiver: receiver, Comm: comm, Tag: tag, MessageLength: length, RequestID: reqID}, nil
}

type RecvRequest struct {
	EventCommon
	RequestID uint64
}

func (RecvRequest) Kind() Kind { return KindRecvRequest }

func (r RecvRequest) Marshal(w *chunk.Writer) error { w.WriteU64(r.RequestID); return nil }

func UnmarshalRecvRequest(r *chunk.Reader) (*RecvRequest, error) {
	id, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &RecvRequest{RequestID: id}, nil
}

type SendComplete struct {
	EventCommon
	RequestID uint64
}

func (SendComplete) Kind() Kind { return KindSendComplete }

func (r SendComplete) Marshal(w *chunk.Writer) error { w.WriteU64(r.RequestID); return nil }

func UnmarshalSendComplete(r *chunk.Reader) (*SendComplete, error) {
	id, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &SendComplete{RequestID: id}, nil
}

type RecvComplete struct {
	EventCommon
	Sender        uint64
	Comm          idref.CommRef
	Tag           uint32
	MessageLength uint64
	RequestID     uint64
}

func (RecvComplete) Kind() Kind { return KindRecvComplete }

func (r *RecvComplete) Translate(t Translator) error {
	v, err := translate(t, idref.Comm, uint64(r.Comm))
	if err != nil {
		return err
	}
	r.Comm = idref.CommRef(v)
	return nil
}

func (r RecvComplete) Marshal(w *chunk.Writer) error {
	w.WriteU64(r.Sender)
	w.WriteU32(uint32(r.Comm))
	w.WriteU32(r.Tag)
	w.WriteU64(r.MessageLength)
	w.WriteU64(r.RequestID)
	return nil
}

func UnmarshalRecvComplete(r *chunk.Reader) (*RecvComplete, error) {
	sender, comm, tag, length, err := unmarshalSendBody(r)
	if err != nil {
		return nil, err
	}
	reqID, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &RecvComplete{Sender: sender, Comm: comm, Tag: tag, MessageLength: length, RequestID: reqID}, nil
}

type RequestTestFailed struct {
	EventCommon
	RequestID uint64
}

func (RequestTestFailed) Kind() Kind { return KindRequestTestFailed }

func (r RequestTestFailed) Marshal(w *chunk.Writer) error { w.WriteU64(r.RequestID); return nil }

func UnmarshalRequestTestFailed(r *chunk.Reader) (*RequestTestFailed, error) {
	id, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &RequestTestFailed{RequestID: id}, nil
}

type RequestCancelled struct {
	EventCommon
	RequestID uint64
}

func (RequestCancelled) Kind() Kind { return KindRequestCancelled }

func (r RequestCancelled) Marshal(w *chunk.Writer) error { w.WriteU64(r.RequestID); return nil }

func UnmarshalRequestCancelled(r *chunk.Reader) (*RequestCancelled, error) {
	id, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &RequestCancelled{RequestID: id}, nil
}
