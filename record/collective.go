package record

import (
	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

// CollectiveBegin marks entry into a collective operation; CollectiveEnd,
// grouped with it here for locality, marks its completion.
type CollectiveBegin struct {
	EventCommon
}

func (CollectiveBegin) Kind() Kind { return KindCollectiveBegin }

func (r CollectiveBegin) Marshal(w *chunk.Writer) error { return nil }

func UnmarshalCollectiveBegin(r *chunk.Reader) (*CollectiveBegin, error) {
	return &CollectiveBegin{}, nil
}

// CollectiveEnd's Type field names the collective operation kind
// (barrier, broadcast, reduce, ...); an open set, so left as a raw code
// rather than a closed Go enum.
type CollectiveEnd struct {
	EventCommon
	Type       uint8
	Comm       idref.CommRef
	Root       uint64
	SizeSent   uint64
	SizeRecv   uint64
}

func (CollectiveEnd) Kind() Kind { return KindCollectiveEnd }

func (r *CollectiveEnd) Translate(t Translator) error {
	v, err := translate(t, idref.Comm, uint64(r.Comm))
	if err != nil {
		return err
	}
	r.Comm = idref.CommRef(v)
	return nil
}

func (r CollectiveEnd) Marshal(w *chunk.Writer) error {
	w.WriteU8(r.Type)
	w.WriteU32(uint32(r.Comm))
	w.WriteU64(r.Root)
	w.WriteU64(r.SizeSent)
	w.WriteU64(r.SizeRecv)
	return nil
}

func UnmarshalCollectiveEnd(r *chunk.Reader) (*CollectiveEnd, error) {
	typ, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	comm, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	root, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	sent, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	recv, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &CollectiveEnd{Type: typ, Comm: idref.CommRef(comm), Root: root, SizeSent: sent, SizeRecv: recv}, nil
}
