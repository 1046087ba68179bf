package record

import (
	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

// rmaWinField is the common leading field of every RMA event: the window
// the operation targets.
type rmaWinField struct {
	Win idref.RmaWinRef
}

func (r *rmaWinField) translate(t Translator) error {
	v, err := translate(t, idref.RmaWin, uint64(r.Win))
	if err != nil {
		return err
	}
	r.Win = idref.RmaWinRef(v)
	return nil
}

type RmaWinCreate struct {
	EventCommon
	rmaWinField
}

func (RmaWinCreate) Kind() Kind                  { return KindRmaWinCreate }
func (r *RmaWinCreate) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaWinCreate) Marshal(w *chunk.Writer) error { w.WriteU32(uint32(r.Win)); return nil }
func UnmarshalRmaWinCreate(r *chunk.Reader) (*RmaWinCreate, error) {
	win, err := readRmaWin(r)
	if err != nil {
		return nil, err
	}
	return &RmaWinCreate{rmaWinField: rmaWinField{Win: win}}, nil
}

type RmaWinDestroy struct {
	EventCommon
	rmaWinField
}

func (RmaWinDestroy) Kind() Kind                  { return KindRmaWinDestroy }
func (r *RmaWinDestroy) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaWinDestroy) Marshal(w *chunk.Writer) error { w.WriteU32(uint32(r.Win)); return nil }
func UnmarshalRmaWinDestroy(r *chunk.Reader) (*RmaWinDestroy, error) {
	win, err := readRmaWin(r)
	if err != nil {
		return nil, err
	}
	return &RmaWinDestroy{rmaWinField: rmaWinField{Win: win}}, nil
}

type RmaCollectiveBegin struct{ EventCommon }

func (RmaCollectiveBegin) Kind() Kind                  { return KindRmaCollectiveBegin }
func (r RmaCollectiveBegin) Marshal(w *chunk.Writer) error { return nil }
func UnmarshalRmaCollectiveBegin(r *chunk.Reader) (*RmaCollectiveBegin, error) {
	return &RmaCollectiveBegin{}, nil
}

type RmaCollectiveEnd struct {
	EventCommon
	rmaWinField
	Type     uint8
	Root     uint64
	SizeSent uint64
	SizeRecv uint64
}

func (RmaCollectiveEnd) Kind() Kind { return KindRmaCollectiveEnd }
func (r *RmaCollectiveEnd) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaCollectiveEnd) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Win))
	w.WriteU8(r.Type)
	w.WriteU64(r.Root)
	w.WriteU64(r.SizeSent)
	w.WriteU64(r.SizeRecv)
	return nil
}
func UnmarshalRmaCollectiveEnd(r *chunk.Reader) (*RmaCollectiveEnd, error) {
	win, err := readRmaWin(r)
	if err != nil {
		return nil, err
	}
	typ, err := r.ReadU8()
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
	return &RmaCollectiveEnd{rmaWinField: rmaWinField{Win: win}, Type: typ, Root: root, SizeSent: sent, SizeRecv: recv}, nil
}

type RmaGroupSync struct {
	EventCommon
	rmaWinField
	Group idref.GroupRef
}

func (RmaGroupSync) Kind() Kind { return KindRmaGroupSync }
func (r *RmaGroupSync) Translate(t Translator) error {
	if err := r.rmaWinField.translate(t); err != nil {
		return err
	}
	v, err := translate(t, idref.Group, uint64(r.Group))
	if err != nil {
		return err
	}
	r.Group = idref.GroupRef(v)
	return nil
}
func (r RmaGroupSync) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Win))
	w.WriteU32(uint32(r.Group))
	return nil
}
func UnmarshalRmaGroupSync(r *chunk.Reader) (*RmaGroupSync, error) {
	win, err := readRmaWin(r)
	if err != nil {
		return nil, err
	}
	group, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &RmaGroupSync{rmaWinField: rmaWinField{Win: win}, Group: idref.GroupRef(group)}, nil
}

// rmaRemoteField is shared by the lock-protocol events, each of which
// names a remote peer within the window.
type rmaRemoteField struct {
	rmaWinField
	Remote uint32
	Lock   uint32
}

func (r *rmaRemoteField) marshal(w *chunk.Writer) {
	w.WriteU32(uint32(r.Win))
	w.WriteU32(r.Remote)
	w.WriteU32(r.Lock)
}

func unmarshalRmaRemote(r *chunk.Reader) (rmaRemoteField, error) {
	win, err := readRmaWin(r)
	if err != nil {
		return rmaRemoteField{}, err
	}
	remote, err := r.ReadU32()
	if err != nil {
		return rmaRemoteField{}, err
	}
	lock, err := r.ReadU32()
	if err != nil {
		return rmaRemoteField{}, err
	}
	return rmaRemoteField{rmaWinField: rmaWinField{Win: win}, Remote: remote, Lock: lock}, nil
}

type RmaRequestLock struct {
	EventCommon
	rmaRemoteField
}

func (RmaRequestLock) Kind() Kind                    { return KindRmaRequestLock }
func (r *RmaRequestLock) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaRequestLock) Marshal(w *chunk.Writer) error { r.rmaRemoteField.marshal(w); return nil }
func UnmarshalRmaRequestLock(r *chunk.Reader) (*RmaRequestLock, error) {
	f, err := unmarshalRmaRemote(r)
	if err != nil {
		return nil, err
	}
	return &RmaRequestLock{rmaRemoteField: f}, nil
}

type RmaAcquireLock struct {
	EventCommon
	rmaRemoteField
}

func (RmaAcquireLock) Kind() Kind                    { return KindRmaAcquireLock }
func (r *RmaAcquireLock) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaAcquireLock) Marshal(w *chunk.Writer) error { r.rmaRemoteField.marshal(w); return nil }
func UnmarshalRmaAcquireLock(r *chunk.Reader) (*RmaAcquireLock, error) {
	f, err := unmarshalRmaRemote(r)
	if err != nil {
		return nil, err
	}
	return &RmaAcquireLock{rmaRemoteField: f}, nil
}

type RmaTryLock struct {
	EventCommon
	rmaRemoteField
}

func (RmaTryLock) Kind() Kind                    { return KindRmaTryLock }
func (r *RmaTryLock) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaTryLock) Marshal(w *chunk.Writer) error { r.rmaRemoteField.marshal(w); return nil }
func UnmarshalRmaTryLock(r *chunk.Reader) (*RmaTryLock, error) {
	f, err := unmarshalRmaRemote(r)
	if err != nil {
		return nil, err
	}
	return &RmaTryLock{rmaRemoteField: f}, nil
}

type RmaReleaseLock struct {
	EventCommon
	rmaRemoteField
}

func (RmaReleaseLock) Kind() Kind                    { return KindRmaReleaseLock }
func (r *RmaReleaseLock) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaReleaseLock) Marshal(w *chunk.Writer) error { r.rmaRemoteField.marshal(w); return nil }
func UnmarshalRmaReleaseLock(r *chunk.Reader) (*RmaReleaseLock, error) {
	f, err := unmarshalRmaRemote(r)
	if err != nil {
		return nil, err
	}
	return &RmaReleaseLock{rmaRemoteField: f}, nil
}

type RmaSync struct {
	EventCommon
	rmaWinField
	Remote uint32
	Type   uint8
}

func (RmaSync) Kind() Kind { return KindRmaSync }
func (r *RmaSync) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaSync) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Win))
	w.WriteU32(r.Remote)
	w.WriteU8(r.Type)
	return nil
}
func UnmarshalRmaSync(r *chunk.Reader) (*RmaSync, error) {
	win, err := readRmaWin(r)
	if err != nil {
		return nil, err
	}
	remote, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	typ, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &RmaSync{rmaWinField: rmaWinField{Win: win}, Remote: remote, Type: typ}, nil
}

// rmaTransferField is shared by Put/Get: a remote peer and a byte count.
type rmaTransferField struct {
	rmaWinField
	Remote uint32
	Bytes  uint64
}

func (r *rmaTransferField) marshal(w *chunk.Writer) {
	w.WriteU32(uint32(r.Win))
	w.WriteU32(r.Remote)
	w.WriteU64(r.Bytes)
}

func unmarshalRmaTransfer(r *chunk.Reader) (rmaTransferField, error) {
	win, err := readRmaWin(r)
	if err != nil {
		return rmaTransferField{}, err
	}
	remote, err := r.ReadU32()
	if err != nil {
		return rmaTransferField{}, err
	}
	nbytes, err := r.ReadU64()
	if err != nil {
		return rmaTransferField{}, err
	}
	return rmaTransferField{rmaWinField: rmaWinField{Win: win}, Remote: remote, Bytes: nbytes}, nil
}

type RmaPut struct {
	EventCommon
	rmaTransferField
}

func (RmaPut) Kind() Kind                    { return KindRmaPut }
func (r *RmaPut) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaPut) Marshal(w *chunk.Writer) error { r.rmaTransferField.marshal(w); return nil }
func UnmarshalRmaPut(r *chunk.Reader) (*RmaPut, error) {
	f, err := unmarshalRmaTransfer(r)
	if err != nil {
		return nil, err
	}
	return &RmaPut{rmaTransferField: f}, nil
}

type RmaGet struct {
	EventCommon
	rmaTransferField
}

func (RmaGet) Kind() Kind                    { return KindRmaGet }
func (r *RmaGet) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaGet) Marshal(w *chunk.Writer) error { r.rmaTransferField.marshal(w); return nil }
func UnmarshalRmaGet(r *chunk.Reader) (*RmaGet, error) {
	f, err := unmarshalRmaTransfer(r)
	if err != nil {
		return nil, err
	}
	return &RmaGet{rmaTransferField: f}, nil
}

type RmaAtomic struct {
	EventCommon
	rmaWinField
	Remote   uint32
	Type     uint8
	BytesIn  uint64
	BytesOut uint64
}

func (RmaAtomic) Kind() Kind { return KindRmaAtomic }
func (r *RmaAtomic) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaAtomic) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Win))
	w.WriteU32(r.Remote)
	w.WriteU8(r.Type)
	w.WriteU64(r.BytesIn)
	w.WriteU64(r.BytesOut)
	return nil
}
func UnmarshalRmaAtomic(r *chunk.Reader) (*RmaAtomic, error) {
	win, err := readRmaWin(r)
	if err != nil {
		return nil, err
	}
	remote, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	typ, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	bin, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	bout, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &RmaAtomic{rmaWinField: rmaWinField{Win: win}, Remote: remote, Type: typ, BytesIn: bin, BytesOut: bout}, nil
}

// rmaOpField is shared by the three op-completion variants: blocking,
// remote-notified, and test-only.
type rmaOpField struct {
	rmaWinField
	MatchingID uint64
}

func (r *rmaOpField) marshal(w *chunk.Writer) {
	w.WriteU32(uint32(r.Win))
	w.WriteU64(r.MatchingID)
}

func unmarshalRmaOp(r *chunk.Reader) (rmaOpField, error) {
	win, err := readRmaWin(r)
	if err != nil {
		return rmaOpField{}, err
	}
	id, err := r.ReadU64()
	if err != nil {
		return rmaOpField{}, err
	}
	return rmaOpField{rmaWinField: rmaWinField{Win: win}, MatchingID: id}, nil
}

type RmaOpCompleteBlocking struct {
	EventCommon
	rmaOpField
}

func (RmaOpCompleteBlocking) Kind() Kind                    { return KindRmaOpCompleteBlocking }
func (r *RmaOpCompleteBlocking) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaOpCompleteBlocking) Marshal(w *chunk.Writer) error { r.rmaOpField.marshal(w); return nil }
func UnmarshalRmaOpCompleteBlocking(r *chunk.Reader) (*RmaOpCompleteBlocking, error) {
	f, err := unmarshalRmaOp(r)
	if err != nil {
		return nil, err
	}
	return &RmaOpCompleteBlocking{rmaOpField: f}, nil
}

type RmaOpCompleteRemote struct {
	EventCommon
	rmaOpField
}

func (RmaOpCompleteRemote) Kind() Kind                    { return KindRmaOpCompleteRemote }
func (r *RmaOpCompleteRemote) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaOpCompleteRemote) Marshal(w *chunk.Writer) error { r.rmaOpField.marshal(w); return nil }
func UnmarshalRmaOpCompleteRemote(r *chunk.Reader) (*RmaOpCompleteRemote, error) {
	f, err := unmarshalRmaOp(r)
	if err != nil {
		return nil, err
	}
	return &RmaOpCompleteRemote{rmaOpField: f}, nil
}

type RmaOpTest struct {
	EventCommon
	rmaOpField
}

func (RmaOpTest) Kind() Kind                    { return KindRmaOpTest }
func (r *RmaOpTest) Translate(t Translator) error { return r.rmaWinField.translate(t) }
func (r RmaOpTest) Marshal(w *chunk.Writer) error { r.rmaOpField.marshal(w); return nil }
func UnmarshalRmaOpTest(r *chunk.Reader) (*RmaOpTest, error) {
	f, err := unmarshalRmaOp(r)
	if err != nil {
		return nil, err
	}
	return &RmaOpTest{rmaOpField: f}, nil
}

func readRmaWin(r *chunk.Reader) (idref.RmaWinRef, error) {
	w, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return idref.RmaWinRef(w), nil
}
