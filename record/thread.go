package record

import "github.com/tracefmt/otf2go/chunk"

// Paradigm identifies the threading model a paradigm-tagged thread event
// belongs to (spec.md §8 scenario 3: "Write a ThreadFork event tagged
// with paradigm OPENMP").
type Paradigm uint8

const (
	ParadigmUnknown Paradigm = iota
	ParadigmOpenMP
	ParadigmPthread
	ParadigmOpenACC
)

// ThreadFork marks the start of a parallel region, carrying the
// paradigm it was recorded under and the requested thread/worker count.
type ThreadFork struct {
	EventCommon
	Paradigm  Paradigm
	Requested uint32
}

func (ThreadFork) Kind() Kind { return KindThreadFork }

func (r ThreadFork) Marshal(w *chunk.Writer) error {
	w.WriteU8(uint8(r.Paradigm))
	w.WriteU32(r.Requested)
	return nil
}

func UnmarshalThreadFork(r *chunk.Reader) (*ThreadFork, error) {
	p, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &ThreadFork{Paradigm: Paradigm(p), Requested: n}, nil
}

type ThreadJoin struct {
	EventCommon
	Paradigm Paradigm
}

func (ThreadJoin) Kind() Kind { return KindThreadJoin }

func (r ThreadJoin) Marshal(w *chunk.Writer) error { w.WriteU8(uint8(r.Paradigm)); return nil }

func UnmarshalThreadJoin(r *chunk.Reader) (*ThreadJoin, error) {
	p, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &ThreadJoin{Paradigm: Paradigm(p)}, nil
}

type ThreadTeamBegin struct {
	EventCommon
	Paradigm Paradigm
}

func (ThreadTeamBegin) Kind() Kind { return KindThreadTeamBegin }

func (r ThreadTeamBegin) Marshal(w *chunk.Writer) error { w.WriteU8(uint8(r.Paradigm)); return nil }

func UnmarshalThreadTeamBegin(r *chunk.Reader) (*ThreadTeamBegin, error) {
	p, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &ThreadTeamBegin{Paradigm: Paradigm(p)}, nil
}

type ThreadTeamEnd struct {
	EventCommon
	Paradigm Paradigm
}

func (ThreadTeamEnd) Kind() Kind { return KindThreadTeamEnd }

func (r ThreadTeamEnd) Marshal(w *chunk.Writer) error { w.WriteU8(uint8(r.Paradigm)); return nil }

func UnmarshalThreadTeamEnd(r *chunk.Reader) (*ThreadTeamEnd, error) {
	p, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &ThreadTeamEnd{Paradigm: Paradigm(p)}, nil
}

type ThreadAcquireLock struct {
	EventCommon
	Paradigm    Paradigm
	LockID      uint32
	AcquisitionOrder uint32
}

func (ThreadAcquireLock) Kind() Kind { return KindThreadAcquireLock }

func (r ThreadAcquireLock) Marshal(w *chunk.Writer) error {
	w.WriteU8(uint8(r.Paradigm))
	w.WriteU32(r.LockID)
	w.WriteU32(r.AcquisitionOrder)
	return nil
}

func UnmarshalThreadAcquireLock(r *chunk.Reader) (*ThreadAcquireLock, error) {
	p, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	lock, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	order, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &ThreadAcquireLock{Paradigm: Paradigm(p), LockID: lock, AcquisitionOrder: order}, nil
}

type ThreadReleaseLock struct {
	EventCommon
	Paradigm         Paradigm
	LockID           uint32
	AcquisitionOrder uint32
}

func (ThreadReleaseLock) Kind() Kind { return KindThreadReleaseLock }

func (r ThreadReleaseLock) Marshal(w *chunk.Writer) error {
	w.WriteU8(uint8(r.Paradigm))
	w.WriteU32(r.LockID)
	w.WriteU32(r.AcquisitionOrder)
	return nil
}

func UnmarshalThreadReleaseLock(r *chunk.Reader) (*ThreadReleaseLock, error) {
	p, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	lock, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	order, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &ThreadReleaseLock{Paradigm: Paradigm(p), LockID: lock, AcquisitionOrder: order}, nil
}

type ThreadTaskCreate struct {
	EventCommon
	Paradigm  Paradigm
	TaskID    uint64
}

func (ThreadTaskCreate) Kind() Kind { return KindThreadTaskCreate }

func (r ThreadTaskCreate) Marshal(w *chunk.Writer) error {
	w.WriteU8(uint8(r.Paradigm))
	w.WriteU64(r.TaskID)
	return nil
}

func UnmarshalThreadTaskCreate(r *chunk.Reader) (*ThreadTaskCreate, error) {
	p, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	id, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &ThreadTaskCreate{Paradigm: Paradigm(p), TaskID: id}, nil
}

type ThreadTaskSwitch struct {
	EventCommon
	Paradigm Paradigm
	TaskID   uint64
}

func (ThreadTaskSwitch) Kind() Kind { return KindThreadTaskSwitch }

func (r ThreadTaskSwitch) Marshal(w *chunk.Writer) error {
	w.WriteU8(uint8(r.Paradigm))
	w.WriteU64(r.TaskID)
	return nil
}

func UnmarshalThreadTaskSwitch(r *chunk.Reader) (*ThreadTaskSwitch, error) {
	p, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	id, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &ThreadTaskSwitch{Paradigm: Paradigm(p), TaskID: id}, nil
}

type ThreadTaskComplete struct {
	EventCommon
	Paradigm Paradigm
	TaskID   uint64
}

func (ThreadTaskComplete) Kind() Kind { return KindThreadTaskComplete }

func (r ThreadTaskComplete) Marshal(w *chunk.Writer) error {
	w.WriteU8(uint8(r.Paradigm))
	w.WriteU64(r.TaskID)
	return nil
}

func UnmarshalThreadTaskComplete(r *chunk.Reader) (*ThreadTaskComplete, error) {
	p, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	id, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &ThreadTaskComplete{Paradigm: Paradigm(p), TaskID: id}, nil
}

// OpenMP-specific events, each superseded by its paradigm-tagged Thread*
// counterpart (record/catalog.go). Carried without a Paradigm field; the
// paradigm is implied by the kind itself.

type OmpFork struct {
	EventCommon
	Requested uint32
}

func (OmpFork) Kind() Kind                    { return KindOmpFork }
func (r OmpFork) Marshal(w *chunk.Writer) error { w.WriteU32(r.Requested); return nil }
func UnmarshalOmpFork(r *chunk.Reader) (*OmpFork, error) {
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &OmpFork{Requested: n}, nil
}

type OmpJoin struct{ EventCommon }

func (OmpJoin) Kind() Kind                    { return KindOmpJoin }
func (r OmpJoin) Marshal(w *chunk.Writer) error { return nil }
func UnmarshalOmpJoin(r *chunk.Reader) (*OmpJoin, error) { return &OmpJoin{}, nil }

type OmpAcquireLock struct {
	EventCommon
	LockID           uint32
	AcquisitionOrder uint32
}

func (OmpAcquireLock) Kind() Kind { return KindOmpAcquireLock }
func (r OmpAcquireLock) Marshal(w *chunk.Writer) error {
	w.WriteU32(r.LockID)
	w.WriteU32(r.AcquisitionOrder)
	return nil
}
func UnmarshalOmpAcquireLock(r *chunk.Reader) (*OmpAcquireLock, error) {
	lock, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	order, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &OmpAcquireLock{LockID: lock, AcquisitionOrder: order}, nil
}

type OmpReleaseLock struct {
	EventCommon
	LockID           uint32
	AcquisitionOrder uint32
}

func (OmpReleaseLock) Kind() Kind { return KindOmpReleaseLock }
func (r OmpReleaseLock) Marshal(w *chunk.Writer) error {
	w.WriteU32(r.LockID)
	w.WriteU32(r.AcquisitionOrder)
	return nil
}
func UnmarshalOmpReleaseLock(r *chunk.Reader) (*OmpReleaseLock, error) {
	lock, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	order, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &OmpReleaseLock{LockID: lock, AcquisitionOrder: order}, nil
}

type OmpTaskCreate struct {
	EventCommon
	TaskID uint64
}

func (OmpTaskCreate) Kind() Kind                    { return KindOmpTaskCreate }
func (r OmpTaskCreate) Marshal(w *chunk.Writer) error { w.WriteU64(r.TaskID); return nil }
func UnmarshalOmpTaskCreate(r *chunk.Reader) (*OmpTaskCreate, error) {
	id, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &OmpTaskCreate{TaskID: id}, nil
}

type OmpTaskSwitch struct {
	EventCommon
	TaskID uint64
}

func (OmpTaskSwitch) Kind() Kind                    { return KindOmpTaskSwitch }
func (r OmpTaskSwitch) Marshal(w *chunk.Writer) error { w.WriteU64(r.TaskID); return nil }
func UnmarshalOmpTaskSwitch(r *chunk.Reader) (*OmpTaskSwitch, error) {
	id, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &OmpTaskSwitch{TaskID: id}, nil
}

type OmpTaskComplete struct {
	EventCommon
	TaskID uint64
}

func (OmpTaskComplete) Kind() Kind                    { return KindOmpTaskComplete }
func (r OmpTaskComplete) Marshal(w *chunk.Writer) error { w.WriteU64(r.TaskID); return nil }
func UnmarshalOmpTaskComplete(r *chunk.Reader) (*OmpTaskComplete, error) {
	id, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &OmpTaskComplete{TaskID: id}, nil
}

// Explicit thread lifecycle events, paired by an ordinal sequence count
// rather than a request id (distinguishing them from the RMA/message
// request-id protocols).

type ThreadCreate struct {
	EventCommon
	ThreadContingent uint64
	SequenceCount    uint64
}

func (ThreadCreate) Kind() Kind { return KindThreadCreate }
func (r ThreadCreate) Marshal(w *chunk.Writer) error {
	w.WriteU64(r.ThreadContingent)
	w.WriteU64(r.SequenceCount)
	return nil
}
func UnmarshalThreadCreate(r *chunk.Reader) (*ThreadCreate, error) {
	contingent, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	seq, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &ThreadCreate{ThreadContingent: contingent, SequenceCount: seq}, nil
}

type ThreadBegin struct {
	EventCommon
	ThreadContingent uint64
	SequenceCount    uint64
}

func (ThreadBegin) Kind() Kind { return KindThreadBegin }
func (r ThreadBegin) Marshal(w *chunk.Writer) error {
	w.WriteU64(r.ThreadContingent)
	w.WriteU64(r.SequenceCount)
	return nil
}
func UnmarshalThreadBegin(r *chunk.Reader) (*ThreadBegin, error) {
	contingent, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	seq, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &ThreadBegin{ThreadContingent: contingent, SequenceCount: seq}, nil
}

type ThreadWait struct {
	EventCommon
	ThreadContingent uint64
	SequenceCount    uint64
}

func (ThreadWait) Kind() Kind { return KindThreadWait }
func (r ThreadWait) Marshal(w *chunk.Writer) error {
	w.WriteU64(r.ThreadContingent)
	w.WriteU64(r.SequenceCount)
	return nil
}
func UnmarshalThreadWait(r *chunk.Reader) (*ThreadWait, error) {
	contingent, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	seq, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &ThreadWait{ThreadContingent: contingent, SequenceCount: seq}, nil
}

type ThreadEnd struct {
	EventCommon
	ThreadContingent uint64
	SequenceCount    uint64
}

func (ThreadEnd) Kind() Kind { return KindThreadEnd }
func (r ThreadEnd) Marshal(w *chunk.Writer) error {
	w.WriteU64(r.ThreadContingent)
	w.WriteU64(r.SequenceCount)
	return nil
}
func UnmarshalThreadEnd(r *chunk.Reader) (*ThreadEnd, error) {
	contingent, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	seq, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &ThreadEnd{ThreadContingent: contingent, SequenceCount: seq}, nil
}
