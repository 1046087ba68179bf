package record

import (
	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

// SnapshotStart opens a periodic full-state dump: NumberOfRecords counts
// the synthetic records that follow before the matching SnapshotEnd,
// letting a reader that only wants to seek into the middle of a trace
// skip straight to a snapshot instead of replaying everything before it.
type SnapshotStart struct {
	EventCommon
	NumberOfRecords uint64
}

func (SnapshotStart) Kind() Kind { return KindSnapshotStart }

func (r SnapshotStart) Marshal(w *chunk.Writer) error {
	w.WriteU64(r.NumberOfRecords)
	return nil
}

func UnmarshalSnapshotStart(r *chunk.Reader) (*SnapshotStart, error) {
	n, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &SnapshotStart{NumberOfRecords: n}, nil
}

// SnapshotEnd closes the dump opened by the preceding SnapshotStart.
type SnapshotEnd struct {
	EventCommon
}

func (SnapshotEnd) Kind() Kind { return KindSnapshotEnd }

func (r SnapshotEnd) Marshal(w *chunk.Writer) error { return nil }

func UnmarshalSnapshotEnd(r *chunk.Reader) (*SnapshotEnd, error) {
	return &SnapshotEnd{}, nil
}

// MeasurementOnOffSnapshot restates the most recent MeasurementOnOff
// state as of the snapshot's own timestamp, so a reader that starts from
// a snapshot knows whether measurement was active without scanning back.
type MeasurementOnOffSnapshot struct {
	EventCommon
	On bool
}

func (MeasurementOnOffSnapshot) Kind() Kind { return KindMeasurementOnOffSnapshot }

func (r MeasurementOnOffSnapshot) Marshal(w *chunk.Writer) error {
	var b uint8
	if r.On {
		b = 1
	}
	w.WriteU8(b)
	return nil
}

func UnmarshalMeasurementOnOffSnapshot(r *chunk.Reader) (*MeasurementOnOffSnapshot, error) {
	b, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &MeasurementOnOffSnapshot{On: b != 0}, nil
}

// EnterSnapshot reconstructs one frame of a location's call stack as it
// stood when the snapshot was taken: one EnterSnapshot is emitted per
// frame, innermost last, each carrying the timestamp of the original
// Enter that pushed it so a reader can recover when the frame actually
// started rather than when the snapshot observed it.
type EnterSnapshot struct {
	EventCommon
	Region          idref.RegionRef
	OriginTimestamp uint64
}

func (EnterSnapshot) Kind() Kind { return KindEnterSnapshot }

func (r *EnterSnapshot) Translate(t Translator) error {
	v, err := translate(t, idref.Region, uint64(r.Region))
	if err != nil {
		return err
	}
	r.Region = idref.RegionRef(v)
	return nil
}

func (r EnterSnapshot) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Region))
	w.WriteU64(r.OriginTimestamp)
	return nil
}

func UnmarshalEnterSnapshot(r *chunk.Reader) (*EnterSnapshot, error) {
	reg, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	origin, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &EnterSnapshot{Region: idref.RegionRef(reg), OriginTimestamp: origin}, nil
}
