package record

import (
	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

// Enter/Leave are the original region-entry events, superseded by
// CallingContextEnter/CallingContextLeave (record/catalog.go); still
// produced by a pre-calling-context-aware writer and still read directly
// when no calling-context callback is registered (spec.md §4.7, §8
// scenario 3's sibling case for region events).
type Enter struct {
	EventCommon
	Region idref.RegionRef
}

func (Enter) Kind() Kind { return KindEnter }

func (r *Enter) Translate(t Translator) error {
	v, err := translate(t, idref.Region, uint64(r.Region))
	if err != nil {
		return err
	}
	r.Region = idref.RegionRef(v)
	return nil
}

func (r Enter) Marshal(w *chunk.Writer) error { w.WriteU32(uint32(r.Region)); return nil }

func UnmarshalEnter(r *chunk.Reader) (*Enter, error) {
	reg, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &Enter{Region: idref.RegionRef(reg)}, nil
}

type Leave struct {
	EventCommon
	Region idref.RegionRef
}

func (Leave) Kind() Kind { return KindLeave }

func (r *Leave) Translate(t Translator) error {
	v, err := translate(t, idref.Region, uint64(r.Region))
	if err != nil {
		return err
	}
	r.Region = idref.RegionRef(v)
	return nil
}

func (r Leave) Marshal(w *chunk.Writer) error { w.WriteU32(uint32(r.Region)); return nil }

func UnmarshalLeave(r *chunk.Reader) (*Leave, error) {
	reg, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &Leave{Region: idref.RegionRef(reg)}, nil
}

// CallingContextEnter carries the resolved Region directly, rather than
// requiring a separate calling-context-tree lookup at dispatch time; the
// CallingContext id this event was recorded against is preserved in
// Context for callers that need the full call path.
type CallingContextEnter struct {
	EventCommon
	Context    idref.CallingContextRef
	Region     idref.RegionRef
	UnwindDistance uint32
}

func (CallingContextEnter) Kind() Kind { return KindCallingContextEnter }

func (r *CallingContextEnter) Translate(t Translator) error {
	v, err := translate(t, idref.CallingContext, uint64(r.Context))
	if err != nil {
		return err
	}
	r.Context = idref.CallingContextRef(v)
	return nil
}

func (r CallingContextEnter) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Context))
	w.WriteU32(r.UnwindDistance)
	return nil
}

func UnmarshalCallingContextEnter(r *chunk.Reader) (*CallingContextEnter, error) {
	ctx, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	dist, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &CallingContextEnter{Context: idref.CallingContextRef(ctx), UnwindDistance: dist}, nil
}

type CallingContextLeave struct {
	EventCommon
	Context idref.CallingContextRef
	Region  idref.RegionRef
}

func (CallingContextLeave) Kind() Kind { return KindCallingContextLeave }

func (r *CallingContextLeave) Translate(t Translator) error {
	v, err := translate(t, idref.CallingContext, uint64(r.Context))
	if err != nil {
		return err
	}
	r.Context = idref.CallingContextRef(v)
	return nil
}

func (r CallingContextLeave) Marshal(w *chunk.Writer) error { w.WriteU32(uint32(r.Context)); return nil }

func UnmarshalCallingContextLeave(r *chunk.Reader) (*CallingContextLeave, error) {
	ctx, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &CallingContextLeave{Context: idref.CallingContextRef(ctx)}, nil
}

// CallingContextSample is an asynchronous sample (e.g. from an
// InterruptGenerator) rather than a paired enter/leave.
type CallingContextSample struct {
	EventCommon
	Context        idref.CallingContextRef
	UnwindDistance uint32
	InterruptGenerator idref.InterruptGeneratorRef
}

func (CallingContextSample) Kind() Kind { return KindCallingContextSample }

func (r *CallingContextSample) Translate(t Translator) error {
	v, err := translate(t, idref.CallingContext, uint64(r.Context))
	if err != nil {
		return err
	}
	r.Context = idref.CallingContextRef(v)
	v2, err := translate(t, idref.InterruptGenerator, uint64(r.InterruptGenerator))
	if err != nil {
		return err
	}
	r.InterruptGenerator = idref.InterruptGeneratorRef(v2)
	return nil
}

func (r CallingContextSample) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Context))
	w.WriteU32(r.UnwindDistance)
	w.WriteU32(uint32(r.InterruptGenerator))
	return nil
}

func UnmarshalCallingContextSample(r *chunk.Reader) (*CallingContextSample, error) {
	ctx, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	dist, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	gen, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &CallingContextSample{Context: idref.CallingContextRef(ctx), UnwindDistance: dist, InterruptGenerator: idref.InterruptGeneratorRef(gen)}, nil
}

type MeasurementOnOff struct {
	EventCommon
	On bool
}

func (MeasurementOnOff) Kind() Kind { return KindMeasurementOnOff }

func (r MeasurementOnOff) Marshal(w *chunk.Writer) error {
	var b uint8
	if r.On {
		b = 1
	}
	w.WriteU8(b)
	return nil
}

func UnmarshalMeasurementOnOff(r *chunk.Reader) (*MeasurementOnOff, error) {
	b, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &MeasurementOnOff{On: b != 0}, nil
}

// Metric carries one or more samples reported under a MetricClass; the
// value slice's length and element types must align with that class's
// MetricMembers (spec.md §3: MetricValue "a three-way union ... paired
// with an external type tag supplied by the enclosing record").
type Metric struct {
	EventCommon
	MetricClass idref.MetricRef
	Values      []MetricValue
}

func (Metric) Kind() Kind { return KindMetric }

func (r *Metric) Translate(t Translator) error {
	v, err := translate(t, idref.Metric, uint64(r.MetricClass))
	if err != nil {
		return err
	}
	r.MetricClass = idref.MetricRef(v)
	return nil
}

func (r Metric) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.MetricClass))
	w.WriteU8(uint8(len(r.Values)))
	for _, v := range r.Values {
		w.WriteU8(uint8(v.Type))
		switch v.Type {
		case MetricValueInt64:
			w.WriteI64(v.I64)
		case MetricValueUint64:
			w.WriteU64(v.U64)
		case MetricValueFloat64:
			w.WriteF64(v.F64)
		}
	}
	return nil
}

func UnmarshalMetric(r *chunk.Reader) (*Metric, error) {
	class, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	values := make([]MetricValue, n)
	for i := range values {
		typ, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		values[i].Type = MetricValueType(typ)
		switch values[i].Type {
		case MetricValueInt64:
			if values[i].I64, err = r.ReadI64(); err != nil {
				return nil, err
			}
		case MetricValueUint64:
			if values[i].U64, err = r.ReadU64(); err != nil {
				return nil, err
			}
		case MetricValueFloat64:
			if values[i].F64, err = r.ReadF64(); err != nil {
				return nil, err
			}
		}
	}
	return &Metric{MetricClass: idref.MetricRef(class), Values: values}, nil
}

// ParameterString, ParameterInt, ParameterUnsignedInt record a single
// value against a pre-declared ParameterDef.
type ParameterString struct {
	EventCommon
	Parameter idref.ParameterRef
	Value     idref.StringRef
}

func (ParameterString) Kind() Kind { return KindParameterString }

func (r *ParameterString) Translate(t Translator) error {
	v, err := translate(t, idref.Parameter, uint64(r.Parameter))
	if err != nil {
		return err
	}
	r.Parameter = idref.ParameterRef(v)
	return nil
}

func (r ParameterString) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Parameter))
	w.WriteU32(uint32(r.Value))
	return nil
}

func UnmarshalParameterString(r *chunk.Reader) (*ParameterString, error) {
	param, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	val, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &ParameterString{Parameter: idref.ParameterRef(param), Value: idref.StringRef(val)}, nil
}

type ParameterInt struct {
	EventCommon
	Parameter idref.ParameterRef
	Value     int64
}

func (ParameterInt) Kind() Kind { return KindParameterInt }

func (r *ParameterInt) Translate(t Translator) error {
	v, err := translate(t, idref.Parameter, uint64(r.Parameter))
	if err != nil {
		return err
	}
	r.Parameter = idref.ParameterRef(v)
	return nil
}

func (r ParameterInt) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Parameter))
	w.WriteI64(r.Value)
	return nil
}

func UnmarshalParameterInt(r *chunk.Reader) (*ParameterInt, error) {
	param, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	val, err := r.ReadI64()
	if err != nil {
		return nil, err
	}
	return &ParameterInt{Parameter: idref.ParameterRef(param), Value: val}, nil
}

type ParameterUnsignedInt struct {
	EventCommon
	Parameter idref.ParameterRef
	Value     uint64
}

func (ParameterUnsignedInt) Kind() Kind { return KindParameterUnsignedInt }

func (r *ParameterUnsignedInt) Translate(t Translator) error {
	v, err := translate(t, idref.Parameter, uint64(r.Parameter))
	if err != nil {
		return err
	}
	r.Parameter = idref.ParameterRef(v)
	return nil
}

func (r ParameterUnsignedInt) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Parameter))
	w.WriteU64(r.Value)
	return nil
}

func UnmarshalParameterUnsignedInt(r *chunk.Reader) (*ParameterUnsignedInt, error) {
	param, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	val, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &ParameterUnsignedInt{Parameter: idref.ParameterRef(param), Value: val}, nil
}

// TaskCreate and TaskDependence implement the lightweight tasking model,
// distinct from the thread/OMP task events: tasks here are identified by
// an opaque uint64 rather than being tied to a threading paradigm.
type TaskCreate struct {
	EventCommon
	TaskID uint64
}

func (TaskCreate) Kind() Kind { return KindTaskCreate }

func (r TaskCreate) Marshal(w *chunk.Writer) error { w.WriteU64(r.TaskID); return nil }

func UnmarshalTaskCreate(r *chunk.Reader) (*TaskCreate, error) {
	id, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &TaskCreate{TaskID: id}, nil
}

type TaskDependence struct {
	EventCommon
	Predecessor uint64
	Successor   uint64
}

func (TaskDependence) Kind() Kind { return KindTaskDependence }

func (r TaskDependence) Marshal(w *chunk.Writer) error {
	w.WriteU64(r.Predecessor)
	w.WriteU64(r.Successor)
	return nil
}

func UnmarshalTaskDependence(r *chunk.Reader) (*TaskDependence, error) {
	pred, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	succ, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &TaskDependence{Predecessor: pred, Successor: succ}, nil
}

// MarkerEvent attaches a free-text annotation to a point in the stream.
type MarkerEvent struct {
	EventCommon
	Marker uint32
	Text   idref.StringRef
}

func (MarkerEvent) Kind() Kind { return KindMarkerEvent }

func (r MarkerEvent) Marshal(w *chunk.Writer) error {
	w.WriteU32(r.Marker)
	w.WriteU32(uint32(r.Text))
	return nil
}

func UnmarshalMarkerEvent(r *chunk.Reader) (*MarkerEvent, error) {
	marker, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	text, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &MarkerEvent{Marker: marker, Text: idref.StringRef(text)}, nil
}
