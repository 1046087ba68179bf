package attribute

import (
	"fmt"
	"math"

	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

// Marshal writes the value's type tag followed by its payload.
func (v Value) Marshal(w *chunk.Writer) error {
	w.WriteU8(uint8(v.tag))
	switch v.tag {
	case TypeInt8:
		w.WriteU8(uint8(int8(v.i)))
	case TypeInt16:
		w.WriteI64(v.i)
	case TypeInt32:
		w.WriteI64(v.i)
	case TypeInt64:
		w.WriteI64(v.i)
	case TypeUint8:
		w.WriteU8(uint8(v.i))
	case TypeUint16:
		w.WriteU16(uint16(v.i))
	case TypeUint32:
		w.WriteU32(uint32(v.i))
	case TypeUint64:
		w.WriteU64(uint64(v.i))
	case TypeFloat:
		w.WriteF32(math.Float32frombits(uint32(v.f)))
	case TypeDouble:
		w.WriteF64(math.Float64frombits(v.f))
	case TypeStringRef:
		w.WriteU32(uint32(v.s))
	case TypeRegionRef:
		w.WriteU8(uint8(v.dom))
		w.WriteU64(uint64(v.i))
	case TypeSourceCodeLocation:
		w.WriteU32(uint32(v.scl.File))
		w.WriteU32(v.scl.Line)
	default:
		return fmt.Errorf("attribute: marshal: unknown tag %d", v.tag)
	}
	return nil
}

// UnmarshalValue reads a tag byte followed by its payload.
func UnmarshalValue(r *chunk.Reader) (Value, error) {
	tagByte, err := r.ReadU8()
	if err != nil {
		return Value{}, err
	}
	tag := Type(tagByte)
	switch tag {
	case TypeInt8:
		b, err := r.ReadU8()
		return NewInt8(int8(b)), err
	case TypeInt16:
		x, err := r.ReadI64()
		return NewInt16(int16(x)), err
	case TypeInt32:
		x, err := r.ReadI64()
		return NewInt32(int32(x)), err
	case TypeInt64:
		x, err := r.ReadI64()
		return NewInt64(x), err
	case TypeUint8:
		b, err := r.ReadU8()
		return NewUint8(b), err
	case TypeUint16:
		x, err := r.ReadU16()
		return NewUint16(x), err
	case TypeUint32:
		x, err := r.ReadU32()
		return NewUint32(x), err
	case TypeUint64:
		x, err := r.ReadU64()
		return NewUint64(x), err
	case TypeFloat:
		f, err := r.ReadF32()
		return NewFloat(f), err
	case TypeDouble:
		f, err := r.ReadF64()
		return NewDouble(f), err
	case TypeStringRef:
		x, err := r.ReadU32()
		return NewStringRef(idref.StringRef(x)), err
	case TypeRegionRef:
		domByte, err := r.ReadU8()
		if err != nil {
			return Value{}, err
		}
		x, err := r.ReadU64()
		return NewIDRef(idref.Domain(domByte), x), err
	case TypeSourceCodeLocation:
		file, err := r.ReadU32()
		if err != nil {
			return Value{}, err
		}
		line, err := r.ReadU32()
		return NewSourceCodeLocation(SourceCodeLocation{File: idref.StringRef(file), Line: line}), err
	default:
		return Value{}, fmt.Errorf("attribute: unmarshal: unknown tag %d", tag)
	}
}

// Marshal writes count-prefixed (attribute id, tagged value) pairs in
// insertion order.
func (l *List) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(len(l.entries)))
	for _, e := range l.entries {
		w.WriteU32(uint32(e.id))
		if err := e.val.Marshal(w); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalInto decodes count-prefixed pairs into dst, which is Reset
// first. Duplicate ids within the wire data are rejected.
func UnmarshalInto(r *chunk.Reader, dst *List) error {
	dst.Reset()
	n, err := r.ReadU32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		idRaw, err := r.ReadU32()
		if err != nil {
			return err
		}
		v, err := UnmarshalValue(r)
		if err != nil {
			return err
		}
		if err := dst.Add(idref.AttributeRef(idRaw), v); err != nil {
			return err
		}
	}
	return nil
}
