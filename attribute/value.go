// Package attribute implements the trace format's tagged value union
// (AttributeValue) and the ordered per-record attribute sidecar
// (AttributeList) described in spec.md §3 and §4.2.
package attribute

import (
	"fmt"
	"math"

	"github.com/tracefmt/otf2go/idref"
)

// Type tags the variant held by a Value. The tag governs both the Go
// value stored and the wire encoding used by Marshal/Unmarshal.
type Type uint8

const (
	TypeInt8 Type = iota + 1
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFloat
	TypeDouble
	TypeStringRef  // idref.String
	TypeRegionRef  // idref.Region, etc. -- any identifier domain
	TypeSourceCodeLocation
)

func (t Type) String() string {
	switch t {
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeUint64:
		return "uint64"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeStringRef:
		return "stringRef"
	case TypeRegionRef:
		return "idRef"
	case TypeSourceCodeLocation:
		return "sourceCodeLocation"
	default:
		return "unknown"
	}
}

// SourceCodeLocation is the two-field variant holding a String reference
// and a line number.
type SourceCodeLocation struct {
	File idref.StringRef
	Line uint32
}

// Value is a tagged union over every AttributeValue variant named in
// spec.md §3. The zero Value is not meaningful; always construct one of
// the New* helpers.
//
// Extraction with a tag mismatch fails at the extraction site (AsInt64,
// AsUint64, ...), never at insertion: insertion always succeeds for any
// New* constructor.
type Value struct {
	tag Type
	i   int64  // Int8..Int64, Uint8..Uint64 (reinterpreted), RegionRef-style ids
	f   uint64 // Float (lower 32 bits) / Double, bit-pattern
	s   idref.StringRef
	scl SourceCodeLocation
	dom idref.Domain // identifier domain for TypeRegionRef
}

func NewInt64(v int64) Value    { return Value{tag: TypeInt64, i: v} }
func NewInt32(v int32) Value    { return Value{tag: TypeInt32, i: int64(v)} }
func NewInt16(v int16) Value    { return Value{tag: TypeInt16, i: int64(v)} }
func NewInt8(v int8) Value      { return Value{tag: TypeInt8, i: int64(v)} }
func NewUint64(v uint64) Value  { return Value{tag: TypeUint64, i: int64(v)} }
func NewUint32(v uint32) Value  { return Value{tag: TypeUint32, i: int64(v)} }
func NewUint16(v uint16) Value  { return Value{tag: TypeUint16, i: int64(v)} }
func NewUint8(v uint8) Value    { return Value{tag: TypeUint8, i: int64(v)} }
func NewFloat(v float32) Value  { return Value{tag: TypeFloat, f: uint64(math.Float32bits(v))} }
func NewDouble(v float64) Value { return Value{tag: TypeDouble, f: math.Float64bits(v)} }
func NewStringRef(v idref.StringRef) Value {
	return Value{tag: TypeStringRef, s: v}
}
func NewIDRef(dom idref.Domain, v uint64) Value {
	return Value{tag: TypeRegionRef, i: int64(v), dom: dom}
}
func NewSourceCodeLocation(v SourceCodeLocation) Value {
	return Value{tag: TypeSourceCodeLocation, scl: v}
}

// Tag reports the variant held by this value.
func (v Value) Tag() Type { return v.tag }

// ErrTagMismatch is returned by As* accessors when the stored variant
// does not match the requested type.
type ErrTagMismatch struct {
	Want, Have Type
}

func (e *ErrTagMismatch) Error() string {
	return fmt.Sprintf("attribute: requested %s but value holds %s", e.Want, e.Have)
}

func (v Value) AsInt64() (int64, error) {
	switch v.tag {
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		return v.i, nil
	}
	return 0, &ErrTagMismatch{Want: TypeInt64, Have: v.tag}
}

func (v Value) AsUint64() (uint64, error) {
	switch v.tag {
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		return uint64(v.i), nil
	}
	return 0, &ErrTagMismatch{Want: TypeUint64, Have: v.tag}
}

func (v Value) AsFloat() (float32, error) {
	if v.tag != TypeFloat {
		return 0, &ErrTagMismatch{Want: TypeFloat, Have: v.tag}
	}
	return math.Float32frombits(uint32(v.f)), nil
}

func (v Value) AsDouble() (float64, error) {
	if v.tag != TypeDouble {
		return 0, &ErrTagMismatch{Want: TypeDouble, Have: v.tag}
	}
	return math.Float64frombits(v.f), nil
}

func (v Value) AsStringRef() (idref.StringRef, error) {
	if v.tag != TypeStringRef {
		return 0, &ErrTagMismatch{Want: TypeStringRef, Have: v.tag}
	}
	return v.s, nil
}

func (v Value) AsIDRef() (idref.Domain, uint64, error) {
	if v.tag != TypeRegionRef {
		return 0, 0, &ErrTagMismatch{Want: TypeRegionRef, Have: v.tag}
	}
	return v.dom, uint64(v.i), nil
}

func (v Value) AsSourceCodeLocation() (SourceCodeLocation, error) {
	if v.tag != TypeSourceCodeLocation {
		return SourceCodeLocation{}, &ErrTagMismatch{Want: TypeSourceCodeLocation, Have: v.tag}
	}
	return v.scl, nil
}
