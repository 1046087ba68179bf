package record

import (
	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

// ClockProperties carries the archive-wide timer resolution, global
// offset, and trace length (spec.md §4.8, consumed by the archive
// facade). It is itself a global-definitions record.
type ClockProperties struct {
	TimerResolution uint64
	GlobalOffset    uint64
	TraceLength     uint64
}

func (ClockProperties) Kind() Kind { return KindClockProperties }

func (r ClockProperties) Marshal(w *chunk.Writer) error {
	w.WriteU64(r.TimerResolution)
	w.WriteU64(r.GlobalOffset)
	w.WriteU64(r.TraceLength)
	return nil
}

func UnmarshalClockProperties(r *chunk.Reader) (*ClockProperties, error) {
	res, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	off, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	length, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &ClockProperties{TimerResolution: res, GlobalOffset: off, TraceLength: length}, nil
}

// String binds a String-domain id to its backing text.
type String struct {
	Self  idref.StringRef
	Value string
}

func (String) Kind() Kind { return KindString }

func (r String) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteString(r.Value)
	return nil
}

func UnmarshalString(r *chunk.Reader) (*String, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	val, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &String{Self: idref.StringRef(self), Value: val}, nil
}

// Region describes a code entity (function, loop, phase, ...).
type Region struct {
	Self        idref.RegionRef
	Name        idref.StringRef
	Description idref.StringRef
	SourceFile  idref.StringRef
	BeginLine   uint32
	EndLine     uint32
}

func (Region) Kind() Kind { return KindRegion }

func (r Region) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU32(uint32(r.Name))
	w.WriteU32(uint32(r.Description))
	w.WriteU32(uint32(r.SourceFile))
	w.WriteU32(r.BeginLine)
	w.WriteU32(r.EndLine)
	return nil
}

func UnmarshalRegion(r *chunk.Reader) (*Region, error) {
	var out Region
	var err error
	var self, name, desc, file uint32
	if self, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if name, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if desc, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if file, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if out.BeginLine, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if out.EndLine, err = r.ReadU32(); err != nil {
		return nil, err
	}
	out.Self, out.Name, out.Description, out.SourceFile = idref.RegionRef(self), idref.StringRef(name), idref.StringRef(desc), idref.StringRef(file)
	return &out, nil
}

// Group is a named, ordered set of global identifiers (ranks, locations, ...).
type Group struct {
	Self    idref.GroupRef
	Name    idref.StringRef
	Members []uint64
}

func (Group) Kind() Kind { return KindGroup }

func (r Group) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU32(uint32(r.Name))
	w.WriteU32(uint32(len(r.Members)))
	for _, m := range r.Members {
		w.WriteU64(m)
	}
	return nil
}

func UnmarshalGroup(r *chunk.Reader) (*Group, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	name, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	members := make([]uint64, n)
	for i := range members {
		if members[i], err = r.ReadU64(); err != nil {
			return nil, err
		}
	}
	return &Group{Self: idref.GroupRef(self), Name: idref.StringRef(name), Members: members}, nil
}

// Comm describes a communicator over a Group, with an optional parent.
type Comm struct {
	Self   idref.CommRef
	Name   idref.StringRef
	Group  idref.GroupRef
	Parent idref.CommRef
}

func (Comm) Kind() Kind { return KindComm }

func (r Comm) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU32(uint32(r.Name))
	w.WriteU32(uint32(r.Group))
	w.WriteU32(uint32(r.Parent))
	return nil
}

func UnmarshalComm(r *chunk.Reader) (*Comm, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	name, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	group, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	parent, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &Comm{Self: idref.CommRef(self), Name: idref.StringRef(name), Group: idref.GroupRef(group), Parent: idref.CommRef(parent)}, nil
}

// RmaWinDef describes a one-sided-memory window over a Comm.
type RmaWinDef struct {
	Self idref.RmaWinRef
	Name idref.StringRef
	Comm idref.CommRef
}

func (RmaWinDef) Kind() Kind { return KindRmaWinDef }

func (r RmaWinDef) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU32(uint32(r.Name))
	w.WriteU32(uint32(r.Comm))
	return nil
}

func UnmarshalRmaWinDef(r *chunk.Reader) (*RmaWinDef, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	name, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	comm, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &RmaWinDef{Self: idref.RmaWinRef(self), Name: idref.StringRef(name), Comm: idref.CommRef(comm)}, nil
}

// MetricMember describes one measured quantity within a MetricClass.
type MetricMember struct {
	Self idref.MetricMemberRef
	Name idref.StringRef
	Unit idref.StringRef
	Type MetricValueType
}

func (MetricMember) Kind() Kind { return KindMetricMember }

func (r MetricMember) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU32(uint32(r.Name))
	w.WriteU32(uint32(r.Unit))
	w.WriteU8(uint8(r.Type))
	return nil
}

func UnmarshalMetricMember(r *chunk.Reader) (*MetricMember, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	name, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	unit, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	typ, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &MetricMember{Self: idref.MetricMemberRef(self), Name: idref.StringRef(name), Unit: idref.StringRef(unit), Type: MetricValueType(typ)}, nil
}

// MetricClass groups one or more MetricMembers reported together by a
// single Metric event.
type MetricClass struct {
	Self    idref.MetricRef
	Members []idref.MetricMemberRef
}

func (MetricClass) Kind() Kind { return KindMetricClass }

func (r MetricClass) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU8(uint8(len(r.Members)))
	for _, m := range r.Members {
		w.WriteU32(uint32(m))
	}
	return nil
}

func UnmarshalMetricClass(r *chunk.Reader) (*MetricClass, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	members := make([]idref.MetricMemberRef, n)
	for i := range members {
		m, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		members[i] = idref.MetricMemberRef(m)
	}
	return &MetricClass{Self: idref.MetricRef(self), Members: members}, nil
}

// Location is one event-producing stream (spec.md GLOSSARY).
type Location struct {
	Self           idref.LocationRef
	Name           idref.StringRef
	Type           uint8
	NumberOfEvents uint64
	LocationGroup  idref.LocationGroupRef
}

func (Location) Kind() Kind { return KindLocation }

func (r Location) Marshal(w *chunk.Writer) error {
	w.WriteU64(uint64(r.Self))
	w.WriteU32(uint32(r.Name))
	w.WriteU8(r.Type)
	w.WriteU64(r.NumberOfEvents)
	w.WriteU32(uint32(r.LocationGroup))
	return nil
}

func UnmarshalLocation(r *chunk.Reader) (*Location, error) {
	self, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	name, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	typ, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	group, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &Location{Self: idref.LocationRef(self), Name: idref.StringRef(name), Type: typ, NumberOfEvents: n, LocationGroup: idref.LocationGroupRef(group)}, nil
}

// LocationGroup is a collection of locations with a shared system-tree parent.
type LocationGroup struct {
	Self             idref.LocationGroupRef
	Name             idref.StringRef
	Type             uint8
	SystemTreeParent idref.SystemTreeNodeRef
}

func (LocationGroup) Kind() Kind { return KindLocationGroup }

func (r LocationGroup) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU32(uint32(r.Name))
	w.WriteU8(r.Type)
	w.WriteU32(uint32(r.SystemTreeParent))
	return nil
}

func UnmarshalLocationGroup(r *chunk.Reader) (*LocationGroup, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	name, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	typ, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	parent, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &LocationGroup{Self: idref.LocationGroupRef(self), Name: idref.StringRef(name), Type: typ, SystemTreeParent: idref.SystemTreeNodeRef(parent)}, nil
}

// SystemTreeNode is a node in the machine/process topology tree
// (spec.md §3 invariant 3: acyclic parent chain).
type SystemTreeNode struct {
	Self      idref.SystemTreeNodeRef
	Name      idref.StringRef
	ClassName idref.StringRef
	Parent    idref.SystemTreeNodeRef
}

func (SystemTreeNode) Kind() Kind { return KindSystemTreeNode }

func (r SystemTreeNode) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU32(uint32(r.Name))
	w.WriteU32(uint32(r.ClassName))
	w.WriteU32(uint32(r.Parent))
	return nil
}

func UnmarshalSystemTreeNode(r *chunk.Reader) (*SystemTreeNode, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	name, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	class, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	parent, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &SystemTreeNode{Self: idref.SystemTreeNodeRef(self), Name: idref.StringRef(name), ClassName: idref.StringRef(class), Parent: idref.SystemTreeNodeRef(parent)}, nil
}

// CallingContextDef is a node in the stacked call-site tree
// (spec.md §3 invariant 3: acyclic parent chain; GLOSSARY).
type CallingContextDef struct {
	Self               idref.CallingContextRef
	Region             idref.RegionRef
	SourceCodeLocation idref.SourceCodeLocationRef
	Parent             idref.CallingContextRef
}

func (CallingContextDef) Kind() Kind { return KindCallingContextDef }

func (r CallingContextDef) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU32(uint32(r.Region))
	w.WriteU32(uint32(r.SourceCodeLocation))
	w.WriteU32(uint32(r.Parent))
	return nil
}

func UnmarshalCallingContextDef(r *chunk.Reader) (*CallingContextDef, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	region, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	scl, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	parent, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &CallingContextDef{Self: idref.CallingContextRef(self), Region: idref.RegionRef(region), SourceCodeLocation: idref.SourceCodeLocationRef(scl), Parent: idref.CallingContextRef(parent)}, nil
}

// InterruptGeneratorDef describes a periodic or event-driven sampling source.
type InterruptGeneratorDef struct {
	Self   idref.InterruptGeneratorRef
	Name   idref.StringRef
	Mode   uint8
	Period uint64
}

func (InterruptGeneratorDef) Kind() Kind { return KindInterruptGeneratorDef }

func (r InterruptGeneratorDef) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU32(uint32(r.Name))
	w.WriteU8(r.Mode)
	w.WriteU64(r.Period)
	return nil
}

func UnmarshalInterruptGeneratorDef(r *chunk.Reader) (*InterruptGeneratorDef, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	name, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	mode, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	period, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	return &InterruptGeneratorDef{Self: idref.InterruptGeneratorRef(self), Name: idref.StringRef(name), Mode: mode, Period: period}, nil
}

// ParameterDef names a user-recorded parameter slot.
type ParameterDef struct {
	Self idref.ParameterRef
	Name idref.StringRef
	Type uint8
}

func (ParameterDef) Kind() Kind { return KindParameterDef }

func (r ParameterDef) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU32(uint32(r.Name))
	w.WriteU8(r.Type)
	return nil
}

func UnmarshalParameterDef(r *chunk.Reader) (*ParameterDef, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	name, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	typ, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &ParameterDef{Self: idref.ParameterRef(self), Name: idref.StringRef(name), Type: typ}, nil
}

// Callpath is a node in the (deprecated-in-favor-of-calling-context, but
// still carried) static call path tree (spec.md §3 invariant 3).
type Callpath struct {
	Self   idref.CallpathRef
	Parent idref.CallpathRef
	Region idref.RegionRef
}

func (Callpath) Kind() Kind { return KindCallpath }

func (r Callpath) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU32(uint32(r.Parent))
	w.WriteU32(uint32(r.Region))
	return nil
}

func UnmarshalCallpath(r *chunk.Reader) (*Callpath, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	parent, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	region, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &Callpath{Self: idref.CallpathRef(self), Parent: idref.CallpathRef(parent), Region: idref.RegionRef(region)}, nil
}

// AttributeDef names an Attribute-domain id used as an AttributeList key.
type AttributeDef struct {
	Self        idref.AttributeRef
	Name        idref.StringRef
	Description idref.StringRef
	Type        uint8
}

func (AttributeDef) Kind() Kind { return KindAttributeDef }

func (r AttributeDef) Marshal(w *chunk.Writer) error {
	w.WriteU32(uint32(r.Self))
	w.WriteU32(uint32(r.Name))
	w.WriteU32(uint32(r.Description))
	w.WriteU8(r.Type)
	return nil
}

func UnmarshalAttributeDef(r *chunk.Reader) (*AttributeDef, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	name, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	desc, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	typ, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &AttributeDef{Self: idref.AttributeRef(self), Name: idref.StringRef(name), Description: idref.StringRef(desc), Type: typ}, nil
}

// MarkerDef describes a user-annotated marker category.
type MarkerDef struct {
	Self     uint32
	Category idref.StringRef
	Name     idref.StringRef
	Severity uint8
}

func (MarkerDef) Kind() Kind { return KindMarkerDef }

func (r MarkerDef) Marshal(w *chunk.Writer) error {
	w.WriteU32(r.Self)
	w.WriteU32(uint32(r.Category))
	w.WriteU32(uint32(r.Name))
	w.WriteU8(r.Severity)
	return nil
}

func UnmarshalMarkerDef(r *chunk.Reader) (*MarkerDef, error) {
	self, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	cat, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	name, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	sev, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &MarkerDef{Self: self, Category: idref.StringRef(cat), Name: idref.StringRef(name), Severity: sev}, nil
}
