// Package record implements the trace format's closed record catalog
// (spec.md §4.3): the enumeration of every event and definition kind,
// their on-wire framing discipline, and the superseded-by relationships
// used for automatic callback downgrade (spec.md §4.7).
package record

import "fmt"

// Kind identifies a record's position in the catalog. Kind 0 is reserved
// (never appears on the wire); chunk.EndOfChunk and chunk.EndOfFile are
// deliberately outside this range.
type Kind uint8

const (
	KindUnknown Kind = iota

	// KindAttributeList is the side-channel record that precedes and
	// attaches to the next event record (spec.md §4.2); it is handled
	// directly by the trace reader/writer rather than dispatched like
	// other kinds, but it occupies a catalog slot so its wire tag is
	// reserved.
	KindAttributeList

	// Definitions (global-definitions stream; spec.md §3).
	KindClockProperties
	KindString
	KindRegion
	KindGroup
	KindComm
	KindRmaWinDef
	KindMetricMember
	KindMetricClass
	KindLocation
	KindLocationGroup
	KindSystemTreeNode
	KindCallingContextDef
	KindInterruptGeneratorDef
	KindParameterDef
	KindCallpath
	KindAttributeDef

	// Per-location definition-like streams (spec.md §4.5).
	KindMappingTable
	KindClockOffset

	// Region / calling-context events.
	KindEnter
	KindLeave
	KindCallingContextEnter
	KindCallingContextLeave
	KindCallingContextSample
	KindMeasurementOnOff

	// Point-to-point messaging.
	KindSend
	KindRecv
	KindSendRequest
	KindSendComplete
	KindRecvRequest
	KindRecvComplete
	KindRequestTestFailed
	KindRequestCancelled

	// Collectives.
	KindCollectiveBegin
	KindCollectiveEnd

	// One-sided memory (RMA).
	KindRmaWinCreate
	KindRmaWinDestroy
	KindRmaCollectiveBegin
	KindRmaCollectiveEnd
	KindRmaGroupSync
	KindRmaRequestLock
	KindRmaAcquireLock
	KindRmaTryLock
	KindRmaReleaseLock
	KindRmaSync
	KindRmaPut
	KindRmaGet
	KindRmaAtomic
	KindRmaOpCompleteBlocking
	KindRmaOpCompleteRemote
	KindRmaOpTest

	// Threading: paradigm-tagged (current) events.
	KindThreadFork
	KindThreadJoin
	KindThreadTeamBegin
	KindThreadTeamEnd
	KindThreadAcquireLock
	KindThreadReleaseLock
	KindThreadTaskCreate
	KindThreadTaskSwitch
	KindThreadTaskComplete

	// Threading: OpenMP-specific events, superseded by the paradigm-
	// tagged Thread* events above.
	KindOmpFork
	KindOmpJoin
	KindOmpAcquireLock
	KindOmpReleaseLock
	KindOmpTaskCreate
	KindOmpTaskSwitch
	KindOmpTaskComplete

	// Explicit thread lifecycle, paired by sequence count.
	KindThreadCreate
	KindThreadBegin
	KindThreadWait
	KindThreadEnd

	// Metrics and parameters.
	KindMetric
	KindParameterString
	KindParameterInt
	KindParameterUnsignedInt

	// Lightweight tasking / data dependence.
	KindTaskCreate
	KindTaskDependence

	// Markers.
	KindMarkerDef
	KindMarkerEvent

	// Snapshots: a periodic full-state dump bracketed by SnapshotStart and
	// SnapshotEnd, used by tools that want to seek into the middle of a
	// trace without replaying everything before it (spec.md §4.4,
	// "local definitions and snapshots follow the same framing rules").
	KindSnapshotStart
	KindSnapshotEnd
	KindMeasurementOnOffSnapshot
	KindEnterSnapshot

	numKinds
)

// Framing names the two record-layout disciplines of spec.md §4.1.
type Framing uint8

const (
	// Singleton records carry no length prefix and at most one primitive
	// field (some carry none).
	Singleton Framing = iota
	// Prefixed records are preceded by a compressed record_data_length.
	Prefixed
)

// CatalogEntry is the per-kind metadata spec.md §4.3 calls for: framing
// discipline, the version this kind was introduced in, whether it belongs
// to a per-location event stream, and, for deprecated kinds, the kind
// that supersedes them.
type CatalogEntry struct {
	Kind         Kind
	Name         string
	Framing      Framing
	Since        string
	IsEvent      bool
	SupersededBy Kind // zero if this kind is not deprecated
}

// IsEvent reports whether a kind belongs to a per-location event stream
// (as opposed to a definition, mapping, or clock-offset record).
func (k Kind) IsEvent() bool {
	e, ok := Catalog[k]
	return ok && e.IsEvent
}

// String returns the catalog name for k, or "Kind(N)" for an
// unregistered value.
func (k Kind) String() string {
	if e, ok := Catalog[k]; ok {
		return e.Name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}
