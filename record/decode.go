package record

import "github.com/tracefmt/otf2go/chunk"

// Decoder reads one record body (everything after the kind tag and, for
// Prefixed framing, after the record_data_length the caller already
// consumed) and returns the decoded Record.
type Decoder func(r *chunk.Reader) (Record, error)

// Decoders maps every kind in Catalog except KindAttributeList (which the
// trace reader decodes itself) to its body decoder. The trace
// reader looks up the kind's catalog entry for framing discipline, then
// uses this table to decode the fields it understands (spec.md §4.4:
// "decode known fields, then unconditionally seek to the record's
// end-of-record position").
var Decoders = map[Kind]Decoder{
	KindClockProperties: func(r *chunk.Reader) (Record, error) { return UnmarshalClockProperties(r) },
	KindString:          func(r *chunk.Reader) (Record, error) { return UnmarshalString(r) },
	KindRegion:          func(r *chunk.Reader) (Record, error) { return UnmarshalRegion(r) },
	KindGroup:           func(r *chunk.Reader) (Record, error) { return UnmarshalGroup(r) },
	KindComm:            func(r *chunk.Reader) (Record, error) { return UnmarshalComm(r) },
	KindRmaWinDef:       func(r *chunk.Reader) (Record, error) { return UnmarshalRmaWinDef(r) },
	KindMetricMember:    func(r *chunk.Reader) (Record, error) { return UnmarshalMetricMember(r) },
	KindMetricClass:     func(r *chunk.Reader) (Record, error) { return UnmarshalMetricClass(r) },
	KindLocation:        func(r *chunk.Reader) (Record, error) { return UnmarshalLocation(r) },
	KindLocationGroup:   func(r *chunk.Reader) (Record, error) { return UnmarshalLocationGroup(r) },
	KindSystemTreeNode:  func(r *chunk.Reader) (Record, error) { return UnmarshalSystemTreeNode(r) },
	KindCallingContextDef: func(r *chunk.Reader) (Record, error) {
		return UnmarshalCallingContextDef(r)
	},
	KindInterruptGeneratorDef: func(r *chunk.Reader) (Record, error) {
		return UnmarshalInterruptGeneratorDef(r)
	},
	KindParameterDef: func(r *chunk.Reader) (Record, error) { return UnmarshalParameterDef(r) },
	KindCallpath:     func(r *chunk.Reader) (Record, error) { return UnmarshalCallpath(r) },
	KindAttributeDef: func(r *chunk.Reader) (Record, error) { return UnmarshalAttributeDef(r) },
	KindMarkerDef:    func(r *chunk.Reader) (Record, error) { return UnmarshalMarkerDef(r) },

	KindMappingTable: func(r *chunk.Reader) (Record, error) { return UnmarshalMappingTable(r) },
	KindClockOffset:  func(r *chunk.Reader) (Record, error) { return UnmarshalClockOffset(r) },

	KindEnter: func(r *chunk.Reader) (Record, error) { return UnmarshalEnter(r) },
	KindLeave: func(r *chunk.Reader) (Record, error) { return UnmarshalLeave(r) },
	KindCallingContextEnter: func(r *chunk.Reader) (Record, error) {
		return UnmarshalCallingContextEnter(r)
	},
	KindCallingContextLeave: func(r *chunk.Reader) (Record, error) {
		return UnmarshalCallingContextLeave(r)
	},
	KindCallingContextSample: func(r *chunk.Reader) (Record, error) {
		return UnmarshalCallingContextSample(r)
	},
	KindMeasurementOnOff: func(r *chunk.Reader) (Record, error) { return UnmarshalMeasurementOnOff(r) },

	KindSend:              func(r *chunk.Reader) (Record, error) { return UnmarshalSend(r) },
	KindRecv:              func(r *chunk.Reader) (Record, error) { return UnmarshalRecv(r) },
	KindSendRequest:       func(r *chunk.Reader) (Record, error) { return UnmarshalSendRequest(r) },
	KindSendComplete:      func(r *chunk.Reader) (Record, error) { return UnmarshalSendComplete(r) },
	KindRecvRequest:       func(r *chunk.Reader) (Record, error) { return UnmarshalRecvRequest(r) },
	KindRecvComplete:      func(r *chunk.Reader) (Record, error) { return UnmarshalRecvComplete(r) },
	KindRequestTestFailed: func(r *chunk.Reader) (Record, error) { return UnmarshalRequestTestFailed(r) },
	KindRequestCancelled:  func(r *chunk.Reader) (Record, error) { return UnmarshalRequestCancelled(r) },

	KindCollectiveBegin: func(r *chunk.Reader) (Record, error) { return UnmarshalCollectiveBegin(r) },
	KindCollectiveEnd:   func(r *chunk.Reader) (Record, error) { return UnmarshalCollectiveEnd(r) },

	KindRmaWinCreate:          func(r *chunk.Reader) (Record, error) { return UnmarshalRmaWinCreate(r) },
	KindRmaWinDestroy:         func(r *chunk.Reader) (Record, error) { return UnmarshalRmaWinDestroy(r) },
	KindRmaCollectiveBegin:    func(r *chunk.Reader) (Record, error) { return UnmarshalRmaCollectiveBegin(r) },
	KindRmaCollectiveEnd:      func(r *chunk.Reader) (Record, error) { return UnmarshalRmaCollectiveEnd(r) },
	KindRmaGroupSync:          func(r *chunk.Reader) (Record, error) { return UnmarshalRmaGroupSync(r) },
	KindRmaRequestLock:        func(r *chunk.Reader) (Record, error) { return UnmarshalRmaRequestLock(r) },
	KindRmaAcquireLock:        func(r *chunk.Reader) (Record, error) { return UnmarshalRmaAcquireLock(r) },
	KindRmaTryLock:            func(r *chunk.Reader) (Record, error) { return UnmarshalRmaTryLock(r) },
	KindRmaReleaseLock:        func(r *chunk.Reader) (Record, error) { return UnmarshalRmaReleaseLock(r) },
	KindRmaSync:               func(r *chunk.Reader) (Record, error) { return UnmarshalRmaSync(r) },
	KindRmaPut:                func(r *chunk.Reader) (Record, error) { return UnmarshalRmaPut(r) },
	KindRmaGet:                func(r *chunk.Reader) (Record, error) { return UnmarshalRmaGet(r) },
	KindRmaAtomic:             func(r *chunk.Reader) (Record, error) { return UnmarshalRmaAtomic(r) },
	KindRmaOpCompleteBlocking: func(r *chunk.Reader) (Record, error) { return UnmarshalRmaOpCompleteBlocking(r) },
	KindRmaOpCompleteRemote:   func(r *chunk.Reader) (Record, error) { return UnmarshalRmaOpCompleteRemote(r) },
	KindRmaOpTest:             func(r *chunk.Reader) (Record, error) { return UnmarshalRmaOpTest(r) },

	KindThreadFork:         func(r *chunk.Reader) (Record, error) { return UnmarshalThreadFork(r) },
	KindThreadJoin:         func(r *chunk.Reader) (Record, error) { return UnmarshalThreadJoin(r) },
	KindThreadTeamBegin:    func(r *chunk.Reader) (Record, error) { return UnmarshalThreadTeamBegin(r) },
	KindThreadTeamEnd:      func(r *chunk.Reader) (Record, error) { return UnmarshalThreadTeamEnd(r) },
	KindThreadAcquireLock:  func(r *chunk.Reader) (Record, error) { return UnmarshalThreadAcquireLock(r) },
	KindThreadReleaseLock:  func(r *chunk.Reader) (Record, error) { return UnmarshalThreadReleaseLock(r) },
	KindThreadTaskCreate:   func(r *chunk.Reader) (Record, error) { return UnmarshalThreadTaskCreate(r) },
	KindThreadTaskSwitch:   func(r *chunk.Reader) (Record, error) { return UnmarshalThreadTaskSwitch(r) },
	KindThreadTaskComplete: func(r *chunk.Reader) (Record, error) { return UnmarshalThreadTaskComplete(r) },

	KindOmpFork:         func(r *chunk.Reader) (Record, error) { return UnmarshalOmpFork(r) },
	KindOmpJoin:         func(r *chunk.Reader) (Record, error) { return UnmarshalOmpJoin(r) },
	KindOmpAcquireLock:  func(r *chunk.Reader) (Record, error) { return UnmarshalOmpAcquireLock(r) },
	KindOmpReleaseLock:  func(r *chunk.Reader) (Record, error) { return UnmarshalOmpReleaseLock(r) },
	KindOmpTaskCreate:   func(r *chunk.Reader) (Record, error) { return UnmarshalOmpTaskCreate(r) },
	KindOmpTaskSwitch:   func(r *chunk.Reader) (Record, error) { return UnmarshalOmpTaskSwitch(r) },
	KindOmpTaskComplete: func(r *chunk.Reader) (Record, error) { return UnmarshalOmpTaskComplete(r) },

	KindThreadCreate: func(r *chunk.Reader) (Record, error) { return UnmarshalThreadCreate(r) },
	KindThreadBegin:  func(r *chunk.Reader) (Record, error) { return UnmarshalThreadBegin(r) },
	KindThreadWait:   func(r *chunk.Reader) (Record, error) { return UnmarshalThreadWait(r) },
	KindThreadEnd:    func(r *chunk.Reader) (Record, error) { return UnmarshalThreadEnd(r) },

	KindMetric:               func(r *chunk.Reader) (Record, error) { return UnmarshalMetric(r) },
	KindParameterString:      func(r *chunk.Reader) (Record, error) { return UnmarshalParameterString(r) },
	KindParameterInt:         func(r *chunk.Reader) (Record, error) { return UnmarshalParameterInt(r) },
	KindParameterUnsignedInt: func(r *chunk.Reader) (Record, error) { return UnmarshalParameterUnsignedInt(r) },

	KindTaskCreate:     func(r *chunk.Reader) (Record, error) { return UnmarshalTaskCreate(r) },
	KindTaskDependence: func(r *chunk.Reader) (Record, error) { return UnmarshalTaskDependence(r) },

	KindMarkerEvent: func(r *chunk.Reader) (Record, error) { return UnmarshalMarkerEvent(r) },

	KindSnapshotStart:            func(r *chunk.Reader) (Record, error) { return UnmarshalSnapshotStart(r) },
	KindSnapshotEnd:              func(r *chunk.Reader) (Record, error) { return UnmarshalSnapshotEnd(r) },
	KindMeasurementOnOffSnapshot: func(r *chunk.Reader) (Record, error) { return UnmarshalMeasurementOnOffSnapshot(r) },
	KindEnterSnapshot:            func(r *chunk.Reader) (Record, error) { return UnmarshalEnterSnapshot(r) },
}
