package record

// Catalog is the closed table of every record kind this library
// understands, indexed by wire tag. A tag not present here is an
// unknown-record (spec.md §7); the dispatcher routes it to the
// user-installable unknown callback.
var Catalog = map[Kind]CatalogEntry{
	KindAttributeList: {Kind: KindAttributeList, Name: "AttributeList", Framing: Prefixed, Since: "1.0"},

	KindClockProperties:       {Kind: KindClockProperties, Name: "ClockProperties", Framing: Prefixed, Since: "1.0"},
	KindString:                {Kind: KindString, Name: "String", Framing: Prefixed, Since: "1.0"},
	KindRegion:                {Kind: KindRegion, Name: "Region", Framing: Prefixed, Since: "1.0"},
	KindGroup:                 {Kind: KindGroup, Name: "Group", Framing: Prefixed, Since: "1.0"},
	KindComm:                  {Kind: KindComm, Name: "Comm", Framing: Prefixed, Since: "1.0"},
	KindRmaWinDef:             {Kind: KindRmaWinDef, Name: "RmaWin", Framing: Prefixed, Since: "1.0"},
	KindMetricMember:          {Kind: KindMetricMember, Name: "MetricMember", Framing: Prefixed, Since: "1.0"},
	KindMetricClass:           {Kind: KindMetricClass, Name: "MetricClass", Framing: Prefixed, Since: "1.0"},
	KindLocation:              {Kind: KindLocation, Name: "Location", Framing: Prefixed, Since: "1.0"},
	KindLocationGroup:         {Kind: KindLocationGroup, Name: "LocationGroup", Framing: Prefixed, Since: "1.0"},
	KindSystemTreeNode:        {Kind: KindSystemTreeNode, Name: "SystemTreeNode", Framing: Prefixed, Since: "1.0"},
	KindCallingContextDef:     {Kind: KindCallingContextDef, Name: "CallingContext", Framing: Prefixed, Since: "2.0"},
	KindInterruptGeneratorDef: {Kind: KindInterruptGeneratorDef, Name: "InterruptGenerator", Framing: Prefixed, Since: "2.0"},
	KindParameterDef:          {Kind: KindParameterDef, Name: "Parameter", Framing: Prefixed, Since: "1.0"},
	KindCallpath:              {Kind: KindCallpath, Name: "Callpath", Framing: Prefixed, Since: "1.0"},
	KindAttributeDef:          {Kind: KindAttributeDef, Name: "Attribute", Framing: Prefixed, Since: "1.0"},

	KindMappingTable: {Kind: KindMappingTable, Name: "MappingTable", Framing: Prefixed, Since: "1.0"},
	KindClockOffset:  {Kind: KindClockOffset, Name: "ClockOffset", Framing: Prefixed, Since: "1.0"},

	KindEnter:                {Kind: KindEnter, Name: "Enter", Framing: Singleton, Since: "1.0", IsEvent: true, SupersededBy: KindCallingContextEnter},
	KindLeave:                {Kind: KindLeave, Name: "Leave", Framing: Singleton, Since: "1.0", IsEvent: true, SupersededBy: KindCallingContextLeave},
	KindCallingContextEnter:  {Kind: KindCallingContextEnter, Name: "CallingContextEnter", Framing: Prefixed, Since: "2.0", IsEvent: true},
	KindCallingContextLeave:  {Kind: KindCallingContextLeave, Name: "CallingContextLeave", Framing: Singleton, Since: "2.0", IsEvent: true},
	KindCallingContextSample: {Kind: KindCallingContextSample, Name: "CallingContextSample", Framing: Prefixed, Since: "2.0", IsEvent: true},
	KindMeasurementOnOff:     {Kind: KindMeasurementOnOff, Name: "MeasurementOnOff", Framing: Singleton, Since: "1.0", IsEvent: true},

	KindSend:              {Kind: KindSend, Name: "Send", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRecv:              {Kind: KindRecv, Name: "Recv", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindSendRequest:       {Kind: KindSendRequest, Name: "SendRequest", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindSendComplete:      {Kind: KindSendComplete, Name: "SendComplete", Framing: Singleton, Since: "1.0", IsEvent: true},
	KindRecvRequest:       {Kind: KindRecvRequest, Name: "RecvRequest", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRecvComplete:      {Kind: KindRecvComplete, Name: "RecvComplete", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRequestTestFailed: {Kind: KindRequestTestFailed, Name: "RequestTestFailed", Framing: Singleton, Since: "1.0", IsEvent: true},
	KindRequestCancelled:  {Kind: KindRequestCancelled, Name: "RequestCancelled", Framing: Singleton, Since: "1.0", IsEvent: true},

	KindCollectiveBegin: {Kind: KindCollectiveBegin, Name: "CollectiveBegin", Framing: Singleton, Since: "1.0", IsEvent: true},
	KindCollectiveEnd:   {Kind: KindCollectiveEnd, Name: "CollectiveEnd", Framing: Prefixed, Since: "1.0", IsEvent: true},

	KindRmaWinCreate:          {Kind: KindRmaWinCreate, Name: "RmaWinCreate", Framing: Singleton, Since: "1.0", IsEvent: true},
	KindRmaWinDestroy:         {Kind: KindRmaWinDestroy, Name: "RmaWinDestroy", Framing: Singleton, Since: "1.0", IsEvent: true},
	KindRmaCollectiveBegin:    {Kind: KindRmaCollectiveBegin, Name: "RmaCollectiveBegin", Framing: Singleton, Since: "1.0", IsEvent: true},
	KindRmaCollectiveEnd:      {Kind: KindRmaCollectiveEnd, Name: "RmaCollectiveEnd", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRmaGroupSync:          {Kind: KindRmaGroupSync, Name: "RmaGroupSync", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRmaRequestLock:        {Kind: KindRmaRequestLock, Name: "RmaRequestLock", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRmaAcquireLock:        {Kind: KindRmaAcquireLock, Name: "RmaAcquireLock", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRmaTryLock:            {Kind: KindRmaTryLock, Name: "RmaTryLock", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRmaReleaseLock:        {Kind: KindRmaReleaseLock, Name: "RmaReleaseLock", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRmaSync:               {Kind: KindRmaSync, Name: "RmaSync", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRmaPut:                {Kind: KindRmaPut, Name: "RmaPut", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRmaGet:                {Kind: KindRmaGet, Name: "RmaGet", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRmaAtomic:             {Kind: KindRmaAtomic, Name: "RmaAtomic", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRmaOpCompleteBlocking: {Kind: KindRmaOpCompleteBlocking, Name: "RmaOpCompleteBlocking", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRmaOpCompleteRemote:   {Kind: KindRmaOpCompleteRemote, Name: "RmaOpCompleteRemote", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindRmaOpTest:             {Kind: KindRmaOpTest, Name: "RmaOpTest", Framing: Prefixed, Since: "1.0", IsEvent: true},

	KindThreadFork:        {Kind: KindThreadFork, Name: "ThreadFork", Framing: Prefixed, Since: "2.0", IsEvent: true},
	KindThreadJoin:        {Kind: KindThreadJoin, Name: "ThreadJoin", Framing: Singleton, Since: "2.0", IsEvent: true},
	KindThreadTeamBegin:   {Kind: KindThreadTeamBegin, Name: "ThreadTeamBegin", Framing: Singleton, Since: "2.0", IsEvent: true},
	KindThreadTeamEnd:     {Kind: KindThreadTeamEnd, Name: "ThreadTeamEnd", Framing: Singleton, Since: "2.0", IsEvent: true},
	KindThreadAcquireLock: {Kind: KindThreadAcquireLock, Name: "ThreadAcquireLock", Framing: Prefixed, Since: "2.0", IsEvent: true},
	KindThreadReleaseLock: {Kind: KindThreadReleaseLock, Name: "ThreadReleaseLock", Framing: Prefixed, Since: "2.0", IsEvent: true},
	KindThreadTaskCreate:  {Kind: KindThreadTaskCreate, Name: "ThreadTaskCreate", Framing: Prefixed, Since: "2.0", IsEvent: true},
	KindThreadTaskSwitch:  {Kind: KindThreadTaskSwitch, Name: "ThreadTaskSwitch", Framing: Prefixed, Since: "2.0", IsEvent: true},
	KindThreadTaskComplete: {Kind: KindThreadTaskComplete, Name: "ThreadTaskComplete", Framing: Prefixed, Since: "2.0", IsEvent: true},

	KindOmpFork:          {Kind: KindOmpFork, Name: "OmpFork", Framing: Singleton, Since: "1.0", IsEvent: true, SupersededBy: KindThreadFork},
	KindOmpJoin:          {Kind: KindOmpJoin, Name: "OmpJoin", Framing: Singleton, Since: "1.0", IsEvent: true, SupersededBy: KindThreadJoin},
	KindOmpAcquireLock:   {Kind: KindOmpAcquireLock, Name: "OmpAcquireLock", Framing: Prefixed, Since: "1.0", IsEvent: true, SupersededBy: KindThreadAcquireLock},
	KindOmpReleaseLock:   {Kind: KindOmpReleaseLock, Name: "OmpReleaseLock", Framing: Prefixed, Since: "1.0", IsEvent: true, SupersededBy: KindThreadReleaseLock},
	KindOmpTaskCreate:    {Kind: KindOmpTaskCreate, Name: "OmpTaskCreate", Framing: Singleton, Since: "1.0", IsEvent: true, SupersededBy: KindThreadTaskCreate},
	KindOmpTaskSwitch:    {Kind: KindOmpTaskSwitch, Name: "OmpTaskSwitch", Framing: Singleton, Since: "1.0", IsEvent: true, SupersededBy: KindThreadTaskSwitch},
	KindOmpTaskComplete:  {Kind: KindOmpTaskComplete, Name: "OmpTaskComplete", Framing: Singleton, Since: "1.0", IsEvent: true, SupersededBy: KindThreadTaskComplete},

	KindThreadCreate: {Kind: KindThreadCreate, Name: "ThreadCreate", Framing: Prefixed, Since: "2.0", IsEvent: true},
	KindThreadBegin:  {Kind: KindThreadBegin, Name: "ThreadBegin", Framing: Prefixed, Since: "2.0", IsEvent: true},
	KindThreadWait:   {Kind: KindThreadWait, Name: "ThreadWait", Framing: Prefixed, Since: "2.0", IsEvent: true},
	KindThreadEnd:    {Kind: KindThreadEnd, Name: "ThreadEnd", Framing: Prefixed, Since: "2.0", IsEvent: true},

	KindMetric:              {Kind: KindMetric, Name: "Metric", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindParameterString:     {Kind: KindParameterString, Name: "ParameterString", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindParameterInt:        {Kind: KindParameterInt, Name: "ParameterInt", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindParameterUnsignedInt: {Kind: KindParameterUnsignedInt, Name: "ParameterUnsignedInt", Framing: Prefixed, Since: "1.0", IsEvent: true},

	KindTaskCreate:     {Kind: KindTaskCreate, Name: "TaskCreate", Framing: Singleton, Since: "2.2", IsEvent: true},
	KindTaskDependence: {Kind: KindTaskDependence, Name: "TaskDependence", Framing: Prefixed, Since: "2.2", IsEvent: true},

	KindMarkerDef:   {Kind: KindMarkerDef, Name: "Marker", Framing: Prefixed, Since: "1.2"},
	KindMarkerEvent: {Kind: KindMarkerEvent, Name: "MarkerEvent", Framing: Prefixed, Since: "1.2", IsEvent: true},

	KindSnapshotStart:            {Kind: KindSnapshotStart, Name: "SnapshotStart", Framing: Prefixed, Since: "1.0", IsEvent: true},
	KindSnapshotEnd:              {Kind: KindSnapshotEnd, Name: "SnapshotEnd", Framing: Singleton, Since: "1.0", IsEvent: true},
	KindMeasurementOnOffSnapshot: {Kind: KindMeasurementOnOffSnapshot, Name: "MeasurementOnOffSnapshot", Framing: Singleton, Since: "1.0", IsEvent: true},
	KindEnterSnapshot:            {Kind: KindEnterSnapshot, Name: "EnterSnapshot", Framing: Prefixed, Since: "1.0", IsEvent: true},
}

// supersedes is the reverse index built once from Catalog: newKind ->
// oldKind, used by the dispatcher to find a downgrade target when a
// record decoded as the *new* kind has no callback registered
// (spec.md §4.7, §1 item 3b).
var supersedes = func() map[Kind]Kind {
	m := make(map[Kind]Kind)
	for k, e := range Catalog {
		if e.SupersededBy != KindUnknown {
			m[e.SupersededBy] = k
		}
	}
	return m
}()

// Supersedes reports the deprecated kind that new, if any, can be
// downgraded to, and whether one exists.
func Supersedes(newKind Kind) (old Kind, ok bool) {
	old, ok = supersedes[newKind]
	return
}
