package dispatch

import (
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/record"
)

// upgrades maps a deprecated kind to a conversion producing the kind that
// supersedes it, used when the wire record is the old kind but only the
// new kind's callback is registered (spec.md §4.7's literal rule).
var upgrades = map[record.Kind]func(record.Record) record.Record{
	record.KindEnter: func(rec record.Record) record.Record {
		return record.UpgradeEnter(rec.(*record.Enter))
	},
	record.KindLeave: func(rec record.Record) record.Record {
		return record.UpgradeLeave(rec.(*record.Leave))
	},
	record.KindOmpFork: func(rec record.Record) record.Record {
		return record.UpgradeOmpFork(rec.(*record.OmpFork))
	},
	record.KindOmpJoin: func(rec record.Record) record.Record {
		return record.UpgradeOmpJoin(rec.(*record.OmpJoin))
	},
	record.KindOmpAcquireLock: func(rec record.Record) record.Record {
		return record.UpgradeOmpAcquireLock(rec.(*record.OmpAcquireLock))
	},
	record.KindOmpReleaseLock: func(rec record.Record) record.Record {
		return record.UpgradeOmpReleaseLock(rec.(*record.OmpReleaseLock))
	},
	record.KindOmpTaskCreate: func(rec record.Record) record.Record {
		return record.UpgradeOmpTaskCreate(rec.(*record.OmpTaskCreate))
	},
	record.KindOmpTaskSwitch: func(rec record.Record) record.Record {
		return record.UpgradeOmpTaskSwitch(rec.(*record.OmpTaskSwitch))
	},
	record.KindOmpTaskComplete: func(rec record.Record) record.Record {
		return record.UpgradeOmpTaskComplete(rec.(*record.OmpTaskComplete))
	},
}

// downgrades maps a superseding kind to a conversion producing the kind
// it supersedes, used when the wire record is the new kind but only the
// old kind's callback is registered (spec.md §8 scenario 3). The
// contextAttr parameter is only consumed by the two CallingContext
// conversions; the others ignore it.
var downgrades = map[record.Kind]func(record.Record, idref.AttributeRef) (record.Record, error){
	record.KindCallingContextEnter: func(rec record.Record, attr idref.AttributeRef) (record.Record, error) {
		return record.DowngradeCallingContextEnter(rec.(*record.CallingContextEnter), attr)
	},
	record.KindCallingContextLeave: func(rec record.Record, attr idref.AttributeRef) (record.Record, error) {
		return record.DowngradeCallingContextLeave(rec.(*record.CallingContextLeave), attr)
	},
	record.KindThreadFork: func(rec record.Record, _ idref.AttributeRef) (record.Record, error) {
		return record.DowngradeThreadFork(rec.(*record.ThreadFork))
	},
	record.KindThreadJoin: func(rec record.Record, _ idref.AttributeRef) (record.Record, error) {
		return record.DowngradeThreadJoin(rec.(*record.ThreadJoin))
	},
	record.KindThreadAcquireLock: func(rec record.Record, _ idref.AttributeRef) (record.Record, error) {
		return record.DowngradeThreadAcquireLock(rec.(*record.ThreadAcquireLock))
	},
	record.KindThreadReleaseLock: func(rec record.Record, _ idref.AttributeRef) (record.Record, error) {
		return record.DowngradeThreadReleaseLock(rec.(*record.ThreadReleaseLock))
	},
	record.KindThreadTaskCreate: func(rec record.Record, _ idref.AttributeRef) (record.Record, error) {
		return record.DowngradeThreadTaskCreate(rec.(*record.ThreadTaskCreate))
	},
	record.KindThreadTaskSwitch: func(rec record.Record, _ idref.AttributeRef) (record.Record, error) {
		return record.DowngradeThreadTaskSwitch(rec.(*record.ThreadTaskSwitch))
	},
	record.KindThreadTaskComplete: func(rec record.Record, _ idref.AttributeRef) (record.Record, error) {
		return record.DowngradeThreadTaskComplete(rec.(*record.ThreadTaskComplete))
	},
}
