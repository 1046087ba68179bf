package record

import (
	"errors"

	"github.com/tracefmt/otf2go/attribute"
	"github.com/tracefmt/otf2go/idref"
)

// ErrParadigmMismatch is returned by a downgrade conversion when the
// paradigm-tagged event being downgraded was not recorded under the
// paradigm the target legacy kind implies (spec.md §4.7: "a conversion
// can fail ... in which case the record is silently skipped").
var ErrParadigmMismatch = errors.New("record: paradigm mismatch in superseded-event conversion")

// UpgradeEnter converts a legacy Enter into its superseding
// CallingContextEnter, used when a wire-level Enter is read but only a
// CallingContextEnter callback is registered (spec.md §4.7 literal rule).
// The resulting event carries no resolved calling-context id; Context is
// left undefined.
func UpgradeEnter(e *Enter) *CallingContextEnter {
	return &CallingContextEnter{
		EventCommon: e.EventCommon,
		Context:     idref.CallingContextRef(idref.Undefined),
		Region:      e.Region,
	}
}

// DowngradeCallingContextEnter converts a CallingContextEnter into a
// legacy Enter, used when a paradigm-aware producer's trace is read by a
// consumer that only registered an Enter callback (spec.md §8 scenario 3
// sibling case). The CallingContext id is moved into the attribute list
// under the attribute id supplied by the caller, per §4.7's "may move
// fields into the attribute list" note.
func DowngradeCallingContextEnter(e *CallingContextEnter, contextAttr idref.AttributeRef) (*Enter, error) {
	out := &Enter{EventCommon: e.EventCommon, Region: e.Region}
	if !idref.IsUndefined(uint64(e.Context)) {
		if out.Attributes == nil {
			out.Attributes = &attribute.List{}
		}
		if err := out.Attributes.Add(contextAttr, attribute.NewIDRef(idref.CallingContext, uint64(e.Context))); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// UpgradeLeave is UpgradeEnter's mirror for the Leave/CallingContextLeave pair.
func UpgradeLeave(e *Leave) *CallingContextLeave {
	return &CallingContextLeave{
		EventCommon: e.EventCommon,
		Context:     idref.CallingContextRef(idref.Undefined),
		Region:      e.Region,
	}
}

// DowngradeCallingContextLeave is DowngradeCallingContextEnter's mirror.
func DowngradeCallingContextLeave(e *CallingContextLeave, contextAttr idref.AttributeRef) (*Leave, error) {
	out := &Leave{EventCommon: e.EventCommon, Region: e.Region}
	if !idref.IsUndefined(uint64(e.Context)) {
		if out.Attributes == nil {
			out.Attributes = &attribute.List{}
		}
		if err := out.Attributes.Add(contextAttr, attribute.NewIDRef(idref.CallingContext, uint64(e.Context))); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// UpgradeOmpFork converts a legacy OmpFork into a paradigm-tagged
// ThreadFork, used when only a ThreadFork callback is registered.
func UpgradeOmpFork(e *OmpFork) *ThreadFork {
	return &ThreadFork{EventCommon: e.EventCommon, Paradigm: ParadigmOpenMP, Requested: e.Requested}
}

// DowngradeThreadFork converts a paradigm-tagged ThreadFork into a legacy
// OmpFork, used when a pre-threading-paradigm consumer only registered an
// OmpFork callback (spec.md §8 scenario 3). Fails if the event was not
// recorded under the OpenMP paradigm.
func DowngradeThreadFork(e *ThreadFork) (*OmpFork, error) {
	if e.Paradigm != ParadigmOpenMP {
		return nil, ErrParadigmMismatch
	}
	return &OmpFork{EventCommon: e.EventCommon, Requested: e.Requested}, nil
}

func UpgradeOmpJoin(e *OmpJoin) *ThreadJoin {
	return &ThreadJoin{EventCommon: e.EventCommon, Paradigm: ParadigmOpenMP}
}

func DowngradeThreadJoin(e *ThreadJoin) (*OmpJoin, error) {
	if e.Paradigm != ParadigmOpenMP {
		return nil, ErrParadigmMismatch
	}
	return &OmpJoin{EventCommon: e.EventCommon}, nil
}

func UpgradeOmpAcquireLock(e *OmpAcquireLock) *ThreadAcquireLock {
	return &ThreadAcquireLock{
		EventCommon:      e.EventCommon,
		Paradigm:         ParadigmOpenMP,
		LockID:           e.LockID,
		AcquisitionOrder: e.AcquisitionOrder,
	}
}

func DowngradeThreadAcquireLock(e *ThreadAcquireLock) (*OmpAcquireLock, error) {
	if e.Paradigm != ParadigmOpenMP {
		return nil, ErrParadigmMismatch
	}
	return &OmpAcquireLock{EventCommon: e.EventCommon, LockID: e.LockID, AcquisitionOrder: e.AcquisitionOrder}, nil
}

func UpgradeOmpReleaseLock(e *OmpReleaseLock) *ThreadReleaseLock {
	return &ThreadReleaseLock{
		EventCommon:      e.EventCommon,
		Paradigm:         ParadigmOpenMP,
		LockID:           e.LockID,
		AcquisitionOrder: e.AcquisitionOrder,
	}
}

func DowngradeThreadReleaseLock(e *ThreadReleaseLock) (*OmpReleaseLock, error) {
	if e.Paradigm != ParadigmOpenMP {
		return nil, ErrParadigmMismatch
	}
	return &OmpReleaseLock{EventCommon: e.EventCommon, LockID: e.LockID, AcquisitionOrder: e.AcquisitionOrder}, nil
}

func UpgradeOmpTaskCreate(e *OmpTaskCreate) *ThreadTaskCreate {
	return &ThreadTaskCreate{EventCommon: e.EventCommon, Paradigm: ParadigmOpenMP, TaskID: e.TaskID}
}

func DowngradeThreadTaskCreate(e *ThreadTaskCreate) (*OmpTaskCreate, error) {
	if e.Paradigm != ParadigmOpenMP {
		return nil, ErrParadigmMismatch
	}
	return &OmpTaskCreate{EventCommon: e.EventCommon, TaskID: e.TaskID}, nil
}

func UpgradeOmpTaskSwitch(e *OmpTaskSwitch) *ThreadTaskSwitch {
	return &ThreadTaskSwitch{EventCommon: e.EventCommon, Paradigm: ParadigmOpenMP, TaskID: e.TaskID}
}

func DowngradeThreadTaskSwitch(e *ThreadTaskSwitch) (*OmpTaskSwitch, error) {
	if e.Paradigm != ParadigmOpenMP {
		return nil, ErrParadigmMismatch
	}
	return &OmpTaskSwitch{EventCommon: e.EventCommon, TaskID: e.TaskID}, nil
}

func UpgradeOmpTaskComplete(e *OmpTaskComplete) *ThreadTaskComplete {
	return &ThreadTaskComplete{EventCommon: e.EventCommon, Paradigm: ParadigmOpenMP, TaskID: e.TaskID}
}

func DowngradeThreadTaskComplete(e *ThreadTaskComplete) (*OmpTaskComplete, error) {
	if e.Paradigm != ParadigmOpenMP {
		return nil, ErrParadigmMismatch
	}
	return &OmpTaskComplete{EventCommon: e.EventCommon, TaskID: e.TaskID}, nil
}
