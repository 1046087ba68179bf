package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/record"
)

func TestDispatchCallsOwnCallbackWhenRegistered(t *testing.T) {
	tbl := NewTable(idref.AttributeRef(1))
	var got record.Record
	tbl.Register(record.KindEnter, func(rec record.Record) (Action, error) {
		got = rec
		return Continue, nil
	})

	enter := &record.Enter{Region: idref.RegionRef(5)}
	action, err := tbl.Dispatch(enter)
	require.NoError(t, err)
	assert.Equal(t, Continue, action)
	assert.Same(t, enter, got)
}

func TestDispatchUpgradesWhenOnlyNewCallbackRegistered(t *testing.T) {
	tbl := NewTable(idref.AttributeRef(1))
	var got *record.ThreadFork
	tbl.Register(record.KindThreadFork, func(rec record.Record) (Action, error) {
		got = rec.(*record.ThreadFork)
		return Continue, nil
	})

	omp := &record.OmpFork{Requested: 4}
	_, err := tbl.Dispatch(omp)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record.ParadigmOpenMP, got.Paradigm)
	assert.EqualValues(t, 4, got.Requested)
}

func TestDispatchDowngradesWhenOnlyLegacyCallbackRegistered(t *testing.T) {
	tbl := NewTable(idref.AttributeRef(1))
	var got *record.OmpFork
	tbl.Register(record.KindOmpFork, func(rec record.Record) (Action, error) {
		got = rec.(*record.OmpFork)
		return Continue, nil
	})

	fork := &record.ThreadFork{Paradigm: record.ParadigmOpenMP, Requested: 9}
	_, err := tbl.Dispatch(fork)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.EqualValues(t, 9, got.Requested)
}

func TestDispatchSkipsOnDowngradeParadigmMismatch(t *testing.T) {
	tbl := NewTable(idref.AttributeRef(1))
	called := false
	tbl.Register(record.KindOmpFork, func(rec record.Record) (Action, error) {
		called = true
		return Continue, nil
	})

	fork := &record.ThreadFork{Paradigm: record.ParadigmPthread, Requested: 9}
	action, err := tbl.Dispatch(fork)
	require.NoError(t, err)
	assert.Equal(t, Continue, action)
	assert.False(t, called, "a paradigm-mismatched downgrade must be silently skipped, not delivered")
}

func TestDispatchFallsBackToUnknownHandler(t *testing.T) {
	tbl := NewTable(idref.AttributeRef(1))
	var got record.Record
	tbl.RegisterUnknown(func(rec record.Record) (Action, error) {
		got = rec
		return Continue, nil
	})

	unk := &record.Unknown{Tag: 200, Data: []byte{1, 2, 3}}
	_, err := tbl.Dispatch(unk)
	require.NoError(t, err)
	assert.Same(t, unk, got)
}

func TestDispatchDoesNotInvokeUnknownHandlerForUnhandledCatalogedKind(t *testing.T) {
	tbl := NewTable(idref.AttributeRef(1))
	called := false
	tbl.RegisterUnknown(func(rec record.Record) (Action, error) {
		called = true
		return Continue, nil
	})

	// CollectiveBegin is cataloged, has no superseded-by link in either
	// direction, and has no registered callback: spec.md §4.7 step 3 says
	// no callback is invoked at all, not even the unknown one (that is
	// reserved for tags absent from the catalog, spec.md §7).
	action, err := tbl.Dispatch(&record.CollectiveBegin{})
	require.NoError(t, err)
	assert.Equal(t, Continue, action)
	assert.False(t, called)
}

func TestDispatchClearRemovesAllHandlers(t *testing.T) {
	tbl := NewTable(idref.AttributeRef(1))
	tbl.Register(record.KindEnter, func(rec record.Record) (Action, error) { return Continue, nil })
	tbl.RegisterUnknown(func(rec record.Record) (Action, error) { return Continue, nil })
	tbl.Clear()

	action, err := tbl.Dispatch(&record.Enter{})
	require.NoError(t, err)
	assert.Equal(t, Continue, action)
}

func TestRegisterNilClearsHandler(t *testing.T) {
	tbl := NewTable(idref.AttributeRef(1))
	called := false
	tbl.Register(record.KindEnter, func(rec record.Record) (Action, error) {
		called = true
		return Continue, nil
	})
	tbl.Register(record.KindEnter, nil)

	_, err := tbl.Dispatch(&record.Enter{})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestCallbackInterruptSignalPropagatesAsAction(t *testing.T) {
	tbl := NewTable(idref.AttributeRef(1))
	tbl.Register(record.KindEnter, func(rec record.Record) (Action, error) {
		return Interrupt, nil
	})
	action, err := tbl.Dispatch(&record.Enter{})
	require.NoError(t, err)
	assert.Equal(t, Interrupt, action)
}
