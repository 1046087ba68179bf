package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracefmt/otf2go/idref"
)

func TestUpgradeOmpForkCarriesOpenMPParadigm(t *testing.T) {
	omp := &OmpFork{Requested: 4}
	up := UpgradeOmpFork(omp)
	assert.Equal(t, ParadigmOpenMP, up.Paradigm)
	assert.EqualValues(t, 4, up.Requested)
}

func TestDowngradeThreadForkRoundTripsOpenMP(t *testing.T) {
	fork := &ThreadFork{Paradigm: ParadigmOpenMP, Requested: 8}
	omp, err := DowngradeThreadFork(fork)
	require.NoError(t, err)
	assert.EqualValues(t, 8, omp.Requested)
}

func TestDowngradeThreadForkFailsOnParadigmMismatch(t *testing.T) {
	fork := &ThreadFork{Paradigm: ParadigmPthread, Requested: 8}
	_, err := DowngradeThreadFork(fork)
	assert.ErrorIs(t, err, ErrParadigmMismatch)
}

func TestDowngradeCallingContextEnterMovesContextIntoAttributes(t *testing.T) {
	e := &CallingContextEnter{Context: idref.CallingContextRef(12), Region: idref.RegionRef(3)}
	out, err := DowngradeCallingContextEnter(e, idref.AttributeRef(1))
	require.NoError(t, err)
	assert.Equal(t, idref.RegionRef(3), out.Region)
	require.NotNil(t, out.Attributes)
	assert.Equal(t, 1, out.Attributes.Len())
}

func TestDowngradeCallingContextEnterSkipsAttributeWhenContextUndefined(t *testing.T) {
	e := &CallingContextEnter{Context: idref.CallingContextRef(idref.Undefined), Region: idref.RegionRef(3)}
	out, err := DowngradeCallingContextEnter(e, idref.AttributeRef(1))
	require.NoError(t, err)
	assert.Nil(t, out.Attributes)
}

func TestUpgradeEnterLeavesContextUndefined(t *testing.T) {
	e := &Enter{Region: idref.RegionRef(9)}
	up := UpgradeEnter(e)
	assert.True(t, idref.IsUndefined(uint64(up.Context)))
	assert.Equal(t, idref.RegionRef(9), up.Region)
}
