package otf2

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/mapping"
)

func TestClassifyRecognizesFormatErrors(t *testing.T) {
	assert.Equal(t, ErrCodeFormat, classify(chunk.ErrUnderrun))
	assert.Equal(t, ErrCodeFormat, classify(chunk.ErrBadCompression))
	// Wrapped causes must still classify correctly via errors.Is.
	assert.Equal(t, ErrCodeFormat, classify(fmt.Errorf("flush: %w", chunk.ErrUnderrun)))
}

func TestClassifyRecognizesMappingErrors(t *testing.T) {
	err := &mapping.ErrMappingNotFound{Domain: idref.Region, Local: 7}
	assert.Equal(t, ErrCodeMapping, classify(err))
	assert.Equal(t, ErrCodeMapping, classify(fmt.Errorf("translate: %w", err)))
}

func TestClassifyDefaultsToIO(t *testing.T) {
	assert.Equal(t, ErrCodeIO, classify(assert.AnError))
}
