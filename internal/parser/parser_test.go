package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a11yscan/a11yscan/pkg/engine"
)

func TestForSurface(t *testing.T) {
	for _, surface := range engine.Surfaces() {
		parse, err := ForSurface(surface)
		require.NoError(t, err, "surface %s", surface)
		assert.NotNil(t, parse)
	}

	_, err := ForSurface(engine.Surface("Desktop"))
	assert.Error(t, err)
}
