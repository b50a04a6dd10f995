package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameGeneratorSequence(t *testing.T) {
	gen := NewNameGenerator()
	assert.Equal(t, "Var1", gen.Fresh())
	assert.Equal(t, "Var2", gen.Fresh())
	assert.Equal(t, uint64(2), gen.Issued())
}

func TestRunsAreIndependent(t *testing.T) {
	first := NewRun(0)
	first.Names.Fresh()
	first.Names.Fresh()

	second := NewRun(0)
	assert.Equal(t, "Var1", second.Names.Fresh())
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRunStepLimit(t *testing.T) {
	run := NewRun(2)
	require.NoError(t, run.Step())
	require.NoError(t, run.Step())

	err := run.Step()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStepLimit))
	assert.Equal(t, uint64(3), run.Steps())
}

func TestRunUnboundedByDefault(t *testing.T) {
	run := NewRun(0)
	for i := 0; i < 10000; i++ {
		require.NoError(t, run.Step())
	}
	assert.Equal(t, uint64(0), run.Limit())
}
