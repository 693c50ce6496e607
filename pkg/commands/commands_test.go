package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/chain-registry/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	lggr := logger.Nop()
	cmds := New(lggr)

	require.NotNil(t, cmds)
	assert.Equal(t, lggr, cmds.lggr)
}

func TestCommands_Chains(t *testing.T) {
	t.Parallel()

	cmd, err := New(logger.Nop()).Chains()
	require.NoError(t, err)

	assert.Equal(t, "chains", cmd.Use)
	assert.Len(t, cmd.Commands(), 3)
}

func TestCommands_Chains_NilLogger(t *testing.T) {
	t.Parallel()

	_, err := New(nil).Chains()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Logger")
}
