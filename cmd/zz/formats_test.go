package zz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"x", "extract", "xa", "extract-all", "formats"} {
		cmd, _, err := Cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.NotEqual(t, Cmd, cmd, name)
	}
}

func TestFormatsFlags(t *testing.T) {
	assert.NotNil(t, formatsCmd.Flags().Lookup(PrettyFlag))
	assert.NotNil(t, formatsCmd.Flags().Lookup(JSONFlag))
	assert.NotNil(t, decompressAllCmd.Flags().Lookup(IntoFlag))
}
