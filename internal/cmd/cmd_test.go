package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	for _, name := range []string{"serve", "migrate"} {
		t.Run(name, func(t *testing.T) {
			found, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, found.Name())
			assert.NotNil(t, found.RunE)
		})
	}
}
