package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/qsim/internal/util"
)

func TestResolveSeed(t *testing.T) {
	configured := util.Ptr(int64(7))

	tests := []struct {
		name       string
		configured *int64
		flagSet    bool
		flagValue  int64
		want       *int64
	}{
		{"flag absent keeps config", configured, false, 0, configured},
		{"flag absent, no config", nil, false, 0, nil},
		{"explicit flag overrides config", configured, true, 42, util.Ptr(int64(42))},
		{"explicit zero overrides config", configured, true, 0, util.Ptr(int64(0))},
		{"negative flag forces wall clock", configured, true, -1, nil},
		{"negative flag, no config", nil, true, -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveSeed(tt.configured, tt.flagSet, tt.flagValue)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestRunSeedFlagDefaultUnset(t *testing.T) {
	// The seed flag only takes effect when explicitly passed, so its
	// default must not count as set
	assert.False(t, RunCmd.Flags().Changed("seed"))
}
