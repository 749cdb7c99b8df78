package options

import (
	"errors"
	"testing"

	"github.com/erraggy/oacheck/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []bool
		wantErr string
	}{
		{"exactly one", []bool{false, true, false}, ""},
		{"none", []bool{false, false}, "need one"},
		{"no sources at all", nil, "need one"},
		{"two", []bool{true, true, false}, "only one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource("need one", "only one", tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig))
		})
	}
}
