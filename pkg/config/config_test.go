package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngraph-go/ngraph/pkg/config"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestValidate_RejectsNegativeFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{"max functions", func(c *config.Config) { c.MaxFunctions = -1 }, config.ErrInvalidMaxFunctions},
		{"max nodes", func(c *config.Config) { c.MaxNodesPerFunction = -1 }, config.ErrInvalidMaxNodes},
		{"max document bytes", func(c *config.Config) { c.MaxDocumentBytes = -1 }, config.ErrInvalidMaxDocumentBytes},
		{"max attribute length", func(c *config.Config) { c.MaxAttributeArrayLength = -1 }, config.ErrInvalidMaxAttributeLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClone_IsIndependent(t *testing.T) {
	cfg := config.Default()
	clone := cfg.Clone()
	clone.MaxFunctions = 1

	assert.NotEqual(t, cfg.MaxFunctions, clone.MaxFunctions)
}
