package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/typeschema/tserrors"
)

func TestParseAccessibilityMode(t *testing.T) {
	tests := []struct {
		in      string
		want    AccessibilityMode
		wantErr bool
	}{
		{"", PublicOnly, false},
		{"public", PublicOnly, false},
		{"internal", PublicAndInternal, false},
		{"all", All, false},
		{"bogus", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAccessibilityMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tserrors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParseAccessibility(t, got.String()))
		})
	}
}

func mustParseAccessibility(t *testing.T, s string) AccessibilityMode {
	t.Helper()
	m, err := ParseAccessibilityMode(s)
	require.NoError(t, err)
	return m
}

func TestParseDictionaryKeyMode(t *testing.T) {
	m, err := ParseDictionaryKeyMode("")
	require.NoError(t, err)
	assert.Equal(t, StringOnly, m)

	m, err = ParseDictionaryKeyMode("permissive")
	require.NoError(t, err)
	assert.Equal(t, Permissive, m)

	_, err = ParseDictionaryKeyMode("bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, tserrors.ErrConfig))
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, DefaultMaxDepth, cfg.maxDepth)
	assert.True(t, cfg.parseDocComments)
	assert.True(t, cfg.includeInterfaces)
	assert.Equal(t, PublicOnly, cfg.accessibility)
	assert.Equal(t, StringOnly, cfg.dictionaryKeyMode)
	assert.NotNil(t, cfg.logger)
	require.NoError(t, cfg.validate())
}

func TestWithLoggerNilKeepsDefault(t *testing.T) {
	cfg := defaultConfig()
	WithLogger(nil)(&cfg)
	assert.NotNil(t, cfg.logger)
}
