package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) string { return env[key] }
}

func TestResolveToken_Precedence(t *testing.T) {
	env := map[string]string{
		"HF_TOKEN":          "hf_second",
		"HUGGINGFACE_TOKEN": "hf_first",
	}

	token, err := ResolveToken(TokenEnvNames, lookupFrom(env))
	require.NoError(t, err)
	assert.Equal(t, "hf_first", token.Value)
	assert.Equal(t, "HUGGINGFACE_TOKEN", token.Source)
}

func TestResolveToken_SkipsBlankValues(t *testing.T) {
	env := map[string]string{
		"HUGGINGFACE_API_KEY": "   ",
		"HF_API_TOKEN":        " hf_last ",
	}

	token, err := ResolveToken(TokenEnvNames, lookupFrom(env))
	require.NoError(t, err)
	assert.Equal(t, "hf_last", token.Value)
	assert.Equal(t, "HF_API_TOKEN", token.Source)
}

func TestResolveToken_NoneSet(t *testing.T) {
	_, err := ResolveToken(TokenEnvNames, lookupFrom(nil))
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestResolveEnvToken(t *testing.T) {
	for _, name := range TokenEnvNames {
		t.Setenv(name, "")
	}
	t.Setenv("HF_TOKEN", "hf_env")

	token, err := ResolveEnvToken()
	require.NoError(t, err)
	assert.Equal(t, "HF_TOKEN", token.Source)
}
