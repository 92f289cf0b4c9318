package config

import (
	"errors"
	"os"
	"strings"
)

// ErrNoCredential is returned when none of the recognized token variables is set.
var ErrNoCredential = errors.New("no credential found: set one of " + strings.Join(TokenEnvNames, ", "))

// TokenEnvNames lists the recognized credential variables in precedence order.
var TokenEnvNames = []string{
	"HUGGINGFACE_API_KEY",
	"HUGGINGFACE_TOKEN",
	"HF_TOKEN",
	"HF_API_TOKEN",
}

type Token struct {
	Value  string
	Source string
}

// LookupFunc reads a single environment variable.
type LookupFunc func(key string) string

// ResolveToken returns the first non-empty value among names, read through lookup.
func ResolveToken(names []string, lookup LookupFunc) (Token, error) {
	if lookup == nil {
		lookup = os.Getenv
	}
	for _, name := range names {
		if v := strings.TrimSpace(lookup(name)); v != "" {
			return Token{Value: v, Source: name}, nil
		}
	}
	return Token{}, ErrNoCredential
}

// ResolveEnvToken resolves the inference credential from the process environment.
func ResolveEnvToken() (Token, error) {
	return ResolveToken(TokenEnvNames, os.Getenv)
}
