package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakedClient struct{}

func (fakedClient) CheckFact(context.Context, string, Options) (string, error) {
	return `{"status":"True","explanation":"ok"}`, nil
}

func TestNewClientUnknownProvider(t *testing.T) {
	_, err := NewClient(FactoryConfig{Provider: "no-such-provider"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestRegisterProviderAliases(t *testing.T) {
	RegisterProvider("faked", func(FactoryConfig) (Client, error) {
		return fakedClient{}, nil
	}, "faked-alias")

	for _, name := range []string{"faked", "FAKED", "faked-alias"} {
		c, err := NewClient(FactoryConfig{Provider: name})
		require.NoError(t, err, name)
		assert.NotNil(t, c)
	}
}
