package clients_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlarsson/snaplet-oauth2/clients"
)

func TestNew(t *testing.T) {
	client, err := clients.New("c1", "https://app.example/cb")
	require.NoError(t, err)
	require.Equal(t, "c1", client.ID)
	require.Equal(t, "https://app.example/cb", client.RedirectURI)
	require.True(t, client.Public())

	generated, err := clients.New("", "https://app.example/cb")
	require.NoError(t, err)
	require.NotEmpty(t, generated.ID)
}

func TestNewRejectsRelativeRedirectURI(t *testing.T) {
	_, err := clients.New("c1", "/callback")
	require.ErrorIs(t, err, clients.ErrInvalidRedirectURI)
}

func TestOutOfBand(t *testing.T) {
	oob, err := clients.New("cli-tool", clients.OOBRedirectURI)
	require.NoError(t, err)
	require.True(t, oob.OutOfBand())

	web, err := clients.New("web", "https://app.example/cb")
	require.NoError(t, err)
	require.False(t, web.OutOfBand())
}

func TestSecretHash(t *testing.T) {
	hash, err := clients.HashSecret("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.True(t, clients.CheckSecretHash("s3cret", hash))
	require.False(t, clients.CheckSecretHash("wrong", hash))
	require.False(t, clients.CheckSecretHash("s3cret", ""))
}
