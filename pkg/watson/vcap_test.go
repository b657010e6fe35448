package watson_test

import (
	"testing"

	"github.com/fivetwenty-io/watson/pkg/watson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vcapDocument = `{
  "language_translator": [{
    "name": "my-translator",
    "credentials": {"url": "https://vcap.example.com/lt/api", "apikey": "vcap-key"}
  }],
  "conversation": [{
    "name": "assistant-instance",
    "credentials": {"url": "https://vcap.example.com/assistant/api", "username": "u", "password": "p"}
  }]
}`

func TestParseVCAPServices(t *testing.T) {
	t.Parallel()

	creds, err := watson.ParseVCAPServices([]byte(vcapDocument), "language_translator")
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "https://vcap.example.com/lt/api", creds.URL)
	assert.Equal(t, "vcap-key", creds.APIKey)
	assert.True(t, creds.HasCredentials())

	creds, err = watson.ParseVCAPServices([]byte(vcapDocument), "assistant-instance")
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "u", creds.Username)

	creds, err = watson.ParseVCAPServices([]byte(vcapDocument), "discovery")
	require.NoError(t, err)
	assert.Nil(t, creds)

	_, err = watson.ParseVCAPServices([]byte("{"), "discovery")
	require.ErrorIs(t, err, watson.ErrInvalidVCAPServices)
}

func TestLoadVCAPCredentials(t *testing.T) {
	t.Setenv("VCAP_SERVICES", vcapDocument)

	creds, err := watson.LoadVCAPCredentials("conversation")
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "p", creds.Password)

	t.Setenv("VCAP_SERVICES", "")

	creds, err = watson.LoadVCAPCredentials("conversation")
	require.NoError(t, err)
	assert.Nil(t, creds)
}
