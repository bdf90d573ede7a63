package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientUnwrapsDataEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [{"nombre": "Ana"}, {"nombre": "Luis"}]}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	var out []map[string]string
	err := client.Get(context.Background(), "/pacientes/", &out)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Ana", out[0]["nombre"])
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"data": null}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithToken("tok-123"))
	err := client.Get(context.Background(), "/citas/", nil)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data": null}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	require.NoError(t, client.Get(context.Background(), "/citas/", nil))
	assert.Empty(t, gotAuth)
}

func TestClientPropagatesServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "start time must be before end time"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	err := client.Post(context.Background(), "/horarios/add", map[string]string{}, nil)

	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "start time must be before end time", apiErr.Message)
}

func TestClientErrorWithoutMessageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL)
	err := client.Delete(context.Background(), "/pacientes/delete/p1")

	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
}
