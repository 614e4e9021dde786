package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	mockResponse := map[string]string{"message": "success"}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-endpoint", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	err := client.Request("GET", "/test-endpoint", map[string]string{"X-Test": "yes"}, nil, &response)

	require.NoError(t, err)
	assert.Equal(t, "success", response["message"])
}

func TestHTTPClient_Request_Failure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	err := client.Request("POST", "/test-endpoint", nil, map[string]string{"key": "value"}, &response)

	require.Error(t, err)
	assert.Equal(t, "unexpected status code: 400 Bad Request", err.Error())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
}
