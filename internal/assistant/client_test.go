package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-3-flash-preview:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotNil(t, req.SystemInstruction)
		assert.Equal(t, "halo", req.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Halo juga!"}]}}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "gemini-3-flash-preview", false)
	answer, err := c.Generate(context.Background(), "instruksi", "halo")
	assert.NoError(t, err)
	assert.Equal(t, "Halo juga!", answer)
}

func TestClient_Generate_Skip(t *testing.T) {
	c := New("", "", "gemini-3-flash-preview", true)
	answer, err := c.Generate(context.Background(), "instruksi", "halo")
	assert.NoError(t, err)
	assert.NotEmpty(t, answer)
}

func TestClient_Generate_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"API key not valid"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "bad-key", "gemini-3-flash-preview", false)
	_, err := c.Generate(context.Background(), "instruksi", "halo")
	assert.Error(t, err)
}

func TestClient_Generate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "gemini-3-flash-preview", false)
	_, err := c.Generate(context.Background(), "instruksi", "halo")
	assert.Error(t, err)
}
