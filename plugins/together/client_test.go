package together

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_GenerateImage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req GenerateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, DefaultModel, req.Model)
		assert.Equal(t, "a red fox", req.Prompt)
		assert.Equal(t, 4, req.Steps)
		assert.Equal(t, 1, req.N)
		assert.Equal(t, 1024, req.Height)
		assert.Equal(t, 1024, req.Width)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[{"url":"https://img.example/fox.png"}]}`)
	}))
	defer ts.Close()

	client := NewClient("test-key", ts.URL, "", "", nil, nil)

	resp, err := client.GenerateImage(context.Background(), "a red fox")
	assert.NoError(t, err)
	if assert.Len(t, resp.Data, 1) {
		assert.Equal(t, "https://img.example/fox.png", resp.Data[0].URL)
	}
}

func TestClient_GenerateImage_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewClient("test-key", ts.URL, "", "", nil, nil)

	_, err := client.GenerateImage(context.Background(), "a red fox")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestClient_SaveImage(t *testing.T) {
	dir := t.TempDir()

	client := NewClient("test-key", "", "", dir, nil, nil)
	client.Now = func() time.Time {
		return time.Date(2026, 8, 25, 13, 14, 15, 0, time.UTC)
	}

	path, err := client.SaveImage([]byte("fake png bytes"))
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ai_image_20260825_131415.png"), path)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), data)
}

func TestClient_SaveImage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "pictures")

	client := NewClient("test-key", "", "", dir, nil, nil)

	path, err := client.SaveImage([]byte{0x89, 0x50, 0x4e, 0x47})
	assert.NoError(t, err)
	assert.FileExists(t, path)
}
