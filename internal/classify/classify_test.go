// /internal/classify/classify_test.go
package classify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatResponse(answer string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": answer}},
		},
	})
	return string(body)
}

func TestIsOnTopicYes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "test-model", payload["model"])

		_, _ = w.Write([]byte(chatResponse("Yes")))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-model", "sk-test", 5*time.Second)
	onTopic, err := c.IsOnTopic(context.Background(), "tulip beds", "gardening")
	require.NoError(t, err)
	assert.True(t, onTopic)
}

func TestIsOnTopicNo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse("no.")))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-model", "", 5*time.Second)
	onTopic, err := c.IsOnTopic(context.Background(), "train schedules", "gardening")
	require.NoError(t, err)
	assert.False(t, onTopic)
}

func TestIsOnTopicServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "test-model", "", 5*time.Second)
	_, err := c.IsOnTopic(context.Background(), "anything", "gardening")
	assert.Error(t, err)
}

func TestIsOnTopicTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(chatResponse("yes")))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-model", "", 50*time.Millisecond)
	_, err := c.IsOnTopic(context.Background(), "anything", "gardening")
	assert.Error(t, err)
}

func TestIsOnTopicEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-model", "", 5*time.Second)
	_, err := c.IsOnTopic(context.Background(), "anything", "gardening")
	assert.Error(t, err)
}
