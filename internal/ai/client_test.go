package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})
	require.NoError(t, err)
	return c
}

func chatHandler(t *testing.T, output string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"agent": "auto", "output": output})
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestEnhanceText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, chatHandler(t, "Led cross-functional delivery of the platform."))
		out, err := c.EnhanceText(context.Background(), "worked on stuff", "experience description")
		require.NoError(t, err)
		assert.Equal(t, "Led cross-functional delivery of the platform.", out)
	})

	t.Run("empty input returned unchanged without a round trip", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected upstream call")
		})
		out, err := c.EnhanceText(context.Background(), "   ", "summary")
		require.NoError(t, err)
		assert.Equal(t, "   ", out)
	})

	t.Run("empty completion fails", func(t *testing.T) {
		c := newTestClient(t, chatHandler(t, "  "))
		_, err := c.EnhanceText(context.Background(), "original", "summary")
		assert.ErrorIs(t, err, ErrEnhancementFailed)
	})

	t.Run("upstream error fails", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := c.EnhanceText(context.Background(), "original", "summary")
		assert.ErrorIs(t, err, ErrEnhancementFailed)
	})
}

func TestGenerateSummary(t *testing.T) {
	c := newTestClient(t, chatHandler(t, "Seasoned engineer delivering measurable impact."))
	out, err := c.GenerateSummary(context.Background(), "Staff Engineer", []string{"Go", "React"}, "Acme, Globex")
	require.NoError(t, err)
	assert.Equal(t, "Seasoned engineer delivering measurable impact.", out)
}

func TestSuggestDesign(t *testing.T) {
	t.Run("clean json", func(t *testing.T) {
		c := newTestClient(t, chatHandler(t, `{"templateId":"tech","primaryColor":"#10B981","fontFamily":"mono"}`))
		s, err := c.SuggestDesign(context.Background(), "senior golang developer")
		require.NoError(t, err)
		assert.Equal(t, "tech", s.TemplateID)
		assert.Equal(t, "#10B981", s.PrimaryColor)
		assert.Equal(t, "mono", s.FontFamily)
	})

	t.Run("json wrapped in prose", func(t *testing.T) {
		c := newTestClient(t, chatHandler(t, "Here is my pick:\n```json\n{\"templateId\":\"executive\"}\n```"))
		s, err := c.SuggestDesign(context.Background(), "CEO")
		require.NoError(t, err)
		assert.Equal(t, "executive", s.TemplateID)
	})

	t.Run("no json at all", func(t *testing.T) {
		c := newTestClient(t, chatHandler(t, "I would recommend the executive template."))
		_, err := c.SuggestDesign(context.Background(), "CEO")
		assert.Error(t, err)
	})
}

func TestEditImage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/image", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "QUFBQQ==", req["image"], "data URL prefix must be stripped")
		assert.Equal(t, "image/png", req["mimeType"])
		assert.Equal(t, "remove the background", req["instruction"])
		_ = json.NewEncoder(w).Encode(map[string]string{"image": "QkJCQg==", "mimeType": "image/png"})
	})

	out, err := c.EditImage(context.Background(), "data:image/png;base64,QUFBQQ==", "remove the background")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,QkJCQg==", out)
}
