package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func candidateReply(text string) string {
	reply := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
	raw, _ := json.Marshal(reply)
	return string(raw)
}

func TestClient_GenerateText(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateReply("Hello there")))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	text, err := client.GenerateText(context.Background(), "text-model", "Say hello")
	if err != nil {
		t.Fatalf("GenerateText returned error: %v", err)
	}
	if text != "Hello there" {
		t.Fatalf("unexpected reply: %q", text)
	}
	if gotPath != "/v1beta/models/text-model:generateContent" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key header not set")
	}
	if _, ok := gotBody["generationConfig"]; ok {
		t.Fatalf("plain text request must not force a response mime type")
	}
}

func TestClient_GenerateJSON(t *testing.T) {
	var gotBody struct {
		Contents []struct {
			Parts []struct {
				Text       string `json:"text"`
				InlineData *struct {
					MimeType string `json:"mime_type"`
					Data     string `json:"data"`
				} `json:"inline_data"`
			} `json:"parts"`
		} `json:"contents"`
		GenerationConfig *struct {
			ResponseMimeType string `json:"response_mime_type"`
		} `json:"generationConfig"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateReply(`{"bodyShape": "Pear"}`)))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	var out struct {
		BodyShape string `json:"bodyShape"`
	}
	err := client.GenerateJSON(context.Background(), "vision-model", "Analyze", "data:image/jpeg;base64,QUJD", &out)
	if err != nil {
		t.Fatalf("GenerateJSON returned error: %v", err)
	}
	if out.BodyShape != "Pear" {
		t.Fatalf("reply not decoded: %+v", out)
	}

	if gotBody.GenerationConfig == nil || gotBody.GenerationConfig.ResponseMimeType != "application/json" {
		t.Fatalf("json response mode not requested")
	}
	parts := gotBody.Contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("expected image part plus text part, got %d parts", len(parts))
	}
	if parts[0].InlineData == nil || parts[0].InlineData.Data != "QUJD" {
		t.Fatalf("data URL prefix not stripped: %+v", parts[0].InlineData)
	}
	if parts[0].InlineData.MimeType != "image/jpeg" {
		t.Fatalf("unexpected mime type: %s", parts[0].InlineData.MimeType)
	}
	if parts[1].Text != "Analyze" {
		t.Fatalf("prompt missing: %+v", parts[1])
	}
}

func TestClient_GenerateJSON_MalformedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(candidateReply("not json at all")))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	var out map[string]any
	err := client.GenerateJSON(context.Background(), "m", "p", "", &out)
	if err == nil {
		t.Fatalf("expected decode error for malformed reply")
	}
	if !strings.Contains(err.Error(), "decode model reply") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_GenerateText_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded"}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.GenerateText(context.Background(), "m", "p")
	if err == nil {
		t.Fatalf("expected error for 429 reply")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("upstream message lost: %v", err)
	}
}

func TestClient_GenerateText_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	if _, err := client.GenerateText(context.Background(), "m", "p"); err == nil {
		t.Fatalf("expected error for empty candidates")
	}
}

func TestStripDataURL(t *testing.T) {
	cases := []struct{ in, want string }{
		{"data:image/jpeg;base64,QUJD", "QUJD"},
		{"QUJD", "QUJD"},
		{"", ""},
		{"no-prefix,but-comma", "no-prefix,but-comma"},
	}
	for _, tc := range cases {
		if got := stripDataURL(tc.in); got != tc.want {
			t.Fatalf("stripDataURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
