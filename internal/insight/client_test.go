package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseInsight(t *testing.T) {
	reply := `{"summary": "Solid week.", "recommendations": ["Drink earlier in the day"], "motivationalQuote": "Keep going."}`

	data, err := ParseInsight(reply)
	if err != nil {
		t.Fatalf("failed to parse reply: %v", err)
	}
	if data.Summary != "Solid week." {
		t.Errorf("expected summary, got %q", data.Summary)
	}
	if len(data.Recommendations) != 1 {
		t.Errorf("expected 1 recommendation, got %d", len(data.Recommendations))
	}
	if data.MotivationalQuote != "Keep going." {
		t.Errorf("expected quote, got %q", data.MotivationalQuote)
	}
}

func TestParseInsightStripsCodeFences(t *testing.T) {
	reply := "```json\n{\"summary\": \"ok\", \"recommendations\": [\"a\"], \"motivationalQuote\": \"q\"}\n```"

	data, err := ParseInsight(reply)
	if err != nil {
		t.Fatalf("failed to parse fenced reply: %v", err)
	}
	if data.Summary != "ok" {
		t.Errorf("expected summary, got %q", data.Summary)
	}
}

func TestParseInsightRejectsIncompleteReplies(t *testing.T) {
	replies := []string{
		`not json at all`,
		`{"recommendations": ["a"], "motivationalQuote": "q"}`,
		`{"summary": "ok", "motivationalQuote": "q"}`,
		`{"summary": "ok", "recommendations": []}`,
		`{"summary": "  ", "recommendations": ["a"], "motivationalQuote": "q"}`,
	}
	for _, reply := range replies {
		if _, err := ParseInsight(reply); err == nil {
			t.Errorf("expected error for reply %q", reply)
		}
	}
}

func TestGenerateParsesAPIResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.GenerationConfig.ResponseMimeType != "application/json" {
			t.Errorf("expected JSON response mime type, got %q", req.GenerationConfig.ResponseMimeType)
		}

		resp := map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{
						"text": `{"summary": "Good progress.", "recommendations": ["More water"], "motivationalQuote": "Onward."}`,
					}},
				},
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewGeminiClient("test-key")
	client.baseURL = server.URL

	payload := []HabitContext{{Habit: "Water", Goal: "8 glasses"}}
	data, err := client.Generate(context.Background(), payload)
	if err != nil {
		t.Fatalf("failed to generate: %v", err)
	}
	if data.Summary != "Good progress." {
		t.Errorf("expected summary, got %q", data.Summary)
	}
}

func TestGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGeminiClient("test-key")
	client.baseURL = server.URL

	payload := []HabitContext{{Habit: "Water", Goal: "8 glasses"}}
	if _, err := client.Generate(context.Background(), payload); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestGenerateRequiresKeyAndData(t *testing.T) {
	client := NewGeminiClient("")
	if _, err := client.Generate(context.Background(), []HabitContext{{Habit: "Water"}}); err == nil {
		t.Error("expected error without api key")
	}

	client = NewGeminiClient("test-key")
	if _, err := client.Generate(context.Background(), nil); err == nil {
		t.Error("expected error without habit data")
	}
}
