package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/julianstephens/trackly/internal/models"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	geminiModel   = "gemini-3-flash-preview"
)

// GenerationError covers every way a generation attempt can fail: transport,
// a non-OK status, or a reply that does not match the expected structure.
// It is fully recoverable by retriggering.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("insight generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("insight generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Generator produces insight data from a bounded habit summary
type Generator interface {
	Generate(ctx context.Context, data []HabitContext) (*models.InsightData, error)
}

// GeneratorFunc adapts a plain function to the Generator interface
type GeneratorFunc func(ctx context.Context, data []HabitContext) (*models.InsightData, error)

func (f GeneratorFunc) Generate(ctx context.Context, data []HabitContext) (*models.InsightData, error) {
	return f(ctx, data)
}

// GeminiClient calls the Gemini generateContent API with a JSON response
// schema. One attempt per call; retrying is an explicit user action.
type GeminiClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// responseSchema constrains the model reply to the three required fields
var responseSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"summary": {
			"type": "STRING",
			"description": "A 2-3 sentence summary of overall progress."
		},
		"recommendations": {
			"type": "ARRAY",
			"items": {"type": "STRING"},
			"description": "3 actionable tips based on the data."
		},
		"motivationalQuote": {
			"type": "STRING",
			"description": "A short motivational quote tailored to the user's journey."
		}
	},
	"required": ["summary", "recommendations", "motivationalQuote"]
}`)

// NewGeminiClient creates a client for the Gemini generateContent API
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Generate submits the habit summary and parses the structured reply
func (c *GeminiClient) Generate(ctx context.Context, data []HabitContext) (*models.InsightData, error) {
	if c.apiKey == "" {
		return nil, &GenerationError{Reason: "no API key configured, run 'trackly key set'"}
	}
	if len(data) == 0 {
		return nil, &GenerationError{Reason: "no habit data to analyze"}
	}

	dataContext, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, &GenerationError{Reason: "marshal data context", Err: err}
	}

	prompt := fmt.Sprintf(`Analyze the following user habit tracking data and provide helpful insights, trends, and personalized recommendations.

Data Context:
%s

Please provide the response in a structured JSON format.`, dataContext)

	req := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &GenerationError{Reason: "marshal request", Err: err}
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.baseURL, geminiModel)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, &GenerationError{Reason: "create request", Err: err}
	}
	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &GenerationError{Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GenerationError{Reason: "read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &GenerationError{Reason: fmt.Sprintf("API error (%d): %s", resp.StatusCode, string(respBody))}
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, &GenerationError{Reason: "decode response", Err: err}
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return nil, &GenerationError{Reason: "empty response content"}
	}

	return ParseInsight(apiResp.Candidates[0].Content.Parts[0].Text)
}

// ParseInsight validates the model reply against the expected shape. Markdown
// code fences around the JSON are tolerated and stripped.
func ParseInsight(text string) (*models.InsightData, error) {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		if idx := strings.Index(cleaned, "\n"); idx >= 0 {
			cleaned = cleaned[idx+1:]
		}
		if idx := strings.LastIndex(cleaned, "```"); idx >= 0 {
			cleaned = cleaned[:idx]
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	var data models.InsightData
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, &GenerationError{Reason: "reply is not valid JSON", Err: err}
	}

	if strings.TrimSpace(data.Summary) == "" {
		return nil, &GenerationError{Reason: "reply is missing a summary"}
	}
	if len(data.Recommendations) == 0 {
		return nil, &GenerationError{Reason: "reply is missing recommendations"}
	}
	if strings.TrimSpace(data.MotivationalQuote) == "" {
		return nil, &GenerationError{Reason: "reply is missing a motivational quote"}
	}

	return &data, nil
}
