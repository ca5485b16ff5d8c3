package models

// InsightData is the parsed result of a successful insight generation
type InsightData struct {
	Summary           string   `json:"summary"`
	Recommendations   []string `json:"recommendations"`
	MotivationalQuote string   `json:"motivationalQuote"`
}
