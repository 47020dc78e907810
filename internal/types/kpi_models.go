// internal/types/kpi_models.go
package types

// --------------------------------------------
// Metrics produced by the aggregator
// --------------------------------------------

// SpeechMetrics: pacing and delivery of the trainee.
type SpeechMetrics struct {
	SpeechRate    float64 `json:"speech_rate"`    // words per minute
	TalkRatio     float64 `json:"talk_ratio"`     // 0–100
	SilenceRatio  float64 `json:"silence_ratio"`  // 5–40
	FillerDensity float64 `json:"filler_density"` // per 100 words
	Clarity       float64 `json:"clarity"`        // 0–10
}

// ConversationMetrics: question technique and turn dynamics.
type ConversationMetrics struct {
	OpenQuestionRate float64 `json:"open_question_rate"` // 0–100
	FollowUpRate     float64 `json:"follow_up_rate"`     // 0–100
	TurnBalance      float64 `json:"turn_balance"`       // 0–10
	EmpathyScore     float64 `json:"empathy_score"`      // 0–10
}

type CriterionScore struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
	Score  float64 `json:"score"` // 0–10
}

// ContentMetrics: rubric coverage.
type ContentMetrics struct {
	TopicCoverage   float64          `json:"topic_coverage"`   // 0–100
	EvidenceDensity float64          `json:"evidence_density"` // markers per user turn
	CriteriaScores  []CriterionScore `json:"criteria_scores"`
}

// OutcomeMetrics: how the conversation ended.
type OutcomeMetrics struct {
	NextStepQuality int `json:"next_step_quality"` // 0 none, 1 vague, 2 specific, 3 SMART
	Resolutions     int `json:"resolutions"`
	Decisions       int `json:"decisions"`
	ActionItems     int `json:"action_items"`
}

// ClimateMetrics: tone of the trainee.
type ClimateMetrics struct {
	SentimentDelta    float64 `json:"sentiment_delta"` // -2..2
	SentimentFallback bool    `json:"sentiment_fallback"`
	EmpathyMarkers    int     `json:"empathy_markers"`
	PolitenessMarkers int     `json:"politeness_markers"`
	ComplianceFlags   int     `json:"compliance_flags"`
}

// CategoryScores holds the five normalized sub-scores, 0–10 each.
type CategoryScores struct {
	Speech       float64 `json:"speech"`
	Conversation float64 `json:"conversation"`
	Content      float64 `json:"content"`
	Outcome      float64 `json:"outcome"`
	Climate      float64 `json:"climate"`
}

type MetricsResult struct {
	Speech         SpeechMetrics       `json:"speech"`
	Conversation   ConversationMetrics `json:"conversation"`
	Content        ContentMetrics      `json:"content"`
	Outcome        OutcomeMetrics      `json:"outcome"`
	Climate        ClimateMetrics      `json:"climate"`
	CategoryScores CategoryScores      `json:"category_scores"`
	OverallScore   float64             `json:"overall_score"` // 0–10
}

// --------------------------------------------
// Report delivered to the dashboard / export
// --------------------------------------------

type ScoreLevel string

const (
	LevelExcellent        ScoreLevel = "excellent"
	LevelGood             ScoreLevel = "good"
	LevelSatisfactory     ScoreLevel = "satisfactory"
	LevelNeedsImprovement ScoreLevel = "needs_improvement"
)

type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusWarning   Status = "warning"
	StatusPoor      Status = "poor"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type MetricCard struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Target      float64 `json:"target"`
	Status      Status  `json:"status"`
	Description string  `json:"description"`
}

// CategoryMetrics groups the cards of one metric category, in display order.
type CategoryMetrics struct {
	Category string       `json:"category"`
	Title    string       `json:"title"`
	Metrics  []MetricCard `json:"metrics"`
}

type BenchmarkComparison struct {
	YourScore     float64 `json:"your_score"`
	AverageScore  float64 `json:"average_score"`
	TopPerformers float64 `json:"top_performers"`
	Percentile    int     `json:"percentile"`
}

type Recommendation struct {
	Category    string   `json:"category"`
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ActionItems []string `json:"action_items"`
}

type SimulationReport struct {
	OverallScore        float64             `json:"overall_score"`
	ScoreLevel          ScoreLevel          `json:"score_level"`
	Summary             string              `json:"summary"`
	Highlights          []string            `json:"highlights"`
	Improvements        []string            `json:"improvements"`
	NextSteps           []string            `json:"next_steps"`
	DetailedMetrics     []CategoryMetrics   `json:"detailed_metrics"`
	BenchmarkComparison BenchmarkComparison `json:"benchmark_comparison"`
	Recommendations     []Recommendation    `json:"recommendations"`
}
