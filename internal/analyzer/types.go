// Package analyzer computes per-turn feature vectors and session-level
// shape profiles from parsed transcript data.
package analyzer

// TopicKeyword is one frequency-weighted keyword in a turn's topic signature.
type TopicKeyword struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// ContentTypeCount records how many references of one content category
// (image, link, code, file) appear in a turn.
type ContentTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// PromptMetrics is the full feature vector computed for a single user turn.
// It is computed once at ingestion time and never mutated afterwards.
type PromptMetrics struct {
	CharCount     int `json:"char_count"`
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
	QuestionCount int `json:"question_count"`
	TokenEstimate int `json:"token_estimate"`

	ImperativeVerbs []string       `json:"imperative_verbs,omitempty"`
	TopicSignature  []TopicKeyword `json:"topic_signature,omitempty"`

	ToolCallCount  int      `json:"tool_call_count"`
	ToolNames      []string `json:"tool_names,omitempty"`
	ToolCategories []string `json:"tool_categories,omitempty"`
	ToolDiversity  float64  `json:"tool_diversity"`

	LatencyMs     int64  `json:"latency_ms"`
	LatencyBucket string `json:"latency_bucket"`

	// SimilarityToPrev is nil for the first kept turn of a session.
	SimilarityToPrev *float64 `json:"similarity_to_prev,omitempty"`
	TopicDriftScore  float64  `json:"topic_drift_score"`

	ComplexityScore   int     `json:"complexity_score"`
	FocusScore        float64 `json:"focus_score"`
	ThinkingIntensity float64 `json:"thinking_intensity"`

	Intent       string             `json:"intent"`
	ContentTypes []ContentTypeCount `json:"content_types,omitempty"`
}

// TurnInput carries everything the extractor needs for one user turn: the
// turn's text plus the assistant activity gathered by ingestion.
type TurnInput struct {
	Text            string
	ToolNames       []string
	ThinkingBlocks  []string
	LatencyMs       int64
	ImageBlockCount int

	// PrevSignature is the previous kept turn's topic signature. HasPrev
	// distinguishes "no previous turn" from "previous turn with an empty
	// signature"; both fall back to the default overlap, but only the
	// former leaves SimilarityToPrev unset.
	PrevSignature []TopicKeyword
	HasPrev       bool
}
