package analyzer

import "math"

// Focus sub-score weights. They sum to 1.
const (
	focusLengthWeight   = 0.20
	focusSentenceWeight = 0.15
	focusQuestionWeight = 0.15
	focusToolWeight     = 0.20
	focusCohesionWeight = 0.30
)

// Complexity component weights and normalization ceilings.
const (
	complexityCharWeight    = 0.4
	complexityToolWeight    = 0.35
	complexityLatencyWeight = 0.25

	complexityCharCeiling    = 2000.0
	complexityToolCeiling    = 5.0
	complexityLatencyCeiling = 30000.0
)

// FocusScore combines five clamped [0,1] sub-scores into a composite
// measure of how narrowly scoped a turn is. Short, declarative, low-tooling,
// on-topic turns score high.
func FocusScore(charCount, sentenceCount, questionCount int, toolDiversity, overlap float64) float64 {
	length := clamp01(1 - float64(charCount)/2000)
	sentences := clamp01(1 - float64(sentenceCount-1)/10)
	questions := clamp01(1 - float64(questionCount-1)/5)
	tooling := clamp01(1 - toolDiversity)
	cohesion := clamp01(overlap)

	return focusLengthWeight*length +
		focusSentenceWeight*sentences +
		focusQuestionWeight*questions +
		focusToolWeight*tooling +
		focusCohesionWeight*cohesion
}

// ComplexityScore combines turn length, tool usage, and response latency
// into an integer 0-100.
func ComplexityScore(charCount, toolCalls int, latencyMs int64) int {
	chars := math.Min(float64(charCount)/complexityCharCeiling, 1)
	tools := math.Min(float64(toolCalls)/complexityToolCeiling, 1)
	latency := math.Min(float64(latencyMs)/complexityLatencyCeiling, 1)

	raw := clamp01(complexityCharWeight*chars + complexityToolWeight*tools + complexityLatencyWeight*latency)
	return int(math.Round(raw * 100))
}

// Latency buckets, from an effectively instant response to a stalled one.
const (
	LatencyInstant  = "instant"
	LatencyFast     = "fast"
	LatencyModerate = "moderate"
	LatencySlow     = "slow"
	LatencyVerySlow = "very-slow"
)

// LatencyBucket maps a latency in milliseconds to a coarse label.
func LatencyBucket(latencyMs int64) string {
	switch {
	case latencyMs < 1000:
		return LatencyInstant
	case latencyMs < 5000:
		return LatencyFast
	case latencyMs < 15000:
		return LatencyModerate
	case latencyMs < 60000:
		return LatencySlow
	default:
		return LatencyVerySlow
	}
}
