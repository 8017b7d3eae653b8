package analyzer

import (
	"regexp"
	"strings"
)

// thinkingCeiling is the total thinking-block character count that maps to
// full thinking intensity.
const thinkingCeiling = 2000.0

// sentenceTerminators matches runs of sentence punctuation followed by
// whitespace or end of text.
var sentenceTerminators = regexp.MustCompile(`[.!?]+(\s|$)`)

// ExtractFeatures computes the complete feature vector for one user turn.
// It is pure: identical input always yields identical metrics, and no state
// is shared between calls.
func ExtractFeatures(in TurnInput) PromptMetrics {
	text := in.Text

	charCount := len(text)
	wordCount := len(strings.Fields(text))
	sentenceCount := countSentences(text)
	questionCount := strings.Count(text, "?")

	verbs := DetectImperativeVerbs(text)
	signature := ExtractKeywords(text)

	toolNames := UniqueToolNames(in.ToolNames)
	categories := ToolCategorySet(in.ToolNames)
	diversity := ToolDiversity(in.ToolNames)

	latency := in.LatencyMs
	if latency < 0 {
		latency = 0
	}

	overlap := DefaultOverlap
	var similarity *float64
	if in.HasPrev {
		v := Overlap(signature, in.PrevSignature)
		overlap = v
		similarity = &v
	}

	m := PromptMetrics{
		CharCount:     charCount,
		WordCount:     wordCount,
		SentenceCount: sentenceCount,
		QuestionCount: questionCount,
		TokenEstimate: estimateTokens(charCount),

		ImperativeVerbs: verbs,
		TopicSignature:  signature,

		ToolCallCount:  len(in.ToolNames),
		ToolNames:      toolNames,
		ToolCategories: categories,
		ToolDiversity:  diversity,

		LatencyMs:     latency,
		LatencyBucket: LatencyBucket(latency),

		SimilarityToPrev: similarity,
		TopicDriftScore:  1 - overlap,

		ThinkingIntensity: thinkingIntensity(in.ThinkingBlocks),
		Intent:            ClassifyIntent(text, wordCount, questionCount, verbs),
		ContentTypes:      DetectContentTypes(text, in.ImageBlockCount),
	}

	m.FocusScore = FocusScore(charCount, sentenceCount, questionCount, diversity, overlap)
	m.ComplexityScore = ComplexityScore(charCount, len(in.ToolNames), latency)

	return m
}

// countSentences counts terminator runs, with a minimum of one for any
// non-empty text.
func countSentences(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	n := len(sentenceTerminators.FindAllString(text, -1))
	if n == 0 {
		return 1
	}
	return n
}

// thinkingIntensity sums thinking-block lengths against a fixed ceiling.
func thinkingIntensity(blocks []string) float64 {
	total := 0
	for _, b := range blocks {
		total += len(b)
	}
	return clamp01(float64(total) / thinkingCeiling)
}

// estimateTokens approximates a token count from character length. Four
// characters per token tracks typical BPE output on English prose.
func estimateTokens(charCount int) int {
	return (charCount + 3) / 4
}
