package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

// Intent labels produced by ClassifyIntent.
const (
	IntentError         = "error"
	IntentClarification = "clarification"
	IntentQuestion      = "question"
	IntentCreative      = "creative"
	IntentInformational = "informational"
	IntentCommand       = "command"
)

// errorVocabulary signals debugging or fixing work. Checked as lowercase
// substrings, which keeps phrases like "stack trace" matchable.
var errorVocabulary = []string{
	"error", "bug", "fix", "crash", "exception", "stack trace", "traceback",
	"broken", "doesn't work", "doesnt work", "not working", "fails", "failing",
	"failure", "regression", "segfault", "panic",
}

// clarificationVocabulary signals the user is correcting or refining an
// earlier turn.
var clarificationVocabulary = []string{
	"actually", "instead", "i meant", "wait", "sorry", "my mistake",
	"to clarify", "i mean", "rather", "let me rephrase", "correction",
}

// creativeVocabulary signals open-ended generative requests.
var creativeVocabulary = []string{
	"write a", "create a", "imagine", "poem", "story", "brainstorm",
	"compose", "draft", "invent", "come up with", "design a", "generate a",
}

// informationalVocabulary signals the user is supplying context rather than
// asking for anything.
var informationalVocabulary = []string{
	"here's", "here is", "fyi", "for context", "for reference",
	"for your information", "note that", "just so you know", "heads up",
	"as background",
}

// imperativeVerbs is the canonical command-verb vocabulary. Matched against
// whole words, case-insensitively.
var imperativeVerbs = map[string]bool{
	"add": true, "build": true, "change": true, "check": true, "clean": true,
	"configure": true, "convert": true, "create": true, "debug": true,
	"delete": true, "deploy": true, "explain": true, "extract": true,
	"find": true, "fix": true, "generate": true, "implement": true,
	"improve": true, "install": true, "list": true, "merge": true,
	"move": true, "optimize": true, "refactor": true, "remove": true,
	"rename": true, "replace": true, "rewrite": true, "run": true,
	"show": true, "sort": true, "split": true, "summarize": true,
	"test": true, "update": true, "write": true,
}

// clarificationWordLimit is the word count below which clarification
// vocabulary is trusted; long messages reusing those words are usually new
// requests, not corrections.
const clarificationWordLimit = 40

// shortQuestionWordLimit is the word count below which a single question
// mark is enough to classify a turn as a question.
const shortQuestionWordLimit = 25

// questionStartPattern matches turns opening with an interrogative or
// auxiliary verb. "can"/"could" are deliberately absent so that "can you"
// openers fall through to the command check.
var questionStartPattern = regexp.MustCompile(`^(what|when|where|who|whom|whose|why|how|which|is|are|was|were|do|does|did|will|would|should|shall)\b`)

// DetectImperativeVerbs returns the sorted, deduplicated, lowercased command
// verbs present in text.
func DetectImperativeVerbs(text string) []string {
	seen := make(map[string]bool)
	var verbs []string
	for _, word := range strings.Fields(stripPunctuation(strings.ToLower(text))) {
		if imperativeVerbs[word] && !seen[word] {
			seen[word] = true
			verbs = append(verbs, word)
		}
	}
	sort.Strings(verbs)
	return verbs
}

// ClassifyIntent assigns one of six intent labels via an ordered rule
// cascade. The order is a binding contract: each rule is only consulted when
// every earlier rule failed to match.
func ClassifyIntent(text string, wordCount, questionCount int, verbs []string) string {
	lower := strings.ToLower(strings.TrimSpace(text))

	hasError := containsAny(lower, errorVocabulary)

	// 1. Error/fix vocabulary dominates everything else.
	if hasError {
		return IntentError
	}

	// 2. Short messages with correction phrasing are clarifications.
	if containsAny(lower, clarificationVocabulary) && wordCount < clarificationWordLimit {
		return IntentClarification
	}

	// 3. Interrogative turns: two question marks, or one on a short turn.
	if questionCount >= 2 || (questionCount == 1 && wordCount < shortQuestionWordLimit) {
		if questionStartPattern.MatchString(lower) {
			return IntentQuestion
		}
		if strings.HasPrefix(lower, "can you ") {
			return IntentCommand
		}
		return IntentQuestion
	}

	// 4. Generative vocabulary with no error signals.
	if containsAny(lower, creativeVocabulary) {
		return IntentCreative
	}

	// 5. Pure context-sharing: informational phrasing, no questions, no verbs.
	if containsAny(lower, informationalVocabulary) && questionCount == 0 && len(verbs) == 0 {
		return IntentInformational
	}

	// 6. Any imperative verb makes it a command.
	if len(verbs) > 0 {
		return IntentCommand
	}

	// 7. Fallback.
	if questionCount > 0 {
		return IntentQuestion
	}
	return IntentCommand
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, vocabulary []string) bool {
	for _, v := range vocabulary {
		if strings.Contains(s, v) {
			return true
		}
	}
	return false
}
