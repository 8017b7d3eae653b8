package analyzer

import (
	"sort"
	"strings"
)

// maxSignatureSize caps a topic signature at the top keywords by frequency.
const maxSignatureSize = 10

// minKeywordLength is the shortest word (exclusive) kept as a keyword.
const minKeywordLength = 3

// stopWords are common English words excluded from topic signatures.
var stopWords = map[string]bool{
	"about": true, "above": true, "after": true, "again": true, "against": true,
	"also": true, "because": true, "been": true, "before": true, "being": true,
	"below": true, "between": true, "both": true, "cannot": true, "could": true,
	"does": true, "doing": true, "down": true, "during": true, "each": true,
	"fewer": true, "from": true, "further": true, "have": true, "having": true,
	"here": true, "hers": true, "herself": true, "himself": true, "into": true,
	"itself": true, "just": true, "like": true, "more": true, "most": true,
	"much": true, "myself": true, "need": true, "once": true, "only": true,
	"other": true, "ought": true, "ours": true, "ourselves": true, "over": true,
	"same": true, "should": true, "some": true, "such": true, "than": true,
	"that": true, "their": true, "theirs": true, "them": true, "themselves": true,
	"then": true, "there": true, "these": true, "they": true, "this": true,
	"those": true, "through": true, "under": true, "until": true, "very": true,
	"want": true, "were": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "will": true, "with": true, "would": true,
	"your": true, "yours": true, "yourself": true, "yourselves": true,
	"make": true, "made": true, "gets": true, "going": true, "really": true,
	"please": true, "thanks": true, "thank": true, "okay": true, "well": true,
	"something": true, "anything": true, "everything": true, "nothing": true,
	"think": true, "know": true, "sure": true,
}

// ExtractKeywords builds a turn's topic signature: lowercase the text, strip
// punctuation except hyphens, keep words longer than three characters that
// are not stop words, and return the top ten by raw frequency, each weighted
// by frequency over the total kept word count. Ties break alphabetically for
// deterministic output.
func ExtractKeywords(text string) []TopicKeyword {
	cleaned := stripPunctuation(strings.ToLower(text))

	counts := make(map[string]int)
	total := 0
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= minKeywordLength || stopWords[word] {
			continue
		}
		counts[word]++
		total++
	}
	if total == 0 {
		return nil
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > maxSignatureSize {
		words = words[:maxSignatureSize]
	}

	signature := make([]TopicKeyword, len(words))
	for i, w := range words {
		signature[i] = TopicKeyword{
			Word:   w,
			Weight: float64(counts[w]) / float64(total),
		}
	}
	return signature
}

// stripPunctuation removes everything except letters, digits, whitespace,
// and hyphens.
func stripPunctuation(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r':
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}
