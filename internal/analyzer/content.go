package analyzer

import (
	"regexp"
	"strings"
)

// Content category labels.
const (
	ContentImage = "image"
	ContentLink  = "link"
	ContentCode  = "code"
	ContentFile  = "file"
)

var (
	imageRefPattern = regexp.MustCompile(`(?i)\b[\w./-]+\.(png|jpe?g|gif|webp|svg|bmp|ico)\b`)
	linkPattern     = regexp.MustCompile(`https?://[^\s)\]>"']+`)
	inlineCodeSpan  = regexp.MustCompile("`([^`\n]+)`")
	sourceFileRef   = regexp.MustCompile(`(?i)\b[\w./-]+\.(go|rs|py|js|jsx|ts|tsx|java|c|cc|cpp|h|hpp|rb|sh|css|html|json|yaml|yml|toml|sql|proto)\b`)
)

// longInlineCodeLength is the inline-span length above which a span counts
// as a code reference alongside fenced blocks.
const longInlineCodeLength = 20

// DetectContentTypes counts image, link, code, and source-file references in
// a turn. imageBlocks is the number of explicit image-typed content blocks
// the turn carried; filename matches in the text add to it. Only categories
// with a non-zero count are returned.
func DetectContentTypes(text string, imageBlocks int) []ContentTypeCount {
	var out []ContentTypeCount

	if n := imageBlocks + len(imageRefPattern.FindAllString(text, -1)); n > 0 {
		out = append(out, ContentTypeCount{Type: ContentImage, Count: n})
	}

	if n := len(linkPattern.FindAllString(text, -1)); n > 0 {
		out = append(out, ContentTypeCount{Type: ContentLink, Count: n})
	}

	if n := countCodeReferences(text); n > 0 {
		out = append(out, ContentTypeCount{Type: ContentCode, Count: n})
	}

	if n := countFileReferences(text); n > 0 {
		out = append(out, ContentTypeCount{Type: ContentFile, Count: n})
	}

	return out
}

// countCodeReferences sums fenced code blocks and long inline code spans.
func countCodeReferences(text string) int {
	fenced := strings.Count(text, "```") / 2

	inline := 0
	for _, m := range inlineCodeSpan.FindAllStringSubmatch(text, -1) {
		if len(m[1]) > longInlineCodeLength {
			inline++
		}
	}
	return fenced + inline
}

// countFileReferences counts distinct source-file paths mentioned in text.
// Image extensions are handled separately and excluded here.
func countFileReferences(text string) int {
	seen := make(map[string]bool)
	for _, m := range sourceFileRef.FindAllString(text, -1) {
		seen[strings.ToLower(m)] = true
	}
	return len(seen)
}
