package analyzer

import "sort"

// toolCategoryCount is the number of fixed tool categories used for the
// diversity ratio. Unmapped tools fall into "other", which still counts as
// a used category.
const toolCategoryCount = 7

// toolCategories maps tool names to one of seven fixed categories. Lookup
// is exact; anything absent maps to "other".
var toolCategories = map[string]string{
	// filesystem
	"Read":         "filesystem",
	"Write":        "filesystem",
	"Edit":         "filesystem",
	"MultiEdit":    "filesystem",
	"NotebookEdit": "filesystem",
	"Glob":         "filesystem",
	"LS":           "filesystem",

	// execution
	"Bash":       "execution",
	"BashOutput": "execution",
	"KillShell":  "execution",
	"Task":       "execution",
	"computer":   "execution",

	// browser
	"WebFetch":         "browser",
	"browser_navigate": "browser",
	"browser_click":    "browser",
	"browser_type":     "browser",
	"puppeteer":        "browser",

	// search
	"Grep":          "search",
	"WebSearch":     "search",
	"code_search":   "search",
	"vector_search": "search",

	// media
	"screenshot":      "media",
	"image_generate":  "media",
	"video_transcode": "media",
	"text_to_speech":  "media",

	// communication
	"SlackPost":    "communication",
	"SendEmail":    "communication",
	"CreateIssue":  "communication",
	"PostComment":  "communication",

	// infrastructure
	"docker":    "infrastructure",
	"kubectl":   "infrastructure",
	"terraform": "infrastructure",
	"aws_cli":   "infrastructure",
}

// CategorizeTool returns the fixed category for a tool name, or "other".
func CategorizeTool(name string) string {
	if cat, ok := toolCategories[name]; ok {
		return cat
	}
	return "other"
}

// UniqueToolNames deduplicates tool names preserving sorted order.
func UniqueToolNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var unique []string
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		unique = append(unique, n)
	}
	sort.Strings(unique)
	return unique
}

// ToolCategorySet returns the sorted distinct categories covered by names.
func ToolCategorySet(names []string) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, n := range names {
		cat := CategorizeTool(n)
		if !seen[cat] {
			seen[cat] = true
			cats = append(cats, cat)
		}
	}
	sort.Strings(cats)
	return cats
}

// ToolDiversity is the fraction of the seven fixed categories covered by the
// given tool names, capped at 1.
func ToolDiversity(names []string) float64 {
	cats := ToolCategorySet(names)
	if len(cats) == 0 {
		return 0
	}
	d := float64(len(cats)) / toolCategoryCount
	if d > 1 {
		return 1
	}
	return d
}
