package services

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fencePattern         = regexp.MustCompile("^```[a-zA-Z0-9]*$")
	trailingCommaPattern = regexp.MustCompile(`,(\s*[\]}])`)
)

// stripFences drops every line that is a bare markdown code-fence marker
// (``` optionally followed by a language tag), keeping the content between.
func stripFences(raw string) string {
	if !strings.Contains(raw, "```") {
		return raw
	}

	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		if fencePattern.MatchString(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// repairJSON applies the error-tolerant fixups: trailing commas before a
// closing bracket or brace are removed and carriage returns stripped.
func repairJSON(raw string) string {
	fixed := trailingCommaPattern.ReplaceAllString(raw, "$1")
	return strings.ReplaceAll(fixed, "\r", "")
}

// ParseKeywordList turns a model reply into a flat keyword list. The degraded
// flag reports that the reply was not a valid JSON array and the line-split
// fallback kicked in; that is a documented degraded mode, not an error.
func ParseKeywordList(raw string) ([]string, bool) {
	cleaned := strings.TrimSpace(stripFences(raw))

	var list []string
	if err := json.Unmarshal([]byte(cleaned), &list); err == nil {
		return list, false
	}
	if err := json.Unmarshal([]byte(repairJSON(cleaned)), &list); err == nil {
		return list, false
	}

	// The model sometimes answers with a single quoted string or loose
	// bullet lines instead of an array.
	var scalar string
	if err := json.Unmarshal([]byte(cleaned), &scalar); err == nil {
		return splitKeywordLines(scalar), true
	}
	return splitKeywordLines(cleaned), true
}

func splitKeywordLines(raw string) []string {
	var keywords []string
	for _, line := range strings.Split(raw, "\n") {
		kw := strings.Trim(line, "-• \t")
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// extractObjectBounds slices the reply down to the first '{' .. last '}'
// span, discarding any prose the model added around the JSON body.
func extractObjectBounds(raw string) string {
	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first >= 0 && last > first {
		return raw[first : last+1]
	}
	return raw
}

// parseObject is the strict variant used for quiz documents: fences and
// surrounding prose are stripped, then one strict parse and one repaired
// retry. A failure here is fatal for the request, unlike the keyword path.
func parseObject(raw string, v any) error {
	cleaned := extractObjectBounds(strings.TrimSpace(stripFences(raw)))
	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}
	return json.Unmarshal([]byte(repairJSON(cleaned)), v)
}
