package services

import (
	"math"
	"strconv"
	"strings"
)

const frontMatterDelimiter = "---"

// ExtractFrontMatter splits a content document into its flat key:value header
// and the markdown body. The header is the region between a leading `---` line
// and the next `---` line; anything less than a complete delimiter pair yields
// an empty field map and the input unchanged. Header lines without a colon are
// skipped. Extraction never fails.
func ExtractFrontMatter(content []byte) (map[string]any, string) {
	text := string(content)
	lines := strings.Split(text, "\n")

	if !isDelimiter(lines[0]) {
		return map[string]any{}, text
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if isDelimiter(lines[i]) {
			end = i
			break
		}
	}
	if end == -1 {
		return map[string]any{}, text
	}

	fields := make(map[string]any)
	for _, line := range lines[1:end] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value := stripQuotes(strings.TrimSpace(rest))
		fields[strings.TrimSpace(key)] = coerceScalar(value)
	}

	return fields, strings.Join(lines[end+1:], "\n")
}

// isDelimiter reports whether a line contains exactly `---`. Only a trailing
// carriage return is tolerated; padded lines are not delimiters.
func isDelimiter(line string) bool {
	return strings.TrimSuffix(line, "\r") == frontMatterDelimiter
}

// stripQuotes removes a single level of surrounding quotes when both ends
// carry the same quote character.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// coerceScalar maps a raw header value onto bool, number or string. A value
// that parses entirely as a finite decimal number becomes one, so a quoted
// "5" turns into 5 while "2024-01-15" stays a string. Infinity, NaN and hex
// float spellings stay strings even though ParseFloat accepts them.
func coerceScalar(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if !strings.ContainsAny(s, "xX") {
		if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
			return n
		}
	}
	return s
}
