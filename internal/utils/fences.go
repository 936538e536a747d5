package utils

import "strings"

// StripFences removes leading/trailing markdown code fence markers
// (``` or ```lang) and trims surrounding whitespace. Text without fences is
// returned trimmed.
func StripFences(s string) string {
	out := strings.TrimSpace(s)

	if strings.HasPrefix(out, "```") {
		out = out[3:]
		// drop an optional language tag on the opening fence line
		if idx := strings.IndexByte(out, '\n'); idx >= 0 {
			firstLine := strings.TrimSpace(out[:idx])
			if firstLine != "" && !strings.ContainsAny(firstLine, " \t{") {
				out = out[idx+1:]
			}
		}
	}
	if idx := strings.LastIndex(out, "```"); idx >= 0 {
		out = out[:idx]
	}

	return strings.TrimSpace(out)
}

// ExtractJSONObject returns the first top-level {...} block in s, or "" when
// no balanced object is present. Used to salvage JSON payloads wrapped in
// provider commentary.
func ExtractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
