package utils

import "strings"

func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func NormalizeDifficulty(difficulty string) string {
	return strings.ToLower(strings.TrimSpace(difficulty))
}

func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
