package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup from free text coming from requests and
// spreadsheets. Entities produced by the policy are decoded back so that
// "Café & Cia" is stored as typed.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}

	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

func SanitizeList(items []string) []string {
	if items == nil {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if clean := SanitizeText(item); clean != "" {
			out = append(out, clean)
		}
	}

	return out
}
