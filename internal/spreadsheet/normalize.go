package spreadsheet

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

// NormalizeHeader maps a header cell such as "Código Fornecedor *" to its
// column key "codigo_fornecedor".
func NormalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.TrimSpace(strings.TrimSuffix(h, "*"))
	h = strings.ToLower(stripAccents(h))

	return strings.Join(strings.Fields(h), "_")
}

// ParseBool accepts the yes/no spellings users type into the ativo columns.
// An empty cell yields fallback.
func ParseBool(raw string, fallback bool) (bool, error) {
	v := strings.ToLower(stripAccents(strings.TrimSpace(raw)))

	switch v {
	case "":
		return fallback, nil
	case "sim", "s", "true", "1", "yes", "y", "x", "verdadeiro":
		return true, nil
	case "nao", "n", "false", "0", "no", "falso":
		return false, nil
	}

	return false, fmt.Errorf("invalid boolean %q", raw)
}

func FormatBool(b bool) string {
	if b {
		return "sim"
	}
	return "nao"
}

// NormalizeNumber rewrites a numeric cell to use a decimal point. A comma
// marks the decimal part and points before it are thousands separators, so
// "1.234,56" becomes "1234.56". Without a comma, a single point is the
// decimal separator and several points are thousands separators.
func NormalizeNumber(raw string) (string, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")

	if whole, frac, found := strings.Cut(s, ","); found {
		if strings.ContainsAny(frac, ",.") || !thousandsGrouped(whole) {
			return "", false
		}
		return strings.ReplaceAll(whole, ".", "") + "." + frac, true
	}

	if strings.Count(s, ".") > 1 {
		if !thousandsGrouped(s) {
			return "", false
		}
		return strings.ReplaceAll(s, ".", ""), true
	}

	return s, true
}

// thousandsGrouped reports whether every point in s separates three digit
// groups. Strings without points pass.
func thousandsGrouped(s string) bool {
	groups := strings.Split(strings.TrimPrefix(s, "-"), ".")
	if len(groups) == 1 {
		return true
	}

	if len(groups[0]) == 0 || len(groups[0]) > 3 {
		return false
	}

	for _, g := range groups[1:] {
		if len(g) != 3 {
			return false
		}
	}

	return true
}

// splitList splits a multi-value cell and drops empty items.
func splitList(raw, sep string) []string {
	items := []string{}

	for part := range strings.SplitSeq(raw, sep) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}

	return items
}
