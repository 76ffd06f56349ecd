// headers.go
package dataframe

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var specialSymbols = regexp.MustCompile("[^a-zA-Z0-9]+")

// NormalizeHeader turns a raw column label into an identifier-safe name:
// accents are transliterated to ASCII ("Año" -> "ano"), runs of special
// symbols become single underscores and the result is lower-cased. Empty
// input stays empty.
func NormalizeHeader(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	cleaned := unidecode.Unidecode(header)
	cleaned = specialSymbols.ReplaceAllString(cleaned, "_")
	cleaned = strings.ReplaceAll(cleaned, "__", "_")
	cleaned = strings.Trim(cleaned, "_")
	return strings.ToLower(cleaned)
}

// NormalizeHeaders normalizes every label and suffixes duplicates so the
// result can name DataFrame columns directly.
func NormalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = NormalizeHeader(h)
	}
	return dedupeHeaders(out)
}

// dedupeHeaders appends _1, _2, ... to repeated names, keeping the first
// occurrence untouched.
func dedupeHeaders(headers []string) []string {
	seen := make(map[string]int)
	result := make([]string, len(headers))

	for i, header := range headers {
		originalHeader := header
		counter := 1

		for {
			if count, exists := seen[header]; exists {
				header = fmt.Sprintf("%s_%d", originalHeader, counter)
				counter++
			} else {
				seen[header] = count + 1
				break
			}
		}

		result[i] = header
	}

	return result
}
