package resolver

import (
	"regexp"
	"strings"
	"unicode"
)

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ExtractYear pulls the first four-digit year token out of text, returning
// the year (0 when absent) and the text with the token removed.
func ExtractYear(text string) (int, string) {
	match := yearPattern.FindString(text)
	if match == "" {
		return 0, text
	}
	year := 0
	for _, r := range match {
		year = year*10 + int(r-'0')
	}
	remainder := strings.TrimSpace(yearPattern.ReplaceAllString(text, " "))
	return year, remainder
}

// normalizeTitle lowercases and strips punctuation, collapsing runs of
// whitespace, so titles compare on their word content alone.
func normalizeTitle(title string) string {
	var builder strings.Builder
	builder.Grow(len(title))
	prevSpace := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			builder.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.' || r == ':':
			if !prevSpace {
				builder.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	return strings.TrimSpace(builder.String())
}

// stripStopwords removes the configured function words from a normalized
// query. Multi-word stopwords are removed first so "the one" goes before
// "one" would have a chance to mangle a real title.
func stripStopwords(normalized string, stopwords []string) string {
	multi := make([]string, 0, len(stopwords))
	single := make(map[string]struct{}, len(stopwords))
	for _, word := range stopwords {
		if strings.Contains(word, " ") {
			multi = append(multi, word)
		} else {
			single[word] = struct{}{}
		}
	}

	for _, phrase := range multi {
		normalized = strings.ReplaceAll(" "+normalized+" ", " "+phrase+" ", " ")
		normalized = strings.TrimSpace(normalized)
	}

	fields := strings.Fields(normalized)
	kept := fields[:0]
	for _, field := range fields {
		if _, ok := single[field]; ok {
			continue
		}
		kept = append(kept, field)
	}
	if len(kept) == 0 {
		// Everything was a stopword; better to search the raw text than
		// nothing at all.
		return normalized
	}
	return strings.Join(kept, " ")
}
