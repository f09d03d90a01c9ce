package schedule

import "strings"

// Normalize maps a raw room label to its canonical short name: the
// first space-delimited token, lowercased. "Larry (Stooge)" becomes
// "larry". Punctuation is deliberately left alone, so a label like
// "Larry(Stooge)" normalizes to "larry(stooge)"; the feed has never
// produced one and the short names stay stable across years.
func Normalize(raw string) string {
	token, _, _ := strings.Cut(raw, " ")
	return strings.ToLower(token)
}
