package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "Label with suffix", raw: "Larry (Stooge)", expected: "larry"},
		{name: "Another label with suffix", raw: "Moe (Stooge)", expected: "moe"},
		{name: "Single word", raw: "Curly", expected: "curly"},
		{name: "Already lowercase", raw: "larry", expected: "larry"},
		{name: "Empty string", raw: "", expected: ""},
		{name: "Leading space", raw: " Larry", expected: ""},
		{name: "Multiple spaces", raw: "Main Hall A", expected: "main"},
		{name: "Punctuation is kept", raw: "Larry(Stooge)", expected: "larry(stooge)"},
		{name: "Mixed case", raw: "LARRY (Stooge)", expected: "larry"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Normalize(tc.raw))
		})
	}
}

func TestNormalizeIsLowercaseAndSpaceFree(t *testing.T) {
	t.Parallel()

	labels := []string{
		"Larry (Stooge)",
		"Moe (Stooge)",
		"Main Hall A",
		"room 3",
		"QUIET Room",
		"",
		"x",
	}

	for _, raw := range labels {
		got := Normalize(raw)

		assert.Equal(t, strings.ToLower(got), got, "Normalize(%q) must be lowercase", raw)
		assert.NotContains(t, got, " ", "Normalize(%q) must not contain spaces", raw)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	labels := []string{"Larry (Stooge)", "Moe (Stooge)", "Main Hall A", ""}

	for _, raw := range labels {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once))
	}
}
