package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"schedule": [
			{
				"start": "2000-01-01T01:00:00",
				"end": "2000-01-01T02:00:00",
				"name": "Intro to Stooges",
				"kind": "talk",
				"rooms": ["Larry (Stooge)"],
				"authors": [{"name": "Shemp"}],
				"abstract": "A gentle introduction."
			},
			{
				"start": "2000-01-01T02:00:00",
				"end": "2000-01-01T03:00:00",
				"name": "Room Changeover",
				"kind": "Room Changeover",
				"rooms": ["Larry (Stooge)", "Moe (Stooge)"]
			}
		]
	}`)

	events, err := ParseDocument(doc)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Intro to Stooges", events[0].Name)
	assert.Equal(t, "2000-01-01T01:00:00", events[0].Start)
	assert.Equal(t, "2000-01-01T02:00:00", events[0].End)
	assert.Equal(t, []string{"Larry (Stooge)"}, events[0].Rooms)
	require.Len(t, events[0].Authors, 1)
	assert.Equal(t, "Shemp", events[0].Authors[0].Name)
	require.NotNil(t, events[0].Abstract)
	assert.Equal(t, "A gentle introduction.", *events[0].Abstract)
	assert.Nil(t, events[0].Cancelled)

	assert.Equal(t, "Room Changeover", events[1].Kind)
	assert.Nil(t, events[1].Abstract)
}

func TestParseDocumentMissingFields(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		document      string
		expectedField string
	}{
		{
			name:          "Missing start",
			document:      `{"schedule": [{"end": "2000-01-01T02:00:00", "name": "x", "kind": "talk"}]}`,
			expectedField: "start",
		},
		{
			name:          "Missing end",
			document:      `{"schedule": [{"start": "2000-01-01T01:00:00", "name": "x", "kind": "talk"}]}`,
			expectedField: "end",
		},
		{
			name:          "Missing name",
			document:      `{"schedule": [{"start": "2000-01-01T01:00:00", "end": "2000-01-01T02:00:00", "kind": "talk"}]}`,
			expectedField: "name",
		},
		{
			name:          "Missing kind",
			document:      `{"schedule": [{"start": "2000-01-01T01:00:00", "end": "2000-01-01T02:00:00", "name": "x"}]}`,
			expectedField: "kind",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			events, err := ParseDocument([]byte(tc.document))
			require.Error(t, err)
			assert.Nil(t, events)

			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.expectedField, missing.Field)
		})
	}
}

func TestParseDocumentRejectsWholeDocument(t *testing.T) {
	t.Parallel()

	// One good record followed by one bad record: nothing survives.
	doc := []byte(`{
		"schedule": [
			{"start": "2000-01-01T01:00:00", "end": "2000-01-01T02:00:00", "name": "ok", "kind": "talk"},
			{"start": "2000-01-01T02:00:00", "end": "2000-01-01T03:00:00", "kind": "talk"}
		]
	}`)

	events, err := ParseDocument(doc)
	require.Error(t, err)
	assert.Nil(t, events)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)
	assert.Contains(t, err.Error(), "record 1")
}

func TestParseDocumentMalformed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		document string
	}{
		{name: "Not JSON", document: `this is not json`},
		{name: "Missing schedule key", document: `{"talks": []}`},
		{name: "Schedule is not an array", document: `{"schedule": 42}`},
		{name: "Top level is an array", document: `[]`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			events, err := ParseDocument([]byte(tc.document))
			require.Error(t, err)
			assert.Nil(t, events)

			var malformed *MalformedInputError
			assert.True(t, errors.As(err, &malformed))
		})
	}
}

func TestParseDocumentEmptySchedule(t *testing.T) {
	t.Parallel()

	events, err := ParseDocument([]byte(`{"schedule": []}`))
	require.NoError(t, err)
	assert.Empty(t, events)
}
