package schedule

import (
	"encoding/json"
	"fmt"

	"confsched/internal/models"
)

// rawEvent mirrors one feed record with every field optional, so that
// presence can be checked before an Event is built.
type rawEvent struct {
	Start     *string         `json:"start"`
	End       *string         `json:"end"`
	Name      *string         `json:"name"`
	Kind      *string         `json:"kind"`
	Rooms     []string        `json:"rooms"`
	Authors   []models.Author `json:"authors"`
	Abstract  *string         `json:"abstract"`
	Cancelled *bool           `json:"cancelled"`
}

type rawDocument struct {
	Schedule *[]rawEvent `json:"schedule"`
}

// ParseDocument decodes a feed document into typed events. The document
// must be a JSON object with a "schedule" array. A record missing a
// required field rejects the whole document: a partial schedule is
// worse than none, because missing slots read as free rooms.
func ParseDocument(data []byte) ([]models.Event, error) {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedInputError{Reason: err.Error()}
	}
	if doc.Schedule == nil {
		return nil, &MalformedInputError{Reason: `missing "schedule" key`}
	}

	events := make([]models.Event, 0, len(*doc.Schedule))
	for i, raw := range *doc.Schedule {
		ev, err := newEvent(raw)
		if err != nil {
			return nil, fmt.Errorf("schedule record %d: %w", i, err)
		}
		events = append(events, ev)
	}

	return events, nil
}

func newEvent(raw rawEvent) (models.Event, error) {
	switch {
	case raw.Start == nil:
		return models.Event{}, &MissingFieldError{Field: "start"}
	case raw.End == nil:
		return models.Event{}, &MissingFieldError{Field: "end"}
	case raw.Name == nil:
		return models.Event{}, &MissingFieldError{Field: "name"}
	case raw.Kind == nil:
		return models.Event{}, &MissingFieldError{Field: "kind"}
	}

	return models.Event{
		Start:     *raw.Start,
		End:       *raw.End,
		Name:      *raw.Name,
		Kind:      *raw.Kind,
		Rooms:     raw.Rooms,
		Authors:   raw.Authors,
		Abstract:  raw.Abstract,
		Cancelled: raw.Cancelled,
	}, nil
}
