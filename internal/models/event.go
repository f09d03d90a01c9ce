package models

import "strings"

// Kinds the feed is known to emit. The set is open-ended: anything the
// feed invents later still parses, it just won't classify as content or
// break.
const (
	KindTalk         = "talk"
	KindTutorial     = "tutorial"
	KindOther        = "other"
	KindMorningTea   = "morning tea"
	KindLunch        = "lunch"
	KindAfternoonTea = "afternoon tea"
	KindChangeover   = "Room Changeover"
)

// quietRoomMarker is a feed quirk: the Quiet Room slot has a content
// kind but no abstract, and is still real programming.
const quietRoomMarker = "Quiet Room"

type Author struct {
	Name string `json:"name"`
}

// Event is one scheduled item from the conference feed. Start and End
// are kept as the feed's ISO-8601 local timestamp strings; the feed
// uses a single zone, so they compare lexically and are never parsed
// into time.Time.
type Event struct {
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	Rooms     []string `json:"rooms,omitempty"`
	Authors   []Author `json:"authors,omitempty"`
	Abstract  *string  `json:"abstract,omitempty"`
	Cancelled *bool    `json:"cancelled,omitempty"`
}

func (e Event) IsCancelled() bool {
	return e.Cancelled != nil && *e.Cancelled
}

func (e Event) IsBreak() bool {
	switch e.Kind {
	case KindMorningTea, KindLunch, KindAfternoonTea:
		return true
	}
	return false
}

func (e Event) IsChangeover() bool {
	return e.Kind == KindChangeover
}

// IsContent reports whether the event is real programming rather than a
// placeholder or a meta slot. An event of content kind with no abstract
// is a placeholder, except the Quiet Room slot.
func (e Event) IsContent() bool {
	switch e.Kind {
	case KindTalk, KindTutorial, KindOther:
	default:
		return false
	}
	return strings.Contains(e.Name, quietRoomMarker) || e.Abstract != nil
}

// Render formats the event as a single display line.
func (e Event) Render() string {
	var b strings.Builder
	b.WriteString(e.Start)
	b.WriteString(" - ")
	b.WriteString(e.End)
	b.WriteString("  ")

	switch {
	case e.IsCancelled():
		b.WriteString("CANCELLED: ")
		b.WriteString(e.Name)
	case e.IsBreak():
		b.WriteString("BREAK: ")
		b.WriteString(e.Name)
	case e.IsChangeover():
		b.WriteString(KindChangeover)
	default:
		author := ""
		if len(e.Authors) > 0 {
			author = e.Authors[0].Name
		}
		b.WriteString(e.Name)
		b.WriteString(" (")
		b.WriteString(author)
		b.WriteString(")")
	}

	return b.String()
}
