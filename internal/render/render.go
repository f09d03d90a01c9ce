package render

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"confsched/internal/models"
	"confsched/internal/schedule"
)

// RoomContext is the data handed to the room template.
type RoomContext struct {
	Room    string
	AsOf    string
	Current *models.Event
	Next    *models.Event
	Events  []models.Event
}

// Writer renders one output file per canonical room from a single
// template.
type Writer struct {
	log          *slog.Logger
	templatePath string
	outputDir    string
}

func NewWriter(log *slog.Logger, templatePath, outputDir string) *Writer {
	return &Writer{
		log:          log,
		templatePath: templatePath,
		outputDir:    outputDir,
	}
}

// WriteRooms executes the template for every canonical room in the
// index, as of the given timestamp, writing <outputDir>/<room>.txt.
func (w *Writer) WriteRooms(ix *schedule.Index, asOf string) error {
	const op = "render.Writer.WriteRooms"

	tmpl, err := template.ParseFiles(w.templatePath)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rooms := make([]string, 0, len(ix.RoomsCanonical()))
	for room := range ix.RoomsCanonical() {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	current := ix.CurrentByRoom(asOf)
	next := ix.NextByRoom(asOf)

	for _, room := range rooms {
		ctx := RoomContext{
			Room:   room,
			AsOf:   asOf,
			Events: ix.EventsInRoom(room),
		}
		if ev, ok := current[room]; ok {
			ctx.Current = &ev
		}
		if ev, ok := next[room]; ok {
			ctx.Next = &ev
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, ctx); err != nil {
			return fmt.Errorf("%s: room %s: %w", op, room, err)
		}

		path := filepath.Join(w.outputDir, room+".txt")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		w.log.Info("room file written",
			slog.String("op", op),
			slog.String("room", room),
			slog.String("path", path),
		)
	}

	return nil
}
