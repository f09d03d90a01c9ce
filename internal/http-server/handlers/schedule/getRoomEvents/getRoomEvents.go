package getRoomEvents

import (
	"log/slog"
	"net/http"

	"confsched/internal/lib/api/response"
	"confsched/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type RoomEventsResponse struct {
	response.Response
	Room   string         `json:"room"`
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomEventsProvider
type RoomEventsProvider interface {
	EventsInRoom(name string) []models.Event
}

func New(log *slog.Logger, provider RoomEventsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.getRoomEvents.New"

		log := log.With(slog.String("op", op))

		room := chi.URLParam(r, "room")
		if room == "" {
			log.Error("room name is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("room name is required"))
			return
		}

		log = log.With(slog.String("room", room))

		events := provider.EventsInRoom(room)

		log.Info("room events listed", slog.Int("count", len(events)))

		responseOK(w, r, room, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, room string, events []models.Event) {
	render.JSON(w, r, RoomEventsResponse{
		Response: response.OK(),
		Room:     room,
		Events:   events,
	})
}
