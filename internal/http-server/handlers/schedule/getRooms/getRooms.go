package getRooms

import (
	"log/slog"
	"net/http"

	"confsched/internal/lib/api/response"

	"github.com/go-chi/render"
)

type RoomsResponse struct {
	response.Response
	Rooms     []string `json:"rooms"`
	Canonical []string `json:"canonical"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomsProvider
type RoomsProvider interface {
	Rooms() []string
	RoomsCanonical() []string
}

func New(log *slog.Logger, rooms RoomsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.getRooms.New"

		log := log.With(slog.String("op", op))

		raw := rooms.Rooms()
		canonical := rooms.RoomsCanonical()

		log.Info("rooms listed", slog.Int("count", len(raw)))

		responseOK(w, r, raw, canonical)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, rooms, canonical []string) {
	render.JSON(w, r, RoomsResponse{
		Response:  response.OK(),
		Rooms:     rooms,
		Canonical: canonical,
	})
}
