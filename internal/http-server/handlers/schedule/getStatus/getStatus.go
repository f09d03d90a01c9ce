package getStatus

import (
	"log/slog"
	"net/http"

	"confsched/internal/lib/api/response"
	"confsched/internal/schedule"

	"github.com/go-chi/render"
)

type StatusResponse struct {
	response.Response
	Schedule schedule.Status `json:"schedule"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusProvider
type StatusProvider interface {
	Status() schedule.Status
}

func New(log *slog.Logger, provider StatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.getStatus.New"

		log := log.With(slog.String("op", op))

		status := provider.Status()

		log.Info("status reported",
			slog.Bool("loaded", status.Loaded),
			slog.Int("events", status.EventCount),
		)

		responseOK(w, r, status)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, status schedule.Status) {
	render.JSON(w, r, StatusResponse{
		Response: response.OK(),
		Schedule: status,
	})
}
