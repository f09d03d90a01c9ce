package getNext

import (
	"log/slog"
	"net/http"
	"time"

	"confsched/internal/lib/api/response"
	"confsched/internal/lib/logger/sl"
	"confsched/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const asOfLayout = "2006-01-02T15:04:05"

type NextResponse struct {
	response.Response
	AsOf string                  `json:"as_of"`
	Next map[string]models.Event `json:"next"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NextProvider
type NextProvider interface {
	NextByRoom(asOf string) map[string]models.Event
}

func New(log *slog.Logger, provider NextProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.getNext.New"

		log := log.With(slog.String("op", op))

		asOf := r.URL.Query().Get("at")
		if asOf == "" {
			asOf = time.Now().Format(asOfLayout)
		}

		if err := validator.New().Var(asOf, "datetime="+asOfLayout); err != nil {
			log.Error("invalid at parameter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("at must be a timestamp like 2000-01-01T09:00:00"))
			return
		}

		next := provider.NextByRoom(asOf)

		log.Info("next events resolved",
			slog.String("as_of", asOf),
			slog.Int("rooms", len(next)),
		)

		responseOK(w, r, asOf, next)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, asOf string, next map[string]models.Event) {
	render.JSON(w, r, NextResponse{
		Response: response.OK(),
		AsOf:     asOf,
		Next:     next,
	})
}
