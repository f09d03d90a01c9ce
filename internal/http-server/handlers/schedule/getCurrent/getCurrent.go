package getCurrent

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

// asOfLayout is the feed's local timestamp layout. The query model
// compares timestamps lexically, so "now" must be formatted the same
// way before it is passed down.
const asOfLayout = "2006-01-02T15:04:05"

type CurrentResponse struct {
	response.Response
	AsOf    string                  `json:"as_of"`
	Current map[string]models.Event `json:"current"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CurrentProvider
type CurrentProvider interface {
	CurrentByRoom(asOf string) map[string]models.Event
}

func New(log *slog.Logger, provider CurrentProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.getCurrent.New"

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

		current := provider.CurrentByRoom(asOf)

		log.Info("current events resolved",
			slog.String("as_of", asOf),
			slog.Int("rooms", len(current)),
		)

		responseOK(w, r, asOf, current)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, asOf string, current map[string]models.Event) {
	render.JSON(w, r, CurrentResponse{
		Response: response.OK(),
		AsOf:     asOf,
		Current:  current,
	})
}
