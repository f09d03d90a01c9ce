package reloadSchedule

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"confsched/internal/lib/api/response"
	"confsched/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ReloadRequest struct {
	// SaveSnapshot overrides whether the fetched document is persisted.
	// Absent means yes.
	SaveSnapshot *bool `json:"save_snapshot" validate:"omitempty"`
}

type ReloadResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Refresher
type Refresher interface {
	Refresh(ctx context.Context, saveSnapshot bool) error
}

func New(log *slog.Logger, refresher Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.reloadSchedule.New"

		log := log.With(slog.String("op", op))

		var req ReloadRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		saveSnapshot := req.SaveSnapshot == nil || *req.SaveSnapshot

		if err = refresher.Refresh(r.Context(), saveSnapshot); err != nil {
			log.Error("failed to reload schedule", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to reload schedule"))
			return
		}

		log.Info("schedule reloaded", slog.Bool("save_snapshot", saveSnapshot))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, ReloadResponse{
		Response: response.OK(),
	})
}
