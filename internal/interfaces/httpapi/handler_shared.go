package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/usecase"
)

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// failed logs err at a level matching its mapped status and writes the error
// envelope.
func (h *Handler) failed(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	switch status := mapError(ctx, err).HTTPStatus; {
	case status == statusClientClosedRequest:
		h.logger.InfoContext(ctx, msg, args...)
	case status >= http.StatusInternalServerError:
		h.logger.ErrorContext(ctx, msg, args...)
	default:
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

type seasonQuery struct {
	Season string `validate:"omitempty,len=4,numeric"`
}

type scoreboardQuery struct {
	Date string `validate:"omitempty,len=8,numeric"`
}

func queryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

type leagueDTO struct {
	ID             string `json:"id"`
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	Abbrev         string `json:"abbrev"`
	HasRankings    bool   `json:"hasRankings"`
	ScoreboardPath string `json:"scoreboardPath"`
}

type seasonDestinationDTO struct {
	League   leagueDTO `json:"league"`
	Path     string    `json:"path"`
	InSeason bool      `json:"inSeason"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:             v.ID,
		Slug:           v.Slug,
		Name:           v.Name,
		Abbrev:         v.Abbrev,
		HasRankings:    v.HasRankings,
		ScoreboardPath: "/v1/" + v.Slug + "/scoreboard",
	}
}
