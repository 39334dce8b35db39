package httpapi

import (
	"net/http"

	"github.com/riskibarqy/courtside/internal/platform/fetch"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	leagueSlug := r.PathValue("league")
	teams, err := h.teamService.ListTeams(ctx, leagueSlug)
	if err != nil {
		h.failed(ctx, w, "list teams failed", err, "league", leagueSlug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

// ListRawTeams always answers 200 for a known league; upstream failures come
// back as an {"error": ...} body.
func (h *Handler) ListRawTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRawTeams")
	defer span.End()

	leagueSlug := r.PathValue("league")
	payload, err := h.teamService.RawTeams(ctx, leagueSlug)
	if err != nil {
		h.failed(ctx, w, "raw teams failed", err, "league", leagueSlug)
		return
	}
	if msg, ok := payload.ErrorMessage(); ok {
		h.logger.WarnContext(ctx, "raw teams served error object", "league", leagueSlug, "error", msg)
	}

	writeRaw(ctx, w, http.StatusOK, payload)
}

func (h *Handler) GetTeamPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamPage")
	defer span.End()

	leagueSlug, teamID := r.PathValue("league"), r.PathValue("teamID")
	page, err := h.teamService.GetTeamPage(ctx, leagueSlug, teamID)
	if err != nil {
		h.failed(ctx, w, "get team page failed", err, "league", leagueSlug, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, page)
}

func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRoster")
	defer span.End()

	leagueSlug, teamID := r.PathValue("league"), r.PathValue("teamID")
	payload, err := h.teamService.Roster(ctx, leagueSlug, teamID)
	if err != nil {
		h.failed(ctx, w, "get team roster failed", err, "league", leagueSlug, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) GetTeamSchedule(w http.ResponseWriter, r *http.Request) {
	h.teamSeasonResource(w, r, "httpapi.Handler.GetTeamSchedule", "get team schedule failed",
		func(r *http.Request, leagueSlug, teamID, season string) (fetch.Payload, error) {
			return h.teamService.Schedule(r.Context(), leagueSlug, teamID, season)
		})
}

func (h *Handler) GetTeamRecord(w http.ResponseWriter, r *http.Request) {
	h.teamSeasonResource(w, r, "httpapi.Handler.GetTeamRecord", "get team record failed",
		func(r *http.Request, leagueSlug, teamID, season string) (fetch.Payload, error) {
			return h.teamService.Record(r.Context(), leagueSlug, season, teamID)
		})
}

func (h *Handler) GetTeamLeaders(w http.ResponseWriter, r *http.Request) {
	h.teamSeasonResource(w, r, "httpapi.Handler.GetTeamLeaders", "get team leaders failed",
		func(r *http.Request, leagueSlug, teamID, season string) (fetch.Payload, error) {
			return h.teamService.Leaders(r.Context(), leagueSlug, season, teamID)
		})
}

func (h *Handler) teamSeasonResource(
	w http.ResponseWriter,
	r *http.Request,
	spanName, failMsg string,
	load func(r *http.Request, leagueSlug, teamID, season string) (fetch.Payload, error),
) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	query := seasonQuery{Season: queryValue(r, "season")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueSlug, teamID := r.PathValue("league"), r.PathValue("teamID")
	payload, err := load(r.WithContext(ctx), leagueSlug, teamID, query.Season)
	if err != nil {
		h.failed(ctx, w, failMsg, err, "league", leagueSlug, "team_id", teamID, "season", query.Season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}
