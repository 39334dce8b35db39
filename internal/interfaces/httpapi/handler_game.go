package httpapi

import "net/http"

func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoreboard")
	defer span.End()

	query := scoreboardQuery{Date: queryValue(r, "date")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueSlug := r.PathValue("league")
	view, err := h.gameService.Scoreboard(ctx, leagueSlug, query.Date)
	if err != nil {
		h.failed(ctx, w, "get scoreboard failed", err, "league", leagueSlug, "date", query.Date)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetGamePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGamePage")
	defer span.End()

	leagueSlug, gameID := r.PathValue("league"), r.PathValue("gameID")
	page, err := h.gameService.GetGamePage(ctx, leagueSlug, gameID)
	if err != nil {
		h.failed(ctx, w, "get game page failed", err, "league", leagueSlug, "game_id", gameID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, page)
}

func (h *Handler) GetPlayerPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerPage")
	defer span.End()

	query := seasonQuery{Season: queryValue(r, "season")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueSlug, playerID := r.PathValue("league"), r.PathValue("playerID")
	page, err := h.playerService.GetPlayerPage(ctx, leagueSlug, playerID, query.Season)
	if err != nil {
		h.failed(ctx, w, "get player page failed", err, "league", leagueSlug, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, page)
}
