package httpapi

import "net/http"

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	query := seasonQuery{Season: queryValue(r, "season")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueSlug := r.PathValue("league")
	view, err := h.standingsService.Standings(ctx, leagueSlug, query.Season)
	if err != nil {
		h.failed(ctx, w, "get standings failed", err, "league", leagueSlug, "season", query.Season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRankings")
	defer span.End()

	leagueSlug := r.PathValue("league")
	payload, err := h.standingsService.Rankings(ctx, leagueSlug)
	if err != nil {
		h.failed(ctx, w, "get rankings failed", err, "league", leagueSlug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNews")
	defer span.End()

	leagueSlug := r.PathValue("league")
	payload, err := h.standingsService.News(ctx, leagueSlug)
	if err != nil {
		h.failed(ctx, w, "get news failed", err, "league", leagueSlug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	leagueSlug := r.PathValue("league")
	payload, err := h.standingsService.Seasons(ctx, leagueSlug)
	if err != nil {
		h.failed(ctx, w, "list seasons failed", err, "league", leagueSlug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}
