package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /{$}", handler.Landing)
	mux.HandleFunc("GET /v1/season", handler.GetSeason)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/{league}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/{league}/rankings", handler.GetRankings)
	mux.HandleFunc("GET /v1/{league}/news", handler.GetNews)
	mux.HandleFunc("GET /v1/{league}/seasons", handler.ListSeasons)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/{league}/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/{league}/raw/teams", handler.ListRawTeams)
	mux.HandleFunc("GET /v1/{league}/teams/{teamID}", handler.GetTeamPage)
	mux.HandleFunc("GET /v1/{league}/teams/{teamID}/roster", handler.GetTeamRoster)
	mux.HandleFunc("GET /v1/{league}/teams/{teamID}/schedule", handler.GetTeamSchedule)
	mux.HandleFunc("GET /v1/{league}/teams/{teamID}/record", handler.GetTeamRecord)
	mux.HandleFunc("GET /v1/{league}/teams/{teamID}/leaders", handler.GetTeamLeaders)
}

func registerGameRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/{league}/scoreboard", handler.GetScoreboard)
	mux.HandleFunc("GET /v1/{league}/games/{gameID}", handler.GetGamePage)
	mux.HandleFunc("GET /v1/{league}/players/{playerID}", handler.GetPlayerPage)
}
