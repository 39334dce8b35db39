package httpapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/usecase"
)

type Handler struct {
	leagueService    *usecase.LeagueService
	teamService      *usecase.TeamService
	gameService      *usecase.GameService
	playerService    *usecase.PlayerService
	standingsService *usecase.StandingsService
	seasonService    *usecase.SeasonService
	logger           *logging.Logger
	validator        *validator.Validate
	now              func() time.Time
}

type HandlerConfig struct {
	LeagueService    *usecase.LeagueService
	TeamService      *usecase.TeamService
	GameService      *usecase.GameService
	PlayerService    *usecase.PlayerService
	StandingsService *usecase.StandingsService
	SeasonService    *usecase.SeasonService
	Logger           *logging.Logger
	Now              func() time.Time
}

func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Handler{
		leagueService:    cfg.LeagueService,
		teamService:      cfg.TeamService,
		gameService:      cfg.GameService,
		playerService:    cfg.PlayerService,
		standingsService: cfg.StandingsService,
		seasonService:    cfg.SeasonService,
		logger:           logger.Named("httpapi"),
		validator:        validator.New(),
		now:              now,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// Landing redirects to the scoreboard of whichever league is in season today.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Landing")
	defer span.End()

	dest := h.seasonService.Destination(ctx, h.now())
	http.Redirect(w, r.WithContext(ctx), dest.Path, http.StatusFound)
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	dest := h.seasonService.Destination(ctx, h.now())
	writeSuccess(ctx, w, http.StatusOK, seasonDestinationDTO{
		League:   leagueToDTO(dest.League),
		Path:     dest.Path,
		InSeason: dest.InSeason,
	})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues := h.leagueService.ListLeagues(ctx)
	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
