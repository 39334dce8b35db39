package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/courtside/internal/domain/league"
	"github.com/riskibarqy/courtside/internal/platform/fetch"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	warmupStatusSuccess = "success"
	warmupStatusFailed  = "failed"
)

type WarmupTaskResult struct {
	LeagueID   string `json:"leagueId"`
	Resource   string `json:"resource"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

type WarmupResult struct {
	Success int                `json:"success"`
	Failed  int                `json:"failed"`
	Tasks   []WarmupTaskResult `json:"tasks"`
}

type warmupTask struct {
	league   league.League
	resource string
	run      func(ctx context.Context, l league.League) (fetch.Payload, error)
}

// WarmupService pre-loads long-lived upstream documents so first page views
// are served from cache.
type WarmupService struct {
	teams   TeamProvider
	data    LeagueDataProvider
	leagues []league.League
	workers int
	logger  *logging.Logger
}

func NewWarmupService(teams TeamProvider, data LeagueDataProvider, leagues []league.League, workers int, logger *logging.Logger) *WarmupService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &WarmupService{
		teams:   teams,
		data:    data,
		leagues: leagues,
		workers: workers,
		logger:  logger,
	}
}

func (s *WarmupService) tasks() []warmupTask {
	out := make([]warmupTask, 0, len(s.leagues)*3)
	for _, l := range s.leagues {
		out = append(out,
			warmupTask{league: l, resource: "teams", run: s.teams.Teams},
			warmupTask{league: l, resource: "standings", run: func(ctx context.Context, l league.League) (fetch.Payload, error) {
				return s.data.Standings(ctx, l, "")
			}},
			warmupTask{league: l, resource: "seasons", run: s.data.Seasons},
		)
	}
	return out
}

// Run executes one warmup pass. Individual failures are logged and counted;
// only pool setup errors are returned.
func (s *WarmupService) Run(ctx context.Context) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.Run")
	defer span.End()

	tasks := s.tasks()
	if len(tasks) == 0 {
		return WarmupResult{}, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan WarmupTaskResult, len(tasks))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := WarmupTaskResult{LeagueID: task.league.ID, Resource: task.resource}
			if _, err := task.run(ctx, task.league); err != nil {
				row.Status = warmupStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "cache warmup task failed",
					"league", task.league.ID,
					"resource", task.resource,
					"error", err,
				)
			} else {
				row.Status = warmupStatusSuccess
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			workers.Done()
			return WarmupResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	result := WarmupResult{Tasks: make([]WarmupTaskResult, 0, len(tasks))}
	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].LeagueID != result.Tasks[j].LeagueID {
			return result.Tasks[i].LeagueID < result.Tasks[j].LeagueID
		}
		return result.Tasks[i].Resource < result.Tasks[j].Resource
	})
	result.Success = int(successCount.Load())
	result.Failed = int(failedCount.Load())

	span.SetAttributes(
		attribute.Int("warmup.success", result.Success),
		attribute.Int("warmup.failed", result.Failed),
	)
	return result, nil
}

// Start runs a pass immediately and then every interval until ctx is done.
func (s *WarmupService) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	runOnce := func() {
		result, err := s.Run(ctx)
		if err != nil {
			s.logger.ErrorContext(ctx, "cache warmup failed", "error", err)
			return
		}
		s.logger.InfoContext(ctx, "cache warmup finished",
			"success", result.Success,
			"failed", result.Failed,
		)
	}

	runOnce()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
