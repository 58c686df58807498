package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
	refdatamock "github.com/riskibarqy/gridiron-ingest/internal/mocks/domain/refdata"
	weeklymock "github.com/riskibarqy/gridiron-ingest/internal/mocks/domain/weekly"
)

func TestStatsIngestService_Run_WeekModeUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	games := refdatamock.NewGameRepository(t)
	store := weeklymock.NewStore(t)

	tx := newFakeGameTx()
	tx.teams["team-h"] = 4
	tx.players["runner-1"] = 301
	payload := statsPayload("team-h", map[string][]map[string]any{
		"rushing": {
			{"id": "runner-1", "name": "Lead Back", "attempts": float64(12), "yards": float64(55)},
		},
	})
	client := &fakeStatsClient{payloads: map[string]map[string]any{"game-9": payload}}

	games.
		On("ListByWeek", mock.MatchedBy(func(v context.Context) bool { return v != nil }), 2025, 4).
		Return([]refdata.Game{{GameID: 9, UUID: "game-9", Week: 4, SeasonYear: 2025}}, nil).
		Once()
	store.
		On("BeginGame", mock.MatchedBy(func(v context.Context) bool { return v != nil })).
		Return(tx, nil).
		Once()

	service := NewStatsIngestService(games, store, client, nil, zap.NewNop(), time.Second)

	result, err := service.Run(ctx, StatsRunOptions{Mode: StatsModeWeek, Year: 2025, Week: 4})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.GamesProcessed != 1 || result.RowsUpserted != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if !tx.committed {
		t.Fatalf("expected game transaction committed")
	}
}

func TestStatsIngestService_Run_BeginGameErrorUsingMockery(t *testing.T) {
	t.Parallel()

	games := refdatamock.NewGameRepository(t)
	store := weeklymock.NewStore(t)
	client := &fakeStatsClient{payloads: map[string]map[string]any{"game-9": statsPayload("team-h", nil)}}

	games.
		On("ListByWeek", mock.MatchedBy(func(v context.Context) bool { return v != nil }), 2025, 4).
		Return([]refdata.Game{{GameID: 9, UUID: "game-9", Week: 4, SeasonYear: 2025}}, nil).
		Once()
	store.
		On("BeginGame", mock.MatchedBy(func(v context.Context) bool { return v != nil })).
		Return(nil, errors.New("connection refused")).
		Once()

	service := NewStatsIngestService(games, store, client, nil, zap.NewNop(), time.Second)

	result, err := service.Run(context.Background(), StatsRunOptions{Mode: StatsModeWeek, Year: 2025, Week: 4})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.GamesFailed != 1 || result.GamesProcessed != 0 {
		t.Fatalf("expected the game counted as failed, got %+v", result)
	}
}
