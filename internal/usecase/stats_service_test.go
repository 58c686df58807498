package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/riskibarqy/gridiron-ingest/external/sportradar"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/weekly"
)

type fakeGameRepo struct {
	games []refdata.Game
}

func (r *fakeGameRepo) ListByWeek(_ context.Context, seasonYear, week int) ([]refdata.Game, error) {
	out := make([]refdata.Game, 0, len(r.games))
	for _, g := range r.games {
		if g.SeasonYear == seasonYear && g.Week == week {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGameRepo) ListBySeason(_ context.Context, seasonYear int) ([]refdata.Game, error) {
	out := make([]refdata.Game, 0, len(r.games))
	for _, g := range r.games {
		if g.SeasonYear == seasonYear {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeStatsClient struct {
	payloads  map[string]map[string]any
	rateLimit map[string]int
	errs      map[string]error
	calls     int
}

func (c *fakeStatsClient) GameStatistics(_ context.Context, gameUUID string) (map[string]any, []byte, error) {
	c.calls++
	if n := c.rateLimit[gameUUID]; n > 0 {
		c.rateLimit[gameUUID] = n - 1
		return nil, nil, sportradar.ErrRateLimited
	}
	if err := c.errs[gameUUID]; err != nil {
		return nil, nil, err
	}
	return c.payloads[gameUUID], []byte(`{}`), nil
}

type fumbleRowInsert struct {
	playerID int64
	teamID   *int64
	fumbles  int
	lost     int
}

type fakeGameTx struct {
	teams         map[string]int64
	players       map[string]int64
	nextPlayerID  int64
	created       []refdata.PlayerDraft
	upserts       map[string][]weekly.KeyedRow
	fumbleColumns bool
	rushingRowIDs map[int64]int64
	fumbleSets    map[int64][2]int
	fumbleInserts []fumbleRowInsert
	committed     bool
	rolledBack    bool
}

func newFakeGameTx() *fakeGameTx {
	return &fakeGameTx{
		teams:         make(map[string]int64),
		players:       make(map[string]int64),
		nextPlayerID:  1000,
		upserts:       make(map[string][]weekly.KeyedRow),
		fumbleColumns: true,
		rushingRowIDs: make(map[int64]int64),
		fumbleSets:    make(map[int64][2]int),
	}
}

func (f *fakeGameTx) TeamMap(context.Context) (map[string]int64, error) {
	out := make(map[string]int64, len(f.teams))
	for k, v := range f.teams {
		out[k] = v
	}
	return out, nil
}

func (f *fakeGameTx) TeamIDByUUID(_ context.Context, uuid string) (int64, bool, error) {
	id, ok := f.teams[uuid]
	return id, ok, nil
}

func (f *fakeGameTx) PlayerIDByUUID(_ context.Context, uuid string) (int64, bool, error) {
	id, ok := f.players[uuid]
	return id, ok, nil
}

func (f *fakeGameTx) UpsertPlayer(_ context.Context, draft refdata.PlayerDraft) (int64, error) {
	f.nextPlayerID++
	f.players[draft.UUID] = f.nextPlayerID
	f.created = append(f.created, draft)
	return f.nextPlayerID, nil
}

func (f *fakeGameTx) UpsertStatRows(_ context.Context, table string, _, _ []string, rows []weekly.KeyedRow) error {
	f.upserts[table] = append(f.upserts[table], rows...)
	return nil
}

func (f *fakeGameTx) RushingFumbleColumnsPresent(context.Context) (bool, error) {
	return f.fumbleColumns, nil
}

func (f *fakeGameTx) RushingRowID(_ context.Context, playerID int64, _ weekly.GameKey) (int64, bool, error) {
	id, ok := f.rushingRowIDs[playerID]
	return id, ok, nil
}

func (f *fakeGameTx) SetRushingFumbles(_ context.Context, rowID int64, fumbles, lost int) error {
	f.fumbleSets[rowID] = [2]int{fumbles, lost}
	return nil
}

func (f *fakeGameTx) InsertRushingFumbleRow(_ context.Context, playerID int64, teamID *int64, _ weekly.GameKey, fumbles, lost int) error {
	f.fumbleInserts = append(f.fumbleInserts, fumbleRowInsert{playerID: playerID, teamID: teamID, fumbles: fumbles, lost: lost})
	return nil
}

func (f *fakeGameTx) Commit() error {
	f.committed = true
	return nil
}

func (f *fakeGameTx) Rollback() error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakeStatsStore struct {
	tx     *fakeGameTx
	begins int
	panic  bool
}

func (s *fakeStatsStore) BeginGame(context.Context) (weekly.GameTx, error) {
	if s.panic {
		panic("store exploded")
	}
	s.begins++
	return s.tx, nil
}

func statsPayload(teamUUID string, categories map[string][]map[string]any) map[string]any {
	side := map[string]any{"id": teamUUID, "name": "Testers"}
	for key, players := range categories {
		items := make([]any, 0, len(players))
		for _, p := range players {
			items = append(items, map[string]any(p))
		}
		side[key] = map[string]any{"players": items}
	}
	return map[string]any{"statistics": map[string]any{"home": side}}
}

func newStatsService(games *fakeGameRepo, store *fakeStatsStore, client *fakeStatsClient) (*StatsIngestService, *[]time.Duration) {
	service := NewStatsIngestService(games, store, client, nil, zap.NewNop(), time.Second)
	sleeps := &[]time.Duration{}
	service.sleep = func(d time.Duration) { *sleeps = append(*sleeps, d) }
	return service, sleeps
}

func TestStatsIngestService_Run_WeekMode(t *testing.T) {
	game := refdata.Game{GameID: 77, UUID: "game-1", Week: 3, SeasonYear: 2024}
	payload := statsPayload("team-h", map[string][]map[string]any{
		"rushing": {
			{"id": "runner-1", "name": "Lead Back", "attempts": float64(18), "yards": float64(92), "fumbles": float64(2), "lost_fumbles": float64(1)},
		},
		"fumbles": {
			{"id": "runner-1", "name": "Lead Back", "fumbles": float64(2), "lost_fumbles": float64(1)},
			{"id": "qb-1", "name": "Pocket Passer", "fumbles": float64(1), "lost_fumbles": float64(0)},
		},
	})

	tx := newFakeGameTx()
	tx.teams["team-h"] = 11
	tx.players["runner-1"] = 101
	tx.rushingRowIDs[101] = 9001

	store := &fakeStatsStore{tx: tx}
	client := &fakeStatsClient{payloads: map[string]map[string]any{"game-1": payload}}
	service, _ := newStatsService(&fakeGameRepo{games: []refdata.Game{game}}, store, client)

	result, err := service.Run(context.Background(), StatsRunOptions{Mode: StatsModeWeek, Year: 2024, Week: 3})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.GamesProcessed != 1 || result.GamesFailed != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.RowsUpserted != 3 {
		t.Fatalf("expected 3 rows upserted, got %d", result.RowsUpserted)
	}
	if !tx.committed {
		t.Fatalf("expected game transaction committed")
	}

	rushing := tx.upserts[weekly.RushingTable]
	if len(rushing) != 1 {
		t.Fatalf("expected 1 rushing row, got %d", len(rushing))
	}
	key := rushing[0].Key
	if key["psw_rush_player_id"] != int64(101) || key["psw_rush_team_id"] != int64(11) {
		t.Fatalf("unexpected rushing key: %v", key)
	}
	if key["psw_rush_game_id"] != int64(77) || key["psw_rush_season_year"] != 2024 || key["psw_rush_week_number"] != 3 {
		t.Fatalf("unexpected rushing game key: %v", key)
	}

	// qb-1 was unseen and gets created from the payload draft.
	if len(tx.created) != 1 || tx.created[0].UUID != "qb-1" {
		t.Fatalf("expected qb-1 created, got %+v", tx.created)
	}

	// runner-1 has a rushing row, so it is updated; qb-1 gets a zeroed insert.
	if got := tx.fumbleSets[9001]; got != [2]int{2, 1} {
		t.Fatalf("expected rushing row 9001 set to {2 1}, got %v", got)
	}
	if len(tx.fumbleInserts) != 1 {
		t.Fatalf("expected 1 fumble-only insert, got %d", len(tx.fumbleInserts))
	}
	insert := tx.fumbleInserts[0]
	if insert.playerID != tx.players["qb-1"] || insert.fumbles != 1 || insert.lost != 0 {
		t.Fatalf("unexpected fumble insert: %+v", insert)
	}
	if insert.teamID == nil || *insert.teamID != 11 {
		t.Fatalf("expected team id 11 on fumble insert, got %v", insert.teamID)
	}
	if result.FumblesUpdated != 1 || result.FumblesInserted != 1 {
		t.Fatalf("unexpected reconciliation counts: %+v", result)
	}
}

func TestStatsIngestService_Run_RateLimitedRetriesForever(t *testing.T) {
	game := refdata.Game{GameID: 1, UUID: "game-1", Week: 1, SeasonYear: 2024}
	tx := newFakeGameTx()
	tx.teams["team-h"] = 1

	store := &fakeStatsStore{tx: tx}
	client := &fakeStatsClient{
		payloads:  map[string]map[string]any{"game-1": statsPayload("team-h", nil)},
		rateLimit: map[string]int{"game-1": 3},
	}
	service, sleeps := newStatsService(&fakeGameRepo{games: []refdata.Game{game}}, store, client)

	result, err := service.Run(context.Background(), StatsRunOptions{Mode: StatsModeWeek, Year: 2024, Week: 1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.GamesProcessed != 1 {
		t.Fatalf("expected game processed after backoff, got %+v", result)
	}
	if len(*sleeps) != 3 {
		t.Fatalf("expected 3 backoff sleeps, got %d", len(*sleeps))
	}
	if client.calls != 4 {
		t.Fatalf("expected 4 fetch attempts, got %d", client.calls)
	}
}

func TestStatsIngestService_Run_FetchErrorSkipsGame(t *testing.T) {
	games := []refdata.Game{
		{GameID: 1, UUID: "game-bad", Week: 1, SeasonYear: 2024},
		{GameID: 2, UUID: "game-good", Week: 1, SeasonYear: 2024},
	}
	tx := newFakeGameTx()
	tx.teams["team-h"] = 1

	store := &fakeStatsStore{tx: tx}
	client := &fakeStatsClient{
		payloads: map[string]map[string]any{"game-good": statsPayload("team-h", nil)},
		errs:     map[string]error{"game-bad": errors.New("provider status=500")},
	}
	service, _ := newStatsService(&fakeGameRepo{games: games}, store, client)

	result, err := service.Run(context.Background(), StatsRunOptions{Mode: StatsModeWeek, Year: 2024, Week: 1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.GamesFailed != 1 || result.GamesProcessed != 1 {
		t.Fatalf("expected one failure and one success, got %+v", result)
	}
	if store.begins != 1 {
		t.Fatalf("expected no transaction for the failed fetch, got %d begins", store.begins)
	}
}

func TestStatsIngestService_Run_PanicIsContained(t *testing.T) {
	game := refdata.Game{GameID: 1, UUID: "game-1", Week: 1, SeasonYear: 2024}
	store := &fakeStatsStore{tx: newFakeGameTx(), panic: true}
	client := &fakeStatsClient{payloads: map[string]map[string]any{"game-1": statsPayload("team-h", nil)}}
	service, _ := newStatsService(&fakeGameRepo{games: []refdata.Game{game}}, store, client)

	result, err := service.Run(context.Background(), StatsRunOptions{Mode: StatsModeWeek, Year: 2024, Week: 1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.GamesFailed != 1 {
		t.Fatalf("expected panicking game counted as failed, got %+v", result)
	}
}

func TestStatsIngestService_Run_MissingFumbleColumnsSkipsReconciliation(t *testing.T) {
	game := refdata.Game{GameID: 5, UUID: "game-1", Week: 2, SeasonYear: 2024}
	payload := statsPayload("team-h", map[string][]map[string]any{
		"fumbles": {
			{"id": "runner-1", "name": "Lead Back", "fumbles": float64(1), "lost_fumbles": float64(1)},
		},
	})

	tx := newFakeGameTx()
	tx.teams["team-h"] = 1
	tx.players["runner-1"] = 101
	tx.fumbleColumns = false

	store := &fakeStatsStore{tx: tx}
	client := &fakeStatsClient{payloads: map[string]map[string]any{"game-1": payload}}
	service, _ := newStatsService(&fakeGameRepo{games: []refdata.Game{game}}, store, client)

	result, err := service.Run(context.Background(), StatsRunOptions{Mode: StatsModeWeek, Year: 2024, Week: 2})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.FumblesUpdated != 0 || result.FumblesInserted != 0 {
		t.Fatalf("expected reconciliation skipped, got %+v", result)
	}
	if !tx.committed {
		t.Fatalf("expected commit despite skipped reconciliation")
	}
}

func TestStatsIngestService_Run_UnknownTeamSkipsRows(t *testing.T) {
	game := refdata.Game{GameID: 5, UUID: "game-1", Week: 2, SeasonYear: 2024}
	payload := statsPayload("team-unknown", map[string][]map[string]any{
		"passing": {
			{"id": "qb-1", "name": "Pocket Passer", "attempts": float64(30)},
		},
	})

	tx := newFakeGameTx()
	store := &fakeStatsStore{tx: tx}
	client := &fakeStatsClient{payloads: map[string]map[string]any{"game-1": payload}}
	service, _ := newStatsService(&fakeGameRepo{games: []refdata.Game{game}}, store, client)

	result, err := service.Run(context.Background(), StatsRunOptions{Mode: StatsModeWeek, Year: 2024, Week: 2})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.RowsUpserted != 0 {
		t.Fatalf("expected rows with unknown team skipped, got %d", result.RowsUpserted)
	}
	if result.GamesProcessed != 1 {
		t.Fatalf("expected game still committed, got %+v", result)
	}
}

func TestStatsIngestService_Run_LogsPerCategoryCounts(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	game := refdata.Game{GameID: 8, UUID: "game-1", Week: 2, SeasonYear: 2024}
	payload := statsPayload("team-h", map[string][]map[string]any{
		"rushing": {
			{"id": "runner-1", "name": "Lead Back", "attempts": float64(10), "yards": float64(41)},
		},
	})

	tx := newFakeGameTx()
	tx.teams["team-h"] = 1
	tx.players["runner-1"] = 101

	store := &fakeStatsStore{tx: tx}
	client := &fakeStatsClient{payloads: map[string]map[string]any{"game-1": payload}}
	service := NewStatsIngestService(&fakeGameRepo{games: []refdata.Game{game}}, store, client, nil, zap.New(core), time.Second)

	if _, err := service.Run(context.Background(), StatsRunOptions{Mode: StatsModeWeek, Year: 2024, Week: 2}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	entries := logs.FilterMessage("category ingested").All()
	if len(entries) == 0 {
		t.Fatalf("expected per-category log entries")
	}
	var rushing bool
	for _, entry := range entries {
		fields := entry.ContextMap()
		if fields["category"] != weekly.CategoryRushing {
			continue
		}
		rushing = true
		if fields["rows"] != int64(1) || fields["skipped"] != int64(0) {
			t.Fatalf("unexpected rushing counts: %v", fields)
		}
	}
	if !rushing {
		t.Fatalf("no rushing category entry logged")
	}
}

func TestStatsIngestService_Run_InvalidOptions(t *testing.T) {
	service, _ := newStatsService(&fakeGameRepo{}, &fakeStatsStore{tx: newFakeGameTx()}, &fakeStatsClient{})

	if _, err := service.Run(context.Background(), StatsRunOptions{Mode: "daily", Year: 2024}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.Run(context.Background(), StatsRunOptions{Mode: StatsModeWeek, Year: 2024}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing week, got %v", err)
	}
}
