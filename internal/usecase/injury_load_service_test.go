package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/riskibarqy/gridiron-ingest/external/sportradar"
)

type fakeInjuriesClient struct {
	payload   sportradar.InjuriesPayload
	rateLimit int
	calls     int
}

func (c *fakeInjuriesClient) WeeklyInjuries(context.Context, int, int) (sportradar.InjuriesPayload, []byte, error) {
	c.calls++
	if c.rateLimit > 0 {
		c.rateLimit--
		return sportradar.InjuriesPayload{}, nil, sportradar.ErrRateLimited
	}
	return c.payload, []byte(`{}`), nil
}

func injuriesPayload() sportradar.InjuriesPayload {
	var payload sportradar.InjuriesPayload
	payload.Week.ID = "week-uuid-3"

	limited := sportradar.InjuryItem{Status: "Questionable", StatusDate: "2024-09-18T14:00:00Z", Primary: "Ankle"}
	limited.Practice.Status = "Limited Participation In Practice"

	unknown := sportradar.InjuryItem{Status: "Out", Primary: "Knee"}
	unknown.Practice.Status = "Rested"

	noDate := sportradar.InjuryItem{Primary: "Illness"}
	noDate.Practice.Status = "Full Participation In Practice"

	payload.Teams = []sportradar.InjuryTeam{
		{
			ID: "uuid-kc",
			Players: []sportradar.InjuryPlayer{
				{ID: "player-known", Name: "Known Player", Position: "WR", Jersey: "10", Injuries: []sportradar.InjuryItem{limited, unknown}},
				{ID: "player-new", Name: "New Player", Position: "CB", Jersey: "24", Injuries: []sportradar.InjuryItem{noDate}},
			},
		},
		{
			ID:      "uuid-unknown",
			Players: []sportradar.InjuryPlayer{{ID: "player-x", Injuries: []sportradar.InjuryItem{limited}}},
		},
	}
	return payload
}

func TestInjuryLoadService_Run(t *testing.T) {
	teams := newFakeTeamRepo(map[string]int64{"uuid-kc": 7})
	players := newFakePlayerRepo(map[string]int64{"player-known": 42})
	schedule := newFakeScheduleRepo()
	schedule.weekIDs["week-uuid-3"] = 33
	injuries := &fakeInjuryRepo{}

	client := &fakeInjuriesClient{payload: injuriesPayload()}
	service := NewInjuryLoadService(teams, players, schedule, injuries, client, nil, zap.NewNop(), time.Second)
	service.sleep = func(time.Duration) {}

	inserted, err := service.Run(context.Background(), InjuryLoadOptions{Year: 2024, Week: 3})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 reports inserted, got %d", inserted)
	}

	first := injuries.rows[0]
	if first.PlayerID != 42 || first.TeamID != 7 || first.WeekID != 33 {
		t.Fatalf("unexpected first report: %+v", first)
	}
	if first.Status != "Questionable" || first.PracticeParticipation != "Limited" || first.PrimaryInjury != "Ankle" {
		t.Fatalf("unexpected first report detail: %+v", first)
	}

	// The second report comes from the new player created from the payload.
	second := injuries.rows[1]
	if len(players.upserts) != 1 || players.upserts[0].UUID != "player-new" {
		t.Fatalf("expected player-new created, got %+v", players.upserts)
	}
	if second.Status != "Healthy" {
		t.Fatalf("expected missing status defaulted to Healthy, got %q", second.Status)
	}
	if !second.StatusDate.Equal(time.Unix(0, 0).UTC()) {
		t.Fatalf("expected epoch status date, got %v", second.StatusDate)
	}
	if second.PracticeParticipation != "Full" {
		t.Fatalf("unexpected practice participation: %q", second.PracticeParticipation)
	}
}

func TestInjuryLoadService_Run_RateLimitedRetries(t *testing.T) {
	teams := newFakeTeamRepo(nil)
	schedule := newFakeScheduleRepo()
	schedule.weekIDs["week-uuid-3"] = 1

	payload := sportradar.InjuriesPayload{}
	payload.Week.ID = "week-uuid-3"
	client := &fakeInjuriesClient{payload: payload, rateLimit: 2}

	service := NewInjuryLoadService(teams, newFakePlayerRepo(nil), schedule, &fakeInjuryRepo{}, client, nil, zap.NewNop(), time.Second)
	slept := 0
	service.sleep = func(time.Duration) { slept++ }

	if _, err := service.Run(context.Background(), InjuryLoadOptions{Year: 2024, Week: 3}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if slept != 2 || client.calls != 3 {
		t.Fatalf("expected 2 backoffs over 3 calls, got %d sleeps %d calls", slept, client.calls)
	}
}

func TestInjuryLoadService_Run_UnknownWeek(t *testing.T) {
	payload := sportradar.InjuriesPayload{}
	payload.Week.ID = "week-never-loaded"
	client := &fakeInjuriesClient{payload: payload}

	service := NewInjuryLoadService(newFakeTeamRepo(nil), newFakePlayerRepo(nil), newFakeScheduleRepo(), &fakeInjuryRepo{}, client, nil, zap.NewNop(), time.Second)
	if _, err := service.Run(context.Background(), InjuryLoadOptions{Year: 2024, Week: 3}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unloaded week, got %v", err)
	}
}
