package usecase

import (
	"context"

	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
)

type fakeTeamRepo struct {
	uuids    map[string]int64
	inserted []refdata.Team
}

func newFakeTeamRepo(uuids map[string]int64) *fakeTeamRepo {
	if uuids == nil {
		uuids = make(map[string]int64)
	}
	return &fakeTeamRepo{uuids: uuids}
}

func (r *fakeTeamRepo) UUIDMap(context.Context) (map[string]int64, error) {
	out := make(map[string]int64, len(r.uuids))
	for k, v := range r.uuids {
		out[k] = v
	}
	return out, nil
}

func (r *fakeTeamRepo) IDByUUID(_ context.Context, uuid string) (int64, bool, error) {
	id, ok := r.uuids[uuid]
	return id, ok, nil
}

func (r *fakeTeamRepo) InsertTeams(_ context.Context, teams []refdata.Team) (int, error) {
	r.inserted = append(r.inserted, teams...)
	return len(teams), nil
}

type fakePlayerRepo struct {
	ids     map[string]int64
	nextID  int64
	upserts []refdata.PlayerDraft
}

func newFakePlayerRepo(ids map[string]int64) *fakePlayerRepo {
	if ids == nil {
		ids = make(map[string]int64)
	}
	return &fakePlayerRepo{ids: ids, nextID: 500}
}

func (r *fakePlayerRepo) IDByUUID(_ context.Context, uuid string) (int64, bool, error) {
	id, ok := r.ids[uuid]
	return id, ok, nil
}

func (r *fakePlayerRepo) Upsert(_ context.Context, draft refdata.PlayerDraft) (int64, error) {
	r.upserts = append(r.upserts, draft)
	if id, ok := r.ids[draft.UUID]; ok {
		return id, nil
	}
	r.nextID++
	r.ids[draft.UUID] = r.nextID
	return r.nextID, nil
}

type fakeScheduleRepo struct {
	weeks   []refdata.Week
	weekIDs map[string]int64
	games   []refdata.ScheduledGame
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{weekIDs: make(map[string]int64)}
}

func (r *fakeScheduleRepo) InsertWeek(_ context.Context, week refdata.Week) error {
	r.weeks = append(r.weeks, week)
	if _, ok := r.weekIDs[week.UUID]; !ok {
		r.weekIDs[week.UUID] = int64(len(r.weekIDs) + 1)
	}
	return nil
}

func (r *fakeScheduleRepo) WeekIDByUUID(_ context.Context, uuid string) (int64, bool, error) {
	id, ok := r.weekIDs[uuid]
	return id, ok, nil
}

func (r *fakeScheduleRepo) InsertGame(_ context.Context, game refdata.ScheduledGame) error {
	r.games = append(r.games, game)
	return nil
}

type fakeInjuryRepo struct {
	rows []refdata.Injury
}

func (r *fakeInjuryRepo) Insert(_ context.Context, injury refdata.Injury) error {
	r.rows = append(r.rows, injury)
	return nil
}

type fakeDepthChartRepo struct {
	rows []refdata.DepthChartEntry
}

func (r *fakeDepthChartRepo) Insert(_ context.Context, entry refdata.DepthChartEntry) error {
	r.rows = append(r.rows, entry)
	return nil
}
