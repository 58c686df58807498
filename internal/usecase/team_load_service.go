package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/riskibarqy/gridiron-ingest/external/sportradar"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
)

// LeagueTeamsFetcher fetches the league-wide team list.
type LeagueTeamsFetcher interface {
	LeagueTeams(ctx context.Context) (sportradar.TeamsPayload, []byte, error)
}

// TeamLoadService seeds refdata.team from the provider's league roster.
// Existing teams are left untouched.
type TeamLoadService struct {
	teams    refdata.TeamRepository
	client   LeagueTeamsFetcher
	snapshot SnapshotWriter
	logger   *zap.Logger
}

func NewTeamLoadService(teams refdata.TeamRepository, client LeagueTeamsFetcher, snapshot SnapshotWriter, logger *zap.Logger) *TeamLoadService {
	return &TeamLoadService{teams: teams, client: client, snapshot: snapshot, logger: logger}
}

// Run fetches the team list and inserts every real franchise. Placeholder
// "TBD" entries the provider pads the list with are dropped.
func (s *TeamLoadService) Run(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamLoadService.Run")
	defer span.End()

	payload, raw, err := s.client.LeagueTeams(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch teams: %w", err)
	}
	if s.snapshot != nil {
		if _, err := s.snapshot.Write("teams", raw); err != nil {
			s.logger.Warn("write snapshot", zap.Error(err))
		}
	}

	teams := make([]refdata.Team, 0, len(payload.Teams))
	for _, item := range payload.Teams {
		if item.Name == "TBD" {
			continue
		}
		teams = append(teams, refdata.Team{
			UUID:         item.ID,
			Name:         item.Name,
			Market:       item.Market,
			Abbreviation: item.Alias,
		})
	}

	inserted, err := s.teams.InsertTeams(ctx, teams)
	if err != nil {
		return 0, fmt.Errorf("insert teams: %w", err)
	}
	s.logger.Info("teams loaded", zap.Int("inserted", inserted), zap.Int("valid", len(teams)))
	return inserted, nil
}
