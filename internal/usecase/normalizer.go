package usecase

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/gridiron-ingest/internal/domain/refdata"
	"github.com/riskibarqy/gridiron-ingest/internal/domain/weekly"
)

// teamSide is one team's slice of a game-statistics payload, either the home
// or the away side.
type teamSide struct {
	UUID  string
	Name  string
	Stats map[string]any
}

// gameTeamSides extracts the home and away sides from a game-statistics
// response. Sides without a team id are dropped.
func gameTeamSides(payload map[string]any) []teamSide {
	statistics, ok := payload["statistics"].(map[string]any)
	if !ok {
		return nil
	}

	sides := make([]teamSide, 0, 2)
	for _, key := range []string{"home", "away"} {
		raw, ok := statistics[key].(map[string]any)
		if !ok {
			continue
		}
		uuid := stringField(raw, "id")
		if uuid == "" {
			continue
		}
		sides = append(sides, teamSide{
			UUID:  uuid,
			Name:  stringField(raw, "name"),
			Stats: raw,
		})
	}
	return sides
}

// normalizeCategory flattens one category's player list from a team side into
// rows keyed by destination column names. Players without an id are skipped,
// and rows that end up with no mapped data values are dropped.
func normalizeCategory(cfg weekly.CategoryConfig, side teamSide) []weekly.Row {
	section, ok := side.Stats[cfg.ResponseKey].(map[string]any)
	if !ok {
		return nil
	}
	items, ok := section["players"].([]any)
	if !ok {
		return nil
	}

	rows := make([]weekly.Row, 0, len(items))
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		uuid := stringField(item, "id")
		if uuid == "" {
			continue
		}

		values := make(map[string]any, len(cfg.FieldMap))
		for field, column := range cfg.FieldMap {
			if v, ok := item[field]; ok {
				values[column] = v
			}
		}
		// Rushing fumble counts are coerced to integers up front so the
		// later fumbles reconciliation always finds both columns set.
		if cfg.Name == weekly.CategoryRushing {
			values[weekly.RushingFumblesColumn] = asInt(item["fumbles"])
			values[weekly.RushingFumblesLostCol] = asInt(item["lost_fumbles"])
		}
		if len(values) == 0 {
			continue
		}

		rows = append(rows, weekly.Row{
			PlayerUUID: uuid,
			TeamUUID:   side.UUID,
			Draft: refdata.PlayerDraft{
				UUID:     uuid,
				Name:     stringField(item, "name"),
				TeamUUID: side.UUID,
				Position: stringField(item, "position"),
				Jersey:   stringField(item, "jersey"),
			},
			Values: values,
		})
	}
	return rows
}

// mergeKickingRows folds extra-point rows into field-goal rows so each kicker
// gets a single row in the shared kicking table. Both categories land in one
// upsert; a kicker appearing in only one category still gets a row.
func mergeKickingRows(fieldGoals, extraPoints []weekly.Row) []weekly.Row {
	merged := make([]weekly.Row, 0, len(fieldGoals)+len(extraPoints))
	index := make(map[string]int, len(fieldGoals))
	for _, row := range fieldGoals {
		index[row.PlayerUUID] = len(merged)
		merged = append(merged, row)
	}
	for _, row := range extraPoints {
		if i, ok := index[row.PlayerUUID]; ok {
			for column, value := range row.Values {
				merged[i].Values[column] = value
			}
			continue
		}
		index[row.PlayerUUID] = len(merged)
		merged = append(merged, row)
	}
	return merged
}

// kickingDataColumns is the union of field-goal and extra-point data columns,
// in registry order.
func kickingDataColumns() []string {
	fg, _ := weekly.CategoryByName(weekly.CategoryFieldGoals)
	xp, _ := weekly.CategoryByName(weekly.CategoryExtraPoints)
	columns := make([]string, 0, len(fg.DataColumns)+len(xp.DataColumns))
	columns = append(columns, fg.DataColumns...)
	columns = append(columns, xp.DataColumns...)
	return columns
}

// asInt coerces a decoded JSON value to int. Anything non-numeric counts as
// zero.
func asInt(value any) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}
