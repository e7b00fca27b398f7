package writer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/vbb-change-positions/internal/common/db"
	"github.com/vbb-change-positions/pkg/positions/models"
)

const insertEntrySQL = `
INSERT INTO interchange_entries (
	run_id, station, station_name,
	from_lines, from_station, from_station_name, from_track, from_position,
	to_lines, to_station, to_station_name, to_track, to_position,
	same_platform
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

// Postgres mirrors entries into the interchange_entries table, one
// transaction per run.
type Postgres struct {
	db    *db.DB
	runID string
}

func NewPostgres(database *db.DB, runID string) *Postgres {
	return &Postgres{db: database, runID: runID}
}

func (p *Postgres) Write(ctx context.Context, entries []models.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := p.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertEntrySQL)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, entryArgs(p.runID, e)...); err != nil {
			return fmt.Errorf("inserting entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entries: %w", err)
	}

	p.db.Logger().Info("Entries mirrored to database", "count", len(entries), "run_id", p.runID)
	return nil
}

func entryArgs(runID string, e models.Entry) []interface{} {
	return []interface{}{
		runID,
		e.Station,
		e.StationName,
		pq.Array(e.FromLines),
		e.FromStation,
		e.FromStationName,
		sql.NullString{String: e.FromTrack, Valid: e.FromTrack != ""},
		e.FromPosition,
		pq.Array(e.ToLines),
		e.ToStation,
		e.ToStationName,
		sql.NullString{String: e.ToTrack, Valid: e.ToTrack != ""},
		e.ToPosition,
		e.SamePlatform,
	}
}
