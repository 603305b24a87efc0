package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"podcast_tracker/internal/domain"
)

const lastSyncKey = "last_sync_timestamp"

type SyncLogStore struct {
	db *sqlx.DB
}

func NewSyncLogStore(db *sqlx.DB) *SyncLogStore {
	return &SyncLogStore{db: db}
}

// Record appends the report to the sync history and fills in its id.
func (s *SyncLogStore) Record(ctx context.Context, report *domain.SyncReport) error {
	query := `
		INSERT INTO sync_history (
			sync_timestamp, source_path,
			podcasts_added, podcasts_updated, podcasts_deleted,
			episodes_added, episodes_updated, episodes_deleted,
			conflicts_count, errors
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING id`

	return executor(ctx, s.db).QueryRowxContext(ctx, query,
		report.Timestamp,
		report.SourcePath,
		report.PodcastsAdded,
		report.PodcastsUpdated,
		report.PodcastsDeleted,
		report.EpisodesAdded,
		report.EpisodesUpdated,
		report.EpisodesDeleted,
		report.ConflictsCount,
		pq.Array(report.Errors),
	).Scan(&report.ID)
}

func (s *SyncLogStore) SetLastSync(ctx context.Context, at time.Time) error {
	query := `
		INSERT INTO sync_meta (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	_, err := executor(ctx, s.db).ExecContext(ctx, query, lastSyncKey, at)
	return err
}

// LastSync returns the timestamp of the last completed run, or nil when no
// run has ever completed.
func (s *SyncLogStore) LastSync(ctx context.Context) (*time.Time, error) {
	query := `SELECT value FROM sync_meta WHERE key = $1`

	var at time.Time
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &at, query, lastSyncKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &at, nil
}

func (s *SyncLogStore) History(ctx context.Context, limit, offset int) ([]domain.SyncReport, error) {
	query := `
		SELECT id, sync_timestamp, source_path,
		       podcasts_added, podcasts_updated, podcasts_deleted,
		       episodes_added, episodes_updated, episodes_deleted,
		       conflicts_count
		FROM sync_history
		ORDER BY sync_timestamp DESC, id DESC
		LIMIT $1 OFFSET $2`

	var reports []domain.SyncReport
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &reports, query, limit, offset); err != nil {
		return nil, err
	}
	return reports, nil
}
