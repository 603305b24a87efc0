package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"podcast_tracker/internal/domain"
)

type EpisodeStore struct {
	db *sqlx.DB
}

func NewEpisodeStore(db *sqlx.DB) *EpisodeStore {
	return &EpisodeStore{db: db}
}

// Upsert inserts the episode or folds it into the existing row keyed by
// uuid. Empty incoming fields keep the stored values so a sparse feed
// entry cannot blank out metadata imported earlier. Returns true when the
// row was created.
func (s *EpisodeStore) Upsert(ctx context.Context, episode *domain.Episode) (bool, error) {
	query := `
		INSERT INTO episodes (
			uuid, podcast_uuid, title, description, duration, published_at,
			media_url, media_type, size_bytes, video_url, deleted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (uuid) DO UPDATE SET
			podcast_uuid = EXCLUDED.podcast_uuid,
			title = COALESCE(NULLIF(EXCLUDED.title, ''), episodes.title),
			description = COALESCE(NULLIF(EXCLUDED.description, ''), episodes.description),
			duration = CASE WHEN EXCLUDED.duration > 0 THEN EXCLUDED.duration ELSE episodes.duration END,
			published_at = COALESCE(EXCLUDED.published_at, episodes.published_at),
			media_url = COALESCE(NULLIF(EXCLUDED.media_url, ''), episodes.media_url),
			media_type = COALESCE(NULLIF(EXCLUDED.media_type, ''), episodes.media_type),
			size_bytes = CASE WHEN EXCLUDED.size_bytes > 0 THEN EXCLUDED.size_bytes ELSE episodes.size_bytes END,
			video_url = COALESCE(NULLIF(EXCLUDED.video_url, ''), episodes.video_url),
			deleted_at = COALESCE(EXCLUDED.deleted_at, episodes.deleted_at),
			updated_at = now()
		RETURNING (xmax = 0)`

	var created bool
	err := executor(ctx, s.db).QueryRowxContext(ctx, query,
		episode.UUID,
		episode.PodcastUUID,
		episode.Title,
		episode.Description,
		episode.Duration,
		episode.PublishedAt,
		episode.MediaURL,
		episode.MediaType,
		episode.SizeBytes,
		episode.VideoURL,
		episode.DeletedAt,
	).Scan(&created)
	if err != nil {
		return false, err
	}
	return created, nil
}

func (s *EpisodeStore) ListLive(ctx context.Context) ([]domain.Episode, error) {
	query := `
		SELECT uuid, podcast_uuid, title, description, duration, published_at,
		       media_url, media_type, size_bytes, video_url, deleted_at,
		       created_at, updated_at
		FROM episodes
		WHERE deleted_at IS NULL
		ORDER BY created_at, uuid`

	var episodes []domain.Episode
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &episodes, query); err != nil {
		return nil, err
	}
	return episodes, nil
}

func (s *EpisodeStore) ListLiveByPodcast(ctx context.Context, podcastUUID string) ([]domain.Episode, error) {
	query := `
		SELECT uuid, podcast_uuid, title, description, duration, published_at,
		       media_url, media_type, size_bytes, video_url, deleted_at,
		       created_at, updated_at
		FROM episodes
		WHERE podcast_uuid = $1 AND deleted_at IS NULL
		ORDER BY created_at, uuid`

	var episodes []domain.Episode
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &episodes, query, podcastUUID); err != nil {
		return nil, err
	}
	return episodes, nil
}

func (s *EpisodeStore) SoftDelete(ctx context.Context, uuid string, at time.Time) error {
	query := `UPDATE episodes SET deleted_at = $2, updated_at = now() WHERE uuid = $1`
	_, err := executor(ctx, s.db).ExecContext(ctx, query, uuid, at)
	return err
}

// Delete removes the row entirely. Used by duplicate merging after progress
// and play sessions have been reassigned to the survivor.
func (s *EpisodeStore) Delete(ctx context.Context, uuid string) error {
	query := `DELETE FROM episodes WHERE uuid = $1`
	_, err := executor(ctx, s.db).ExecContext(ctx, query, uuid)
	return err
}
