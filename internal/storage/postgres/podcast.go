package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"podcast_tracker/internal/domain"
)

type PodcastStore struct {
	db *sqlx.DB
}

func NewPodcastStore(db *sqlx.DB) *PodcastStore {
	return &PodcastStore{db: db}
}

// Upsert inserts the podcast or folds it into the existing row. Incoming
// empty strings never overwrite stored metadata, and the ended flag is
// sticky. Returns true when the row was created.
func (s *PodcastStore) Upsert(ctx context.Context, podcast *domain.Podcast) (bool, error) {
	query := `
		INSERT INTO podcasts (
			uuid, title, author, description, feed_url, website_url,
			image_url, is_ended, deleted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (uuid) DO UPDATE SET
			title = COALESCE(NULLIF(EXCLUDED.title, ''), podcasts.title),
			author = COALESCE(NULLIF(EXCLUDED.author, ''), podcasts.author),
			description = COALESCE(NULLIF(EXCLUDED.description, ''), podcasts.description),
			feed_url = COALESCE(NULLIF(EXCLUDED.feed_url, ''), podcasts.feed_url),
			website_url = COALESCE(NULLIF(EXCLUDED.website_url, ''), podcasts.website_url),
			image_url = COALESCE(NULLIF(EXCLUDED.image_url, ''), podcasts.image_url),
			is_ended = podcasts.is_ended OR EXCLUDED.is_ended,
			deleted_at = COALESCE(EXCLUDED.deleted_at, podcasts.deleted_at),
			updated_at = now()
		RETURNING (xmax = 0)`

	var created bool
	err := executor(ctx, s.db).QueryRowxContext(ctx, query,
		podcast.UUID,
		podcast.Title,
		podcast.Author,
		podcast.Description,
		podcast.FeedURL,
		podcast.WebsiteURL,
		podcast.ImageURL,
		podcast.IsEnded,
		podcast.DeletedAt,
	).Scan(&created)
	if err != nil {
		return false, err
	}
	return created, nil
}

// ListLive returns every podcast without a deletion marker, each carrying
// its live episode count.
func (s *PodcastStore) ListLive(ctx context.Context) ([]domain.Podcast, error) {
	query := `
		SELECT p.uuid, p.title, p.author, p.description, p.feed_url,
		       p.website_url, p.image_url, p.is_ended, p.deleted_at,
		       p.created_at, p.updated_at,
		       COUNT(e.uuid) FILTER (WHERE e.deleted_at IS NULL) AS episode_count
		FROM podcasts p
		LEFT JOIN episodes e ON e.podcast_uuid = p.uuid
		WHERE p.deleted_at IS NULL
		GROUP BY p.uuid
		ORDER BY p.created_at, p.uuid`

	var podcasts []domain.Podcast
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &podcasts, query); err != nil {
		return nil, err
	}
	return podcasts, nil
}

func (s *PodcastStore) SoftDelete(ctx context.Context, uuid string, at time.Time) error {
	query := `UPDATE podcasts SET deleted_at = $2, updated_at = now() WHERE uuid = $1`
	_, err := executor(ctx, s.db).ExecContext(ctx, query, uuid, at)
	return err
}

func (s *PodcastStore) MarkEnded(ctx context.Context, uuid string) error {
	query := `UPDATE podcasts SET is_ended = TRUE, updated_at = now() WHERE uuid = $1`
	_, err := executor(ctx, s.db).ExecContext(ctx, query, uuid)
	return err
}

// Delete removes the row entirely. Intended for duplicate cleanup only;
// regular removal goes through SoftDelete.
func (s *PodcastStore) Delete(ctx context.Context, uuid string) error {
	query := `DELETE FROM podcasts WHERE uuid = $1`
	_, err := executor(ctx, s.db).ExecContext(ctx, query, uuid)
	return err
}
