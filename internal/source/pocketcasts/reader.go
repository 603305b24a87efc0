// Package pocketcasts reads the SQLite database exported by the Pocket
// Casts mobile app.
package pocketcasts

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"podcast_tracker/internal/domain"
)

// Reader exposes the podcast and episode tables of an export file. The
// export uses the app's own naming (SJPodcast, SJEpisode) and raw numeric
// timestamps; normalization happens downstream.
type Reader struct {
	db   *sqlx.DB
	path string
}

func Open(path string) (*Reader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("export database: %w", err)
	}

	db, err := sqlx.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open export database: %w", err)
	}

	return &Reader{db: db, path: path}, nil
}

func (r *Reader) Close() error {
	return r.db.Close()
}

func (r *Reader) Path() string {
	return r.path
}

func (r *Reader) Podcasts(ctx context.Context) ([]domain.ExportPodcast, error) {
	query := `
		SELECT uuid,
		       COALESCE(title, '') AS title,
		       COALESCE(author, '') AS author,
		       COALESCE(podcastDescription, '') AS description,
		       COALESCE(podcastUrl, '') AS feed_url,
		       COALESCE(imageURL, thumbnailURL, '') AS image_url,
		       COALESCE(wasDeleted, 0) AS was_deleted
		FROM SJPodcast
		ORDER BY uuid`

	var podcasts []domain.ExportPodcast
	if err := r.db.SelectContext(ctx, &podcasts, query); err != nil {
		return nil, fmt.Errorf("read podcasts: %w", err)
	}
	return podcasts, nil
}

func (r *Reader) Episodes(ctx context.Context) ([]domain.ExportEpisode, error) {
	query := `
		SELECT uuid,
		       COALESCE(podcastUuid, '') AS podcast_uuid,
		       COALESCE(title, '') AS title,
		       COALESCE(episodeDescription, '') AS description,
		       COALESCE(duration, 0) AS duration,
		       publishedDate AS published_raw,
		       COALESCE(downloadUrl, '') AS media_url,
		       COALESCE(fileType, '') AS media_type,
		       COALESCE(sizeInBytes, 0) AS size_bytes,
		       COALESCE(playedUpTo, 0) AS played_up_to,
		       COALESCE(playingStatus, 0) AS playing_status,
		       addedDate AS added_raw,
		       lastPlaybackInteractionDate AS last_played_raw,
		       COALESCE(wasDeleted, 0) AS was_deleted
		FROM SJEpisode
		ORDER BY uuid`

	var episodes []domain.ExportEpisode
	if err := r.db.SelectContext(ctx, &episodes, query); err != nil {
		return nil, fmt.Errorf("read episodes: %w", err)
	}
	return episodes, nil
}
