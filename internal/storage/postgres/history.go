package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"podcast_tracker/internal/domain"
)

type ListeningHistoryStore struct {
	db *sqlx.DB
}

func NewListeningHistoryStore(db *sqlx.DB) *ListeningHistoryStore {
	return &ListeningHistoryStore{db: db}
}

// Get returns the progress row for an episode, or nil when none exists.
func (s *ListeningHistoryStore) Get(ctx context.Context, episodeUUID string) (*domain.ListeningHistory, error) {
	query := `
		SELECT episode_uuid, played_up_to, duration, playing_status,
		       completion_percentage, first_played_at, last_played_at,
		       play_count, created_at, updated_at
		FROM listening_history
		WHERE episode_uuid = $1`

	var history domain.ListeningHistory
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &history, query, episodeUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (s *ListeningHistoryStore) GetByEpisodes(ctx context.Context, episodeUUIDs []string) (map[string]domain.ListeningHistory, error) {
	result := make(map[string]domain.ListeningHistory)
	if len(episodeUUIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT episode_uuid, played_up_to, duration, playing_status,
		       completion_percentage, first_played_at, last_played_at,
		       play_count, created_at, updated_at
		FROM listening_history
		WHERE episode_uuid = ANY($1)`

	var rows []domain.ListeningHistory
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &rows, query, pq.Array(episodeUUIDs)); err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.EpisodeUUID] = row
	}
	return result, nil
}

func (s *ListeningHistoryStore) Upsert(ctx context.Context, history *domain.ListeningHistory) error {
	query := `
		INSERT INTO listening_history (
			episode_uuid, played_up_to, duration, playing_status,
			completion_percentage, first_played_at, last_played_at, play_count
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (episode_uuid) DO UPDATE SET
			played_up_to = EXCLUDED.played_up_to,
			duration = EXCLUDED.duration,
			playing_status = EXCLUDED.playing_status,
			completion_percentage = EXCLUDED.completion_percentage,
			first_played_at = EXCLUDED.first_played_at,
			last_played_at = EXCLUDED.last_played_at,
			play_count = EXCLUDED.play_count,
			updated_at = now()`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		history.EpisodeUUID,
		history.PlayedUpTo,
		history.Duration,
		history.PlayingStatus,
		history.CompletionPct,
		history.FirstPlayedAt,
		history.LastPlayedAt,
		history.PlayCount,
	)
	return err
}

// Reassign moves the progress row to another episode. The caller ensures
// the target has no row of its own.
func (s *ListeningHistoryStore) Reassign(ctx context.Context, fromEpisode, toEpisode string) error {
	query := `UPDATE listening_history SET episode_uuid = $2, updated_at = now() WHERE episode_uuid = $1`
	_, err := executor(ctx, s.db).ExecContext(ctx, query, fromEpisode, toEpisode)
	return err
}

func (s *ListeningHistoryStore) Delete(ctx context.Context, episodeUUID string) error {
	query := `DELETE FROM listening_history WHERE episode_uuid = $1`
	_, err := executor(ctx, s.db).ExecContext(ctx, query, episodeUUID)
	return err
}

type PlaySessionStore struct {
	db *sqlx.DB
}

func NewPlaySessionStore(db *sqlx.DB) *PlaySessionStore {
	return &PlaySessionStore{db: db}
}

// Append records a play session. Sessions are an immutable log; there is no
// update path.
func (s *PlaySessionStore) Append(ctx context.Context, session *domain.PlaySession) error {
	query := `
		INSERT INTO play_sessions (
			episode_uuid, started_at, ended_at, duration_seconds,
			played_from, played_to
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	return executor(ctx, s.db).QueryRowxContext(ctx, query,
		session.EpisodeUUID,
		session.StartedAt,
		session.EndedAt,
		session.DurationSeconds,
		session.PlayedFrom,
		session.PlayedTo,
	).Scan(&session.ID)
}

func (s *PlaySessionStore) Reassign(ctx context.Context, fromEpisode, toEpisode string) error {
	query := `UPDATE play_sessions SET episode_uuid = $2 WHERE episode_uuid = $1`
	_, err := executor(ctx, s.db).ExecContext(ctx, query, fromEpisode, toEpisode)
	return err
}
