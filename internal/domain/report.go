package domain

import "time"

// SyncReport summarizes one reconciliation run. One row is appended to the
// sync history per run; per-podcast failures land in Errors without
// aborting the batch.
type SyncReport struct {
	ID              int64     `db:"id"`
	Timestamp       time.Time `db:"sync_timestamp"`
	SourcePath      string    `db:"source_path"`
	PodcastsAdded   int       `db:"podcasts_added"`
	PodcastsUpdated int       `db:"podcasts_updated"`
	PodcastsDeleted int       `db:"podcasts_deleted"`
	EpisodesAdded   int       `db:"episodes_added"`
	EpisodesUpdated int       `db:"episodes_updated"`
	EpisodesDeleted int       `db:"episodes_deleted"`
	ConflictsCount  int       `db:"conflicts_count"`

	Errors []string `db:"-"`
}

// DuplicateCleanupReport is the result of a podcast duplicate cleanup run.
type DuplicateCleanupReport struct {
	DeletedCount  int
	DeletedTitles []string
}

// DuplicateEpisodeMergeReport is the result of an episode duplicate merge run.
type DuplicateEpisodeMergeReport struct {
	PodcastsProcessed    int
	DuplicateGroupsFound int
	EpisodesRemoved      int
}
