package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"podcast_tracker/internal/config"
	"podcast_tracker/internal/domain"
	"podcast_tracker/internal/reconcile"
)

// SyncService drives a full reconciliation run from either an external bulk
// export or a feed refresh. Each podcast and each episode is processed
// inside its own transaction; per-podcast failures are collected into the
// report and never abort the batch.
type SyncService struct {
	podcasts  PodcastStore
	episodes  EpisodeStore
	progress  ProgressStore
	syncLog   SyncLogStore
	txManager TransactionManager
	fetcher   FeedFetcher
	publisher Publisher
	logger    *slog.Logger
	config    config.SyncConfig
}

func NewSyncService(
	podcasts PodcastStore,
	episodes EpisodeStore,
	progress ProgressStore,
	syncLog SyncLogStore,
	txManager TransactionManager,
	fetcher FeedFetcher,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		podcasts:  podcasts,
		episodes:  episodes,
		progress:  progress,
		syncLog:   syncLog,
		txManager: txManager,
		fetcher:   fetcher,
		publisher: publisher,
		logger:    logger,
		config:    cfg,
	}
}

// ImportExport upserts every podcast and episode row present in the bulk
// export, soft-deletes rows flagged deleted at the source, and merges
// listening progress through the conflict resolver. Collisions with stored
// progress rows increment the conflict counter.
func (s *SyncService) ImportExport(ctx context.Context, src ExportSource) (*domain.SyncReport, error) {
	now := time.Now().UTC()
	report := &domain.SyncReport{Timestamp: now, SourcePath: src.Path()}

	s.logger.Info("starting export import", "source", src.Path())

	exportPodcasts, err := src.Podcasts(ctx)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("read export podcasts: %v", err))
		return s.finalize(ctx, report)
	}
	exportEpisodes, err := src.Episodes(ctx)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("read export episodes: %v", err))
		return s.finalize(ctx, report)
	}

	for _, row := range exportPodcasts {
		if err := s.importPodcast(ctx, row, now, report); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("podcast %s (%s): %v", row.UUID, row.Title, err))
			s.logger.Warn("podcast import failed", "uuid", row.UUID, "error", err)
		}
	}
	for _, row := range exportEpisodes {
		if err := s.importEpisode(ctx, row, now, report); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("episode %s: %v", row.UUID, err))
			s.logger.Warn("episode import failed", "uuid", row.UUID, "error", err)
		}
	}

	s.logger.Info("export import completed",
		"podcasts_added", report.PodcastsAdded,
		"podcasts_updated", report.PodcastsUpdated,
		"episodes_added", report.EpisodesAdded,
		"episodes_updated", report.EpisodesUpdated,
		"conflicts", report.ConflictsCount,
		"errors", len(report.Errors),
	)

	return s.finalize(ctx, report)
}

func (s *SyncService) importPodcast(ctx context.Context, row domain.ExportPodcast, now time.Time, report *domain.SyncReport) error {
	podcast := &domain.Podcast{
		UUID:        row.UUID,
		Title:       row.Title,
		Author:      row.Author,
		Description: row.Description,
		FeedURL:     row.FeedURL,
		WebsiteURL:  row.FeedURL,
		ImageURL:    row.ImageURL,
	}
	if row.WasDeleted {
		podcast.DeletedAt = &now
	}

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		created, err := s.podcasts.Upsert(txCtx, podcast)
		if err != nil {
			return fmt.Errorf("upsert podcast: %w", err)
		}
		switch {
		case row.WasDeleted:
			report.PodcastsDeleted++
		case created:
			report.PodcastsAdded++
		default:
			report.PodcastsUpdated++
		}
		return nil
	})
}

func (s *SyncService) importEpisode(ctx context.Context, row domain.ExportEpisode, now time.Time, report *domain.SyncReport) error {
	episode := &domain.Episode{
		UUID:        row.UUID,
		PodcastUUID: row.PodcastUUID,
		Title:       row.Title,
		Description: row.Description,
		Duration:    row.Duration,
		PublishedAt: reconcile.NormalizeTimestamp(row.PublishedRaw),
		MediaURL:    row.MediaURL,
		MediaType:   row.MediaType,
		SizeBytes:   row.SizeBytes,
	}
	if row.WasDeleted {
		episode.DeletedAt = &now
	}

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		created, err := s.episodes.Upsert(txCtx, episode)
		if err != nil {
			return fmt.Errorf("upsert episode: %w", err)
		}
		switch {
		case row.WasDeleted:
			report.EpisodesDeleted++
		case created:
			report.EpisodesAdded++
		default:
			report.EpisodesUpdated++
		}

		if row.WasDeleted {
			return nil
		}

		firstPlayed := reconcile.NormalizeTimestamp(row.AddedRaw)
		lastPlayed := reconcile.NormalizeTimestamp(row.LastPlayedRaw)
		if lastPlayed == nil {
			lastPlayed = firstPlayed
		}

		incoming := domain.ListeningHistory{
			EpisodeUUID:   row.UUID,
			PlayedUpTo:    row.PlayedUpTo,
			Duration:      row.Duration,
			PlayingStatus: row.PlayingStatus,
			CompletionPct: reconcile.CompletionPercentage(row.PlayedUpTo, row.Duration),
			FirstPlayedAt: firstPlayed,
			LastPlayedAt:  lastPlayed,
			PlayCount:     1,
		}

		existing, err := s.progress.Get(txCtx, row.UUID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if existing != nil {
			report.ConflictsCount++
			incoming = reconcile.MergeProgress(*existing, incoming)
		}

		if err := s.progress.Upsert(txCtx, &incoming); err != nil {
			return fmt.Errorf("upsert progress: %w", err)
		}
		return nil
	})
}

// RefreshFeeds fetches current entries for every live, non-ended podcast
// with a feed URL, resolves each entry against the stored episodes, and
// seeds a progress row for episodes created along the way. A feed reported
// gone marks the podcast ended; any other fetch failure is recorded and the
// loop continues with the next podcast.
func (s *SyncService) RefreshFeeds(ctx context.Context) (*domain.SyncReport, error) {
	now := time.Now().UTC()
	report := &domain.SyncReport{Timestamp: now, SourcePath: "feeds"}

	podcasts, err := s.podcasts.ListLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list podcasts: %w", err)
	}

	s.logger.Info("starting feed refresh", "podcasts", len(podcasts))

	for _, podcast := range podcasts {
		if podcast.IsEnded || podcast.FeedURL == "" {
			continue
		}

		feed, err := s.fetcher.Fetch(ctx, podcast.FeedURL)
		if errors.Is(err, domain.ErrFeedGone) {
			if markErr := s.podcasts.MarkEnded(ctx, podcast.UUID); markErr != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("%s: mark ended: %v", podcast.Title, markErr))
				continue
			}
			report.Errors = append(report.Errors, fmt.Sprintf("%s: feed gone, podcast marked ended", podcast.Title))
			s.logger.Warn("feed gone", "podcast", podcast.Title, "feed_url", podcast.FeedURL)
			continue
		}
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", podcast.Title, err))
			s.logger.Warn("feed fetch failed", "podcast", podcast.Title, "error", err)
			continue
		}

		added, err := s.refreshPodcast(ctx, podcast, feed, report)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", podcast.Title, err))
			s.logger.Warn("feed refresh failed", "podcast", podcast.Title, "error", err)
			continue
		}

		s.publishEpisodes(ctx, added)
	}

	s.logger.Info("feed refresh completed",
		"episodes_added", report.EpisodesAdded,
		"episodes_updated", report.EpisodesUpdated,
		"errors", len(report.Errors),
	)

	return s.finalize(ctx, report)
}

// Subscribe adds a podcast by feed URL and pulls its current entries. The
// identifier derives deterministically from the feed URL, so subscribing
// twice to the same feed converges on one row.
func (s *SyncService) Subscribe(ctx context.Context, feedURL string) (*domain.SyncReport, error) {
	now := time.Now().UTC()
	report := &domain.SyncReport{Timestamp: now, SourcePath: feedURL}

	feed, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	podcast := domain.Podcast{
		UUID:    reconcile.PodcastUUID(feedURL),
		FeedURL: feedURL,
	}

	created, err := s.refreshPodcast(ctx, podcast, feed, report)
	if err != nil {
		return nil, err
	}
	s.publishEpisodes(ctx, created)

	s.logger.Info("subscribed to feed",
		"feed_url", feedURL,
		"podcast", podcast.UUID,
		"episodes_added", report.EpisodesAdded,
	)

	return s.finalize(ctx, report)
}

// refreshPodcast applies one fetched feed inside a single transaction and
// returns the episodes created by it.
func (s *SyncService) refreshPodcast(ctx context.Context, podcast domain.Podcast, feed *domain.Feed, report *domain.SyncReport) ([]domain.Episode, error) {
	var created []domain.Episode

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		updated := &domain.Podcast{
			UUID:        podcast.UUID,
			Title:       feed.Title,
			Author:      feed.Author,
			Description: feed.Description,
			FeedURL:     podcast.FeedURL,
			WebsiteURL:  feed.WebsiteURL,
			ImageURL:    feed.ImageURL,
		}
		isNew, err := s.podcasts.Upsert(txCtx, updated)
		if err != nil {
			return fmt.Errorf("upsert podcast: %w", err)
		}
		if isNew {
			report.PodcastsAdded++
		} else {
			report.PodcastsUpdated++
		}

		existing, err := s.episodes.ListLiveByPodcast(txCtx, podcast.UUID)
		if err != nil {
			return fmt.Errorf("list episodes: %w", err)
		}

		for _, entry := range feed.Entries {
			if entry.UUID == "" {
				continue
			}

			uuid := reconcile.ResolveEpisodeUUID(podcast.UUID, entry, existing, s.config.PublishedTolerance)
			episode := &domain.Episode{
				UUID:        uuid,
				PodcastUUID: podcast.UUID,
				Title:       entry.Title,
				Description: entry.Description,
				Duration:    entry.Duration,
				PublishedAt: entry.PublishedAt,
				MediaURL:    entry.MediaURL,
				MediaType:   entry.MediaType,
				SizeBytes:   entry.SizeBytes,
				VideoURL:    entry.VideoURL,
			}

			isNew, err := s.episodes.Upsert(txCtx, episode)
			if err != nil {
				return fmt.Errorf("upsert episode %s: %w", uuid, err)
			}

			if isNew {
				report.EpisodesAdded++
				seed := &domain.ListeningHistory{
					EpisodeUUID:   uuid,
					PlayingStatus: domain.StatusNotPlayed,
					Duration:      entry.Duration,
					CompletionPct: reconcile.CompletionPercentage(0, entry.Duration),
					PlayCount:     1,
				}
				if err := s.progress.Upsert(txCtx, seed); err != nil {
					return fmt.Errorf("seed progress %s: %w", uuid, err)
				}
				// Later entries of the same feed resolve against it too.
				existing = append(existing, *episode)
				created = append(created, *episode)
			} else {
				report.EpisodesUpdated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *SyncService) publishEpisodes(ctx context.Context, episodes []domain.Episode) {
	if s.publisher == nil {
		return
	}
	for i := range episodes {
		if err := s.publisher.Publish(ctx, &episodes[i], true); err != nil {
			s.logger.Warn("publish episode failed", "uuid", episodes[i].UUID, "error", err)
		}
	}
}

// finalize appends the immutable sync-history row and advances the
// last-sync marker. Storage faults here are the only errors that surface to
// the caller; the report still carries everything done so far.
func (s *SyncService) finalize(ctx context.Context, report *domain.SyncReport) (*domain.SyncReport, error) {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.syncLog.Record(txCtx, report); err != nil {
			return fmt.Errorf("record sync history: %w", err)
		}
		if err := s.syncLog.SetLastSync(txCtx, report.Timestamp); err != nil {
			return fmt.Errorf("set last sync: %w", err)
		}
		return nil
	})
	if err != nil {
		return report, err
	}
	return report, nil
}
