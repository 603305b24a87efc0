package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"podcast_tracker/internal/domain"
	"podcast_tracker/internal/reconcile"
)

// CleanupService removes duplicate podcasts. Only zero-episode rows are
// ever hard-deleted; a podcast with episodes is never destroyed.
type CleanupService struct {
	podcasts          PodcastStore
	txManager         TransactionManager
	logger            *slog.Logger
	skipTitleFallback bool
}

func NewCleanupService(podcasts PodcastStore, txManager TransactionManager, logger *slog.Logger, skipTitleFallback bool) *CleanupService {
	return &CleanupService{
		podcasts:          podcasts,
		txManager:         txManager,
		logger:            logger,
		skipTitleFallback: skipTitleFallback,
	}
}

// RemoveDuplicatePodcasts runs two passes over the live podcasts: first a
// strong-signal grouping by canonical feed URL, then a title fallback for
// zero-episode rows with exactly one live sibling that has episodes.
// Ambiguous title matches are left untouched.
func (s *CleanupService) RemoveDuplicatePodcasts(ctx context.Context) (*domain.DuplicateCleanupReport, error) {
	report := &domain.DuplicateCleanupReport{}

	podcasts, err := s.podcasts.ListLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list podcasts: %w", err)
	}

	deleted := make(map[string]bool)

	byCanonical := make(map[string][]domain.Podcast)
	for _, p := range podcasts {
		canonical := reconcile.CanonicalFeedURL(p.FeedURL)
		if canonical == "" {
			continue
		}
		byCanonical[canonical] = append(byCanonical[canonical], p)
	}

	for _, group := range byCanonical {
		var withEpisodes, empty []domain.Podcast
		for _, p := range group {
			if p.EpisodeCount > 0 {
				withEpisodes = append(withEpisodes, p)
			} else {
				empty = append(empty, p)
			}
		}
		if len(withEpisodes) == 0 || len(empty) == 0 {
			continue
		}
		for _, p := range empty {
			if err := s.deletePodcast(ctx, p, report); err != nil {
				return report, err
			}
			deleted[p.UUID] = true
		}
	}

	if !s.skipTitleFallback {
		byTitle := make(map[string][]domain.Podcast)
		for _, p := range podcasts {
			if p.EpisodeCount == 0 {
				continue
			}
			if title := reconcile.NormalizeTitle(p.Title); title != "" {
				byTitle[title] = append(byTitle[title], p)
			}
		}

		for _, p := range podcasts {
			if p.EpisodeCount > 0 || deleted[p.UUID] {
				continue
			}
			title := reconcile.NormalizeTitle(p.Title)
			if title == "" {
				continue
			}
			// Only an unambiguous sibling justifies deleting on a title
			// match alone.
			if len(byTitle[title]) != 1 {
				continue
			}
			if err := s.deletePodcast(ctx, p, report); err != nil {
				return report, err
			}
			deleted[p.UUID] = true
		}
	}

	s.logger.Info("duplicate podcast cleanup completed", "deleted", report.DeletedCount)
	return report, nil
}

func (s *CleanupService) deletePodcast(ctx context.Context, p domain.Podcast, report *domain.DuplicateCleanupReport) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.podcasts.Delete(txCtx, p.UUID)
	})
	if err != nil {
		return fmt.Errorf("delete podcast %s: %w", p.UUID, err)
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = "Unknown"
	}
	report.DeletedCount++
	report.DeletedTitles = append(report.DeletedTitles, title)
	s.logger.Info("deleted duplicate podcast", "uuid", p.UUID, "title", title)
	return nil
}
