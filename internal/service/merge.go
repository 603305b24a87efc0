package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"podcast_tracker/internal/domain"
	"podcast_tracker/internal/reconcile"
)

// MergeService unifies duplicate episodes within a podcast: same normalized
// title, published within tolerance of each other. The survivor keeps the
// merged listening progress and inherits every play session; duplicates are
// removed. Each group is merged inside one transaction.
type MergeService struct {
	episodes  EpisodeStore
	progress  ProgressStore
	sessions  PlaySessionStore
	txManager TransactionManager
	logger    *slog.Logger
	tolerance time.Duration
}

func NewMergeService(
	episodes EpisodeStore,
	progress ProgressStore,
	sessions PlaySessionStore,
	txManager TransactionManager,
	logger *slog.Logger,
	tolerance time.Duration,
) *MergeService {
	if tolerance <= 0 {
		tolerance = reconcile.DefaultPublishedTolerance
	}
	return &MergeService{
		episodes:  episodes,
		progress:  progress,
		sessions:  sessions,
		txManager: txManager,
		logger:    logger,
		tolerance: tolerance,
	}
}

func (s *MergeService) MergeDuplicateEpisodes(ctx context.Context) (*domain.DuplicateEpisodeMergeReport, error) {
	report := &domain.DuplicateEpisodeMergeReport{}

	episodes, err := s.episodes.ListLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}

	byPodcast := make(map[string][]domain.Episode)
	for _, ep := range episodes {
		byPodcast[ep.PodcastUUID] = append(byPodcast[ep.PodcastUUID], ep)
	}

	for _, group := range byPodcast {
		report.PodcastsProcessed++
		for _, dupes := range s.groupDuplicates(group) {
			report.DuplicateGroupsFound++
			if err := s.mergeGroup(ctx, dupes, report); err != nil {
				return report, err
			}
		}
	}

	s.logger.Info("duplicate episode merge completed",
		"podcasts", report.PodcastsProcessed,
		"groups", report.DuplicateGroupsFound,
		"removed", report.EpisodesRemoved,
	)
	return report, nil
}

type bucketKey struct {
	title  string
	dated  bool
	bucket int64
}

// groupDuplicates buckets episodes by (normalized title, published date
// floored to the tolerance), then rechecks each bucket pairwise so episodes
// straddling a bucket boundary cannot slip in. Episodes failing the recheck
// drop out of the group.
func (s *MergeService) groupDuplicates(episodes []domain.Episode) [][]domain.Episode {
	tolSeconds := int64(s.tolerance / time.Second)

	buckets := make(map[bucketKey][]domain.Episode)
	for _, ep := range episodes {
		key := bucketKey{title: reconcile.NormalizeTitle(ep.Title)}
		if ep.PublishedAt != nil {
			key.dated = true
			sec := ep.PublishedAt.Unix()
			key.bucket = (sec / tolSeconds) * tolSeconds
			if sec < 0 && sec%tolSeconds != 0 {
				key.bucket -= tolSeconds
			}
		}
		buckets[key] = append(buckets[key], ep)
	}

	var groups [][]domain.Episode
	for key, group := range buckets {
		if key.title == "" || len(group) < 2 {
			continue
		}

		var confirmed []domain.Episode
		for _, ep := range group {
			ok := true
			for _, other := range group {
				if !reconcile.PublishedClose(ep.PublishedAt, other.PublishedAt, s.tolerance) {
					ok = false
					break
				}
			}
			if ok {
				confirmed = append(confirmed, ep)
			}
		}
		if len(confirmed) < 2 {
			continue
		}

		sort.Slice(confirmed, func(i, j int) bool { return confirmed[i].UUID < confirmed[j].UUID })
		groups = append(groups, confirmed)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i][0].UUID < groups[j][0].UUID })
	return groups
}

func (s *MergeService) mergeGroup(ctx context.Context, group []domain.Episode, report *domain.DuplicateEpisodeMergeReport) error {
	removed := 0

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		uuids := make([]string, len(group))
		for i, ep := range group {
			uuids[i] = ep.UUID
		}

		histories, err := s.progress.GetByEpisodes(txCtx, uuids)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		survivor := pickSurvivor(group, histories)
		survivorProgress, hasProgress := histories[survivor.UUID]

		for _, dup := range group {
			if dup.UUID == survivor.UUID {
				continue
			}

			if dupProgress, ok := histories[dup.UUID]; ok {
				if !hasProgress {
					if err := s.progress.Reassign(txCtx, dup.UUID, survivor.UUID); err != nil {
						return fmt.Errorf("reassign progress: %w", err)
					}
					dupProgress.EpisodeUUID = survivor.UUID
					survivorProgress = dupProgress
					hasProgress = true
				} else {
					merged := reconcile.MergeProgress(survivorProgress, dupProgress)
					if err := s.progress.Upsert(txCtx, &merged); err != nil {
						return fmt.Errorf("merge progress: %w", err)
					}
					if err := s.progress.Delete(txCtx, dup.UUID); err != nil {
						return fmt.Errorf("delete duplicate progress: %w", err)
					}
					survivorProgress = merged
				}
			}

			if err := s.sessions.Reassign(txCtx, dup.UUID, survivor.UUID); err != nil {
				return fmt.Errorf("reassign play sessions: %w", err)
			}
			if err := s.episodes.Delete(txCtx, dup.UUID); err != nil {
				return fmt.Errorf("delete duplicate episode: %w", err)
			}
			removed++
		}

		s.logger.Info("merged duplicate episodes",
			"survivor", survivor.UUID,
			"title", survivor.Title,
			"removed", removed,
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("merge group %s: %w", group[0].UUID, err)
	}

	report.EpisodesRemoved += removed
	return nil
}

// pickSurvivor selects the canonical episode of a duplicate group: the one
// with the highest-scoring progress row ordered by played-up-to, then play
// count, then earliest creation, then identifier. Without any progress row
// the earliest-created episode wins.
func pickSurvivor(group []domain.Episode, histories map[string]domain.ListeningHistory) domain.Episode {
	var withProgress []domain.Episode
	for _, ep := range group {
		if _, ok := histories[ep.UUID]; ok {
			withProgress = append(withProgress, ep)
		}
	}

	candidates := group
	if len(withProgress) > 0 {
		candidates = withProgress
	}

	best := candidates[0]
	for _, ep := range candidates[1:] {
		if survivorLess(ep, best, histories) {
			best = ep
		}
	}
	return best
}

// survivorLess reports whether a should be preferred over b.
func survivorLess(a, b domain.Episode, histories map[string]domain.ListeningHistory) bool {
	ha, hb := histories[a.UUID], histories[b.UUID]
	if ha.PlayedUpTo != hb.PlayedUpTo {
		return ha.PlayedUpTo > hb.PlayedUpTo
	}
	if ha.PlayCount != hb.PlayCount {
		return ha.PlayCount > hb.PlayCount
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.UUID < b.UUID
}
