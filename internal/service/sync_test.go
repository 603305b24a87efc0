package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"podcast_tracker/internal/config"
	"podcast_tracker/internal/domain"
	"podcast_tracker/internal/reconcile"
	"podcast_tracker/internal/service/mocks"
	"podcast_tracker/testdata/utils"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	podcasts  *mocks.MockPodcastStore
	episodes  *mocks.MockEpisodeStore
	progress  *mocks.MockProgressStore
	syncLog   *mocks.MockSyncLogStore
	txManager *mocks.MockTransactionManager
	fetcher   *mocks.MockFeedFetcher
	publisher *mocks.MockPublisher
	source    *mocks.MockExportSource

	service *SyncService
	cfg     config.SyncConfig
	logger  *slog.Logger
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.podcasts = mocks.NewMockPodcastStore(s.ctrl)
	s.episodes = mocks.NewMockEpisodeStore(s.ctrl)
	s.progress = mocks.NewMockProgressStore(s.ctrl)
	s.syncLog = mocks.NewMockSyncLogStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.fetcher = mocks.NewMockFeedFetcher(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.source = mocks.NewMockExportSource(s.ctrl)

	s.cfg = config.SyncConfig{
		Interval:           time.Hour,
		PublishedTolerance: 24 * time.Hour,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	// Every transaction in these tests just runs its body.
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	s.source.EXPECT().Path().Return("/exports/backup.sqlite").AnyTimes()

	s.service = NewSyncService(
		s.podcasts,
		s.episodes,
		s.progress,
		s.syncLog,
		s.txManager,
		s.fetcher,
		s.publisher,
		s.logger,
		s.cfg,
	)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) expectFinalize() {
	s.syncLog.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
	s.syncLog.EXPECT().SetLastSync(gomock.Any(), gomock.Any()).Return(nil)
}

func (s *SyncServiceTestSuite) TestImportExport_NewRows() {
	ctx := context.Background()

	s.source.EXPECT().Podcasts(ctx).Return([]domain.ExportPodcast{
		{UUID: "pod-1", Title: "Go Time", Author: "Changelog", FeedURL: "https://changelog.com/gotime/feed"},
	}, nil)
	s.source.EXPECT().Episodes(ctx).Return([]domain.ExportEpisode{
		{
			UUID:          "ep-1",
			PodcastUUID:   "pod-1",
			Title:         "Episode 1",
			Duration:      3600,
			PublishedRaw:  utils.Ptr(1700000000.0),
			MediaURL:      "https://cdn.changelog.com/1.mp3",
			PlayedUpTo:    1800,
			PlayingStatus: domain.StatusInProgress,
			AddedRaw:      utils.Ptr(1700100000.0),
		},
	}, nil)

	s.podcasts.EXPECT().Upsert(ctx, gomock.Any()).Return(true, nil)
	s.episodes.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ep *domain.Episode) (bool, error) {
			s.Equal("ep-1", ep.UUID)
			s.Equal(time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), ep.PublishedAt.UTC())
			return true, nil
		},
	)

	s.progress.EXPECT().Get(ctx, "ep-1").Return(nil, nil)
	s.progress.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, h *domain.ListeningHistory) error {
			s.Equal(1800.0, h.PlayedUpTo)
			s.Equal(1, h.PlayCount)
			s.NotNil(h.FirstPlayedAt)
			// Absent last-played falls back to the added time.
			s.Equal(h.FirstPlayedAt, h.LastPlayedAt)
			s.InDelta(50.0, *h.CompletionPct, 0.001)
			return nil
		},
	)

	s.expectFinalize()

	report, err := s.service.ImportExport(ctx, s.source)

	s.NoError(err)
	s.Equal(1, report.PodcastsAdded)
	s.Equal(1, report.EpisodesAdded)
	s.Equal(0, report.ConflictsCount)
	s.Empty(report.Errors)
}

func (s *SyncServiceTestSuite) TestImportExport_ProgressConflict() {
	ctx := context.Background()

	s.source.EXPECT().Podcasts(ctx).Return(nil, nil)
	s.source.EXPECT().Episodes(ctx).Return([]domain.ExportEpisode{
		{
			UUID:          "ep-1",
			PodcastUUID:   "pod-1",
			Title:         "Episode 1",
			Duration:      3600,
			PlayedUpTo:    300,
			PlayingStatus: domain.StatusInProgress,
		},
	}, nil)

	s.episodes.EXPECT().Upsert(ctx, gomock.Any()).Return(false, nil)

	existing := &domain.ListeningHistory{
		EpisodeUUID:   "ep-1",
		PlayedUpTo:    900,
		Duration:      3600,
		PlayingStatus: domain.StatusInProgress,
		PlayCount:     2,
	}
	s.progress.EXPECT().Get(ctx, "ep-1").Return(existing, nil)
	s.progress.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, h *domain.ListeningHistory) error {
			// The stored, further-along position wins; play counts add up.
			s.Equal(900.0, h.PlayedUpTo)
			s.Equal(3, h.PlayCount)
			return nil
		},
	)

	s.expectFinalize()

	report, err := s.service.ImportExport(ctx, s.source)

	s.NoError(err)
	s.Equal(1, report.EpisodesUpdated)
	s.Equal(1, report.ConflictsCount)
}

func (s *SyncServiceTestSuite) TestImportExport_DeletedRows() {
	ctx := context.Background()

	s.source.EXPECT().Podcasts(ctx).Return([]domain.ExportPodcast{
		{UUID: "pod-1", Title: "Gone", WasDeleted: true},
	}, nil)
	s.source.EXPECT().Episodes(ctx).Return([]domain.ExportEpisode{
		{UUID: "ep-1", PodcastUUID: "pod-1", Title: "Gone too", WasDeleted: true},
	}, nil)

	s.podcasts.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Podcast) (bool, error) {
			s.NotNil(p.DeletedAt)
			return false, nil
		},
	)
	s.episodes.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ep *domain.Episode) (bool, error) {
			s.NotNil(ep.DeletedAt)
			return false, nil
		},
	)
	// No progress row is written for a tombstoned episode.

	s.expectFinalize()

	report, err := s.service.ImportExport(ctx, s.source)

	s.NoError(err)
	s.Equal(1, report.PodcastsDeleted)
	s.Equal(1, report.EpisodesDeleted)
	s.Equal(0, report.ConflictsCount)
}

func (s *SyncServiceTestSuite) TestImportExport_SourceReadError() {
	ctx := context.Background()

	s.source.EXPECT().Podcasts(ctx).Return(nil, errors.New("database is locked"))

	s.expectFinalize()

	report, err := s.service.ImportExport(ctx, s.source)

	s.NoError(err)
	s.Len(report.Errors, 1)
	s.Contains(report.Errors[0], "read export podcasts")
	s.Equal(0, report.PodcastsAdded)
}

func (s *SyncServiceTestSuite) TestImportExport_RowErrorContinues() {
	ctx := context.Background()

	s.source.EXPECT().Podcasts(ctx).Return([]domain.ExportPodcast{
		{UUID: "pod-bad", Title: "Broken"},
		{UUID: "pod-good", Title: "Fine"},
	}, nil)
	s.source.EXPECT().Episodes(ctx).Return(nil, nil)

	gomock.InOrder(
		s.podcasts.EXPECT().Upsert(ctx, gomock.Any()).Return(false, errors.New("constraint violation")),
		s.podcasts.EXPECT().Upsert(ctx, gomock.Any()).Return(true, nil),
	)

	s.expectFinalize()

	report, err := s.service.ImportExport(ctx, s.source)

	s.NoError(err)
	s.Equal(1, report.PodcastsAdded)
	s.Len(report.Errors, 1)
	s.Contains(report.Errors[0], "pod-bad")
}

func (s *SyncServiceTestSuite) TestRefreshFeeds_NewEpisode() {
	ctx := context.Background()
	published := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	s.podcasts.EXPECT().ListLive(ctx).Return([]domain.Podcast{
		{UUID: "pod-1", Title: "Go Time", FeedURL: "https://changelog.com/gotime/feed"},
	}, nil)

	s.fetcher.EXPECT().Fetch(ctx, "https://changelog.com/gotime/feed").Return(&domain.Feed{
		Title:  "Go Time",
		Author: "Changelog",
		Entries: []domain.FeedEntry{
			{
				UUID:        "entry-1",
				Title:       "Generics revisited",
				Duration:    4200,
				PublishedAt: &published,
				MediaURL:    "https://cdn.changelog.com/301.mp3",
			},
		},
	}, nil)

	s.podcasts.EXPECT().Upsert(ctx, gomock.Any()).Return(false, nil)
	s.episodes.EXPECT().ListLiveByPodcast(ctx, "pod-1").Return(nil, nil)

	s.episodes.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ep *domain.Episode) (bool, error) {
			// No stored episode matches, so the entry keeps its own id.
			s.Equal("entry-1", ep.UUID)
			s.Equal("pod-1", ep.PodcastUUID)
			return true, nil
		},
	)
	s.progress.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, h *domain.ListeningHistory) error {
			s.Equal("entry-1", h.EpisodeUUID)
			s.Equal(domain.StatusNotPlayed, h.PlayingStatus)
			s.Equal(0.0, h.PlayedUpTo)
			return nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil)

	s.expectFinalize()

	report, err := s.service.RefreshFeeds(ctx)

	s.NoError(err)
	s.Equal(1, report.EpisodesAdded)
	s.Equal(1, report.PodcastsUpdated)
	s.Empty(report.Errors)
}

func (s *SyncServiceTestSuite) TestRefreshFeeds_ResolvesChangedGUID() {
	ctx := context.Background()
	published := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	s.podcasts.EXPECT().ListLive(ctx).Return([]domain.Podcast{
		{UUID: "pod-1", Title: "Go Time", FeedURL: "https://changelog.com/gotime/feed"},
	}, nil)

	s.fetcher.EXPECT().Fetch(ctx, "https://changelog.com/gotime/feed").Return(&domain.Feed{
		Title: "Go Time",
		Entries: []domain.FeedEntry{
			{
				UUID:        "rehashed-guid",
				Title:       "Generics revisited",
				PublishedAt: &published,
				MediaURL:    "https://cdn.changelog.com/301.mp3",
			},
		},
	}, nil)

	s.podcasts.EXPECT().Upsert(ctx, gomock.Any()).Return(false, nil)
	s.episodes.EXPECT().ListLiveByPodcast(ctx, "pod-1").Return([]domain.Episode{
		{
			UUID:        "ep-original",
			PodcastUUID: "pod-1",
			Title:       "Generics revisited",
			PublishedAt: &published,
			MediaURL:    "https://cdn.changelog.com/301.mp3",
		},
	}, nil)

	s.episodes.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ep *domain.Episode) (bool, error) {
			// The media URL pins the entry to the stored episode despite
			// the new GUID, so no duplicate is created.
			s.Equal("ep-original", ep.UUID)
			return false, nil
		},
	)

	s.expectFinalize()

	report, err := s.service.RefreshFeeds(ctx)

	s.NoError(err)
	s.Equal(0, report.EpisodesAdded)
	s.Equal(1, report.EpisodesUpdated)
}

func (s *SyncServiceTestSuite) TestRefreshFeeds_FeedGone() {
	ctx := context.Background()

	s.podcasts.EXPECT().ListLive(ctx).Return([]domain.Podcast{
		{UUID: "pod-1", Title: "Dead Air", FeedURL: "https://example.com/dead.xml"},
	}, nil)

	s.fetcher.EXPECT().Fetch(ctx, "https://example.com/dead.xml").Return(nil, domain.ErrFeedGone)
	s.podcasts.EXPECT().MarkEnded(ctx, "pod-1").Return(nil)

	s.expectFinalize()

	report, err := s.service.RefreshFeeds(ctx)

	s.NoError(err)
	s.Len(report.Errors, 1)
	s.Contains(report.Errors[0], "Dead Air")
	s.Contains(report.Errors[0], "marked ended")
}

func (s *SyncServiceTestSuite) TestRefreshFeeds_FetchErrorContinues() {
	ctx := context.Background()

	s.podcasts.EXPECT().ListLive(ctx).Return([]domain.Podcast{
		{UUID: "pod-1", Title: "Flaky", FeedURL: "https://example.com/flaky.xml"},
		{UUID: "pod-2", Title: "Healthy", FeedURL: "https://example.com/healthy.xml"},
	}, nil)

	s.fetcher.EXPECT().Fetch(ctx, "https://example.com/flaky.xml").Return(nil, errors.New("connection reset"))
	s.fetcher.EXPECT().Fetch(ctx, "https://example.com/healthy.xml").Return(&domain.Feed{Title: "Healthy"}, nil)

	s.podcasts.EXPECT().Upsert(ctx, gomock.Any()).Return(false, nil)
	s.episodes.EXPECT().ListLiveByPodcast(ctx, "pod-2").Return(nil, nil)

	s.expectFinalize()

	report, err := s.service.RefreshFeeds(ctx)

	s.NoError(err)
	s.Len(report.Errors, 1)
	s.Contains(report.Errors[0], "Flaky")
	s.Equal(1, report.PodcastsUpdated)
}

func (s *SyncServiceTestSuite) TestRefreshFeeds_SkipsEndedAndFeedless() {
	ctx := context.Background()

	s.podcasts.EXPECT().ListLive(ctx).Return([]domain.Podcast{
		{UUID: "pod-1", Title: "Finished", FeedURL: "https://example.com/done.xml", IsEnded: true},
		{UUID: "pod-2", Title: "Manual Import"},
	}, nil)

	s.expectFinalize()

	report, err := s.service.RefreshFeeds(ctx)

	s.NoError(err)
	s.Empty(report.Errors)
	s.Equal(0, report.PodcastsUpdated)
}

func (s *SyncServiceTestSuite) TestRefreshFeeds_PublisherNil() {
	ctx := context.Background()
	published := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	service := NewSyncService(
		s.podcasts,
		s.episodes,
		s.progress,
		s.syncLog,
		s.txManager,
		s.fetcher,
		nil,
		s.logger,
		s.cfg,
	)

	s.podcasts.EXPECT().ListLive(ctx).Return([]domain.Podcast{
		{UUID: "pod-1", Title: "Go Time", FeedURL: "https://changelog.com/gotime/feed"},
	}, nil)
	s.fetcher.EXPECT().Fetch(ctx, "https://changelog.com/gotime/feed").Return(&domain.Feed{
		Title: "Go Time",
		Entries: []domain.FeedEntry{
			{UUID: "entry-1", Title: "Generics revisited", PublishedAt: &published},
		},
	}, nil)

	s.podcasts.EXPECT().Upsert(ctx, gomock.Any()).Return(false, nil)
	s.episodes.EXPECT().ListLiveByPodcast(ctx, "pod-1").Return(nil, nil)
	s.episodes.EXPECT().Upsert(ctx, gomock.Any()).Return(true, nil)
	s.progress.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	s.expectFinalize()

	report, err := service.RefreshFeeds(ctx)

	s.NoError(err)
	s.Equal(1, report.EpisodesAdded)
}

func (s *SyncServiceTestSuite) TestSubscribe_NewFeed() {
	ctx := context.Background()
	published := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	feedURL := "https://changelog.com/gotime/feed"
	wantUUID := reconcile.PodcastUUID(feedURL)

	s.fetcher.EXPECT().Fetch(ctx, feedURL).Return(&domain.Feed{
		Title:  "Go Time",
		Author: "Changelog",
		Entries: []domain.FeedEntry{
			{
				UUID:        "entry-1",
				Title:       "Generics revisited",
				Duration:    4200,
				PublishedAt: &published,
				MediaURL:    "https://cdn.changelog.com/301.mp3",
			},
		},
	}, nil)

	s.podcasts.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Podcast) (bool, error) {
			s.Equal(wantUUID, p.UUID)
			s.Equal(feedURL, p.FeedURL)
			s.Equal("Go Time", p.Title)
			return true, nil
		},
	)
	s.episodes.EXPECT().ListLiveByPodcast(ctx, wantUUID).Return(nil, nil)
	s.episodes.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ep *domain.Episode) (bool, error) {
			s.Equal(wantUUID, ep.PodcastUUID)
			return true, nil
		},
	)
	s.progress.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil)

	s.expectFinalize()

	report, err := s.service.Subscribe(ctx, feedURL)

	s.NoError(err)
	s.Equal(1, report.PodcastsAdded)
	s.Equal(0, report.PodcastsUpdated)
	s.Equal(1, report.EpisodesAdded)
	s.Equal(feedURL, report.SourcePath)
}

func (s *SyncServiceTestSuite) TestSubscribe_FetchError() {
	ctx := context.Background()
	feedURL := "https://example.com/broken/feed"

	s.fetcher.EXPECT().Fetch(ctx, feedURL).Return(nil, errors.New("connection refused"))

	report, err := s.service.Subscribe(ctx, feedURL)

	s.Error(err)
	s.Nil(report)
	s.Contains(err.Error(), "fetch feed")
}

