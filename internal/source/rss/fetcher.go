// Package rss fetches and parses podcast feeds over HTTP.
package rss

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"podcast_tracker/internal/domain"
	"podcast_tracker/internal/reconcile"
)

// Config holds feed fetcher configuration.
type Config struct {
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

type Fetcher struct {
	httpClient     *http.Client
	parser         *gofeed.Parser
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		parser:         gofeed.NewParser(),
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "rss"),
	}
}

// Fetch downloads and parses the feed. A 404 or 410 response means the feed
// no longer exists and is reported as domain.ErrFeedGone without retrying;
// transient failures are retried with exponential backoff.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) (*domain.Feed, error) {
	var feed *domain.Feed
	var err error

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		feed, err = f.doFetch(ctx, feedURL)
		if err == nil {
			return feed, nil
		}
		if errors.Is(err, domain.ErrFeedGone) {
			return nil, err
		}

		if attempt == f.maxAttempts {
			break
		}

		backoff := f.calculateBackoff(attempt)
		f.logger.Warn("feed fetch failed, retrying",
			"feed_url", feedURL,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", f.maxAttempts, err)
}

func (f *Fetcher) doFetch(ctx context.Context, feedURL string) (*domain.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")
	req.Header.Set("User-Agent", "PodcastTracker/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusGone:
		return nil, fmt.Errorf("%w: status %d", domain.ErrFeedGone, resp.StatusCode)
	default:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	parsed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	return f.transform(parsed), nil
}

func (f *Fetcher) calculateBackoff(attempt int) time.Duration {
	backoff := f.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > f.maxBackoff {
		backoff = f.maxBackoff
	}
	return backoff
}

func (f *Fetcher) transform(parsed *gofeed.Feed) *domain.Feed {
	feed := &domain.Feed{
		Title:       parsed.Title,
		Description: parsed.Description,
		WebsiteURL:  parsed.Link,
	}
	if parsed.ITunesExt != nil {
		feed.Author = parsed.ITunesExt.Author
	}
	if parsed.Image != nil {
		feed.ImageURL = parsed.Image.URL
	}

	for _, item := range parsed.Items {
		entry := domain.FeedEntry{
			UUID:        reconcile.EntryUUID(item.GUID, item.Link, item.Title),
			Title:       item.Title,
			Description: item.Description,
			PublishedAt: item.PublishedParsed,
		}
		if item.ITunesExt != nil {
			entry.Duration = parseDuration(item.ITunesExt.Duration)
		}
		if enc := pickEnclosure(item.Enclosures); enc != nil {
			entry.MediaURL = enc.URL
			entry.MediaType = enc.Type
			if size, err := strconv.ParseInt(enc.Length, 10, 64); err == nil {
				entry.SizeBytes = size
			}
			if strings.HasPrefix(enc.Type, "video/") {
				entry.VideoURL = enc.URL
			}
		}

		feed.Entries = append(feed.Entries, entry)
	}

	return feed
}

// pickEnclosure prefers the first audio enclosure, falling back to whatever
// the item carries.
func pickEnclosure(enclosures []*gofeed.Enclosure) *gofeed.Enclosure {
	for _, enc := range enclosures {
		if strings.HasPrefix(enc.Type, "audio/") {
			return enc
		}
	}
	if len(enclosures) > 0 {
		return enclosures[0]
	}
	return nil
}

// parseDuration handles both the plain-seconds and HH:MM:SS forms used in
// itunes:duration tags.
func parseDuration(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	if !strings.Contains(raw, ":") {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil || seconds < 0 {
			return 0
		}
		return seconds
	}

	var total float64
	for _, part := range strings.Split(raw, ":") {
		n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}
