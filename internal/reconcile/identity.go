package reconcile

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"podcast_tracker/internal/domain"
)

// PodcastUUID derives the stable podcast identifier from its feed URL
// (UUIDv5 over the URL namespace). Part of the identity contract: the same
// feed URL always yields the same podcast id, independent of any
// source-side auto-increment keys.
func PodcastUUID(feedURL string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.TrimSpace(feedURL))).String()
}

// EntryUUID derives a stable identifier for a feed entry. Prefers a
// URL-shaped guid, then the entry link, then the concatenation of whatever
// is present. Returns "" when there is nothing to hash.
func EntryUUID(guid, link, title string) string {
	guid = strings.TrimSpace(guid)
	link = strings.TrimSpace(link)

	var raw string
	switch {
	case strings.HasPrefix(guid, "http"):
		raw = guid
	case link != "":
		raw = link
	default:
		raw = guid + link + title
	}
	if raw == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])[:32]
}

// matchTier attempts one matching strategy against the stored episodes.
// Tiers are tried in order; the first that reports ok wins.
type matchTier func(entry domain.FeedEntry, existing []domain.Episode, tolerance time.Duration) (string, bool)

var matchTiers = []matchTier{
	matchByMediaURL,
	matchByTitleAndDate,
}

// ResolveEpisodeUUID decides which stored episode a feed entry represents,
// or returns the feed-provided identifier when none matches (a new episode
// will be created under it). Pure function of its inputs; the result does
// not depend on the iteration order of existing.
func ResolveEpisodeUUID(podcastUUID string, entry domain.FeedEntry, existing []domain.Episode, tolerance time.Duration) string {
	scoped := existing[:0:0]
	for _, ep := range existing {
		if ep.PodcastUUID == podcastUUID {
			scoped = append(scoped, ep)
		}
	}

	for _, tier := range matchTiers {
		if id, ok := tier(entry, scoped, tolerance); ok {
			return id
		}
	}
	return entry.UUID
}

// matchByMediaURL matches on an identical primary media URL. Only an
// unambiguous match counts; with zero or multiple hits the tier falls
// through.
func matchByMediaURL(entry domain.FeedEntry, existing []domain.Episode, _ time.Duration) (string, bool) {
	target := strings.TrimSpace(entry.MediaURL)
	if target == "" {
		return "", false
	}

	var matches []string
	for _, ep := range existing {
		if strings.TrimSpace(ep.MediaURL) == target {
			matches = append(matches, ep.UUID)
		}
	}
	if len(matches) != 1 {
		return "", false
	}
	return matches[0], true
}

// matchByTitleAndDate matches on normalized title plus a published date that
// is either both-absent or within tolerance. Multiple candidates are
// resolved deterministically: earliest creation time, then identifier order.
func matchByTitleAndDate(entry domain.FeedEntry, existing []domain.Episode, tolerance time.Duration) (string, bool) {
	title := NormalizeTitle(entry.Title)
	if title == "" {
		return "", false
	}

	var candidates []domain.Episode
	for _, ep := range existing {
		if NormalizeTitle(ep.Title) != title {
			continue
		}
		if !PublishedClose(entry.PublishedAt, ep.PublishedAt, tolerance) {
			continue
		}
		candidates = append(candidates, ep)
	}
	if len(candidates) == 0 {
		return "", false
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].CreatedAt.Equal(candidates[j].CreatedAt) {
			return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
		}
		return candidates[i].UUID < candidates[j].UUID
	})
	return candidates[0].UUID, true
}
