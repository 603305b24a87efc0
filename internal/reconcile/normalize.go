// Package reconcile holds the pure identity-resolution and merge rules:
// title/URL normalization, timestamp disambiguation, episode identity
// resolution against feed entries, and listening-progress conflict merging.
// Nothing in this package touches storage, so every rule is deterministic
// and independently testable.
package reconcile

import (
	"net/url"
	"strings"
	"time"
)

// DefaultPublishedTolerance is the window within which two published dates
// are considered the same release.
const DefaultPublishedTolerance = 24 * time.Hour

// NormalizeTitle prepares a title for matching: trim, lowercase, collapse
// internal whitespace.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// CanonicalFeedURL normalizes a feed URL for use as a dedup key: trimmed,
// no trailing slash, https scheme, lowercase host.
func CanonicalFeedURL(raw string) string {
	s := strings.TrimRight(strings.TrimSpace(raw), "/")
	if s == "" {
		return ""
	}

	parsed, err := url.Parse(s)
	if err != nil || parsed.Host == "" {
		return s
	}

	scheme := parsed.Scheme
	if scheme == "http" || scheme == "" {
		scheme = "https"
	}

	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}
	if parsed.Fragment != "" {
		path += "#" + parsed.Fragment
	}

	return scheme + "://" + strings.ToLower(parsed.Host) + path
}

// PublishedClose reports whether two published dates describe the same
// release: both absent, or both present and within tolerance of each other.
func PublishedClose(a, b *time.Time, tolerance time.Duration) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	diff := a.Sub(*b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
