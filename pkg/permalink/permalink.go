// Package permalink resolves Slack message permalinks into the channel
// and timestamp coordinates the Web API expects.
package permalink

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
)

var (
	// ErrNotAPermalink marks input that does not look like a Slack
	// archive URL at all.
	ErrNotAPermalink = errors.New("not a slack message permalink")

	// ErrMalformedTimestamp marks a permalink whose embedded digit run is
	// too short to split into seconds and a 6-digit fraction.
	ErrMalformedTimestamp = errors.New("malformed permalink timestamp")
)

// Matches https://<workspace>.slack.com/archives/C05AZF69J9Z/p1769774454630549
var archiveRe = regexp.MustCompile(`^https://[^/]+\.slack\.com/archives/([A-Z0-9]+)/p(\d+)`)

// Ref locates a message: the channel it lives in, its timestamp in API
// format, and optionally the timestamp of its parent thread.
type Ref struct {
	ChannelID string
	MessageTS string
	ThreadTS  string
}

// Resolve parses a permalink into a Ref. The URL timestamp p1769774454630549
// becomes 1769774454.630549: the last 6 digits are the microsecond fraction.
// A thread_ts query parameter is carried over verbatim when present.
func Resolve(raw string) (*Ref, error) {
	m := archiveRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotAPermalink, raw)
	}

	digits := m[2]
	if len(digits) < 7 {
		return nil, fmt.Errorf("%w: digit run %q is too short to carry a 6-digit fraction", ErrMalformedTimestamp, digits)
	}

	ref := &Ref{
		ChannelID: m[1],
		MessageTS: digits[:len(digits)-6] + "." + digits[len(digits)-6:],
	}

	if u, err := url.Parse(raw); err == nil {
		ref.ThreadTS = u.Query().Get("thread_ts")
	}

	return ref, nil
}
