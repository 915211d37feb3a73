// Package idx generates the request IDs stamped on outbound API calls.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RequestID is a ULID identifying a single outbound request.
type RequestID string

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a lexicographically sortable request ID for the current time.
func New() RequestID {
	return NewAt(time.Now().UTC())
}

// NewAt returns a request ID for t, useful in tests.
func NewAt(t time.Time) RequestID {
	mu.Lock()
	defer mu.Unlock()

	return RequestID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}

// Parse validates s as a ULID. Incoming X-Request-ID values that are not
// ULIDs are rejected so logs only ever carry IDs this package can order.
func Parse(s string) (RequestID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return "", ErrInvalid
	}
	return RequestID(s), nil
}

func (id RequestID) String() string { return string(id) }

// Time extracts the embedded UTC timestamp, or the zero time for invalid IDs.
func (id RequestID) Time() time.Time {
	u, err := ulid.ParseStrict(string(id))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}
