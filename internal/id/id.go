// Package id mints run identifiers.
//
// Run IDs are ULIDs: lexicographically sortable by creation time, so
// journal listings ordered by run_id are also ordered by when the run was
// recorded.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy io.Reader
)

func init() {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Monotonic keeps IDs minted within one millisecond increasing.
	entropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// NewRun returns a fresh run ID stamped with the current time.
func NewRun() string {
	return At(time.Now())
}

// At returns a run ID stamped with t.
func At(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()

	v, err := ulid.New(ulid.Timestamp(t.UTC()), entropy)
	if err != nil {
		panic(err)
	}
	return v.String()
}

// Time extracts the creation time encoded in a run ID.
func Time(runID string) (time.Time, error) {
	v, err := ulid.ParseStrict(strings.ToUpper(runID))
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(v.Time()).UTC(), nil
}

// Short is the abbreviated form used in headings.
func Short(runID string) string {
	if len(runID) <= 8 {
		return runID
	}
	return runID[:8]
}
