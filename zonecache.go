package jsoniter

import (
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

// zonecache.go implements the process-wide zone-id cache: IANA zone names
// are resolved through time.LoadLocation, which parses and reads a tzdata
// file on every call, so successful lookups are memoized in a lock-free
// map shared by every Reader/Writer in the process.
var zoneCache = xsync.NewMap[string, *time.Location]()

// lookupZone resolves name to a *time.Location, consulting and populating
// the shared cache. A failed lookup is not cached, since a transient
// tzdata-loading failure should not poison future lookups of the same name.
func lookupZone(name string) (*time.Location, error) {
	if loc, ok := zoneCache.Load(name); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	actual, _ := zoneCache.LoadOrStore(name, loc)
	return actual, nil
}

// quarterHourZones caches *time.Location values for the 145 whole-
// quarter-hour offsets in [-18h, +18h], keyed by offset-in-seconds/900.
// Each slot is populated at most once, since most programs only ever
// encounter a handful of distinct offsets and time.FixedZone allocates.
var quarterHourZones [145]*time.Location
var quarterHourOnce [145]sync.Once

func quarterHourIndex(offsetSeconds int32) (int, bool) {
	if offsetSeconds%900 != 0 {
		return 0, false
	}
	idx := int(offsetSeconds/900) + 72
	if idx < 0 || idx >= len(quarterHourZones) {
		return 0, false
	}
	return idx, true
}

// zoneOffsetLocation returns a *time.Location for offsetSeconds, reusing
// the quarter-hour cache when the offset lands on a 15-minute boundary
// and falling back to a fresh time.FixedZone otherwise.
func zoneOffsetLocation(offsetSeconds int32) *time.Location {
	idx, ok := quarterHourIndex(offsetSeconds)
	if !ok {
		return time.FixedZone("", int(offsetSeconds))
	}
	quarterHourOnce[idx].Do(func() {
		quarterHourZones[idx] = time.FixedZone("", int(offsetSeconds))
	})
	return quarterHourZones[idx]
}
