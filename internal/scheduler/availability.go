package scheduler

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// dateInterval is an inclusive blocked range in DateLayout strings.
type dateInterval struct {
	start string
	end   string
}

// AvailabilityIndex answers "is person P blocked at time T" from a
// precomputed per-person set of merged blocked-date intervals. It is built
// once per solve and is a pure function of the loaded snapshot.
type AvailabilityIndex struct {
	blocked map[uuid.UUID][]dateInterval
}

// BuildAvailabilityIndex merges each person's time-off ranges into a sorted,
// non-overlapping interval set. Overlapping or adjacent ranges are unioned so
// lookup is a single binary search.
func BuildAvailabilityIndex(timeOff []TimeOffSnapshot) *AvailabilityIndex {
	byPerson := make(map[uuid.UUID][]dateInterval)
	for _, rng := range timeOff {
		if rng.StartDate > rng.EndDate {
			continue
		}
		byPerson[rng.PersonID] = append(byPerson[rng.PersonID], dateInterval{start: rng.StartDate, end: rng.EndDate})
	}

	for personID, intervals := range byPerson {
		sort.Slice(intervals, func(i, j int) bool {
			if intervals[i].start != intervals[j].start {
				return intervals[i].start < intervals[j].start
			}
			return intervals[i].end < intervals[j].end
		})

		merged := intervals[:0]
		for _, iv := range intervals {
			n := len(merged)
			if n > 0 && iv.start <= nextDay(merged[n-1].end) {
				if iv.end > merged[n-1].end {
					merged[n-1].end = iv.end
				}
				continue
			}
			merged = append(merged, iv)
		}
		byPerson[personID] = merged
	}

	return &AvailabilityIndex{blocked: byPerson}
}

// IsBlocked reports whether the person has time-off covering the calendar
// date of the given instant. Comparison is date-only per the ingestion
// contract: the instant's date string is checked against inclusive ranges.
func (idx *AvailabilityIndex) IsBlocked(personID uuid.UUID, at time.Time) bool {
	return idx.IsBlockedOn(personID, at.Format(DateLayout))
}

// IsBlockedOn is IsBlocked for an already-formatted calendar date.
func (idx *AvailabilityIndex) IsBlockedOn(personID uuid.UUID, date string) bool {
	intervals := idx.blocked[personID]
	if len(intervals) == 0 {
		return false
	}
	// First interval starting after the date cannot contain it; check the one before.
	i := sort.Search(len(intervals), func(i int) bool {
		return intervals[i].start > date
	})
	if i == 0 {
		return false
	}
	return date <= intervals[i-1].end
}

// nextDay returns the date string one calendar day after d. Malformed input
// is returned unchanged, which keeps such ranges from merging with others.
func nextDay(d string) string {
	t, err := time.Parse(DateLayout, d)
	if err != nil {
		return d
	}
	return t.AddDate(0, 0, 1).Format(DateLayout)
}
