package core

import "time"

// Now returns the current UTC time. All domain timestamps are UTC so results
// serialize identically regardless of host timezone.
func Now() time.Time {
	return time.Now().UTC()
}
