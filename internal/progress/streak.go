package progress

import "time"

// calendarDays returns the number of calendar days from a to b in loc.
// Times of day are ignored, so 23:59 and 00:01 the next morning are one day
// apart.
func calendarDays(a, b time.Time, loc *time.Location) int {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// advanceStreak applies a play at now to the streak counters.
func advanceStreak(r *Record, now time.Time, loc *time.Location) {
	if r.LastPlayed.IsZero() {
		r.CurrentStreak = 1
	} else {
		switch calendarDays(r.LastPlayed, now, loc) {
		case 0:
			// same day
		case 1:
			r.CurrentStreak++
		default:
			r.CurrentStreak = 1
		}
	}
	r.CurrentStreak = max(r.CurrentStreak, 1)
	r.BestStreak = max(r.BestStreak, r.CurrentStreak)

	if r.FirstPlayed.IsZero() {
		r.FirstPlayed = now
	}
	r.LastPlayed = now
}
