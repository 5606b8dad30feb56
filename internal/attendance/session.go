package attendance

import "time"

// ResolveTodaySession returns today's most recently created record, or nil
// when no record exists for today. "Today" is the calendar date of now,
// which callers evaluate in the user's timezone.
//
// The result doubles as the open session when its ClockOut is still nil.
// Recency, not clock_out nullity, decides which record is current: several
// closed records can exist for one day (a leave submission followed by a
// finished shift), so the resolver always re-derives from the full day.
func ResolveTodaySession(history []Attendance, now time.Time) *Attendance {
	var latest *Attendance
	for i := range history {
		rec := &history[i]
		if !sameDay(rec.Date, now) {
			continue
		}
		if latest == nil || moreRecent(rec, latest) {
			latest = rec
		}
	}
	return latest
}

// CanClockIn reports whether a new clock-in is allowed: no record yet today,
// or the previous session is already closed.
func CanClockIn(session *Attendance) bool {
	return session == nil || session.ClockOut != nil
}

// CanClockOut reports whether a clock-out is allowed: today's latest record
// exists and is still open.
func CanClockOut(session *Attendance) bool {
	return session != nil && session.ClockOut == nil
}

func moreRecent(a, b *Attendance) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	// Server-assigned creation timestamps should never collide; if they do,
	// the higher UUID wins so resolution stays deterministic.
	return a.ID.String() > b.ID.String()
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
