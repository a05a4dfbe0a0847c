package app

import "time"

const dayFormat = "2006-01-02"

// streakDays counts consecutive calendar days of practice ending today or
// yesterday. days must be distinct YYYY-MM-DD strings, newest first, as
// returned by the event log. A learner who practiced yesterday but not yet
// today still has a live streak.
func streakDays(days []string, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	cursor := now
	if days[0] != cursor.Format(dayFormat) {
		cursor = cursor.AddDate(0, 0, -1)
		if days[0] != cursor.Format(dayFormat) {
			return 0
		}
	}

	streak := 0
	for _, day := range days {
		if day != cursor.Format(dayFormat) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// NextStreakMilestone returns the next streak length worth calling out.
func NextStreakMilestone(current int) int {
	for _, t := range []int{3, 7, 14, 30} {
		if t > current {
			return t
		}
	}
	// Beyond 30, celebrate every 30.
	return ((current / 30) + 1) * 30
}
