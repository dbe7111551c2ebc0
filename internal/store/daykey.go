package store

import "time"

const dayKeyLayout = "2006-01-02"

// DateAtLocation truncates a timestamp to midnight of its calendar day in
// the given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayKey is the single day-key function shared by both drivers and the
// ledger, so a timestamp can never belong to different days depending on
// which backend evaluates it.
func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(dayKeyLayout)
}

// DayBounds returns the half-open [start, end) range covering the
// calendar day of value.
func DayBounds(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// SameDay reports whether two timestamps share a day key.
func SameDay(a time.Time, b time.Time, location *time.Location) bool {
	return DayKey(a, location) == DayKey(b, location)
}
