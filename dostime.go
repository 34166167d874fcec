package zipstream

import "time"

// toDOSTime converts a civil wall-clock moment to MS-DOS time/date fields,
// per spec.md §6. Years before 1980 (the format's epoch) clamp to 1980.
func toDOSTime(t time.Time) (dosTime, dosDate uint16) {
	year := t.Year()
	if year < 1980 {
		year = 1980
	}

	dosTime = uint16(t.Hour())<<11 | uint16(t.Minute())<<5 | uint16(t.Second()/2)
	dosDate = uint16(year-1980)<<9 | uint16(t.Month())<<5 | uint16(t.Day())
	return dosTime, dosDate
}
