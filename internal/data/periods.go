package data

// PeriodTimes maps a period number to its display time range.
var PeriodTimes = map[int]string{
	1: "08:00 AM - 08:45 AM",
	2: "08:45 AM - 09:30 AM",
	3: "09:45 AM - 10:30 AM",
	4: "10:30 AM - 11:15 AM",
	5: "11:15 AM - 12:00 PM",
	6: "01:00 PM - 01:45 PM",
	7: "01:45 PM - 02:30 PM",
	8: "02:30 PM - 03:15 PM",
	9: "03:30 PM - 04:15 PM",
}

// PeriodTime returns the display time range for a period, or "Unknown" for a
// period with no timing entry.
func PeriodTime(period int) string {
	if t, ok := PeriodTimes[period]; ok {
		return t
	}
	return "Unknown"
}
