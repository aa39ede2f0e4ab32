package evaluate

import "time"

// Relative date bucket labels.
const (
	BucketUpcoming  = "Upcoming"
	BucketToday     = "Today"
	BucketYesterday = "Yesterday"
	BucketThisWeek  = "This Week"
	BucketThisMonth = "This Month"
)

// DaysAgo is the number of calendar days from date to now. A date-only value
// (midnight) keeps its own calendar day; a value with a time of day is read in
// now's location first, so the instant decides the day. Future dates are
// negative.
func DaysAgo(date, now time.Time) int {
	h, m, s := date.Clock()
	if h != 0 || m != 0 || s != 0 || date.Nanosecond() != 0 {
		date = date.In(now.Location())
	}
	return dayNumber(now) - dayNumber(date)
}

// DateBucket labels date relative to now:
//
//	0 days      Today
//	1 day       Yesterday
//	<= 7 days   This Week
//	<= 30 days  This Month
//	<= 365 days "January 2006"
//	older       "2006"
//
// Dates after now are Upcoming. The label depends on the clock passed in, so
// a long-lived session can see labels move as time passes.
func DateBucket(date, now time.Time) string {
	diff := DaysAgo(date, now)
	switch {
	case diff < 0:
		return BucketUpcoming
	case diff == 0:
		return BucketToday
	case diff == 1:
		return BucketYesterday
	case diff <= 7:
		return BucketThisWeek
	case diff <= 30:
		return BucketThisMonth
	case diff <= 365:
		return date.Format("January 2006")
	}
	return date.Format("2006")
}

// bucketRank orders buckets newest first. Month and year buckets are further
// ordered by their anchor time.
func bucketRank(date, now time.Time) (int, time.Time) {
	diff := DaysAgo(date, now)
	switch {
	case diff < 0:
		return 0, time.Time{}
	case diff == 0:
		return 1, time.Time{}
	case diff == 1:
		return 2, time.Time{}
	case diff <= 7:
		return 3, time.Time{}
	case diff <= 30:
		return 4, time.Time{}
	case diff <= 365:
		return 5, time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return 6, time.Date(date.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
}
