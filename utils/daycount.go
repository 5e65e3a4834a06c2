package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownDayCount is returned for a day count convention without a formula.
var ErrUnknownDayCount = errors.New("unknown day count convention")

// IsKnownDayCount reports whether YearFraction supports the convention.
func IsKnownDayCount(convention string) bool {
	switch convention {
	case "ACT/360", "ACT/365F", "ACT/ACT ISDA", "30/360", "30E/360":
		return true
	}
	return false
}

// YearFraction computes year fraction between two dates using the specified day count convention.
// Supported conventions: ACT/360, ACT/365F, ACT/ACT ISDA, 30/360, 30E/360.
// ACT/365F is the only Actual/365 basis; a bare "ACT/365" is rejected.
func YearFraction(start, end time.Time, convention string) (float64, error) {
	switch convention {
	case "ACT/360":
		return Days(start, end) / 360.0, nil
	case "ACT/365F":
		return Days(start, end) / 365.0, nil
	case "ACT/ACT ISDA":
		return actActISDA(start, end), nil
	case "30/360":
		// US bond basis: D2 is capped only when D1 was.
		d1 := start.Day()
		d2 := end.Day()
		if d1 == 31 {
			d1 = 30
		}
		if d2 == 31 && d1 == 30 {
			d2 = 30
		}
		return thirty360(start, end, d1, d2), nil
	case "30E/360":
		// Eurobond basis: D1 and D2 are capped at 30
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		return thirty360(start, end, d1, d2), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDayCount, convention)
	}
}

func thirty360(start, end time.Time, d1, d2 int) float64 {
	y1, m1 := start.Year(), int(start.Month())
	y2, m2 := end.Year(), int(end.Month())
	return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
}

func actActISDA(start, end time.Time) float64 {
	if end.Before(start) {
		return -actActISDA(end, start)
	}
	yf := 0.0
	for cur := start; cur.Before(end); {
		nextYear := time.Date(cur.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
		stop := end
		if nextYear.Before(end) {
			stop = nextYear
		}
		daysInYear := 365.0
		if isLeap(cur.Year()) {
			daysInYear = 366.0
		}
		yf += Days(cur, stop) / daysInYear
		cur = stop
	}
	return yf
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
