package calendar

import "time"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// easterSunday uses the anonymous Gregorian algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return date(year, time.Month(month), day)
}

// nthWeekday returns the nth weekday of the month; n < 0 counts from the end.
func nthWeekday(year int, month time.Month, wd time.Weekday, n int) time.Time {
	if n > 0 {
		first := date(year, month, 1)
		offset := (int(wd) - int(first.Weekday()) + 7) % 7
		return first.AddDate(0, 0, offset+7*(n-1))
	}
	last := date(year, month+1, 0)
	offset := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.AddDate(0, 0, -offset+7*(n+1))
}

// weekendRolled moves a Saturday or Sunday fixed-date holiday forward by two days,
// which lands both Christmas and Boxing Day substitutes on the right weekday.
func weekendRolled(t time.Time, shift int) time.Time {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return t.AddDate(0, 0, shift)
	}
	return t
}

func newYearObserved(year int) time.Time {
	ny := date(year, time.January, 1)
	switch ny.Weekday() {
	case time.Saturday:
		return ny.AddDate(0, 0, 2)
	case time.Sunday:
		return ny.AddDate(0, 0, 1)
	}
	return ny
}

var londonSpecial = map[string]struct{}{
	"1999-12-31": {},
	"2002-06-03": {},
	"2011-04-29": {},
	"2012-06-05": {},
	"2022-06-03": {},
	"2022-09-19": {},
	"2023-05-08": {},
}

// Spring bank holiday moved from the last Monday of May in jubilee years,
// early May moved to VE day anniversaries.
var londonMoved = map[int]struct {
	earlyMay time.Time
	spring   time.Time
}{
	1995: {earlyMay: date(1995, time.May, 8)},
	2002: {spring: date(2002, time.June, 4)},
	2012: {spring: date(2012, time.June, 4)},
	2020: {earlyMay: date(2020, time.May, 8)},
	2022: {spring: date(2022, time.June, 2)},
}

func isLondonHoliday(t time.Time) bool {
	if _, ok := londonSpecial[t.Format("2006-01-02")]; ok {
		return true
	}
	y := t.Year()
	easter := easterSunday(y)
	earlyMay := nthWeekday(y, time.May, time.Monday, 1)
	spring := nthWeekday(y, time.May, time.Monday, -1)
	if mv, ok := londonMoved[y]; ok {
		if !mv.earlyMay.IsZero() {
			earlyMay = mv.earlyMay
		}
		if !mv.spring.IsZero() {
			spring = mv.spring
		}
	}
	for _, h := range []time.Time{
		newYearObserved(y),
		easter.AddDate(0, 0, -2),
		easter.AddDate(0, 0, 1),
		earlyMay,
		spring,
		nthWeekday(y, time.August, time.Monday, -1),
		weekendRolled(date(y, time.December, 25), 2),
		weekendRolled(date(y, time.December, 26), 2),
	} {
		if sameDay(t, h) {
			return true
		}
	}
	return false
}

func isTargetHoliday(t time.Time) bool {
	y := t.Year()
	easter := easterSunday(y)
	for _, h := range []time.Time{
		date(y, time.January, 1),
		easter.AddDate(0, 0, -2),
		easter.AddDate(0, 0, 1),
		date(y, time.May, 1),
		date(y, time.December, 25),
		date(y, time.December, 26),
	} {
		if sameDay(t, h) {
			return true
		}
	}
	return false
}

func sundayRolled(t time.Time) time.Time {
	if t.Weekday() == time.Sunday {
		return t.AddDate(0, 0, 1)
	}
	return t
}

func isFedHoliday(t time.Time) bool {
	y := t.Year()
	days := []time.Time{
		sundayRolled(date(y, time.January, 1)),
		nthWeekday(y, time.January, time.Monday, 3),
		nthWeekday(y, time.February, time.Monday, 3),
		nthWeekday(y, time.May, time.Monday, -1),
		sundayRolled(date(y, time.July, 4)),
		nthWeekday(y, time.September, time.Monday, 1),
		nthWeekday(y, time.October, time.Monday, 2),
		sundayRolled(date(y, time.November, 11)),
		nthWeekday(y, time.November, time.Thursday, 4),
		sundayRolled(date(y, time.December, 25)),
	}
	if y >= 2022 {
		days = append(days, sundayRolled(date(y, time.June, 19)))
	}
	for _, h := range days {
		if sameDay(t, h) {
			return true
		}
	}
	return false
}
