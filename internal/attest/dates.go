package attest

import (
	"math"
	"time"
)

// displayLayout is the fixed nl-BE display convention, dd/mm/yyyy.
const displayLayout = "02/01/2006"

// isoLayout is the wire format dates arrive in from the form and bulk input.
const isoLayout = "2006-01-02"

// membershipBoundaryMonth is the organizational year boundary, September 1st.
const membershipBoundaryMonth = time.September

// CampDays returns the whole-day floor difference between end and start.
// Negative and zero results are returned as-is; callers use them to judge
// validity, so they must not be clamped.
func CampDays(start, end time.Time) int {
	return int(math.Floor(end.Sub(start).Hours() / 24))
}

// FormatDate renders a date in the fixed display convention.
func FormatDate(t time.Time) string {
	return t.Format(displayLayout)
}

// ParseISODate parses a yyyy-mm-dd input field value. The zero time and false
// are returned for empty or malformed input.
func ParseISODate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MembershipWindow computes the organizational year around now: the reference
// year is found by stepping back 8 months, and the window runs from September
// 1st of that year to September 1st of the next.
func MembershipWindow(now time.Time) (start, end time.Time) {
	year := now.AddDate(0, -8, 0).Year()
	start = time.Date(year, membershipBoundaryMonth, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year+1, membershipBoundaryMonth, 1, 0, 0, 0, 0, time.UTC)
	return start, end
}

// Params carries the raw form fields a certificate is assembled from.
// Dates are yyyy-mm-dd strings as delivered by date inputs; empty or
// malformed dates assemble into empty display strings rather than failing,
// so a live preview of an incomplete form still renders.
type Params struct {
	Type          Type
	MemberName    string
	MemberAddress string
	CampStart     string
	CampEnd       string
	Payment       int
	PaymentDate   string
	Signature     string
}

// Assemble builds a display-ready Certificate from raw params. The clock is
// passed in so the issue date and membership window are reproducible in tests.
func Assemble(p Params, now time.Time) Certificate {
	formatISO := func(s string) string {
		t, ok := ParseISODate(s)
		if !ok {
			return ""
		}
		return FormatDate(t)
	}

	days := 0
	if start, ok := ParseISODate(p.CampStart); ok {
		if end, ok := ParseISODate(p.CampEnd); ok {
			days = CampDays(start, end)
		}
	}

	memberStart, memberEnd := MembershipWindow(now)

	return Certificate{
		Type:                p.Type,
		MemberName:          p.MemberName,
		MemberAddress:       p.MemberAddress,
		CampStartDate:       formatISO(p.CampStart),
		CampEndDate:         formatISO(p.CampEnd),
		CampDays:            days,
		MembershipStartDate: FormatDate(memberStart),
		MembershipEndDate:   FormatDate(memberEnd),
		Payment:             p.Payment,
		PaymentDate:         formatISO(p.PaymentDate),
		Date:                FormatDate(now),
		Signature:           p.Signature,
	}
}
