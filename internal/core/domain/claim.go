package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Period is one cadence-aligned payment window. Seq is the calendar month
// (1-12) for monthly cadence and the ISO week number (1-53) for weekly; Year
// is the ISO year for weekly periods so year-boundary weeks sort correctly.
type Period struct {
	Year int `json:"year"`
	Seq  int `json:"seq"`
}

var weeklyPeriodRe = regexp.MustCompile(`^(\d{4})-W(\d{1,2})$`)
var monthlyPeriodRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)

// String renders "2025-03" for monthly periods and "2025-W14" for weekly.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Seq)
}

// WeeklyString renders the ISO-week form used in claim tokens for weekly entries.
func (p Period) WeeklyString() string {
	return fmt.Sprintf("%04d-W%02d", p.Year, p.Seq)
}

// Format renders the period in the cadence's canonical string form.
func (p Period) Format(cadence Cadence) string {
	if cadence == CadenceWeekly {
		return p.WeeklyString()
	}
	return p.String()
}

// ParsePeriod parses either period string form. The "W" marker distinguishes
// weekly from monthly, so no cadence argument is needed.
func ParsePeriod(s string) (Period, Cadence, error) {
	if m := weeklyPeriodRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		week, _ := strconv.Atoi(m[2])
		if week < 1 || week > 53 {
			return Period{}, "", fmt.Errorf("invalid week %d in period %q", week, s)
		}
		return Period{Year: year, Seq: week}, CadenceWeekly, nil
	}
	if m := monthlyPeriodRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return Period{}, "", fmt.Errorf("invalid month %d in period %q", month, s)
		}
		return Period{Year: year, Seq: month}, CadenceMonthly, nil
	}
	return Period{}, "", fmt.Errorf("malformed period %q", s)
}

// Before orders two periods of the same cadence.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Seq < other.Seq
}

// PeriodOf returns the period containing t for the given cadence.
func PeriodOf(cadence Cadence, t time.Time) Period {
	if cadence == CadenceWeekly {
		year, week := t.ISOWeek()
		return Period{Year: year, Seq: week}
	}
	return Period{Year: t.Year(), Seq: int(t.Month())}
}

// PeriodsBetween enumerates the periods from `from` through `to` inclusive,
// in chronological order. It returns nil when `to` precedes `from`.
func PeriodsBetween(cadence Cadence, from, to time.Time) []Period {
	if to.Before(from) {
		return nil
	}

	var periods []Period
	end := PeriodOf(cadence, to)
	if cadence == CadenceWeekly {
		// Step by whole weeks; ISO week numbers handle year boundaries.
		for t := from; ; t = t.AddDate(0, 0, 7) {
			p := PeriodOf(cadence, t)
			periods = append(periods, p)
			if p == end {
				break
			}
		}
		return periods
	}

	// Monthly: walk first-of-month anchors.
	for t := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC); ; t = t.AddDate(0, 1, 0) {
		p := PeriodOf(cadence, t)
		periods = append(periods, p)
		if p == end {
			break
		}
	}
	return periods
}

// PeriodClaim materializes "this entry's allotment for this period". A claim
// is created lazily on first eligibility check; Claimed transitions at most
// once and never reverts.
type PeriodClaim struct {
	ID             uuid.UUID  `json:"id"`
	PayrollEntryID uuid.UUID  `json:"payroll_entry_id"`
	Period         Period     `json:"period"`
	Claimed        bool       `json:"claimed"`
	ClaimedAt      *time.Time `json:"claimed_at,omitempty"`
	ClaimToken     string     `json:"claim_token,omitempty"`
}

// ClaimBinding is the (payroll, entry, period) triple a claim token encodes.
type ClaimBinding struct {
	PayrollID uuid.UUID
	EntryID   uuid.UUID
	Period    Period
	Cadence   Cadence
}
