// internal/app/report/periods.go
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
)

// Period is one reporting month. It is the internal key for all period
// math; the "<MonthName> <Year>" string exists only at the boundary
// (labels on the wire, month fields on donations).
type Period struct {
	Year  int
	Month time.Month
}

// Label renders the boundary form, e.g. "August 2025".
func (p Period) Label() string {
	if p.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
}

// IsZero reports whether p is the malformed-label fallback value.
func (p Period) IsZero() bool { return p.Year == 0 }

// Before orders periods chronologically. Zero periods sort first
// (epoch), keeping malformed data at the old end instead of failing.
func (p Period) Before(q Period) bool {
	if p.Year != q.Year {
		return p.Year < q.Year
	}
	return p.Month < q.Month
}

// monthsByName is the fixed English lookup used for label parsing.
var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// MonthByName resolves an English month name, case-insensitively.
func MonthByName(name string) (time.Month, bool) {
	m, ok := monthsByName[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// ParsePeriodLabel splits a "<MonthName> <Year>" label on its single
// space. Malformed labels (missing space, unknown month, junk year)
// return a zero Period and false; callers treat such labels as
// epoch-dated.
func ParsePeriodLabel(label string) (Period, bool) {
	parts := strings.Fields(strings.TrimSpace(label))
	if len(parts) != 2 {
		return Period{}, false
	}
	month, ok := MonthByName(parts[0])
	if !ok {
		return Period{}, false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year <= 0 {
		return Period{}, false
	}
	return Period{Year: year, Month: month}, true
}

// GeneratePeriods walks from the fixed program start month through the
// current calendar month inclusive and returns the sequence newest
// first. A start after the current month yields an empty sequence.
func GeneratePeriods(startYear int, startMonth time.Month, now time.Time) []Period {
	start := Period{Year: startYear, Month: startMonth}
	end := Period{Year: now.Year(), Month: now.Month()}
	if end.Before(start) {
		return nil
	}

	var out []Period
	for p := start; !end.Before(p); p = p.next() {
		out = append(out, p)
	}
	// Newest first for display.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (p Period) next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// PeriodRow is one row of the gap-filled trend series. A virtual row
// is a synthesized zero placeholder for a period with no recorded
// donation, which is distinct from a real donation explicitly
// recorded with a zero amount.
type PeriodRow struct {
	Period     string          `json:"period"`
	Amount     decimal.Decimal `json:"amount"`
	IsVirtual  bool            `json:"is_virtual"`
	DonationID string          `json:"donation_id,omitempty"`
}

// MergeDonations merges approved donations into the canonical period
// sequence: one row per matching donation for periods that have any,
// a single virtual zero row for periods that don't. Input order of the
// donations within one period is preserved.
func MergeDonations(periods []Period, donations []models.Donation) []PeriodRow {
	byLabel := make(map[string][]models.Donation)
	for _, d := range donations {
		if !IsApproved(d.Status) {
			continue
		}
		if label := monthKey(d.Month); label != "" {
			byLabel[label] = append(byLabel[label], d)
		}
	}

	rows := make([]PeriodRow, 0, len(periods))
	for _, p := range periods {
		label := p.Label()
		actual, ok := byLabel[label]
		if !ok {
			rows = append(rows, PeriodRow{Period: label, Amount: decimal.Zero, IsVirtual: true})
			continue
		}
		for _, d := range actual {
			rows = append(rows, PeriodRow{
				Period:     label,
				Amount:     CoerceAmount(d.Amount),
				DonationID: d.ID.Hex(),
			})
		}
	}
	return rows
}

// AvailableMonths returns the period labels that carry at least one
// actual approved donation, newest first. This feeds filter dropdowns;
// the full merged series feeds the trend table.
func AvailableMonths(periods []Period, t Totals) []string {
	var out []string
	for _, p := range periods {
		if _, ok := t.ByMonth[p.Label()]; ok {
			out = append(out, p.Label())
		}
	}
	return out
}
