// internal/app/report/aggregate.go
package report

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
)

// Totals holds the flat sums produced by one pass over the donation
// snapshot. Only approved donations contribute. Every known group ID
// appears in ByGroup even when its total is zero, so zero-donation
// groups can be extracted without re-touching the donation list.
type Totals struct {
	ByGroup  map[string]decimal.Decimal // canonical group ID -> sum
	ByMember map[string]decimal.Decimal // canonical member key -> sum
	ByMonth  map[string]decimal.Decimal // normalized "<MonthName> <Year>" -> sum
	ByYear   map[int]decimal.Decimal    // calendar year -> sum

	// Unassigned accumulates approved amounts with no group reference
	// or one that resolves to no known group, so money is never
	// silently dropped.
	Unassigned decimal.Decimal

	// ApprovedCount is the number of donations that passed the status
	// filter; DonorCount the number of distinct member keys among them.
	ApprovedCount int
	DonorCount    int
}

// GrandTotal is the sum of all approved donations.
func (t Totals) GrandTotal() decimal.Decimal {
	sum := t.Unassigned
	for _, v := range t.ByGroup {
		sum = sum.Add(v)
	}
	return sum
}

// IsApproved reports whether a raw status field marks a donation as
// approved. The comparison is case-insensitive and whitespace-tolerant.
func IsApproved(status string) bool {
	return fold(status) == models.DonationApproved
}

// CoerceAmount converts a raw amount field to a decimal. Manually
// entered and imported data stores amounts as floats, ints, strings,
// or not at all; anything unusable becomes zero rather than failing
// the report.
func CoerceAmount(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		return parseDecimal(string(v))
	case string:
		return parseDecimal(v)
	case primitive.Decimal128:
		return parseDecimal(v.String())
	default:
		return decimal.Zero
	}
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Aggregate computes Totals from a full (unfiltered) donation snapshot.
// Filtering to approved status happens here, not in the caller.
//
// Totals are order-independent plain sums: shuffling the input produces
// identical output, and the function has no side effects, so repeated
// or concurrent invocations over the same snapshot agree.
func Aggregate(donations []models.Donation, groups []models.Group, members []models.Member) Totals {
	res := NewResolver(groups, members)

	t := Totals{
		ByGroup:  make(map[string]decimal.Decimal, len(groups)),
		ByMember: make(map[string]decimal.Decimal),
		ByMonth:  make(map[string]decimal.Decimal),
		ByYear:   make(map[int]decimal.Decimal),
	}
	for _, g := range groups {
		t.ByGroup[g.ID.Hex()] = decimal.Zero
	}

	for _, d := range donations {
		if !IsApproved(d.Status) {
			continue
		}
		t.ApprovedCount++
		amt := CoerceAmount(d.Amount)

		if id, ok := res.GroupID(strings.TrimSpace(d.GroupRef)); ok {
			t.ByGroup[id] = t.ByGroup[id].Add(amt)
		} else {
			// Groupless and unresolvable references both land here so
			// the grand total still covers every approved donation.
			t.Unassigned = t.Unassigned.Add(amt)
		}

		if key := donationMemberKey(res, d); key != "" {
			t.ByMember[key] = t.ByMember[key].Add(amt)
		}

		if label := monthKey(d.Month); label != "" {
			t.ByMonth[label] = t.ByMonth[label].Add(amt)
		}

		if year, ok := donationYear(d); ok {
			t.ByYear[year] = t.ByYear[year].Add(amt)
		}
	}

	t.DonorCount = len(t.ByMember)
	return t
}

// donationMemberKey resolves the donation's member reference, trying
// member_id then member_display_id. An unresolvable non-empty
// reference keys by its folded raw form so the amount stays visible in
// member totals instead of vanishing.
func donationMemberKey(res *Resolver, d models.Donation) string {
	for _, ref := range []string{d.MemberRef, d.MemberDisplayRef} {
		if strings.TrimSpace(ref) == "" {
			continue
		}
		if key, ok := res.MemberLookup(ref); ok {
			return key
		}
		return fold(ref)
	}
	return ""
}

// monthKey normalizes a raw month label to the canonical period label.
// Labels that don't parse are kept as trimmed raw strings; they still
// total correctly, they just won't join the generated period timeline.
func monthKey(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if p, ok := ParsePeriodLabel(raw); ok {
		return p.Label()
	}
	return raw
}

// donationYear derives a calendar year, preferring the structured date
// and falling back to created_at. Undated donations are skipped for
// year totals only.
func donationYear(d models.Donation) (int, bool) {
	if d.Date != nil && !d.Date.IsZero() {
		return d.Date.Year(), true
	}
	if !d.CreatedAt.IsZero() {
		return d.CreatedAt.Year(), true
	}
	return 0, false
}
