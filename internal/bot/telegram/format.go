// internal/bot/telegram/format.go
package telegram

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/report"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
)

// notFoundMessage is sent when a query matches no member.
const notFoundMessage = "দুঃখিত, এই আইডি বা নামে কোনো সদস্য খুঁজে পাওয়া যায়নি।"

var bengaliDigits = map[rune]rune{
	'0': '০', '1': '১', '2': '২', '3': '৩', '4': '৪',
	'5': '৫', '6': '৬', '7': '৭', '8': '৮', '9': '৯',
}

// BengaliDigits transliterates ASCII digits to Bengali numerals,
// leaving every other rune alone.
func BengaliDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if b, ok := bengaliDigits[r]; ok {
			return b
		}
		return r
	}, s)
}

// FormatAmount renders a donation amount as a taka string with
// Bengali numerals, e.g. "৳৫০০".
func FormatAmount(amount decimal.Decimal) string {
	return "৳" + BengaliDigits(amount.String())
}

// FormatSummary builds the reply for a member query: one line per
// matched member, one line per approved donation, and a grand total.
// Returns the not-found message when nothing matched.
func FormatSummary(match report.MatchSet, donations []models.Donation) string {
	if match.Empty() {
		return notFoundMessage
	}

	var b strings.Builder
	for _, m := range match.Members {
		fmt.Fprintf(&b, "👤 %s (%s)\n", m.Name, m.DisplayID)
	}

	total := decimal.Zero
	lines := 0
	for _, d := range donations {
		if !report.IsApproved(d.Status) {
			continue
		}
		amount := report.CoerceAmount(d.Amount)
		total = total.Add(amount)
		fmt.Fprintf(&b, "📅 %s: %s\n", d.Month, FormatAmount(amount))
		lines++
	}

	if lines == 0 {
		b.WriteString("এখনও কোনো অনুমোদিত অনুদান নেই।\n")
	}
	fmt.Fprintf(&b, "মোট: %s", FormatAmount(total))
	return b.String()
}
