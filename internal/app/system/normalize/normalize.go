// Package normalize provides small input-normalization helpers used at
// the API boundary, so stores and the report core only ever see
// trimmed, canonically-cased values.
package normalize

import "strings"

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a raw query/form parameter, preserving case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Status lowercases and trims a donation status ("Pending " -> "pending").
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// PaymentStatus canonicalizes a registration payment status to its
// stored title-cased form. Unknown values pass through trimmed so the
// caller can reject them.
func PaymentStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paid":
		return "Paid"
	case "pending":
		return "Pending"
	case "waived":
		return "Waived"
	default:
		return strings.TrimSpace(s)
	}
}

// MonthLabel collapses interior whitespace in a "<MonthName> <Year>"
// label ("August  2025" -> "August 2025"). Parsing and validation
// happen in the report package; this only tidies the stored form.
func MonthLabel(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
