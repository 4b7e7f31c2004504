package telegram

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/report"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
)

func TestBengaliDigits(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"500", "৫০০"},
		{"0123456789", "০১২৩৪৫৬৭৮৯"},
		{"M-000123", "M-০০০১২৩"},
		{"no digits", "no digits"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := BengaliDigits(tt.in); got != tt.want {
			t.Errorf("BengaliDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(decimal.NewFromInt(500)); got != "৳৫০০" {
		t.Errorf("FormatAmount(500) = %q, want ৳৫০০", got)
	}
	if got := FormatAmount(decimal.Zero); got != "৳০" {
		t.Errorf("FormatAmount(0) = %q, want ৳০", got)
	}
}

func TestFormatSummary_NotFound(t *testing.T) {
	got := FormatSummary(report.MatchSet{}, nil)
	if got != notFoundMessage {
		t.Errorf("empty match = %q, want the not-found message", got)
	}
}

func TestFormatSummary_ApprovedOnlyWithTotal(t *testing.T) {
	match := report.MatchSet{
		Members: []models.Member{
			{Name: "Rahim", UniqueID: "M-000123", DisplayID: "G1-000123"},
		},
		Refs: []string{"m-000123", "g1-000123"},
	}
	donations := []models.Donation{
		{MemberRef: "M-000123", Amount: int64(500), Month: "August 2025", Status: models.DonationApproved},
		{MemberRef: "M-000123", Amount: int64(999), Month: "September 2025", Status: models.DonationPending},
		{MemberRef: "M-000123", Amount: "250", Month: "October 2025", Status: "APPROVED"},
	}

	got := FormatSummary(match, donations)

	if !strings.Contains(got, "Rahim (G1-000123)") {
		t.Errorf("summary missing member line: %q", got)
	}
	if !strings.Contains(got, "August 2025") || !strings.Contains(got, "৳৫০০") {
		t.Errorf("summary missing approved donation: %q", got)
	}
	if strings.Contains(got, "September 2025") || strings.Contains(got, "৳৯৯৯") {
		t.Errorf("summary leaked a pending donation: %q", got)
	}
	if !strings.Contains(got, "মোট: ৳৭৫০") {
		t.Errorf("summary total wrong: %q", got)
	}
}

func TestFormatSummary_NoApprovedDonations(t *testing.T) {
	match := report.MatchSet{
		Members: []models.Member{{Name: "Karim", DisplayID: "G1-000001"}},
		Refs:    []string{"g1-000001"},
	}

	got := FormatSummary(match, nil)

	if !strings.Contains(got, "মোট: ৳০") {
		t.Errorf("summary total = %q, want ৳০", got)
	}
	if !strings.Contains(got, "এখনও কোনো অনুমোদিত অনুদান নেই") {
		t.Errorf("summary missing empty-history line: %q", got)
	}
}
