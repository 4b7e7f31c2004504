package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
)

// TestFullReportScenario runs the whole pipeline over a small realistic
// snapshot: two groups, three members, a mixed bag of approved and
// pending donations.
func TestFullReportScenario(t *testing.T) {
	gA := models.Group{ID: oid(t, "000000000000000000000001"), Name: "Group A"}
	gB := models.Group{ID: oid(t, "000000000000000000000002"), Name: "Group B"}
	groups := []models.Group{gA, gB}

	m1 := models.Member{ID: oid(t, "0000000000000000000000a1"), UniqueID: "M-000001", Name: "Rahim", GroupRef: "Group A"}
	m2 := models.Member{ID: oid(t, "0000000000000000000000a2"), UniqueID: "M-000002", Name: "Karim", GroupRef: gA.ID.Hex()}
	m3 := models.Member{ID: oid(t, "0000000000000000000000a3"), UniqueID: "M-000003", Name: "Salma", GroupRef: "Group B"}
	members := []models.Member{m1, m2, m3}

	donations := []models.Donation{
		{MemberRef: "M-000001", GroupRef: "Group A", Amount: 300, Status: "approved", Month: "January 2025"},
		{MemberRef: "M-000002", GroupRef: "Group A", Amount: 200, Status: "pending", Month: "January 2025"},
		{MemberRef: "M-000003", GroupRef: gB.ID.Hex(), Amount: 0, Status: "approved", Month: "January 2025"},
	}

	totals := Aggregate(donations, groups, members)

	if got := totals.ByGroup[gA.ID.Hex()]; !got.Equal(decimal.NewFromInt(300)) {
		t.Errorf("group A total = %s, want 300", got)
	}
	if got := totals.ByGroup[gB.ID.Hex()]; !got.IsZero() {
		t.Errorf("group B total = %s, want 0", got)
	}

	board := BuildLeaderboard(totals, groups, members)

	if board.TopMember == nil || board.TopMember.Key != "M-000001" {
		t.Errorf("top member = %+v, want M-000001", board.TopMember)
	}
	if board.TopMember != nil && !board.TopMember.Total.Equal(decimal.NewFromInt(300)) {
		t.Errorf("top member total = %s, want 300", board.TopMember.Total)
	}
	if len(board.ZeroDonationGroups) != 1 || board.ZeroDonationGroups[0].ID != gB.ID {
		t.Errorf("zero-donation groups = %+v, want [Group B]", board.ZeroDonationGroups)
	}
	// m2's only donation is pending, so m2 is non-donating; m3's
	// explicit zero donation counts as donating.
	if len(board.NonDonatingMembers) != 1 || board.NonDonatingMembers[0].UniqueID != "M-000002" {
		t.Errorf("non-donating = %+v, want [M-000002]", board.NonDonatingMembers)
	}
	if want := 2.0 / 3.0; board.ParticipationRate != want {
		t.Errorf("participation = %v, want %v", board.ParticipationRate, want)
	}
}
