package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
)

func TestTopGroup(t *testing.T) {
	g1 := models.Group{ID: oid(t, "000000000000000000000001"), Name: "Alpha"}
	g2 := models.Group{ID: oid(t, "000000000000000000000002"), Name: "Beta"}
	groups := []models.Group{g1, g2}

	donations := []models.Donation{
		{GroupRef: "Beta", Amount: 500, Status: "approved"},
		{GroupRef: "Alpha", Amount: 100, Status: "approved"},
	}
	totals := Aggregate(donations, groups, nil)

	top := TopGroup(totals, groups)
	if top == nil || top.Group.Name != "Beta" {
		t.Fatalf("TopGroup = %+v, want Beta", top)
	}
	if !top.Total.Equal(decimal.NewFromInt(500)) {
		t.Errorf("top total = %s, want 500", top.Total)
	}
}

func TestTopGroup_TieBreaksToSmallerID(t *testing.T) {
	g1 := models.Group{ID: oid(t, "000000000000000000000001"), Name: "Alpha"}
	g2 := models.Group{ID: oid(t, "000000000000000000000002"), Name: "Beta"}
	groups := []models.Group{g2, g1} // input order must not matter

	donations := []models.Donation{
		{GroupRef: "Alpha", Amount: 100, Status: "approved"},
		{GroupRef: "Beta", Amount: 100, Status: "approved"},
	}
	totals := Aggregate(donations, groups, nil)

	top := TopGroup(totals, groups)
	if top == nil || top.Group.ID != g1.ID {
		t.Fatalf("tie should go to the lexicographically smaller ID, got %+v", top)
	}
}

func TestTopGroup_NoGroups(t *testing.T) {
	if top := TopGroup(Totals{}, nil); top != nil {
		t.Errorf("expected nil, got %+v", top)
	}
}

func TestTopMember(t *testing.T) {
	m1 := models.Member{ID: oid(t, "0000000000000000000000a1"), UniqueID: "M-000001", Name: "Rahim"}
	m2 := models.Member{ID: oid(t, "0000000000000000000000a2"), UniqueID: "M-000002", Name: "Karim"}
	members := []models.Member{m1, m2}

	donations := []models.Donation{
		{MemberRef: "M-000001", Amount: 300, Status: "approved"},
		{MemberRef: "M-000002", Amount: 700, Status: "approved"},
		{MemberRef: "M-000002", Amount: 100, Status: "pending"},
	}
	totals := Aggregate(donations, nil, members)

	top := TopMember(totals, members)
	if top == nil || top.Key != "M-000002" {
		t.Fatalf("TopMember = %+v, want M-000002", top)
	}
	if top.Member == nil || top.Member.Name != "Karim" {
		t.Errorf("top member record not attached: %+v", top.Member)
	}
	if !top.Total.Equal(decimal.NewFromInt(700)) {
		t.Errorf("top total = %s, want 700", top.Total)
	}
}

func TestTopMember_NoDonations(t *testing.T) {
	m := models.Member{ID: oid(t, "0000000000000000000000a1"), UniqueID: "M-000001"}
	totals := Aggregate(nil, nil, []models.Member{m})
	if top := TopMember(totals, []models.Member{m}); top != nil {
		t.Errorf("expected nil with no member totals, got %+v", top)
	}
}

func TestTopContributors(t *testing.T) {
	members := []models.Member{
		{ID: oid(t, "0000000000000000000000a1"), UniqueID: "M-000001"},
		{ID: oid(t, "0000000000000000000000a2"), UniqueID: "M-000002"},
		{ID: oid(t, "0000000000000000000000a3"), UniqueID: "M-000003"},
	}
	donations := []models.Donation{
		{MemberRef: "M-000001", Amount: 100, Status: "approved"},
		{MemberRef: "M-000002", Amount: 300, Status: "approved"},
		{MemberRef: "M-000003", Amount: 200, Status: "approved"},
	}
	totals := Aggregate(donations, nil, members)

	got := TopContributors(totals, members, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Key != "M-000002" || got[1].Key != "M-000003" {
		t.Errorf("order = [%s %s], want [M-000002 M-000003]", got[0].Key, got[1].Key)
	}
}

func TestZeroDonationGroups(t *testing.T) {
	g1 := models.Group{ID: oid(t, "000000000000000000000001"), Name: "Alpha"}
	g2 := models.Group{ID: oid(t, "000000000000000000000002"), Name: "Beta"}
	g3 := models.Group{ID: oid(t, "000000000000000000000003"), Name: "Gamma"}
	groups := []models.Group{g1, g2, g3}

	donations := []models.Donation{
		{GroupRef: "Alpha", Amount: 100, Status: "approved"},
		{GroupRef: "Beta", Amount: 200, Status: "approved"},
		{GroupRef: "Gamma", Amount: 999, Status: "pending"}, // pending doesn't count
	}
	totals := Aggregate(donations, groups, nil)

	zero := ZeroDonationGroups(totals, groups)
	if len(zero) != 1 || zero[0].Name != "Gamma" {
		t.Errorf("ZeroDonationGroups = %+v, want [Gamma]", zero)
	}
}

func TestNonDonatingMembers(t *testing.T) {
	m1 := models.Member{ID: oid(t, "0000000000000000000000a1"), UniqueID: "M-000001"}
	m2 := models.Member{ID: oid(t, "0000000000000000000000a2"), UniqueID: "M-000002"}
	members := []models.Member{m1, m2}

	donations := []models.Donation{
		// An explicit zero donation still counts as donating.
		{MemberRef: "M-000001", Amount: 0, Status: "approved"},
	}
	totals := Aggregate(donations, nil, members)

	non := NonDonatingMembers(totals, members)
	if len(non) != 1 || non[0].UniqueID != "M-000002" {
		t.Errorf("NonDonatingMembers = %+v, want [M-000002]", non)
	}
}

func TestParticipationRate(t *testing.T) {
	m1 := models.Member{ID: oid(t, "0000000000000000000000a1"), UniqueID: "M-000001"}
	m2 := models.Member{ID: oid(t, "0000000000000000000000a2"), UniqueID: "M-000002"}

	donations := []models.Donation{
		{MemberRef: "M-000001", Amount: 10, Status: "approved"},
	}
	totals := Aggregate(donations, nil, []models.Member{m1, m2})

	if got := ParticipationRate(totals, []models.Member{m1, m2}); got != 0.5 {
		t.Errorf("rate = %v, want 0.5", got)
	}
}

func TestParticipationRate_NoMembers(t *testing.T) {
	totals := Aggregate(nil, nil, nil)
	if got := ParticipationRate(totals, nil); got != 0 {
		t.Errorf("rate with zero members = %v, want 0", got)
	}
}
