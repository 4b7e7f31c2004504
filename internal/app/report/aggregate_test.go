package report

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
)

func TestAggregate_StatusFilter(t *testing.T) {
	g := models.Group{ID: oid(t, "000000000000000000000001"), Name: "Alpha"}
	donations := []models.Donation{
		{GroupRef: g.ID.Hex(), Amount: 100, Status: "pending"},
		{GroupRef: g.ID.Hex(), Amount: 200, Status: "approved"},
		{GroupRef: g.ID.Hex(), Amount: 50, Status: "APPROVED"},  // case-insensitive
		{GroupRef: g.ID.Hex(), Amount: 25, Status: " Approved "}, // whitespace-tolerant
		{GroupRef: g.ID.Hex(), Amount: 999, Status: "rejected"},
	}

	totals := Aggregate(donations, []models.Group{g}, nil)
	if got := totals.ByGroup[g.ID.Hex()]; !got.Equal(decimal.NewFromInt(275)) {
		t.Errorf("group total = %s, want 275", got)
	}
	if totals.ApprovedCount != 3 {
		t.Errorf("approved count = %d, want 3", totals.ApprovedCount)
	}
}

func TestAggregate_GroupDualMatching(t *testing.T) {
	g := models.Group{ID: oid(t, "000000000000000000000001"), Name: "Alpha"}
	donations := []models.Donation{
		{GroupRef: g.ID.Hex(), Amount: 100, Status: "approved"},
		{GroupRef: "Alpha", Amount: 200, Status: "approved"},
		{GroupRef: "ALPHA ", Amount: 300, Status: "approved"},
	}

	totals := Aggregate(donations, []models.Group{g}, nil)
	if got := totals.ByGroup[g.ID.Hex()]; !got.Equal(decimal.NewFromInt(600)) {
		t.Errorf("group total = %s, want 600 (id + name + folded name)", got)
	}
	if !totals.Unassigned.IsZero() {
		t.Errorf("unassigned = %s, want 0", totals.Unassigned)
	}
}

func TestAggregate_UnknownGroupGoesToUnassigned(t *testing.T) {
	g := models.Group{ID: oid(t, "000000000000000000000001"), Name: "Alpha"}
	donations := []models.Donation{
		{GroupRef: "NoSuchGroup", Amount: 40, Status: "approved"},
	}

	totals := Aggregate(donations, []models.Group{g}, nil)
	if !totals.ByGroup[g.ID.Hex()].IsZero() {
		t.Error("known group should not receive an unrelated donation")
	}
	if !totals.Unassigned.Equal(decimal.NewFromInt(40)) {
		t.Errorf("unassigned = %s, want 40", totals.Unassigned)
	}
}

func TestAggregate_GrouplessDonationCountsInGrandTotal(t *testing.T) {
	g := models.Group{ID: oid(t, "000000000000000000000001"), Name: "Alpha"}
	donations := []models.Donation{
		{GroupRef: "Alpha", Amount: 100, Status: "approved"},
		{Amount: 50, Status: "approved"}, // no group reference at all
	}

	totals := Aggregate(donations, []models.Group{g}, nil)
	if !totals.Unassigned.Equal(decimal.NewFromInt(50)) {
		t.Errorf("unassigned = %s, want 50", totals.Unassigned)
	}
	if got := totals.GrandTotal(); !got.Equal(decimal.NewFromInt(150)) {
		t.Errorf("GrandTotal = %s, want 150 (groupless approved donation dropped)", got)
	}
}

func TestAggregate_ZeroInitializesEveryGroup(t *testing.T) {
	g1 := models.Group{ID: oid(t, "000000000000000000000001"), Name: "Alpha"}
	g2 := models.Group{ID: oid(t, "000000000000000000000002"), Name: "Beta"}

	totals := Aggregate(nil, []models.Group{g1, g2}, nil)
	for _, g := range []models.Group{g1, g2} {
		if got, ok := totals.ByGroup[g.ID.Hex()]; !ok || !got.IsZero() {
			t.Errorf("group %s: total = %v (present=%v), want explicit zero", g.Name, got, ok)
		}
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want int64
	}{
		{"int", 7, 7},
		{"int64", int64(42), 42},
		{"int32", int32(9), 9},
		{"float64", float64(500), 500},
		{"numeric string", "250", 250},
		{"padded string", " 250 ", 250},
		{"junk string", "abc", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceAmount(tt.raw)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("CoerceAmount(%v) = %s, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAggregate_NonNumericAmountContributesZero(t *testing.T) {
	g := models.Group{ID: oid(t, "000000000000000000000001"), Name: "Alpha"}
	donations := []models.Donation{
		{GroupRef: "Alpha", Amount: "abc", Status: "approved"},
		{GroupRef: "Alpha", Amount: nil, Status: "approved"},
		{GroupRef: "Alpha", Amount: 10, Status: "approved"},
	}

	totals := Aggregate(donations, []models.Group{g}, nil)
	if got := totals.ByGroup[g.ID.Hex()]; !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("group total = %s, want 10", got)
	}
	// The junk rows still count as approved donations.
	if totals.ApprovedCount != 3 {
		t.Errorf("approved count = %d, want 3", totals.ApprovedCount)
	}
}

func TestAggregate_MonthAndYearTotals(t *testing.T) {
	date := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	donations := []models.Donation{
		{Amount: 100, Status: "approved", Month: "August 2025", Date: &date},
		{Amount: 50, Status: "approved", Month: "august 2025", CreatedAt: created}, // label folds to the same period
		{Amount: 30, Status: "approved", Month: "Nonsense"}, // unparseable label kept raw, no year
	}

	totals := Aggregate(donations, nil, nil)
	if got := totals.ByMonth["August 2025"]; !got.Equal(decimal.NewFromInt(150)) {
		t.Errorf(`ByMonth["August 2025"] = %s, want 150`, got)
	}
	if got := totals.ByMonth["Nonsense"]; !got.Equal(decimal.NewFromInt(30)) {
		t.Errorf(`ByMonth["Nonsense"] = %s, want 30`, got)
	}
	if got := totals.ByYear[2025]; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("ByYear[2025] = %s, want 100 (structured date preferred)", got)
	}
	if got := totals.ByYear[2024]; !got.Equal(decimal.NewFromInt(50)) {
		t.Errorf("ByYear[2024] = %s, want 50 (created_at fallback)", got)
	}
	if _, ok := totals.ByYear[0]; ok {
		t.Error("undated donation must not create a year bucket")
	}
}

func TestAggregate_OrderIndependentAndIdempotent(t *testing.T) {
	g1 := models.Group{ID: oid(t, "000000000000000000000001"), Name: "Alpha"}
	g2 := models.Group{ID: oid(t, "000000000000000000000002"), Name: "Beta"}
	m1 := models.Member{ID: oid(t, "0000000000000000000000a1"), UniqueID: "M-000001"}
	m2 := models.Member{ID: oid(t, "0000000000000000000000a2"), UniqueID: "M-000002"}
	groups := []models.Group{g1, g2}
	members := []models.Member{m1, m2}

	date := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	donations := []models.Donation{
		{MemberRef: "M-000001", GroupRef: "Alpha", Amount: 300, Status: "approved", Month: "January 2025", Date: &date},
		{MemberRef: "M-000002", GroupRef: g2.ID.Hex(), Amount: 150, Status: "approved", Month: "February 2025", Date: &date},
		{MemberRef: "M-000001", GroupRef: "Alpha", Amount: 25, Status: "pending", Month: "January 2025"},
		{MemberRef: "M-000002", GroupRef: "Beta", Amount: "75", Status: "Approved", Month: "January 2025", Date: &date},
	}

	base := Aggregate(donations, groups, members)
	again := Aggregate(donations, groups, members)
	if !reflect.DeepEqual(base, again) {
		t.Error("repeated aggregation over the same input must be identical")
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.Donation, len(donations))
		copy(shuffled, donations)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := Aggregate(shuffled, groups, members)
		if !reflect.DeepEqual(base, got) {
			t.Fatalf("shuffle %d changed totals: %#v vs %#v", i, got, base)
		}
	}
}

func TestAggregate_MemberRefVariants(t *testing.T) {
	m := models.Member{ID: oid(t, "0000000000000000000000a1"), UniqueID: "M-000001", DisplayID: "G1-000001"}
	donations := []models.Donation{
		{MemberRef: "M-000001", Amount: 10, Status: "approved"},
		{MemberRef: "G1-000001", Amount: 20, Status: "approved"},          // display ID in the member slot
		{MemberDisplayRef: "G1-000001", Amount: 30, Status: "approved"},   // display slot only
		{MemberRef: m.ID.Hex(), Amount: 40, Status: "approved"},           // raw document ID
	}

	totals := Aggregate(donations, nil, []models.Member{m})
	if got := totals.ByMember["M-000001"]; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("member total = %s, want 100 across all reference variants", got)
	}
	if totals.DonorCount != 1 {
		t.Errorf("donor count = %d, want 1", totals.DonorCount)
	}
}
