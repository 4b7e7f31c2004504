// internal/app/report/ranking.go
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
)

// GroupTotal pairs a group with its approved-donation sum.
type GroupTotal struct {
	Group models.Group
	Total decimal.Decimal
}

// MemberTotal pairs an aggregation key with its sum. Member is nil for
// keys that resolve to no known member (orphaned donation references).
type MemberTotal struct {
	Key    string
	Member *models.Member
	Total  decimal.Decimal
}

// Leaderboard bundles the derived views the dashboard and report pages
// share. All of it is a pure function of Totals plus the group/member
// snapshots; the raw donation list is never re-read.
type Leaderboard struct {
	TopGroup           *GroupTotal
	TopMember          *MemberTotal
	ZeroDonationGroups []models.Group
	NonDonatingMembers []models.Member
	ParticipationRate  float64
}

// BuildLeaderboard derives every leaderboard/cohort view at once.
func BuildLeaderboard(t Totals, groups []models.Group, members []models.Member) Leaderboard {
	return Leaderboard{
		TopGroup:           TopGroup(t, groups),
		TopMember:          TopMember(t, members),
		ZeroDonationGroups: ZeroDonationGroups(t, groups),
		NonDonatingMembers: NonDonatingMembers(t, members),
		ParticipationRate:  ParticipationRate(t, members),
	}
}

// TopGroup returns the group with the maximum total, or nil when there
// are no groups. Ties break to the lexicographically smaller group ID
// so the result is stable across runs.
func TopGroup(t Totals, groups []models.Group) *GroupTotal {
	if len(groups) == 0 {
		return nil
	}
	sorted := make([]models.Group, len(groups))
	copy(sorted, groups)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID.Hex() < sorted[j].ID.Hex()
	})

	var best *GroupTotal
	for _, g := range sorted {
		total := t.ByGroup[g.ID.Hex()]
		if best == nil || total.GreaterThan(best.Total) {
			best = &GroupTotal{Group: g, Total: total}
		}
	}
	return best
}

// TopMember returns the member key with the maximum total, or nil when
// no approved donation carries a member reference. Ties break to the
// lexicographically smaller key.
func TopMember(t Totals, members []models.Member) *MemberTotal {
	keys := make([]string, 0, len(t.ByMember))
	for k := range t.ByMember {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)

	byKey := membersByKey(members)
	var best *MemberTotal
	for _, k := range keys {
		total := t.ByMember[k]
		if best == nil || total.GreaterThan(best.Total) {
			best = &MemberTotal{Key: k, Member: byKey[k], Total: total}
		}
	}
	return best
}

// TopContributors returns up to n member totals ranked by amount
// descending, ties by key ascending.
func TopContributors(t Totals, members []models.Member, n int) []MemberTotal {
	byKey := membersByKey(members)
	out := make([]MemberTotal, 0, len(t.ByMember))
	for k, total := range t.ByMember {
		out = append(out, MemberTotal{Key: k, Member: byKey[k], Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Key < out[j].Key
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ZeroDonationGroups returns the groups whose total is absent or
// exactly zero, in input order.
func ZeroDonationGroups(t Totals, groups []models.Group) []models.Group {
	var out []models.Group
	for _, g := range groups {
		if t.ByGroup[g.ID.Hex()].IsZero() {
			out = append(out, g)
		}
	}
	return out
}

// NonDonatingMembers returns the members with no approved donation at
// all, in input order. A recorded ৳0 approved donation still counts as
// donating; absence is the test, not the amount.
func NonDonatingMembers(t Totals, members []models.Member) []models.Member {
	var out []models.Member
	for _, m := range members {
		if _, ok := t.ByMember[MemberKey(m)]; !ok {
			out = append(out, m)
		}
	}
	return out
}

// ParticipationRate is the share of members with at least one approved
// donation. The denominator is floored at 1, so zero members yields 0
// rather than a division by zero.
func ParticipationRate(t Totals, members []models.Member) float64 {
	donated := 0
	for _, m := range members {
		if _, ok := t.ByMember[MemberKey(m)]; ok {
			donated++
		}
	}
	denom := len(members)
	if denom < 1 {
		denom = 1
	}
	return float64(donated) / float64(denom)
}

func membersByKey(members []models.Member) map[string]*models.Member {
	byKey := make(map[string]*models.Member, len(members))
	for i := range members {
		byKey[MemberKey(members[i])] = &members[i]
	}
	return byKey
}
