// internal/app/report/resolver.go

// Package report computes donation roll-ups: per-group, per-member,
// per-month, and per-year totals, leaderboards and warning cohorts, and
// gap-filled period series. It is pure: it takes in-memory snapshots
// of the donations, members, and groups collections and never touches
// storage, so concurrent report requests can run it over independent
// snapshots without coordination.
//
// The package is deliberately tolerant: manually entered data carries
// inconsistent foreign keys (a group reference may be an ID or a
// literal name) and junk numeric fields. Nothing here returns an
// error; bad records degrade to zero, empty, or excluded.
package report

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
)

// fold normalizes a reference for comparison: surrounding whitespace
// stripped, then case/diacritic folded. The dual-match rule is defined
// over this form ("ALPHA " matches a group named "Alpha").
func fold(s string) string {
	return text.Fold(strings.TrimSpace(s))
}

// Resolver canonicalizes the ambiguous references carried on donation
// and member records. It is built once per report computation from the
// group and member snapshots, collapsing the ID-or-name matching rule
// into a single lookup so downstream code compares plain IDs.
type Resolver struct {
	groupByRef  map[string]string // folded hex id / folded name -> hex id
	memberByRef map[string]string // folded unique/display/hex id -> canonical key
}

// NewResolver indexes groups by hex ID and folded name, and members by
// every identifier variant a donation may have been recorded under.
//
// A member's canonical key is their unique ID; members missing one
// (legacy rows) fall back to their document hex ID.
func NewResolver(groups []models.Group, members []models.Member) *Resolver {
	r := &Resolver{
		groupByRef:  make(map[string]string, len(groups)*2),
		memberByRef: make(map[string]string, len(members)*3),
	}
	for _, g := range groups {
		id := g.ID.Hex()
		r.groupByRef[fold(id)] = id
		if name := fold(g.Name); name != "" {
			r.groupByRef[name] = id
		}
	}
	for _, m := range members {
		key := MemberKey(m)
		for _, ref := range memberRefs(m) {
			r.memberByRef[fold(ref)] = key
		}
	}
	return r
}

// GroupID resolves a raw group reference (hex ID or literal name,
// any case, surrounding whitespace tolerated) to a canonical group ID.
// An unresolvable reference is not an error; the caller decides what
// bucket the record lands in.
func (r *Resolver) GroupID(ref string) (string, bool) {
	folded := fold(ref)
	if folded == "" {
		return "", false
	}
	id, ok := r.groupByRef[folded]
	return id, ok
}

// MemberLookup resolves a raw member reference (unique ID, display ID,
// or document hex ID) to the member's canonical key.
func (r *Resolver) MemberLookup(ref string) (string, bool) {
	folded := fold(ref)
	if folded == "" {
		return "", false
	}
	key, ok := r.memberByRef[folded]
	return key, ok
}

// MemberKey returns the canonical aggregation key for a member.
func MemberKey(m models.Member) string {
	if m.UniqueID != "" {
		return m.UniqueID
	}
	return m.ID.Hex()
}

// memberRefs lists every identifier a donation may carry for m.
func memberRefs(m models.Member) []string {
	refs := make([]string, 0, 3)
	if m.UniqueID != "" {
		refs = append(refs, m.UniqueID)
	}
	if m.DisplayID != "" {
		refs = append(refs, m.DisplayID)
	}
	if !m.ID.IsZero() {
		refs = append(refs, m.ID.Hex())
	}
	return refs
}

// MatchSet is the result of a free-text member search: the matched
// members plus every identifier variant they may appear under in the
// donations collection. The variants are used as OR-terms against both
// member_id and member_display_id, because a donation may have been
// recorded under any one of them.
type MatchSet struct {
	Members []models.Member
	Refs    []string
}

// Empty reports whether the query matched no members. This is a valid
// "no data" outcome, not an error.
func (s MatchSet) Empty() bool { return len(s.Members) == 0 }

// MatchMembers matches a free-text query against each member's unique
// ID, display ID, and document hex ID. A match is either exact (folded
// equality) or a suffix match on the trailing digit run: "123" matches
// "G3-123" but not "G3-1234".
func MatchMembers(query string, members []models.Member) MatchSet {
	var out MatchSet
	q := fold(query)
	if q == "" {
		return out
	}
	for _, m := range members {
		if memberMatches(q, m) {
			out.Members = append(out.Members, m)
			out.Refs = append(out.Refs, memberRefs(m)...)
		}
	}
	return out
}

// MatchMembersByName matches a free-text query against member names
// under folded equality. Callers that accept human queries (the lookup
// bot) use it as a fallback when no identifier matches; identifier
// matching stays primary because names are not unique.
func MatchMembersByName(query string, members []models.Member) MatchSet {
	var out MatchSet
	q := fold(query)
	if q == "" {
		return out
	}
	for _, m := range members {
		if fold(m.Name) == q {
			out.Members = append(out.Members, m)
			out.Refs = append(out.Refs, memberRefs(m)...)
		}
	}
	return out
}

func memberMatches(q string, m models.Member) bool {
	for _, ref := range memberRefs(m) {
		folded := fold(ref)
		if folded == q || strings.HasSuffix(folded, "-"+q) {
			return true
		}
	}
	return false
}
