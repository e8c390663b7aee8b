// Package match resolves free-text entity names from roster imports to
// canonical reference-table codes.
package match

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/minhvu/internhub/internal/pkg/logger"
	"github.com/minhvu/internhub/internal/pkg/vntext"
)

// Candidate is one reference entity eligible for name resolution.
type Candidate struct {
	Code string
	Name string
}

// Resolver maps a raw name to a canonical code. Resolution never fails hard:
// a miss means the name contributes no entity link, nothing more.
type Resolver interface {
	Resolve(raw string) (code string, ok bool)
}

// NameResolver resolves by diacritic-normalized, case-insensitive substring
// containment in either direction: "Cong ty ABC" matches candidate "ABC" and
// "TS. Tran B" matches candidate "Tran B". The first candidate in table order
// wins; ambiguous multi-candidate matches are logged, not silently dropped.
type NameResolver struct {
	role       string
	candidates []Candidate
	normalized []string
}

// NewNameResolver builds a resolver over the given candidates. role is a
// label used only for logging ("teacher", "company").
func NewNameResolver(role string, candidates []Candidate) *NameResolver {
	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		normalized[i] = vntext.Normalize(c.Name)
	}
	return &NameResolver{
		role:       role,
		candidates: candidates,
		normalized: normalized,
	}
}

// Resolve implements Resolver.
func (r *NameResolver) Resolve(raw string) (string, bool) {
	normRaw := vntext.Normalize(raw)
	if normRaw == "" {
		return "", false
	}

	var matched []int
	for i, normName := range r.normalized {
		if normName == "" {
			continue
		}
		if strings.Contains(normRaw, normName) || strings.Contains(normName, normRaw) {
			matched = append(matched, i)
		}
	}

	if len(matched) == 0 {
		logger.Debug().Str("role", r.role).Str("raw", raw).Msg("Name did not resolve to any candidate")
		return "", false
	}

	if len(matched) > 1 {
		r.logAmbiguity(raw, normRaw, matched)
	}

	return r.candidates[matched[0]].Code, true
}

// logAmbiguity reports a multi-candidate match, ordered by fuzzy rank so the
// log shows which candidates were closest to the raw input.
func (r *NameResolver) logAmbiguity(raw, normRaw string, matched []int) {
	names := make([]string, len(matched))
	for i, idx := range matched {
		names[i] = r.normalized[idx]
	}
	ranks := fuzzy.RankFindNormalizedFold(normRaw, names)
	sort.Sort(ranks)

	ordered := make([]string, 0, len(matched))
	for _, rank := range ranks {
		ordered = append(ordered, r.candidates[matched[rank.OriginalIndex]].Code)
	}
	// containment can match without a fuzzy rank; keep those at the end
	if len(ordered) < len(matched) {
		seen := make(map[string]bool, len(ordered))
		for _, code := range ordered {
			seen[code] = true
		}
		for _, idx := range matched {
			if code := r.candidates[idx].Code; !seen[code] {
				ordered = append(ordered, code)
			}
		}
	}

	logger.Warn().
		Str("role", r.role).
		Str("raw", raw).
		Strs("candidates", ordered).
		Str("chosen", r.candidates[matched[0]].Code).
		Msg("Ambiguous name match, first candidate in table order chosen")
}
