package search

import (
	"sort"
	"strings"

	"github.com/noovas/games-catalog-api/internal/services/catalog"
)

// epochDate is what an unknown release date sorts as, so undated games always
// count as oldest.
const epochDate = "1970-01-01"

// Result is the cached artifact of one search: a single page of game IDs in
// final order plus pagination metadata for the full match count.
type Result struct {
	GameIDs    []int `json:"ids"`
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// clone returns a copy so cached results are never shared by reference
func (r Result) clone() Result {
	out := r
	out.GameIDs = append([]int(nil), r.GameIDs...)
	return out
}

// Execute applies the criteria the catalog gateway cannot: the strict
// name-contains text rule, the requested ordering and the page slice.
// Candidates arrive in gateway order; SortRelevance preserves it untouched
// because relevance ordering is owned by the gateway.
func Execute(c Criteria, candidates []int, refs map[int]catalog.GameRef) Result {
	matched := filterByName(c.Query, candidates, refs)
	sortGames(c.Sort, matched, refs)
	return paginate(c, matched)
}

// filterByName keeps only candidates whose display name contains the query,
// case-insensitively. Candidates without a catalog projection are dropped.
func filterByName(query string, candidates []int, refs map[int]catalog.GameRef) []int {
	needle := strings.ToLower(strings.TrimSpace(query))
	matched := make([]int, 0, len(candidates))
	for _, id := range candidates {
		ref, ok := refs[id]
		if !ok {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(ref.DisplayName), needle) {
			continue
		}
		matched = append(matched, id)
	}
	return matched
}

// sortGames orders ids in place. Ties always break by ID ascending so the
// ordering is deterministic.
func sortGames(by Sort, ids []int, refs map[int]catalog.GameRef) {
	switch by {
	case SortRelevance:
		// Gateway order is the relevance order; nothing to do.
	case SortNameAsc, SortNameDesc:
		desc := by == SortNameDesc
		sort.SliceStable(ids, func(i, j int) bool {
			a := strings.ToLower(refs[ids[i]].DisplayName)
			b := strings.ToLower(refs[ids[j]].DisplayName)
			if a == b {
				return ids[i] < ids[j]
			}
			if desc {
				return a > b
			}
			return a < b
		})
	case SortDateAsc, SortDateDesc:
		desc := by == SortDateDesc
		sort.SliceStable(ids, func(i, j int) bool {
			a := releaseDateOf(refs[ids[i]])
			b := releaseDateOf(refs[ids[j]])
			if a == b {
				return ids[i] < ids[j]
			}
			if desc {
				return a > b
			}
			return a < b
		})
	}
}

func releaseDateOf(ref catalog.GameRef) string {
	if ref.ReleaseDate == "" {
		return epochDate
	}
	return ref.ReleaseDate
}

// paginate slices out the requested page. A page beyond the last one yields
// an empty slice while total and total_pages still reflect the full count.
func paginate(c Criteria, matched []int) Result {
	total := len(matched)
	totalPages := (total + c.PerPage - 1) / c.PerPage

	offset := (c.Page - 1) * c.PerPage
	end := offset + c.PerPage
	var page []int
	if offset < total {
		if end > total {
			end = total
		}
		page = append([]int(nil), matched[offset:end]...)
	} else {
		page = []int{}
	}

	return Result{
		GameIDs:    page,
		Total:      total,
		Page:       c.Page,
		PerPage:    c.PerPage,
		TotalPages: totalPages,
		HasMore:    c.Page*c.PerPage < total,
	}
}
