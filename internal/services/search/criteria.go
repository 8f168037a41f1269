package search

import (
	"sort"
	"strconv"
	"strings"
)

// Pagination bounds. PerPage is always clamped into [MinPerPage, MaxPerPage].
const (
	MinPerPage     = 1
	MaxPerPage     = 50
	DefaultPerPage = 12
)

// Status filters games by release state
type Status int

const (
	StatusAny Status = iota
	StatusReleased
	StatusUpcoming
)

func (s Status) String() string {
	switch s {
	case StatusReleased:
		return "released"
	case StatusUpcoming:
		return "upcoming"
	default:
		return "any"
	}
}

// ParseStatus maps a raw status value to a Status, defaulting to StatusAny
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "released":
		return StatusReleased
	case "upcoming":
		return StatusUpcoming
	default:
		return StatusAny
	}
}

// QuickFilter is a named preset that overrides status and sort
type QuickFilter int

const (
	QuickNone QuickFilter = iota
	QuickFeatured
	QuickUpcoming
	QuickNew
)

func (q QuickFilter) String() string {
	switch q {
	case QuickFeatured:
		return "featured"
	case QuickUpcoming:
		return "upcoming"
	case QuickNew:
		return "new"
	default:
		return "none"
	}
}

// ParseQuickFilter maps a raw quick filter value, defaulting to QuickNone
func ParseQuickFilter(raw string) QuickFilter {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "featured":
		return QuickFeatured
	case "upcoming":
		return QuickUpcoming
	case "new":
		return QuickNew
	default:
		return QuickNone
	}
}

// Sort selects the result ordering
type Sort int

const (
	SortRelevance Sort = iota
	SortNameAsc
	SortNameDesc
	SortDateAsc
	SortDateDesc
)

func (s Sort) String() string {
	switch s {
	case SortNameAsc:
		return "name_asc"
	case SortNameDesc:
		return "name_desc"
	case SortDateAsc:
		return "date_asc"
	case SortDateDesc:
		return "date_desc"
	default:
		return "relevance"
	}
}

// ParseSort maps a raw sort value, defaulting to SortRelevance
func ParseSort(raw string) Sort {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "name_asc", "name":
		return SortNameAsc
	case "name_desc":
		return SortNameDesc
	case "date_asc":
		return SortDateAsc
	case "date_desc", "date":
		return SortDateDesc
	default:
		return SortRelevance
	}
}

// Criteria is a fully normalized description of a search request. Build it
// with ParseCriteria; handlers should never construct partially normalized
// values by hand, since the cache key depends on normalization.
type Criteria struct {
	Query    string
	GenreIDs []int
	Status   Status
	Quick    QuickFilter
	Sort     Sort
	Page     int
	PerPage  int
}

// ParseCriteria coerces a raw request into normalized Criteria. It never
// fails: malformed fields fall back to safe defaults so a search always
// produces a result set.
func ParseCriteria(raw map[string]any) Criteria {
	c := Criteria{
		Query:    strings.TrimSpace(asString(raw["query"])),
		GenreIDs: asIntSlice(raw["genres"]),
		Status:   ParseStatus(asString(raw["status"])),
		Quick:    ParseQuickFilter(asString(raw["quick_filter"])),
		Sort:     ParseSort(asString(raw["sort"])),
		Page:     asInt(raw["page"], 1),
		PerPage:  asInt(raw["per_page"], DefaultPerPage),
	}

	c.applyQuickFilter()
	c.normalize()
	return c
}

// applyQuickFilter expands the named presets into status and sort
func (c *Criteria) applyQuickFilter() {
	switch c.Quick {
	case QuickUpcoming:
		c.Status = StatusUpcoming
		c.Sort = SortDateAsc
	case QuickNew:
		c.Status = StatusReleased
		c.Sort = SortDateDesc
	}
}

// normalize enforces the invariants the cache key relies on: trimmed query,
// deduplicated sorted genre IDs with non-positive values dropped, page >= 1
// and per-page clamped into range.
func (c *Criteria) normalize() {
	c.Query = strings.TrimSpace(c.Query)

	if len(c.GenreIDs) > 0 {
		seen := make(map[int]bool, len(c.GenreIDs))
		ids := make([]int, 0, len(c.GenreIDs))
		for _, id := range c.GenreIDs {
			if id <= 0 || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
		sort.Ints(ids)
		c.GenreIDs = ids
	}

	if c.Page < 1 {
		c.Page = 1
	}
	if c.PerPage < MinPerPage {
		c.PerPage = MinPerPage
	}
	if c.PerPage > MaxPerPage {
		c.PerPage = MaxPerPage
	}
}

// HasFilters reports whether any candidate-narrowing filter is set
func (c Criteria) HasFilters() bool {
	return c.Query != "" || len(c.GenreIDs) > 0 || c.Status != StatusAny || c.Quick == QuickFeatured
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return ""
	}
}

func asInt(v any, fallback int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return parsed
		}
		return fallback
	default:
		return fallback
	}
}

func asIntSlice(v any) []int {
	switch vs := v.(type) {
	case []int:
		return append([]int(nil), vs...)
	case []any:
		out := make([]int, 0, len(vs))
		for _, item := range vs {
			if n := asInt(item, 0); n != 0 {
				out = append(out, n)
			}
		}
		return out
	case []string:
		out := make([]int, 0, len(vs))
		for _, item := range vs {
			// Each value may itself be a comma-separated list
			for _, part := range strings.Split(item, ",") {
				if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
					out = append(out, n)
				}
			}
		}
		return out
	case string:
		if strings.TrimSpace(vs) == "" {
			return nil
		}
		parts := strings.Split(vs, ",")
		out := make([]int, 0, len(parts))
		for _, part := range parts {
			if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				out = append(out, n)
			}
		}
		return out
	default:
		return nil
	}
}
