package types

// SearchRequest represents a catalog search request. Every field is optional;
// malformed values are coerced to safe defaults rather than rejected, so a
// search request always yields a result set.
type SearchRequest struct {
	Query       string `json:"query" example:"zelda"`
	Genres      []int  `json:"genres,omitempty" example:"5,12"`
	Status      string `json:"status,omitempty" example:"released" enums:"released,upcoming"`
	QuickFilter string `json:"quick_filter,omitempty" example:"featured" enums:"featured,upcoming,new"`
	Sort        string `json:"sort,omitempty" example:"name_asc" enums:"relevance,name_asc,name_desc,date_asc,date_desc"`
	Page        int    `json:"page,omitempty" example:"1"`
	PerPage     int    `json:"per_page,omitempty" example:"12"`
}

// Raw converts the request into the loosely typed form the criteria
// validator coerces from
func (r SearchRequest) Raw() map[string]any {
	raw := map[string]any{
		"query":        r.Query,
		"status":       r.Status,
		"quick_filter": r.QuickFilter,
		"sort":         r.Sort,
	}
	// Zero values stay absent so the validator applies its own defaults
	if len(r.Genres) > 0 {
		raw["genres"] = r.Genres
	}
	if r.Page != 0 {
		raw["page"] = r.Page
	}
	if r.PerPage != 0 {
		raw["per_page"] = r.PerPage
	}
	return raw
}
