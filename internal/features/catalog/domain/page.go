package domain

const (
	// DefaultPerPage is the page size used when none is requested.
	DefaultPerPage = 4
	// MaxPerPage bounds the requested page size.
	MaxPerPage = 50
)

// Page is one page of a product listing.
type Page struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	Total      int       `json:"total"`
	TotalPages int       `json:"total_pages"`
}

// Paginate slices items into the requested page. page < 1 becomes 1, perPage < 1
// becomes DefaultPerPage and perPage above MaxPerPage becomes MaxPerPage.
// A page past the end is empty.
func Paginate(items []Product, page, perPage int) Page {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	total := len(items)
	result := Page{
		Items:      []Product{},
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}

	if page-1 >= result.TotalPages {
		return result
	}
	start := (page - 1) * perPage
	end := min(start+perPage, total)
	result.Items = items[start:end]
	return result
}
