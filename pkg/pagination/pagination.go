package pagination

// MaxPageSize caps how many rows one page may hold
const MaxPageSize = 500

// Params selects one page. A PageSize of 0 means everything on a single page.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps page to at least 1 and pageSize to [0, MaxPageSize]
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	p.PageSize = max(0, min(p.PageSize, MaxPageSize))
	return p
}

// CalculateOffsetLimit converts the page into an offset and limit. A zero limit means no limit.
func (p Params) CalculateOffsetLimit() (offset, limit int) {
	p = p.Normalize()
	if p.PageSize == 0 {
		return 0, 0
	}
	return (p.Page - 1) * p.PageSize, p.PageSize
}

// BuildMeta describes the page within totalItems rows
func (p Params) BuildMeta(totalItems int) Meta {
	p = p.Normalize()
	totalPages := 0
	switch {
	case p.PageSize > 0:
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	case totalItems > 0:
		totalPages = 1
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}
