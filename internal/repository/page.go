package repository

import "gorm.io/gorm"

const (
	// DefaultLimit is the page size used when none is given.
	DefaultLimit = 100
	// MaxLimit caps the page size.
	MaxLimit = 100
)

// Page is an offset/limit window over a listing.
type Page struct {
	Offset int
	Limit  int
}

// NewPage clamps skip and limit into a valid window.
func NewPage(skip, limit int) Page {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Offset: skip, Limit: limit}
}

func (p Page) scope(db *gorm.DB) *gorm.DB {
	if p.Limit <= 0 {
		p = NewPage(p.Offset, p.Limit)
	}
	return db.Offset(p.Offset).Limit(p.Limit)
}
