package dto

import (
	"errors"
	"math"
	"strconv"
)

// PageSize is the fixed number of orders per page.
const PageSize = 10

// MaxPage is the last page whose row numbers fit in an int.
const MaxPage = math.MaxInt / PageSize

// Page is a 1-based page number.
type Page int

// ParsePage reads the page query parameter. Missing, non-numeric and values below 1 yield page 1.
// Values above MaxPage, including ones too large for an int, yield MaxPage.
func ParsePage(s string) Page {
	p, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && p > 0 {
			return MaxPage
		}
		return 1
	}
	if p < 1 {
		return 1
	}
	if p > MaxPage {
		return MaxPage
	}
	return Page(p)
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	if p < 1 {
		return 0
	}
	if p > MaxPage {
		p = MaxPage
	}
	return (int(p) - 1) * PageSize
}

// Limit is the page size.
func (p Page) Limit() int { return PageSize }

// Paginated is one page of a collection plus its position metadata.
// From and To are 1-based row numbers, null when the page is empty.
type Paginated[T any] struct {
	CurrentPage int   `json:"current_page" example:"1"`
	Data        []T   `json:"data"`
	PerPage     int   `json:"per_page" example:"10"`
	Total       int64 `json:"total" example:"42"`
	LastPage    int   `json:"last_page" example:"5"`
	From        *int  `json:"from" example:"1"`
	To          *int  `json:"to" example:"10"`
}

// NewPaginated builds a page from the rows of page and the total row count.
func NewPaginated[T any](items []T, total int64, page Page) *Paginated[T] {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if items == nil {
		items = []T{}
	}

	lastPage := int((total + PageSize - 1) / PageSize)
	if lastPage < 1 {
		lastPage = 1
	}

	p := &Paginated[T]{
		CurrentPage: int(page),
		Data:        items,
		PerPage:     PageSize,
		Total:       total,
		LastPage:    lastPage,
	}
	if len(items) > 0 {
		from := page.Offset() + 1
		to := page.Offset() + len(items)
		p.From = &from
		p.To = &to
	}
	return p
}
