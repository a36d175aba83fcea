package model

import (
	"fmt"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
)

// PageRequest selects a zero-based page of fixed size.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of rows preceding the page.
func (r PageRequest) Offset() uint64 {
	return uint64(r.Page) * uint64(r.Size)
}

// PageQuery carries page parameters exactly as a caller supplied them.
// A nil field was not supplied.
type PageQuery struct {
	Page *int
	Size *int
}

// Validate rejects negative values and leaves everything else to the service
// that owns the data.
func (q PageQuery) Validate() error {
	if q.Page != nil && *q.Page < 0 {
		return fmt.Errorf("%w: page must not be negative", domainErrors.ErrValidation)
	}
	if q.Size != nil && *q.Size < 0 {
		return fmt.Errorf("%w: size must not be negative", domainErrors.ErrValidation)
	}
	return nil
}

// Request resolves the query into a page request, leaving absent values zero.
func (q PageQuery) Request() PageRequest {
	var r PageRequest
	if q.Page != nil {
		r.Page = *q.Page
	}
	if q.Size != nil {
		r.Size = *q.Size
	}
	return r
}

// Page is a slice of results together with the total number of matches.
type Page[T any] struct {
	Content       []T
	TotalElements int64
	Page          int
	Size          int
}

// TotalPages derives the page count from the total.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// Paging holds page size limits.
type Paging struct {
	DefaultSize int
	MaxSize     int
}

// Normalize applies defaults and limits to a page request.
func (p Paging) Normalize(r PageRequest) (PageRequest, error) {
	if r.Page < 0 {
		return PageRequest{}, fmt.Errorf("%w: page must not be negative", domainErrors.ErrValidation)
	}
	if r.Size < 0 {
		return PageRequest{}, fmt.Errorf("%w: size must not be negative", domainErrors.ErrValidation)
	}
	if r.Size == 0 {
		r.Size = p.DefaultSize
	}
	if p.MaxSize > 0 && r.Size > p.MaxSize {
		r.Size = p.MaxSize
	}
	return r, nil
}
