package pagination

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	DefaultPage = 1
	DefaultSize = 20
	MaxSize     = 2000
)

var ErrInvalidSort = errors.New("invalid sort")

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order sorts by a logical property name, not a column.
type Order struct {
	Property  string
	Direction Direction
}

// PageRequest selects a 1-based page of Size records.
type PageRequest struct {
	Page int
	Size int
	Sort []Order
}

// NewPageRequest normalises page and size to their defaults when they are not positive.
func NewPageRequest(page, size int, sort ...Order) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return PageRequest{Page: page, Size: size, Sort: sort}
}

// Offset saturates at math.MaxInt so a page beyond any int offset reads as past the end.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Size
}

func (p PageRequest) HasSort() bool {
	return len(p.Sort) > 0
}

func (p PageRequest) String() string {
	orders := make([]string, len(p.Sort))
	for i, o := range p.Sort {
		orders[i] = o.Property + "," + strings.ToLower(string(o.Direction))
	}
	return fmt.Sprintf("Page request [number: %d, size %d, sort: %s]", p.Page, p.Size, strings.Join(orders, ";"))
}

// ParseOrder reads "property" or "property,asc|desc".
func ParseOrder(raw string) (Order, error) {
	parts := strings.Split(raw, ",")
	property := strings.TrimSpace(parts[0])
	if property == "" || len(parts) > 2 {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidSort, raw)
	}

	order := Order{Property: property, Direction: Asc}
	if len(parts) == 2 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "asc", "":
		case "desc":
			order.Direction = Desc
		default:
			return Order{}, fmt.Errorf("%w: %q", ErrInvalidSort, raw)
		}
	}
	return order, nil
}

// Page is one window of a larger result set.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
}

func NewPage[T any](content []T, request PageRequest, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	return &Page[T]{
		Content:       content,
		Page:          request.Page,
		Size:          request.Size,
		TotalElements: total,
	}
}

func (p *Page[T]) TotalPages() int {
	if p.Size < 1 {
		return 0
	}
	pages := int(p.TotalElements) / p.Size
	if int(p.TotalElements)%p.Size > 0 {
		pages++
	}
	return pages
}

// Map converts the content while keeping the paging metadata.
func Map[T, R any](p *Page[T], fn func(T) R) *Page[R] {
	content := make([]R, len(p.Content))
	for i, item := range p.Content {
		content[i] = fn(item)
	}
	return &Page[R]{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
	}
}
