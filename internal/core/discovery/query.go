package discovery

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// DefaultPageSize is the number of listings on one page
const DefaultPageSize = 10

// Order is a caller supplied primary order
// identifier ascending breaks every tie
type Order string

// supported orders
const (
	OrderSource      Order = ""
	OrderRecent      Order = "recent"
	OrderStipendDesc Order = "stipend_desc"
	OrderStipendAsc  Order = "stipend_asc"
	OrderTitle       Order = "title"
)

// Valid reports whether o is a supported order
func (o Order) Valid() bool {
	switch o {
	case OrderSource, OrderRecent, OrderStipendDesc, OrderStipendAsc, OrderTitle:
		return true
	}
	return false
}

// Option tweaks a single query
type Option func(*options)

type options struct {
	pageSize int
	order    Order
	now      time.Time
}

// WithPageSize overrides DefaultPageSize, values below 1 are ignored
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// WithOrder sets the primary order, OrderSource keeps the input order untouched
func WithOrder(ord Order) Option { return func(o *options) { o.order = ord } }

// WithNow anchors relative posting ages for OrderRecent
func WithNow(t time.Time) Option { return func(o *options) { o.now = t } }

// Page is one slice of the filtered and ordered result set
type Page struct {
	Items      []Listing `json:"items"`
	TotalCount int       `json:"total_count"`
	TotalPages int       `json:"total_pages"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
}

// Empty reports whether nothing matched the spec at all
// an overflowing page of a non-empty result is not Empty
func (p Page) Empty() bool { return p.TotalCount == 0 }

// HasPrev reports whether a previous page exists
func (p Page) HasPrev() bool { return p.Page > 1 && p.TotalPages > 0 }

// HasNext reports whether a following page exists
func (p Page) HasNext() bool { return p.Page < p.TotalPages }

// Overflow reports whether the requested page is past the last one
func (p Page) Overflow() bool { return p.Page > max(p.TotalPages, 1) }

// TotalPages is ceil(total / size)
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// ClampPage pulls n into [1, totalPages], or 1 when there are no pages
func ClampPage(n, totalPages int) int {
	if totalPages < 1 || n < 1 {
		return 1
	}
	return min(n, totalPages)
}

// Query filters listings by spec, orders them and returns the requested page
// listings is read only, the returned items are a fresh slice
func Query(listings []Listing, spec FilterSpec, page int, opts ...Option) (Page, error) {
	o := options{pageSize: DefaultPageSize}
	for _, fn := range opts {
		fn(&o)
	}
	if page < 1 {
		return Page{}, invalidPage("page %d is below 1", page)
	}
	if err := spec.Validate(); err != nil {
		return Page{}, err
	}
	if !o.order.Valid() {
		return Page{}, invalidSpec("order", "unknown order %q", o.order)
	}

	matched := Filter(listings, spec)
	sortListings(matched, o.order, o.now)

	total := len(matched)
	out := Page{
		Items:      []Listing{},
		TotalCount: total,
		TotalPages: TotalPages(total, o.pageSize),
		Page:       page,
		PageSize:   o.pageSize,
	}

	start := (page - 1) * o.pageSize
	if start >= total {
		return out, nil
	}
	end := min(start+o.pageSize, total)
	out.Items = matched[start:end:end]
	return out, nil
}

// Filter returns the listings matching every active predicate, in input order
// it does not validate spec, call Validate first when the spec is untrusted
func Filter(listings []Listing, spec FilterSpec) []Listing {
	ps := spec.compile()
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if matchAll(ps, l, "") {
			out = append(out, l)
		}
	}
	return out
}

// sortListings sorts in place, the caller owns ls
func sortListings(ls []Listing, ord Order, now time.Time) {
	if ord == OrderSource {
		return
	}
	if now.IsZero() {
		now = time.Unix(0, 0).UTC()
	}

	primary := func(a, b Listing) int { return 0 }
	switch ord {
	case OrderStipendDesc:
		primary = func(a, b Listing) int { return cmp.Compare(b.Stipend, a.Stipend) }
	case OrderStipendAsc:
		primary = func(a, b Listing) int { return cmp.Compare(a.Stipend, b.Stipend) }
	case OrderTitle:
		primary = func(a, b Listing) int { return strings.Compare(Fold(a.Title), Fold(b.Title)) }
	case OrderRecent:
		// newest first, unknown posting times last
		primary = func(a, b Listing) int {
			ta, oka := a.Posted.Resolve(now)
			tb, okb := b.Posted.Resolve(now)
			switch {
			case oka && okb:
				return tb.Compare(ta)
			case oka:
				return -1
			case okb:
				return 1
			}
			return 0
		}
	}

	slices.SortStableFunc(ls, func(a, b Listing) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
