package queries

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery asks for one page of orders, newest first.
//
// Paging input is clamped rather than rejected: a page number below 1 becomes 1, a
// page size below 1 becomes DefaultPageSize and one above MaxPageSize becomes
// MaxPageSize. A status filter that does not name a known status is ignored.
//
// Example:
//
//	query, _ := NewListOrdersQuery(1, 500, nil, "ready")
//	query.PageSize() // 100
//	*query.Status()  // order.Ready
type ListOrdersQuery struct {
	pageNumber int
	pageSize   int
	customerID *kernel.UUID
	status     *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery fails only for a customer filter holding the nil UUID.
func NewListOrdersQuery(pageNumber, pageSize int, customerID *kernel.UUID, status string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		pageNumber: max(pageNumber, 1),
		pageSize:   pageSize,
		guard:      guard.NewConstructorGuard(),
	}

	switch {
	case pageSize < 1:
		q.pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		q.pageSize = MaxPageSize
	}

	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
		id := *customerID
		q.customerID = &id
	}

	if strings.TrimSpace(status) != "" {
		if parsed, err := order.ParseStatus(status); err == nil {
			q.status = &parsed
		}
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) PageNumber() int {
	return q.pageNumber
}

func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// CustomerID returns the customer filter, or nil when unset.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	if q.customerID == nil {
		return nil
	}
	id := *q.customerID
	return &id
}

// Status returns the status filter, or nil when unset or unrecognised.
func (q ListOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}

// ListOrdersResponse is one page of order summaries. Failed is true when the page
// could not be read; Items is then empty and TotalCount is 0.
type ListOrdersResponse struct {
	Items      []OrderSummary
	PageNumber int
	PageSize   int
	TotalCount int64
	TotalPages int
	Failed     bool
}
