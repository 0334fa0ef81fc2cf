package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrCustomerHasOrdersQueryIsNotConstructed = errors.New(
		"CustomerHasOrdersQuery must be created via NewCustomerHasOrdersQuery constructor",
	)
)

// CustomerHasOrdersQuery asks whether a customer has placed any order, in any status.
type CustomerHasOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCustomerHasOrdersQuery(customerID kernel.UUID) (CustomerHasOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return CustomerHasOrdersQuery{}, err
	}

	return CustomerHasOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q CustomerHasOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCustomerHasOrdersQueryIsNotConstructed)
}

func (q CustomerHasOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}
