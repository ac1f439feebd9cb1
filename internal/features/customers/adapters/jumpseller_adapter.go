package adapter

import (
	"context"
	"fmt"
	"net/url"

	"storefront-api/internal/core/jumpseller"
	"storefront-api/internal/features/customers/domain"
	locations "storefront-api/internal/features/locations/domain"
)

// JumpsellerAdapter implements the CustomerDirectory interface using the Jumpseller API.
type JumpsellerAdapter struct {
	client *jumpseller.Client
}

// NewJumpsellerAdapter creates a new instance of JumpsellerAdapter.
func NewJumpsellerAdapter(client *jumpseller.Client) *JumpsellerAdapter {
	return &JumpsellerAdapter{client: client}
}

// FindByEmail looks a customer up by email. A 404 is reported as nil, nil.
func (a *JumpsellerAdapter) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var env jumpseller.CustomerEnvelope
	path := fmt.Sprintf("/customers/email/%s.json", url.PathEscape(email))
	if err := a.client.Get(ctx, path, nil, &env); err != nil {
		if jumpseller.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer by email: %w", err)
	}
	if env.Customer.ID == 0 {
		return nil, nil
	}

	customer := fromWire(env.Customer)
	return &customer, nil
}

// Create posts a new customer.
func (a *JumpsellerAdapter) Create(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	body := jumpseller.CustomerEnvelope{Customer: jumpseller.Customer{
		Email:           customer.Email,
		FirstName:       customer.FirstName,
		LastName:        customer.LastName,
		Phone:           customer.Phone,
		ShippingAddress: toWireAddress(customer.ShippingAddress),
		BillingAddress:  toWireAddress(customer.BillingAddress),
	}}

	var env jumpseller.CustomerEnvelope
	if err := a.client.Post(ctx, "/customers.json", body, &env); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	if env.Customer.ID == 0 {
		return nil, fmt.Errorf("failed to create customer: response carries no id")
	}

	created := fromWire(env.Customer)
	return &created, nil
}

// UpdateAddresses replaces the shipping and billing addresses of a customer.
func (a *JumpsellerAdapter) UpdateAddresses(ctx context.Context, customerID int64, shipping, billing locations.Address) error {
	body := jumpseller.CustomerEnvelope{Customer: jumpseller.Customer{
		ShippingAddress: toWireAddress(&shipping),
		BillingAddress:  toWireAddress(&billing),
	}}

	path := fmt.Sprintf("/customers/%d.json", customerID)
	if err := a.client.Put(ctx, path, body, nil); err != nil {
		return fmt.Errorf("failed to update customer %d: %w", customerID, err)
	}
	return nil
}

// Orders lists the orders of a customer.
func (a *JumpsellerAdapter) Orders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	var raw []jumpseller.OrderEnvelope
	path := fmt.Sprintf("/customers/%d/orders.json", customerID)
	if err := a.client.Get(ctx, path, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch orders of customer %d: %w", customerID, err)
	}

	orders := make([]domain.Order, 0, len(raw))
	for _, env := range raw {
		o := env.Order
		orders = append(orders, domain.Order{
			ID:                 o.ID,
			Status:             o.Status,
			ShippingMethodID:   o.ShippingMethodID,
			ShippingMethodName: o.ShippingMethodName,
			TrackingNumber:     o.TrackingNumber,
			TrackingCompany:    o.TrackingCompany,
			Total:              o.Total.Decimal,
			CreatedAt:          o.CreatedAt,
		})
	}
	return orders, nil
}

func fromWire(c jumpseller.Customer) domain.Customer {
	return domain.Customer{
		ID:              c.ID,
		Email:           c.Email,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Phone:           c.Phone,
		ShippingAddress: fromWireAddress(c.ShippingAddress),
		BillingAddress:  fromWireAddress(c.BillingAddress),
	}
}

func fromWireAddress(a *jumpseller.Address) *locations.Address {
	if a == nil {
		return nil
	}
	return &locations.Address{
		Name:         a.Name,
		Surname:      a.Surname,
		TaxID:        a.TaxID,
		Address:      a.Address,
		City:         a.City,
		Postal:       a.Postal,
		Municipality: a.Municipality,
		Region:       a.Region,
		Country:      a.Country,
	}
}

func toWireAddress(a *locations.Address) *jumpseller.Address {
	if a == nil {
		return nil
	}
	return &jumpseller.Address{
		Name:         a.Name,
		Surname:      a.Surname,
		TaxID:        a.TaxID,
		Address:      a.Address,
		City:         a.City,
		Postal:       a.Postal,
		Municipality: a.Municipality,
		Region:       a.Region,
		Country:      a.Country,
	}
}
