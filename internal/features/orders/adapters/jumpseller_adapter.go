package adapter

import (
	"context"
	"fmt"

	"storefront-api/internal/core/jumpseller"
	catalog "storefront-api/internal/features/catalog/domain"
	locations "storefront-api/internal/features/locations/domain"
	"storefront-api/internal/features/orders/domain"
)

// JumpsellerAdapter implements the OrderGateway interface using the Jumpseller API.
type JumpsellerAdapter struct {
	client *jumpseller.Client
}

// NewJumpsellerAdapter creates a new instance of JumpsellerAdapter.
func NewJumpsellerAdapter(client *jumpseller.Client) *JumpsellerAdapter {
	return &JumpsellerAdapter{client: client}
}

// CreateOrder posts the draft as a new order.
func (a *JumpsellerAdapter) CreateOrder(ctx context.Context, draft domain.Draft) (*domain.Order, error) {
	shipping := toWireAddress(draft.ShippingAddress)
	billing := toWireAddress(draft.BillingAddress)

	body := jumpseller.OrderEnvelope{Order: jumpseller.Order{
		Status:               draft.Status,
		ShippingMethodID:     draft.ShippingMethodID,
		ShippingRequired:     true,
		AllowMissingProducts: false,
		Customer: jumpseller.OrderCustomer{
			ID:              draft.CustomerID,
			ShippingAddress: &shipping,
			BillingAddress:  &billing,
		},
		Products:           make([]jumpseller.OrderProduct, 0, len(draft.Lines)),
		Subtotal:           jumpseller.NewAmount(draft.Subtotal),
		Total:              jumpseller.NewAmount(draft.Total),
		PaymentMethod:      draft.PaymentMethod,
		BillingInformation: &jumpseller.BillingInformation{},
	}}
	for _, l := range draft.Lines {
		body.Order.Products = append(body.Order.Products, jumpseller.OrderProduct{
			ID:        l.ProductID,
			VariantID: l.VariantID,
			Qty:       l.Qty,
			Price:     jumpseller.NewAmount(l.Price),
			Discount:  jumpseller.NewAmount(l.Discount),
		})
	}

	var env jumpseller.OrderEnvelope
	if err := a.client.Post(ctx, "/orders.json", body, &env); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if env.Order.ID == 0 {
		return nil, fmt.Errorf("failed to create order: response carries no id")
	}

	order := &domain.Order{
		ID:               env.Order.ID,
		Status:           env.Order.Status,
		CustomerID:       draft.CustomerID,
		Email:            draft.Email,
		ShippingMethodID: draft.ShippingMethodID,
		ShippingAddress:  draft.ShippingAddress,
		BillingAddress:   draft.BillingAddress,
		Products:         draft.Lines,
		Subtotal:         draft.Subtotal,
		ShippingFee:      draft.ShippingFee,
		Total:            draft.Total,
		PaymentMethod:    draft.PaymentMethod,
		CheckoutURL:      env.Order.CheckoutURL,
		CreatedAt:        env.Order.CreatedAt,
	}
	if order.Status == "" {
		order.Status = draft.Status
	}
	return order, nil
}

// GetOrder fetches an order by id. A 404 is reported as nil, nil.
func (a *JumpsellerAdapter) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	var env jumpseller.OrderEnvelope
	if err := a.client.Get(ctx, fmt.Sprintf("/orders/%d.json", orderID), nil, &env); err != nil {
		if jumpseller.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch order %d: %w", orderID, err)
	}

	return mapToDomain(env.Order), nil
}

// mapToDomain converts a raw Jumpseller order into a domain Order entity.
func mapToDomain(o jumpseller.Order) *domain.Order {
	order := &domain.Order{
		ID:               o.ID,
		Status:           o.Status,
		CustomerID:       o.Customer.ID,
		Email:            o.Customer.Email,
		ShippingMethodID: o.ShippingMethodID,
		Products:         make([]catalog.OrderProductLine, 0, len(o.Products)),
		Subtotal:         o.Subtotal.Decimal,
		Total:            o.Total.Decimal,
		PaymentMethod:    o.PaymentMethod,
		CheckoutURL:      o.CheckoutURL,
		TrackingNumber:   o.TrackingNumber,
		CreatedAt:        o.CreatedAt,
	}
	if fee := o.Total.Sub(o.Subtotal.Decimal); fee.IsPositive() {
		order.ShippingFee = fee
	}
	if o.Customer.ShippingAddress != nil {
		order.ShippingAddress = fromWireAddress(*o.Customer.ShippingAddress)
	}
	if o.Customer.BillingAddress != nil {
		order.BillingAddress = fromWireAddress(*o.Customer.BillingAddress)
	}
	for _, p := range o.Products {
		order.Products = append(order.Products, catalog.OrderProductLine{
			ProductID: p.ID,
			VariantID: p.VariantID,
			Name:      p.Name,
			Qty:       p.Qty,
			Price:     p.Price.Decimal,
			Discount:  p.Discount.Decimal,
		})
	}
	return order
}

func toWireAddress(a locations.Address) jumpseller.Address {
	return jumpseller.Address{
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

func fromWireAddress(a jumpseller.Address) locations.Address {
	return locations.Address{
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
