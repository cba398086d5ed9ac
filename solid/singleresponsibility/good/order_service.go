package good

import "context"

// Order is the order placed for a customer.
type Order any

// OrderService places orders on behalf of a Customer.
type OrderService interface {
	PlaceOrder(ctx context.Context, customer *Customer, order Order) error
}

// The OrderServiceFunc type is an adapter to allow the use of ordinary functions as OrderService.
// If f is a function with the appropriate signature, OrderServiceFunc(f) is an OrderService that calls f.
type OrderServiceFunc func(ctx context.Context, customer *Customer, order Order) error

// PlaceOrder calls f(ctx, customer, order).
func (f OrderServiceFunc) PlaceOrder(ctx context.Context, customer *Customer, order Order) error {
	return f(ctx, customer, order)
}

type orderService struct{}

// NewOrderService returns a stateless OrderService that accepts every order.
func NewOrderService() OrderService {
	return orderService{}
}

func (orderService) PlaceOrder(_ context.Context, customer *Customer, order Order) error {
	if customer == nil {
		return ErrCustomerNil
	}
	if order == nil {
		return ErrOrderNil
	}
	return nil
}
