// Package bad shows a Customer that breaks the Single Responsibility Principle.
//
// Besides describing who the customer is, Customer also knows how to email them,
// how to place their orders, how to bill them and how to collect their feedback.
// Each of those is a separate reason for Customer to change.
package bad

import "context"

type (
	// Message is the content of an email.
	Message any
	// Order is the order placed for a customer.
	Order any
	// Invoice is the billing record of a customer.
	Invoice any
	// Feedback is what a customer has to say.
	Feedback any
)

// Customer describes a customer and also emails, orders, bills and collects feedback for them.
type Customer struct {
	name  string
	email string
}

// NewCustomer returns a Customer named name, reachable at email.
func NewCustomer(name string, email string) *Customer {
	return &Customer{name: name, email: email}
}

// Name returns the name of the customer.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the email address of the customer.
func (c *Customer) Email() string {
	return c.email
}

// SendEmail sends message to the customer's email address.
func (c *Customer) SendEmail(ctx context.Context, message Message) error {
	if message == nil {
		return ErrMessageNil
	}
	return nil
}

// PlaceOrder places order on behalf of the customer.
func (c *Customer) PlaceOrder(ctx context.Context, order Order) error {
	if order == nil {
		return ErrOrderNil
	}
	return nil
}

// GenerateInvoice generates invoice for the customer.
func (c *Customer) GenerateInvoice(ctx context.Context, invoice Invoice) error {
	if invoice == nil {
		return ErrInvoiceNil
	}
	return nil
}

// AddFeedback records feedback from the customer.
func (c *Customer) AddFeedback(ctx context.Context, feedback Feedback) error {
	if feedback == nil {
		return ErrFeedbackNil
	}
	return nil
}
