package good

import "context"

// Message is the content of an email.
type Message any

// EmailService sends messages to a Customer.
type EmailService interface {
	SendEmail(ctx context.Context, customer *Customer, message Message) error
}

// The EmailServiceFunc type is an adapter to allow the use of ordinary functions as EmailService.
// If f is a function with the appropriate signature, EmailServiceFunc(f) is an EmailService that calls f.
type EmailServiceFunc func(ctx context.Context, customer *Customer, message Message) error

// SendEmail calls f(ctx, customer, message).
func (f EmailServiceFunc) SendEmail(ctx context.Context, customer *Customer, message Message) error {
	return f(ctx, customer, message)
}

type emailService struct{}

// NewEmailService returns a stateless EmailService that accepts every message.
func NewEmailService() EmailService {
	return emailService{}
}

// SendEmail sends message to the customer's email address.
func (emailService) SendEmail(_ context.Context, customer *Customer, message Message) error {
	if customer == nil {
		return ErrCustomerNil
	}
	if message == nil {
		return ErrMessageNil
	}
	return nil
}
