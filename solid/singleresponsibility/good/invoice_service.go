package good

import "context"

// Invoice is the billing record of a customer.
type Invoice any

// InvoiceService produces billing records for a Customer.
type InvoiceService interface {
	GenerateInvoice(ctx context.Context, customer *Customer, invoice Invoice) error
}

// The InvoiceServiceFunc type is an adapter to allow the use of ordinary functions as InvoiceService.
// If f is a function with the appropriate signature, InvoiceServiceFunc(f) is an InvoiceService that calls f.
type InvoiceServiceFunc func(ctx context.Context, customer *Customer, invoice Invoice) error

// GenerateInvoice calls f(ctx, customer, invoice).
func (f InvoiceServiceFunc) GenerateInvoice(ctx context.Context, customer *Customer, invoice Invoice) error {
	return f(ctx, customer, invoice)
}

type invoiceService struct{}

// NewInvoiceService returns a stateless InvoiceService that accepts every invoice.
func NewInvoiceService() InvoiceService {
	return invoiceService{}
}

// GenerateInvoice generates a billing record for customer.
func (invoiceService) GenerateInvoice(_ context.Context, customer *Customer, invoice Invoice) error {
	if customer == nil {
		return ErrCustomerNil
	}
	if invoice == nil {
		return ErrInvoiceNil
	}
	return nil
}
