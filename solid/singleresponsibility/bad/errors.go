package bad

import "errors"

var (
	// ErrMessageNil Message arg is nil
	ErrMessageNil = errors.New("message is nil")

	// ErrOrderNil Order arg is nil
	ErrOrderNil = errors.New("order is nil")

	// ErrInvoiceNil Invoice arg is nil
	ErrInvoiceNil = errors.New("invoice is nil")

	// ErrFeedbackNil Feedback arg is nil
	ErrFeedbackNil = errors.New("feedback is nil")
)
