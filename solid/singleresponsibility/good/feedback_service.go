package good

import "context"

// Feedback is what a customer has to say.
type Feedback any

// FeedbackService collects what a Customer has to say.
type FeedbackService interface {
	AddFeedback(ctx context.Context, customer *Customer, feedback Feedback) error
}

// The FeedbackServiceFunc type is an adapter to allow the use of ordinary functions as FeedbackService.
// If f is a function with the appropriate signature, FeedbackServiceFunc(f) is a FeedbackService that calls f.
type FeedbackServiceFunc func(ctx context.Context, customer *Customer, feedback Feedback) error

// AddFeedback calls f(ctx, customer, feedback).
func (f FeedbackServiceFunc) AddFeedback(ctx context.Context, customer *Customer, feedback Feedback) error {
	return f(ctx, customer, feedback)
}

type feedbackService struct{}

// NewFeedbackService returns a stateless FeedbackService that accepts every feedback.
func NewFeedbackService() FeedbackService {
	return feedbackService{}
}

func (feedbackService) AddFeedback(_ context.Context, customer *Customer, feedback Feedback) error {
	if customer == nil {
		return ErrCustomerNil
	}
	if feedback == nil {
		return ErrFeedbackNil
	}
	return nil
}
