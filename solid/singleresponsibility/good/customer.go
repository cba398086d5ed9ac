// Package good splits the responsibilities of the bad example across focused collaborators.
//
// Customer only describes who the customer is. Emailing, ordering, billing and
// feedback each live in their own service, which receives the Customer it acts on.
package good

import (
	jsoniter "github.com/json-iterator/go"
)

// Customer holds the identity data of a customer and nothing else.
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

type customerJSON struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MarshalJSON encodes the identity data as {"name":...,"email":...}, a nil Customer as null.
func (c *Customer) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(customerJSON{Name: c.name, Email: c.email})
}
