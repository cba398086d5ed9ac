package responsibility

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

type testAccount struct {
	owner string
}

func (a testAccount) Owner() string {
	return a.owner
}

func (a testAccount) Deposit(ctx context.Context, amount int) error {
	return nil
}

func (a *testAccount) Withdraw(ctx context.Context, amount int) error {
	return nil
}

func (a testAccount) Balance(ctx context.Context) (int, error) {
	return 0, nil
}

func (a testAccount) Close(amount int) error {
	return nil
}

type testDepositor interface {
	Deposit(ctx context.Context, amount int) error
	Owner() string
}

func TestOperations(t *testing.T) {
	Convey("Given an account with accessors and operations", t, func() {
		account := testAccount{owner: "alice"}

		Convey("A value only exposes the value receiver operations", func() {
			So(Operations(account), ShouldResemble, []string{"Deposit"})
		})

		Convey("A pointer exposes the pointer receiver operations too, sorted by name", func() {
			So(Operations(&account), ShouldResemble, []string{"Deposit", "Withdraw"})
			So(Count(&account), ShouldEqual, 2)
		})

		Convey("An interface type is inspected without a receiver", func() {
			So(OperationsOf[testDepositor](), ShouldResemble, []string{"Deposit"})
		})

		Convey("Nil has no operations", func() {
			So(Operations(nil), ShouldBeEmpty)
			So(Count(nil), ShouldEqual, 0)
		})
	})
}

type testTxContext interface {
	context.Context
	Commit() error
}

type testTxError struct{}

func (testTxError) Error() string {
	return "tx failed"
}

type testLedger struct{}

func (testLedger) Post(ctx testTxContext, amount int) error {
	return nil
}

func (testLedger) Reverse(ctx context.Context, amount int) *testTxError {
	return nil
}

func (testLedger) Audit(ctx *context.Context) error {
	return nil
}

func (testLedger) Reset(ctx context.Context) {}

func TestOperations_Signature(t *testing.T) {
	// any context.Context as first argument and anything implementing error as the single result.
	assert.Equal(t, []string{"Post", "Reverse"}, Operations(testLedger{}))
	assert.Equal(t, 2, Count(testLedger{}))
}

func TestOperations_Func(t *testing.T) {
	type handlerFunc func(ctx context.Context) error
	assert.Empty(t, Operations(handlerFunc(nil)))
	assert.Empty(t, Operations(struct{}{}))
	assert.Equal(t, 0, Count("not an operation"))
}
