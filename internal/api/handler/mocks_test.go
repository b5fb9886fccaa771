package handler_test

import (
	"context"
	"emi-payments/internal/domain/customer"
	"emi-payments/internal/domain/payment"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (_m *MockCustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	ret := _m.Called(ctx)

	var r0 []*customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*customer.Customer)
	}

	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*customer.Customer, error) {
	ret := _m.Called(ctx, accountNumber)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}

	return r0, ret.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (_m *MockPaymentRepository) Create(ctx context.Context, p *payment.Payment) (*payment.Payment, error) {
	ret := _m.Called(ctx, p)

	var r0 *payment.Payment
	if rf, ok := ret.Get(0).(func(context.Context, *payment.Payment) *payment.Payment); ok {
		r0 = rf(ctx, p)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*payment.Payment)
	}

	return r0, ret.Error(1)
}

func (_m *MockPaymentRepository) FindByAccountNumber(ctx context.Context, accountNumber string) ([]*payment.Payment, error) {
	ret := _m.Called(ctx, accountNumber)

	var r0 []*payment.Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*payment.Payment)
	}

	return r0, ret.Error(1)
}

func (_m *MockPaymentRepository) SummarizeSince(ctx context.Context, since time.Time) (payment.Summary, error) {
	ret := _m.Called(ctx, since)
	return ret.Get(0).(payment.Summary), ret.Error(1)
}
