package payment

import (
	"context"
	"emi-payments/internal/domain/customer"
	"emi-payments/internal/event"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) Create(ctx context.Context, p *Payment) (*Payment, error) {
	ret := _m.Called(ctx, p)

	var r0 *Payment
	if rf, ok := ret.Get(0).(func(context.Context, *Payment) *Payment); ok {
		r0 = rf(ctx, p)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Payment)
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByAccountNumber(ctx context.Context, accountNumber string) ([]*Payment, error) {
	ret := _m.Called(ctx, accountNumber)

	var r0 []*Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Payment)
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) SummarizeSince(ctx context.Context, since time.Time) (Summary, error) {
	ret := _m.Called(ctx, since)
	return ret.Get(0).(Summary), ret.Error(1)
}

var _ Repository = (*MockRepository)(nil)

type MockAccountLookup struct {
	mock.Mock
}

func (_m *MockAccountLookup) FindByAccountNumber(ctx context.Context, accountNumber string) (*customer.Customer, error) {
	ret := _m.Called(ctx, accountNumber)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}

	return r0, ret.Error(1)
}

var _ AccountLookup = (*MockAccountLookup)(nil)

type MockPublisher struct {
	mock.Mock
}

func (_m *MockPublisher) PublishPaymentRecorded(ctx context.Context, evt event.PaymentRecordedEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

var _ event.EventPublisher = (*MockPublisher)(nil)
