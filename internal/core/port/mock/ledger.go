// Code generated by MockGen. DO NOT EDIT.
// Source: ledger.go
//
// Generated by this command:
//
//	mockgen -source=ledger.go -destination=mock/ledger.go -package=mock
//

// Package mock is a generated GoMock package.
package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	domain "github.com/Allirose140/SmartStackPro/internal/core/domain"
	gomock "go.uber.org/mock/gomock"
)

// MockLedgerPort is a mock of LedgerPort interface.
type MockLedgerPort struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerPortMockRecorder
	isgomock struct{}
}

// MockLedgerPortMockRecorder is the mock recorder for MockLedgerPort.
type MockLedgerPortMockRecorder struct {
	mock *MockLedgerPort
}

// NewMockLedgerPort creates a new mock instance.
func NewMockLedgerPort(ctrl *gomock.Controller) *MockLedgerPort {
	mock := &MockLedgerPort{ctrl: ctrl}
	mock.recorder = &MockLedgerPortMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerPort) EXPECT() *MockLedgerPortMockRecorder {
	return m.recorder
}

// All mocks base method.
func (m *MockLedgerPort) All(ctx context.Context) ([]*domain.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "All", ctx)
	ret0, _ := ret[0].([]*domain.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// All indicates an expected call of All.
func (mr *MockLedgerPortMockRecorder) All(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "All", reflect.TypeOf((*MockLedgerPort)(nil).All), ctx)
}

// Append mocks base method.
func (m *MockLedgerPort) Append(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Append", ctx, tx)
	ret0, _ := ret[0].(*domain.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Append indicates an expected call of Append.
func (mr *MockLedgerPortMockRecorder) Append(ctx, tx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockLedgerPort)(nil).Append), ctx, tx)
}

// HistoryByProduct mocks base method.
func (m *MockLedgerPort) HistoryByProduct(ctx context.Context, productID domain.ID) ([]*domain.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HistoryByProduct", ctx, productID)
	ret0, _ := ret[0].([]*domain.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HistoryByProduct indicates an expected call of HistoryByProduct.
func (mr *MockLedgerPortMockRecorder) HistoryByProduct(ctx, productID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HistoryByProduct", reflect.TypeOf((*MockLedgerPort)(nil).HistoryByProduct), ctx, productID)
}

// HistoryByProductRange mocks base method.
func (m *MockLedgerPort) HistoryByProductRange(ctx context.Context, productID domain.ID, start, end time.Time) ([]*domain.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HistoryByProductRange", ctx, productID, start, end)
	ret0, _ := ret[0].([]*domain.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HistoryByProductRange indicates an expected call of HistoryByProductRange.
func (mr *MockLedgerPortMockRecorder) HistoryByProductRange(ctx, productID, start, end any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HistoryByProductRange", reflect.TypeOf((*MockLedgerPort)(nil).HistoryByProductRange), ctx, productID, start, end)
}

// Recent mocks base method.
func (m *MockLedgerPort) Recent(ctx context.Context, days int) ([]*domain.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Recent", ctx, days)
	ret0, _ := ret[0].([]*domain.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Recent indicates an expected call of Recent.
func (mr *MockLedgerPortMockRecorder) Recent(ctx, days any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Recent", reflect.TypeOf((*MockLedgerPort)(nil).Recent), ctx, days)
}
