// Hand-maintained mocks for the queries interfaces (DraftQueries,
// DealQueries), kept in the shape mockgen emits so a generated replacement
// is a drop-in. Update alongside the interfaces.

package queriesmock

import (
	context "context"
	reflect "reflect"

	queries "dealdesk/internal/usecase/queries"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockDraftQueries is a mock of DraftQueries interface.
type MockDraftQueries struct {
	ctrl     *gomock.Controller
	recorder *MockDraftQueriesMockRecorder
}

// MockDraftQueriesMockRecorder is the mock recorder for MockDraftQueries.
type MockDraftQueriesMockRecorder struct {
	mock *MockDraftQueries
}

// NewMockDraftQueries creates a new mock instance.
func NewMockDraftQueries(ctrl *gomock.Controller) *MockDraftQueries {
	mock := &MockDraftQueries{ctrl: ctrl}
	mock.recorder = &MockDraftQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDraftQueries) EXPECT() *MockDraftQueriesMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockDraftQueries) Get(ctx context.Context, id uuid.UUID) (*queries.DraftView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(*queries.DraftView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockDraftQueriesMockRecorder) Get(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockDraftQueries)(nil).Get), ctx, id)
}

// OwnerPanel mocks base method.
func (m *MockDraftQueries) OwnerPanel(ctx context.Context, id uuid.UUID) (*queries.OwnerPanelView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OwnerPanel", ctx, id)
	ret0, _ := ret[0].(*queries.OwnerPanelView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OwnerPanel indicates an expected call of OwnerPanel.
func (mr *MockDraftQueriesMockRecorder) OwnerPanel(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OwnerPanel", reflect.TypeOf((*MockDraftQueries)(nil).OwnerPanel), ctx, id)
}

// MockDealQueries is a mock of DealQueries interface.
type MockDealQueries struct {
	ctrl     *gomock.Controller
	recorder *MockDealQueriesMockRecorder
}

// MockDealQueriesMockRecorder is the mock recorder for MockDealQueries.
type MockDealQueriesMockRecorder struct {
	mock *MockDealQueries
}

// NewMockDealQueries creates a new mock instance.
func NewMockDealQueries(ctrl *gomock.Controller) *MockDealQueries {
	mock := &MockDealQueries{ctrl: ctrl}
	mock.recorder = &MockDealQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDealQueries) EXPECT() *MockDealQueriesMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockDealQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.DealView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*queries.DealView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockDealQueriesMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockDealQueries)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockDealQueries) List(ctx context.Context) ([]*queries.DealListItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*queries.DealListItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockDealQueriesMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockDealQueries)(nil).List), ctx)
}
