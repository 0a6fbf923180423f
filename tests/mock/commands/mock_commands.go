// Hand-maintained mocks for the commands interfaces (AuthCommands,
// DraftCommands, OwnerCommands), kept in the shape mockgen emits so a
// generated replacement is a drop-in. Update alongside the interfaces.

package commandsmock

import (
	context "context"
	reflect "reflect"

	deal "dealdesk/internal/domain/deal"
	commands "dealdesk/internal/usecase/commands"
	queries "dealdesk/internal/usecase/queries"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockAuthCommands is a mock of AuthCommands interface.
type MockAuthCommands struct {
	ctrl     *gomock.Controller
	recorder *MockAuthCommandsMockRecorder
}

// MockAuthCommandsMockRecorder is the mock recorder for MockAuthCommands.
type MockAuthCommandsMockRecorder struct {
	mock *MockAuthCommands
}

// NewMockAuthCommands creates a new mock instance.
func NewMockAuthCommands(ctrl *gomock.Controller) *MockAuthCommands {
	mock := &MockAuthCommands{ctrl: ctrl}
	mock.recorder = &MockAuthCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthCommands) EXPECT() *MockAuthCommandsMockRecorder {
	return m.recorder
}

// Login mocks base method.
func (m *MockAuthCommands) Login(ctx context.Context, email, plainPassword string) (*commands.LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", ctx, email, plainPassword)
	ret0, _ := ret[0].(*commands.LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Login indicates an expected call of Login.
func (mr *MockAuthCommandsMockRecorder) Login(ctx, email, plainPassword any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthCommands)(nil).Login), ctx, email, plainPassword)
}

// MockDraftCommands is a mock of DraftCommands interface.
type MockDraftCommands struct {
	ctrl     *gomock.Controller
	recorder *MockDraftCommandsMockRecorder
}

// MockDraftCommandsMockRecorder is the mock recorder for MockDraftCommands.
type MockDraftCommandsMockRecorder struct {
	mock *MockDraftCommands
}

// NewMockDraftCommands creates a new mock instance.
func NewMockDraftCommands(ctrl *gomock.Controller) *MockDraftCommands {
	mock := &MockDraftCommands{ctrl: ctrl}
	mock.recorder = &MockDraftCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDraftCommands) EXPECT() *MockDraftCommandsMockRecorder {
	return m.recorder
}

// AddImage mocks base method.
func (m *MockDraftCommands) AddImage(ctx context.Context, id uuid.UUID, ref string) (*queries.DraftView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddImage", ctx, id, ref)
	ret0, _ := ret[0].(*queries.DraftView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddImage indicates an expected call of AddImage.
func (mr *MockDraftCommandsMockRecorder) AddImage(ctx, id, ref any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddImage", reflect.TypeOf((*MockDraftCommands)(nil).AddImage), ctx, id, ref)
}

// Cancel mocks base method.
func (m *MockDraftCommands) Cancel(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancel", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Cancel indicates an expected call of Cancel.
func (mr *MockDraftCommandsMockRecorder) Cancel(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel", reflect.TypeOf((*MockDraftCommands)(nil).Cancel), ctx, id)
}

// Create mocks base method.
func (m *MockDraftCommands) Create(ctx context.Context) (*queries.DraftView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx)
	ret0, _ := ret[0].(*queries.DraftView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockDraftCommandsMockRecorder) Create(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockDraftCommands)(nil).Create), ctx)
}

// RemoveImage mocks base method.
func (m *MockDraftCommands) RemoveImage(ctx context.Context, id uuid.UUID, index int) (*queries.DraftView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveImage", ctx, id, index)
	ret0, _ := ret[0].(*queries.DraftView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RemoveImage indicates an expected call of RemoveImage.
func (mr *MockDraftCommandsMockRecorder) RemoveImage(ctx, id, index any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveImage", reflect.TypeOf((*MockDraftCommands)(nil).RemoveImage), ctx, id, index)
}

// SetFields mocks base method.
func (m *MockDraftCommands) SetFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*queries.DraftView, deal.ValidationResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetFields", ctx, id, fields)
	ret0, _ := ret[0].(*queries.DraftView)
	ret1, _ := ret[1].(deal.ValidationResult)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SetFields indicates an expected call of SetFields.
func (mr *MockDraftCommandsMockRecorder) SetFields(ctx, id, fields any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetFields", reflect.TypeOf((*MockDraftCommands)(nil).SetFields), ctx, id, fields)
}

// SetTierValue mocks base method.
func (m *MockDraftCommands) SetTierValue(ctx context.Context, id uuid.UUID, tierID, value string) (*queries.DraftView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetTierValue", ctx, id, tierID, value)
	ret0, _ := ret[0].(*queries.DraftView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetTierValue indicates an expected call of SetTierValue.
func (mr *MockDraftCommandsMockRecorder) SetTierValue(ctx, id, tierID, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetTierValue", reflect.TypeOf((*MockDraftCommands)(nil).SetTierValue), ctx, id, tierID, value)
}

// SetTieredPricing mocks base method.
func (m *MockDraftCommands) SetTieredPricing(ctx context.Context, id uuid.UUID, enabled bool) (*queries.DraftView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetTieredPricing", ctx, id, enabled)
	ret0, _ := ret[0].(*queries.DraftView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetTieredPricing indicates an expected call of SetTieredPricing.
func (mr *MockDraftCommandsMockRecorder) SetTieredPricing(ctx, id, enabled any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetTieredPricing", reflect.TypeOf((*MockDraftCommands)(nil).SetTieredPricing), ctx, id, enabled)
}

// Submit mocks base method.
func (m *MockDraftCommands) Submit(ctx context.Context, id uuid.UUID) (*queries.DealView, deal.ValidationResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Submit", ctx, id)
	ret0, _ := ret[0].(*queries.DealView)
	ret1, _ := ret[1].(deal.ValidationResult)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Submit indicates an expected call of Submit.
func (mr *MockDraftCommandsMockRecorder) Submit(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Submit", reflect.TypeOf((*MockDraftCommands)(nil).Submit), ctx, id)
}

// MockOwnerCommands is a mock of OwnerCommands interface.
type MockOwnerCommands struct {
	ctrl     *gomock.Controller
	recorder *MockOwnerCommandsMockRecorder
}

// MockOwnerCommandsMockRecorder is the mock recorder for MockOwnerCommands.
type MockOwnerCommandsMockRecorder struct {
	mock *MockOwnerCommands
}

// NewMockOwnerCommands creates a new mock instance.
func NewMockOwnerCommands(ctrl *gomock.Controller) *MockOwnerCommands {
	mock := &MockOwnerCommands{ctrl: ctrl}
	mock.recorder = &MockOwnerCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOwnerCommands) EXPECT() *MockOwnerCommandsMockRecorder {
	return m.recorder
}

// Clear mocks base method.
func (m *MockOwnerCommands) Clear(ctx context.Context, draftID uuid.UUID) (*queries.DraftView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clear", ctx, draftID)
	ret0, _ := ret[0].(*queries.DraftView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Clear indicates an expected call of Clear.
func (mr *MockOwnerCommandsMockRecorder) Clear(ctx, draftID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clear", reflect.TypeOf((*MockOwnerCommands)(nil).Clear), ctx, draftID)
}

// Search mocks base method.
func (m *MockOwnerCommands) Search(ctx context.Context, draftID uuid.UUID, query string) (*queries.OwnerPanelView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", ctx, draftID, query)
	ret0, _ := ret[0].(*queries.OwnerPanelView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Search indicates an expected call of Search.
func (mr *MockOwnerCommandsMockRecorder) Search(ctx, draftID, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Search", reflect.TypeOf((*MockOwnerCommands)(nil).Search), ctx, draftID, query)
}

// Select mocks base method.
func (m *MockOwnerCommands) Select(ctx context.Context, draftID uuid.UUID, candidateID string) (*queries.DraftView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Select", ctx, draftID, candidateID)
	ret0, _ := ret[0].(*queries.DraftView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Select indicates an expected call of Select.
func (mr *MockOwnerCommandsMockRecorder) Select(ctx, draftID, candidateID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Select", reflect.TypeOf((*MockOwnerCommands)(nil).Select), ctx, draftID, candidateID)
}
