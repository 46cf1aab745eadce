// Code generated by MockGen. DO NOT EDIT.
// Source: interface.go
//
// Generated by this command:
//
//	mockgen -package mocktracker -source=interface.go -destination=mock/mocktracker.go *
//

// Package mocktracker is a generated GoMock package.
package mocktracker

import (
	context "context"
	reflect "reflect"
	time "time"
	exchange "tracker/internal/exchange"
	tracker "tracker/internal/tracker"
	domain "tracker/pkg/domain"
	storage "tracker/pkg/storage"

	gomock "go.uber.org/mock/gomock"
)

// MockTracker is a mock of Tracker interface.
type MockTracker struct {
	ctrl     *gomock.Controller
	recorder *MockTrackerMockRecorder
	isgomock struct{}
}

// MockTrackerMockRecorder is the mock recorder for MockTracker.
type MockTrackerMockRecorder struct {
	mock *MockTracker
}

// NewMockTracker creates a new mock instance.
func NewMockTracker(ctrl *gomock.Controller) *MockTracker {
	mock := &MockTracker{ctrl: ctrl}
	mock.recorder = &MockTrackerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTracker) EXPECT() *MockTrackerMockRecorder {
	return m.recorder
}

// AddModule mocks base method.
func (m *MockTracker) AddModule(ctx context.Context, projectID domain.ProjectID, name string) (*domain.Module, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddModule", ctx, projectID, name)
	ret0, _ := ret[0].(*domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddModule indicates an expected call of AddModule.
func (mr *MockTrackerMockRecorder) AddModule(ctx, projectID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddModule", reflect.TypeOf((*MockTracker)(nil).AddModule), ctx, projectID, name)
}

// AddSubModule mocks base method.
func (m *MockTracker) AddSubModule(ctx context.Context, projectID domain.ProjectID, parentID domain.ModuleID, name string) (*domain.Module, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddSubModule", ctx, projectID, parentID, name)
	ret0, _ := ret[0].(*domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddSubModule indicates an expected call of AddSubModule.
func (mr *MockTrackerMockRecorder) AddSubModule(ctx, projectID, parentID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddSubModule", reflect.TypeOf((*MockTracker)(nil).AddSubModule), ctx, projectID, parentID, name)
}

// CreateProject mocks base method.
func (m *MockTracker) CreateProject(ctx context.Context, name string, projectType domain.ProjectType, d0Plan time.Time, moduleCount uint) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateProject", ctx, name, projectType, d0Plan, moduleCount)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateProject indicates an expected call of CreateProject.
func (mr *MockTrackerMockRecorder) CreateProject(ctx, name, projectType, d0Plan, moduleCount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateProject", reflect.TypeOf((*MockTracker)(nil).CreateProject), ctx, name, projectType, d0Plan, moduleCount)
}

// Dashboard mocks base method.
func (m *MockTracker) Dashboard(ctx context.Context, typeFilter domain.ProjectType) (*tracker.Dashboard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Dashboard", ctx, typeFilter)
	ret0, _ := ret[0].(*tracker.Dashboard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Dashboard indicates an expected call of Dashboard.
func (mr *MockTrackerMockRecorder) Dashboard(ctx, typeFilter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Dashboard", reflect.TypeOf((*MockTracker)(nil).Dashboard), ctx, typeFilter)
}

// DeleteProject mocks base method.
func (m *MockTracker) DeleteProject(ctx context.Context, id domain.ProjectID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteProject", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteProject indicates an expected call of DeleteProject.
func (mr *MockTrackerMockRecorder) DeleteProject(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteProject", reflect.TypeOf((*MockTracker)(nil).DeleteProject), ctx, id)
}

// Deliverables mocks base method.
func (m *MockTracker) Deliverables(ctx context.Context, projectID domain.ProjectID) ([]domain.Deliverable, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Deliverables", ctx, projectID)
	ret0, _ := ret[0].([]domain.Deliverable)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Deliverables indicates an expected call of Deliverables.
func (mr *MockTrackerMockRecorder) Deliverables(ctx, projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Deliverables", reflect.TypeOf((*MockTracker)(nil).Deliverables), ctx, projectID)
}

// Import mocks base method.
func (m *MockTracker) Import(ctx context.Context, batch []exchange.ProjectImport) (*exchange.Summary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Import", ctx, batch)
	ret0, _ := ret[0].(*exchange.Summary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Import indicates an expected call of Import.
func (mr *MockTrackerMockRecorder) Import(ctx, batch any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Import", reflect.TypeOf((*MockTracker)(nil).Import), ctx, batch)
}

// Project mocks base method.
func (m *MockTracker) Project(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Project", ctx, id)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Project indicates an expected call of Project.
func (mr *MockTrackerMockRecorder) Project(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Project", reflect.TypeOf((*MockTracker)(nil).Project), ctx, id)
}

// Projects mocks base method.
func (m *MockTracker) Projects(ctx context.Context, typeFilter domain.ProjectType, cursor string, limit uint) ([]domain.Project, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Projects", ctx, typeFilter, cursor, limit)
	ret0, _ := ret[0].([]domain.Project)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Projects indicates an expected call of Projects.
func (mr *MockTrackerMockRecorder) Projects(ctx, typeFilter, cursor, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Projects", reflect.TypeOf((*MockTracker)(nil).Projects), ctx, typeFilter, cursor, limit)
}

// Readiness mocks base method.
func (m *MockTracker) Readiness(ctx context.Context, projectID domain.ProjectID) (*tracker.Readiness, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Readiness", ctx, projectID)
	ret0, _ := ret[0].(*tracker.Readiness)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Readiness indicates an expected call of Readiness.
func (mr *MockTrackerMockRecorder) Readiness(ctx, projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Readiness", reflect.TypeOf((*MockTracker)(nil).Readiness), ctx, projectID)
}

// RecordActual mocks base method.
func (m *MockTracker) RecordActual(ctx context.Context, projectID domain.ProjectID, moduleID domain.ModuleID, key domain.GatewayKey, date time.Time, ecn string) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordActual", ctx, projectID, moduleID, key, date, ecn)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecordActual indicates an expected call of RecordActual.
func (mr *MockTrackerMockRecorder) RecordActual(ctx, projectID, moduleID, key, date, ecn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordActual", reflect.TypeOf((*MockTracker)(nil).RecordActual), ctx, projectID, moduleID, key, date, ecn)
}

// ReloadDeliverables mocks base method.
func (m *MockTracker) ReloadDeliverables(ctx context.Context, projectID domain.ProjectID) ([]domain.Deliverable, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReloadDeliverables", ctx, projectID)
	ret0, _ := ret[0].([]domain.Deliverable)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReloadDeliverables indicates an expected call of ReloadDeliverables.
func (mr *MockTrackerMockRecorder) ReloadDeliverables(ctx, projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReloadDeliverables", reflect.TypeOf((*MockTracker)(nil).ReloadDeliverables), ctx, projectID)
}

// RemoveModule mocks base method.
func (m *MockTracker) RemoveModule(ctx context.Context, projectID domain.ProjectID, moduleID domain.ModuleID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveModule", ctx, projectID, moduleID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveModule indicates an expected call of RemoveModule.
func (mr *MockTrackerMockRecorder) RemoveModule(ctx, projectID, moduleID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveModule", reflect.TypeOf((*MockTracker)(nil).RemoveModule), ctx, projectID, moduleID)
}

// RenameModule mocks base method.
func (m *MockTracker) RenameModule(ctx context.Context, projectID domain.ProjectID, moduleID domain.ModuleID, name string) (*domain.Module, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RenameModule", ctx, projectID, moduleID, name)
	ret0, _ := ret[0].(*domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RenameModule indicates an expected call of RenameModule.
func (mr *MockTrackerMockRecorder) RenameModule(ctx, projectID, moduleID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RenameModule", reflect.TypeOf((*MockTracker)(nil).RenameModule), ctx, projectID, moduleID, name)
}

// SetECN mocks base method.
func (m *MockTracker) SetECN(ctx context.Context, projectID domain.ProjectID, moduleID domain.ModuleID, key domain.GatewayKey, ecn string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetECN", ctx, projectID, moduleID, key, ecn)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetECN indicates an expected call of SetECN.
func (mr *MockTrackerMockRecorder) SetECN(ctx, projectID, moduleID, key, ecn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetECN", reflect.TypeOf((*MockTracker)(nil).SetECN), ctx, projectID, moduleID, key, ecn)
}

// SetPlanDate mocks base method.
func (m *MockTracker) SetPlanDate(ctx context.Context, projectID domain.ProjectID, key domain.GatewayKey, date time.Time) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetPlanDate", ctx, projectID, key, date)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetPlanDate indicates an expected call of SetPlanDate.
func (mr *MockTrackerMockRecorder) SetPlanDate(ctx, projectID, key, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetPlanDate", reflect.TypeOf((*MockTracker)(nil).SetPlanDate), ctx, projectID, key, date)
}

// Timeline mocks base method.
func (m *MockTracker) Timeline(ctx context.Context) ([]tracker.ProjectTimeline, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Timeline", ctx)
	ret0, _ := ret[0].([]tracker.ProjectTimeline)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Timeline indicates an expected call of Timeline.
func (mr *MockTrackerMockRecorder) Timeline(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Timeline", reflect.TypeOf((*MockTracker)(nil).Timeline), ctx)
}

// UpdateDeliverable mocks base method.
func (m *MockTracker) UpdateDeliverable(ctx context.Context, projectID domain.ProjectID, id domain.DeliverableID, updates storage.DeliverableUpdates) (*domain.Deliverable, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDeliverable", ctx, projectID, id, updates)
	ret0, _ := ret[0].(*domain.Deliverable)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateDeliverable indicates an expected call of UpdateDeliverable.
func (mr *MockTrackerMockRecorder) UpdateDeliverable(ctx, projectID, id, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDeliverable", reflect.TypeOf((*MockTracker)(nil).UpdateDeliverable), ctx, projectID, id, updates)
}

// UpdateProject mocks base method.
func (m *MockTracker) UpdateProject(ctx context.Context, id domain.ProjectID, updates storage.ProjectUpdates) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProject", ctx, id, updates)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateProject indicates an expected call of UpdateProject.
func (mr *MockTrackerMockRecorder) UpdateProject(ctx, id, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProject", reflect.TypeOf((*MockTracker)(nil).UpdateProject), ctx, id, updates)
}
