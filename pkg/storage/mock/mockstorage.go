// Code generated by MockGen. DO NOT EDIT.
// Source: interface.go
//
// Generated by this command:
//
//	mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
//

// Package mockstorage is a generated GoMock package.
package mockstorage

import (
	context "context"
	reflect "reflect"
	time "time"
	domain "tracker/pkg/domain"
	storage "tracker/pkg/storage"

	uuid "github.com/google/uuid"
	river "github.com/riverqueue/river"
	gomock "go.uber.org/mock/gomock"
)

// MockAllStorage is a mock of AllStorage interface.
type MockAllStorage struct {
	ctrl     *gomock.Controller
	recorder *MockAllStorageMockRecorder
	isgomock struct{}
}

// MockAllStorageMockRecorder is the mock recorder for MockAllStorage.
type MockAllStorageMockRecorder struct {
	mock *MockAllStorage
}

// NewMockAllStorage creates a new mock instance.
func NewMockAllStorage(ctrl *gomock.Controller) *MockAllStorage {
	mock := &MockAllStorage{ctrl: ctrl}
	mock.recorder = &MockAllStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAllStorage) EXPECT() *MockAllStorageMockRecorder {
	return m.recorder
}

// AddJob mocks base method.
func (m *MockAllStorage) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddJob", ctx, args, opts)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddJob indicates an expected call of AddJob.
func (mr *MockAllStorageMockRecorder) AddJob(ctx, args, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddJob", reflect.TypeOf((*MockAllStorage)(nil).AddJob), ctx, args, opts)
}

// AllProjects mocks base method.
func (m *MockAllStorage) AllProjects(ctx context.Context) ([]domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AllProjects", ctx)
	ret0, _ := ret[0].([]domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AllProjects indicates an expected call of AllProjects.
func (mr *MockAllStorageMockRecorder) AllProjects(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AllProjects", reflect.TypeOf((*MockAllStorage)(nil).AllProjects), ctx)
}

// DeleteDeliverablesByProject mocks base method.
func (m *MockAllStorage) DeleteDeliverablesByProject(ctx context.Context, projectID domain.ProjectID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteDeliverablesByProject", ctx, projectID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteDeliverablesByProject indicates an expected call of DeleteDeliverablesByProject.
func (mr *MockAllStorageMockRecorder) DeleteDeliverablesByProject(ctx, projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteDeliverablesByProject", reflect.TypeOf((*MockAllStorage)(nil).DeleteDeliverablesByProject), ctx, projectID)
}

// DeleteModule mocks base method.
func (m *MockAllStorage) DeleteModule(ctx context.Context, projectID domain.ProjectID, ID domain.ModuleID) (*domain.Module, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteModule", ctx, projectID, ID)
	ret0, _ := ret[0].(*domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteModule indicates an expected call of DeleteModule.
func (mr *MockAllStorageMockRecorder) DeleteModule(ctx, projectID, ID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteModule", reflect.TypeOf((*MockAllStorage)(nil).DeleteModule), ctx, projectID, ID)
}

// DeleteProject mocks base method.
func (m *MockAllStorage) DeleteProject(ctx context.Context, ID domain.ProjectID) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteProject", ctx, ID)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteProject indicates an expected call of DeleteProject.
func (mr *MockAllStorageMockRecorder) DeleteProject(ctx, ID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteProject", reflect.TypeOf((*MockAllStorage)(nil).DeleteProject), ctx, ID)
}

// DeliverablesByProject mocks base method.
func (m *MockAllStorage) DeliverablesByProject(ctx context.Context, projectID domain.ProjectID) ([]domain.Deliverable, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeliverablesByProject", ctx, projectID)
	ret0, _ := ret[0].([]domain.Deliverable)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeliverablesByProject indicates an expected call of DeliverablesByProject.
func (mr *MockAllStorageMockRecorder) DeliverablesByProject(ctx, projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeliverablesByProject", reflect.TypeOf((*MockAllStorage)(nil).DeliverablesByProject), ctx, projectID)
}

// ModuleByID mocks base method.
func (m *MockAllStorage) ModuleByID(ctx context.Context, projectID domain.ProjectID, ID domain.ModuleID) (*domain.Module, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ModuleByID", ctx, projectID, ID)
	ret0, _ := ret[0].(*domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ModuleByID indicates an expected call of ModuleByID.
func (mr *MockAllStorageMockRecorder) ModuleByID(ctx, projectID, ID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ModuleByID", reflect.TypeOf((*MockAllStorage)(nil).ModuleByID), ctx, projectID, ID)
}

// ProjectByID mocks base method.
func (m *MockAllStorage) ProjectByID(ctx context.Context, ID domain.ProjectID) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProjectByID", ctx, ID)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProjectByID indicates an expected call of ProjectByID.
func (mr *MockAllStorageMockRecorder) ProjectByID(ctx, ID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProjectByID", reflect.TypeOf((*MockAllStorage)(nil).ProjectByID), ctx, ID)
}

// ProjectByName mocks base method.
func (m *MockAllStorage) ProjectByName(ctx context.Context, name string) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProjectByName", ctx, name)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProjectByName indicates an expected call of ProjectByName.
func (mr *MockAllStorageMockRecorder) ProjectByName(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProjectByName", reflect.TypeOf((*MockAllStorage)(nil).ProjectByName), ctx, name)
}

// Projects mocks base method.
func (m *MockAllStorage) Projects(ctx context.Context, typeFilter domain.ProjectType, cursor time.Time, limit uint) (storage.ProjectPage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Projects", ctx, typeFilter, cursor, limit)
	ret0, _ := ret[0].(storage.ProjectPage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Projects indicates an expected call of Projects.
func (mr *MockAllStorageMockRecorder) Projects(ctx, typeFilter, cursor, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Projects", reflect.TypeOf((*MockAllStorage)(nil).Projects), ctx, typeFilter, cursor, limit)
}

// StoreDeliverables mocks base method.
func (m *MockAllStorage) StoreDeliverables(ctx context.Context, deliverables ...domain.Deliverable) ([]domain.Deliverable, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range deliverables {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreDeliverables", varargs...)
	ret0, _ := ret[0].([]domain.Deliverable)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreDeliverables indicates an expected call of StoreDeliverables.
func (mr *MockAllStorageMockRecorder) StoreDeliverables(ctx any, deliverables ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, deliverables...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreDeliverables", reflect.TypeOf((*MockAllStorage)(nil).StoreDeliverables), varargs...)
}

// StoreModules mocks base method.
func (m *MockAllStorage) StoreModules(ctx context.Context, projectID domain.ProjectID, parent *domain.ModuleID, modules ...domain.Module) ([]domain.Module, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, projectID, parent}
	for _, a := range modules {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreModules", varargs...)
	ret0, _ := ret[0].([]domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreModules indicates an expected call of StoreModules.
func (mr *MockAllStorageMockRecorder) StoreModules(ctx, projectID, parent any, modules ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, projectID, parent}, modules...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreModules", reflect.TypeOf((*MockAllStorage)(nil).StoreModules), varargs...)
}

// StoreProjects mocks base method.
func (m *MockAllStorage) StoreProjects(ctx context.Context, projects ...domain.Project) ([]domain.Project, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range projects {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreProjects", varargs...)
	ret0, _ := ret[0].([]domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreProjects indicates an expected call of StoreProjects.
func (mr *MockAllStorageMockRecorder) StoreProjects(ctx any, projects ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, projects...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreProjects", reflect.TypeOf((*MockAllStorage)(nil).StoreProjects), varargs...)
}

// UpdateDeliverableByID mocks base method.
func (m *MockAllStorage) UpdateDeliverableByID(ctx context.Context, projectID domain.ProjectID, ID domain.DeliverableID, updates storage.DeliverableUpdates) (*domain.Deliverable, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDeliverableByID", ctx, projectID, ID, updates)
	ret0, _ := ret[0].(*domain.Deliverable)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateDeliverableByID indicates an expected call of UpdateDeliverableByID.
func (mr *MockAllStorageMockRecorder) UpdateDeliverableByID(ctx, projectID, ID, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDeliverableByID", reflect.TypeOf((*MockAllStorage)(nil).UpdateDeliverableByID), ctx, projectID, ID, updates)
}

// UpdateModuleByID mocks base method.
func (m *MockAllStorage) UpdateModuleByID(ctx context.Context, projectID domain.ProjectID, ID domain.ModuleID, updates storage.ModuleUpdates) (*domain.Module, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateModuleByID", ctx, projectID, ID, updates)
	ret0, _ := ret[0].(*domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateModuleByID indicates an expected call of UpdateModuleByID.
func (mr *MockAllStorageMockRecorder) UpdateModuleByID(ctx, projectID, ID, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateModuleByID", reflect.TypeOf((*MockAllStorage)(nil).UpdateModuleByID), ctx, projectID, ID, updates)
}

// UpdateProjectByID mocks base method.
func (m *MockAllStorage) UpdateProjectByID(ctx context.Context, ID domain.ProjectID, updates storage.ProjectUpdates) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProjectByID", ctx, ID, updates)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateProjectByID indicates an expected call of UpdateProjectByID.
func (mr *MockAllStorageMockRecorder) UpdateProjectByID(ctx, ID, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProjectByID", reflect.TypeOf((*MockAllStorage)(nil).UpdateProjectByID), ctx, ID, updates)
}

// UpsertGateway mocks base method.
func (m *MockAllStorage) UpsertGateway(ctx context.Context, entity storage.EntityType, entityID uuid.UUID, key domain.GatewayKey, updates storage.GatewayUpdates) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertGateway", ctx, entity, entityID, key, updates)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertGateway indicates an expected call of UpsertGateway.
func (mr *MockAllStorageMockRecorder) UpsertGateway(ctx, entity, entityID, key, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertGateway", reflect.TypeOf((*MockAllStorage)(nil).UpsertGateway), ctx, entity, entityID, key, updates)
}

// MockTxStorage is a mock of TxStorage interface.
type MockTxStorage struct {
	ctrl     *gomock.Controller
	recorder *MockTxStorageMockRecorder
	isgomock struct{}
}

// MockTxStorageMockRecorder is the mock recorder for MockTxStorage.
type MockTxStorageMockRecorder struct {
	mock *MockTxStorage
}

// NewMockTxStorage creates a new mock instance.
func NewMockTxStorage(ctrl *gomock.Controller) *MockTxStorage {
	mock := &MockTxStorage{ctrl: ctrl}
	mock.recorder = &MockTxStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxStorage) EXPECT() *MockTxStorageMockRecorder {
	return m.recorder
}

// AddJob mocks base method.
func (m *MockTxStorage) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddJob", ctx, args, opts)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddJob indicates an expected call of AddJob.
func (mr *MockTxStorageMockRecorder) AddJob(ctx, args, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddJob", reflect.TypeOf((*MockTxStorage)(nil).AddJob), ctx, args, opts)
}

// AllProjects mocks base method.
func (m *MockTxStorage) AllProjects(ctx context.Context) ([]domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AllProjects", ctx)
	ret0, _ := ret[0].([]domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AllProjects indicates an expected call of AllProjects.
func (mr *MockTxStorageMockRecorder) AllProjects(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AllProjects", reflect.TypeOf((*MockTxStorage)(nil).AllProjects), ctx)
}

// Commit mocks base method.
func (m *MockTxStorage) Commit() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Commit")
	ret0, _ := ret[0].(error)
	return ret0
}

// Commit indicates an expected call of Commit.
func (mr *MockTxStorageMockRecorder) Commit() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Commit", reflect.TypeOf((*MockTxStorage)(nil).Commit))
}

// DeleteDeliverablesByProject mocks base method.
func (m *MockTxStorage) DeleteDeliverablesByProject(ctx context.Context, projectID domain.ProjectID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteDeliverablesByProject", ctx, projectID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteDeliverablesByProject indicates an expected call of DeleteDeliverablesByProject.
func (mr *MockTxStorageMockRecorder) DeleteDeliverablesByProject(ctx, projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteDeliverablesByProject", reflect.TypeOf((*MockTxStorage)(nil).DeleteDeliverablesByProject), ctx, projectID)
}

// DeleteModule mocks base method.
func (m *MockTxStorage) DeleteModule(ctx context.Context, projectID domain.ProjectID, ID domain.ModuleID) (*domain.Module, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteModule", ctx, projectID, ID)
	ret0, _ := ret[0].(*domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteModule indicates an expected call of DeleteModule.
func (mr *MockTxStorageMockRecorder) DeleteModule(ctx, projectID, ID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteModule", reflect.TypeOf((*MockTxStorage)(nil).DeleteModule), ctx, projectID, ID)
}

// DeleteProject mocks base method.
func (m *MockTxStorage) DeleteProject(ctx context.Context, ID domain.ProjectID) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteProject", ctx, ID)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteProject indicates an expected call of DeleteProject.
func (mr *MockTxStorageMockRecorder) DeleteProject(ctx, ID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteProject", reflect.TypeOf((*MockTxStorage)(nil).DeleteProject), ctx, ID)
}

// DeliverablesByProject mocks base method.
func (m *MockTxStorage) DeliverablesByProject(ctx context.Context, projectID domain.ProjectID) ([]domain.Deliverable, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeliverablesByProject", ctx, projectID)
	ret0, _ := ret[0].([]domain.Deliverable)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeliverablesByProject indicates an expected call of DeliverablesByProject.
func (mr *MockTxStorageMockRecorder) DeliverablesByProject(ctx, projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeliverablesByProject", reflect.TypeOf((*MockTxStorage)(nil).DeliverablesByProject), ctx, projectID)
}

// ModuleByID mocks base method.
func (m *MockTxStorage) ModuleByID(ctx context.Context, projectID domain.ProjectID, ID domain.ModuleID) (*domain.Module, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ModuleByID", ctx, projectID, ID)
	ret0, _ := ret[0].(*domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ModuleByID indicates an expected call of ModuleByID.
func (mr *MockTxStorageMockRecorder) ModuleByID(ctx, projectID, ID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ModuleByID", reflect.TypeOf((*MockTxStorage)(nil).ModuleByID), ctx, projectID, ID)
}

// ProjectByID mocks base method.
func (m *MockTxStorage) ProjectByID(ctx context.Context, ID domain.ProjectID) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProjectByID", ctx, ID)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProjectByID indicates an expected call of ProjectByID.
func (mr *MockTxStorageMockRecorder) ProjectByID(ctx, ID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProjectByID", reflect.TypeOf((*MockTxStorage)(nil).ProjectByID), ctx, ID)
}

// ProjectByName mocks base method.
func (m *MockTxStorage) ProjectByName(ctx context.Context, name string) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProjectByName", ctx, name)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProjectByName indicates an expected call of ProjectByName.
func (mr *MockTxStorageMockRecorder) ProjectByName(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProjectByName", reflect.TypeOf((*MockTxStorage)(nil).ProjectByName), ctx, name)
}

// Projects mocks base method.
func (m *MockTxStorage) Projects(ctx context.Context, typeFilter domain.ProjectType, cursor time.Time, limit uint) (storage.ProjectPage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Projects", ctx, typeFilter, cursor, limit)
	ret0, _ := ret[0].(storage.ProjectPage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Projects indicates an expected call of Projects.
func (mr *MockTxStorageMockRecorder) Projects(ctx, typeFilter, cursor, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Projects", reflect.TypeOf((*MockTxStorage)(nil).Projects), ctx, typeFilter, cursor, limit)
}

// Rollback mocks base method.
func (m *MockTxStorage) Rollback() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Rollback")
	ret0, _ := ret[0].(error)
	return ret0
}

// Rollback indicates an expected call of Rollback.
func (mr *MockTxStorageMockRecorder) Rollback() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rollback", reflect.TypeOf((*MockTxStorage)(nil).Rollback))
}

// StoreDeliverables mocks base method.
func (m *MockTxStorage) StoreDeliverables(ctx context.Context, deliverables ...domain.Deliverable) ([]domain.Deliverable, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range deliverables {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreDeliverables", varargs...)
	ret0, _ := ret[0].([]domain.Deliverable)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreDeliverables indicates an expected call of StoreDeliverables.
func (mr *MockTxStorageMockRecorder) StoreDeliverables(ctx any, deliverables ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, deliverables...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreDeliverables", reflect.TypeOf((*MockTxStorage)(nil).StoreDeliverables), varargs...)
}

// StoreModules mocks base method.
func (m *MockTxStorage) StoreModules(ctx context.Context, projectID domain.ProjectID, parent *domain.ModuleID, modules ...domain.Module) ([]domain.Module, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, projectID, parent}
	for _, a := range modules {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreModules", varargs...)
	ret0, _ := ret[0].([]domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreModules indicates an expected call of StoreModules.
func (mr *MockTxStorageMockRecorder) StoreModules(ctx, projectID, parent any, modules ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, projectID, parent}, modules...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreModules", reflect.TypeOf((*MockTxStorage)(nil).StoreModules), varargs...)
}

// StoreProjects mocks base method.
func (m *MockTxStorage) StoreProjects(ctx context.Context, projects ...domain.Project) ([]domain.Project, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range projects {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreProjects", varargs...)
	ret0, _ := ret[0].([]domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreProjects indicates an expected call of StoreProjects.
func (mr *MockTxStorageMockRecorder) StoreProjects(ctx any, projects ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, projects...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreProjects", reflect.TypeOf((*MockTxStorage)(nil).StoreProjects), varargs...)
}

// UpdateDeliverableByID mocks base method.
func (m *MockTxStorage) UpdateDeliverableByID(ctx context.Context, projectID domain.ProjectID, ID domain.DeliverableID, updates storage.DeliverableUpdates) (*domain.Deliverable, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDeliverableByID", ctx, projectID, ID, updates)
	ret0, _ := ret[0].(*domain.Deliverable)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateDeliverableByID indicates an expected call of UpdateDeliverableByID.
func (mr *MockTxStorageMockRecorder) UpdateDeliverableByID(ctx, projectID, ID, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDeliverableByID", reflect.TypeOf((*MockTxStorage)(nil).UpdateDeliverableByID), ctx, projectID, ID, updates)
}

// UpdateModuleByID mocks base method.
func (m *MockTxStorage) UpdateModuleByID(ctx context.Context, projectID domain.ProjectID, ID domain.ModuleID, updates storage.ModuleUpdates) (*domain.Module, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateModuleByID", ctx, projectID, ID, updates)
	ret0, _ := ret[0].(*domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateModuleByID indicates an expected call of UpdateModuleByID.
func (mr *MockTxStorageMockRecorder) UpdateModuleByID(ctx, projectID, ID, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateModuleByID", reflect.TypeOf((*MockTxStorage)(nil).UpdateModuleByID), ctx, projectID, ID, updates)
}

// UpdateProjectByID mocks base method.
func (m *MockTxStorage) UpdateProjectByID(ctx context.Context, ID domain.ProjectID, updates storage.ProjectUpdates) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProjectByID", ctx, ID, updates)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateProjectByID indicates an expected call of UpdateProjectByID.
func (mr *MockTxStorageMockRecorder) UpdateProjectByID(ctx, ID, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProjectByID", reflect.TypeOf((*MockTxStorage)(nil).UpdateProjectByID), ctx, ID, updates)
}

// UpsertGateway mocks base method.
func (m *MockTxStorage) UpsertGateway(ctx context.Context, entity storage.EntityType, entityID uuid.UUID, key domain.GatewayKey, updates storage.GatewayUpdates) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertGateway", ctx, entity, entityID, key, updates)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertGateway indicates an expected call of UpsertGateway.
func (mr *MockTxStorageMockRecorder) UpsertGateway(ctx, entity, entityID, key, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertGateway", reflect.TypeOf((*MockTxStorage)(nil).UpsertGateway), ctx, entity, entityID, key, updates)
}

// MockStorage is a mock of Storage interface.
type MockStorage struct {
	ctrl     *gomock.Controller
	recorder *MockStorageMockRecorder
	isgomock struct{}
}

// MockStorageMockRecorder is the mock recorder for MockStorage.
type MockStorageMockRecorder struct {
	mock *MockStorage
}

// NewMockStorage creates a new mock instance.
func NewMockStorage(ctrl *gomock.Controller) *MockStorage {
	mock := &MockStorage{ctrl: ctrl}
	mock.recorder = &MockStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorage) EXPECT() *MockStorageMockRecorder {
	return m.recorder
}

// AddJob mocks base method.
func (m *MockStorage) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddJob", ctx, args, opts)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddJob indicates an expected call of AddJob.
func (mr *MockStorageMockRecorder) AddJob(ctx, args, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddJob", reflect.TypeOf((*MockStorage)(nil).AddJob), ctx, args, opts)
}

// AllProjects mocks base method.
func (m *MockStorage) AllProjects(ctx context.Context) ([]domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AllProjects", ctx)
	ret0, _ := ret[0].([]domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AllProjects indicates an expected call of AllProjects.
func (mr *MockStorageMockRecorder) AllProjects(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AllProjects", reflect.TypeOf((*MockStorage)(nil).AllProjects), ctx)
}

// Begin mocks base method.
func (m *MockStorage) Begin(ctx context.Context) (storage.TxStorage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin", ctx)
	ret0, _ := ret[0].(storage.TxStorage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Begin indicates an expected call of Begin.
func (mr *MockStorageMockRecorder) Begin(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockStorage)(nil).Begin), ctx)
}

// Close mocks base method.
func (m *MockStorage) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockStorageMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockStorage)(nil).Close))
}

// DeleteDeliverablesByProject mocks base method.
func (m *MockStorage) DeleteDeliverablesByProject(ctx context.Context, projectID domain.ProjectID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteDeliverablesByProject", ctx, projectID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteDeliverablesByProject indicates an expected call of DeleteDeliverablesByProject.
func (mr *MockStorageMockRecorder) DeleteDeliverablesByProject(ctx, projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteDeliverablesByProject", reflect.TypeOf((*MockStorage)(nil).DeleteDeliverablesByProject), ctx, projectID)
}

// DeleteModule mocks base method.
func (m *MockStorage) DeleteModule(ctx context.Context, projectID domain.ProjectID, ID domain.ModuleID) (*domain.Module, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteModule", ctx, projectID, ID)
	ret0, _ := ret[0].(*domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteModule indicates an expected call of DeleteModule.
func (mr *MockStorageMockRecorder) DeleteModule(ctx, projectID, ID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteModule", reflect.TypeOf((*MockStorage)(nil).DeleteModule), ctx, projectID, ID)
}

// DeleteProject mocks base method.
func (m *MockStorage) DeleteProject(ctx context.Context, ID domain.ProjectID) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteProject", ctx, ID)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteProject indicates an expected call of DeleteProject.
func (mr *MockStorageMockRecorder) DeleteProject(ctx, ID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteProject", reflect.TypeOf((*MockStorage)(nil).DeleteProject), ctx, ID)
}

// DeliverablesByProject mocks base method.
func (m *MockStorage) DeliverablesByProject(ctx context.Context, projectID domain.ProjectID) ([]domain.Deliverable, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeliverablesByProject", ctx, projectID)
	ret0, _ := ret[0].([]domain.Deliverable)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeliverablesByProject indicates an expected call of DeliverablesByProject.
func (mr *MockStorageMockRecorder) DeliverablesByProject(ctx, projectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeliverablesByProject", reflect.TypeOf((*MockStorage)(nil).DeliverablesByProject), ctx, projectID)
}

// ModuleByID mocks base method.
func (m *MockStorage) ModuleByID(ctx context.Context, projectID domain.ProjectID, ID domain.ModuleID) (*domain.Module, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ModuleByID", ctx, projectID, ID)
	ret0, _ := ret[0].(*domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ModuleByID indicates an expected call of ModuleByID.
func (mr *MockStorageMockRecorder) ModuleByID(ctx, projectID, ID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ModuleByID", reflect.TypeOf((*MockStorage)(nil).ModuleByID), ctx, projectID, ID)
}

// ProjectByID mocks base method.
func (m *MockStorage) ProjectByID(ctx context.Context, ID domain.ProjectID) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProjectByID", ctx, ID)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProjectByID indicates an expected call of ProjectByID.
func (mr *MockStorageMockRecorder) ProjectByID(ctx, ID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProjectByID", reflect.TypeOf((*MockStorage)(nil).ProjectByID), ctx, ID)
}

// ProjectByName mocks base method.
func (m *MockStorage) ProjectByName(ctx context.Context, name string) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProjectByName", ctx, name)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProjectByName indicates an expected call of ProjectByName.
func (mr *MockStorageMockRecorder) ProjectByName(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProjectByName", reflect.TypeOf((*MockStorage)(nil).ProjectByName), ctx, name)
}

// Projects mocks base method.
func (m *MockStorage) Projects(ctx context.Context, typeFilter domain.ProjectType, cursor time.Time, limit uint) (storage.ProjectPage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Projects", ctx, typeFilter, cursor, limit)
	ret0, _ := ret[0].(storage.ProjectPage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Projects indicates an expected call of Projects.
func (mr *MockStorageMockRecorder) Projects(ctx, typeFilter, cursor, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Projects", reflect.TypeOf((*MockStorage)(nil).Projects), ctx, typeFilter, cursor, limit)
}

// StoreDeliverables mocks base method.
func (m *MockStorage) StoreDeliverables(ctx context.Context, deliverables ...domain.Deliverable) ([]domain.Deliverable, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range deliverables {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreDeliverables", varargs...)
	ret0, _ := ret[0].([]domain.Deliverable)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreDeliverables indicates an expected call of StoreDeliverables.
func (mr *MockStorageMockRecorder) StoreDeliverables(ctx any, deliverables ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, deliverables...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreDeliverables", reflect.TypeOf((*MockStorage)(nil).StoreDeliverables), varargs...)
}

// StoreModules mocks base method.
func (m *MockStorage) StoreModules(ctx context.Context, projectID domain.ProjectID, parent *domain.ModuleID, modules ...domain.Module) ([]domain.Module, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, projectID, parent}
	for _, a := range modules {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreModules", varargs...)
	ret0, _ := ret[0].([]domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreModules indicates an expected call of StoreModules.
func (mr *MockStorageMockRecorder) StoreModules(ctx, projectID, parent any, modules ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, projectID, parent}, modules...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreModules", reflect.TypeOf((*MockStorage)(nil).StoreModules), varargs...)
}

// StoreProjects mocks base method.
func (m *MockStorage) StoreProjects(ctx context.Context, projects ...domain.Project) ([]domain.Project, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range projects {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreProjects", varargs...)
	ret0, _ := ret[0].([]domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreProjects indicates an expected call of StoreProjects.
func (mr *MockStorageMockRecorder) StoreProjects(ctx any, projects ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, projects...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreProjects", reflect.TypeOf((*MockStorage)(nil).StoreProjects), varargs...)
}

// UpdateDeliverableByID mocks base method.
func (m *MockStorage) UpdateDeliverableByID(ctx context.Context, projectID domain.ProjectID, ID domain.DeliverableID, updates storage.DeliverableUpdates) (*domain.Deliverable, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDeliverableByID", ctx, projectID, ID, updates)
	ret0, _ := ret[0].(*domain.Deliverable)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateDeliverableByID indicates an expected call of UpdateDeliverableByID.
func (mr *MockStorageMockRecorder) UpdateDeliverableByID(ctx, projectID, ID, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDeliverableByID", reflect.TypeOf((*MockStorage)(nil).UpdateDeliverableByID), ctx, projectID, ID, updates)
}

// UpdateModuleByID mocks base method.
func (m *MockStorage) UpdateModuleByID(ctx context.Context, projectID domain.ProjectID, ID domain.ModuleID, updates storage.ModuleUpdates) (*domain.Module, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateModuleByID", ctx, projectID, ID, updates)
	ret0, _ := ret[0].(*domain.Module)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateModuleByID indicates an expected call of UpdateModuleByID.
func (mr *MockStorageMockRecorder) UpdateModuleByID(ctx, projectID, ID, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateModuleByID", reflect.TypeOf((*MockStorage)(nil).UpdateModuleByID), ctx, projectID, ID, updates)
}

// UpdateProjectByID mocks base method.
func (m *MockStorage) UpdateProjectByID(ctx context.Context, ID domain.ProjectID, updates storage.ProjectUpdates) (*domain.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProjectByID", ctx, ID, updates)
	ret0, _ := ret[0].(*domain.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateProjectByID indicates an expected call of UpdateProjectByID.
func (mr *MockStorageMockRecorder) UpdateProjectByID(ctx, ID, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProjectByID", reflect.TypeOf((*MockStorage)(nil).UpdateProjectByID), ctx, ID, updates)
}

// UpsertGateway mocks base method.
func (m *MockStorage) UpsertGateway(ctx context.Context, entity storage.EntityType, entityID uuid.UUID, key domain.GatewayKey, updates storage.GatewayUpdates) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertGateway", ctx, entity, entityID, key, updates)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertGateway indicates an expected call of UpsertGateway.
func (mr *MockStorageMockRecorder) UpsertGateway(ctx, entity, entityID, key, updates any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertGateway", reflect.TypeOf((*MockStorage)(nil).UpsertGateway), ctx, entity, entityID, key, updates)
}

// WithTx mocks base method.
func (m *MockStorage) WithTx(ctx context.Context, cb func(storage.AllStorage) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTx", ctx, cb)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithTx indicates an expected call of WithTx.
func (mr *MockStorageMockRecorder) WithTx(ctx, cb any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTx", reflect.TypeOf((*MockStorage)(nil).WithTx), ctx, cb)
}
