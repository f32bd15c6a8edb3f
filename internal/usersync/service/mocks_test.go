package service

import (
	"context"

	"usersync/internal/usersync/model"

	"github.com/stretchr/testify/mock"
)

type MockUserClient struct {
	mock.Mock
}

func (m *MockUserClient) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserClient) GetUser(ctx context.Context, userID int) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserClient) CreateUser(ctx context.Context, req model.UserCreate) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserClient) UpdateUser(ctx context.Context, userID int, req model.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserClient) DeleteUser(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockReportWriter struct {
	mock.Mock
}

func (m *MockReportWriter) WriteMissingEmails(users []model.User) (string, error) {
	args := m.Called(users)
	return args.String(0), args.Error(1)
}

func (m *MockReportWriter) WriteUpdateErrors(logs []model.ErrorLog) (string, error) {
	args := m.Called(logs)
	return args.String(0), args.Error(1)
}

type MockRunRepository struct {
	mock.Mock
}

func (m *MockRunRepository) CreateRun(ctx context.Context, run *model.ReconcileRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunRepository) FindRuns(ctx context.Context, req model.GetReconcileRunsReq) ([]*model.ReconcileRun, int64, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.ReconcileRun), args.Get(1).(int64), args.Error(2)
}

func (m *MockRunRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
