package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"

	"usersync/internal/usersync/handler"
	"usersync/internal/usersync/model"
	"usersync/internal/usersync/router"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

type MockUserSyncService struct {
	mock.Mock
}

func (m *MockUserSyncService) GetUsersMissingEmail(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserSyncService) UpdateMissingEmails(ctx context.Context) ([]model.User, []model.ErrorLog, error) {
	args := m.Called(ctx)
	var users []model.User
	var logs []model.ErrorLog
	if args.Get(0) != nil {
		users = args.Get(0).([]model.User)
	}
	if args.Get(1) != nil {
		logs = args.Get(1).([]model.ErrorLog)
	}
	return users, logs, args.Error(2)
}

func (m *MockUserSyncService) GetReconcileRuns(ctx context.Context, req model.GetReconcileRunsReq) (*model.GetReconcileRunsResp, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GetReconcileRunsResp), args.Error(1)
}

func SetupServer(svc *MockUserSyncService) *echo.Echo {
	e := echo.New()
	router.RegisterRoutes(e, handler.NewUserHandler(svc))
	return e
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
