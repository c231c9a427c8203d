package tests

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/Jupiter-12/kanban/internal/adapter/http/middleware"
	"github.com/Jupiter-12/kanban/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, clientIP, username, password string) (string, error) {
	args := m.Called(ctx, clientIP, username, password)
	return args.String(0), args.Error(1)
}

func (m *authServiceMock) Logout(ctx context.Context, token string) {
	m.Called(ctx, token)
}

func (m *authServiceMock) Authenticate(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) Create(ctx context.Context, actor domain.User, input domain.CreateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, actor, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) Get(ctx context.Context, actor domain.User, id uint64) (domain.Project, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) GetBoard(ctx context.Context, actor domain.User, id uint64, filter domain.TaskFilter) (domain.Board, error) {
	args := m.Called(ctx, actor, id, filter)
	return args.Get(0).(domain.Board), args.Error(1)
}

func (m *projectServiceMock) List(ctx context.Context, actor domain.User, page, pageSize int) ([]domain.Project, int, error) {
	args := m.Called(ctx, actor, page, pageSize)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Int(1), args.Error(2)
}

func (m *projectServiceMock) Update(ctx context.Context, actor domain.User, id uint64, input domain.UpdateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, actor, id, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) Delete(ctx context.Context, actor domain.User, id uint64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

type columnServiceMock struct {
	mock.Mock
}

func (m *columnServiceMock) Create(ctx context.Context, actor domain.User, projectID uint64, name string) (domain.Column, error) {
	args := m.Called(ctx, actor, projectID, name)
	return args.Get(0).(domain.Column), args.Error(1)
}

func (m *columnServiceMock) Rename(ctx context.Context, actor domain.User, id uint64, name string) (domain.Column, error) {
	args := m.Called(ctx, actor, id, name)
	return args.Get(0).(domain.Column), args.Error(1)
}

func (m *columnServiceMock) Delete(ctx context.Context, actor domain.User, id uint64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *columnServiceMock) Reorder(ctx context.Context, actor domain.User, orderedIDs []uint64) ([]domain.Column, error) {
	args := m.Called(ctx, actor, orderedIDs)

	var columns []domain.Column
	if value := args.Get(0); value != nil {
		columns = value.([]domain.Column)
	}
	return columns, args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Create(ctx context.Context, actor domain.User, columnID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, actor, columnID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, actor domain.User, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, actor, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, actor domain.User, id uint64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *taskServiceMock) Move(ctx context.Context, actor domain.User, id, targetColumnID uint64, position int) (domain.Task, error) {
	args := m.Called(ctx, actor, id, targetColumnID, position)
	return args.Get(0).(domain.Task), args.Error(1)
}

type commentServiceMock struct {
	mock.Mock
}

func (m *commentServiceMock) ListByTask(ctx context.Context, actor domain.User, taskID uint64) ([]domain.Comment, error) {
	args := m.Called(ctx, actor, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentServiceMock) Create(ctx context.Context, actor domain.User, taskID uint64, content string) (domain.Comment, error) {
	args := m.Called(ctx, actor, taskID, content)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) Delete(ctx context.Context, actor domain.User, id uint64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) ListActive(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) ListAll(ctx context.Context, actor domain.User) ([]domain.User, error) {
	args := m.Called(ctx, actor)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) ChangeRole(ctx context.Context, actor domain.User, id uint64, role domain.Role) (domain.User, error) {
	args := m.Called(ctx, actor, id, role)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) SetActive(ctx context.Context, actor domain.User, id uint64, active bool) (domain.User, error) {
	args := m.Called(ctx, actor, id, active)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) Delete(ctx context.Context, actor domain.User, id uint64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

const testToken = "test-token"

// authAs returns an auth middleware backed by a mock that resolves testToken
// to the given user. Requests must carry "Authorization: Bearer test-token".
func authAs(user domain.User) gin.HandlerFunc {
	authMock := new(authServiceMock)
	authMock.On("Authenticate", mock.Anything, testToken).Return(user, nil)
	return middleware.AuthMiddleware(authMock)
}

func doRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Accept-Language", "en")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
