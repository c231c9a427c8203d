package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Jupiter-12/kanban/internal/adapter/http/dto"
	"github.com/Jupiter-12/kanban/internal/adapter/http/handlers"
	"github.com/Jupiter-12/kanban/internal/adapter/http/middleware"
	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ownerActor = domain.User{ID: 1, Username: "owner", Role: domain.RoleOwner, Active: true}

func newUserRouter(serviceMock *userServiceMock, actor domain.User) *gin.Engine {
	handler := handlers.NewUserHandler(serviceMock)
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), authAs(actor))
	group.GET("/users", handler.ListActive)
	group.GET("/users/all", handler.ListAll)
	group.PUT("/users/:id/role", handler.ChangeRole)
	group.PUT("/users/:id/active", handler.SetActive)
	group.DELETE("/users/:id", handler.Delete)
	return router
}

func TestUserHandler_ListActive(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("ListActive", mock.Anything).
		Return([]domain.User{
			{ID: 1, Username: "owner", Role: domain.RoleOwner, Active: true},
			{ID: 3, Username: "alice", Role: domain.RoleUser, Active: true},
		}, nil).Once()
	router := newUserRouter(serviceMock, testActor)

	rec := doRequest(router, authedReq(http.MethodGet, "/api/users", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_ListAll_Forbidden(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("ListAll", mock.Anything, testActor).
		Return(nil, domain.ErrPermissionDenied).Once()
	router := newUserRouter(serviceMock, testActor)

	rec := doRequest(router, authedReq(http.MethodGet, "/api/users/all", ""))

	require.Equal(t, http.StatusForbidden, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_ChangeRole_Success(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("ChangeRole", mock.Anything, ownerActor, uint64(3), domain.RoleAdmin).
		Return(domain.User{ID: 3, Username: "alice", Role: domain.RoleAdmin, Active: true}, nil).Once()
	router := newUserRouter(serviceMock, ownerActor)

	rec := doRequest(router, authedReq(http.MethodPut, "/api/users/3/role", `{"role":"admin"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "admin", got.Role)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_ChangeRole_RejectsOwnerRole(t *testing.T) {
	router := newUserRouter(new(userServiceMock), ownerActor)

	// "owner" is not grantable.
	rec := doRequest(router, authedReq(http.MethodPut, "/api/users/3/role", `{"role":"owner"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_SetActive_SelfUpdate(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("SetActive", mock.Anything, ownerActor, uint64(1), false).
		Return(domain.User{}, domain.ErrOwnerSelfUpdate).Once()
	router := newUserRouter(serviceMock, ownerActor)

	rec := doRequest(router, authedReq(http.MethodPut, "/api/users/1/active", `{"active":false}`))

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The owner account cannot modify itself.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_Delete_Success(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("Delete", mock.Anything, ownerActor, uint64(4)).Return(nil).Once()
	router := newUserRouter(serviceMock, ownerActor)

	rec := doRequest(router, authedReq(http.MethodDelete, "/api/users/4", ""))

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}
