package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"inspection-scheduler-backend/internal/api/handlers"
	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/mocks"
	"inspection-scheduler-backend/internal/service"
	"inspection-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	userService *mocks.MockUserServiceInterface
	admin       *models.User
	http        *testutils.HTTPTestSuite
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.userService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.admin = testutils.NewUserFactory().Admin()

	h := handlers.NewUserHandler(suite.userService)
	suite.http = testutils.SetupAuthenticatedHTTPTest(suite.admin)
	suite.http.Router.POST("/api/register", h.Register)
	suite.http.Router.GET("/api/users", h.ListUsers)
	suite.http.Router.GET("/api/users/:id", h.GetUser)
	suite.http.Router.DELETE("/api/users/:id", h.DeleteUser)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestRegister_Created() {
	user := testutils.NewUserFactory().WithUsername("jane@example.com")
	suite.userService.EXPECT().Register(gomock.Any()).DoAndReturn(func(req *service.RegisterRequest) (*models.User, error) {
		suite.Equal("jane@example.com", req.Username)
		return user, nil
	})

	w := suite.http.MakeRequest(http.MethodPost, "/api/register", map[string]string{
		"username": "jane@example.com", "full_name": "Jane Doe", "password": "longenough",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var got models.User
	testutils.ParseJSONResponse(suite.T(), w, &got)
	suite.Equal(user.ID, got.ID)
	suite.NotContains(w.Body.String(), "password")
}

func (suite *UserHandlerTestSuite) TestRegister_DuplicateIsBadRequest() {
	suite.userService.EXPECT().Register(gomock.Any()).Return(nil, apperrors.ErrUserExists)

	w := suite.http.MakeRequest(http.MethodPost, "/api/register", map[string]string{
		"username": "jane@example.com", "full_name": "Jane Doe", "password": "longenough",
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "already exists")
}

func (suite *UserHandlerTestSuite) TestRegister_MalformedBody() {
	w := suite.http.MakeRequest(http.MethodPost, "/api/register", "{not json")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestListUsers_PassesFilters() {
	suite.userService.EXPECT().List("jane", models.UserRoleInspector, 2, 10).
		Return(&service.UserListResponse{Users: []models.User{}, Total: 0, Page: 2, PageSize: 10}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/users?q=jane&role=inspector&page=2&page_size=10", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *UserHandlerTestSuite) TestGetUser() {
	suite.Run("invalid id", func() {
		w := suite.http.MakeRequest(http.MethodGet, "/api/users/not-a-uuid", nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid user ID")
	})
	suite.Run("not found", func() {
		id := uuid.New()
		suite.userService.EXPECT().GetByID(id).Return(nil, apperrors.ErrUserNotFound)
		w := suite.http.MakeRequest(http.MethodGet, "/api/users/"+id.String(), nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "user not found")
	})
	suite.Run("unexpected error is hidden", func() {
		id := uuid.New()
		suite.userService.EXPECT().GetByID(id).Return(nil, errors.New("pq: connection reset"))
		w := suite.http.MakeRequest(http.MethodGet, "/api/users/"+id.String(), nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "internal server error")
		suite.NotContains(w.Body.String(), "connection reset")
	})
}

func (suite *UserHandlerTestSuite) TestDeleteUser_UsesCaller() {
	id := uuid.New()
	suite.userService.EXPECT().Delete(id, suite.admin.ID).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/api/users/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteUser_Self() {
	suite.userService.EXPECT().Delete(suite.admin.ID, suite.admin.ID).Return(apperrors.ErrCannotDeleteSelf)

	w := suite.http.MakeRequest(http.MethodDelete, "/api/users/"+suite.admin.ID.String(), nil)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
