package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"inspection-scheduler-backend/internal/api/handlers"
	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/mocks"
	"inspection-scheduler-backend/internal/service"
	"inspection-scheduler-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockCatalogServiceInterface[models.Role]
	http    *testutils.HTTPTestSuite
}

func (suite *CatalogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockCatalogServiceInterface[models.Role](suite.ctrl)

	h := handlers.NewCatalogHandler[models.Role](suite.service, "role")
	suite.http = testutils.SetupAuthenticatedHTTPTest(testutils.NewUserFactory().Admin())
	suite.http.Router.GET("/api/roles", h.List)
	suite.http.Router.GET("/api/roles/:id", h.Get)
	suite.http.Router.POST("/api/admin/roles", h.Create)
	suite.http.Router.PUT("/api/admin/roles/:id", h.Update)
	suite.http.Router.DELETE("/api/admin/roles/:id", h.Delete)
}

func (suite *CatalogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogHandlerTestSuite) TestList() {
	suite.service.EXPECT().GetAll().Return([]models.Role{*testutils.NewRoleFactory().WithName("Lead")}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/roles", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got []models.Role
	testutils.ParseJSONResponse(suite.T(), w, &got)
	suite.Require().Len(got, 1)
	suite.Equal("Lead", got[0].Name)
}

func (suite *CatalogHandlerTestSuite) TestGet_InvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/api/roles/abc", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid role ID")
}

func (suite *CatalogHandlerTestSuite) TestCreate() {
	role := testutils.NewRoleFactory().WithName("Lead")
	suite.service.EXPECT().Create(&service.CatalogRequest{Name: "Lead"}).Return(role, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/api/admin/roles", map[string]string{"name": "Lead"})

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *CatalogHandlerTestSuite) TestCreate_Errors() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"duplicate", apperrors.ErrRoleExists, http.StatusConflict},
		{"validation", fmt.Errorf("validation failed: %w", validator.ValidationErrors{}), http.StatusBadRequest},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.service.EXPECT().Create(gomock.Any()).Return(nil, tc.err)
			w := suite.http.MakeRequest(http.MethodPost, "/api/admin/roles", map[string]string{"name": "Lead"})
			suite.Equal(tc.status, w.Code)
		})
	}
}

func (suite *CatalogHandlerTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	suite.service.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.ErrRoleNotFound)

	w := suite.http.MakeRequest(http.MethodPut, "/api/admin/roles/"+id.String(), map[string]string{"name": "Lead"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "role not found")
}

func (suite *CatalogHandlerTestSuite) TestDelete() {
	suite.Run("unused", func() {
		id := uuid.New()
		suite.service.EXPECT().Delete(id).Return(nil)
		w := suite.http.MakeRequest(http.MethodDelete, "/api/admin/roles/"+id.String(), nil)
		suite.Equal(http.StatusNoContent, w.Code)
	})
	suite.Run("still referenced", func() {
		id := uuid.New()
		suite.service.EXPECT().Delete(id).Return(apperrors.ErrReferencedEntity)
		w := suite.http.MakeRequest(http.MethodDelete, "/api/admin/roles/"+id.String(), nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "still referenced")
	})
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
