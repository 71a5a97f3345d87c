package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"inspection-scheduler-backend/internal/api/handlers"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/mocks"
	"inspection-scheduler-backend/internal/service"
	"inspection-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newDirectoryRouter(t *testing.T) (*testutils.HTTPTestSuite, *mocks.MockDirectoryServiceInterface) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockDirectoryServiceInterface(ctrl)
	s := testutils.SetupAuthenticatedHTTPTest(testutils.NewUserFactory().Admin())
	s.Router.GET("/api/admin/directory/search", handlers.NewDirectoryHandler(directory).Search)
	return s, directory
}

func TestDirectorySearch(t *testing.T) {
	s, directory := newDirectoryRouter(t)
	directory.EXPECT().SearchByCN("Jane").Return([]service.DirectoryUser{
		{DN: "cn=Jane Doe,ou=people,dc=example,dc=com", DisplayName: "Jane Doe", Mail: "jane@example.com"},
	}, nil)

	w := s.MakeRequest(http.MethodGet, "/api/admin/directory/search?q=+Jane+", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Result []service.DirectoryUser `json:"result"`
	}
	testutils.ParseJSONResponse(t, w, &body)
	assert.Len(t, body.Result, 1)
	assert.Equal(t, "jane@example.com", body.Result[0].Mail)
}

func TestDirectorySearch_MissingQuery(t *testing.T) {
	s, _ := newDirectoryRouter(t)

	w := s.MakeRequest(http.MethodGet, "/api/admin/directory/search?q=%20", nil)

	testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "missing query parameter")
}

func TestDirectorySearch_NotConfigured(t *testing.T) {
	s, directory := newDirectoryRouter(t)
	directory.EXPECT().SearchByCN("Jane").Return(nil, apperrors.ErrDirectoryNotConfigured)

	w := s.MakeRequest(http.MethodGet, "/api/admin/directory/search?q=Jane", nil)

	testutils.AssertErrorResponse(t, w, http.StatusServiceUnavailable, "LDAP_HOST")
}

func TestDirectorySearch_LDAPFailure(t *testing.T) {
	s, directory := newDirectoryRouter(t)
	directory.EXPECT().SearchByCN("Jane").Return(nil, errors.New("ldap bind failed: invalid credentials"))

	w := s.MakeRequest(http.MethodGet, "/api/admin/directory/search?q=Jane", nil)

	testutils.AssertErrorResponse(t, w, http.StatusBadGateway, "directory search failed")
}
