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
	"go.uber.org/mock/gomock"
)

func TestShiftTypeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	shiftTypes := mocks.NewMockShiftTypeServiceInterface(ctrl)
	h := handlers.NewShiftTypeHandler(shiftTypes)
	s := testutils.SetupAuthenticatedHTTPTest(testutils.NewUserFactory().Admin())
	s.Router.GET("/api/shift-types", h.ListShiftTypes)
	s.Router.POST("/api/admin/shift-types", h.CreateShiftType)
	s.Router.DELETE("/api/admin/shift-types/:id", h.DeleteShiftType)

	t.Run("list", func(t *testing.T) {
		night := testutils.NewShiftTypeFactory().WithTimes("Night", "22:00", "06:00")
		shiftTypes.EXPECT().GetAll().Return([]models.ShiftType{*night}, nil)

		w := s.MakeRequest(http.MethodGet, "/api/shift-types", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"end_time":"06:00"`)
	})

	t.Run("create overnight", func(t *testing.T) {
		shiftTypes.EXPECT().
			Create(&service.ShiftTypeRequest{Name: "Night", StartTime: "22:00", EndTime: "06:00"}).
			Return(testutils.NewShiftTypeFactory().WithTimes("Night", "22:00", "06:00"), nil)

		w := s.MakeRequest(http.MethodPost, "/api/admin/shift-types", map[string]string{
			"name": "Night", "start_time": "22:00", "end_time": "06:00",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("delete in use", func(t *testing.T) {
		id := uuid.New()
		shiftTypes.EXPECT().Delete(id).Return(apperrors.ErrReferencedEntity)

		w := s.MakeRequest(http.MethodDelete, "/api/admin/shift-types/"+id.String(), nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		shiftTypes.EXPECT().GetAll().Return(nil, errors.New("boom"))

		w := s.MakeRequest(http.MethodGet, "/api/shift-types", nil)

		testutils.AssertErrorResponse(t, w, http.StatusInternalServerError, "internal server error")
	})
}

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboardServiceInterface(ctrl)
	s := testutils.SetupAuthenticatedHTTPTest(testutils.NewUserFactory().Admin())
	s.Router.GET("/api/admin/dashboard", handlers.NewDashboardHandler(dashboard).GetDashboard)

	dashboard.EXPECT().Get().Return(&service.DashboardResponse{
		Week:      "2024-W12",
		Users:     service.UserCounts{Total: 4, Inspectors: 2},
		Buildings: 3,
		ResponsesByStatus: map[models.AssignmentStatus]int64{
			models.AssignmentStatusPending:  1,
			models.AssignmentStatusAccepted: 2,
			models.AssignmentStatusRejected: 0,
		},
	}, nil)

	w := s.MakeRequest(http.MethodGet, "/api/admin/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got service.DashboardResponse
	testutils.ParseJSONResponse(t, w, &got)
	assert.Equal(t, "2024-W12", got.Week)
	assert.Equal(t, int64(2), got.ResponsesByStatus[models.AssignmentStatusAccepted])
}
