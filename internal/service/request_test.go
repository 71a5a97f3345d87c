package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/mocks"
	"inspection-scheduler-backend/internal/repository"
	"inspection-scheduler-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type RequestServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockRequestRepo      *mocks.MockRequestRepositoryInterface
	mockUserRepo         *mocks.MockUserRepositoryInterface
	mockNotificationRepo *mocks.MockNotificationRepositoryInterface
	requestService       *service.RequestService
}

func (suite *RequestServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRequestRepo = mocks.NewMockRequestRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockNotificationRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.requestService = service.NewRequestService(suite.mockRequestRepo, suite.mockUserRepo, suite.mockNotificationRepo, validator.New())
}

func (suite *RequestServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func newUser(fullName string, flags ...models.UserRole) *models.User {
	user := &models.User{FullName: fullName, Username: uuid.NewString() + "@example.com"}
	user.ID = uuid.New()
	for _, f := range flags {
		switch f {
		case models.UserRoleAdmin:
			user.IsAdmin = true
		case models.UserRoleManager:
			user.IsManager = true
		case models.UserRoleInspector:
			user.IsInspector = true
		}
	}
	return user
}

func pendingRequest(requesterID uuid.UUID, managerID *uuid.UUID) *models.Request {
	request := &models.Request{
		RequesterID: requesterID,
		Type:        models.RequestTypeLeave,
		Status:      models.RequestStatusPending,
		ManagerID:   managerID,
	}
	request.ID = uuid.New()
	return request
}

func (suite *RequestServiceTestSuite) TestCreate_Leave() {
	requesterID := uuid.New()
	requestID := uuid.New()

	suite.mockRequestRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.Request) error {
		assert.Equal(suite.T(), requesterID, r.RequesterID)
		assert.Equal(suite.T(), models.RequestStatusPending, r.Status)
		require.NotNil(suite.T(), r.StartDate)
		require.NotNil(suite.T(), r.EndDate)
		assert.Equal(suite.T(), time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), *r.StartDate)
		assert.Equal(suite.T(), time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC), *r.EndDate)
		assert.Nil(suite.T(), r.ShiftID)
		assert.Equal(suite.T(), "Family trip", r.Reason)
		r.ID = requestID
		return nil
	})
	suite.mockRequestRepo.EXPECT().GetByID(requestID).Return(&models.Request{Type: models.RequestTypeLeave}, nil)

	_, err := suite.requestService.Create(requesterID, &service.CreateRequestRequest{
		Type:      models.RequestTypeLeave,
		StartDate: "2024-03-18",
		EndDate:   "2024-03-22",
		Reason:    " Family trip ",
	})

	assert.NoError(suite.T(), err)
}

func (suite *RequestServiceTestSuite) TestCreate_LeaveSingleDay() {
	suite.mockRequestRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockRequestRepo.EXPECT().GetByID(gomock.Any()).Return(&models.Request{}, nil)

	_, err := suite.requestService.Create(uuid.New(), &service.CreateRequestRequest{
		Type:      models.RequestTypeLeave,
		StartDate: "2024-03-18",
		EndDate:   "2024-03-18",
	})

	assert.NoError(suite.T(), err)
}

func (suite *RequestServiceTestSuite) TestCreate_LeaveInvalid() {
	testCases := []struct {
		name      string
		startDate string
		endDate   string
		wantErr   error
	}{
		{name: "end before start", startDate: "2024-03-22", endDate: "2024-03-18", wantErr: apperrors.ErrInvalidDateRange},
		{name: "missing start", endDate: "2024-03-18"},
		{name: "missing end", startDate: "2024-03-18"},
		{name: "bad format", startDate: "18/03/2024", endDate: "2024-03-22"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.requestService.Create(uuid.New(), &service.CreateRequestRequest{
				Type:      models.RequestTypeLeave,
				StartDate: tc.startDate,
				EndDate:   tc.endDate,
			})

			require.Error(suite.T(), err)
			assert.True(suite.T(), apperrors.IsValidation(err))
			if tc.wantErr != nil {
				assert.ErrorIs(suite.T(), err, tc.wantErr)
			}
		})
	}
}

func (suite *RequestServiceTestSuite) TestCreate_ShiftSwap() {
	shiftID := uuid.New()
	targetID := uuid.New()

	suite.mockRequestRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.Request) error {
		assert.Equal(suite.T(), models.RequestTypeShiftSwap, r.Type)
		assert.Equal(suite.T(), &shiftID, r.ShiftID)
		assert.Equal(suite.T(), &targetID, r.TargetShiftID)
		assert.Nil(suite.T(), r.StartDate)
		return nil
	})
	suite.mockRequestRepo.EXPECT().GetByID(gomock.Any()).Return(&models.Request{}, nil)

	_, err := suite.requestService.Create(uuid.New(), &service.CreateRequestRequest{
		Type:          models.RequestTypeShiftSwap,
		ShiftID:       &shiftID,
		TargetShiftID: &targetID,
	})

	assert.NoError(suite.T(), err)
}

func (suite *RequestServiceTestSuite) TestCreate_ShiftSwapRequiresShift() {
	_, err := suite.requestService.Create(uuid.New(), &service.CreateRequestRequest{Type: models.RequestTypeShiftSwap})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *RequestServiceTestSuite) TestCreate_UnknownType() {
	_, err := suite.requestService.Create(uuid.New(), &service.CreateRequestRequest{Type: "VACATION"})

	var verrs validator.ValidationErrors
	assert.True(suite.T(), errors.As(err, &verrs))
}

func (suite *RequestServiceTestSuite) TestList_Scopes() {
	employee := newUser("Emma Employee")
	manager := newUser("Mark Manager", models.UserRoleManager)
	admin := newUser("Ada Admin", models.UserRoleAdmin)

	testCases := []struct {
		name       string
		caller     *models.User
		scope      string
		wantFilter repository.RequestFilter
		wantErr    error
	}{
		{name: "default is own", caller: employee, scope: "", wantFilter: repository.RequestFilter{RequesterID: &employee.ID}},
		{name: "own", caller: manager, scope: service.RequestScopeOwn, wantFilter: repository.RequestFilter{RequesterID: &manager.ID}},
		{name: "assigned for manager", caller: manager, scope: service.RequestScopeAssigned, wantFilter: repository.RequestFilter{ManagerID: &manager.ID}},
		{name: "assigned for admin", caller: admin, scope: service.RequestScopeAssigned, wantFilter: repository.RequestFilter{ManagerID: &admin.ID}},
		{name: "all for admin", caller: admin, scope: service.RequestScopeAll, wantFilter: repository.RequestFilter{}},
		{name: "assigned for employee", caller: employee, scope: service.RequestScopeAssigned, wantErr: apperrors.ErrNotAuthorized},
		{name: "all for manager", caller: manager, scope: service.RequestScopeAll, wantErr: apperrors.ErrNotAuthorized},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			if tc.wantErr == nil {
				suite.mockRequestRepo.EXPECT().List(tc.wantFilter, 20, 0).Return([]models.Request{}, int64(0), nil)
			}

			resp, err := suite.requestService.List(tc.caller, tc.scope, "", 0, 0)

			if tc.wantErr != nil {
				assert.ErrorIs(suite.T(), err, tc.wantErr)
				return
			}
			require.NoError(suite.T(), err)
			assert.Equal(suite.T(), 1, resp.Page)
		})
	}
}

func (suite *RequestServiceTestSuite) TestList_InvalidScopeAndStatus() {
	caller := newUser("Emma Employee")

	_, err := suite.requestService.List(caller, "everything", "", 1, 20)
	assert.True(suite.T(), apperrors.IsValidation(err))

	_, err = suite.requestService.List(caller, "", "DONE", 1, 20)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *RequestServiceTestSuite) TestList_StatusFilter() {
	caller := newUser("Emma Employee")
	suite.mockRequestRepo.EXPECT().
		List(repository.RequestFilter{RequesterID: &caller.ID, Status: models.RequestStatusApproved}, 10, 10).
		Return([]models.Request{{}}, int64(11), nil)

	resp, err := suite.requestService.List(caller, service.RequestScopeOwn, models.RequestStatusApproved, 2, 10)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(11), resp.Total)
	assert.Len(suite.T(), resp.Requests, 1)
}

func (suite *RequestServiceTestSuite) TestGet_Access() {
	requester := newUser("Emma Employee")
	manager := newUser("Mark Manager", models.UserRoleManager)
	admin := newUser("Ada Admin", models.UserRoleAdmin)
	stranger := newUser("Stan Stranger", models.UserRoleManager)
	request := pendingRequest(requester.ID, &manager.ID)

	for _, caller := range []*models.User{requester, manager, admin} {
		suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
		got, err := suite.requestService.Get(caller, request.ID)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), request, got)
	}

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	_, err := suite.requestService.Get(stranger, request.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestAccessDenied)
}

func (suite *RequestServiceTestSuite) TestGet_NotFound() {
	suite.mockRequestRepo.EXPECT().GetByID(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.requestService.Get(newUser("Ada Admin", models.UserRoleAdmin), uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestNotFound)
}

func (suite *RequestServiceTestSuite) TestResolve_ByAssignedManager() {
	ctx := context.Background()
	requester := newUser("Emma Employee")
	manager := newUser("Mark Manager", models.UserRoleManager)
	request := pendingRequest(requester.ID, &manager.ID)
	resolved := *request
	resolved.Status = models.RequestStatusApproved

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockRequestRepo.EXPECT().Resolve(request.ID, models.RequestStatusApproved, manager.ID, gomock.Any(), &manager.ID).Return(true, nil)
	suite.mockNotificationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		assert.Equal(suite.T(), requester.ID, n.UserID)
		assert.Equal(suite.T(), models.NotificationRequestResolved, n.Type)
		assert.Contains(suite.T(), n.Message, "approved by Mark Manager")
		assert.JSONEq(suite.T(), `{"requestId":"`+request.ID.String()+`"}`, string(n.Metadata))
		return nil
	})
	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(&resolved, nil)

	got, err := suite.requestService.Resolve(ctx, manager, request.ID, &service.ResolveRequestRequest{Status: models.RequestStatusApproved})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RequestStatusApproved, got.Status)
}

func (suite *RequestServiceTestSuite) TestResolve_ByAdmin() {
	admin := newUser("Ada Admin", models.UserRoleAdmin)
	request := pendingRequest(uuid.New(), nil)

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil).Times(2)
	suite.mockRequestRepo.EXPECT().Resolve(request.ID, models.RequestStatusRejected, admin.ID, gomock.Any(), (*uuid.UUID)(nil)).Return(true, nil)
	suite.mockNotificationRepo.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := suite.requestService.Resolve(context.Background(), admin, request.ID, &service.ResolveRequestRequest{Status: models.RequestStatusRejected})

	assert.NoError(suite.T(), err)
}

func (suite *RequestServiceTestSuite) TestResolve_NonReviewerLeavesRequestUnchanged() {
	requester := newUser("Emma Employee")
	assignedManager := newUser("Mark Manager", models.UserRoleManager)
	otherManager := newUser("Olga Other", models.UserRoleManager)

	testCases := []struct {
		name    string
		caller  *models.User
		manager *uuid.UUID
	}{
		{name: "unassigned manager", caller: otherManager, manager: &assignedManager.ID},
		{name: "requester", caller: requester, manager: &assignedManager.ID},
		{name: "manager of unassigned request", caller: otherManager, manager: nil},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			request := pendingRequest(requester.ID, tc.manager)
			suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)

			_, err := suite.requestService.Resolve(context.Background(), tc.caller, request.ID, &service.ResolveRequestRequest{Status: models.RequestStatusApproved})

			assert.ErrorIs(suite.T(), err, apperrors.ErrNotRequestReviewer)
			assert.True(suite.T(), apperrors.IsAuthorization(err))
			assert.Equal(suite.T(), models.RequestStatusPending, request.Status)
		})
	}
}

func (suite *RequestServiceTestSuite) TestResolve_AlreadyResolved() {
	admin := newUser("Ada Admin", models.UserRoleAdmin)
	request := pendingRequest(uuid.New(), nil)
	request.Status = models.RequestStatusApproved

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)

	_, err := suite.requestService.Resolve(context.Background(), admin, request.ID, &service.ResolveRequestRequest{Status: models.RequestStatusRejected})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestAlreadyResolved)
}

func (suite *RequestServiceTestSuite) TestResolve_LostRace() {
	admin := newUser("Ada Admin", models.UserRoleAdmin)
	request := pendingRequest(uuid.New(), nil)

	resolved := *request
	resolved.Status = models.RequestStatusRejected

	gomock.InOrder(
		suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil),
		suite.mockRequestRepo.EXPECT().Resolve(request.ID, models.RequestStatusApproved, admin.ID, gomock.Any(), (*uuid.UUID)(nil)).Return(false, nil),
		suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(&resolved, nil),
	)

	_, err := suite.requestService.Resolve(context.Background(), admin, request.ID, &service.ResolveRequestRequest{Status: models.RequestStatusApproved})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestAlreadyResolved)
}

func (suite *RequestServiceTestSuite) TestResolve_ReassignedBeforeUpdate() {
	previous := newUser("Mark Manager", models.UserRoleManager)
	successor := newUser("Nina Newer", models.UserRoleManager)
	request := pendingRequest(uuid.New(), &previous.ID)
	reassigned := *request
	reassigned.ManagerID = &successor.ID

	gomock.InOrder(
		suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil),
		suite.mockRequestRepo.EXPECT().Resolve(request.ID, models.RequestStatusApproved, previous.ID, gomock.Any(), &previous.ID).Return(false, nil),
		suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(&reassigned, nil),
	)

	_, err := suite.requestService.Resolve(context.Background(), previous, request.ID, &service.ResolveRequestRequest{Status: models.RequestStatusApproved})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotRequestReviewer)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *RequestServiceTestSuite) TestResolve_InvalidStatus() {
	_, err := suite.requestService.Resolve(context.Background(), newUser("Ada Admin", models.UserRoleAdmin), uuid.New(), &service.ResolveRequestRequest{Status: models.RequestStatusPending})

	var verrs validator.ValidationErrors
	assert.True(suite.T(), errors.As(err, &verrs))
}

func (suite *RequestServiceTestSuite) TestAssignManager() {
	requester := newUser("Emma Employee")
	manager := newUser("Mark Manager", models.UserRoleManager)
	request := pendingRequest(requester.ID, nil)
	request.Requester = requester

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockUserRepo.EXPECT().GetByID(manager.ID).Return(manager, nil)
	suite.mockRequestRepo.EXPECT().AssignManager(request.ID, manager.ID).Return(nil)
	suite.mockNotificationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		assert.Equal(suite.T(), manager.ID, n.UserID)
		assert.Equal(suite.T(), models.NotificationRequestAssigned, n.Type)
		assert.Contains(suite.T(), n.Message, "Emma Employee's leave request")
		return nil
	})
	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)

	_, err := suite.requestService.AssignManager(context.Background(), request.ID, &service.AssignManagerRequest{ManagerID: manager.ID})

	assert.NoError(suite.T(), err)
}

func (suite *RequestServiceTestSuite) TestAssignManager_Rejections() {
	request := pendingRequest(uuid.New(), nil)
	notManager := newUser("Ina Spector", models.UserRoleInspector)

	suite.Run("unknown user", func() {
		suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
		suite.mockUserRepo.EXPECT().GetByID(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.requestService.AssignManager(context.Background(), request.ID, &service.AssignManagerRequest{ManagerID: uuid.New()})
		assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
	})

	suite.Run("not a manager", func() {
		suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
		suite.mockUserRepo.EXPECT().GetByID(notManager.ID).Return(notManager, nil)

		_, err := suite.requestService.AssignManager(context.Background(), request.ID, &service.AssignManagerRequest{ManagerID: notManager.ID})
		assert.ErrorIs(suite.T(), err, apperrors.ErrNotAManager)
	})

	suite.Run("already resolved", func() {
		resolved := pendingRequest(uuid.New(), nil)
		resolved.Status = models.RequestStatusRejected
		suite.mockRequestRepo.EXPECT().GetByID(resolved.ID).Return(resolved, nil)

		_, err := suite.requestService.AssignManager(context.Background(), resolved.ID, &service.AssignManagerRequest{ManagerID: uuid.New()})
		assert.ErrorIs(suite.T(), err, apperrors.ErrRequestAlreadyResolved)
	})
}

func TestRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RequestServiceTestSuite))
}
