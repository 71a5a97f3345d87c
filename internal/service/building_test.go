package service_test

import (
	"errors"
	"testing"

	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/mocks"
	"inspection-scheduler-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type BuildingServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockBuildingRepositoryInterface
	buildingService *service.BuildingService
}

func (suite *BuildingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockBuildingRepositoryInterface(suite.ctrl)
	suite.buildingService = service.NewBuildingService(suite.mockRepo, validator.New())
}

func (suite *BuildingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BuildingServiceTestSuite) TestCreate_WithCoordinators() {
	buildingID := uuid.New()
	supervisorID := uuid.New()
	coordinatorID := uuid.New()
	morningID := uuid.New()
	nightID := uuid.New()

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(b *models.Building) error {
		assert.Equal(suite.T(), "North Terminal", b.Name)
		assert.Equal(suite.T(), "NT-01", b.Code)
		assert.Equal(suite.T(), &supervisorID, b.SupervisorID)
		require.Len(suite.T(), b.Coordinators, 2)
		assert.Equal(suite.T(), coordinatorID, b.Coordinators[0].CoordinatorID)
		assert.Equal(suite.T(), morningID, b.Coordinators[0].ShiftTypeID)
		assert.Equal(suite.T(), nightID, b.Coordinators[1].ShiftTypeID)
		b.ID = buildingID
		return nil
	})
	suite.mockRepo.EXPECT().GetByID(buildingID).Return(&models.Building{Name: "North Terminal"}, nil)

	building, err := suite.buildingService.Create(&service.BuildingRequest{
		Name:         " North Terminal",
		Code:         "NT-01 ",
		SupervisorID: &supervisorID,
		Coordinators: []service.CoordinatorInput{
			{CoordinatorID: coordinatorID, ShiftTypeID: morningID},
			{CoordinatorID: coordinatorID, ShiftTypeID: nightID},
		},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "North Terminal", building.Name)
}

func (suite *BuildingServiceTestSuite) TestCreate_Errors() {
	testCases := []struct {
		name    string
		repoErr error
		check   func(error)
	}{
		{
			name:    "duplicate code",
			repoErr: &pgconn.PgError{Code: "23505"},
			check: func(err error) {
				assert.ErrorIs(suite.T(), err, apperrors.ErrBuildingExists)
			},
		},
		{
			name:    "unknown coordinator",
			repoErr: &pgconn.PgError{Code: "23503"},
			check: func(err error) {
				assert.True(suite.T(), apperrors.IsValidation(err))
			},
		},
		{
			name:    "database down",
			repoErr: errors.New("connection refused"),
			check: func(err error) {
				assert.False(suite.T(), apperrors.IsValidation(err))
				assert.False(suite.T(), apperrors.IsAlreadyExists(err))
			},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockRepo.EXPECT().Create(gomock.Any()).Return(tc.repoErr)

			_, err := suite.buildingService.Create(&service.BuildingRequest{Name: "North Terminal", Code: "NT-01"})

			require.Error(suite.T(), err)
			tc.check(err)
		})
	}
}

func (suite *BuildingServiceTestSuite) TestCreate_Validation() {
	_, err := suite.buildingService.Create(&service.BuildingRequest{
		Name:         "North Terminal",
		Code:         "NT-01",
		Coordinators: []service.CoordinatorInput{{CoordinatorID: uuid.New()}},
	})

	var verrs validator.ValidationErrors
	assert.True(suite.T(), errors.As(err, &verrs))
}

func (suite *BuildingServiceTestSuite) TestUpdate_NotFound() {
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(gorm.ErrRecordNotFound)

	_, err := suite.buildingService.Update(uuid.New(), &service.BuildingRequest{Name: "North Terminal", Code: "NT-01"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrBuildingNotFound)
}

func (suite *BuildingServiceTestSuite) TestUpdate_ReplacesCoordinators() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(b *models.Building) error {
		assert.Equal(suite.T(), id, b.ID)
		assert.NotNil(suite.T(), b.Coordinators)
		assert.Empty(suite.T(), b.Coordinators)
		return nil
	})
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Building{}, nil)

	_, err := suite.buildingService.Update(id, &service.BuildingRequest{Name: "North Terminal", Code: "NT-01"})

	assert.NoError(suite.T(), err)
}

func (suite *BuildingServiceTestSuite) TestGetAll() {
	suite.mockRepo.EXPECT().GetAll(20, 20).Return([]models.Building{{}}, int64(101), nil)

	resp, err := suite.buildingService.GetAll(2, 500)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 20, resp.PageSize)
	assert.Equal(suite.T(), int64(101), resp.Total)
}

func (suite *BuildingServiceTestSuite) TestDelete_WithAssignments() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(id).Return(&pgconn.PgError{Code: "23503"})

	assert.ErrorIs(suite.T(), suite.buildingService.Delete(id), apperrors.ErrReferencedEntity)
}

func (suite *BuildingServiceTestSuite) TestGetWithShifts() {
	reason := "Sick"
	inspector := &models.User{FullName: "Ina Spector"}
	group := models.InspectorGroup{
		RoleID: uuid.New(),
		Role:   &models.Role{},
		Inspectors: []models.GroupInspector{
			{InspectorID: uuid.New(), Inspector: inspector, IsPrimary: true, Status: models.AssignmentStatusRejected, RejectionReason: &reason},
		},
		Days: []models.DailyShiftType{
			{DayOfWeek: 0, ShiftType: &models.ShiftType{Name: "Morning", StartTime: "06:00", EndTime: "14:00"}},
			{DayOfWeek: 6},
		},
	}
	group.Role.Name = "Lead"
	building := models.Building{
		Name: "North Terminal",
		Code: "NT-01",
		WeeklyAssignments: []models.WeeklyShiftAssignment{
			{Week: "2024-W12", Status: models.AssignmentStatusPending, InspectorGroups: []models.InspectorGroup{group}},
		},
	}
	empty := models.Building{Name: "South Gate", Code: "SG-01"}

	suite.mockRepo.EXPECT().GetWithShifts("2024-W12").Return([]models.Building{building, empty}, nil)

	view, err := suite.buildingService.GetWithShifts("2024-W12")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), view, 2)
	require.Len(suite.T(), view[0].Assignments, 1)
	g := view[0].Assignments[0].Groups[0]
	assert.Equal(suite.T(), "Lead", g.RoleName)
	assert.Equal(suite.T(), "Sunday", g.Days[0].DayName)
	assert.Equal(suite.T(), "Morning", g.Days[0].ShiftTypeName)
	assert.Equal(suite.T(), "Saturday", g.Days[1].DayName)
	assert.Empty(suite.T(), g.Days[1].ShiftTypeName)
	assert.Equal(suite.T(), "Ina Spector", g.Inspectors[0].FullName)
	assert.Equal(suite.T(), &reason, g.Inspectors[0].RejectionReason)
	assert.NotNil(suite.T(), view[1].Assignments)
	assert.Empty(suite.T(), view[1].Assignments)
}

func (suite *BuildingServiceTestSuite) TestGetWithShifts_InvalidWeek() {
	_, err := suite.buildingService.GetWithShifts("2024-12")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidWeek)
}

func TestBuildingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BuildingServiceTestSuite))
}
