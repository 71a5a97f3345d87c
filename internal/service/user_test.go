package service_test

import (
	"errors"
	"testing"

	"inspection-scheduler-backend/internal/auth"
	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/mocks"
	"inspection-scheduler-backend/internal/repository"
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

type UserServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockAgencyRepo *mocks.MockCatalogRepositoryInterface[models.Agency]
	userService    *service.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockAgencyRepo = mocks.NewMockCatalogRepositoryInterface[models.Agency](suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockAgencyRepo, validator.New())
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestRegister_CreatesEmployeeWithoutFlags() {
	req := &service.RegisterRequest{
		Username: "  Jane.Doe@Example.com ",
		FullName: "Jane Doe",
		Password: "s3cret-pass",
	}

	suite.mockUserRepo.EXPECT().GetByUsername("jane.doe@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(suite.T(), "jane.doe@example.com", u.Username)
		assert.False(suite.T(), u.IsAdmin)
		assert.False(suite.T(), u.IsManager)
		assert.False(suite.T(), u.IsInspector)
		assert.True(suite.T(), auth.CheckPassword(u.PasswordHash, "s3cret-pass"))
		return nil
	})

	user, err := suite.userService.Register(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Jane Doe", user.FullName)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	suite.mockUserRepo.EXPECT().GetByUsername("jane@example.com").Return(&models.User{Username: "jane@example.com"}, nil)

	user, err := suite.userService.Register(&service.RegisterRequest{
		Username: "jane@example.com",
		FullName: "Jane",
		Password: "password1",
	})

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

func (suite *UserServiceTestSuite) TestRegister_UniqueViolationOnInsert() {
	suite.mockUserRepo.EXPECT().GetByUsername(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

	_, err := suite.userService.Register(&service.RegisterRequest{
		Username: "jane@example.com",
		FullName: "Jane",
		Password: "password1",
	})

	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *UserServiceTestSuite) TestRegister_ValidationError() {
	_, err := suite.userService.Register(&service.RegisterRequest{Username: "not-an-email", FullName: "X", Password: "short"})

	require.Error(suite.T(), err)
	var verrs validator.ValidationErrors
	assert.True(suite.T(), errors.As(err, &verrs))
}

func (suite *UserServiceTestSuite) TestCreate_WithFlagsAndAgency() {
	agencyID := uuid.New()
	suite.mockAgencyRepo.EXPECT().GetByID(agencyID).Return(&models.Agency{}, nil)
	suite.mockUserRepo.EXPECT().GetByUsername("insp@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.True(suite.T(), u.IsInspector)
		assert.True(suite.T(), u.IsManager)
		assert.False(suite.T(), u.IsAdmin)
		require.NotNil(suite.T(), u.AgencyID)
		assert.Equal(suite.T(), agencyID, *u.AgencyID)
		return nil
	})

	_, err := suite.userService.Create(&service.CreateUserRequest{
		Username:    "insp@example.com",
		FullName:    "Ina Spector",
		Password:    "password1",
		IsManager:   true,
		IsInspector: true,
		AgencyID:    &agencyID,
	})

	assert.NoError(suite.T(), err)
}

func (suite *UserServiceTestSuite) TestCreate_UnknownAgency() {
	agencyID := uuid.New()
	suite.mockAgencyRepo.EXPECT().GetByID(agencyID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.Create(&service.CreateUserRequest{
		Username: "insp@example.com",
		FullName: "Ina Spector",
		Password: "password1",
		AgencyID: &agencyID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAgencyNotFound)
}

func (suite *UserServiceTestSuite) TestList_DefaultPagination() {
	users := []models.User{{Username: "a@example.com"}, {Username: "b@example.com"}}
	suite.mockUserRepo.EXPECT().
		GetAll(repository.UserFilter{Query: "doe", Role: models.UserRoleInspector}, 20, 0).
		Return(users, int64(2), nil)

	resp, err := suite.userService.List("doe", models.UserRoleInspector, 0, 0)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), resp.Total)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
	assert.Len(suite.T(), resp.Users, 2)
}

func (suite *UserServiceTestSuite) TestList_CustomPagination() {
	suite.mockUserRepo.EXPECT().GetAll(repository.UserFilter{}, 10, 20).Return([]models.User{}, int64(25), nil)

	resp, err := suite.userService.List("", "", 3, 10)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, resp.Page)
	assert.Equal(suite.T(), 10, resp.PageSize)
}

func (suite *UserServiceTestSuite) TestList_InvalidRole() {
	_, err := suite.userService.List("", models.UserRole("owner"), 1, 20)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestListInspectors() {
	suite.mockUserRepo.EXPECT().
		GetAll(repository.UserFilter{Role: models.UserRoleInspector}, -1, -1).
		Return([]models.User{{IsInspector: true}}, int64(1), nil)

	users, err := suite.userService.ListInspectors()

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), users, 1)
}

func (suite *UserServiceTestSuite) TestUpdate_PartialWithPassword() {
	id := uuid.New()
	existing := &models.User{Username: "jane@example.com", FullName: "Jane", PasswordHash: "old"}
	existing.ID = id
	newName := "Jane Q. Doe"
	newPassword := "brand-new-pass"
	isAdmin := true

	suite.mockUserRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(suite.T(), "Jane Q. Doe", u.FullName)
		assert.Equal(suite.T(), "jane@example.com", u.Username)
		assert.True(suite.T(), u.IsAdmin)
		assert.True(suite.T(), auth.CheckPassword(u.PasswordHash, "brand-new-pass"))
		return nil
	})
	suite.mockUserRepo.EXPECT().GetByID(id).Return(existing, nil)

	user, err := suite.userService.Update(id, &service.UpdateUserRequest{
		FullName: &newName,
		Password: &newPassword,
		IsAdmin:  &isAdmin,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, user.ID)
}

func (suite *UserServiceTestSuite) TestUpdate_UsernameTaken() {
	id := uuid.New()
	existing := &models.User{Username: "jane@example.com"}
	existing.ID = id
	other := &models.User{Username: "john@example.com"}
	other.ID = uuid.New()
	username := "john@example.com"

	suite.mockUserRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockUserRepo.EXPECT().GetByUsername("john@example.com").Return(other, nil)

	_, err := suite.userService.Update(id, &service.UpdateUserRequest{Username: &username})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

func (suite *UserServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.Update(id, &service.UpdateUserRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestDelete() {
	callerID := uuid.New()

	tests := []struct {
		name     string
		id       uuid.UUID
		repoErr  error
		callRepo bool
		check    func(err error)
	}{
		{
			name:     "success",
			id:       uuid.New(),
			callRepo: true,
			check:    func(err error) { assert.NoError(suite.T(), err) },
		},
		{
			name:  "self delete refused",
			id:    callerID,
			check: func(err error) { assert.ErrorIs(suite.T(), err, apperrors.ErrCannotDeleteSelf) },
		},
		{
			name:     "not found",
			id:       uuid.New(),
			repoErr:  gorm.ErrRecordNotFound,
			callRepo: true,
			check:    func(err error) { assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound) },
		},
		{
			name:     "still referenced",
			id:       uuid.New(),
			repoErr:  &pgconn.PgError{Code: "23503"},
			callRepo: true,
			check:    func(err error) { assert.True(suite.T(), apperrors.IsConflict(err)) },
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			if tt.callRepo {
				suite.mockUserRepo.EXPECT().Delete(tt.id).Return(tt.repoErr)
			}
			tt.check(suite.userService.Delete(tt.id, callerID))
		})
	}
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
