//go:build integration
// +build integration

package repository_test

import (
	"inspection-scheduler-backend/internal/repository"
	"testing"
	"time"

	"inspection-scheduler-backend/internal/database"
	"inspection-scheduler-backend/internal/database/models"
	"inspection-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WeeklyAssignmentRepositoryTestSuite tests the aggregate write paths of
// WeeklyAssignmentRepository and InspectorGroupRepository
type WeeklyAssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.WeeklyAssignmentRepository
	groups        *repository.InspectorGroupRepository
	factories     *testutils.FactorySet

	building  *models.Building
	role      *models.Role
	shiftType *models.ShiftType
	inspector *models.User
	backup    *models.User
}

func (suite *WeeklyAssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = repository.NewWeeklyAssignmentRepository(suite.baseTestSuite.DB)
	suite.groups = repository.NewInspectorGroupRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds the rows every aggregate references
func (suite *WeeklyAssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	db := suite.baseTestSuite.DB

	suite.inspector = suite.factories.User.Inspector()
	suite.backup = suite.factories.User.Inspector()
	suite.Require().NoError(repository.NewUserRepository(db).Create(suite.inspector))
	suite.Require().NoError(repository.NewUserRepository(db).Create(suite.backup))

	suite.role = suite.factories.Role.Create()
	suite.Require().NoError(repository.NewCatalogRepository[models.Role](db).Create(suite.role))

	suite.shiftType = suite.factories.ShiftType.Create()
	suite.Require().NoError(repository.NewShiftTypeRepository(db).Create(suite.shiftType))

	suite.building = suite.factories.Building.Create()
	suite.Require().NoError(repository.NewBuildingRepository(db).Create(suite.building))
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *WeeklyAssignmentRepositoryTestSuite) newAssignment(week string, inspectorIDs ...uuid.UUID) *models.WeeklyShiftAssignment {
	group := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, inspectorIDs...)
	return suite.factories.WeeklyAssignment.WithGroups(suite.building.ID, week, group)
}

func (suite *WeeklyAssignmentRepositoryTestSuite) count(model interface{}) int64 {
	var n int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(model).Count(&n).Error)
	return n
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestCreate_LoadsAggregate() {
	assignment := suite.newAssignment("2024-W12", suite.inspector.ID, suite.backup.ID)
	suite.Require().NoError(suite.repo.Create(assignment))

	got, err := suite.repo.GetByID(assignment.ID)
	suite.Require().NoError(err)

	suite.Equal("2024-W12", got.Week)
	suite.Equal(suite.building.Code, got.Building.Code)
	suite.Require().Len(got.InspectorGroups, 1)
	group := got.InspectorGroups[0]
	suite.Equal(suite.role.Name, group.Role.Name)
	suite.Require().Len(group.Inspectors, 2)
	suite.True(group.Inspectors[0].IsPrimary)
	suite.Equal(suite.inspector.ID, group.Inspectors[0].InspectorID)
	suite.Equal(models.AssignmentStatusPending, group.Inspectors[1].Status)
	suite.Require().Len(group.Days, 7)
	suite.Equal(0, group.Days[0].DayOfWeek)
	suite.Equal(suite.shiftType.Name, group.Days[0].ShiftType.Name)
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestCreate_FailedGroupLeavesNothing() {
	good := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, suite.inspector.ID)
	bad := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, uuid.New())
	assignment := suite.factories.WeeklyAssignment.WithGroups(suite.building.ID, "2024-W12", good, bad)

	err := suite.repo.Create(assignment)

	suite.Require().Error(err)
	suite.True(database.IsForeignKeyViolation(err))
	suite.Zero(suite.count(&models.WeeklyShiftAssignment{}))
	suite.Zero(suite.count(&models.InspectorGroup{}))
	suite.Zero(suite.count(&models.GroupInspector{}))
	suite.Zero(suite.count(&models.DailyShiftType{}))
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestCreate_OnePerBuildingAndWeek() {
	suite.Require().NoError(suite.repo.Create(suite.newAssignment("2024-W12", suite.inspector.ID)))

	err := suite.repo.Create(suite.newAssignment("2024-W12", suite.backup.ID))

	suite.True(database.IsUniqueViolation(err))
	suite.Equal(int64(1), suite.count(&models.WeeklyShiftAssignment{}))
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestList_Filters() {
	suite.Require().NoError(suite.repo.Create(suite.newAssignment("2024-W12", suite.inspector.ID)))
	suite.Require().NoError(suite.repo.Create(suite.newAssignment("2024-W13", suite.inspector.ID)))

	all, total, err := suite.repo.List(repository.AssignmentFilter{BuildingID: &suite.building.ID}, 20, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal("2024-W13", all[0].Week)

	week, total, err := suite.repo.List(repository.AssignmentFilter{Week: "2024-W12"}, 20, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(week[0].InspectorGroups, 1)
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestUpdate_ReplacesAndAppendsGroups() {
	assignment := suite.newAssignment("2024-W12", suite.inspector.ID)
	suite.Require().NoError(suite.repo.Create(assignment))
	existingID := assignment.InspectorGroups[0].ID

	replaced := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, suite.backup.ID)
	replaced.ID = existingID
	replaced.Days = replaced.Days[:1]
	added := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, suite.inspector.ID)
	added.ID = uuid.Nil
	reason := "short staffed"
	assignment.Status = models.AssignmentStatusRejected
	assignment.RejectionReason = &reason

	suite.Require().NoError(suite.repo.Update(assignment, []models.InspectorGroup{replaced, added}))

	got, err := suite.repo.GetByID(assignment.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusRejected, got.Status)
	suite.Equal("short staffed", *got.RejectionReason)
	suite.Require().Len(got.InspectorGroups, 2)
	suite.Equal(existingID, got.InspectorGroups[0].ID)
	suite.Require().Len(got.InspectorGroups[0].Inspectors, 1)
	suite.Equal(suite.backup.ID, got.InspectorGroups[0].Inspectors[0].InspectorID)
	suite.Len(got.InspectorGroups[0].Days, 1)
	suite.Len(got.InspectorGroups[1].Days, 7)
}

func (suite *WeeklyAssignmentRepositoryTestSuite) findGroup(assignment *models.WeeklyShiftAssignment, id uuid.UUID) models.InspectorGroup {
	for _, g := range assignment.InspectorGroups {
		if g.ID == id {
			return g
		}
	}
	suite.FailNow("group not found", id.String())
	return models.InspectorGroup{}
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestUpdate_OmittedGroupKeepsChildren() {
	first := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, suite.inspector.ID)
	second := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, suite.backup.ID)
	assignment := suite.factories.WeeklyAssignment.WithGroups(suite.building.ID, "2024-W12", first, second)
	suite.Require().NoError(suite.repo.Create(assignment))
	firstID := assignment.InspectorGroups[0].ID
	secondID := assignment.InspectorGroups[1].ID

	reason := "Overlaps with training"
	updated, err := suite.groups.UpdateInspectorResponse(secondID, suite.backup.ID, models.AssignmentStatusRejected, &reason, time.Now())
	suite.Require().NoError(err)
	suite.Require().True(updated)

	replaced := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, suite.backup.ID)
	replaced.ID = firstID
	replaced.Days = []models.DailyShiftType{{DayOfWeek: 3, ShiftTypeID: suite.shiftType.ID}}
	suite.Require().NoError(suite.repo.Update(assignment, []models.InspectorGroup{replaced}))

	got, err := suite.repo.GetByID(assignment.ID)
	suite.Require().NoError(err)
	suite.Require().Len(got.InspectorGroups, 2)

	changed := suite.findGroup(got, firstID)
	suite.Require().Len(changed.Inspectors, 1)
	suite.Equal(suite.backup.ID, changed.Inspectors[0].InspectorID)
	suite.Require().Len(changed.Days, 1)
	suite.Equal(3, changed.Days[0].DayOfWeek)

	untouched := suite.findGroup(got, secondID)
	suite.Require().Len(untouched.Inspectors, 1)
	suite.Equal(suite.backup.ID, untouched.Inspectors[0].InspectorID)
	suite.True(untouched.Inspectors[0].IsPrimary)
	suite.Equal(models.AssignmentStatusRejected, untouched.Inspectors[0].Status)
	suite.Require().NotNil(untouched.Inspectors[0].RejectionReason)
	suite.Equal("Overlaps with training", *untouched.Inspectors[0].RejectionReason)
	suite.Len(untouched.Days, 7)
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestUpdate_FailedGroupRollsBack() {
	assignment := suite.newAssignment("2024-W12", suite.inspector.ID)
	suite.Require().NoError(suite.repo.Create(assignment))
	existingID := assignment.InspectorGroups[0].ID

	replaced := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, suite.backup.ID)
	replaced.ID = existingID
	replaced.Days = replaced.Days[:1]
	broken := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, uuid.New())
	broken.ID = uuid.Nil
	reason := "short staffed"
	assignment.Status = models.AssignmentStatusRejected
	assignment.RejectionReason = &reason

	err := suite.repo.Update(assignment, []models.InspectorGroup{replaced, broken})

	suite.Require().Error(err)
	suite.True(database.IsForeignKeyViolation(err))

	got, err := suite.repo.GetByID(assignment.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusPending, got.Status)
	suite.Nil(got.RejectionReason)
	suite.Require().Len(got.InspectorGroups, 1)
	group := got.InspectorGroups[0]
	suite.Equal(existingID, group.ID)
	suite.Require().Len(group.Inspectors, 1)
	suite.Equal(suite.inspector.ID, group.Inspectors[0].InspectorID)
	suite.Len(group.Days, 7)
	suite.Equal(int64(1), suite.count(&models.InspectorGroup{}))
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestUpdate_NotFound() {
	missing := suite.factories.WeeklyAssignment.Create(suite.building.ID, "2024-W12")

	err := suite.repo.Update(missing, nil)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestDelete_RemovesWholeAggregate() {
	assignment := suite.newAssignment("2024-W12", suite.inspector.ID, suite.backup.ID)
	suite.Require().NoError(suite.repo.Create(assignment))

	suite.Require().NoError(suite.repo.Delete(assignment.ID))

	suite.Zero(suite.count(&models.WeeklyShiftAssignment{}))
	suite.Zero(suite.count(&models.InspectorGroup{}))
	suite.Zero(suite.count(&models.GroupInspector{}))
	suite.Zero(suite.count(&models.DailyShiftType{}))
	suite.ErrorIs(suite.repo.Delete(assignment.ID), gorm.ErrRecordNotFound)
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestAcceptKeepsDayBindings() {
	group := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, suite.inspector.ID)
	group.Days = []models.DailyShiftType{{DayOfWeek: 1, ShiftTypeID: suite.shiftType.ID}}
	assignment := suite.factories.WeeklyAssignment.WithGroups(suite.building.ID, "2024-W12", group)
	suite.Require().NoError(suite.repo.Create(assignment))
	groupID := assignment.InspectorGroups[0].ID

	updated, err := suite.groups.UpdateInspectorResponse(groupID, suite.inspector.ID, models.AssignmentStatusAccepted, nil, time.Now())
	suite.Require().NoError(err)
	suite.True(updated)

	got, err := suite.repo.GetByID(assignment.ID)
	suite.Require().NoError(err)
	inspector := got.InspectorGroups[0].Inspectors[0]
	suite.Equal(suite.inspector.ID, inspector.InspectorID)
	suite.True(inspector.IsPrimary)
	suite.Equal(models.AssignmentStatusAccepted, inspector.Status)
	suite.NotNil(inspector.RespondedAt)
	suite.Require().Len(got.InspectorGroups[0].Days, 1)
	suite.Equal(1, got.InspectorGroups[0].Days[0].DayOfWeek)
	suite.Equal(suite.shiftType.ID, got.InspectorGroups[0].Days[0].ShiftTypeID)
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestUpdateInspectorResponse_NotBound() {
	assignment := suite.newAssignment("2024-W12", suite.inspector.ID)
	suite.Require().NoError(suite.repo.Create(assignment))

	updated, err := suite.groups.UpdateInspectorResponse(assignment.InspectorGroups[0].ID, suite.backup.ID, models.AssignmentStatusAccepted, nil, time.Now())

	suite.Require().NoError(err)
	suite.False(updated)
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestGroupCreate_FindsOrCreatesAssignment() {
	first := suite.factories.WeeklyAssignment.Create(suite.building.ID, "2024-W20")
	first.ID = uuid.Nil
	g1 := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, suite.inspector.ID)
	suite.Require().NoError(suite.groups.Create(first, &g1))

	second := suite.factories.WeeklyAssignment.Create(suite.building.ID, "2024-W20")
	second.ID = uuid.Nil
	g2 := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, suite.backup.ID)
	suite.Require().NoError(suite.groups.Create(second, &g2))

	suite.Equal(first.ID, second.ID)
	suite.Equal(int64(1), suite.count(&models.WeeklyShiftAssignment{}))
	suite.Equal(int64(2), suite.count(&models.InspectorGroup{}))
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestGroupCreate_UnknownAssignment() {
	missing := suite.factories.WeeklyAssignment.Create(suite.building.ID, "2024-W20")
	group := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, suite.inspector.ID)

	err := suite.groups.Create(missing, &group)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestListForInspectorAndMembership() {
	assignment := suite.newAssignment("2024-W12", suite.inspector.ID, suite.backup.ID)
	suite.Require().NoError(suite.repo.Create(assignment))
	groupID := assignment.InspectorGroups[0].ID

	groups, err := suite.groups.ListForInspector(suite.backup.ID)
	suite.Require().NoError(err)
	suite.Require().Len(groups, 1)
	suite.Equal(groupID, groups[0].ID)
	suite.Equal("2024-W12", groups[0].WeeklyShiftAssignment.Week)

	member, err := suite.groups.IsInspectorOfGroup(groupID, suite.backup.ID)
	suite.Require().NoError(err)
	suite.True(member)

	replaced := suite.factories.WeeklyAssignment.Group(suite.role.ID, suite.shiftType.ID, suite.inspector.ID)
	replaced.ID = groupID
	replaced.WeeklyShiftAssignmentID = assignment.ID
	suite.Require().NoError(suite.groups.Replace(&replaced))

	member, err = suite.groups.IsInspectorOfGroup(groupID, suite.backup.ID)
	suite.Require().NoError(err)
	suite.False(member)
}

func (suite *WeeklyAssignmentRepositoryTestSuite) TestGroupDelete() {
	assignment := suite.newAssignment("2024-W12", suite.inspector.ID)
	suite.Require().NoError(suite.repo.Create(assignment))

	suite.Require().NoError(suite.groups.Delete(assignment.InspectorGroups[0].ID))

	suite.Zero(suite.count(&models.InspectorGroup{}))
	suite.Zero(suite.count(&models.GroupInspector{}))
	suite.Equal(int64(1), suite.count(&models.WeeklyShiftAssignment{}))
	suite.ErrorIs(suite.groups.Delete(assignment.InspectorGroups[0].ID), gorm.ErrRecordNotFound)
}

func TestWeeklyAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WeeklyAssignmentRepositoryTestSuite))
}
