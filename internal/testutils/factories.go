package testutils

import (
	"fmt"
	"time"

	"inspection-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a plain employee with a unique username
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		FullName:     "Test User",
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z1Z1b1sI7r1QO2ZBv8DFTfSa",
	}
}

// Admin creates a user with the admin flag
func (f *UserFactory) Admin() *models.User {
	u := f.Create()
	u.FullName = "Test Admin"
	u.IsAdmin = true
	return u
}

// Manager creates a user with the manager flag
func (f *UserFactory) Manager() *models.User {
	u := f.Create()
	u.FullName = "Test Manager"
	u.IsManager = true
	return u
}

// Inspector creates a user with the inspector flag
func (f *UserFactory) Inspector() *models.User {
	u := f.Create()
	u.FullName = "Test Inspector"
	u.IsInspector = true
	return u
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	u := f.Create()
	u.Username = username
	return u
}

// ShiftTypeFactory provides methods to create test ShiftType data
type ShiftTypeFactory struct{}

// NewShiftTypeFactory creates a new ShiftTypeFactory
func NewShiftTypeFactory() *ShiftTypeFactory {
	return &ShiftTypeFactory{}
}

// Create creates a morning shift type
func (f *ShiftTypeFactory) Create() *models.ShiftType {
	return f.WithTimes("Morning "+uuid.NewString()[:8], "06:00", "14:00")
}

// WithTimes creates a shift type with the given window
func (f *ShiftTypeFactory) WithTimes(name, start, end string) *models.ShiftType {
	return &models.ShiftType{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		StartTime: start,
		EndTime:   end,
	}
}

// RoleFactory provides methods to create test Role data
type RoleFactory struct{}

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Create creates a role with a unique name
func (f *RoleFactory) Create() *models.Role {
	return f.WithName("Role " + uuid.NewString()[:8])
}

// WithName creates a role with the given name
func (f *RoleFactory) WithName(name string) *models.Role {
	return &models.Role{CatalogEntry: models.CatalogEntry{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        name,
		Description: name + " description",
	}}
}

// BuildingFactory provides methods to create test Building data
type BuildingFactory struct{}

// NewBuildingFactory creates a new BuildingFactory
func NewBuildingFactory() *BuildingFactory {
	return &BuildingFactory{}
}

// Create creates a building with a unique code and no supervisor
func (f *BuildingFactory) Create() *models.Building {
	code := "B-" + uuid.NewString()[:8]
	return &models.Building{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Building " + code,
		Code:      code,
		Area:      "North",
	}
}

// WithSupervisor creates a building supervised by supervisorID
func (f *BuildingFactory) WithSupervisor(supervisorID uuid.UUID) *models.Building {
	b := f.Create()
	b.SupervisorID = &supervisorID
	return b
}

// WeeklyAssignmentFactory provides methods to create test weekly assignment aggregates
type WeeklyAssignmentFactory struct{}

// NewWeeklyAssignmentFactory creates a new WeeklyAssignmentFactory
func NewWeeklyAssignmentFactory() *WeeklyAssignmentFactory {
	return &WeeklyAssignmentFactory{}
}

// Create creates an empty pending assignment for buildingID and week
func (f *WeeklyAssignmentFactory) Create(buildingID uuid.UUID, week string) *models.WeeklyShiftAssignment {
	return &models.WeeklyShiftAssignment{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		BuildingID: buildingID,
		Week:       week,
		Status:     models.AssignmentStatusPending,
	}
}

// Group creates a group with one pending primary inspector per id and the
// same shift type bound to every day of the week
func (f *WeeklyAssignmentFactory) Group(roleID, shiftTypeID uuid.UUID, inspectorIDs ...uuid.UUID) models.InspectorGroup {
	g := models.InspectorGroup{
		BaseModel: models.BaseModel{ID: uuid.New()},
		RoleID:    roleID,
	}
	for i, id := range inspectorIDs {
		g.Inspectors = append(g.Inspectors, models.GroupInspector{
			InspectorID: id,
			IsPrimary:   i == 0,
			Status:      models.AssignmentStatusPending,
		})
	}
	for day := 0; day < 7; day++ {
		g.Days = append(g.Days, models.DailyShiftType{DayOfWeek: day, ShiftTypeID: shiftTypeID})
	}
	return g
}

// WithGroups creates an assignment that owns the given groups
func (f *WeeklyAssignmentFactory) WithGroups(buildingID uuid.UUID, week string, groups ...models.InspectorGroup) *models.WeeklyShiftAssignment {
	a := f.Create(buildingID, week)
	a.InspectorGroups = groups
	return a
}

// FactorySet provides access to all factories
type FactorySet struct {
	User             *UserFactory
	ShiftType        *ShiftTypeFactory
	Role             *RoleFactory
	Building         *BuildingFactory
	WeeklyAssignment *WeeklyAssignmentFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:             NewUserFactory(),
		ShiftType:        NewShiftTypeFactory(),
		Role:             NewRoleFactory(),
		Building:         NewBuildingFactory(),
		WeeklyAssignment: NewWeeklyAssignmentFactory(),
	}
}
