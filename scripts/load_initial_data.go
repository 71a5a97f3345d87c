package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inspection-scheduler-backend/internal/auth"
	"inspection-scheduler-backend/internal/config"
	"inspection-scheduler-backend/internal/database"
	"inspection-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ShiftTypeData struct {
	Name        string `yaml:"name"`
	StartTime   string `yaml:"start_time"`
	EndTime     string `yaml:"end_time"`
	Description string `yaml:"description"`
}

type CatalogData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type UserData struct {
	Username    string `yaml:"username"`
	FullName    string `yaml:"full_name"`
	Password    string `yaml:"password"`
	IsAdmin     bool   `yaml:"is_admin"`
	IsManager   bool   `yaml:"is_manager"`
	IsInspector bool   `yaml:"is_inspector"`
	AgencyName  string `yaml:"agency,omitempty"`
}

type CoordinatorData struct {
	Username  string `yaml:"username"`
	ShiftType string `yaml:"shift_type"`
}

type BuildingData struct {
	Name         string            `yaml:"name"`
	Code         string            `yaml:"code"`
	Area         string            `yaml:"area"`
	Supervisor   string            `yaml:"supervisor,omitempty"`
	Coordinators []CoordinatorData `yaml:"coordinators,omitempty"`
}

// File structures
type ShiftTypesFile struct {
	ShiftTypes []ShiftTypeData `yaml:"shift_types"`
}

type RolesFile struct {
	Roles []CatalogData `yaml:"roles"`
}

type AgenciesFile struct {
	Agencies []CatalogData `yaml:"agencies"`
}

type TaskTypesFile struct {
	TaskTypes []CatalogData `yaml:"task_types"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type BuildingsFile struct {
	Buildings []BuildingData `yaml:"buildings"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Silent keeps "record not found" lookups out of the output
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var (
		shiftTypesFile ShiftTypesFile
		rolesFile      RolesFile
		agenciesFile   AgenciesFile
		taskTypesFile  TaskTypesFile
		usersFile      UsersFile
		buildingsFile  BuildingsFile
	)

	shiftTypes, err := loadYAML(dataDir, "shift_types", &shiftTypesFile, func() []ShiftTypeData { return shiftTypesFile.ShiftTypes })
	if err != nil {
		return fmt.Errorf("failed to load shift types: %w", err)
	}
	roles, err := loadYAML(dataDir, "roles", &rolesFile, func() []CatalogData { return rolesFile.Roles })
	if err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}
	agencies, err := loadYAML(dataDir, "agencies", &agenciesFile, func() []CatalogData { return agenciesFile.Agencies })
	if err != nil {
		return fmt.Errorf("failed to load agencies: %w", err)
	}
	taskTypes, err := loadYAML(dataDir, "task_types", &taskTypesFile, func() []CatalogData { return taskTypesFile.TaskTypes })
	if err != nil {
		return fmt.Errorf("failed to load task types: %w", err)
	}
	users, err := loadYAML(dataDir, "users", &usersFile, func() []UserData { return usersFile.Users })
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	buildings, err := loadYAML(dataDir, "buildings", &buildingsFile, func() []BuildingData { return buildingsFile.Buildings })
	if err != nil {
		return fmt.Errorf("failed to load buildings: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		shiftTypeMap := make(map[string]*models.ShiftType)
		shiftTypeCreated := 0
		for _, data := range shiftTypes {
			st, created, err := upsertShiftType(tx, data)
			if err != nil {
				return fmt.Errorf("failed to upsert shift type %s: %w", data.Name, err)
			}
			shiftTypeMap[data.Name] = st
			if created {
				shiftTypeCreated++
			}
		}
		log.Printf("Shift types: %d created, %d total", shiftTypeCreated, len(shiftTypes))

		if _, err := upsertCatalog[models.Role](tx, "Roles", roles); err != nil {
			return err
		}
		agencyMap, err := upsertCatalog[models.Agency](tx, "Agencies", agencies)
		if err != nil {
			return err
		}
		if _, err := upsertCatalog[models.TaskType](tx, "Task types", taskTypes); err != nil {
			return err
		}

		userMap := make(map[string]*models.User)
		userCreated := 0
		for _, data := range users {
			user, created, err := upsertUser(tx, data, agencyMap)
			if err != nil {
				return fmt.Errorf("failed to upsert user %s: %w", data.Username, err)
			}
			userMap[data.Username] = user
			if created {
				userCreated++
			}
		}
		log.Printf("Users: %d created, %d total", userCreated, len(users))

		buildingCreated := 0
		for _, data := range buildings {
			created, err := upsertBuilding(tx, data, userMap, shiftTypeMap)
			if err != nil {
				return fmt.Errorf("failed to upsert building %s: %w", data.Code, err)
			}
			if created {
				buildingCreated++
			}
		}
		log.Printf("Buildings: %d created, %d total", buildingCreated, len(buildings))

		return nil
	})
}

// loadYAML decodes every .yaml file under dataDir whose name contains match
// into file and collects the entries returned by items after each decode.
func loadYAML[T any, F any](dataDir, match string, file *F, items func() []T) ([]T, error) {
	var all []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), match) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var zero F
		*file = zero
		if err := yaml.Unmarshal(data, file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, items()...)
		return nil
	})

	return all, err
}

func upsertShiftType(db *gorm.DB, data ShiftTypeData) (*models.ShiftType, bool, error) {
	var st models.ShiftType
	err := db.Where("name = ?", data.Name).First(&st).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query shift type: %w", err)
	}
	created := err != nil

	st.Name = data.Name
	st.StartTime = data.StartTime
	st.EndTime = data.EndTime
	st.Description = data.Description
	if err := db.Save(&st).Error; err != nil {
		return nil, false, fmt.Errorf("failed to save shift type: %w", err)
	}
	return &st, created, nil
}

// upsertCatalog writes name/description pairs into the table of T and returns
// the rows keyed by name.
func upsertCatalog[T any, PT interface {
	*T
	Entry() *models.CatalogEntry
}](db *gorm.DB, label string, entries []CatalogData) (map[string]*T, error) {
	out := make(map[string]*T, len(entries))
	created := 0
	for _, data := range entries {
		row := PT(new(T))
		err := db.Where("name = ?", data.Name).First(row).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to query %s %s: %w", strings.ToLower(label), data.Name, err)
		}
		if err != nil {
			created++
		}

		entry := row.Entry()
		entry.Name = data.Name
		entry.Description = data.Description
		if err := db.Save(row).Error; err != nil {
			return nil, fmt.Errorf("failed to save %s %s: %w", strings.ToLower(label), data.Name, err)
		}
		out[data.Name] = (*T)(row)
	}
	log.Printf("%s: %d created, %d total", label, created, len(entries))
	return out, nil
}

// upsertUser creates missing accounts and refreshes the flags of existing
// ones. Passwords of existing accounts are left alone.
func upsertUser(db *gorm.DB, data UserData, agencyMap map[string]*models.Agency) (*models.User, bool, error) {
	var agencyID *uuid.UUID
	if data.AgencyName != "" {
		agency := agencyMap[data.AgencyName]
		if agency == nil {
			return nil, false, fmt.Errorf("agency %s not found for user %s", data.AgencyName, data.Username)
		}
		agencyID = &agency.ID
	}

	var user models.User
	err := db.Where("username = ?", data.Username).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}
	created := err != nil

	if created {
		password := os.ExpandEnv(data.Password)
		if password == "" {
			return nil, false, fmt.Errorf("password is required for new user %s", data.Username)
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, false, err
		}
		user.Username = data.Username
		user.PasswordHash = hash
	}

	user.FullName = data.FullName
	user.IsAdmin = data.IsAdmin
	user.IsManager = data.IsManager
	user.IsInspector = data.IsInspector
	user.AgencyID = agencyID
	if err := db.Omit("Agency").Save(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to save user: %w", err)
	}
	return &user, created, nil
}

// upsertBuilding writes the building by code and replaces its coordinator set
func upsertBuilding(db *gorm.DB, data BuildingData, userMap map[string]*models.User, shiftTypeMap map[string]*models.ShiftType) (bool, error) {
	var supervisorID *uuid.UUID
	if data.Supervisor != "" {
		u, err := lookupUser(db, data.Supervisor, userMap)
		if err != nil {
			return false, err
		}
		supervisorID = &u.ID
	}

	var building models.Building
	err := db.Where("code = ?", data.Code).First(&building).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query building: %w", err)
	}
	created := err != nil

	building.Name = data.Name
	building.Code = data.Code
	building.Area = data.Area
	building.SupervisorID = supervisorID
	if err := db.Omit("Supervisor", "Coordinators", "WeeklyAssignments").Save(&building).Error; err != nil {
		return false, fmt.Errorf("failed to save building: %w", err)
	}

	if err := db.Where("building_id = ?", building.ID).Delete(&models.BuildingCoordinator{}).Error; err != nil {
		return false, fmt.Errorf("failed to clear coordinators: %w", err)
	}
	for _, c := range data.Coordinators {
		u, err := lookupUser(db, c.Username, userMap)
		if err != nil {
			return false, err
		}
		st := shiftTypeMap[c.ShiftType]
		if st == nil {
			var found models.ShiftType
			if err := db.Where("name = ?", c.ShiftType).First(&found).Error; err != nil {
				return false, fmt.Errorf("shift type %s not found for building %s: %w", c.ShiftType, data.Code, err)
			}
			st = &found
			shiftTypeMap[c.ShiftType] = st
		}
		coordinator := models.BuildingCoordinator{
			BuildingID:    building.ID,
			CoordinatorID: u.ID,
			ShiftTypeID:   st.ID,
		}
		if err := db.Omit("Coordinator", "ShiftType").Create(&coordinator).Error; err != nil {
			return false, fmt.Errorf("failed to create coordinator %s: %w", c.Username, err)
		}
	}
	return created, nil
}

// lookupUser resolves seeded users first and falls back to existing rows
func lookupUser(db *gorm.DB, username string, userMap map[string]*models.User) (*models.User, error) {
	if u := userMap[username]; u != nil {
		return u, nil
	}
	var u models.User
	if err := db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, fmt.Errorf("user %s not found: %w", username, err)
	}
	userMap[username] = &u
	return &u, nil
}
