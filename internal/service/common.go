package service

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"inspection-scheduler-backend/internal/database"
	apperrors "inspection-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxPage         = 1_000_000
)

var weekPattern = regexp.MustCompile(`^(\d{4})-W(0[1-9]|[1-4]\d|5[0-3])$`)

// dayNames is indexed by day_of_week (0=Sunday)
var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// normalizePagination applies defaults and returns page, pageSize and the row offset
func normalizePagination(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

// validateWeek accepts YYYY-Www where ww exists in that ISO year
func validateWeek(week string) error {
	m := weekPattern.FindStringSubmatch(week)
	if m == nil {
		return apperrors.ErrInvalidWeek
	}
	year, _ := strconv.Atoi(m[1])
	num, _ := strconv.Atoi(m[2])
	if num > weeksInYear(year) {
		return apperrors.ErrInvalidWeek
	}
	return nil
}

// weeksInYear returns 52 or 53. December 28th always falls in the last ISO week.
func weeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// isoWeek formats t as an ISO-8601 week, e.g. 2024-W12
func isoWeek(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

func dayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return fmt.Sprintf("day %d", day)
	}
	return dayNames[day]
}

// deleteEntity runs a repository delete and maps its errors
func deleteEntity(del func(uuid.UUID) error, id uuid.UUID, notFound error) error {
	if err := del(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		if database.IsForeignKeyViolation(err) {
			return apperrors.ErrReferencedEntity
		}
		return fmt.Errorf("failed to delete: %w", err)
	}
	return nil
}
