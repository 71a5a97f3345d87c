package models

// Role is a job-role tag attached to inspector groups. It is unrelated to the
// access flags on User.
type Role struct {
	CatalogEntry
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

// Entry exposes the shared catalog fields
func (r *Role) Entry() *CatalogEntry {
	return &r.CatalogEntry
}

// Agency is a contracting agency inspectors can belong to
type Agency struct {
	CatalogEntry
}

// TableName returns the table name for Agency
func (Agency) TableName() string {
	return "agencies"
}

// Entry exposes the shared catalog fields
func (a *Agency) Entry() *CatalogEntry {
	return &a.CatalogEntry
}

// TaskType is a free-text inspection task category
type TaskType struct {
	CatalogEntry
}

// TableName returns the table name for TaskType
func (TaskType) TableName() string {
	return "task_types"
}

// Entry exposes the shared catalog fields
func (t *TaskType) Entry() *CatalogEntry {
	return &t.CatalogEntry
}
