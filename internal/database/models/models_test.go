package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationShiftID(t *testing.T) {
	shiftID := uuid.New()

	t.Run("metadata with shiftId", func(t *testing.T) {
		raw, err := json.Marshal(NotificationMetadata{ShiftID: &shiftID})
		require.NoError(t, err)

		n := &Notification{Metadata: raw}
		got, ok := n.ShiftID()
		assert.True(t, ok)
		assert.Equal(t, shiftID, got)
	})

	t.Run("no metadata", func(t *testing.T) {
		_, ok := (&Notification{}).ShiftID()
		assert.False(t, ok)
	})

	t.Run("metadata without shiftId", func(t *testing.T) {
		n := &Notification{Metadata: json.RawMessage(`{"requestId":"` + uuid.NewString() + `"}`)}
		_, ok := n.ShiftID()
		assert.False(t, ok)
	})

	t.Run("malformed metadata", func(t *testing.T) {
		n := &Notification{Metadata: json.RawMessage(`{"shiftId":42}`)}
		_, ok := n.ShiftID()
		assert.False(t, ok)
	})
}

func TestUserHasAnyRole(t *testing.T) {
	admin := &User{IsAdmin: true}
	manager := &User{IsManager: true}
	employee := &User{}

	assert.True(t, admin.HasAnyRole(UserRoleAdmin))
	assert.False(t, admin.HasAnyRole(UserRoleManager, UserRoleInspector))
	assert.True(t, manager.HasAnyRole(UserRoleAdmin, UserRoleManager))
	assert.True(t, employee.HasAnyRole(UserRoleEmployee))
	assert.False(t, manager.HasAnyRole(UserRoleEmployee))
	assert.False(t, employee.HasAnyRole())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, AssignmentStatusAccepted.IsValid())
	assert.False(t, AssignmentStatus("DONE").IsValid())

	assert.True(t, RequestTypeShiftSwap.IsValid())
	assert.False(t, RequestType("OVERTIME").IsValid())

	assert.True(t, RequestStatusPending.IsValid())
	assert.False(t, RequestStatusPending.IsFinal())
	assert.True(t, RequestStatusRejected.IsFinal())

	assert.True(t, UserRoleEmployee.IsValid())
	assert.False(t, UserRole("root").IsValid())
}
