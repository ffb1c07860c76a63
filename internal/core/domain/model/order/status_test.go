package order_test

import (
	"testing"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending,
		order.Approved,
		order.InProcess,
		order.Shipped,
		order.Received,
		order.Cancelled,
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status]map[order.Status]bool{
		order.Pending:   {order.Approved: true, order.Cancelled: true},
		order.Approved:  {order.InProcess: true, order.Cancelled: true},
		order.InProcess: {order.Shipped: true},
		order.Shipped:   {order.Received: true},
		order.Received:  {},
		order.Cancelled: {},
	}

	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			got := from.CanTransitionTo(to)
			want := allowed[from][to]
			assert.Equal(t, want, got, "transition %s -> %s", from, to)
		}
	}
}

func TestStatus_TransitionTo_Allowed(t *testing.T) {
	next, err := order.Pending.TransitionTo(order.Approved)
	require.NoError(t, err)
	assert.Equal(t, order.Approved, next)
}

func TestStatus_TransitionTo_Rejected(t *testing.T) {
	_, err := order.Received.TransitionTo(order.Pending)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Contains(t, err.Error(), "cannot change status from 'Received' to 'Pending'")
}

func TestStatus_TransitionTo_SameStatusRejected(t *testing.T) {
	for _, s := range allStatuses() {
		_, err := s.TransitionTo(s)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition, "self transition for %s", s)
	}
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	_, err := order.Pending.TransitionTo(order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Received.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Approved.IsTerminal())
	assert.False(t, order.InProcess.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.False(t, order.Unknown.IsTerminal())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "InProcess", order.InProcess.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses() {
		assert.NoError(t, s.Validate(), "status %s", s)
	}
	assert.Error(t, order.Unknown.Validate())
	assert.Error(t, order.Status(99).Validate())
}

func TestStatusFromName_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		want order.Status
	}{
		{"Pending", order.Pending},
		{"pending", order.Pending},
		{"APPROVED", order.Approved},
		{"inprocess", order.InProcess},
		{"Shipped", order.Shipped},
		{"received", order.Received},
		{"CANCELLED", order.Cancelled},
	}

	for _, tt := range tests {
		got, err := order.StatusFromName(tt.name)
		require.NoError(t, err, "name %q", tt.name)
		assert.Equal(t, tt.want, got, "name %q", tt.name)
	}
}

func TestStatusFromName_UnknownNameListsAllowedValues(t *testing.T) {
	_, err := order.StatusFromName("Delivered")
	require.Error(t, err)

	var bre *errs.BusinessRuleError
	require.ErrorAs(t, err, &bre)
	assert.Equal(t, errs.CodeInvalidStatus, bre.Code)
	assert.Contains(t, err.Error(),
		"Pending, Approved, InProcess, Shipped, Received, Cancelled")
}

func TestStatusNames_LifecycleOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"Pending", "Approved", "InProcess", "Shipped", "Received", "Cancelled"},
		order.StatusNames())
}
