package delivery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algexpress/internal/core/domain/model/delivery"
	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/pkg/errs"
)

func money(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func newTestAssignment(t *testing.T) *delivery.Assignment {
	t.Helper()
	a, err := delivery.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), money(t, "8.00"))
	require.NoError(t, err)
	return a
}

func enRouteAssignment(t *testing.T) *delivery.Assignment {
	t.Helper()
	a := newTestAssignment(t)
	require.NoError(t, a.AssignCourier(kernel.NewUUID()))
	require.NoError(t, a.Depart())
	return a
}

func Test_NewAssignment(t *testing.T) {
	t.Run("starts waiting without a courier", func(t *testing.T) {
		a := newTestAssignment(t)

		assert.Equal(t, delivery.WaitingForCourier, a.Status())
		assert.Nil(t, a.CourierID())
		assert.Equal(t, 0, a.Attempts())
		assert.False(t, a.CreatedAt().IsZero())
		assert.Nil(t, a.DepartureTime())
	})

	t.Run("rejects a negative fee", func(t *testing.T) {
		_, err := delivery.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), money(t, "-1.00"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var a delivery.Assignment
		assert.ErrorIs(t, a.Validate(), delivery.ErrAssignmentIsNotConstructed)
	})
}

func Test_Assignment_AssignCourier(t *testing.T) {
	t.Run("attaches the courier while waiting", func(t *testing.T) {
		a := newTestAssignment(t)
		courierID := kernel.NewUUID()

		require.NoError(t, a.AssignCourier(courierID))

		require.NotNil(t, a.CourierID())
		assert.True(t, a.CourierID().IsEqual(courierID))
		assert.Equal(t, delivery.WaitingForCourier, a.Status())
	})

	t.Run("cannot reassign once en route", func(t *testing.T) {
		a := enRouteAssignment(t)
		assert.ErrorIs(t, a.AssignCourier(kernel.NewUUID()), errs.ErrInvalidTransition)
	})
}

func Test_Assignment_Depart(t *testing.T) {
	t.Run("stamps the departure time once", func(t *testing.T) {
		a := enRouteAssignment(t)

		require.NotNil(t, a.DepartureTime())
		first := *a.DepartureTime()

		require.NoError(t, a.RecordAttempt())
		require.NoError(t, a.Depart())

		assert.Equal(t, first, *a.DepartureTime())
		assert.Equal(t, delivery.EnRoute, a.Status())
	})

	t.Run("fails without a courier", func(t *testing.T) {
		a := newTestAssignment(t)
		assert.ErrorIs(t, a.Depart(), delivery.ErrCourierNotAssigned)
	})
}

func Test_Assignment_RecordAttempt(t *testing.T) {
	t.Run("counts consecutive attempts", func(t *testing.T) {
		a := enRouteAssignment(t)

		require.NoError(t, a.RecordAttempt())
		require.NoError(t, a.RecordAttempt())

		assert.Equal(t, delivery.DeliveryAttempt, a.Status())
		assert.Equal(t, 2, a.Attempts())
	})

	t.Run("cannot record before departing", func(t *testing.T) {
		a := newTestAssignment(t)
		assert.ErrorIs(t, a.RecordAttempt(), errs.ErrInvalidTransition)
	})
}

func Test_Assignment_MarkDelivered(t *testing.T) {
	t.Run("stamps the delivery time", func(t *testing.T) {
		a := enRouteAssignment(t)

		require.NoError(t, a.MarkDelivered())

		assert.Equal(t, delivery.Delivered, a.Status())
		require.NotNil(t, a.DeliveryTime())
	})

	t.Run("works after a failed attempt", func(t *testing.T) {
		a := enRouteAssignment(t)
		require.NoError(t, a.RecordAttempt())

		require.NoError(t, a.MarkDelivered())

		assert.Equal(t, delivery.Delivered, a.Status())
	})

	t.Run("cannot deliver a waiting assignment", func(t *testing.T) {
		a := newTestAssignment(t)
		assert.ErrorIs(t, a.MarkDelivered(), errs.ErrInvalidTransition)
	})
}

func Test_Assignment_MarkReturned(t *testing.T) {
	a := enRouteAssignment(t)
	require.NoError(t, a.RecordAttempt())

	require.NoError(t, a.MarkReturned())

	assert.Equal(t, delivery.Returned, a.Status())
	require.NotNil(t, a.ReturnTime())
}

func Test_Assignment_Cancel(t *testing.T) {
	t.Run("requires a reason", func(t *testing.T) {
		a := newTestAssignment(t)
		assert.ErrorIs(t, a.Cancel(""), errs.ErrValueIsRequired)
	})

	t.Run("records the reason", func(t *testing.T) {
		a := newTestAssignment(t)

		require.NoError(t, a.Cancel("order cancelled by customer"))

		assert.Equal(t, delivery.Cancelled, a.Status())
		assert.Equal(t, "order cancelled by customer", a.CancellationReason())
	})

	t.Run("cannot cancel a delivered assignment", func(t *testing.T) {
		a := enRouteAssignment(t)
		require.NoError(t, a.MarkDelivered())

		assert.ErrorIs(t, a.Cancel("too late"), errs.ErrInvalidTransition)
	})
}

func Test_Assignment_DurationHelpers(t *testing.T) {
	t.Run("unavailable until delivered", func(t *testing.T) {
		a := enRouteAssignment(t)

		_, ok := a.DeliveryMinutes()
		assert.False(t, ok)
		_, ok = a.TotalMinutes()
		assert.False(t, ok)
	})

	t.Run("available after delivery", func(t *testing.T) {
		a := enRouteAssignment(t)
		require.NoError(t, a.MarkDelivered())

		minutes, ok := a.DeliveryMinutes()
		assert.True(t, ok)
		assert.GreaterOrEqual(t, minutes, 0)

		total, ok := a.TotalMinutes()
		assert.True(t, ok)
		assert.GreaterOrEqual(t, total, minutes)
	})
}

func Test_RestoreAssignment(t *testing.T) {
	source := enRouteAssignment(t)
	require.NoError(t, source.RecordAttempt())

	restored, err := delivery.RestoreAssignment(
		source.ID(), source.OrderID(), source.CourierID(), source.Status(),
		source.Attempts(), source.CreatedAt(),
		source.DepartureTime(), source.DeliveryTime(), source.ReturnTime(),
		source.CancellationReason(), source.DeliveryFee(),
	)

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(source))
	assert.Equal(t, delivery.DeliveryAttempt, restored.Status())
	assert.Equal(t, 1, restored.Attempts())
	require.NotNil(t, restored.DepartureTime())
}
