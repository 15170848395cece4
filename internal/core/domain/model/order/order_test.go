package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/order"
	"algexpress/internal/pkg/errs"
)

func newDeliveryOrder(t *testing.T, deliveryFee string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Delivery, money(t, deliveryFee), "")
	require.NoError(t, err)
	return o
}

func confirmedDeliveryOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newDeliveryOrder(t, "8.00")
	require.NoError(t, o.AddLine(newTestLine(t, "Margherita", "32.90", 1)))
	require.NoError(t, o.Confirm())
	return o
}

func Test_NewOrder(t *testing.T) {
	t.Run("creates a pending order with zero totals", func(t *testing.T) {
		o := newDeliveryOrder(t, "8.00")

		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.Lines())
		assert.True(t, o.Subtotal().IsZero())
		assert.True(t, o.Total().IsEqual(money(t, "8.00")))
		assert.False(t, o.OrderedAt().IsZero())
		assert.Nil(t, o.ConfirmedAt())
		assert.Nil(t, o.CompletedAt())
	})

	t.Run("rejects a delivery fee on a pickup order", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Pickup, money(t, "8.00"), "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("allows a zero fee on a pickup order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Pickup, kernel.Zero(), "")
		require.NoError(t, err)
		assert.True(t, o.Total().IsZero())
	})

	t.Run("rejects a negative delivery fee", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Delivery, money(t, "-1.00"), "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func Test_Order_Totals(t *testing.T) {
	t.Run("total is subtotal minus discount plus delivery fee", func(t *testing.T) {
		o := newDeliveryOrder(t, "8.00")

		require.NoError(t, o.AddLine(newTestLine(t, "Margherita", "32.90", 2)))
		require.NoError(t, o.AddLine(newTestLine(t, "Soda", "7.50", 1)))
		require.NoError(t, o.ApplyLoyaltyDiscount(money(t, "5.00")))

		assert.True(t, o.Subtotal().IsEqual(money(t, "73.30")))
		assert.True(t, o.Total().IsEqual(money(t, "76.30")))
	})

	t.Run("removing a line restores the totals", func(t *testing.T) {
		o := newDeliveryOrder(t, "8.00")
		line := newTestLine(t, "Soda", "7.50", 2)

		require.NoError(t, o.AddLine(newTestLine(t, "Margherita", "32.90", 1)))
		require.NoError(t, o.AddLine(line))
		require.NoError(t, o.RemoveLine(line.ID()))

		assert.Len(t, o.Lines(), 1)
		assert.True(t, o.Subtotal().IsEqual(money(t, "32.90")))
		assert.True(t, o.Total().IsEqual(money(t, "40.90")))
	})

	t.Run("repricing a line updates the totals", func(t *testing.T) {
		o := newDeliveryOrder(t, "0.00")
		line := newTestLine(t, "Margherita", "32.90", 2)
		require.NoError(t, o.AddLine(line))

		require.NoError(t, o.RepriceLine(line.ID(), money(t, "29.90")))

		assert.True(t, o.Subtotal().IsEqual(money(t, "59.80")))
		assert.True(t, o.Total().IsEqual(money(t, "59.80")))
	})

	t.Run("removing an absent line reports not found", func(t *testing.T) {
		o := newDeliveryOrder(t, "0.00")
		err := o.RemoveLine(kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("duplicate line id is rejected", func(t *testing.T) {
		o := newDeliveryOrder(t, "0.00")
		line := newTestLine(t, "Margherita", "32.90", 1)

		require.NoError(t, o.AddLine(line))
		assert.ErrorIs(t, o.AddLine(line), errs.ErrValueIsInvalid)
	})

	t.Run("negative discount is rejected", func(t *testing.T) {
		o := newDeliveryOrder(t, "0.00")
		assert.ErrorIs(t, o.ApplyLoyaltyDiscount(money(t, "-1.00")), errs.ErrValueIsInvalid)
	})
}

func Test_Order_LinesAreFrozenAfterConfirmation(t *testing.T) {
	o := confirmedDeliveryOrder(t)
	lineID := o.Lines()[0].ID()

	assert.ErrorIs(t, o.AddLine(newTestLine(t, "Soda", "7.50", 1)), errs.ErrInvalidTransition)
	assert.ErrorIs(t, o.RemoveLine(lineID), errs.ErrInvalidTransition)
	assert.ErrorIs(t, o.RepriceLine(lineID, money(t, "1.00")), errs.ErrInvalidTransition)
	assert.ErrorIs(t, o.ApplyLoyaltyDiscount(money(t, "1.00")), errs.ErrInvalidTransition)
	assert.Len(t, o.Lines(), 1)
}

func Test_Order_Confirm(t *testing.T) {
	t.Run("stamps the confirmation time", func(t *testing.T) {
		o := confirmedDeliveryOrder(t)

		assert.Equal(t, order.Confirmed, o.Status())
		require.NotNil(t, o.ConfirmedAt())
	})

	t.Run("rejects an order without lines", func(t *testing.T) {
		o := newDeliveryOrder(t, "8.00")
		assert.ErrorIs(t, o.Confirm(), order.ErrOrderHasNoLines)
	})
}

func Test_Order_Lifecycle(t *testing.T) {
	t.Run("delivery order runs the full flow", func(t *testing.T) {
		o := confirmedDeliveryOrder(t)

		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Dispatch())
		require.NoError(t, o.MarkDelivered())

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.CompletedAt())
	})

	t.Run("pickup order completes without dispatch", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Pickup, kernel.Zero(), "")
		require.NoError(t, err)
		require.NoError(t, o.AddLine(newTestLine(t, "Margherita", "32.90", 1)))
		require.NoError(t, o.Confirm())
		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.MarkReady())

		assert.ErrorIs(t, o.Dispatch(), errs.ErrInvalidTransition)
		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func Test_Order_Cancel(t *testing.T) {
	t.Run("without approved payments no refund is flagged", func(t *testing.T) {
		o := newDeliveryOrder(t, "8.00")

		require.NoError(t, o.Cancel(false))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.False(t, o.RequiresRefund())
	})

	t.Run("with approved payments the refund flag is set", func(t *testing.T) {
		o := confirmedDeliveryOrder(t)

		require.NoError(t, o.Cancel(true))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.True(t, o.RequiresRefund())
	})

	t.Run("a delivered order cannot be cancelled", func(t *testing.T) {
		o := confirmedDeliveryOrder(t)
		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Dispatch())
		require.NoError(t, o.MarkDelivered())

		assert.ErrorIs(t, o.Cancel(false), errs.ErrInvalidTransition)
	})
}

func Test_RestoreOrder(t *testing.T) {
	t.Run("recomputes totals from the stored lines", func(t *testing.T) {
		source := confirmedDeliveryOrder(t)

		restored, err := order.RestoreOrder(
			source.ID(), source.CustomerID(), source.Kind(),
			source.Lines(), source.DeliveryFee(), source.Discount(),
			source.Status(), source.Note(), source.OrderedAt(),
			source.ConfirmedAt(), source.CompletedAt(), source.RequiresRefund(),
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(source))
		assert.Equal(t, order.Confirmed, restored.Status())
		assert.True(t, restored.Total().IsEqual(source.Total()))
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		source := confirmedDeliveryOrder(t)

		_, err := order.RestoreOrder(
			source.ID(), source.CustomerID(), source.Kind(),
			source.Lines(), source.DeliveryFee(), source.Discount(),
			order.UnknownStatus, "", source.OrderedAt(), nil, nil, false,
		)

		assert.Error(t, err)
	})
}
