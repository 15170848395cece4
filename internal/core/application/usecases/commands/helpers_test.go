package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"algexpress/internal/core/domain/model/customer"
	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/menu"
	"algexpress/internal/core/domain/model/order"
	"algexpress/internal/core/domain/model/payment"
)

func money(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func testItem(t *testing.T) *menu.Item {
	t.Helper()
	item, err := menu.NewItem(
		kernel.NewUUID(), "Margherita", menu.CategoryTraditional,
		map[menu.Size]kernel.Money{menu.Medium: money(t, "32.90")},
		nil, 25,
	)
	require.NoError(t, err)
	return item
}

func pendingDeliveryOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, kernel.NewUUID(), order.Delivery, money(t, "8.00"), "")
	require.NoError(t, err)
	line, err := order.NewLine(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita",
		menu.Medium, 1, nil, nil, "", money(t, "32.90"),
	)
	require.NoError(t, err)
	require.NoError(t, o.AddLine(line))
	return o
}

func pendingPickupOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, kernel.NewUUID(), order.Pickup, kernel.Zero(), "")
	require.NoError(t, err)
	line, err := order.NewLine(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita",
		menu.Medium, 1, nil, nil, "", money(t, "32.90"),
	)
	require.NoError(t, err)
	require.NoError(t, o.AddLine(line))
	return o
}

func testCustomer(t *testing.T, points int) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(kernel.NewUUID(), "Maria Silva", "", customer.Active, points)
	require.NoError(t, err)
	return c
}

func pendingCashPayment(t *testing.T, orderID kernel.UUID, amount, tendered string) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), orderID, payment.Cash, money(t, amount), "")
	require.NoError(t, err)
	require.NoError(t, p.RecordTendered(money(t, tendered)))
	return p
}
