package cmd

import (
	"algexpress/internal/adapters/out/fees"
	"algexpress/internal/adapters/out/postgres"
	"algexpress/internal/adapters/out/postgres/courierdir"
	"algexpress/internal/adapters/out/postgres/menurepo"
	"algexpress/internal/core/application/usecases/commands"
	"algexpress/internal/core/application/usecases/queries"
	"algexpress/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	catalog       ports.CatalogLookup
	feeCalculator ports.DeliveryFeeCalculator
	directory     ports.CourierDirectory
	orderLocks    *commands.OrderLocks
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	feeCalculator *fees.ZoneFeeCalculator,
	directory *courierdir.GormCourierDirectory,
) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:       menurepo.NewGormCatalogLookup(gormDB),
		feeCalculator: feeCalculator,
		directory:     directory,
		orderLocks:    commands.NewOrderLocks(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog, c.feeCalculator)
}

func (c *CompositionRoot) CreateAddOrderLineCommandHandler() commands.AddOrderLineCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderLineCommandHandler(f, c.catalog, c.orderLocks)
}

func (c *CompositionRoot) CreateRemoveOrderLineCommandHandler() commands.RemoveOrderLineCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderLineCommandHandler(f, c.orderLocks)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f, c.orderLocks)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.orderLocks)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.orderLocks)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.orderLocks)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.OrderPaymentUoWFactory = FuncOrderPaymentUoWFactory(func() commands.OrderPaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f, c.orderLocks)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	var f commands.OrderPaymentUoWFactory = FuncOrderPaymentUoWFactory(func() commands.OrderPaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPaymentCommandHandler(f, c.orderLocks)
}

func (c *CompositionRoot) CreateRedeemLoyaltyPointsCommandHandler() commands.RedeemLoyaltyPointsCommandHandler {
	var f commands.OrderCustomerUoWFactory = FuncOrderCustomerUoWFactory(func() commands.OrderCustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRedeemLoyaltyPointsCommandHandler(f, c.orderLocks)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.directory)
}

func (c *CompositionRoot) CreateExpirePaymentsCommandHandler() commands.ExpirePaymentsCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpirePaymentsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderPaymentsQueryHandler() queries.GetOrderPaymentsQueryHandler {
	return queries.NewGetOrderPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncOrderPaymentUoWFactory func() commands.OrderPaymentUoW

func (f FuncOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	return f()
}

type FuncOrderCustomerUoWFactory func() commands.OrderCustomerUoW

func (f FuncOrderCustomerUoWFactory) Create() commands.OrderCustomerUoW {
	return f()
}

type FuncOrderDeliveryUoWFactory func() commands.OrderDeliveryUoW

func (f FuncOrderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
