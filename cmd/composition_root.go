package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/carrier"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/adapters/out/postgres/schema"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

type CompositionRoot struct {
	gormDB             *gorm.DB
	uowFactory         postgres.GormUnitOfWorkFactory
	capabilities       schema.Capabilities
	catalog            ports.ProductCatalog
	carrierGateway     ports.CarrierGateway
	packageWeightLimit *kernel.Weight
	logger             *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	capabilities schema.Capabilities,
	packageWeightLimit *kernel.Weight,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:             gormDB,
		uowFactory:         *postgres.NewGormUnitOfWorkFactory(gormDB, capabilities),
		capabilities:       capabilities,
		catalog:            productrepo.NewGormProductCatalog(gormDB),
		carrierGateway:     carrier.NewHTTPCarrierGateway(config.CarrierBaseURL),
		packageWeightLimit: packageWeightLimit,
		logger:             logger,
	}
}

func (c *CompositionRoot) CreateEnsureOrderAndOpenGroupCommandHandler() commands.EnsureOrderAndOpenGroupCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewEnsureOrderAndOpenGroupCommandHandler(f)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewAddItemCommandHandler(f, c.catalog, c.createRecalculator())
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewUpdateItemCommandHandler(f, c.createRecalculator())
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewRemoveItemCommandHandler(f, c.createRecalculator())
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewRecordPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewRefundPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteCheckoutCommandHandler() commands.CompleteCheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewCompleteCheckoutCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRecalculateShippingCommandHandler() commands.RecalculateShippingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewRecalculateShippingCommandHandler(f, c.createRecalculator())
}

func (c *CompositionRoot) CreateCreateShippingLabelCommandHandler() commands.CreateShippingLabelCommandHandler {
	var f commands.LabelUoWFactory = FuncLabelUoWFactory(func() commands.LabelUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewCreateShippingLabelCommandHandler(
		f, c.carrierGateway, c.catalog, c.packageWeightLimit)
}

func (c *CompositionRoot) CreateRefreshShippingCachesCommandHandler() commands.RefreshShippingCachesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewRefreshShippingCachesCommandHandler(f, c.createRecalculator())
}

func (c *CompositionRoot) CreatePreviewShippingQueryHandler() queries.PreviewShippingQueryHandler {
	return queries.NewPreviewShippingQueryHandler(c.gormDB, c.capabilities.Removal, c.packageWeightLimit)
}

func (c *CompositionRoot) CreateGetClientBalancesQueryHandler() queries.GetClientBalancesQueryHandler {
	return queries.NewGetClientBalancesQueryHandler(c.gormDB, c.capabilities.Removal)
}

func (c *CompositionRoot) createRecalculator() *commands.ShippingRecalculator {
	var f commands.RecalcUoWFactory = FuncRecalcUoWFactory(func() commands.RecalcUoW {
		return c.uowFactory.CreateGorm()
	})
	recalculator := commands.NewShippingRecalculator(f, c.catalog, c.packageWeightLimit, c.logger)
	return &recalculator
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncRecalcUoWFactory func() commands.RecalcUoW

func (f FuncRecalcUoWFactory) Create() commands.RecalcUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLabelUoWFactory func() commands.LabelUoW

func (f FuncLabelUoWFactory) Create() commands.LabelUoW {
	return f()
}
