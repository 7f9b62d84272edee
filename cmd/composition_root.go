package cmd

import (
	"log/slog"
	"os"

	"bakery/internal/adapters/out/http/baker"
	"bakery/internal/adapters/out/http/courier"
	"bakery/internal/adapters/out/http/harvester"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/postgres/reciperepo"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    *reciperepo.GormRecipeCatalog
	harvester  *harvester.Client
	baker      *baker.Client
	courier    *courier.Client
	dispatcher *GoroutineSagaDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    reciperepo.NewGormRecipeCatalog(gormDB),
		harvester: harvester.NewClient(harvester.Config{
			BaseURL: config.FruitPickerURL,
			APIKey:  config.FruitPickerAPIKey,
		}),
		baker: baker.NewClient(baker.Config{
			BaseURL: config.BakerURL,
			APIKey:  config.BakerAPIKey,
		}),
		courier: courier.NewClient(courier.Config{
			BaseURL: config.DeliveryURL,
		}),
		dispatcher: NewGoroutineSagaDispatcher(logger),
		logger:     logger,
	}
	root.dispatcher.Bind(root.CreateAdvanceOrderCommandHandler())
	return root
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog, c.dispatcher)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(
		f, c.catalog, c.harvester, c.baker, c.courier, commands.DefaultSagaSettings())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, c.dispatcher, c.logger)
}

func (c *CompositionRoot) RecipeCatalog() *reciperepo.GormRecipeCatalog {
	return c.catalog
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
