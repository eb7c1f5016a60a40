package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/export"
	"fulfillment/internal/adapters/out/notification"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/stockrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory
	stockRepo  *stockrepo.GormStockRepository
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		stockRepo:  stockrepo.NewGormStockRepository(gormDB),
	}
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateBatchUpdateStatusCommandHandler() commands.BatchUpdateStatusCommandHandler {
	return commands.NewBatchUpdateStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateImportTrackingCommandHandler() commands.ImportTrackingCommandHandler {
	return commands.NewImportTrackingCommandHandler(c.orderUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readOrderRepository(), c.stockRepo, c.classifier())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readOrderRepository(), c.stockRepo, c.classifier())
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(export.NewCSVExporter(c.readOrderRepository()))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.stockRepo, c.config.LowStockThreshold, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notifier() ports.Notifier {
	return notification.NewShipmentNotifier(c.logger)
}

func (c *CompositionRoot) classifier() services.InventoryClassifier {
	return services.NewInventoryClassifier(c.config.LowStockThreshold)
}

// readOrderRepository binds a repository to the shared connection for
// read paths that run outside any unit of work.
func (c *CompositionRoot) readOrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, noopAggregateTracker{})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// noopAggregateTracker satisfies the repository's tracker dependency on
// read-only paths, where no aggregate changes need recording.
type noopAggregateTracker struct{}

func (noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
