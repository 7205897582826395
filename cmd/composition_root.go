package cmd

import (
	"log/slog"
	"os"
	"time"

	"fulfillment/internal/adapters/out/memstore"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/directoryrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	catalog        *productrepo.GormCatalogProvider
	directory      *directoryrepo.GormEntityDirectory
	worksheetStore *memstore.WorksheetStore
	logger         *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:         config,
		gormDB:         gormDB,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:        productrepo.NewGormCatalogProvider(gormDB),
		directory:      directoryrepo.NewGormEntityDirectory(gormDB),
		worksheetStore: memstore.NewWorksheetStore(),
		logger:         slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Catalog() *productrepo.GormCatalogProvider {
	return c.catalog
}

func (c *CompositionRoot) CreateOpenStageCommandHandler() commands.OpenStageCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenStageCommandHandler(f, c.catalog, c.directory, c.worksheetStore)
}

func (c *CompositionRoot) CreateAssignSourceCommandHandler() commands.AssignSourceCommandHandler {
	return commands.NewAssignSourceCommandHandler(c.directory, c.worksheetStore)
}

func (c *CompositionRoot) CreateSetDriverCommandHandler() commands.SetDriverCommandHandler {
	return commands.NewSetDriverCommandHandler(c.worksheetStore)
}

func (c *CompositionRoot) CreateSaveStageCommandHandler() commands.SaveStageCommandHandler {
	var f commands.StageUoWFactory = FuncStageUoWFactory(func() commands.StageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveStageCommandHandler(f, c.worksheetStore)
}

func (c *CompositionRoot) CreateGetStageViewQueryHandler() queries.GetStageViewQueryHandler {
	return queries.NewGetStageViewQueryHandler(c.worksheetStore)
}

func (c *CompositionRoot) CreateGetDriverSummaryQueryHandler() queries.GetDriverSummaryQueryHandler {
	return queries.NewGetDriverSummaryQueryHandler(c.worksheetStore)
}

func (c *CompositionRoot) CreateGetEntityDirectoryQueryHandler() queries.GetEntityDirectoryQueryHandler {
	return queries.NewGetEntityDirectoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	spec := c.config.CatalogRefreshSpec
	if spec == "" {
		spec = "0 0 * * * *"
	}
	ttl := c.config.WorksheetTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return jobs.NewJobManager(c.catalog, spec, c.worksheetStore, ttl, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncStageUoWFactory func() commands.StageUoW

func (f FuncStageUoWFactory) Create() commands.StageUoW {
	return f()
}
