package cmd

import (
	"fmt"
	"log/slog"
	"os"

	httpin "freightdesk/internal/adapters/in/http"
	"freightdesk/internal/adapters/out/directory"
	"freightdesk/internal/adapters/out/memory"
	"freightdesk/internal/adapters/out/notify"
	"freightdesk/internal/adapters/out/postgres"
	redisout "freightdesk/internal/adapters/out/redis"
	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/application/usecases/queries"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires the storage backend, collaborators, and handlers.
type CompositionRoot struct {
	config    Config
	store     ports.EntityStore
	directory ports.CustomerDirectory
	notifier  ports.Notifier
	logger    *slog.Logger
}

// NewCompositionRoot builds the object graph for the configured backend.
func NewCompositionRoot(config Config) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	store, err := createStore(config)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:    config,
		store:     store,
		directory: directory.NewStoreDirectory(store),
		notifier:  notify.NewSlogNotifier(logger),
		logger:    logger,
	}, nil
}

func createStore(config Config) (ports.EntityStore, error) {
	switch config.StorageBackend {
	case "", "memory":
		return memory.NewStore(), nil

	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser,
			config.DBPassword, config.DBName, config.DBSslMode)

		db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err = postgres.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		return postgres.NewStore(db), nil

	case "redis":
		client := goredis.NewClient(&goredis.Options{Addr: config.RedisAddr})
		return redisout.NewStore(client), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.StorageBackend)
	}
}

// Store exposes the configured EntityStore.
func (c *CompositionRoot) Store() ports.EntityStore {
	return c.store
}

// Logger exposes the application logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	return commands.NewCreatePackageCommandHandler(c.store, c.directory, c.logger)
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	return commands.NewCreateLoadCommandHandler(c.store)
}

func (c *CompositionRoot) CreateAssignPackagesCommandHandler() commands.AssignPackagesCommandHandler {
	return commands.NewAssignPackagesCommandHandler(c.store, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUnassignPackageCommandHandler() commands.UnassignPackageCommandHandler {
	return commands.NewUnassignPackageCommandHandler(c.store, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateConsolidateCommandHandler() commands.ConsolidateCommandHandler {
	return commands.NewConsolidateCommandHandler(c.store)
}

func (c *CompositionRoot) CreateDeconsolidateCommandHandler() commands.DeconsolidateCommandHandler {
	return commands.NewDeconsolidateCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.store, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAdvanceLoadStatusCommandHandler() commands.AdvanceLoadStatusCommandHandler {
	return commands.NewAdvanceLoadStatusCommandHandler(c.store)
}

func (c *CompositionRoot) CreateDeletePackageCommandHandler() commands.DeletePackageCommandHandler {
	return commands.NewDeletePackageCommandHandler(c.store, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateDeleteLoadCommandHandler() commands.DeleteLoadCommandHandler {
	return commands.NewDeleteLoadCommandHandler(c.store, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateReconcilePackageIndexesCommandHandler() commands.ReconcilePackageIndexesCommandHandler {
	return commands.NewReconcilePackageIndexesCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateScrubLoadMembershipCommandHandler() commands.ScrubLoadMembershipCommandHandler {
	return commands.NewScrubLoadMembershipCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateScrubConsolidationCommandHandler() commands.ScrubConsolidationCommandHandler {
	return commands.NewScrubConsolidationCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateListPackagesQueryHandler() queries.ListPackagesQueryHandler {
	return queries.NewListPackagesQueryHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateGetLoadQueryHandler() queries.GetLoadQueryHandler {
	return queries.NewGetLoadQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetExpectedDeliveryDateQueryHandler() queries.GetExpectedDeliveryDateQueryHandler {
	return queries.NewGetExpectedDeliveryDateQueryHandler(c.store, c.store, c.logger)
}

// CreateServerHandlers bundles every handler for the HTTP adapter.
func (c *CompositionRoot) CreateServerHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreatePackage:        c.CreateCreatePackageCommandHandler(),
		CreateLoad:           c.CreateCreateLoadCommandHandler(),
		AssignPackages:       c.CreateAssignPackagesCommandHandler(),
		UnassignPackage:      c.CreateUnassignPackageCommandHandler(),
		Consolidate:          c.CreateConsolidateCommandHandler(),
		Deconsolidate:        c.CreateDeconsolidateCommandHandler(),
		UpdateShipmentStatus: c.CreateUpdateShipmentStatusCommandHandler(),
		AdvanceLoadStatus:    c.CreateAdvanceLoadStatusCommandHandler(),
		DeletePackage:        c.CreateDeletePackageCommandHandler(),
		DeleteLoad:           c.CreateDeleteLoadCommandHandler(),
		ReconcileIndexes:     c.CreateReconcilePackageIndexesCommandHandler(),
		ScrubMembership:      c.CreateScrubLoadMembershipCommandHandler(),

		GetPackage:              c.CreateGetPackageQueryHandler(),
		ListPackages:            c.CreateListPackagesQueryHandler(),
		GetLoad:                 c.CreateGetLoadQueryHandler(),
		GetExpectedDeliveryDate: c.CreateGetExpectedDeliveryDateQueryHandler(),
	}
}

// CreateJobManager wires the repair sweeps.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.store,
		c.CreateReconcilePackageIndexesCommandHandler(),
		c.CreateScrubLoadMembershipCommandHandler(),
		c.CreateScrubConsolidationCommandHandler(),
		c.config.ReconcileSchedule,
		c.config.ScrubSchedule,
		c.logger,
	)
}
