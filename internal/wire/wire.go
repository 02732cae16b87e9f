// Package wire provides dependency injection for the garage application.
// Process-wide infrastructure (config, logger, database, notifier,
// repositories) is constructed once; controllers and adapters are created
// fresh per command. The database handle is owned here and passed
// explicitly, never reached through ambient package state.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/garage/internal/adapters/cli"
	"github.com/example/garage/internal/adapters/filesystem"
	"github.com/example/garage/internal/adapters/sqlite"
	"github.com/example/garage/internal/app"
	"github.com/example/garage/internal/config"
	"github.com/example/garage/internal/db"
	"github.com/example/garage/internal/logger"
)

var (
	once    sync.Once
	initErr error

	cfg        *config.Config
	log        *zap.Logger
	database   *sql.DB
	notifier   *db.Notifier
	photoStore *filesystem.PhotoStore

	vehicleRepo       *sqlite.VehicleRepository
	serviceRecordRepo *sqlite.ServiceRecordRepository
	personRepo        *sqlite.PersonRepository
)

// initInfra initializes process-wide infrastructure. Called once via
// sync.Once.
func initInfra() {
	home, err := os.UserHomeDir()
	if err != nil {
		initErr = fmt.Errorf("failed to get home directory: %w", err)
		return
	}

	cfg, err = config.LoadConfig(home)
	if err != nil {
		// No config file yet: fall back to defaults. garage init writes one.
		cfg, err = config.Default()
		if err != nil {
			initErr = err
			return
		}
	}

	log, err = logger.New(cfg.LogLevel)
	if err != nil {
		initErr = err
		return
	}

	database, err = db.Open(cfg.DatabasePath)
	if err != nil {
		initErr = fmt.Errorf("failed to open database: %w", err)
		return
	}

	notifier = db.NewNotifier()

	photoStore, err = filesystem.NewPhotoStore(cfg.PhotoDir)
	if err != nil {
		initErr = err
		return
	}

	vehicleRepo = sqlite.NewVehicleRepository(database, notifier)
	serviceRecordRepo = sqlite.NewServiceRecordRepository(database, notifier)
	personRepo = sqlite.NewPersonRepository(database, notifier)
}

// Config returns the loaded configuration.
func Config() (*config.Config, error) {
	once.Do(initInfra)
	if initErr != nil {
		return nil, initErr
	}
	return cfg, nil
}

// Close releases process-wide resources.
func Close() error {
	if log != nil {
		_ = log.Sync()
	}
	if database != nil {
		return database.Close()
	}
	return nil
}

// VehicleAdapter returns a new VehicleAdapter writing to stdout, backed by
// a fresh controller.
func VehicleAdapter() (*cliadapter.VehicleAdapter, error) {
	return VehicleAdapterWithOutput(os.Stdout)
}

// VehicleAdapterWithOutput returns a new VehicleAdapter writing to the
// given output. This variant allows testing or alternate destinations.
func VehicleAdapterWithOutput(out io.Writer) (*cliadapter.VehicleAdapter, error) {
	once.Do(initInfra)
	if initErr != nil {
		return nil, initErr
	}
	ctrl := app.NewVehicleController(vehicleRepo, log)
	return cliadapter.NewVehicleAdapter(ctrl, photoStore, out), nil
}

// ServiceAdapter returns a new ServiceAdapter writing to stdout, backed by
// a fresh controller.
func ServiceAdapter() (*cliadapter.ServiceAdapter, error) {
	return ServiceAdapterWithOutput(os.Stdout)
}

// ServiceAdapterWithOutput returns a new ServiceAdapter writing to the
// given output.
func ServiceAdapterWithOutput(out io.Writer) (*cliadapter.ServiceAdapter, error) {
	once.Do(initInfra)
	if initErr != nil {
		return nil, initErr
	}
	ctrl := app.NewServiceRecordController(serviceRecordRepo, log)
	return cliadapter.NewServiceAdapter(ctrl, out), nil
}

// PersonAdapter returns a new PersonAdapter writing to stdout, backed by a
// fresh controller.
func PersonAdapter() (*cliadapter.PersonAdapter, error) {
	return PersonAdapterWithOutput(os.Stdout)
}

// PersonAdapterWithOutput returns a new PersonAdapter writing to the given
// output.
func PersonAdapterWithOutput(out io.Writer) (*cliadapter.PersonAdapter, error) {
	once.Do(initInfra)
	if initErr != nil {
		return nil, initErr
	}
	ctrl := app.NewPersonController(personRepo, log)
	return cliadapter.NewPersonAdapter(ctrl, photoStore, out), nil
}
