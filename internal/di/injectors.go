//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"vmd/internal"
	"vmd/internal/controllers"
	"vmd/internal/providers"
	"vmd/internal/repository"
	"vmd/internal/services"
	"vmd/internal/storage"
	"vmd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewHubProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		repository.NewMemoryStore,
		wire.Bind(new(repository.PatientRepositoryInterface), new(*repository.MemoryStore)),
		wire.Bind(new(repository.ReadingRepositoryInterface), new(*repository.MemoryStore)),
		wire.Bind(new(repository.AlertRepositoryInterface), new(*repository.MemoryStore)),
		wire.Bind(new(repository.SettingsRepositoryInterface), new(*repository.MemoryStore)),

		services.NewAlertService,
		services.NewVitalService,
		services.NewPatientService,
		services.NewReportService,

		storage.NewZstdCompressor,
		storage.NewFileManager,
		storage.NewScheduler,

		controllers.NewVitalsController,
		controllers.NewPatientsController,
		controllers.NewAlertsController,
		controllers.NewReportsController,
		controllers.NewLiveController,
		controllers.NewHealthController,

		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
