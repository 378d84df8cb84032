package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/cmaclennan/aquivis-sub000/internal/app"
	"github.com/cmaclennan/aquivis-sub000/internal/config"
	"github.com/cmaclennan/aquivis-sub000/internal/constants"
	"github.com/cmaclennan/aquivis-sub000/internal/controllers"
	"github.com/cmaclennan/aquivis-sub000/internal/repositories"
	"github.com/cmaclennan/aquivis-sub000/internal/routes"
	"github.com/cmaclennan/aquivis-sub000/internal/services"
	"github.com/cmaclennan/aquivis-sub000/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize scheduling-service:", err)
	}
	defer application.Close()

	propRepo := repositories.NewPropertyRepository(application.DB)
	unitRepo := repositories.NewUnitRepository(application.DB)
	bookRepo := repositories.NewBookingRepository(application.DB)
	schedRepo := repositories.NewCustomScheduleRepository(application.DB)
	ruleRepo := repositories.NewPropertyRuleRepository(application.DB)
	roomRepo := repositories.NewPlantRoomRepository(application.DB)
	equipRepo := repositories.NewEquipmentRepository(application.DB)
	techRepo := repositories.NewTechnicianRepository(application.DB)

	if cfg.SeedDemoData {
		if err := app.SeedDemoData(
			context.Background(),
			propRepo,
			unitRepo,
			bookRepo,
			schedRepo,
			ruleRepo,
			roomRepo,
			equipRepo,
			techRepo,
		); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed demo data")
		} else {
			utils.Logger.Info("Seeded demo data successfully")
		}
	}

	scheduleService := services.NewScheduleService(
		propRepo,
		unitRepo,
		bookRepo,
		schedRepo,
		ruleRepo,
		roomRepo,
		equipRepo,
		techRepo,
	)

	scheduleController := controllers.NewScheduleController(scheduleService)
	healthController := controllers.NewHealthController(application)

	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ScheduleDaily, scheduleController.DailyScheduleHandler).Methods(http.MethodGet)

	// Warm the day's schedule shortly after midnight so the first
	// morning request is served from cache.
	c := cron.New()
	if _, err := c.AddFunc(constants.DailyWarmCronSpec, func() {
		scheduleService.WarmDailyCache(context.Background())
	}); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to register daily warm cron")
	}
	c.Start()
	defer c.Stop()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)

	utils.Logger.Infof("scheduling-service listening on :%s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, corsHandler); err != nil {
		utils.Logger.WithError(err).Fatal("HTTP server exited")
	}
}
