package main

import (
	"monumentwatch/config"
	"monumentwatch/models"
	"monumentwatch/routes"
	"monumentwatch/services"
	"monumentwatch/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.Sighting{}, &models.PageView{})

	svc := services.NewReportService(db)
	r := routes.SetupRouter(svc)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.RunServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
