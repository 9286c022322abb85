// @title Physician Self-Assessment API
// @version 1.0
// @description Backend service for the physician patient-centered care self-assessment tool.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
package main

import (
	"flag"
	"log"
	"path/filepath"
	"physician_assessment_backend/internal/app"
	"physician_assessment_backend/internal/config"
	"physician_assessment_backend/pkg/configwatcher"
	"physician_assessment_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig(filepath.Join(*configPath, "config.yaml"), func(newCfg *config.Config) {
		application.ApplyConfig(newCfg)
	})

	application.Run()
}
