package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/osokin/teachdesk/internal/cli"
	"github.com/osokin/teachdesk/internal/config"
	"github.com/osokin/teachdesk/internal/export"
	"github.com/osokin/teachdesk/internal/generator"
	"github.com/osokin/teachdesk/internal/logger"
	"github.com/osokin/teachdesk/internal/model"
	"github.com/osokin/teachdesk/internal/repository/local"
	"github.com/osokin/teachdesk/internal/service"
	"github.com/osokin/teachdesk/internal/storage/kv"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	logger.Debug("starting teachdesk",
		"version", buildVersion,
		"build_date", buildDate,
		"database", cfg.Database.Path)

	store, err := kv.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Fatal("failed to open local store", "error", err)
	}
	defer store.Close()

	userRepo := local.NewUserRepository(store, logger)
	projectRepo := local.NewProjectRepository(store, logger)
	lessonPlanRepo := local.NewLessonPlanRepository(store, logger)
	worksheetRepo := local.NewWorksheetRepository(store, logger)
	parentUpdateRepo := local.NewParentUpdateRepository(store, logger)

	app := &cli.App{
		Auth:          service.NewAuth(userRepo, logger),
		Projects:      service.NewProject(projectRepo, lessonPlanRepo, worksheetRepo, parentUpdateRepo, logger),
		LessonPlans:   service.NewContent[model.LessonPlan](lessonPlanRepo, projectRepo, logger),
		Worksheets:    service.NewContent[model.Worksheet](worksheetRepo, projectRepo, logger),
		ParentUpdates: service.NewContent[model.ParentUpdate](parentUpdateRepo, projectRepo, logger),
		Generator:     generator.NewMock(cfg.Generator.Delay, logger),
		Exporter:      export.NewFileWriter(cfg.Export.Dir, logger),
		Logger:        logger,
		Out:           os.Stdout,
	}

	root := cli.NewRootCommand(app)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "error", err.Error())
		os.Exit(1)
	}
}
