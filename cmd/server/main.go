package main

import (
	"log"
	"net/http"

	_ "shareprompts/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shareprompts/internal/config"
	"shareprompts/internal/db"
	"shareprompts/internal/handler"
	"shareprompts/internal/model"
	"shareprompts/internal/repository"
	"shareprompts/internal/router"
	"shareprompts/internal/service"
)

// @title Share Prompts API
// @version 1.0
// @description REST API for creating, listing, editing and deleting prompts owned by provisioned users.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	manager := db.NewManager(cfg)
	if err := manager.Connect(); err != nil {
		log.Fatalf("database init: %v", err)
	}

	// A missing DSN leaves the manager unconnected: the process still serves,
	// and every query answers with an error instead.
	if gormDB, err := manager.DB(); err == nil {
		if err := gormDB.AutoMigrate(&model.User{}, &model.Prompt{}); err != nil {
			log.Fatalf("auto-migrate: %v", err)
		}
	} else {
		log.Printf("starting without a database connection: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(manager)
	promptRepo := repository.NewPromptRepository(manager)

	// Initialize services
	userService := service.NewUserService(userRepo)
	promptService := service.NewPromptService(promptRepo)

	// Initialize handlers
	promptHandler := handler.NewPromptHandler(promptService)
	userHandler := handler.NewUserHandler(userService, promptService)

	// Register routes
	router.Register(e, promptHandler, userHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
