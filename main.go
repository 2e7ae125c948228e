package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"inspectra/config"
	"inspectra/database"
	allocationRepo "inspectra/database/repository/allocation"
	assignmentRepo "inspectra/database/repository/assignment"
	leadRepo "inspectra/database/repository/lead"
	staffRepo "inspectra/database/repository/staff"
	"inspectra/handlers"
	"inspectra/middleware"
	"inspectra/routes"
	"inspectra/services/assignment"
	"inspectra/services/availability"
	leadSvc "inspectra/services/lead"
	"inspectra/services/session"
	staffSvc "inspectra/services/staff"
	"inspectra/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	leads := leadRepo.NewMongoLeadRepo()
	staff := staffRepo.NewMongoStaffRepo()
	assignments := assignmentRepo.NewMongoAssignmentRepo()
	allocations := allocationRepo.NewMongoAllocationRepo()

	// services.
	availabilityService := &availability.DefaultService{
		Staff:       staff,
		Allocations: allocations,
	}
	assignmentSaga := &assignment.DefaultSaga{
		Leads:       leads,
		Assignments: assignments,
		Staff:       staff,
		Allocations: allocations,
	}
	sessionService := &session.DefaultService{
		Availability: availabilityService,
		Saga:         assignmentSaga,
		Now:          time.Now,
	}
	leadService := &leadSvc.DefaultService{Repo: leads}
	staffService := &staffSvc.DefaultService{Repo: staff}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Scheduling: handlers.NewSchedulingHandler(sessionService, availabilityService, logger),
		Leads:      handlers.NewLeadHandler(leadService),
		Staff:      handlers.NewStaffHandler(staffService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
