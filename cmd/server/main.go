package main

import (
	"context"
	"log"

	"event-experience/config"
	"event-experience/internal/cache"
	"event-experience/internal/database"
	"event-experience/internal/handler"
	"event-experience/internal/queue"
	"event-experience/internal/repository"
	"event-experience/internal/service"
	"event-experience/internal/worker"
	"event-experience/monitoring"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	// repositories
	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	orgRepo := repository.NewOrganizationRepository(pool)
	memberRepo := repository.NewMembershipRepository(pool)
	profileRepo := repository.NewOrganizerProfileRepository(pool)

	// read-side infrastructure
	attendanceCache := cache.NewRedisAttendanceCache(rdb)
	checkinQueue, err := queue.NewRedisStreamCheckinQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize check-in queue: %v", err)
	}

	// services
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, ticketRepo, attendanceCache)
	ticketService := service.NewTicketService(ticketRepo, userRepo, checkinQueue)
	orgService := service.NewOrganizationService(orgRepo, memberRepo)
	profileService := service.NewOrganizerProfileService(profileRepo, userRepo)

	// attendance worker follows the check-in feed
	attendanceWorker := worker.NewAttendanceWorker(ticketRepo, attendanceCache, checkinQueue)
	if err := attendanceWorker.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start attendance worker: %v", err)
	}

	router := gin.Default()
	router.Use(monitoring.Middleware())

	handler.NewUserHandler(userService).RegisterRoutes(router)
	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewTicketHandler(ticketService).RegisterRoutes(router)
	handler.NewOrganizationHandler(orgService).RegisterRoutes(router)
	handler.NewOrganizerProfileHandler(profileService).RegisterRoutes(router)

	router.GET("/metrics", monitoring.Handler())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
