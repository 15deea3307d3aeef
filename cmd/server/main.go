package main

import (
	"context"
	"log"
	"time"

	"community-events/config"
	"community-events/internal/clock"
	"community-events/internal/database"
	"community-events/internal/handler"
	"community-events/internal/membership"
	"community-events/internal/notify"
	"community-events/internal/repository"
	"community-events/internal/rights"
	"community-events/internal/service"
	"community-events/internal/sweep"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	if err := database.RunMigrations(&cfg.Database, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

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

	clk, err := clock.New(cfg.App.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	eventRepo := repository.NewEventRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)

	fetcher := membership.NewHTTPFetcher(cfg.Membership.BaseURL,
		time.Duration(cfg.Membership.TimeoutSeconds)*time.Second)
	directory := membership.NewCachedDirectory(membership.NewRedisStore(rdb), fetcher)
	resolver := rights.NewResolver(directory)

	queue := notify.NewChannelQueue(256)
	mailer := notify.NewSMTPMailer(&cfg.SMTP)
	worker := notify.NewWorker(queue, mailer, cfg.SMTP)

	eventService := service.NewEventService(eventRepo, queue, clk)
	feedbackService := service.NewFeedbackService(feedbackRepo, eventRepo)

	runner := sweep.NewRunner(eventRepo, eventService, queue, clk)
	scheduler, err := sweep.NewScheduler(runner, cfg.App.SweepCron)
	if err != nil {
		log.Fatalf("Failed to schedule sweeps: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := worker.Start(ctx); err != nil {
		log.Fatalf("Failed to start notification worker: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	handler.NewEventHandler(eventService, feedbackService, resolver).RegisterRoutes(router)
	handler.NewFeedbackHandler(feedbackService).RegisterRoutes(router)
	handler.NewFeedHandler(eventService, loc).RegisterRoutes(router)
	handler.NewSweepHandler(runner, cfg.App.CronToken).RegisterRoutes(router)

	if err := router.Run(cfg.HTTP.Addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
