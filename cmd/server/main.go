package main // Entry point package

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-magic/internal/config"
	"github.com/iliyamo/movie-magic/internal/database"
	"github.com/iliyamo/movie-magic/internal/handler"
	"github.com/iliyamo/movie-magic/internal/notify"
	"github.com/iliyamo/movie-magic/internal/queue"
	"github.com/iliyamo/movie-magic/internal/repository"
	"github.com/iliyamo/movie-magic/internal/router"
	"github.com/iliyamo/movie-magic/internal/view"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("database migrate: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient() // nil disables rate limiting and page cache
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and page cache disabled")
	}

	// Confirmations go to the broker when one is configured, otherwise the
	// simulated email is printed to stdout.
	var notifier notify.Notifier = notify.NewConsoleNotifier()
	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		notifier = notify.AMQPNotifier{}
		go func() {
			if err := queue.StartBookingConsumer(); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	users := repository.NewUserRepo(db)
	bookings := repository.NewBookingRepo(db)

	e := echo.New()
	e.Renderer = renderer
	router.RegisterRoutes(e, cfg, router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, users),
		Pages:   handler.NewPageHandler(bookings),
		Booking: handler.NewBookingHandler(bookings, notifier),
	}, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
