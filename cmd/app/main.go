package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dortiz91/aerolinea/config"
	"github.com/dortiz91/aerolinea/internal/bootstrap"
	"github.com/dortiz91/aerolinea/internal/cache"
	"github.com/dortiz91/aerolinea/internal/fare"
	"github.com/dortiz91/aerolinea/internal/kafka"
	"github.com/dortiz91/aerolinea/internal/repository"
	"github.com/dortiz91/aerolinea/internal/service/airline"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.DistanceTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	distanceRepo := repository.NewDistanceRepository(pool)
	fareCalc := fare.NewCalculator(distanceRepo, redisCache)

	airlineService := airline.NewAirlineService(
		fareCalc,
		airline.WithProducer(producer, cfg.Kafka.TicketsTopic, cfg.Kafka.FlightsTopic),
		airline.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := hydrate(ctx, pool, airlineService); err != nil {
		log.Fatalf("load airline data: %v", err)
	}

	if err := bootstrap.Run(ctx, cfg, airlineService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// hydrate populates the in-memory aggregate from the database: registered
// entities first, then tickets, which need their customers in place.
func hydrate(ctx context.Context, pool *pgxpool.Pool, svc *airline.AirlineService) error {
	airlineRepo := repository.NewAirlineRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	aircraft, err := airlineRepo.LoadAircraft(ctx)
	if err != nil {
		return err
	}
	for _, a := range aircraft {
		if err := svc.AddAircraft(a); err != nil {
			return err
		}
	}

	routes, err := airlineRepo.LoadRoutes(ctx)
	if err != nil {
		return err
	}
	for _, r := range routes {
		if err := svc.AddRoute(r); err != nil {
			return err
		}
	}

	customers, err := airlineRepo.LoadCustomers(ctx)
	if err != nil {
		return err
	}
	for _, c := range customers {
		if err := svc.AddCustomer(c); err != nil {
			return err
		}
	}

	tickets, err := ticketRepo.LoadTickets(ctx)
	if err != nil {
		return err
	}
	return svc.RestoreTickets(tickets)
}
