package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dortiz91/aerolinea/api"
	"github.com/dortiz91/aerolinea/config"
	"github.com/dortiz91/aerolinea/internal/service/airline"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, airlineSvc airline.AirlineUseCase) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(airlineSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(airlineSvc airline.AirlineUseCase) *gin.Engine {
	router := gin.Default()

	api.NewRegistryHandler(airlineSvc).Register(router.Group("/"))
	api.NewFlightHandler(airlineSvc).Register(router.Group("/flights"))
	api.NewTicketHandler(airlineSvc).Register(router.Group("/tickets"))

	return router
}
