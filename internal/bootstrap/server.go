package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/airreservation/api"
	"github.com/Domenick1991/airreservation/config"
	"github.com/Domenick1991/airreservation/internal/service/booking"
	"github.com/Domenick1991/airreservation/internal/service/flights"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the read-only flight and ticket handlers.
func NewRouter(flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api.NewFlightHandler(flightSvc).Register(router.Group("/flights"))
	api.NewTicketHandler(bookingSvc).Register(router.Group("/tickets"))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// Run serves the HTTP view and blocks until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg config.HTTPConfig, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) error {
	httpServer := &http.Server{
		Addr:              cfg.Address,
		Handler:           NewRouter(flightSvc, bookingSvc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http %s: %w", cfg.Address, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
