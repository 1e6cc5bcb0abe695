package www

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/angas/greenplanet-go/config"
	"github.com/angas/greenplanet-go/prices"
	"github.com/angas/greenplanet-go/task"
)

type Server struct {
	logger *slog.Logger
	config config.AppConfigApi
	store  *prices.Store
}

func StartServer(store *prices.Store, tasks *task.Tasks, cnfg config.AppConfigApi, version string) *Server {
	logger := slog.Default().With("module", "www")

	s := &Server{
		logger: logger,
		config: cnfg,
		store:  store,
	}

	logReqMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.logger.Debug("http request",
				slog.String("method", r.Method),
				slog.String("url", r.URL.String()),
				slog.String("remoteAddr", r.RemoteAddr))
			next.ServeHTTP(w, r)
		})
	}

	http.Handle("/prices", logReqMW(NewPricesHandler(
		logger.With(slog.String("handler", "prices")),
		s.store,
		tasks.EnergyPriceTask)))

	http.Handle("/current_price", logReqMW(NewCurrentPriceHandler(
		logger.With(slog.String("handler", "current_price")),
		s.store)))

	http.Handle("/highest_today", logReqMW(NewHighestTodayHandler(
		logger.With(slog.String("handler", "highest_today")),
		s.store)))

	http.Handle("/lowest_day", logReqMW(NewLowestInPeriodHandler(
		logger.With(slog.String("handler", "lowest_day")),
		s.store,
		prices.PeriodDay)))

	http.Handle("/lowest_night", logReqMW(NewLowestInPeriodHandler(
		logger.With(slog.String("handler", "lowest_night")),
		s.store,
		prices.PeriodNight)))

	http.Handle("/cheapest_window", logReqMW(NewCheapestWindowHandler(
		logger.With(slog.String("handler", "cheapest_window")),
		s.store)))

	http.Handle("/sys_info", logReqMW(NewSysInfoHandler(
		logger.With(slog.String("handler", "sys_info")),
		s.store,
		version)))

	return s
}

func (s *Server) Run(ctx context.Context) {
	s.logger.Info("starting server...", "port", s.config.Port)
	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%d", s.config.Address, s.config.Port),
	}

	srvErrors := make(chan error, 1)

	go func() {
		srvErrors <- srv.ListenAndServe()
	}()

	for {
		select {
		case err := <-srvErrors:
			if err != nil {
				s.logger.Error("server error", slog.Any("error", err))
			}

		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			err := srv.Shutdown(shutdownCtx)
			if err != nil {
				s.logger.Error("server shutdown failed", slog.Any("error", err))
			}
			return
		}
	}
}
