package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "tobacco_drying/docs"
	"tobacco_drying/internal/chamber"
	"tobacco_drying/internal/handlers"
	"tobacco_drying/internal/logger"
	"tobacco_drying/internal/metrics"
	"tobacco_drying/internal/repository"
	"tobacco_drying/internal/repository/db"
	"tobacco_drying/internal/server"
	"tobacco_drying/internal/service"

	"github.com/spf13/viper"
)

// @title        Tobacco Drying Chambers API
// @version      1.0
// @description  Monitoring and control of simulated tobacco drying chambers.
// @host         localhost:8080
// @BasePath     /

const (
	defaultPort     = "8080"
	defaultSimTick  = 1 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml (optional; defaults and DRYING_* env vars still apply)
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}
	log.SetLevel(viper.GetString("log.level"))

	// event journal lives for the life of the process
	journalDB, err := openJournal(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := journalDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(journalDB)
	recorder := metrics.NewRecorder()
	bus := service.NewBroadcaster(repos.EventRepo, log, recorder)
	registry := chamber.NewRegistry(bus)
	services := service.NewService(registry, repos, bus, service.Options{
		CountdownTick: viper.GetDuration("countdown.tick"),
		CountdownUnit: viper.GetDuration("countdown.unit"),
	})
	apiHandler := handlers.NewHandler(services, log, recorder.Handler())

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start simulator (via composed service)
	go services.Simulator.Run(ctx, simulatorTick())

	// start HTTP server
	srv := &server.Server{}
	handler := server.WithCORS(viper.GetStringSlice("cors.allowed_origins"), apiHandler.InitRoutes())
	runHTTPServer(srv, viper.GetString("port"), handler, log)

	log.Infow("chambers ready", "chambers", len(registry.List()), "port", viper.GetString("port"))

	// graceful shutdown
	waitForShutdown(cancel, srv, services, log)
}

func loadConfig() error {
	viper.SetDefault("port", defaultPort)
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("simulator.tick", defaultSimTick)
	viper.SetDefault("countdown.tick", time.Second)
	viper.SetDefault("countdown.unit", time.Second)
	viper.SetDefault("cors.allowed_origins", []string{})

	viper.SetEnvPrefix("DRYING")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// openJournal opens the in-memory event journal.
func openJournal(log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening event journal", "dsn", db.InMemoryDSN)
	return db.InitDB(db.InMemoryDSN)
}

func simulatorTick() time.Duration {
	if d := viper.GetDuration("simulator.tick"); d > 0 {
		return d
	}
	return defaultSimTick
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler http.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = defaultPort
		}
		if err := srv.Run(port, handler); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, services *service.Service, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()
	services.Control.Shutdown()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
