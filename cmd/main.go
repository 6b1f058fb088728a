package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httprouter "github.com/fintrack/fintrack-server/internal/api/http/router"
	httpserver "github.com/fintrack/fintrack-server/internal/api/http/server"

	httpctx "github.com/fintrack/fintrack-server/internal/api/http/context"
	"github.com/fintrack/fintrack-server/internal/config"
	"github.com/fintrack/fintrack-server/internal/logger"
	"github.com/fintrack/fintrack-server/internal/model"
	"github.com/fintrack/fintrack-server/internal/password"
	"github.com/fintrack/fintrack-server/internal/repository/postgres"
	"github.com/fintrack/fintrack-server/internal/server"
	"github.com/fintrack/fintrack-server/internal/service"
	"github.com/fintrack/fintrack-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	hasher := password.NewBcrypt()
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	tokenService := service.NewTokenService(tokenManager, token.TTL, logger)

	authService := service.NewAuth(userRepo, hasher, tokenService, logger)
	userService := service.NewUser(userRepo, hasher, logger)
	transactionService := service.NewTransaction(transactionRepo, logger)
	ctxMgr := httpctx.NewManager()

	r := httprouter.New(authService, userService, transactionService, tokenService, ctxMgr, cfg.CORS.AllowedOrigins, logger)
	httpServer := httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
