package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/config"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/creds"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/httpserver"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/logging"
	loggingmw "github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/middleware/logging"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/mongodb"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/repo"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/service"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/validation"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongodb.Connect(initCtx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}

	mongoRepo := &repo.MongoRepo{DB: client.Database(cfg.MongoDB)}

	authSvc := &service.AuthService{Repo: mongoRepo, Verifier: creds.FromMode(cfg.AuthMode)}
	catalogSvc := &service.CatalogService{Repo: mongoRepo}
	cartSvc := &service.CartService{Repo: mongoRepo}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.CORSOrigins}))

	httpserver.Register(e, &httpserver.Deps{
		HealthHandler:  &httpserver.HealthHTTP{ServiceName: cfg.ServiceName, Version: cfg.AppVersion},
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		CartHandler:    &httpserver.CartHTTP{Svc: cartSvc},
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("mobile api listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = client.Disconnect(shutdownCtx)

	log.Println("mobile api stopped")
}
