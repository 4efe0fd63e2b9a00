package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"busbooking/internal/auth"
	"busbooking/internal/cache"
	"busbooking/internal/catalog"
	"busbooking/internal/config"
	api "busbooking/internal/http"
	"busbooking/internal/http/handlers"
	"busbooking/internal/ledger"
	"busbooking/internal/services"
	"busbooking/internal/storage"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	store := buildStore(env)

	led := ledger.New()
	persisted, err := store.Load()
	if err != nil {
		log.Fatalf("failed to load booking ledger: %v", err)
	}
	led.Restore(persisted)
	log.Printf("ledger hydrated with %d booking(s)", led.Len())

	cat := catalog.New()
	bookingSvc := services.NewBookingService(cat, led, store)
	tripCache := cache.New(config.NewRedisClient(env.RedisAddr), 5*time.Minute)

	h := &handlers.Handlers{
		Env:     env,
		Catalog: cat,
		Booking: bookingSvc,
		Docs:    services.DocsService{Ledger: led, Catalog: cat},
		Users:   auth.NewUserStore(),
		Cache:   tripCache,
	}

	r := api.NewRouter(h)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly")
}

func buildStore(env config.Env) storage.Store {
	if env.StoreDriver == "mysql" {
		if env.MySQLDSN == "" {
			log.Fatal("STORE_DRIVER=mysql requires MYSQL_DSN")
		}
		db, err := config.ConnectDB(env.MySQLDSN)
		if err != nil {
			log.Fatalf("failed to connect to MySQL: %v", err)
		}
		log.Println("using MySQL booking store")
		return storage.NewMySQLStore(db)
	}
	log.Printf("using file booking store at %s", env.StorePath)
	return storage.NewFileStore(env.StorePath)
}
