package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	aicore "github.com/verilens/factcheck-api/src/ai/core"
	_ "github.com/verilens/factcheck-api/src/ai/providers"
	"github.com/verilens/factcheck-api/src/api/config"
	"github.com/verilens/factcheck-api/src/api/data"
	"github.com/verilens/factcheck-api/src/api/webserver"
)

func main() {
	cfg := config.Load()

	// Provider client is process-wide: built once, reused across requests.
	aiClient, err := aicore.NewClient(aicore.FactoryConfig{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		GeminiKey: cfg.GeminiKey,
		OpenAIKey: cfg.OpenAIKey,
	})
	if err != nil {
		log.Fatalf("ai client: %v", err)
	}

	var db *gorm.DB
	if cfg.MySQLDSN != "" {
		db = data.MustMySQL(cfg.MySQLDSN)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb = data.MustRedis(cfg.RedisURL)
	}

	router := webserver.New(cfg, db, rdb, aiClient)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("FactCheck API listening on %s (provider=%s env=%s)", cfg.Port, cfg.Provider, cfg.Env)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
