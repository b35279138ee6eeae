package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turnify/infrastructure/audit"
	"turnify/infrastructure/cache"
	"turnify/infrastructure/catalog"
	httpserver "turnify/infrastructure/http"
	"turnify/infrastructure/rbac"
	"turnify/infrastructure/sqlite"
	"turnify/returns/approval"
	"turnify/returns/flow"
	"turnify/returns/registry"
)

func main() {
	addr := getenv("APP_ADDR", ":8080")
	dbPath := getenv("SQLITE_PATH", "turnify.db")

	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db, "infrastructure/sqlite/migrations"); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	if err := catalog.Seed(context.Background(), db); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	sessionCache := cache.NewUserSessionCache()
	userCache := cache.NewUserCache()
	rbacCache := cache.NewRbacRolesCache()
	rbacSvc := rbac.New(rbacCache)
	auditSvc := audit.NewService()
	flows := flow.NewStore()
	reg := registry.NewSeeded()
	eng := approval.NewEngine()

	approvalDelay := 3 * time.Second
	if raw := os.Getenv("APPROVAL_DELAY"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			approvalDelay = d
		}
	}

	server := httpserver.NewServer(addr, db, sessionCache, userCache, rbacSvc, rbacCache, auditSvc, flows, reg, eng, approvalDelay)
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("turnify listening on %s", addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
