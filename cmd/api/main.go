package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mentorlab/coachdesk/internal/config"
	"github.com/mentorlab/coachdesk/internal/handler"
	"github.com/mentorlab/coachdesk/internal/model/coach"
	"github.com/mentorlab/coachdesk/internal/service/responder"
	"github.com/mentorlab/coachdesk/internal/service/roster"
	sessionservice "github.com/mentorlab/coachdesk/internal/service/session"
	"github.com/mentorlab/coachdesk/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	catalog := coach.NewCatalog(coach.Seed())

	var sessionStore store.Store
	if cfg.Store.PostgresDSN != "" {
		pg := store.NewPostgresStore(ctx, cfg.Store.PostgresDSN)
		defer pg.Close()
		sessionStore = pg
		log.Println("session store: postgres")
	} else {
		sessionStore = store.NewMemoryStore()
		log.Println("session store: in-memory")
	}

	sessionSvc := sessionservice.NewService(sessionStore, roster.DefaultPolicy(), responder.Template)
	router := handler.NewRouter(catalog, sessionSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Coachdesk backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
