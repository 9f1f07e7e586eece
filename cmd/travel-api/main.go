// README: Entry point; loads config, wires store, AI provider, and limiter, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikbakhtenb4/task-stak-travel/internal/ai"
	"github.com/nikbakhtenb4/task-stak-travel/internal/config"
	"github.com/nikbakhtenb4/task-stak-travel/internal/geo"
	httptransport "github.com/nikbakhtenb4/task-stak-travel/internal/http"
	"github.com/nikbakhtenb4/task-stak-travel/internal/infra"
	"github.com/nikbakhtenb4/task-stak-travel/internal/modules/itinerary"
	"github.com/nikbakhtenb4/task-stak-travel/internal/modules/ratelimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	readPool, err := infra.NewDB(ctx, cfg.DB.ReadDSN)
	if err != nil {
		log.Fatalf("db read pool: %v", err)
	}
	writePool := readPool
	if cfg.DB.WriteDSN != cfg.DB.ReadDSN {
		writePool, err = infra.NewDB(ctx, cfg.DB.WriteDSN)
		if err != nil {
			log.Fatalf("db write pool: %v", err)
		}
	}

	provider, err := newProvider(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("ai provider: %v", err)
	}

	var geocoder itinerary.Geocoder
	if cfg.Maps.APIKey != "" {
		g, err := geo.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps client: %v", err)
		}
		geocoder = g
	}

	var limiter ratelimit.Limiter = ratelimit.NewMemory(cfg.RateLimit.Max, cfg.RateLimit.Window)
	if cfg.Redis.Addr != "" {
		limiter = ratelimit.NewRedis(infra.NewRedis(cfg.Redis.Addr), cfg.RateLimit.Max, cfg.RateLimit.Window)
	}

	store := itinerary.NewStore(readPool, writePool)
	itinerarySvc := itinerary.NewService(store, provider, geocoder)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(itinerarySvc, limiter),
	}

	go func() {
		log.Printf("listening on %s", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()

	// In-flight requests get a short grace period; detached jobs past the
	// completion call may still be abandoned mid-write on shutdown.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}

func newProvider(ctx context.Context, cfg config.AIConfig) (ai.CompletionProvider, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiKey == "" {
			log.Fatal("GEMINI_API_KEY is required for the gemini provider")
		}
		model := cfg.Model
		if model == "" {
			model = "gemini-2.0-flash"
		}
		return ai.NewGeminiProvider(ctx, cfg.GeminiKey, model, cfg.Timeout)
	default:
		if cfg.OpenAIKey == "" {
			log.Fatal("OPENAI_API_KEY is required for the openai provider")
		}
		model := cfg.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		return ai.NewOpenAIProvider(cfg.OpenAIKey, model, cfg.Timeout), nil
	}
}
