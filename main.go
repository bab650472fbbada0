package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/username/fincalc/src/cache"
	"github.com/username/fincalc/src/config"
	"github.com/username/fincalc/src/handlers"
	"github.com/username/fincalc/src/logger"
	"github.com/username/fincalc/src/services"
	"github.com/username/fincalc/src/tables"
)

var limiter *rate.Limiter

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded", "path", r.URL.Path)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{}
	for _, origin := range config.Cfg.AllowedOrigins {
		allowedOrigins[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Accept-Encoding")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	logger.L.Info("fincalc backend server starting...")

	logger.L.Info("Loading rate tables...", "dataDir", config.Cfg.DataDir)
	store, err := tables.Load(config.Cfg.DataDir)
	if err != nil {
		logger.L.Error("Failed to load rate tables", "error", err)
		stdlog.Fatalf("Cannot start without rate tables: %v", err)
	}

	var resultCache cache.Cache
	if config.Cfg.RedisAddr != "" {
		logger.L.Info("Using Redis result cache", "addr", config.Cfg.RedisAddr)
		resultCache = cache.NewRedisCache(config.Cfg.RedisAddr, config.Cfg.CacheTTL)
	} else {
		resultCache = cache.NewMemoryCache(config.Cfg.CacheTTL, services.CacheCleanupInterval)
	}

	calculatorService := services.NewCalculatorService(store, resultCache)

	taxHandler := handlers.NewTaxHandler(calculatorService)
	loanHandler := handlers.NewLoanHandler(calculatorService)
	bondHandler := handlers.NewBondHandler(calculatorService)
	housingHandler := handlers.NewHousingHandler()

	limiter = rate.NewLimiter(rate.Every(config.Cfg.RateLimitInterval), config.Cfg.RateLimitBurst)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(handlers.ContextualLoggerMiddleware)
	r.Use(enableCORS)
	r.Use(rateLimitMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "fincalc backend is running"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/tax/federal", taxHandler.HandleFederalTax)
		r.Get("/tax/state", taxHandler.HandleStateTax)
		r.Get("/tax/standard-deduction", taxHandler.HandleStandardDeduction)

		r.Get("/loan/schedule", loanHandler.HandleGetSchedule)
		r.Get("/loan/balance", loanHandler.HandleGetBalance)
		r.Get("/loan/deductible-interest", loanHandler.HandleGetDeductibleInterest)

		r.Get("/bond/value", bondHandler.HandleGetValue)

		r.Get("/housing/insurance", housingHandler.HandleGetInsurance)
		r.Get("/housing/property-tax", housingHandler.HandleGetPropertyTax)
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
}
