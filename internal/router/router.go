package router

import (
	"context"
	"net/http"
	"time"

	mem "bee-store-api/internal/adapters/storage/memory"
	mongostore "bee-store-api/internal/adapters/storage/mongo"
	pg "bee-store-api/internal/adapters/storage/postgres"
	"bee-store-api/internal/adapters/storage/unavailable"
	"bee-store-api/internal/config"
	_ "bee-store-api/internal/docs"
	"bee-store-api/internal/domain/catalog"
	"bee-store-api/internal/domain/orders"
	"bee-store-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config config.Config
	Log    logger.Logger

	// Opcional: repos explícitos (tests). Si vienen los tres, se ignora el env.
	Catalog catalog.Repository
	Orders  orders.Repository
	Diag    StoreDiagnostics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	// Mismo allow-all que el frontend espera; sin credenciales.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	catalogRepo := opts.Catalog
	ordersRepo := opts.Orders
	diag := opts.Diag
	if catalogRepo == nil || ordersRepo == nil || diag == nil {
		catalogRepo, ordersRepo, diag = openStore(opts.Config, log)
	}

	// Services por módulo; orders valida product_ids contra catalog.
	catalogSvc := catalog.NewService(catalogRepo)
	ordersSvc := orders.NewService(ordersRepo, catalogSvc)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", rootHandler())
	r.Get("/api/hello", helloHandler())
	r.Get("/test", testHandler(opts.Config, diag))
	r.Get("/swagger/*", httpSwagger.Handler())

	catalog.RegisterRoutes(r, catalogSvc, log)
	orders.RegisterRoutes(r, ordersSvc)

	return r
}

// openStore elige el backend por env: STORE=memory (dev), DATABASE_URL
// (mongo), DB_DSN (postgres), y si no hay nada, el estado explícito
// "unavailable" para que el server arranque igual y /test lo reporte.
func openStore(cfg config.Config, log logger.Logger) (catalog.Repository, orders.Repository, StoreDiagnostics) {
	switch {
	case cfg.MemoryStore:
		log.Info("using in-memory store", nil)
		return mem.NewCatalogRepo(), mem.NewOrdersRepo(), mem.NewDiagnostics()

	case cfg.DatabaseURL != "":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		db, err := mongostore.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			log.Error("mongo connect failed", map[string]any{"error": err.Error()})
			u := unavailable.New("mongo connection failed")
			return u.Catalog(), u.Orders(), u
		}

		log.Info("connected to mongo", map[string]any{"database": db.Name()})
		return mongostore.NewCatalogRepo(db), mongostore.NewOrdersRepo(db), mongostore.NewDiagnostics(db)

	case cfg.PostgresDSN != "":
		db, err := pg.Open(cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres connect failed", map[string]any{"error": err.Error()})
			u := unavailable.New("postgres connection failed")
			return u.Catalog(), u.Orders(), u
		}
		if err := pg.EnsureSchema(context.Background(), db); err != nil {
			log.Error("postgres schema bootstrap failed", map[string]any{"error": err.Error()})
			u := unavailable.New("postgres schema bootstrap failed")
			return u.Catalog(), u.Orders(), u
		}

		log.Info("connected to postgres", nil)
		return pg.NewCatalogRepo(db), pg.NewOrdersRepo(db), pg.NewDiagnostics(db)

	default:
		log.Warn("no store configured, data endpoints will fail", nil)
		u := unavailable.New("database not configured")
		return u.Catalog(), u.Orders(), u
	}
}
