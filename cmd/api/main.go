// @title                       Propostas API
// @version                     1.0
// @description                 Cotización y propuestas comerciales de ERP jurídico.
// @host                        127.0.0.1:8080
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Propostas-api/docs"
	"github.com/jhoicas/Propostas-api/internal/application/analytics"
	"github.com/jhoicas/Propostas-api/internal/application/auth"
	"github.com/jhoicas/Propostas-api/internal/application/catalog"
	"github.com/jhoicas/Propostas-api/internal/application/proposal"
	"github.com/jhoicas/Propostas-api/internal/domain/repository"
	"github.com/jhoicas/Propostas-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/Propostas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Propostas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Propostas-api/internal/interfaces/http"
	"github.com/jhoicas/Propostas-api/pkg/config"
	"github.com/jhoicas/Propostas-api/pkg/logger"
)

// storage repositorios del driver elegido y su cierre.
type storage struct {
	proposals   repository.ProposalRepository
	consultants repository.ConsultantRepository
	close       func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		kv, err := localstore.NewRedisKV(ctx, cfg.Redis.URL, cfg.Redis.Prefix)
		if err != nil {
			return nil, err
		}
		return &storage{
			proposals:   localstore.NewProposalStore(kv, log),
			consultants: localstore.NewConsultantStore(kv, log),
			close:       func() { _ = kv.Close() },
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &storage{
			proposals:   postgres.NewProposalRepository(pool),
			consultants: postgres.NewConsultantRepository(pool),
			close:       pool.Close,
		}, nil
	}

	kv, err := localstore.NewFileKV(cfg.Storage.Dir)
	if err != nil {
		return nil, err
	}
	return &storage{
		proposals:   localstore.NewProposalStore(kv, log),
		consultants: localstore.NewConsultantStore(kv, log),
		close:       func() {},
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer store.close()

	// PDF: propuesta comercial en A4
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	proposalUC := proposal.NewUseCase(store.proposals, store.consultants, pdfGenerator, proposal.Options{
		ValidityDays: cfg.Proposal.ValidityDays,
		CompanyName:  cfg.Proposal.CompanyName,
	}, log)
	consultantUC := auth.NewConsultantUseCase(store.consultants, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	dashboardUC := analytics.NewDashboardUseCase(store.proposals)
	catalogUC := catalog.NewUseCase()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Propostas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProposalUC:   proposalUC,
		CatalogUC:    catalogUC,
		ConsultantUC: consultantUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", fmt.Sprintf("http://%s", cfg.HTTP.Addr())).Msg("servidor escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
