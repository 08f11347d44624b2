package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Propostas-api/internal/application/analytics"
	"github.com/jhoicas/Propostas-api/internal/application/auth"
	"github.com/jhoicas/Propostas-api/internal/application/catalog"
	"github.com/jhoicas/Propostas-api/internal/application/proposal"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProposalUC   *proposal.UseCase
	CatalogUC    *catalog.UseCase
	ConsultantUC *auth.ConsultantUseCase
	DashboardUC  *analytics.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo y cotización (público)
	quoteHandler := NewQuoteHandler(deps.ProposalUC, deps.CatalogUC)
	api.Get("/plans", quoteHandler.Products)
	api.Get("/plans/:product", quoteHandler.Plans)
	api.Post("/quotes", quoteHandler.Quote)

	// Consultor (público: configurar el perfil emite la sesión)
	consultant := api.Group("/consultant")
	authHandler := NewAuthHandler(deps.ConsultantUC)
	consultant.Get("/", authHandler.GetProfile)
	consultant.Put("/", authHandler.SaveProfile)
	consultant.Post("/session", authHandler.StartSession)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sesión de edición
	draft := protected.Group("/draft")
	draftHandler := NewDraftHandler(deps.ProposalUC)
	draft.Get("/", draftHandler.Get)
	draft.Put("/client", draftHandler.SetClient)
	draft.Put("/product", draftHandler.ChangeProduct)
	draft.Put("/usage", draftHandler.SetUsage)
	draft.Put("/addons", draftHandler.SetAddons)
	draft.Put("/discounts", draftHandler.SetDiscounts)
	draft.Put("/migration", draftHandler.SetMigration)
	draft.Put("/extras", draftHandler.SetExtras)
	draft.Put("/terms", draftHandler.SetTerms)
	draft.Post("/reset", draftHandler.Reset)
	draft.Post("/save", draftHandler.Save)
	draft.Get("/pdf", draftHandler.PDF)

	// Historial
	proposals := protected.Group("/proposals")
	proposalHandler := NewProposalHandler(deps.ProposalUC)
	proposals.Get("/", proposalHandler.List)
	proposals.Get("/:id", proposalHandler.GetByID)
	proposals.Delete("/:id", proposalHandler.Delete)
	proposals.Post("/:id/reopen", proposalHandler.Reopen)
	proposals.Get("/:id/pdf", proposalHandler.PDF)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/performance", dashboardHandler.Performance)
}
