package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jdelort/cafe-manager-api/internal/application/analytics"
	"github.com/jdelort/cafe-manager-api/internal/application/auth"
	"github.com/jdelort/cafe-manager-api/internal/application/inventory"
	"github.com/jdelort/cafe-manager-api/internal/application/news"
	"github.com/jdelort/cafe-manager-api/internal/application/orders"
	"github.com/jdelort/cafe-manager-api/internal/application/shoppinglist"
	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	InventoryUC     *inventory.UseCase
	PhysicalCountUC *inventory.PhysicalCountUseCase
	ShoppingListUC  *shoppinglist.UseCase
	PDFGen          shoppinglist.PDFGenerator
	OrderUC         *orders.UseCase
	NewsUC          *news.UseCase
	DashboardUC     *appanalytics.DashboardUseCase
	AuthUC          *auth.UseCase
	JWTSecret       string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Gestion réservée à l'admin et au gérant (les serveurs n'éditent pas le stock).
	manage := RequireRole(entity.RoleAdmin, entity.RoleGerant)

	// Inventaire
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.PhysicalCountUC)
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", manage, inventoryHandler.Create)
	inv.Post("/bulk-delete", manage, inventoryHandler.BulkDelete)
	inv.Post("/import", manage, inventoryHandler.ImportCSV)
	inv.Post("/physical-count", manage, inventoryHandler.PhysicalCount)
	inv.Get("/:id", inventoryHandler.GetByID)
	inv.Put("/:id", manage, inventoryHandler.Update)
	inv.Patch("/:id/quantity", manage, inventoryHandler.ChangeQuantity)
	inv.Delete("/:id", manage, inventoryHandler.Delete)

	// Liste de courses
	sl := protected.Group("/shopping-list")
	shoppingHandler := NewShoppingListHandler(deps.ShoppingListUC, deps.PDFGen)
	sl.Get("/", shoppingHandler.List)
	sl.Get("/export", shoppingHandler.Export)
	sl.Post("/add", manage, shoppingHandler.Add)
	sl.Post("/auto-add-low-stock", manage, shoppingHandler.AutoAddLowStock)
	sl.Put("/:id", manage, shoppingHandler.Update)
	sl.Delete("/:id", manage, shoppingHandler.Delete)
	sl.Post("/:id/mark-ordered", manage, shoppingHandler.MarkOrdered)
	sl.Post("/:id/mark-received", manage, shoppingHandler.MarkReceived)

	// Commandes POS (tous les rôles connectés: les serveurs encaissent)
	ord := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ord.Post("/", orderHandler.Create)
	ord.Get("/", orderHandler.List)
	ord.Get("/:id", orderHandler.GetByID)
	ord.Post("/:id/pay", orderHandler.Pay)
	ord.Post("/:id/cancel", orderHandler.Cancel)

	// Actualités
	newsGroup := protected.Group("/news")
	newsHandler := NewNewsHandler(deps.NewsUC)
	newsGroup.Get("/", newsHandler.List)
	newsGroup.Get("/:id", newsHandler.GetByID)
	newsGroup.Post("/", manage, newsHandler.Create)
	newsGroup.Put("/:id", manage, newsHandler.Update)
	newsGroup.Delete("/:id", manage, newsHandler.Delete)

	// Tableau de bord (chiffre d'affaires: admin et gérant)
	dash := protected.Group("/dashboard", manage)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dash.Get("/summary", dashboardHandler.GetSummary)
}
