// Package routes registers the JSON API surface.
package routes

import (
	"github.com/joycybakery/fournil/app/controllers"
	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/app/services"
	"github.com/joycybakery/fournil/pkg/middleware"
	"github.com/joycybakery/fournil/pkg/rbac"
	"github.com/joycybakery/fournil/pkg/router"
)

// RegisterAPI mounts every endpoint. Public storefront routes come first,
// then authenticated customer routes, then the admin console behind the
// admin role.
func RegisterAPI(r *router.Router) {
	carts := services.NewCartStore()

	authController := controllers.NewAuthController()
	catalog := controllers.NewCatalogController()
	cart := controllers.NewCartController(carts)
	orders := controllers.NewOrderController(carts)
	calendar := controllers.NewCalendarController()
	vacations := controllers.NewVacationController()
	team := controllers.NewTeamController()
	contact := controllers.NewContactController()

	api := r.Group("/api")

	// ── Public storefront ──────────────────────────────────────────────────
	api.Post("/register", "auth.register", authController.Register)
	api.Post("/login", "auth.login", authController.Login)

	api.Get("/products", "products.index", catalog.Index)
	api.Get("/products/categories", "products.categories", catalog.Categories)
	api.Get("/products/{id}", "products.show", catalog.Show)

	api.Get("/cart", "cart.show", cart.Show)
	api.Post("/cart/lines", "cart.add", cart.AddLine)
	api.Put("/cart/lines/{lineId}", "cart.quantity", cart.SetQuantity)
	api.Delete("/cart/lines/{lineId}", "cart.remove", cart.RemoveLine)
	api.Delete("/cart", "cart.clear", cart.Clear)

	api.Post("/contact", "contact.send", contact.Send)

	// ── Authenticated customers ────────────────────────────────────────────
	authed := api.Group("", middleware.AuthMiddleware)
	authed.Get("/me", "auth.me", authController.Me)
	authed.Post("/orders", "orders.checkout", orders.Checkout)
	authed.Get("/orders/mine", "orders.mine", orders.Mine)

	// ── Admin console ──────────────────────────────────────────────────────
	admin := api.Group("/admin", middleware.AuthMiddleware, rbac.HasRole(models.RoleAdmin))

	admin.Post("/products", "admin.products.store", catalog.Store)
	admin.Put("/products/{id}", "admin.products.update", catalog.Update)
	admin.Delete("/products/{id}", "admin.products.destroy", catalog.Destroy)
	admin.Post("/products/{id}/image", "admin.products.image", catalog.UploadImage)

	admin.Get("/orders", "admin.orders.index", orders.Index)
	admin.Get("/orders/counts", "admin.orders.counts", orders.Counts)
	admin.Get("/orders/meta", "admin.orders.meta", orders.Meta)
	admin.Post("/orders/phone", "admin.orders.phone", orders.PhoneOrder)
	admin.Put("/orders/{id}/status", "admin.orders.transition", orders.Transition)
	admin.Delete("/orders/{id}", "admin.orders.destroy", orders.Destroy)

	admin.Get("/calendar", "admin.calendar.month", calendar.Month)

	admin.Get("/vacations", "admin.vacations.index", vacations.Index)
	admin.Post("/vacations", "admin.vacations.store", vacations.Store)
	admin.Delete("/vacations/{id}", "admin.vacations.destroy", vacations.Destroy)

	admin.Get("/team", "admin.team.index", team.Index)
	admin.Post("/team", "admin.team.store", team.Store)
	admin.Delete("/team/{id}", "admin.team.destroy", team.Destroy)
}
