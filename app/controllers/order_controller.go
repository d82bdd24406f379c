package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/app/services"
	"github.com/joycybakery/fournil/pkg/bind"
	"github.com/joycybakery/fournil/pkg/middleware"
	"github.com/joycybakery/fournil/pkg/response"
	"github.com/joycybakery/fournil/pkg/session"
)

type OrderController struct {
	service *services.OrderService
	carts   *services.CartStore
}

func NewOrderController(carts *services.CartStore) *OrderController {
	return &OrderController{
		service: services.NewOrderService(),
		carts:   carts,
	}
}

type checkoutRequest struct {
	Notes        string `json:"notes" validate:"nullable,max=2000"`
	DeliveryDate string `json:"deliveryDate" validate:"nullable,date"`
}

// Checkout converts the session cart into a pending order for the
// authenticated customer. The cart is cleared only after the write
// succeeds.
func (c *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	var body checkoutRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	claims, ok := middleware.ClaimsFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	cart := c.carts.For(session.FromCtx(r).ID())
	principal := services.Principal{UserID: claims.UserID, Email: claims.Email}

	order, err := c.service.Place(r.Context(), principal, cart.Lines(), body.Notes, body.DeliveryDate)
	if err != nil {
		fail(w, r, err)
		return
	}

	cart.Clear()
	response.Created(w, order)
}

type phoneOrderLine struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Price         float64 `json:"price" validate:"numeric,gte=0"`
	Quantity      int     `json:"quantity" validate:"required,integer,gte=1"`
	Customization string  `json:"customization" validate:"nullable,max=2000"`
}

type phoneOrderRequest struct {
	CustomerName  string           `json:"customerName" validate:"required,max=255"`
	CustomerPhone string           `json:"customerPhone" validate:"required,max=50"`
	CustomerEmail string           `json:"customerEmail" validate:"nullable,email"`
	Items         []phoneOrderLine `json:"items"`
	Notes         string           `json:"notes" validate:"nullable,max=2000"`
	DeliveryDate  string           `json:"deliveryDate" validate:"nullable,date"`
}

// PhoneOrder lets staff record an order taken over the phone. The staff
// scratch-list travels in the request body; no session cart is involved.
func (c *OrderController) PhoneOrder(w http.ResponseWriter, r *http.Request) {
	var body phoneOrderRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	lines := make([]services.CartLine, 0, len(body.Items))
	for _, item := range body.Items {
		lines = append(lines, services.CartLine{
			Name:          item.Name,
			Price:         item.Price,
			Quantity:      item.Quantity,
			Kind:          services.LineCustom,
			Customization: item.Customization,
		})
	}

	customer := services.PhoneCustomer{
		Name:  body.CustomerName,
		Phone: body.CustomerPhone,
		Email: body.CustomerEmail,
	}

	order, err := c.service.PlacePhone(r.Context(), customer, lines, body.Notes, body.DeliveryDate)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, order)
}

// Index lists all orders for staff, most recent first. ?status= filters;
// "all" or empty returns everything.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, orders)
}

// Counts returns per-status totals for the admin filter bar.
func (c *OrderController) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := c.service.Counts(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, counts)
}

// Meta exposes the status taxonomy and its display colours. The cancelled
// status appears here even though no transition reaches it.
func (c *OrderController) Meta(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"statuses":    models.Statuses,
		"colors":      models.StatusColors,
		"transitions": models.Transitions,
	})
}

// Mine lists the authenticated customer's own orders.
func (c *OrderController) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}
	orders, err := c.service.ForUser(r.Context(), userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, orders)
}

type transitionRequest struct {
	Status string `json:"status" validate:"required"`
}

// Transition advances an order to the next lifecycle status.
func (c *OrderController) Transition(w http.ResponseWriter, r *http.Request) {
	var body transitionRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Transition(r.Context(), chi.URLParam(r, "id"), body.Status)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, order)
}

// Destroy deletes an order permanently.
func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Order deleted")
}
