package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joycybakery/fournil/app/services"
	"github.com/joycybakery/fournil/pkg/bind"
	"github.com/joycybakery/fournil/pkg/response"
	"github.com/joycybakery/fournil/pkg/session"
)

type CartController struct {
	carts   *services.CartStore
	catalog *services.CatalogService
}

func NewCartController(carts *services.CartStore) *CartController {
	return &CartController{
		carts:   carts,
		catalog: services.NewCatalogService(),
	}
}

func (c *CartController) cart(r *http.Request) *services.Cart {
	return c.carts.For(session.FromCtx(r).ID())
}

// cartView is the cart as the storefront renders it: lines plus the derived
// total and badge count.
func cartView(cart *services.Cart) map[string]interface{} {
	return map[string]interface{}{
		"lines": cart.Lines(),
		"total": cart.Total(),
		"count": cart.Count(),
	}
}

// Show returns the session's cart.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	response.Success(w, cartView(c.cart(r)))
}

type addLineRequest struct {
	// Catalogue line: just the product id; name and price are snapshotted
	// server-side from the live product.
	ProductID string `json:"productId" validate:"nullable"`

	// Custom/promotional line: caller supplies the details.
	Name          string  `json:"name" validate:"nullable,max=255"`
	Price         float64 `json:"price" validate:"nullable,gte=0"`
	Kind          string  `json:"kind" validate:"nullable,in=product,promotion,custom"`
	Customization string  `json:"customization" validate:"nullable,max=2000"`

	Quantity int `json:"quantity" validate:"nullable,gte=1"`
}

// AddLine merges a line into the cart. A repeated product id increments the
// existing line's quantity instead of appending a duplicate.
func (c *CartController) AddLine(w http.ResponseWriter, r *http.Request) {
	var body addLineRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	line := services.CartLine{
		ID:            body.ProductID,
		Name:          body.Name,
		Price:         body.Price,
		Quantity:      body.Quantity,
		Kind:          body.Kind,
		Customization: body.Customization,
	}

	if body.ProductID != "" {
		// Catalogue lines snapshot name and price from the live product.
		product, err := c.catalog.Find(r.Context(), body.ProductID)
		if err != nil {
			fail(w, r, err)
			return
		}
		line.Name = product.Name
		line.Price = product.Price
		line.Kind = services.LineProduct
	} else if body.Name == "" || body.Price <= 0 {
		response.ValidationError(w, map[string]string{
			"name":  "name and a positive price are required for custom lines",
			"price": "name and a positive price are required for custom lines",
		})
		return
	}

	cart := c.cart(r)
	cart.AddLine(line)
	response.Success(w, cartView(cart))
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,integer"`
}

// SetQuantity updates a line's quantity; zero or less removes the line.
func (c *CartController) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var body setQuantityRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	cart := c.cart(r)
	cart.SetQuantity(chi.URLParam(r, "lineId"), body.Quantity)
	response.Success(w, cartView(cart))
}

// RemoveLine removes a line; removing an absent line is a no-op.
func (c *CartController) RemoveLine(w http.ResponseWriter, r *http.Request) {
	cart := c.cart(r)
	cart.RemoveLine(chi.URLParam(r, "lineId"))
	response.Success(w, cartView(cart))
}

// Clear empties the cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	cart := c.cart(r)
	cart.Clear()
	response.Success(w, cartView(cart))
}
