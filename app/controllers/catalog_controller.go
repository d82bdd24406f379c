package controllers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/app/services"
	"github.com/joycybakery/fournil/pkg/bind"
	"github.com/joycybakery/fournil/pkg/response"
)

// maxImageBytes caps product photo uploads at 5 MB.
const maxImageBytes = 5 << 20

type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{service: services.NewCatalogService()}
}

// Index lists products. The storefront passes available=true; the admin
// console omits it to see everything. ?category= filters by category.
func (c *CatalogController) Index(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	availableOnly := r.URL.Query().Get("available") == "true"

	products, err := c.service.List(r.Context(), category, availableOnly)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// Categories returns the category set, in display order.
func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, models.Categories)
}

// Show returns a single product.
func (c *CatalogController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.service.Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

// Store creates a product.
func (c *CatalogController) Store(w http.ResponseWriter, r *http.Request) {
	var body services.ProductInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Create(r.Context(), body)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, product)
}

// Update replaces a product's mutable fields.
func (c *CatalogController) Update(w http.ResponseWriter, r *http.Request) {
	var body services.ProductInput
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Update(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

// Destroy deletes a product.
func (c *CatalogController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Product deleted")
}

// UploadImage stores a raw image body as the product's photo. The client
// sends the image bytes directly with its Content-Type.
func (c *CatalogController) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Image too large (max 5 MB)")
		return
	}
	if len(data) == 0 {
		response.Error(w, http.StatusUnprocessableEntity, "Empty image body")
		return
	}

	product, err := c.service.AttachImage(r.Context(), chi.URLParam(r, "id"), r.Header.Get("Content-Type"), data)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}
