package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	models "github.com/hidestyle/storefront/internal/models"
	repo "github.com/hidestyle/storefront/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetProductsHandler godoc
// @Summary List products
// @Description Lists the catalog, optionally narrowed to one category and ordered by the sort parameter
// @Tags products
// @Produce json
// @Param category query string false "Exact-match category filter"
// @Param sort query string false "Sort order (newest | price-asc | price-desc | featured)" default(newest)
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	products, err := productRepo.List(repo.ListOptions{
		Category: q.Get("category"),
		Sort:     repo.NormalizeSort(q.Get("sort")),
	})
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "could not fetch products")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		// an identifier that cannot exist resolves to nothing
		errorJSON(w, http.StatusNotFound, "product not found")
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			errorJSON(w, http.StatusNotFound, "product not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "could not fetch product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {array} ProductValidationError
// @Failure 500 {object} ErrorResponse
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	now := time.Now().UTC()
	product := productFromRequest(req)
	product.CreatedAt = now
	product.UpdatedAt = now

	created, err := productRepo.Create(product)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "could not create product")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Replaces the mutable fields of an existing product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} models.Product
// @Failure 400 {array} ProductValidationError
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusNotFound, "product not found")
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := productFromRequest(req)
	product.ID = id
	product.UpdatedAt = time.Now().UTC()

	updated, err := productRepo.Update(product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			errorJSON(w, http.StatusNotFound, "product not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "could not update product")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Removes a product. Deleting an absent product still succeeds, so retries are harmless.
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "Deleted"
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := productRepo.Delete(id); err != nil && !errors.Is(err, repo.ErrProductNotFound) {
		errorJSON(w, http.StatusInternalServerError, "could not delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MethodNotAllowed builds the fallback for unsupported verbs on a route,
// naming the allowed set in the Allow header.
func MethodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		errorJSON(w, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method))
	}
}

func productFromRequest(req ProductRequest) models.Product {
	images := req.Images
	if images == nil {
		images = []string{}
	}
	return models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		Description: req.Description,
		Stock:       req.Stock,
		Featured:    req.Featured,
		Images:      images,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
	}
}
