package handler

import (
	"errors"
	"net/http"
	"strings"

	"products-api/internal/model"
	"products-api/internal/service"

	"github.com/rs/zerolog"
)

// DeleteResponse is returned after a product is removed.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list products failed")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeIDError(w, err, h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, model.ErrProductNotFound.Message, h.logger)
			return
		}
		h.logger.Error().Err(err).Int64("product_id", id).Msg("get product failed")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeErrorDetails(w, http.StatusBadRequest, "Invalid request body", err.Error(), h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if h.writeValidationError(w, err) {
			return
		}
		h.logger.Error().Err(err).Msg("create product failed")
		writeError(w, http.StatusInternalServerError, "Failed to create product", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeIDError(w, err, h.logger)
		return
	}

	var input model.ProductInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeErrorDetails(w, http.StatusBadRequest, "Invalid request body", err.Error(), h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, &input)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, model.ErrProductNotFound.Message, h.logger)
			return
		}
		if h.writeValidationError(w, err) {
			return
		}
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to update product", err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeIDError(w, err, h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, model.ErrProductNotFound.Message, h.logger)
			return
		}
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to delete product", err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Success: true})
}

// writeValidationError writes a 400 response when err is a validation failure.
func (h *ProductHandler) writeValidationError(w http.ResponseWriter, err error) bool {
	ve, ok := model.AsValidationError(err)
	if !ok {
		return false
	}
	writeErrorDetails(w, http.StatusBadRequest, "Missing required fields", strings.Join(ve.Fields, ", "), h.logger)
	return true
}
