package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/catalog-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/catalog-admin/internal/errors"
	"github.com/aaravmahajanofficial/catalog-admin/internal/models"
	service "github.com/aaravmahajanofficial/catalog-admin/internal/services"
	"github.com/aaravmahajanofficial/catalog-admin/internal/utils"
	"github.com/aaravmahajanofficial/catalog-admin/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const cacheHeader = "X-Cache"

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

func requireClaims(w http.ResponseWriter, r *http.Request) (*models.Claims, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized request: missing user claims")
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return nil, logger, false
	}

	return claims, logger.With(slog.String("userID", claims.UserID.String())), true
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set(cacheHeader, "HIT")
		return
	}
	w.Header().Set(cacheHeader, "MISS")
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Description	Creates a product in the authenticated user's catalog. SKU must be unique per user.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product details"
//	@Success		201		{object}	models.Product				"Product created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		409		{object}	response.ErrorResponse		"SKU already exists"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//
//	@Summary		Get a product by ID
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Product			"Product"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID format"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Product belongs to another user"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProduct(r.Context(), claims.UserID, id)
		if err != nil {
			logger.Error("Failed to get product",
				slog.String("productId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Description	Applies a partial update. Omitted fields are left unchanged.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID (UUID)"	Format(uuid)
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product				"Updated product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Product belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Failure		409		{object}	response.ErrorResponse		"SKU already exists"
//	@Security		BearerAuth
//	@Router			/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input")
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Error("Failed to update product",
				slog.String("productId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//
//	@Summary	Delete a product
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Success	200	{object}	map[string]string		"Deleted product id"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Security	BearerAuth
//	@Router		/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), claims.UserID, id); err != nil {
			logger.Error("Failed to delete product",
				slog.String("productId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.String("productId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"id": id.String()})
	}
}

// ReplaceChannels godoc
//
//	@Summary		Replace a product's channel listings
//	@Description	The given list replaces every existing channel of the product.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Product ID (UUID)"	Format(uuid)
//	@Param			channels	body		models.ReplaceChannelsRequest	true	"Channels"
//	@Success		200			{object}	models.Product					"Updated product"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		403			{object}	response.ErrorResponse			"Product belongs to another user"
//	@Failure		404			{object}	response.ErrorResponse			"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{id}/channels [put]
func (h *ProductHandler) ReplaceChannels() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.ReplaceChannelsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid channels input")
			return
		}

		product, err := h.productService.ReplaceChannels(r.Context(), claims.UserID, id, req.Channels)
		if err != nil {
			logger.Error("Failed to replace channels",
				slog.String("productId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Channels replaced", slog.String("productId", id.String()), slog.Int("channels", len(product.Channels)))
		response.Success(w, http.StatusOK, product)
	}
}

// BulkUpdate godoc
//
//	@Summary		Apply one change to many products
//	@Description	Each id is reported separately; a failing id does not stop the others.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.BulkUpdateRequest	true	"Ids and changes"
//	@Success		200		{object}	models.BulkUpdateResult		"Per-id result"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/products/bulk [patch]
func (h *ProductHandler) BulkUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req models.BulkUpdateRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid bulk update input")
			return
		}

		result, err := h.productService.BulkUpdate(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Bulk update failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Bulk update finished", slog.Int("updated", result.Updated), slog.Int("failed", len(result.Failures)))
		response.Success(w, http.StatusOK, result)
	}
}

// parseListQuery reads filters and pagination from the query string.
// Missing page and limit take their defaults; ranges are left to the validator.
func parseListQuery(r *http.Request) (*models.ListProductsQuery, error) {

	q := r.URL.Query()

	query := &models.ListProductsQuery{
		Filter: models.ProductFilter{
			Search:   strings.TrimSpace(q.Get("search")),
			Brand:    strings.TrimSpace(q.Get("brand")),
			Category: strings.TrimSpace(q.Get("category")),
		},
		Pagination: models.Pagination{
			SortBy:    models.SortField(q.Get("sortBy")),
			SortOrder: models.SortOrder(strings.ToLower(q.Get("sortOrder"))),
		},
	}

	if raw := strings.TrimSpace(q.Get("supplierId")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.ValidationError("Query parameter supplierId must be a UUID").WithDetail(raw)
		}
		query.Filter.SupplierID = &id
	}

	var err error

	if query.Filter.Active, err = utils.QueryBool(r, "active"); err != nil {
		return nil, err
	}
	if query.Filter.HasPhoto, err = utils.QueryBool(r, "hasPhoto"); err != nil {
		return nil, err
	}
	if query.Filter.MinCost, err = utils.QueryFloat(r, "minCost"); err != nil {
		return nil, err
	}
	if query.Filter.MaxCost, err = utils.QueryFloat(r, "maxCost"); err != nil {
		return nil, err
	}
	if query.Pagination.Page, err = utils.QueryInt(r, "page", models.DefaultPage); err != nil {
		return nil, err
	}
	if query.Pagination.Limit, err = utils.QueryInt(r, "limit", models.DefaultLimit); err != nil {
		return nil, err
	}

	return query, nil
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	Filters, sorts and paginates the authenticated user's catalog. Results are cached per query.
//	@Tags			Products
//	@Produce		json
//	@Param			search		query		string						false	"Substring of name, sku or brand"
//	@Param			brand		query		string						false	"Exact brand"
//	@Param			category	query		string						false	"Exact category"
//	@Param			supplierId	query		string						false	"Supplier ID (UUID)"	Format(uuid)
//	@Param			active		query		bool						false	"Active flag"
//	@Param			hasPhoto	query		bool						false	"Has a photo"
//	@Param			minCost		query		number						false	"Minimum item cost"
//	@Param			maxCost		query		number						false	"Maximum item cost"
//	@Param			page		query		int							false	"Page number (default: 1)"			minimum(1)
//	@Param			limit		query		int							false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Param			sortBy		query		string						false	"Sort field"	Enums(name, createdAt, updatedAt, costItem)
//	@Param			sortOrder	query		string						false	"Sort order"	Enums(asc, desc)
//	@Success		200			{object}	models.ProductListResult	"Page of products"
//	@Header			200			{string}	X-Cache						"HIT or MISS"
//	@Failure		400			{object}	response.ErrorResponse		"Invalid query"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		query, err := parseListQuery(r)
		if err != nil {
			logger.Warn("Invalid list query", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !utils.Validate(w, query, h.validator) {
			return
		}

		result, hit, err := h.productService.ListProducts(r.Context(), claims.UserID, query)
		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		setCacheHeader(w, hit)
		response.Success(w, http.StatusOK, result)
	}
}

// Summary godoc
//
//	@Summary	Catalog summary
//	@Tags		Products
//	@Produce	json
//	@Success	200	{object}	models.ProductSummary	"Counts and total cost"
//	@Header		200	{string}	X-Cache					"HIT or MISS"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/products/summary [get]
func (h *ProductHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		summary, hit, err := h.productService.Summary(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to build summary", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		setCacheHeader(w, hit)
		response.Success(w, http.StatusOK, summary)
	}
}

// FilterOptions godoc
//
//	@Summary	Distinct filter values
//	@Tags		Products
//	@Produce	json
//	@Success	200	{object}	models.FilterOptions	"Brands, categories and supplier ids"
//	@Header		200	{string}	X-Cache					"HIT or MISS"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/products/filter-options [get]
func (h *ProductHandler) FilterOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		options, hit, err := h.productService.FilterOptions(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to load filter options", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		setCacheHeader(w, hit)
		response.Success(w, http.StatusOK, options)
	}
}

// ClearCache godoc
//
//	@Summary	Drop the caller's cached listings
//	@Tags		Products
//	@Produce	json
//	@Success	200	{object}	map[string]bool			"Cache cleared"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/products/cache [delete]
func (h *ProductHandler) ClearCache() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		h.productService.ClearCache(r.Context(), claims.UserID)

		logger.Info("Product cache cleared")
		response.Success(w, http.StatusOK, map[string]bool{"cleared": true})
	}
}
