package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/aaravmahajanofficial/catalog-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/catalog-admin/internal/cache"
	"github.com/aaravmahajanofficial/catalog-admin/internal/catalog"
	appErrors "github.com/aaravmahajanofficial/catalog-admin/internal/errors"
	"github.com/aaravmahajanofficial/catalog-admin/internal/models"
	repository "github.com/aaravmahajanofficial/catalog-admin/internal/repositories"
	"github.com/aaravmahajanofficial/catalog-admin/internal/utils"
	"github.com/google/uuid"
)

type ProductService interface {
	CreateProduct(ctx context.Context, userID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, userID, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, userID, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, userID, id uuid.UUID) error
	ReplaceChannels(ctx context.Context, userID, id uuid.UUID, channels []models.Channel) (*models.Product, error)
	BulkUpdate(ctx context.Context, userID uuid.UUID, req *models.BulkUpdateRequest) (*models.BulkUpdateResult, error)
	ListProducts(ctx context.Context, userID uuid.UUID, query *models.ListProductsQuery) (*models.ProductListResult, bool, error)
	Summary(ctx context.Context, userID uuid.UUID) (*models.ProductSummary, bool, error)
	FilterOptions(ctx context.Context, userID uuid.UUID) (*models.FilterOptions, bool, error)
	ClearCache(ctx context.Context, userID uuid.UUID)
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.ResultCache
}

func NewProductService(repo repository.ProductRepository, resultCache *cache.ResultCache) ProductService {
	return &productService{repo: repo, cache: resultCache}
}

func (s *productService) CreateProduct(ctx context.Context, userID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := &models.Product{
		UserID:       userID,
		Name:         req.Name,
		SKU:          req.SKU,
		SupplierCode: req.SupplierCode,
		InternalCode: req.InternalCode,
		EAN:          req.EAN,
		Brand:        req.Brand,
		Category:     req.Category,
		SupplierID:   req.SupplierID,
		Dimensions:   req.Dimensions,
		Weight:       req.Weight,
		CostItem:     req.CostItem,
		PackCost:     req.PackCost,
		TaxPercent:   req.TaxPercent,
		Observations: req.Observations,
		Description:  req.Description,
		BulletPoints: req.BulletPoints,
		Photo:        req.Photo,
		Active:       active,
		Channels:     req.Channels,
	}

	sanitizeProduct(product)
	if err := requireIdentity(product); err != nil {
		return nil, err
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, storeError("Failed to create product", err)
	}

	s.cache.Clear(ctx, userID)

	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, userID, id uuid.UUID) (*models.Product, error) {
	return s.ownedProduct(ctx, userID, id)
}

func (s *productService) UpdateProduct(ctx context.Context, userID, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.updateProduct(ctx, userID, id, req)
	if err != nil {
		return nil, err
	}

	s.cache.Clear(ctx, userID)

	return product, nil
}

func (s *productService) updateProduct(ctx context.Context, userID, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.ownedProduct(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(product, req)
	sanitizeProduct(product)
	if err := requireIdentity(product); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, storeError("Failed to update product", err)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, userID, id uuid.UUID) error {

	if _, err := s.ownedProduct(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.DeleteProduct(ctx, userID, id); err != nil {
		return storeError("Failed to delete product", err)
	}

	s.cache.Clear(ctx, userID)

	return nil
}

// ReplaceChannels overwrites every channel of the product with channels.
func (s *productService) ReplaceChannels(ctx context.Context, userID, id uuid.UUID, channels []models.Channel) (*models.Product, error) {

	product, err := s.ownedProduct(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	product.Channels = sanitizeChannels(channels)

	if err := s.repo.ReplaceChannels(ctx, product); err != nil {
		return nil, storeError("Failed to replace channels", err)
	}

	s.cache.Clear(ctx, userID)

	return product, nil
}

// BulkUpdate applies the same change to every id. A failing id is reported
// and the remaining ids are still processed.
func (s *productService) BulkUpdate(ctx context.Context, userID uuid.UUID, req *models.BulkUpdateRequest) (*models.BulkUpdateResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	result := &models.BulkUpdateResult{Failures: []models.BulkUpdateFailure{}}

	for _, id := range req.IDs {
		changes := req.Changes

		if _, err := s.updateProduct(ctx, userID, id, &changes); err != nil {
			failure := models.BulkUpdateFailure{ID: id, Code: appErrors.ErrCodeInternal, Message: err.Error()}
			if appErr, ok := appErrors.IsAppError(err); ok {
				failure.Code = appErr.Code
			}

			logger.Warn("Bulk update failed for product", slog.String("productId", id.String()), slog.String("error", err.Error()))
			result.Failures = append(result.Failures, failure)
			continue
		}

		result.Updated++
	}

	if result.Updated > 0 {
		s.cache.Clear(ctx, userID)
	}

	return result, nil
}

// ListProducts answers from the result cache when it can; the bool reports
// a cache hit.
func (s *productService) ListProducts(ctx context.Context, userID uuid.UUID, query *models.ListProductsQuery) (*models.ProductListResult, bool, error) {

	params := models.ListProductsQuery{Filter: query.Filter, Pagination: catalog.Normalize(query.Pagination)}

	var cached models.ProductListResult
	if s.cache.Lookup(ctx, userID, cache.KindList, params, &cached) {
		return &cached, true, nil
	}

	products, err := s.repo.ListProductsByUser(ctx, userID)
	if err != nil {
		return nil, false, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	result := catalog.Query(products, params.Filter, params.Pagination)

	s.cache.Store(ctx, userID, cache.KindList, params, result)

	return result, false, nil
}

func (s *productService) Summary(ctx context.Context, userID uuid.UUID) (*models.ProductSummary, bool, error) {

	var cached models.ProductSummary
	if s.cache.Lookup(ctx, userID, cache.KindSummary, nil, &cached) {
		return &cached, true, nil
	}

	products, err := s.repo.ListProductsByUser(ctx, userID)
	if err != nil {
		return nil, false, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	summary := catalog.Summarize(products)

	s.cache.Store(ctx, userID, cache.KindSummary, nil, summary)

	return summary, false, nil
}

func (s *productService) FilterOptions(ctx context.Context, userID uuid.UUID) (*models.FilterOptions, bool, error) {

	var cached models.FilterOptions
	if s.cache.Lookup(ctx, userID, cache.KindOptions, nil, &cached) {
		return &cached, true, nil
	}

	products, err := s.repo.ListProductsByUser(ctx, userID)
	if err != nil {
		return nil, false, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	options := catalog.Options(products)

	s.cache.Store(ctx, userID, cache.KindOptions, nil, options)

	return options, false, nil
}

func (s *productService) ClearCache(ctx context.Context, userID uuid.UUID) {
	s.cache.Clear(ctx, userID)
}

func (s *productService) ownedProduct(ctx context.Context, userID, id uuid.UUID) (*models.Product, error) {
	return ownedProduct(ctx, s.repo, userID, id)
}

// ownedProduct loads a product and checks that userID owns it.
func ownedProduct(ctx context.Context, repo repository.ProductRepository, userID, id uuid.UUID) (*models.Product, error) {

	product, err := repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product.UserID != userID {
		return nil, appErrors.ForbiddenError("Product belongs to another user").WithDetail(id.String())
	}

	return product, nil
}

func storeError(message string, err error) error {
	if repository.IsUniqueViolation(err) {
		return appErrors.DuplicateEntryError("A product with this SKU already exists").WithError(err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFoundError("Product not found").WithError(err)
	}

	return appErrors.DatabaseError(message).WithError(err)
}

func applyUpdate(product *models.Product, req *models.UpdateProductRequest) {
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.SupplierCode != nil {
		product.SupplierCode = *req.SupplierCode
	}
	if req.InternalCode != nil {
		product.InternalCode = *req.InternalCode
	}
	if req.EAN != nil {
		product.EAN = *req.EAN
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.SupplierID != nil {
		product.SupplierID = req.SupplierID
	}
	if req.Dimensions != nil {
		product.Dimensions = *req.Dimensions
	}
	if req.Weight != nil {
		product.Weight = *req.Weight
	}
	if req.CostItem != nil {
		product.CostItem = *req.CostItem
	}
	if req.PackCost != nil {
		product.PackCost = *req.PackCost
	}
	if req.TaxPercent != nil {
		product.TaxPercent = *req.TaxPercent
	}
	if req.Observations != nil {
		product.Observations = *req.Observations
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.BulletPoints != nil {
		product.BulletPoints = req.BulletPoints
	}
	if req.Photo != nil {
		product.Photo = req.Photo
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
}

// requireIdentity rejects products whose name or sku is empty once markup
// has been stripped.
func requireIdentity(p *models.Product) error {
	switch {
	case p.Name == "":
		return appErrors.ValidationError("Field Name must contain text").WithDetail("name is empty after sanitization")
	case p.SKU == "":
		return appErrors.ValidationError("Field SKU must contain text").WithDetail("sku is empty after sanitization")
	}

	return nil
}

func sanitizeProduct(p *models.Product) {
	p.Name = utils.SanitizeText(p.Name)
	p.SKU = utils.SanitizeText(p.SKU)
	p.SupplierCode = utils.SanitizeText(p.SupplierCode)
	p.InternalCode = utils.SanitizeText(p.InternalCode)
	p.Brand = utils.SanitizeText(p.Brand)
	p.Category = utils.SanitizeText(p.Category)
	p.Observations = utils.SanitizeText(p.Observations)
	p.Description = utils.SanitizeText(p.Description)

	p.BulletPoints = utils.SanitizeList(p.BulletPoints)
	if p.BulletPoints == nil {
		p.BulletPoints = []string{}
	}

	p.Channels = sanitizeChannels(p.Channels)
}

func sanitizeChannels(channels []models.Channel) []models.Channel {
	out := make([]models.Channel, 0, len(channels))

	for _, ch := range channels {
		ch.Name = utils.SanitizeText(ch.Name)
		ch.Title = utils.SanitizeText(ch.Title)
		ch.Description = utils.SanitizeText(ch.Description)

		ch.Categories = utils.SanitizeList(ch.Categories)
		if ch.Categories == nil {
			ch.Categories = []string{}
		}

		ch.Keywords = utils.SanitizeList(ch.Keywords)
		if ch.Keywords == nil {
			ch.Keywords = []string{}
		}

		out = append(out, ch)
	}

	return out
}
