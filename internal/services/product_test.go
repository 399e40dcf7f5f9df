package service_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/catalog-admin/internal/cache"
	"github.com/aaravmahajanofficial/catalog-admin/internal/config"
	appErrors "github.com/aaravmahajanofficial/catalog-admin/internal/errors"
	"github.com/aaravmahajanofficial/catalog-admin/internal/models"
	"github.com/aaravmahajanofficial/catalog-admin/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/catalog-admin/internal/services"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newResultCache() *cache.ResultCache {
	cfg := &config.CacheConfig{DefaultTTL: 5 * time.Minute, SummaryTTL: 10 * time.Minute, OptionsTTL: 15 * time.Minute}
	return cache.NewResultCache(cache.NewMemoryCache(100, cfg.DefaultTTL), cfg)
}

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func ptr[T any](v T) *T { return &v }

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - Sanitized And Active By Default", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())

		req := &models.CreateProductRequest{
			Name:         "<b>Caneca</b> Azul",
			SKU:          "CAN-1",
			BulletPoints: []string{"Porcelana", "<script>x</script>"},
			CostItem:     "19.90",
		}

		mockRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.UserID == userID && p.Name == "Caneca Azul" && p.Active && len(p.BulletPoints) == 1
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Product).ID = uuid.New()
		}).Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, userID, req)

		// Assert
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.Equal(t, "Caneca Azul", product.Name)
		assert.Equal(t, []string{"Porcelana"}, product.BulletPoints)
		assert.Equal(t, []models.Channel{}, product.Channels)
		assert.True(t, product.Active)
	})

	t.Run("Failure - Duplicate SKU", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())

		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(&pq.Error{Code: "23505"}).Once()

		// Act
		product, err := productService.CreateProduct(ctx, userID, &models.CreateProductRequest{Name: "A", SKU: "S1", Active: ptr(false)})

		// Assert
		assert.Nil(t, product)
		requireAppError(t, err, appErrors.ErrCodeDuplicateEntry)
	})

	t.Run("Failure - Markup Only Identity", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())

		// Act
		_, nameErr := productService.CreateProduct(ctx, userID, &models.CreateProductRequest{Name: "<b></b>", SKU: "S1"})
		_, skuErr := productService.CreateProduct(ctx, userID, &models.CreateProductRequest{Name: "Caneca", SKU: "<script>x</script>"})

		// Assert
		requireAppError(t, nameErr, appErrors.ErrCodeValidation)
		requireAppError(t, skuErr, appErrors.ErrCodeValidation)
		mockRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())

		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(errors.New("connection reset")).Once()

		_, err := productService.CreateProduct(ctx, userID, &models.CreateProductRequest{Name: "A", SKU: "S1"})

		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
		assert.Contains(t, err.Error(), "Failed to create product")
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name     string
		product  *models.Product
		repoErr  error
		wantCode string
	}{
		{name: "Success", product: &models.Product{ID: productID, UserID: userID, Name: "Mine"}},
		{name: "Not Found", repoErr: sql.ErrNoRows, wantCode: appErrors.ErrCodeNotFound},
		{name: "Other User", product: &models.Product{ID: productID, UserID: uuid.New()}, wantCode: appErrors.ErrCodeForbidden},
		{name: "Database Error", repoErr: errors.New("timeout"), wantCode: appErrors.ErrCodeDatabaseError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockRepo := mocks.NewProductRepository(t)
			productService := service.NewProductService(mockRepo, newResultCache())
			mockRepo.On("GetProductByID", mock.Anything, productID).Return(tc.product, tc.repoErr).Once()

			// Act
			product, err := productService.GetProduct(ctx, userID, productID)

			// Assert
			if tc.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.product, product)
				return
			}

			assert.Nil(t, product)
			requireAppError(t, err, tc.wantCode)
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	existing := func() *models.Product {
		return &models.Product{
			ID:           productID,
			UserID:       userID,
			Name:         "Old Name",
			SKU:          "OLD-SKU",
			Description:  "Old Description",
			CostItem:     "10",
			Active:       true,
			BulletPoints: []string{},
			Channels:     []models.Channel{{Name: "amazon", Price: "20"}},
		}
	}

	t.Run("Success - Partial Update", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())

		req := &models.UpdateProductRequest{Name: ptr("New Name"), CostItem: ptr("12.50"), Active: ptr(false)}

		mockRepo.On("GetProductByID", mock.Anything, productID).Return(existing(), nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Name == "New Name" && p.SKU == "OLD-SKU" && p.CostItem == "12.50" && !p.Active && p.Description == "Old Description"
		})).Return(nil).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, userID, productID, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "New Name", product.Name)
		assert.Len(t, product.Channels, 1, "channels are not touched by update")
	})

	t.Run("Failure - Forbidden", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())

		other := existing()
		other.UserID = uuid.New()
		mockRepo.On("GetProductByID", mock.Anything, productID).Return(other, nil).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, userID, productID, &models.UpdateProductRequest{Name: ptr("x")})

		// Assert
		assert.Nil(t, product)
		requireAppError(t, err, appErrors.ErrCodeForbidden)
		mockRepo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Name Emptied By Sanitization", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())

		mockRepo.On("GetProductByID", mock.Anything, productID).Return(existing(), nil).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, userID, productID, &models.UpdateProductRequest{Name: ptr("<b></b>")})

		// Assert
		assert.Nil(t, product)
		requireAppError(t, err, appErrors.ErrCodeValidation)
		mockRepo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - SKU Taken", func(t *testing.T) {
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())

		mockRepo.On("GetProductByID", mock.Anything, productID).Return(existing(), nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, mock.Anything).Return(&pq.Error{Code: "23505"}).Once()

		_, err := productService.UpdateProduct(ctx, userID, productID, &models.UpdateProductRequest{SKU: ptr("TAKEN")})

		requireAppError(t, err, appErrors.ErrCodeDuplicateEntry)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())

		mockRepo.On("GetProductByID", mock.Anything, productID).Return(&models.Product{ID: productID, UserID: userID}, nil).Once()
		mockRepo.On("DeleteProduct", mock.Anything, userID, productID).Return(nil).Once()

		assert.NoError(t, productService.DeleteProduct(ctx, userID, productID))
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())

		mockRepo.On("GetProductByID", mock.Anything, productID).Return(nil, sql.ErrNoRows).Once()

		err := productService.DeleteProduct(ctx, userID, productID)

		requireAppError(t, err, appErrors.ErrCodeNotFound)
		mockRepo.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReplaceChannels(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockRepo := mocks.NewProductRepository(t)
	productService := service.NewProductService(mockRepo, newResultCache())

	current := &models.Product{
		ID:       productID,
		UserID:   userID,
		Channels: []models.Channel{{Name: "amazon", Price: "10"}, {Name: "shopify", Price: "11"}},
	}

	incoming := []models.Channel{{Name: "mercadolivre", Price: "12", Title: "<i>Caneca</i>"}}

	mockRepo.On("GetProductByID", mock.Anything, productID).Return(current, nil).Once()
	mockRepo.On("ReplaceChannels", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return len(p.Channels) == 1 && p.Channels[0].Name == "mercadolivre"
	})).Return(nil).Once()

	// Act
	product, err := productService.ReplaceChannels(ctx, userID, productID, incoming)

	// Assert
	require.NoError(t, err)
	require.Len(t, product.Channels, 1)
	assert.Equal(t, "Caneca", product.Channels[0].Title)
	assert.Equal(t, []string{}, product.Channels[0].Categories)
}

func TestBulkUpdate(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userID := uuid.New()
	okID := uuid.New()
	missingID := uuid.New()
	foreignID := uuid.New()

	mockRepo := mocks.NewProductRepository(t)
	productService := service.NewProductService(mockRepo, newResultCache())

	mockRepo.On("GetProductByID", mock.Anything, okID).Return(&models.Product{ID: okID, UserID: userID, Name: "Caneca", SKU: "C1", Active: true}, nil).Once()
	mockRepo.On("GetProductByID", mock.Anything, missingID).Return(nil, sql.ErrNoRows).Once()
	mockRepo.On("GetProductByID", mock.Anything, foreignID).Return(&models.Product{ID: foreignID, UserID: uuid.New()}, nil).Once()
	mockRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == okID && !p.Active
	})).Return(nil).Once()

	req := &models.BulkUpdateRequest{
		IDs:     []uuid.UUID{missingID, okID, foreignID},
		Changes: models.UpdateProductRequest{Active: ptr(false)},
	}

	// Act
	result, err := productService.BulkUpdate(ctx, userID, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, missingID, result.Failures[0].ID)
	assert.Equal(t, appErrors.ErrCodeNotFound, result.Failures[0].Code)
	assert.Equal(t, foreignID, result.Failures[1].ID)
	assert.Equal(t, appErrors.ErrCodeForbidden, result.Failures[1].Code)
}

func catalogFixture(userID uuid.UUID) []*models.Product {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return []*models.Product{
		{ID: uuid.New(), UserID: userID, Name: "Caneca", SKU: "C1", Brand: "Acme", CostItem: "10", Active: true, BulletPoints: []string{}, Channels: []models.Channel{}, CreatedAt: base},
		{ID: uuid.New(), UserID: userID, Name: "Camiseta", SKU: "T1", Brand: "Zeta", CostItem: "30", Active: true, BulletPoints: []string{}, Channels: []models.Channel{}, CreatedAt: base.Add(time.Hour)},
		{ID: uuid.New(), UserID: userID, Name: "Copo", SKU: "P1", Brand: "Acme", CostItem: "5", Active: false, BulletPoints: []string{}, Channels: []models.Channel{}, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Second identical query is a byte identical hit", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())
		mockRepo.On("ListProductsByUser", mock.Anything, userID).Return(catalogFixture(userID), nil).Once()

		query := &models.ListProductsQuery{
			Filter:     models.ProductFilter{Brand: "Acme"},
			Pagination: models.Pagination{Page: 1, Limit: 10, SortBy: models.SortByCostItem, SortOrder: models.SortDesc},
		}

		// Act
		first, hit1, err1 := productService.ListProducts(ctx, userID, query)
		second, hit2, err2 := productService.ListProducts(ctx, userID, query)

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.False(t, hit1)
		assert.True(t, hit2)

		assert.Equal(t, 2, first.Total)
		assert.Equal(t, "C1", first.Products[0].SKU)

		a, _ := json.Marshal(first)
		b, _ := json.Marshal(second)
		assert.JSONEq(t, string(a), string(b))
	})

	t.Run("Defaults are normalized before keying", func(t *testing.T) {
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())
		mockRepo.On("ListProductsByUser", mock.Anything, userID).Return(catalogFixture(userID), nil).Once()

		_, hit1, _ := productService.ListProducts(ctx, userID, &models.ListProductsQuery{})
		result, hit2, _ := productService.ListProducts(ctx, userID, &models.ListProductsQuery{Pagination: models.Pagination{Page: 1, Limit: 10, SortOrder: models.SortAsc}})

		assert.False(t, hit1)
		assert.True(t, hit2)
		assert.Equal(t, 3, result.Total)
	})

	t.Run("Writes invalidate the user's cache", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())

		products := catalogFixture(userID)
		mockRepo.On("ListProductsByUser", mock.Anything, userID).Return(products, nil).Once()
		mockRepo.On("ListProductsByUser", mock.Anything, userID).Return(products[:2], nil).Once()
		mockRepo.On("GetProductByID", mock.Anything, products[2].ID).Return(products[2], nil).Once()
		mockRepo.On("DeleteProduct", mock.Anything, userID, products[2].ID).Return(nil).Once()

		query := &models.ListProductsQuery{}

		// Act
		before, _, _ := productService.ListProducts(ctx, userID, query)
		require.NoError(t, productService.DeleteProduct(ctx, userID, products[2].ID))
		after, hit, _ := productService.ListProducts(ctx, userID, query)

		// Assert
		assert.Equal(t, 3, before.Total)
		assert.False(t, hit)
		assert.Equal(t, 2, after.Total)
	})

	t.Run("Store failure", func(t *testing.T) {
		mockRepo := mocks.NewProductRepository(t)
		productService := service.NewProductService(mockRepo, newResultCache())
		mockRepo.On("ListProductsByUser", mock.Anything, userID).Return(nil, errors.New("down")).Once()

		result, hit, err := productService.ListProducts(ctx, userID, &models.ListProductsQuery{})

		assert.Nil(t, result)
		assert.False(t, hit)
		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestSummaryAndFilterOptions(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userID := uuid.New()

	mockRepo := mocks.NewProductRepository(t)
	productService := service.NewProductService(mockRepo, newResultCache())
	mockRepo.On("ListProductsByUser", mock.Anything, userID).Return(catalogFixture(userID), nil).Times(3)

	// Act
	summary, hit1, err := productService.Summary(ctx, userID)
	require.NoError(t, err)
	_, hit2, _ := productService.Summary(ctx, userID)

	options, hit3, err := productService.FilterOptions(ctx, userID)
	require.NoError(t, err)
	_, hit4, _ := productService.FilterOptions(ctx, userID)

	productService.ClearCache(ctx, userID)
	_, hit5, _ := productService.Summary(ctx, userID)

	// Assert
	assert.Equal(t, 3, summary.TotalProducts)
	assert.Equal(t, 2, summary.ActiveProducts)
	assert.Equal(t, "45.00", summary.TotalCostValue)
	assert.Equal(t, []string{"Acme", "Zeta"}, options.Brands)

	assert.False(t, hit1)
	assert.True(t, hit2)
	assert.False(t, hit3)
	assert.True(t, hit4)
	assert.False(t, hit5)
}
