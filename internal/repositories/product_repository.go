package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/catalog-admin/internal/models"
	"github.com/aaravmahajanofficial/catalog-admin/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, userID, id uuid.UUID) error
	ReplaceChannels(ctx context.Context, product *models.Product) error
	ListProductsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err came from the (user_id, sku) index
// or any other unique constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

const productColumns = `id, user_id, name, sku, supplier_code, internal_code, ean, brand, category, supplier_id,
	dimensions, weight, cost_item, pack_cost, tax_percent, observations, description, bullet_points, photo, active,
	channels, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}

	var (
		supplierID uuid.NullUUID
		photo      sql.NullString
		dimensions []byte
		channels   []byte
	)

	err := row.Scan(&product.ID, &product.UserID, &product.Name, &product.SKU, &product.SupplierCode, &product.InternalCode,
		&product.EAN, &product.Brand, &product.Category, &supplierID, &dimensions, &product.Weight, &product.CostItem,
		&product.PackCost, &product.TaxPercent, &product.Observations, &product.Description, pq.Array(&product.BulletPoints),
		&photo, &product.Active, &channels, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if supplierID.Valid {
		product.SupplierID = &supplierID.UUID
	}

	if photo.Valid {
		product.Photo = &photo.String
	}

	if len(dimensions) > 0 {
		if err := json.Unmarshal(dimensions, &product.Dimensions); err != nil {
			return nil, fmt.Errorf("decoding dimensions of product %s: %w", product.ID, err)
		}
	}

	if len(channels) > 0 {
		if err := json.Unmarshal(channels, &product.Channels); err != nil {
			return nil, fmt.Errorf("decoding channels of product %s: %w", product.ID, err)
		}
	}

	if product.BulletPoints == nil {
		product.BulletPoints = []string{}
	}

	if product.Channels == nil {
		product.Channels = []models.Channel{}
	}

	return product, nil
}

func encodeJSON(product *models.Product) (dimensions, channels []byte, err error) {
	dimensions, err = json.Marshal(product.Dimensions)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding dimensions: %w", err)
	}

	list := product.Channels
	if list == nil {
		list = []models.Channel{}
	}

	channels, err = json.Marshal(list)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding channels: %w", err)
	}

	return dimensions, channels, nil
}

func bulletPoints(product *models.Product) any {
	if product.BulletPoints == nil {
		return pq.Array([]string{})
	}
	return pq.Array(product.BulletPoints)
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	dimensions, channels, err := encodeJSON(product)
	if err != nil {
		return err
	}

	query := `INSERT INTO products (user_id, name, sku, supplier_code, internal_code, ean, brand, category, supplier_id, dimensions, weight, cost_item, pack_cost, tax_percent, observations, description, bullet_points, photo, active, channels)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
			  RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.UserID, product.Name, product.SKU, product.SupplierCode, product.InternalCode,
		product.EAN, product.Brand, product.Category, product.SupplierID, dimensions, product.Weight, product.CostItem,
		product.PackCost, product.TaxPercent, product.Observations, product.Description, bulletPoints(product), product.Photo,
		product.Active, channels).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

// UpdateProduct writes every column except channels, which only change
// through ReplaceChannels.
func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	dimensions, _, err := encodeJSON(product)
	if err != nil {
		return err
	}

	query := `
		UPDATE products SET name = $1, sku = $2, supplier_code = $3, internal_code = $4, ean = $5, brand = $6, category = $7, supplier_id = $8, dimensions = $9, weight = $10, cost_item = $11, pack_cost = $12, tax_percent = $13, observations = $14, description = $15, bullet_points = $16, photo = $17, active = $18, updated_at = NOW()
		WHERE id = $19 AND user_id = $20
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.Name, product.SKU, product.SupplierCode, product.InternalCode, product.EAN,
		product.Brand, product.Category, product.SupplierID, dimensions, product.Weight, product.CostItem, product.PackCost,
		product.TaxPercent, product.Observations, product.Description, bulletPoints(product), product.Photo, product.Active,
		product.ID, product.UserID).Scan(&product.UpdatedAt)
}

func (r *productRepository) DeleteProduct(ctx context.Context, userID, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ReplaceChannels overwrites the whole channel list of product.
func (r *productRepository) ReplaceChannels(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, channels, err := encodeJSON(product)
	if err != nil {
		return err
	}

	query := `UPDATE products SET channels = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3 RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query, channels, product.ID, product.UserID).Scan(&product.UpdatedAt)
}

// ListProductsByUser returns the user's whole catalog in creation order.
func (r *productRepository) ListProductsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
