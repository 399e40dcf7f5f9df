package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/catalog-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/catalog-admin/internal/cache"
	"github.com/aaravmahajanofficial/catalog-admin/internal/config"
	appErrors "github.com/aaravmahajanofficial/catalog-admin/internal/errors"
	"github.com/aaravmahajanofficial/catalog-admin/internal/metrics"
	"github.com/aaravmahajanofficial/catalog-admin/internal/models"
	repository "github.com/aaravmahajanofficial/catalog-admin/internal/repositories"
	"github.com/aaravmahajanofficial/catalog-admin/internal/spreadsheet"
	"github.com/aaravmahajanofficial/catalog-admin/internal/utils"
	"github.com/google/uuid"
)

type ImportExportService interface {
	Template(t models.ImportType) ([]byte, error)
	Export(ctx context.Context, userID uuid.UUID, t models.ImportType, includeData bool) ([]byte, error)
	Reconcile(ctx context.Context, userID uuid.UUID, t models.ImportType, rows []models.ImportRow, opts models.ImportOptions) (*models.ImportResult, error)
	Preview(ctx context.Context, userID uuid.UUID, t models.ImportType, file io.Reader) (*models.ImportPreviewResponse, error)
	Confirm(ctx context.Context, userID uuid.UUID, t models.ImportType, file io.Reader, req *models.ConfirmImportRequest) (*models.ImportCommitResponse, error)
	Import(ctx context.Context, userID uuid.UUID, t models.ImportType, file io.Reader, autoUpdate bool) (*models.ImportCommitResponse, error)
}

type importExportService struct {
	repo  repository.ProductRepository
	cache *cache.ResultCache
	cfg   config.ImportConfig
}

func NewImportExportService(repo repository.ProductRepository, resultCache *cache.ResultCache, cfg config.ImportConfig) ImportExportService {
	return &importExportService{repo: repo, cache: resultCache, cfg: cfg}
}

func invalidType(t models.ImportType) error {
	return appErrors.ValidationError(fmt.Sprintf("Unknown import type '%s'", t)).WithDetail("type must be products or channels")
}

func (s *importExportService) Template(t models.ImportType) ([]byte, error) {

	if !t.Valid() {
		return nil, invalidType(t)
	}

	data, err := spreadsheet.Template(t)
	if err != nil {
		return nil, appErrors.InternalError("Failed to build template").WithError(err)
	}

	return data, nil
}

func (s *importExportService) Export(ctx context.Context, userID uuid.UUID, t models.ImportType, includeData bool) ([]byte, error) {

	if !t.Valid() {
		return nil, invalidType(t)
	}

	var products []*models.Product

	if includeData {
		var err error
		products, err = s.repo.ListProductsByUser(ctx, userID)
		if err != nil {
			return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
		}
	}

	var (
		data []byte
		err  error
	)

	switch t {
	case models.ImportTypeProducts:
		data, err = spreadsheet.EncodeProducts(products, includeData)
	case models.ImportTypeChannels:
		data, err = spreadsheet.EncodeChannels(products, includeData)
	}

	if err != nil {
		return nil, appErrors.InternalError("Failed to build spreadsheet").WithError(err)
	}

	return data, nil
}

// Preview runs the reconciler without auto update. Rows without a conflict
// are committed unless the import.dry_run_preview switch is set.
func (s *importExportService) Preview(ctx context.Context, userID uuid.UUID, t models.ImportType, file io.Reader) (*models.ImportPreviewResponse, error) {

	rows, err := decodeUpload(t, file)
	if err != nil {
		return nil, err
	}

	result, err := s.Reconcile(ctx, userID, t, rows, models.ImportOptions{DryRun: s.cfg.DryRunPreview})
	if err != nil {
		return nil, err
	}

	return &models.ImportPreviewResponse{
		Conflicts: result.Conflicts,
		Errors:    result.Errors,
		Summary: models.ImportSummary{
			NewItems:       result.NewProducts,
			UpdatedItems:   result.UpdatedProducts,
			TotalProcessed: result.TotalProcessed,
			ConflictCount:  len(result.Conflicts),
			ErrorCount:     len(result.Errors),
			Committed:      !result.DryRun,
		},
	}, nil
}

func (s *importExportService) Confirm(ctx context.Context, userID uuid.UUID, t models.ImportType, file io.Reader, req *models.ConfirmImportRequest) (*models.ImportCommitResponse, error) {

	rows, err := decodeUpload(t, file)
	if err != nil {
		return nil, err
	}

	decisions := make(map[int]models.ImportAction, len(req.Decisions))
	for _, d := range req.Decisions {
		decisions[d.Row] = d.Action
	}

	result, err := s.Reconcile(ctx, userID, t, rows, models.ImportOptions{AutoUpdate: req.AutoUpdate, Decisions: decisions})
	if err != nil {
		return nil, err
	}

	return commitResponse(result), nil
}

func (s *importExportService) Import(ctx context.Context, userID uuid.UUID, t models.ImportType, file io.Reader, autoUpdate bool) (*models.ImportCommitResponse, error) {

	rows, err := decodeUpload(t, file)
	if err != nil {
		return nil, err
	}

	result, err := s.Reconcile(ctx, userID, t, rows, models.ImportOptions{AutoUpdate: autoUpdate})
	if err != nil {
		return nil, err
	}

	return commitResponse(result), nil
}

func commitResponse(result *models.ImportResult) *models.ImportCommitResponse {
	return &models.ImportCommitResponse{
		NewItems:       result.NewProducts,
		UpdatedItems:   result.UpdatedProducts,
		SkippedItems:   result.SkippedRows,
		TotalProcessed: result.TotalProcessed,
		Errors:         result.Errors,
		Conflicts:      result.Conflicts,
	}
}

func decodeUpload(t models.ImportType, file io.Reader) ([]models.ImportRow, error) {

	if !t.Valid() {
		return nil, invalidType(t)
	}

	rows, err := spreadsheet.Decode(file)
	if err != nil {
		return nil, appErrors.InvalidFileError("Could not read spreadsheet").WithDetail(err.Error()).WithError(err)
	}

	return rows, nil
}

// Reconcile classifies and applies decoded rows. Row failures end up in the
// result; only a failure to load the catalog aborts the call.
func (s *importExportService) Reconcile(ctx context.Context, userID uuid.UUID, t models.ImportType, rows []models.ImportRow, opts models.ImportOptions) (*models.ImportResult, error) {

	var (
		result *models.ImportResult
		err    error
	)

	switch t {
	case models.ImportTypeProducts:
		result, err = s.importProducts(ctx, userID, rows, opts)
	case models.ImportTypeChannels:
		result, err = s.importChannels(ctx, userID, rows, opts)
	default:
		return nil, invalidType(t)
	}

	if err != nil {
		return nil, err
	}

	if !result.DryRun && result.NewProducts+result.UpdatedProducts > 0 {
		s.cache.Clear(ctx, userID)
	}

	observeResult(string(t), result)

	middleware.LoggerFromContext(ctx).Info("Import processed",
		slog.String("type", string(t)),
		slog.Int("rows", len(rows)),
		slog.Int("new", result.NewProducts),
		slog.Int("updated", result.UpdatedProducts),
		slog.Int("conflicts", len(result.Conflicts)),
		slog.Int("errors", len(result.Errors)),
		slog.Bool("dryRun", result.DryRun),
	)

	return result, nil
}

func observeResult(importType string, result *models.ImportResult) {
	metrics.ObserveImportRows(importType, "created", result.NewProducts)
	metrics.ObserveImportRows(importType, "updated", result.UpdatedProducts)
	metrics.ObserveImportRows(importType, "skipped", result.SkippedRows)
	metrics.ObserveImportRows(importType, "conflict", len(result.Conflicts))
	metrics.ObserveImportRows(importType, "error", len(result.Errors))
}

func rowError(row models.ImportRow, field, value, message string) models.ImportError {
	return models.ImportError{Row: row.Number, Field: field, Value: value, Message: message, Data: row.Cells}
}

func (s *importExportService) importProducts(ctx context.Context, userID uuid.UUID, rows []models.ImportRow, opts models.ImportOptions) (*models.ImportResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	existing, err := s.repo.ListProductsByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	idx := newCatalogIndex(existing, !s.cfg.DisableNameMatch, s.cfg.MatchBySupplierCode)

	result := models.NewImportResult()
	result.DryRun = opts.DryRun

	for _, row := range rows {
		name := utils.SanitizeText(strings.TrimSpace(row.Get(spreadsheet.ColName)))
		sku := utils.SanitizeText(strings.TrimSpace(row.Get(spreadsheet.ColSKU)))

		if name == "" || sku == "" {
			result.Errors = append(result.Errors, rowError(row, spreadsheet.ColName+"/"+spreadsheet.ColSKU, name+"/"+sku, "nome and sku are required"))
			continue
		}

		candidate, fieldErrs := spreadsheet.ProductFromRow(row)
		if len(fieldErrs) > 0 {
			for _, fe := range fieldErrs {
				fe.Data = row.Cells
				result.Errors = append(result.Errors, fe)
			}
			continue
		}

		candidate.UserID = userID
		sanitizeProduct(candidate)

		match, conflictType := idx.match(candidate)
		action, decided := opts.Decisions[row.Number]

		switch {
		case decided && action == models.ActionSkip:
			result.SkippedRows++

		case match == nil || (decided && action == models.ActionCreateNew):
			if match != nil && conflictType == models.ConflictSKU {
				result.Errors = append(result.Errors, rowError(row, spreadsheet.ColSKU, sku, "sku already exists; choose update or skip"))
				continue
			}

			if err := s.createImported(ctx, candidate, opts.DryRun); err != nil {
				logger.Warn("Import row create failed", slog.Int("row", row.Number), slog.String("error", err.Error()))
				result.Errors = append(result.Errors, rowError(row, "", "", importStoreMessage(err)))
				continue
			}

			idx.add(candidate)
			result.NewProducts++
			result.TotalProcessed++

		case opts.AutoUpdate || (decided && action == models.ActionUpdate):
			updated := mergeImported(match, candidate)

			if !opts.DryRun {
				if err := s.repo.UpdateProduct(ctx, updated); err != nil {
					logger.Warn("Import row update failed", slog.Int("row", row.Number), slog.String("error", err.Error()))
					result.Errors = append(result.Errors, rowError(row, "", "", importStoreMessage(err)))
					continue
				}
			}

			idx.replace(match, updated)
			result.UpdatedProducts++
			result.TotalProcessed++

		default:
			result.Conflicts = append(result.Conflicts, models.ImportConflict{
				Row:             row.Number,
				ExistingProduct: match,
				NewData:         candidate,
				ConflictType:    conflictType,
			})
		}
	}

	return result, nil
}

func (s *importExportService) createImported(ctx context.Context, product *models.Product, dryRun bool) error {
	if dryRun {
		product.ID = uuid.New()
		return nil
	}

	return s.repo.CreateProduct(ctx, product)
}

func importStoreMessage(err error) string {
	if repository.IsUniqueViolation(err) {
		return "sku already exists"
	}

	return "failed to save product: " + err.Error()
}

// mergeImported returns existing with every imported column overwritten.
// Identity, ownership and channels are kept.
func mergeImported(existing, imported *models.Product) *models.Product {
	merged := *imported
	merged.ID = existing.ID
	merged.UserID = existing.UserID
	merged.Channels = existing.Channels
	merged.CreatedAt = existing.CreatedAt
	merged.UpdatedAt = existing.UpdatedAt

	return &merged
}

type channelGroup struct {
	productID uuid.UUID
	rows      []models.ImportRow
	channels  []models.Channel
}

func (s *importExportService) importChannels(ctx context.Context, userID uuid.UUID, rows []models.ImportRow, opts models.ImportOptions) (*models.ImportResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	result := models.NewImportResult()
	result.DryRun = opts.DryRun

	var groups []*channelGroup
	byID := map[uuid.UUID]*channelGroup{}

	for _, row := range rows {
		var missing []string
		for _, col := range []string{spreadsheet.ColProductID, spreadsheet.ColChannel, spreadsheet.ColPrice} {
			if strings.TrimSpace(row.Get(col)) == "" {
				missing = append(missing, col)
			}
		}

		if len(missing) > 0 {
			result.Errors = append(result.Errors, rowError(row, strings.Join(missing, "/"), "", strings.Join(missing, ", ")+" required"))
			continue
		}

		id, channel, fieldErrs := spreadsheet.ChannelFromRow(row)
		if len(fieldErrs) > 0 {
			for _, fe := range fieldErrs {
				fe.Data = row.Cells
				result.Errors = append(result.Errors, fe)
			}
			continue
		}

		group, ok := byID[*id]
		if !ok {
			group = &channelGroup{productID: *id}
			byID[*id] = group
			groups = append(groups, group)
		}

		group.rows = append(group.rows, row)
		group.channels = append(group.channels, channel)
	}

	for _, group := range groups {
		first := group.rows[0]
		target := group.productID.String()

		product, err := s.repo.GetProductByID(ctx, group.productID)
		if err != nil {
			message := "failed to load product: " + err.Error()
			if errors.Is(err, sql.ErrNoRows) {
				message = "product not found"
			}
			result.Errors = append(result.Errors, rowError(first, spreadsheet.ColProductID, target, message))
			continue
		}

		if product.UserID != userID {
			logger.Warn("Channel import targets product of another user", slog.String("productId", target))
			result.Errors = append(result.Errors, rowError(first, spreadsheet.ColProductID, target, "forbidden: product belongs to another user"))
			continue
		}

		product.Channels = sanitizeChannels(group.channels)

		if !opts.DryRun {
			if err := s.repo.ReplaceChannels(ctx, product); err != nil {
				logger.Warn("Channel replace failed", slog.String("productId", target), slog.String("error", err.Error()))
				result.Errors = append(result.Errors, rowError(first, spreadsheet.ColProductID, target, "failed to save channels: "+err.Error()))
				continue
			}
		}

		result.UpdatedProducts++
		result.TotalProcessed += len(group.rows)
	}

	return result, nil
}
