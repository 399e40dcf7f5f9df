package handlers

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/catalog-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/catalog-admin/internal/errors"
	"github.com/aaravmahajanofficial/catalog-admin/internal/models"
	service "github.com/aaravmahajanofficial/catalog-admin/internal/services"
	"github.com/aaravmahajanofficial/catalog-admin/internal/utils"
	"github.com/aaravmahajanofficial/catalog-admin/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	uploadField     = "file"

	// room for multipart boundaries, part headers and form fields
	multipartOverhead = 64 << 10
)

type ImportExportHandler struct {
	importService  service.ImportExportService
	validator      *validator.Validate
	maxUploadBytes int64
}

func NewImportExportHandler(importService service.ImportExportService, maxUploadBytes int64) *ImportExportHandler {
	return &ImportExportHandler{importService: importService, validator: validator.New(), maxUploadBytes: maxUploadBytes}
}

func writeWorkbook(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func importType(r *http.Request) (models.ImportType, error) {
	t := models.ImportType(strings.ToLower(r.PathValue("type")))
	if !t.Valid() {
		return "", errors.ValidationError(fmt.Sprintf("Unknown import type '%s'", r.PathValue("type"))).WithDetail("type must be products or channels")
	}
	return t, nil
}

func formBool(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.ValidationError(fmt.Sprintf("Field %s must be true or false", name)).WithDetail(raw)
	}

	return v, nil
}

func (h *ImportExportHandler) tooLarge() *errors.AppError {
	return errors.PayloadTooLargeError("Uploaded file is too large").
		WithDetail(fmt.Sprintf("limit is %d bytes", h.maxUploadBytes))
}

// openUpload caps the request body and returns the uploaded workbook. The
// caller closes the returned file.
func (h *ImportExportHandler) openUpload(w http.ResponseWriter, r *http.Request) (multipart.File, error) {

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if stdErrors.As(err, &tooLarge) {
			return nil, h.tooLarge().WithError(err)
		}
		return nil, errors.BadRequestError("Expected a multipart upload").WithDetail(err.Error()).WithError(err)
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return nil, errors.BadRequestError("File is required").WithDetail("send the workbook in the 'file' field").WithError(err)
	}

	if header.Size > h.maxUploadBytes {
		file.Close()
		return nil, h.tooLarge()
	}

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".xlsx" {
		file.Close()
		return nil, errors.InvalidFileError("Only .xlsx files are supported").WithDetail(header.Filename)
	}

	return file, nil
}

// Template godoc
//
//	@Summary		Download a blank import template
//	@Description	Header row, sample row and column instructions. No authentication required.
//	@Tags			Import/Export
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			type	path		string					true	"Import type"	Enums(products, channels)
//	@Success		200		{file}		file					"xlsx workbook"
//	@Failure		400		{object}	response.ErrorResponse	"Unknown type"
//	@Router			/templates/{type} [get]
func (h *ImportExportHandler) Template() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		t, err := importType(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		data, err := h.importService.Template(t)
		if err != nil {
			logger.Error("Failed to build template", slog.String("type", string(t)), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		writeWorkbook(w, fmt.Sprintf("template_%s.xlsx", t), data)
	}
}

// Export godoc
//
//	@Summary	Export the catalog as a workbook
//	@Tags		Import/Export
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param		type		path		string					true	"Export type"	Enums(products, channels)
//	@Param		includeData	query		bool					false	"Include the caller's products (default: true)"
//	@Success	200			{file}		file					"xlsx workbook"
//	@Failure	400			{object}	response.ErrorResponse	"Unknown type"
//	@Failure	401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure	500			{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/export/{type} [get]
func (h *ImportExportHandler) Export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		t, err := importType(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		includeData := true
		if v, err := utils.QueryBool(r, "includeData"); err != nil {
			response.Error(w, err)
			return
		} else if v != nil {
			includeData = *v
		}

		data, err := h.importService.Export(r.Context(), claims.UserID, t, includeData)
		if err != nil {
			logger.Error("Failed to export", slog.String("type", string(t)), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Catalog exported", slog.String("type", string(t)), slog.Bool("includeData", includeData))
		writeWorkbook(w, fmt.Sprintf("%s_%s.xlsx", t, time.Now().UTC().Format("20060102")), data)
	}
}

// Preview godoc
//
//	@Summary		Preview an import
//	@Description	Reports conflicts and row errors. Rows without a conflict are written unless the server runs previews as dry runs.
//	@Tags			Import/Export
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			type	path		string							true	"Import type"	Enums(products, channels)
//	@Param			file	formData	file							true	"xlsx workbook"
//	@Success		200		{object}	models.ImportPreviewResponse	"Conflicts, errors and summary"
//	@Failure		400		{object}	response.ErrorResponse			"Invalid upload"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		413		{object}	response.ErrorResponse			"File too large"
//	@Failure		429		{object}	response.ErrorResponse			"Too many imports"
//	@Security		BearerAuth
//	@Router			/import/{type}/preview [post]
func (h *ImportExportHandler) Preview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		t, err := importType(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		file, err := h.openUpload(w, r)
		if err != nil {
			logger.Warn("Rejected upload", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}
		defer file.Close()

		preview, err := h.importService.Preview(r.Context(), claims.UserID, t, file)
		if err != nil {
			logger.Error("Import preview failed", slog.String("type", string(t)), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, preview)
	}
}

// Confirm godoc
//
//	@Summary		Confirm an import with per-row decisions
//	@Description	Re-uploads the workbook with a decision (skip, update, create_new) for each conflicting row.
//	@Tags			Import/Export
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			type		path		string							true	"Import type"	Enums(products, channels)
//	@Param			file		formData	file							true	"xlsx workbook"
//	@Param			decisions	formData	string							false	"JSON array of {row, action}"
//	@Param			autoUpdate	formData	bool							false	"Update every remaining conflict"
//	@Success		200			{object}	models.ImportCommitResponse		"Import result"
//	@Failure		400			{object}	response.ErrorResponse			"Invalid upload or decisions"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Failure		413			{object}	response.ErrorResponse			"File too large"
//	@Failure		429			{object}	response.ErrorResponse			"Too many imports"
//	@Security		BearerAuth
//	@Router			/import/{type}/confirm [post]
func (h *ImportExportHandler) Confirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		t, err := importType(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		file, err := h.openUpload(w, r)
		if err != nil {
			logger.Warn("Rejected upload", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}
		defer file.Close()

		req := &models.ConfirmImportRequest{Decisions: []models.ImportDecision{}}

		if req.AutoUpdate, err = formBool(r, "autoUpdate"); err != nil {
			response.Error(w, err)
			return
		}

		if raw := strings.TrimSpace(r.FormValue("decisions")); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Decisions); err != nil {
				response.Error(w, errors.BadRequestError("Invalid decisions").WithDetail(err.Error()))
				return
			}
		}

		if !utils.Validate(w, req, h.validator) {
			logger.Warn("Invalid import decisions")
			return
		}

		result, err := h.importService.Confirm(r.Context(), claims.UserID, t, file, req)
		if err != nil {
			logger.Error("Import confirm failed", slog.String("type", string(t)), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

// Import godoc
//
//	@Summary		Import a workbook
//	@Tags			Import/Export
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			type		path		string						true	"Import type"	Enums(products, channels)
//	@Param			file		formData	file						true	"xlsx workbook"
//	@Param			autoUpdate	formData	bool						false	"Overwrite matching products"
//	@Success		200			{object}	models.ImportCommitResponse	"Import result"
//	@Failure		400			{object}	response.ErrorResponse		"Invalid upload"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure		413			{object}	response.ErrorResponse		"File too large"
//	@Failure		429			{object}	response.ErrorResponse		"Too many imports"
//	@Security		BearerAuth
//	@Router			/import/{type} [post]
func (h *ImportExportHandler) Import() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		t, err := importType(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		file, err := h.openUpload(w, r)
		if err != nil {
			logger.Warn("Rejected upload", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}
		defer file.Close()

		autoUpdate, err := formBool(r, "autoUpdate")
		if err != nil {
			response.Error(w, err)
			return
		}

		result, err := h.importService.Import(r.Context(), claims.UserID, t, file, autoUpdate)
		if err != nil {
			logger.Error("Import failed", slog.String("type", string(t)), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}
