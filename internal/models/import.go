package models

type ImportType string

const (
	ImportTypeProducts ImportType = "products"
	ImportTypeChannels ImportType = "channels"
)

func (t ImportType) Valid() bool {
	return t == ImportTypeProducts || t == ImportTypeChannels
}

type ConflictType string

const (
	ConflictSKU          ConflictType = "sku"
	ConflictName         ConflictType = "name"
	ConflictSupplierCode ConflictType = "supplierCode"
)

type ImportAction string

const (
	ActionSkip      ImportAction = "skip"
	ActionUpdate    ImportAction = "update"
	ActionCreateNew ImportAction = "create_new"
)

// ImportRow is one decoded spreadsheet row. Number is the sheet row, so the
// first data row under the header is 2.
type ImportRow struct {
	Number int               `json:"row"`
	Cells  map[string]string `json:"cells"`
}

func (r ImportRow) Get(column string) string {
	return r.Cells[column]
}

type ImportError struct {
	Row     int               `json:"row"`
	Field   string            `json:"field,omitempty"`
	Value   string            `json:"value,omitempty"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}

type ImportConflict struct {
	Row             int          `json:"row"`
	ExistingProduct *Product     `json:"existingProduct"`
	NewData         *Product     `json:"newData"`
	ConflictType    ConflictType `json:"conflictType"`
}

type ImportResult struct {
	NewProducts     int              `json:"newProducts"`
	UpdatedProducts int              `json:"updatedProducts"`
	SkippedRows     int              `json:"skippedRows"`
	TotalProcessed  int              `json:"totalProcessed"`
	DryRun          bool             `json:"dryRun"`
	Errors          []ImportError    `json:"errors"`
	Conflicts       []ImportConflict `json:"conflicts"`
}

func NewImportResult() *ImportResult {
	return &ImportResult{
		Errors:    []ImportError{},
		Conflicts: []ImportConflict{},
	}
}

type ImportDecision struct {
	Row    int          `json:"row" validate:"min=2"`
	Action ImportAction `json:"action" validate:"required,oneof=skip update create_new"`
}

type ImportOptions struct {
	AutoUpdate bool
	DryRun     bool
	Decisions  map[int]ImportAction
}

type ConfirmImportRequest struct {
	AutoUpdate bool             `json:"autoUpdate"`
	Decisions  []ImportDecision `json:"decisions" validate:"max=10000,dive"`
}

// ImportCommitResponse is returned by the committing import endpoints.
type ImportCommitResponse struct {
	NewItems       int              `json:"newItems"`
	UpdatedItems   int              `json:"updatedItems"`
	SkippedItems   int              `json:"skippedItems"`
	TotalProcessed int              `json:"totalProcessed"`
	Errors         []ImportError    `json:"errors"`
	Conflicts      []ImportConflict `json:"conflicts,omitempty"`
}

type ImportSummary struct {
	NewItems       int  `json:"newItems"`
	UpdatedItems   int  `json:"updatedItems"`
	TotalProcessed int  `json:"totalProcessed"`
	ConflictCount  int  `json:"conflictCount"`
	ErrorCount     int  `json:"errorCount"`
	Committed      bool `json:"committed"`
}

type ImportPreviewResponse struct {
	Conflicts []ImportConflict `json:"conflicts"`
	Errors    []ImportError    `json:"errors"`
	Summary   ImportSummary    `json:"summary"`
}
