package models

// RegisterRequest is the body of POST /api/register. RowData is an ordered
// row of cells; which field goes in which position is decided by the
// destination tab's columns, not by this service.
type RegisterRequest struct {
	SheetName string   `json:"sheet_name" binding:"required"`
	RowData   []string `json:"row_data" binding:"required,min=1"`
}
