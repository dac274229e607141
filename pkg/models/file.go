package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/iancoleman/strcase"
)

// Well-known file categories. Categories are free-form on the server; these
// are the values the client entry form produces.
const (
	CategoryInvoice           = "invoice"
	CategoryPurchaseOrder     = "purchase_order"
	CategoryHandingOverReport = "handing_over_report"
	CategoryPMSReport         = "pms_report"
)

// KnownCategories lists the well-known categories in display order.
var KnownCategories = []string{
	CategoryInvoice,
	CategoryPurchaseOrder,
	CategoryHandingOverReport,
	CategoryPMSReport,
}

// File is a document stored by the remote API and owned by exactly one client.
type File struct {
	ID               ID     `json:"id" yaml:"id"`
	CreatedAt        string `json:"created_at" yaml:"created_at"`
	OriginalFileName string `json:"original_file_name" yaml:"original_file_name"`
	FileName         string `json:"file_name" yaml:"file_name"`
	FilePath         string `json:"file_path" yaml:"file_path"`
	Category         string `json:"category" yaml:"category"`
	ClientID         ID     `json:"client_id" yaml:"client_id"`
}

// CreatedTime parses the server-assigned creation timestamp.
func (f *File) CreatedTime() (time.Time, error) {
	if f.CreatedAt == "" {
		return time.Time{}, fmt.Errorf("file %s has no creation time", f.ID)
	}

	t, err := dateparse.ParseAny(f.CreatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing creation time of file %s: %w", f.ID, err)
	}

	return t, nil
}

// NormalizeCategory converts human input such as "Purchase Order" or
// "purchaseOrder" into the snake_case form used by the API.
func NormalizeCategory(category string) string {
	return strcase.ToSnake(strings.TrimSpace(category))
}

// CategoryLabel renders a category for display, e.g. "pms_report" becomes
// "Pms Report".
func CategoryLabel(category string) string {
	words := strings.Fields(strcase.ToDelimited(category, ' '))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
