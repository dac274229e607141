package models

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/mitchellh/mapstructure"
)

// CreateFormData is the transient payload of a create-client call: the
// required scalar fields plus optional local attachment paths. It is never
// persisted.
type CreateFormData struct {
	CompanyName string `json:"company_name"`
	ClientName  string `json:"client_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	State       string `json:"state"`
	City        string `json:"city"`
	Segment     string `json:"segment"`

	// Attachment slots, each a local file path.
	PurchaseOrder     string   `json:"purchase_order,omitempty"`
	Invoice           []string `json:"invoice,omitempty"`
	HandingOverReport string   `json:"handing_over_report,omitempty"`
	PMSReport         []string `json:"pms_report,omitempty"`
}

// Validate checks the scalar fields with the same rules as the client entry
// form.
func (f *CreateFormData) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.CompanyName, validation.Required, validation.Length(2, 0)),
		validation.Field(&f.ClientName, validation.Required, validation.Length(2, 0)),
		validation.Field(&f.Email, validation.Required, is.EmailFormat),
		validation.Field(&f.Phone, validation.Required, validation.Length(10, 10)),
		validation.Field(&f.State, validation.Required),
		validation.Field(&f.City, validation.Required),
		validation.Field(&f.Segment, validation.Required),
	)
}

// TextFields returns the scalar form fields in submission order.
func (f *CreateFormData) TextFields() [][2]string {
	return [][2]string{
		{"company_name", f.CompanyName},
		{"client_name", f.ClientName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"state", f.State},
		{"city", f.City},
		{"segment", f.Segment},
	}
}

// Attachments returns the (field name, path) pairs of every attachment slot in
// submission order. List slots repeat their field name once per path.
func (f *CreateFormData) Attachments() [][2]string {
	var out [][2]string

	if f.PurchaseOrder != "" {
		out = append(out, [2]string{"purchase_order", f.PurchaseOrder})
	}
	for _, p := range f.Invoice {
		out = append(out, [2]string{"invoice", p})
	}
	if f.HandingOverReport != "" {
		out = append(out, [2]string{"handing_over_report", f.HandingOverReport})
	}
	for _, p := range f.PMSReport {
		out = append(out, [2]string{"pms_report", p})
	}

	return out
}

// UpdateClientRequest carries the mutable scalar fields of a client plus the
// identifier of the record to update.
type UpdateClientRequest struct {
	ID          ID     `json:"id"`
	CompanyName string `json:"company_name"`
	ClientName  string `json:"client_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Segment     string `json:"segment"`
	State       string `json:"state"`
	City        string `json:"city"`
}

// NewUpdateClientRequest seeds an update from an existing record.
func NewUpdateClientRequest(c *Client) *UpdateClientRequest {
	return &UpdateClientRequest{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		ClientName:  c.ClientName,
		Email:       c.Email,
		Phone:       c.Phone,
		Segment:     c.Segment,
		State:       c.State,
		City:        c.City,
	}
}

// Validate checks the identifier and scalar fields.
func (r *UpdateClientRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.CompanyName, validation.Required, validation.Length(2, 0)),
		validation.Field(&r.ClientName, validation.Required, validation.Length(2, 0)),
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Phone, validation.Required, validation.Length(10, 10)),
		validation.Field(&r.State, validation.Required),
		validation.Field(&r.City, validation.Required),
		validation.Field(&r.Segment, validation.Required),
	)
}

// ApplyFields overlays fields keyed by their JSON names, e.g.
// {"email": "new@example.com"}. The identifier can't be changed this way.
func (r *UpdateClientRequest) ApplyFields(fields map[string]string) error {
	if _, ok := fields["id"]; ok {
		return fmt.Errorf("field %q cannot be updated", "id")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      r,
	})
	if err != nil {
		return fmt.Errorf("error creating field decoder: %w", err)
	}

	if err := decoder.Decode(fields); err != nil {
		return fmt.Errorf("error applying fields: %w", err)
	}

	return nil
}
