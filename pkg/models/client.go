package models

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Client is a client record as returned by the remote API.
type Client struct {
	ID          ID     `json:"id" yaml:"id"`
	CompanyName string `json:"company_name" yaml:"company_name"`
	ClientName  string `json:"client_name" yaml:"client_name"`
	Email       string `json:"email" yaml:"email"`
	Phone       string `json:"phone" yaml:"phone"`
	Segment     string `json:"segment" yaml:"segment"`
	State       string `json:"state" yaml:"state"`
	City        string `json:"city" yaml:"city"`

	// Files is only present on responses that embed the client's files.
	Files []File `json:"files,omitempty" yaml:"files,omitempty"`
}

// CheckFileOwnership returns an error for every embedded file whose owner
// differs from the client it is nested under.
func (c *Client) CheckFileOwnership() error {
	var result *multierror.Error

	for _, f := range c.Files {
		if f.ClientID != c.ID {
			result = multierror.Append(result, fmt.Errorf(
				"file %s belongs to client %q, not %q", f.ID, f.ClientID, c.ID))
		}
	}

	return result.ErrorOrNil()
}

// FilesByCategory returns the embedded files with the given category.
func (c *Client) FilesByCategory(category string) []File {
	var files []File
	for _, f := range c.Files {
		if f.Category == category {
			files = append(files, f)
		}
	}
	return files
}

// Metadata describes the window of a paginated list response. It is owned by
// the remote API and never modified locally.
type Metadata struct {
	CurrentPage  int `json:"current_page" yaml:"current_page"`
	PageSize     int `json:"page_size" yaml:"page_size"`
	FirstPage    int `json:"first_page" yaml:"first_page"`
	LastPage     int `json:"last_page" yaml:"last_page"`
	TotalRecords int `json:"total_records" yaml:"total_records"`
}

// HasNext reports whether pages follow the current one.
func (m Metadata) HasNext() bool {
	return m.CurrentPage < m.LastPage
}

// ClientsResponse is the envelope returned by the list endpoint.
type ClientsResponse struct {
	Clients  []Client `json:"clients" yaml:"clients"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}
