package models

import (
	"net/url"
	"strconv"
	"strings"
)

// ClientFilter builds the raw query string accepted by the list operation.
// Zero values are left out.
type ClientFilter struct {
	CompanyName string
	Segment     string
	State       string
	City        string
	Page        int
	PageSize    int
}

// Encode returns the filter as an encoded query string. The company name is
// lower-cased because the API matches it case-insensitively against a
// lower-case index.
func (f ClientFilter) Encode() string {
	q := url.Values{}

	if s := strings.TrimSpace(f.CompanyName); s != "" {
		q.Set("company_name", strings.ToLower(s))
	}
	if f.Segment != "" {
		q.Set("segment", f.Segment)
	}
	if f.State != "" {
		q.Set("state", f.State)
	}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(f.PageSize))
	}

	return q.Encode()
}
