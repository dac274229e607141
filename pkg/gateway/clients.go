package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

// ===================================================================
// Client operations
// ===================================================================
// All methods delegate to the remote /clients endpoints

// clientEnvelope decodes a single client from either {"client": {...}} or a
// bare client object; both shapes are returned by different API versions.
type clientEnvelope struct {
	Client models.Client
}

func (e *clientEnvelope) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Client json.RawMessage `json:"client"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if len(wrapped.Client) > 0 && string(wrapped.Client) != "null" {
		data = wrapped.Client
	}
	return json.Unmarshal(data, &e.Client)
}

// client returns the decoded record after checking nested file ownership.
func (e *clientEnvelope) client() (*models.Client, error) {
	if err := e.Client.CheckFileOwnership(); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &e.Client, nil
}

// ListClients returns one page of clients. rawQuery is appended to the
// endpoint verbatim; building and encoding it is the caller's job (see
// models.ClientFilter).
func (g *Gateway) ListClients(ctx context.Context, rawQuery string) (*models.ClientsResponse, error) {
	var resp models.ClientsResponse
	if err := g.doRequest(ctx, &request{
		method:     http.MethodGet,
		path:       "/clients",
		rawQuery:   rawQuery,
		idempotent: true,
	}, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}

	return &resp, nil
}

// GetClient fetches a single client, including its files when the API embeds
// them.
func (g *Gateway) GetClient(ctx context.Context, id models.ID) (*models.Client, error) {
	if err := g.checkBaseURL(); err != nil {
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	seg, err := pathSegment("client id", id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	var env clientEnvelope
	if err := g.doRequest(ctx, &request{
		method:     http.MethodGet,
		path:       "/clients/" + seg,
		idempotent: true,
	}, &env); err != nil {
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	c, err := env.client()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	return c, nil
}

// CreateClient submits a new client as a multipart form with any attachments
// and returns the created record. If any attachment can't be opened or read
// no request is sent. Field values are sent as given; the API decides whether
// they are acceptable.
func (g *Gateway) CreateClient(ctx context.Context, data *models.CreateFormData) (*models.Client, error) {
	if err := g.checkBaseURL(); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("failed to create client: %w",
			&ValidationError{Err: fmt.Errorf("form data is required")})
	}

	f := newForm()
	for _, field := range data.TextFields() {
		f.addField(field[0], field[1])
	}
	for _, a := range data.Attachments() {
		f.addFile(a[0], a[1])
	}

	var env clientEnvelope
	if err := g.doRequest(ctx, &request{
		method: http.MethodPost,
		path:   "/clients",
		form:   f,
	}, &env); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	c, err := env.client()
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	g.logger.Info("created client", "id", c.ID, "attachments", len(f.attachments))
	return c, nil
}

// UpdateClient replaces the scalar fields of an existing client with the full
// payload in req.
func (g *Gateway) UpdateClient(ctx context.Context, req *models.UpdateClientRequest) error {
	if err := g.checkBaseURL(); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if req == nil {
		return fmt.Errorf("failed to update client: %w",
			&ValidationError{Err: fmt.Errorf("update request is required")})
	}

	seg, err := pathSegment("client id", req.ID.String())
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	if err := g.doRequest(ctx, &request{
		method: http.MethodPut,
		path:   "/clients/" + seg,
		body:   req,
	}, nil); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	return nil
}

// DeleteClient deletes a client.
func (g *Gateway) DeleteClient(ctx context.Context, id models.ID) error {
	if err := g.checkBaseURL(); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	seg, err := pathSegment("client id", id.String())
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	if err := g.doRequest(ctx, &request{
		method: http.MethodDelete,
		path:   "/clients/" + seg,
	}, nil); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	g.logger.Info("deleted client", "id", id)
	return nil
}
