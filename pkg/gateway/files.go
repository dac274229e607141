package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

// ===================================================================
// File operations
// ===================================================================
// All methods delegate to the remote /clients/{id}/files endpoints

// AttachFile uploads the local file at path to a client under category.
func (g *Gateway) AttachFile(ctx context.Context, clientID models.ID, category, path string) error {
	if err := g.checkBaseURL(); err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	seg, err := pathSegment("client id", clientID.String())
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("failed to upload file: %w",
			&ValidationError{Err: fmt.Errorf("category is required")})
	}

	f := newForm().
		addField("category", category).
		addFile("file", path)

	if err := g.doRequest(ctx, &request{
		method: http.MethodPost,
		path:   "/clients/" + seg + "/files",
		form:   f,
	}, nil); err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	g.logger.Info("uploaded file", "client_id", clientID, "category", category, "path", path)
	return nil
}

// DeleteFile deletes one file of a client.
func (g *Gateway) DeleteFile(ctx context.Context, clientID, fileID models.ID) error {
	if err := g.checkBaseURL(); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	path, err := filePath(clientID, fileID)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if err := g.doRequest(ctx, &request{
		method: http.MethodDelete,
		path:   path,
	}, nil); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// FileURL returns the address the remote API serves a stored file from.
func (g *Gateway) FileURL(file models.File) (string, error) {
	baseURL, err := g.config.resolveBaseURL()
	if err != nil {
		return "", err
	}

	var segs []string
	for _, s := range strings.Split(file.FilePath, "/") {
		if s != "" {
			segs = append(segs, url.PathEscape(s))
		}
	}
	if len(segs) == 0 {
		return "", fmt.Errorf("file %s has no stored path", file.ID)
	}

	return baseURL + "/" + strings.Join(segs, "/"), nil
}

// filePath builds /clients/{client}/files/{file}.
func filePath(clientID, fileID models.ID) (string, error) {
	clientSeg, err := pathSegment("client id", clientID.String())
	if err != nil {
		return "", err
	}
	fileSeg, err := pathSegment("file id", fileID.String())
	if err != nil {
		return "", err
	}
	return "/clients/" + clientSeg + "/files/" + fileSeg, nil
}
