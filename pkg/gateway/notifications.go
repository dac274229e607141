package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

// ===================================================================
// Notification operations
// ===================================================================
// The remote API emails stored files; these calls only trigger it.

// SendFile emails a single file.
func (g *Gateway) SendFile(ctx context.Context, clientID, fileID models.ID) error {
	if err := g.checkBaseURL(); err != nil {
		return fmt.Errorf("failed to send file: %w", err)
	}

	path, err := filePath(clientID, fileID)
	if err != nil {
		return fmt.Errorf("failed to send file: %w", err)
	}

	if err := g.doRequest(ctx, &request{
		method: http.MethodPost,
		path:   path + "/send",
	}, nil); err != nil {
		return fmt.Errorf("failed to send file: %w", err)
	}

	g.logger.Info("sent file", "client_id", clientID, "file_id", fileID)
	return nil
}

// SendCategory emails every file of a client in the given category. The
// category is escaped as a single path segment.
func (g *Gateway) SendCategory(ctx context.Context, clientID models.ID, category string) error {
	if err := g.checkBaseURL(); err != nil {
		return fmt.Errorf("failed to send files: %w", err)
	}

	clientSeg, err := pathSegment("client id", clientID.String())
	if err != nil {
		return fmt.Errorf("failed to send files: %w", err)
	}
	categorySeg, err := pathSegment("category", category)
	if err != nil {
		return fmt.Errorf("failed to send files: %w", err)
	}

	if err := g.doRequest(ctx, &request{
		method: http.MethodPost,
		path:   "/clients/" + clientSeg + "/files/send/" + categorySeg,
	}, nil); err != nil {
		return fmt.Errorf("failed to send files: %w", err)
	}

	g.logger.Info("sent files", "client_id", clientID, "category", category)
	return nil
}
