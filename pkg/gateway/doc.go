// Package gateway is the command layer between a client-records shell and the
// remote client API. Each operation becomes one HTTP request, and each
// response becomes either a typed value or a classified error.
//
// # Overview
//
// A Gateway is created once from a Config and shared by every caller:
//
//	gw, err := gateway.New(&gateway.Config{
//	    BaseURL: "http://192.168.0.31:8080",
//	}, gateway.WithLogger(logger))
//
//	page, err := gw.ListClients(ctx, models.ClientFilter{State: "Kerala"}.Encode())
//	client, err := gw.GetClient(ctx, "7")
//
// # API Endpoints Required
//
// Clients:
//   - GET    /clients?{query}
//   - GET    /clients/:id
//   - POST   /clients                         (multipart)
//   - PUT    /clients/:id                     (JSON)
//   - DELETE /clients/:id
//
// Files:
//   - POST   /clients/:id/files               (multipart: category + file)
//   - DELETE /clients/:id/files/:fileId
//
// Notifications:
//   - POST /clients/:id/files/:fileId/send
//   - POST /clients/:id/files/send/:category
//
// # Multipart Uploads
//
// Create and attach build their bodies in stages: attachment paths are
// gathered, every file is opened and read into memory, and only when all of
// them succeed is the form encoded and sent. A missing attachment therefore
// never produces a partial upload.
//
// # Error Handling
//
// Errors are classified at the point they are detected:
//
//   - *ConfigError: no usable base URL; returned before any I/O
//   - *ValidationError: bad local input (nil payloads, empty identifiers)
//   - *FileOpenError, *FileReadError, *FileNameError: attachment problems
//   - *TransportError: no HTTP response was received
//   - *APIError: the API answered outside 2xx; carries status and body
//   - *DecodeError: a 2xx body did not match the expected shape
//
// Operations wrap them with context ("failed to update client: ...") so
// err.Error() is a complete message for the user, and errors.As recovers
// the class.
//
// # Retries
//
// Only list and fetch are retried, and only when Config.MaxRetries is set,
// on transport errors and 5xx responses. Writes (create, update, delete,
// attach, send) are attempted exactly once so a lost response can't
// duplicate them.
package gateway
