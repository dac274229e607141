package gateway

import (
	"net/http"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

// countingTransport records how many requests reach the network.
type countingTransport struct {
	calls int32
	next  http.RoundTripper
}

func (t *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	atomic.AddInt32(&t.calls, 1)
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(r)
}

func (t *countingTransport) Calls() int {
	return int(atomic.LoadInt32(&t.calls))
}

// countingFs records how many files are opened.
type countingFs struct {
	afero.Fs
	opens int32
}

func (fs *countingFs) Open(name string) (afero.File, error) {
	atomic.AddInt32(&fs.opens, 1)
	return fs.Fs.Open(name)
}

func (fs *countingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	atomic.AddInt32(&fs.opens, 1)
	return fs.Fs.OpenFile(name, flag, perm)
}

func (fs *countingFs) Opens() int {
	return int(atomic.LoadInt32(&fs.opens))
}

type testGateway struct {
	*Gateway
	transport *countingTransport
	fs        *countingFs
}

// newTestGateway creates a gateway pointed at baseURL with spies on the
// transport and the filesystem.
func newTestGateway(t *testing.T, cfg *Config) *testGateway {
	t.Helper()

	transport := &countingTransport{}
	fs := &countingFs{Fs: afero.NewMemMapFs()}

	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}

	gw, err := New(cfg,
		WithHTTPClient(&http.Client{Transport: transport, Timeout: cfg.Timeout}),
		WithFs(fs),
		WithLogger(hclog.NewNullLogger()),
	)
	require.NoError(t, err)

	return &testGateway{Gateway: gw, transport: transport, fs: fs}
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func validCreateForm() *models.CreateFormData {
	return &models.CreateFormData{
		CompanyName: "Acme Marine",
		ClientName:  "Jane Roe",
		Email:       "jane@acme.example",
		Phone:       "9876543210",
		State:       "Kerala",
		City:        "Kochi",
		Segment:     "marine",
	}
}

func validUpdateRequest(id models.ID) *models.UpdateClientRequest {
	return &models.UpdateClientRequest{
		ID:          id,
		CompanyName: "Acme Marine",
		ClientName:  "Jane Roe",
		Email:       "jane@acme.example",
		Phone:       "9876543210",
		Segment:     "marine",
		State:       "Kerala",
		City:        "Kochi",
	}
}
