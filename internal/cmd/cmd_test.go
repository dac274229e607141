package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/internal/config"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type harness struct {
	ui     *cli.MockUi
	fs     afero.Fs
	opened []string
}

// newHarness wires the command tree to a mock UI, an in-memory filesystem and
// a recording browser.
func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, k := range []string{config.EnvConfigPath, config.EnvAPIURL, config.EnvLogLevel, config.EnvOutput} {
		t.Setenv(k, "")
	}

	h := &harness{ui: cli.NewMockUi(), fs: afero.NewMemMapFs()}

	b := base.NewCommand(hclog.NewNullLogger(), h.ui)
	b.Fs = h.fs
	b.OpenURL = func(u string) error {
		h.opened = append(h.opened, u)
		return nil
	}
	initCommandsWithBase(b)

	return h
}

func (h *harness) run(args ...string) int {
	return run("clientdesk", args)
}

func (h *harness) stdout() string { return h.ui.OutputWriter.String() }
func (h *harness) stderr() string { return h.ui.ErrorWriter.String() }

const clientJSON = `{"id": 7, "company_name": "Acme Marine", "client_name": "Jane Roe",
	"email": "jane@acme.example", "phone": "9876543210", "segment": "marine",
	"state": "Kerala", "city": "Kochi",
	"files": [
		{"id": 3, "created_at": "2024-05-01T10:00:00Z", "original_file_name": "inv.pdf",
		 "file_name": "a1.pdf", "file_path": "uploads/7/a1.pdf", "category": "invoice", "client_id": 7},
		{"id": 4, "created_at": "2024-05-02T10:00:00Z", "original_file_name": "po.pdf",
		 "file_name": "b2.pdf", "file_path": "uploads/7/b2.pdf", "category": "purchase_order", "client_id": 7}
	]}`

func TestClientsList(t *testing.T) {
	var requestURI string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestURI = r.RequestURI
		fmt.Fprint(w, `{"clients": [`+clientJSON+`],
			"metadata": {"current_page": 1, "page_size": 10, "first_page": 1, "last_page": 1, "total_records": 1}}`)
	}))
	defer server.Close()

	h := newHarness(t)

	code := h.run("clients", "list", "-api-url", server.URL, "-state", "Kerala", "-page-size", "10")
	require.Equal(t, 0, code, h.stderr())
	assert.Equal(t, "/clients?pageSize=10&state=Kerala", requestURI)

	var resp models.ClientsResponse
	require.NoError(t, json.Unmarshal([]byte(h.stdout()), &resp))
	require.Len(t, resp.Clients, 1)
	assert.Equal(t, models.ID("7"), resp.Clients[0].ID)
}

func TestClientsList_RawQuery(t *testing.T) {
	var requestURI string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestURI = r.RequestURI
		fmt.Fprint(w, `{"clients": [], "metadata": {"current_page": 2, "page_size": 10, "first_page": 1, "last_page": 2, "total_records": 11}}`)
	}))
	defer server.Close()

	h := newHarness(t)

	code := h.run("clients", "list", "-api-url", server.URL, "-query", "page=2&pageSize=10")
	require.Equal(t, 0, code, h.stderr())
	assert.Equal(t, "/clients?page=2&pageSize=10", requestURI)

	h = newHarness(t)
	assert.Equal(t, 1, h.run("clients", "list", "-api-url", server.URL, "-query", "page=1", "-state", "Kerala"))
	assert.Contains(t, h.stderr(), "-query")
}

func TestClientsList_All(t *testing.T) {
	var mu sync.Mutex
	var pages []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		mu.Lock()
		pages = append(pages, page)
		mu.Unlock()

		fmt.Fprintf(w, `{"clients": [{"id": %q, "company_name": "Client %s"}],
			"metadata": {"current_page": %s, "page_size": 1, "first_page": 1, "last_page": 3, "total_records": 3}}`,
			page, page, page)
	}))
	defer server.Close()

	h := newHarness(t)

	code := h.run("clients", "list", "-api-url", server.URL, "-all", "-page-size", "1")
	require.Equal(t, 0, code, h.stderr())
	assert.Equal(t, []string{"1", "2", "3"}, pages)

	var clients []models.Client
	require.NoError(t, json.Unmarshal([]byte(h.stdout()), &clients))
	require.Len(t, clients, 3)
	assert.Equal(t, models.ID("3"), clients[2].ID)
}

func TestClientsGet_Formats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clients/7", r.URL.Path)
		fmt.Fprint(w, `{"client": `+clientJSON+`}`)
	}))
	defer server.Close()

	t.Run("yaml", func(t *testing.T) {
		h := newHarness(t)
		require.Equal(t, 0, h.run("clients", "get", "-api-url", server.URL, "-format", "yaml", "7"), h.stderr())

		var c models.Client
		require.NoError(t, yaml.Unmarshal([]byte(h.stdout()), &c))
		assert.Equal(t, "Acme Marine", c.CompanyName)
		assert.Len(t, c.Files, 2)
	})

	t.Run("table", func(t *testing.T) {
		h := newHarness(t)
		require.Equal(t, 0, h.run("clients", "get", "-api-url", server.URL, "-format", "table", "7"), h.stderr())

		out := h.stdout()
		assert.Contains(t, out, "COMPANY")
		assert.Contains(t, out, "Acme Marine")
		assert.Contains(t, out, "Purchase Order")
		assert.Contains(t, out, "po.pdf")
	})

	t.Run("invalid format", func(t *testing.T) {
		h := newHarness(t)
		assert.Equal(t, 1, h.run("clients", "get", "-api-url", server.URL, "-format", "xml", "7"))
		assert.Contains(t, h.stderr(), "invalid output format")
	})
}

func TestClientsGet_MissingBaseURL(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 1, h.run("clients", "get", "7"))
	assert.Contains(t, h.stderr(), "invalid configuration")
}

func TestClientsGet_ConfigFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, clientJSON)
	}))
	defer server.Close()

	h := newHarness(t)

	path := t.TempDir() + "/clientdesk.hcl"
	require.NoError(t, afero.WriteFile(afero.NewOsFs(), path, []byte(`
output = "table"
api {
  base_url = "`+server.URL+`"
}
`), 0o600))
	t.Setenv(config.EnvConfigPath, path)

	require.Equal(t, 0, h.run("clients", "get", "7"), h.stderr())
	assert.Contains(t, h.stdout(), "Acme Marine")
	assert.Contains(t, h.stdout(), "COMPANY")
}

func TestClientsCreate(t *testing.T) {
	var values map[string][]string
	var invoices []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		values = r.MultipartForm.Value
		for _, fh := range r.MultipartForm.File["invoice"] {
			invoices = append(invoices, fh.Filename)
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"client": {"id": 12, "company_name": "Acme Marine"}}`)
	}))
	defer server.Close()

	h := newHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/docs/inv-1.pdf", []byte("1"), 0o644))
	require.NoError(t, afero.WriteFile(h.fs, "/docs/inv-2.pdf", []byte("2"), 0o644))

	code := h.run("clients", "create", "-api-url", server.URL,
		"-company-name", "Acme Marine",
		"-client-name", "Jane Roe",
		"-email", "jane@acme.example",
		"-phone", "9876543210",
		"-state", "Kerala",
		"-city", "Kochi",
		"-segment", "marine",
		"-invoice", "/docs/inv-1.pdf",
		"-invoice", "/docs/inv-2.pdf",
	)
	require.Equal(t, 0, code, h.stderr())

	assert.Len(t, values, 7)
	assert.Equal(t, []string{"inv-1.pdf", "inv-2.pdf"}, invoices)
	assert.Contains(t, h.stdout(), `"id": "12"`)
}

func TestClientsCreate_MissingAttachment(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	h := newHarness(t)

	code := h.run("clients", "create", "-api-url", server.URL,
		"-company-name", "Acme Marine",
		"-client-name", "Jane Roe",
		"-email", "jane@acme.example",
		"-phone", "9876543210",
		"-state", "Kerala",
		"-city", "Kochi",
		"-segment", "marine",
		"-purchase-order", "/docs/missing.pdf",
	)
	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr(), "failed to open file /docs/missing.pdf")
	assert.Zero(t, calls)
}

func TestClientsCreate_InvalidForm(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	h := newHarness(t)

	code := h.run("clients", "create", "-api-url", server.URL,
		"-company-name", "X",
		"-client-name", "Jane Roe",
		"-email", "not-an-email",
		"-phone", "9876543210",
		"-state", "Kerala",
		"-city", "Kochi",
		"-segment", "marine",
	)
	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr(), "invalid client")
	assert.Contains(t, h.stderr(), "company_name")
	assert.Contains(t, h.stderr(), "email")
	assert.Zero(t, calls)
}

func TestClientsUpdate(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fmt.Fprint(w, clientJSON)
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	h := newHarness(t)

	code := h.run("clients", "update", "-api-url", server.URL, "-set", "email=ops@acme.example", "7")
	require.Equal(t, 0, code, h.stderr())

	assert.Equal(t, "7", body["id"])
	assert.Equal(t, "ops@acme.example", body["email"])
	assert.Equal(t, "Acme Marine", body["company_name"])
	assert.Contains(t, h.stdout(), "Client 7 updated")
}

func TestClientsUpdate_UnknownField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		fmt.Fprint(w, clientJSON)
	}))
	defer server.Close()

	h := newHarness(t)

	assert.Equal(t, 1, h.run("clients", "update", "-api-url", server.URL, "-set", "nickname=ace", "7"))
	assert.Contains(t, h.stderr(), "nickname")
}

func TestClientsUpdate_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "client not found", http.StatusNotFound)
	}))
	defer server.Close()

	h := newHarness(t)

	assert.Equal(t, 1, h.run("clients", "update", "-api-url", server.URL, "-set", "city=Kochi", "999"))
	assert.Contains(t, h.stderr(), "404")
	assert.Contains(t, h.stderr(), "client not found")
}

func TestClientsDelete(t *testing.T) {
	var deleted bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deleted = r.Method == http.MethodDelete && r.URL.Path == "/clients/7"
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	t.Run("confirmed", func(t *testing.T) {
		deleted = false
		h := newHarness(t)
		h.ui.InputReader = strings.NewReader("yes\n")

		require.Equal(t, 0, h.run("clients", "delete", "-api-url", server.URL, "7"), h.stderr())
		assert.True(t, deleted)
	})

	t.Run("declined", func(t *testing.T) {
		deleted = false
		h := newHarness(t)
		h.ui.InputReader = strings.NewReader("no\n")

		assert.Equal(t, 1, h.run("clients", "delete", "-api-url", server.URL, "7"))
		assert.False(t, deleted)
	})

	t.Run("skip prompt", func(t *testing.T) {
		deleted = false
		h := newHarness(t)

		require.Equal(t, 0, h.run("clients", "delete", "-api-url", server.URL, "-yes", "7"), h.stderr())
		assert.True(t, deleted)
	})
}

func TestFilesAttach(t *testing.T) {
	var category, fileName string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clients/7/files", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		category = r.FormValue("category")
		_, fh, err := r.FormFile("file")
		require.NoError(t, err)
		fileName = fh.Filename
	}))
	defer server.Close()

	h := newHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/docs/report.pdf", []byte("r"), 0o644))

	code := h.run("files", "attach", "-api-url", server.URL, "-category", "PMS Report", "7", "/docs/report.pdf")
	require.Equal(t, 0, code, h.stderr())
	assert.Equal(t, "pms_report", category)
	assert.Equal(t, "report.pdf", fileName)
}

func TestFilesAttach_MissingFile(t *testing.T) {
	h := newHarness(t)

	code := h.run("files", "attach", "-api-url", "http://localhost:1", "-category", "invoice", "7", "/nope.pdf")
	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr(), "failed to upload file: failed to open file /nope.pdf")
}

func TestFilesList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, clientJSON)
	}))
	defer server.Close()

	h := newHarness(t)

	require.Equal(t, 0, h.run("files", "list", "-api-url", server.URL, "-category", "Purchase Order", "7"), h.stderr())

	var files []models.File
	require.NoError(t, json.Unmarshal([]byte(h.stdout()), &files))
	require.Len(t, files, 1)
	assert.Equal(t, models.ID("4"), files[0].ID)
}

func TestFilesSendAndDelete(t *testing.T) {
	var mu sync.Mutex
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		mu.Lock()
		requests = append(requests, r.Method+" "+r.RequestURI)
		mu.Unlock()
	}))
	defer server.Close()

	h := newHarness(t)

	require.Equal(t, 0, h.run("files", "send", "-api-url", server.URL, "7", "3"), h.stderr())
	require.Equal(t, 0, h.run("files", "send-category", "-api-url", server.URL, "7", "Handing Over Report"), h.stderr())
	require.Equal(t, 0, h.run("files", "delete", "-api-url", server.URL, "7", "3"), h.stderr())

	assert.Equal(t, []string{
		"POST /clients/7/files/3/send",
		"POST /clients/7/files/send/handing_over_report",
		"DELETE /clients/7/files/3",
	}, requests)
}

func TestFilesOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, clientJSON)
	}))
	defer server.Close()

	h := newHarness(t)

	require.Equal(t, 0, h.run("files", "open", "-api-url", server.URL, "7", "4"), h.stderr())
	assert.Equal(t, []string{server.URL + "/uploads/7/b2.pdf"}, h.opened)

	h = newHarness(t)
	require.Equal(t, 0, h.run("files", "open", "-api-url", server.URL, "-print", "7", "3"), h.stderr())
	assert.Empty(t, h.opened)
	assert.Contains(t, h.stdout(), server.URL+"/uploads/7/a1.pdf")

	h = newHarness(t)
	assert.Equal(t, 1, h.run("files", "open", "-api-url", server.URL, "7", "99"))
	assert.Contains(t, h.stderr(), "has no file 99")
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 0, h.run("version"))
	assert.Contains(t, h.stdout(), "clientdesk ")
}
