package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestImport(t *testing.T) {
	reg, root := testRegistryWithStore(t)
	s := NewServer(reg, nil, &SourceStore{Root: root})
	r := NewRouter(s)

	body, ct := multipartBody(t, "shipping_method.yaml", `
items:
  - code: courier
    label: "Курьером"
  - code: pickup
    label: "Самовывоз"
`, map[string]string{"group": "core"})

	w := do(r, http.MethodPost, "/api/admin/import", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"directory":"core.shipping_method"`)

	// справочник попал в реестр
	fqn, ok := reg.NormalizeName("core", "shipping_method")
	require.True(t, ok)
	d, _ := reg.Get(fqn)
	require.Len(t, d.Items, 2)

	// исходник лёг на диск под group/name
	_, err := os.Stat(filepath.Join(root, "core", "shipping_method.yaml"))
	assert.NoError(t, err)
}

func TestImport_RejectsBadYAML(t *testing.T) {
	reg, root := testRegistryWithStore(t)
	s := NewServer(reg, nil, &SourceStore{Root: root})
	r := NewRouter(s)

	body, ct := multipartBody(t, "bad.yaml", "items: [}{", map[string]string{"group": "core"})
	w := do(r, http.MethodPost, "/api/admin/import", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImport_RejectsNonYAMLExtension(t *testing.T) {
	reg, root := testRegistryWithStore(t)
	s := NewServer(reg, nil, &SourceStore{Root: root})
	r := NewRouter(s)

	body, ct := multipartBody(t, "evil.exe", "items:\n  - code: a\n", map[string]string{"group": "core"})
	w := do(r, http.MethodPost, "/api/admin/import", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImport_RequiresGroup(t *testing.T) {
	reg, root := testRegistryWithStore(t)
	s := NewServer(reg, nil, &SourceStore{Root: root})
	r := NewRouter(s)

	body, ct := multipartBody(t, "x.yaml", "items:\n  - code: a\n", nil)
	w := do(r, http.MethodPost, "/api/admin/import", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "group is required")
}

func TestImport_LintBlocksDuplicates(t *testing.T) {
	reg, root := testRegistryWithStore(t)
	s := NewServer(reg, nil, &SourceStore{Root: root})
	r := NewRouter(s)

	body, ct := multipartBody(t, "dup.yaml", `
items:
  - code: a
  - code: a
`, map[string]string{"group": "core"})
	w := do(r, http.MethodPost, "/api/admin/import", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "code_duplicate")
}

func TestImport_WithoutStoreIs500(t *testing.T) {
	reg, _ := testRegistryWithStore(t)
	s := NewServer(reg, nil, nil)
	r := NewRouter(s)

	body, ct := multipartBody(t, "x.yaml", "items:\n  - code: a\n", map[string]string{"group": "core"})
	w := do(r, http.MethodPost, "/api/admin/import", body, ct)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
