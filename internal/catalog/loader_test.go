package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadCatalog_GroupFromSubdir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "core", "status.yaml"), `
items:
  - code: active
    label: "Активен"
  - code: blocked
`)

	dirs, err := LoadCatalog(root)
	require.NoError(t, err)
	require.Len(t, dirs, 1)

	d, ok := dirs["core.status"]
	require.True(t, ok, "имя из файла, группа из подкаталога")
	assert.Equal(t, "core", d.Group)
	assert.Equal(t, "status", d.Name)
	assert.True(t, d.IsEnum(), "kind по умолчанию — enum")
	require.Len(t, d.Items, 2)
	assert.Equal(t, "Активен", d.Items[0].DisplayLabel())
	assert.Equal(t, "blocked", d.Items[1].DisplayLabel(), "без метки — код")
}

func TestLoadCatalog_NameAndGroupFromYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "whatever.yml"), `
name: delivery_time
group: core
items:
  - code: OneDay
`)

	dirs, err := LoadCatalog(root)
	require.NoError(t, err)
	_, ok := dirs["core.delivery_time"]
	assert.True(t, ok)
}

func TestLoadCatalog_DuplicateCode(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "core", "bad.yaml"), `
items:
  - code: a
  - code: a
`)

	_, err := LoadCatalog(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate code")
}

func TestLoadCatalog_EmptyCode(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "core", "bad.yaml"), `
items:
  - code: ""
`)

	_, err := LoadCatalog(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty code")
}

func TestLoadCatalog_ExplicitOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "core", "sorted.yaml"), `
items:
  - code: third
    order: 3
  - code: first
    order: 1
  - code: second
    order: 2
  - code: tail
`)

	dirs, err := LoadCatalog(root)
	require.NoError(t, err)
	d := dirs["core.sorted"]
	got := make([]string, 0, len(d.Items))
	for _, it := range d.Items {
		got = append(got, it.Code)
	}
	// незаданный order уходит в хвост
	assert.Equal(t, []string{"first", "second", "third", "tail"}, got)
}

func TestLoadCatalog_DeclarationOrderWithoutExplicit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "core", "plain.yaml"), `
items:
  - code: z
  - code: a
  - code: m
`)

	dirs, err := LoadCatalog(root)
	require.NoError(t, err)
	d := dirs["core.plain"]
	assert.Equal(t, "z", d.Items[0].Code)
	assert.Equal(t, "a", d.Items[1].Code)
	assert.Equal(t, "m", d.Items[2].Code)
}

func TestLoadCatalog_MissingRoot(t *testing.T) {
	dirs, err := LoadCatalog(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestLoadCatalog_DuplicateFQN(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "core", "status.yaml"), "items:\n  - code: a\n")
	writeFile(t, filepath.Join(root, "core", "status2.yaml"), "name: status\nitems:\n  - code: b\n")

	_, err := LoadCatalog(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate directory")
}
