package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAMLFile читает один YAML-справочник. Имя — из поля name или из имени файла,
// группа — из поля group или из аргумента (обычно имя подкаталога).
func LoadYAMLFile(path, group string) (Directory, error) {
	var dir Directory
	data, err := os.ReadFile(path)
	if err != nil {
		return dir, err
	}
	if err := yaml.Unmarshal(data, &dir); err != nil {
		return dir, fmt.Errorf("parse %s: %w", path, err)
	}
	if dir.Name == "" {
		base := filepath.Base(path)
		dir.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if dir.Group == "" {
		dir.Group = group
	}
	if err := checkItems(dir); err != nil {
		return dir, fmt.Errorf("%s: %w", path, err)
	}
	normalizeOrder(&dir)
	return dir, nil
}

// LoadCatalog читает все enum-справочники из каталога (рекурсивно).
// Подкаталог первого уровня задаёт группу: reference/enums/core/status.yaml -> "core.status".
func LoadCatalog(root string) (map[string]Directory, error) {
	result := make(map[string]Directory)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return result, nil // каталога может не быть — это не ошибка
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		group := groupFromPath(root, path)
		dir, err := LoadYAMLFile(path, group)
		if err != nil {
			return err
		}
		fqn := dir.FQN()
		if _, exists := result[fqn]; exists {
			return fmt.Errorf("duplicate directory %q (file: %s)", fqn, path)
		}
		result[fqn] = dir
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// groupFromPath: первый сегмент относительного пути, если файл лежит в подкаталоге.
func groupFromPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}
	rel = filepath.ToSlash(rel)
	if i := strings.IndexByte(rel, '/'); i > 0 {
		return rel[:i]
	}
	return ""
}

// checkItems — коды обязательны и не должны повторяться.
func checkItems(d Directory) error {
	seen := make(map[string]struct{}, len(d.Items))
	for i, it := range d.Items {
		code := strings.TrimSpace(it.Code)
		if code == "" {
			return fmt.Errorf("item %d: empty code", i)
		}
		if _, dup := seen[code]; dup {
			return fmt.Errorf("duplicate code %q", code)
		}
		seen[code] = struct{}{}
	}
	return nil
}

// normalizeOrder: если order нигде не задан — порядок объявления (индекс файла).
// Если задан хотя бы у одного — сортируем стабильно по order, незаданные уходят в хвост.
func normalizeOrder(d *Directory) {
	explicit := false
	for _, it := range d.Items {
		if it.Order != 0 {
			explicit = true
			break
		}
	}
	if !explicit {
		return
	}
	sort.SliceStable(d.Items, func(i, j int) bool {
		oi, oj := d.Items[i].Order, d.Items[j].Order
		if oi == 0 {
			return false
		}
		if oj == 0 {
			return true
		}
		return oi < oj
	})
}
