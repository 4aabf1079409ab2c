package catalog

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Формат .enum-файла:
//
//	group core
//
//	enum DeliveryTime:
//	  OneDay: "In 24 hours"
//	  TwoDays: "In 2 days"
//	  OneWeekOrMore            # без метки — покажем имя члена
//	  Legacy: "Old tier" deprecated
var (
	groupRe  = regexp.MustCompile(`^\s*group\s+([A-Za-z0-9_.-]+)\s*$`)
	enumRe   = regexp.MustCompile(`^enum\s+(\w+):`)
	memberRe = regexp.MustCompile(`^\s*([\w_]+)\s*(?::\s*(.*))?$`)
)

// LoadEnumFile читает один .enum-файл и возвращает список справочников.
func LoadEnumFile(path string) ([]Directory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var dirs []Directory
	var current *Directory
	currentGroup := ""

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// group ...
		if m := groupRe.FindStringSubmatch(line); m != nil {
			currentGroup = m[1]
			continue
		}

		// enum <Name>:
		if m := enumRe.FindStringSubmatch(line); m != nil {
			// закрыть предыдущий справочник
			if current != nil {
				dirs = append(dirs, *current)
			}
			current = &Directory{Name: m[1], Group: currentGroup, Kind: KindEnum}
			continue
		}
		if current == nil {
			// игнорируем всё вне enum-блока
			continue
		}

		// член перечисления: Name[: "Label"] [deprecated]
		// хвостовой комментарий срезаем до разбора (вне кавычек)
		line = cutComment(line)
		if m := memberRe.FindStringSubmatch(line); m != nil {
			it := Item{Code: m[1]}
			tail := strings.TrimSpace(m[2])

			if strings.HasSuffix(tail, "deprecated") {
				it.Deprecated = true
				tail = strings.TrimSpace(strings.TrimSuffix(tail, "deprecated"))
			}
			// снять кавычки с метки, если есть
			if len(tail) >= 2 {
				if (tail[0] == '"' && tail[len(tail)-1] == '"') || (tail[0] == '\'' && tail[len(tail)-1] == '\'') {
					tail = tail[1 : len(tail)-1]
				}
			}
			it.Label = tail
			current.Items = append(current.Items, it)
			continue
		}
	}
	if current != nil {
		dirs = append(dirs, *current)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, d := range dirs {
		if err := checkItems(d); err != nil {
			return nil, fmt.Errorf("%s: enum %s: %w", path, d.Name, err)
		}
	}
	return dirs, nil
}

// cutComment убирает ' # ...' хвост, не трогая # внутри кавычек.
func cutComment(s string) string {
	inSingle, inDouble := false, false
	for i, r := range s {
		switch r {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '#':
			if !inSingle && !inDouble {
				return strings.TrimSpace(s[:i])
			}
		}
	}
	return strings.TrimSpace(s)
}

// LoadAllEnums читает все *.enum из дерева каталогов.
func LoadAllEnums(root string) (map[string]Directory, error) {
	result := make(map[string]Directory)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return result, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".enum") {
			return nil
		}
		dirs, err := LoadEnumFile(path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		for _, dir := range dirs {
			if dir.Name == "" {
				return fmt.Errorf("empty enum name in %s", path)
			}
			if dir.Group == "" {
				return fmt.Errorf("enum %q in %s has no group — add `group <name>` at the top", dir.Name, path)
			}
			fqn := dir.FQN()
			if _, exists := result[fqn]; exists {
				return fmt.Errorf("duplicate enum %q in group %q (file: %s)", dir.Name, dir.Group, path)
			}
			result[fqn] = dir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
