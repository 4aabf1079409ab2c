package catalog

import (
	"fmt"
	"strings"
)

type Issue struct {
	Directory string `json:"directory"` // FQN: group.name
	Code      string `json:"code"`
	Item      string `json:"item,omitempty"`
	Message   string `json:"message"`
}

// Lint проверяет базовые противоречия в наборе справочников перед подменой реестра.
func Lint(dirs map[string]Directory) []Issue {
	var issues []Issue

	for fqn, d := range dirs {
		// валидность kind
		switch strings.TrimSpace(strings.ToLower(d.Kind)) {
		case "", KindEnum, KindTable:
		default:
			issues = append(issues, Issue{
				Directory: fqn,
				Code:      "kind_unknown",
				Message:   fmt.Sprintf("unknown kind %q (allowed: enum|table)", d.Kind),
			})
		}

		if d.IsEnum() && len(d.Items) == 0 {
			issues = append(issues, Issue{
				Directory: fqn,
				Code:      "enum_empty",
				Message:   "enum directory has no items",
			})
		}

		seen := map[string]string{} // lower(code) -> code
		for _, it := range d.Items {
			code := strings.TrimSpace(it.Code)
			if code == "" {
				issues = append(issues, Issue{
					Directory: fqn,
					Code:      "code_empty",
					Message:   "item has empty code",
				})
				continue
			}
			// дубликаты ловим регистронезависимо: "Active" и "active" в UI неразличимы
			if prev, dup := seen[strings.ToLower(code)]; dup {
				issues = append(issues, Issue{
					Directory: fqn,
					Code:      "code_duplicate",
					Item:      code,
					Message:   fmt.Sprintf("code %q duplicates %q", code, prev),
				})
				continue
			}
			seen[strings.ToLower(code)] = code

			// deprecated без метки — в списке покажется голый код, почти всегда ошибка данных
			if it.Deprecated && it.Label == "" {
				issues = append(issues, Issue{
					Directory: fqn,
					Code:      "deprecated_unlabeled",
					Item:      code,
					Message:   "deprecated item should keep a display label",
				})
			}
		}
	}
	return issues
}
