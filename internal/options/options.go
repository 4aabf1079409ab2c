// Package options строит упорядоченные option-списки для select-контролов
// по enum-справочникам и по статически зарегистрированным Go-перечислениям.
package options

import (
	"errors"
	"fmt"

	"vybor/internal/catalog"
)

// ErrNotEnum — аргумент не является перечислением (справочник другого kind,
// незарегистрированный или не-целочисленный Go-тип).
var ErrNotEnum = errors.New("not an enum")

// Option — один пункт выпадающего списка.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Build строит option-список по справочнику: ровно один пункт на каждый член,
// в порядке объявления. Метка — Label члена, при пустой — его код.
// selected, не совпавший ни с одним кодом, просто не помечает ничего.
func Build(dir catalog.Directory, selected string) ([]Option, error) {
	if !dir.IsEnum() {
		return nil, fmt.Errorf("directory %q has kind %q: %w", dir.FQN(), dir.Kind, ErrNotEnum)
	}
	out := make([]Option, 0, len(dir.Items))
	for _, it := range dir.Items {
		out = append(out, Option{
			Value:    it.Code,
			Label:    it.DisplayLabel(),
			Selected: selected != "" && it.Code == selected,
		})
	}
	return out, nil
}

// ForName — то же, но по имени справочника в реестре.
// Неизвестное имя и не-enum различаются: первое — "не нашли", второе — ErrNotEnum.
func ForName(reg *catalog.Registry, group, name, selected string) ([]Option, error) {
	fqn, ok := reg.NormalizeName(group, name)
	if !ok {
		return nil, fmt.Errorf("directory %q not found", name)
	}
	dir, _ := reg.Get(fqn)
	return Build(dir, selected)
}
