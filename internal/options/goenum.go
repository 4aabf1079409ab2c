package options

import (
	"fmt"
	"reflect"
	"sync"
)

// GoMember описывает один член Go-перечисления в статической таблице.
// Name — имя константы (дефолтная текстовая форма), Label — человекочитаемая
// метка; пустая метка падает обратно на Name.
type GoMember struct {
	Value int64
	Name  string
	Label string
}

var (
	goMu    sync.RWMutex
	goEnums = map[reflect.Type][]GoMember{}
)

// RegisterGoEnum регистрирует именованный целочисленный тип как перечисление.
// В Go нет рантайм-перечня констант типа, поэтому таблица членов задаётся
// явно в точке объявления enum-типа (обычно в init или var-блоке рядом с const).
func RegisterGoEnum(sample any, members []GoMember) error {
	t := reflect.TypeOf(sample)
	if t == nil || !isIntKind(t.Kind()) || t.PkgPath() == "" {
		return fmt.Errorf("type %v is not a named integer type: %w", t, ErrNotEnum)
	}
	if len(members) == 0 {
		return fmt.Errorf("enum %v registered with no members", t)
	}
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m.Name == "" {
			return fmt.Errorf("enum %v: member with empty name", t)
		}
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("enum %v: duplicate member %q", t, m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	goMu.Lock()
	goEnums[t] = append([]GoMember(nil), members...)
	goMu.Unlock()
	return nil
}

// ForValue строит option-список по типу переданного значения; пункт с
// совпавшим значением помечается selected. Тип, не прошедший через
// RegisterGoEnum, — не перечисление.
func ForValue(selected any) ([]Option, error) {
	t := reflect.TypeOf(selected)
	members, err := lookup(t)
	if err != nil {
		return nil, err
	}
	v := reflect.ValueOf(selected)
	var sel int64
	if v.CanUint() {
		sel = int64(v.Uint())
	} else {
		sel = v.Int()
	}
	return buildGo(members, &sel), nil
}

// ForType — список без выбранного пункта (пустой select).
func ForType(sample any) ([]Option, error) {
	members, err := lookup(reflect.TypeOf(sample))
	if err != nil {
		return nil, err
	}
	return buildGo(members, nil), nil
}

func lookup(t reflect.Type) ([]GoMember, error) {
	if t == nil || !isIntKind(t.Kind()) {
		return nil, fmt.Errorf("type %v: %w", t, ErrNotEnum)
	}
	goMu.RLock()
	members, ok := goEnums[t]
	goMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("type %v is not registered: %w", t, ErrNotEnum)
	}
	return members, nil
}

func buildGo(members []GoMember, selected *int64) []Option {
	out := make([]Option, 0, len(members))
	for _, m := range members {
		label := m.Label
		if label == "" {
			label = m.Name
		}
		out = append(out, Option{
			Value:    m.Name,
			Label:    label,
			Selected: selected != nil && m.Value == *selected,
		})
	}
	return out
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
