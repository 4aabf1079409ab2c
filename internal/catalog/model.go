package catalog

// Kind справочника. Option-список строится только по enum.
const (
	KindEnum  = "enum"
	KindTable = "table" // плоская справочная таблица, не перечисление
)

// Directory описывает один справочник типа enum
type Directory struct {
	Group string `yaml:"group,omitempty"`
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind,omitempty"` // пусто = enum
	Items []Item `yaml:"items"`
}

type Item struct {
	Code  string `yaml:"code"`
	Label string `yaml:"label,omitempty"` // человекочитаемое имя; пусто = показываем Code
	// Дополнительные поля: Order, Deprecated, ValidFrom, ValidTo и т.д.
	Order      int    `yaml:"order,omitempty"`
	Deprecated bool   `yaml:"deprecated,omitempty"`
	ValidFrom  string `yaml:"valid_from,omitempty"`
	ValidTo    string `yaml:"valid_to,omitempty"`
}

// FQN — полное имя справочника: "group.name" (или просто name, если группы нет).
func (d Directory) FQN() string {
	if d.Group == "" {
		return d.Name
	}
	return d.Group + "." + d.Name
}

// IsEnum — kind по умолчанию enum, так исторически читались старые YAML без kind.
func (d Directory) IsEnum() bool {
	return d.Kind == "" || d.Kind == KindEnum
}

// DisplayLabel возвращает метку элемента с фолбэком на код.
func (it Item) DisplayLabel() string {
	if it.Label != "" {
		return it.Label
	}
	return it.Code
}
