package pg

import (
	"fmt"
	"sort"
	"strings"

	"vybor/internal/catalog"
)

var reserved = map[string]struct{}{
	"user": {}, "select": {}, "table": {}, "insert": {}, "update": {}, "delete": {},
	"where": {}, "join": {}, "group": {}, "order": {}, "limit": {}, "offset": {},
	"primary": {}, "foreign": {}, "key": {}, "constraint": {}, "default": {},
	"from": {}, "into": {}, "values": {}, "unique": {}, "index": {}, "create": {},
	"drop": {}, "alter": {}, "schema": {}, "grant": {}, "revoke": {}, "type": {},
}

func isReserved(s string) bool { _, ok := reserved[strings.ToLower(s)]; return ok }

// имя pg-типа: "<group>_<name>" с защитой keyword'ов
func typeName(d catalog.Directory) string {
	n := strings.ToLower(d.Name)
	if d.Group != "" {
		n = strings.ToLower(d.Group) + "_" + n
	}
	n = strings.ReplaceAll(n, ".", "_")
	n = strings.ReplaceAll(n, "-", "_")
	if isReserved(n) {
		n = "e_" + n
	}
	return n
}

func sqlIdent(s string) string { return `"` + strings.ToLower(s) + `"` }

// строковый литерал с удвоением кавычек
func sqlString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// BuildDDL генерирует по каждому enum-справочнику нативный pg-тип:
//
//	CREATE TYPE "core_status" AS ENUM ('active', 'blocked');
//
// Справочники других kind'ов пропускаются. Порядок значений — порядок
// объявления: pg сравнивает enum-значения именно по нему.
func BuildDDL(dirs map[string]catalog.Directory) map[string]string {
	out := make(map[string]string, len(dirs))
	for fqn, d := range dirs {
		if !d.IsEnum() || len(d.Items) == 0 {
			continue
		}
		vals := make([]string, 0, len(d.Items))
		for _, it := range d.Items {
			vals = append(vals, sqlString(it.Code))
		}
		out[fqn] = fmt.Sprintf("CREATE TYPE %s AS ENUM (%s);",
			sqlIdent(typeName(d)), strings.Join(vals, ", "))
	}
	return out
}

// LabelsDDL — таблица меток: display-метаданные живут рядом с типами,
// чтобы SQL-отчёты могли джойнить человекочитаемые имена.
const LabelsDDL = `CREATE TABLE IF NOT EXISTS vybor_enum_labels (
	directory  text NOT NULL,
	code       text NOT NULL,
	label      text NOT NULL,
	deprecated boolean NOT NULL DEFAULT false,
	PRIMARY KEY (directory, code)
);`

// BuildLabelUpserts — идемпотентные апсерты меток, по справочнику на стейтмент.
func BuildLabelUpserts(dirs map[string]catalog.Directory) map[string]string {
	out := make(map[string]string, len(dirs))
	for fqn, d := range dirs {
		if !d.IsEnum() || len(d.Items) == 0 {
			continue
		}
		rows := make([]string, 0, len(d.Items))
		for _, it := range d.Items {
			rows = append(rows, fmt.Sprintf("(%s, %s, %s, %t)",
				sqlString(fqn), sqlString(it.Code), sqlString(it.DisplayLabel()), it.Deprecated))
		}
		out[fqn] = fmt.Sprintf(`INSERT INTO vybor_enum_labels (directory, code, label, deprecated)
VALUES %s
ON CONFLICT (directory, code) DO UPDATE SET label = EXCLUDED.label, deprecated = EXCLUDED.deprecated;`,
			strings.Join(rows, ", "))
	}
	return out
}

// SortedKeys — стабильный порядок применения DDL.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
