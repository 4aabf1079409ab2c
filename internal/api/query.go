package api

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"vybor/internal/catalog"
)

// ==== Типы сортировки и параметров листинга ====

type SortKey struct {
	Field string
	Desc  bool
}

type ListParams struct {
	Limit  int
	Offset int
	Sort   []SortKey
	Group  string
	Kind   string
	Q      string
}

// ==== Парсинг query-параметров ====

func parseListParams(q url.Values) ListParams {
	// limit
	limit := 50
	lv := q.Get("_limit")
	if lv == "" {
		lv = q.Get("limit")
	}
	if lv != "" {
		if n, err := strconv.Atoi(lv); err == nil && n >= 0 && n <= 1000 {
			limit = n
		}
	}

	// offset
	offset := 0
	ov := q.Get("_offset")
	if ov == "" {
		ov = q.Get("offset")
	}
	if ov != "" {
		if n, err := strconv.Atoi(ov); err == nil && n >= 0 {
			offset = n
		}
	}

	// sort
	var sortKeys []SortKey
	sv := strings.TrimSpace(q.Get("_sort"))
	if sv == "" {
		sv = strings.TrimSpace(q.Get("sort"))
	}
	if sv != "" {
		for _, p := range strings.Split(sv, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			desc := false
			if strings.HasPrefix(p, "-") {
				desc = true
				p = strings.TrimPrefix(p, "-")
			} else if strings.HasPrefix(p, "+") {
				p = strings.TrimPrefix(p, "+")
			}
			if p != "" {
				sortKeys = append(sortKeys, SortKey{Field: p, Desc: desc})
			}
		}
	}

	return ListParams{
		Limit:  limit,
		Offset: offset,
		Sort:   sortKeys,
		Group:  strings.TrimSpace(q.Get("group")),
		Kind:   strings.TrimSpace(q.Get("kind")),
		Q:      strings.TrimSpace(q.Get("q")),
	}
}

// matchDir — фильтры листинга: группа, kind, подстрока в FQN.
func matchDir(fqn string, d catalog.Directory, lp ListParams) bool {
	if lp.Group != "" && !strings.EqualFold(d.Group, lp.Group) {
		return false
	}
	if lp.Kind != "" && !strings.EqualFold(kindOrEnum(d), lp.Kind) {
		return false
	}
	if lp.Q != "" && !strings.Contains(strings.ToLower(fqn), strings.ToLower(lp.Q)) {
		return false
	}
	return true
}

// sortSummaries — мультиключевая сортировка; по умолчанию group, name.
func sortSummaries(list []dirSummary, keys []SortKey) {
	if len(keys) == 0 {
		keys = []SortKey{{Field: "group"}, {Field: "name"}}
	}
	sort.SliceStable(list, func(i, j int) bool {
		for _, k := range keys {
			a, b := summaryField(list[i], k.Field), summaryField(list[j], k.Field)
			if a == b {
				continue
			}
			if k.Desc {
				return a > b
			}
			return a < b
		}
		return false
	})
}

func summaryField(s dirSummary, field string) string {
	switch strings.ToLower(field) {
	case "name":
		return s.Name
	case "kind":
		return s.Kind
	case "items", "size":
		// числа сравниваем как строки фиксированной ширины
		return strconv.FormatInt(int64(s.Items)+1_000_000, 10)
	default:
		return s.Group
	}
}
