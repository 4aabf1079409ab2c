package api

import (
	"vybor/internal/catalog"
)

type dirSummary struct {
	Group string `json:"group"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Items int    `json:"items"`
}

func summarize(d catalog.Directory) dirSummary {
	return dirSummary{
		Group: d.Group,
		Name:  d.Name,
		Kind:  kindOrEnum(d),
		Items: len(d.Items),
	}
}

// kindOrEnum — наружу пустой kind не отдаём
func kindOrEnum(d catalog.Directory) string {
	if d.Kind == "" {
		return catalog.KindEnum
	}
	return d.Kind
}
