package api

import (
	"vybor/internal/catalog"
)

// Server связывает реестр справочников с HTTP-хендлерами.
type Server struct {
	Reg  *catalog.Registry
	Load catalog.Loader // перечитка с диска для /api/admin/reload
	Src  *SourceStore   // хранилище импортированных YAML (nil = import выключен)
}

func NewServer(reg *catalog.Registry, load catalog.Loader, src *SourceStore) *Server {
	return &Server{Reg: reg, Load: load, Src: src}
}
