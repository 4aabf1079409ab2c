package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"vybor/internal/api"
	"vybor/internal/catalog"
	"vybor/internal/config"
	"vybor/internal/pg"
)

// loadAll собирает справочники из обоих источников: YAML + .enum DSL.
// Uploads-каталог читается тем же YAML-лоадером.
func loadAll(cfg config.Config) (map[string]catalog.Directory, error) {
	dirs, err := catalog.LoadCatalog(cfg.EnumsDir)
	if err != nil {
		return nil, fmt.Errorf("yaml catalog: %w", err)
	}
	fromDSL, err := catalog.LoadAllEnums(cfg.DSLDir)
	if err != nil {
		return nil, fmt.Errorf("dsl catalog: %w", err)
	}
	for fqn, d := range fromDSL {
		if _, exists := dirs[fqn]; exists {
			return nil, fmt.Errorf("directory %q declared in both yaml and dsl", fqn)
		}
		dirs[fqn] = d
	}
	if uploaded, err := catalog.LoadCatalog(cfg.UploadsRoot); err == nil {
		for fqn, d := range uploaded {
			dirs[fqn] = d // импортированные перекрывают базовые
		}
	}
	return dirs, nil
}

func main() {
	cfg := config.LoadWithPath("vybor.json")

	// 1. Загружаем справочники (YAML + DSL)
	dirs, err := loadAll(cfg)
	if err != nil {
		log.Fatalf("Ошибка загрузки справочников: %v", err)
	}
	if issues := catalog.Lint(dirs); len(issues) > 0 {
		for _, it := range issues {
			log.Printf("lint: %s [%s] %s", it.Directory, it.Code, it.Message)
		}
		log.Fatalf("Каталог содержит %d блокирующих проблем", len(issues))
	}
	fmt.Printf("Загружено справочников: %d\n", len(dirs))

	// 2. Реестр + ревизия
	reg := catalog.NewRegistry(dirs)
	fmt.Printf("Ревизия реестра: %s\n", reg.Revision())

	// 3. Опциональная проекция в Postgres (нативные enum-типы + метки)
	if cfg.DBURL != "" && cfg.AutoSync {
		db, err := pg.Open(cfg.DBURL)
		if err != nil {
			log.Fatalf("Ошибка подключения к Postgres: %v", err)
		}
		if err := pg.Project(db, dirs); err != nil {
			log.Fatalf("Ошибка проекции enum-типов: %v", err)
		}
		_ = db.Close()
		fmt.Println("Enum-типы спроецированы в Postgres")
	}

	loader := func() (map[string]catalog.Directory, error) { return loadAll(cfg) }

	// 4. Наблюдение за каталогами — горячая перезагрузка
	if cfg.Watch {
		debounce := time.Duration(cfg.WatchDebounceMs) * time.Millisecond
		roots := []string{cfg.EnumsDir, cfg.DSLDir, cfg.UploadsRoot}
		if err := catalog.Watch(context.Background(), reg, loader, roots, debounce); err != nil {
			log.Printf("watch отключён: %v", err)
		}
	}

	// 5. Запускаем REST API сервер
	srv := api.NewServer(reg, loader, &api.SourceStore{Root: cfg.UploadsRoot})
	fmt.Printf("Стартуем сервер Vybor на :%s...\n", cfg.Port)
	api.RunServer(":"+cfg.Port, srv)
}
