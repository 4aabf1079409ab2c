package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port     string `json:"port"`
	EnumsDir string `json:"enumsDir"` // YAML-справочники
	DSLDir   string `json:"dslDir"`   // *.enum DSL
	DBURL    string `json:"dbUrl"`    // пусто = без pg-проекции
	AutoSync bool   `json:"autoSync"` // проецировать enum-типы в pg на старте

	// Импорт через API
	UploadsRoot string `json:"uploadsRoot"` // куда класть принятые YAML

	// Наблюдение за каталогами
	Watch           bool `json:"watch"`
	WatchDebounceMs int  `json:"watchDebounceMs"`
}

func def() Config {
	return Config{
		Port:     "8080",
		EnumsDir: "reference/enums",
		DSLDir:   "dsl",
		DBURL:    "",
		AutoSync: false,

		UploadsRoot: "uploads",

		Watch:           true,
		WatchDebounceMs: 300,
	}
}

func loadJSON(path string) (Config, error) {
	c := def()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
func getenvBool(k string, fallback bool) bool {
	if v, ok := os.LookupEnv(k); ok {
		v = strings.TrimSpace(strings.ToLower(v))
		if v == "1" || v == "true" || v == "yes" {
			return true
		}
		if v == "0" || v == "false" || v == "no" {
			return false
		}
	}
	return fallback
}
func getenvInt(k string, fallback int) int {
	if v, ok := os.LookupEnv(k); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

// FromFileAndEnv читает JSON (если есть) и применяет ENV-оверрайды.
// Флаги накладываются отдельно в LoadWithPath — так слой тестируется без flag.Parse.
func FromFileAndEnv(jsonPath string) Config {
	cfg := def()

	// JSON (если файл существует)
	if st, err := os.Stat(jsonPath); err == nil && !st.IsDir() {
		if c2, err := loadJSON(jsonPath); err == nil {
			cfg = c2
		}
	}

	// ENV overrides
	cfg.Port = getenv("VYBOR_PORT", cfg.Port)
	cfg.EnumsDir = getenv("VYBOR_ENUMS_DIR", cfg.EnumsDir)
	cfg.DSLDir = getenv("VYBOR_DSL_DIR", cfg.DSLDir)
	cfg.DBURL = getenv("VYBOR_DB_URL", cfg.DBURL)
	cfg.AutoSync = getenvBool("VYBOR_AUTO_SYNC", cfg.AutoSync)

	cfg.UploadsRoot = getenv("VYBOR_UPLOADS_ROOT", cfg.UploadsRoot)

	cfg.Watch = getenvBool("VYBOR_WATCH", cfg.Watch)
	cfg.WatchDebounceMs = getenvInt("VYBOR_WATCH_DEBOUNCE_MS", cfg.WatchDebounceMs)

	return cfg
}

// LoadWithPath читает JSON по указанному пути, потом применяет ENV и флаги.
func LoadWithPath(jsonPath string) Config {
	cfg := FromFileAndEnv(jsonPath)

	// Flags overrides
	configPath := flag.String("config", jsonPath, "Path to config JSON")
	port := flag.String("port", cfg.Port, "HTTP port")
	enums := flag.String("enums", cfg.EnumsDir, "Path to YAML enums directory")
	dsl := flag.String("dsl", cfg.DSLDir, "Path to .enum DSL directory")
	db := flag.String("db", cfg.DBURL, "Postgres URL (empty = no projection)")
	auto := flag.String("auto-sync", strconv.FormatBool(cfg.AutoSync), "Project enum types into pg on start (true/false)")
	uploads := flag.String("uploads-root", cfg.UploadsRoot, "Root for imported catalog sources")
	watch := flag.String("watch", strconv.FormatBool(cfg.Watch), "Watch catalog dirs and hot-reload (true/false)")

	flag.Parse()

	// Если через флаг передали другой конфиг — перечитаем
	if *configPath != jsonPath {
		return LoadWithPath(*configPath)
	}

	cfg.Port = strings.TrimSpace(*port)
	cfg.EnumsDir = strings.TrimSpace(*enums)
	cfg.DSLDir = strings.TrimSpace(*dsl)
	cfg.DBURL = strings.TrimSpace(*db)
	cfg.AutoSync = boolish(*auto)
	cfg.UploadsRoot = strings.TrimSpace(*uploads)
	cfg.Watch = boolish(*watch)

	return cfg
}

func boolish(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "true" || s == "1" || s == "yes"
}
