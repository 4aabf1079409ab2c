package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"vybor/internal/catalog"
)

// ApplyDDL выполняет map[fqn]sql. CREATE TYPE не умеет IF NOT EXISTS,
// поэтому duplicate_object (42710) глотаем — повторный прогон идемпотентен.
func ApplyDDL(db *sql.DB, ddl map[string]string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, k := range SortedKeys(ddl) {
		sqlText := strings.TrimSpace(ddl[k])
		if sqlText == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, sqlText); err != nil {
			// pgx/stdlib возвращает *pgconn.PgError
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "42710" {
				log.Printf("DDL skipped (already exists): %s", strings.TrimSpace(pgErr.Message))
				continue
			}
			// подстраховка по фразе (на случай других объектов)
			e := strings.ToLower(err.Error())
			if strings.Contains(e, "already exists") || strings.Contains(e, "duplicate") {
				log.Printf("DDL skipped (already exists): %v", err)
				continue
			}
			return fmt.Errorf("DDL apply failed (%s): %w", k, err)
		}
	}
	return nil
}

// Project проецирует реестр в Postgres: enum-типы + таблица меток.
func Project(db *sql.DB, dirs map[string]catalog.Directory) error {
	if err := ApplyDDL(db, BuildDDL(dirs)); err != nil {
		return err
	}
	if err := ApplyDDL(db, map[string]string{"_labels_table": LabelsDDL}); err != nil {
		return err
	}
	return ApplyDDL(db, BuildLabelUpserts(dirs))
}
