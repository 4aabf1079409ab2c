package pg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционный прогон против настоящего Postgres: типы создаются,
// повторная проекция идемпотентна, метки апсертятся.
func TestProject_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in -short")
	}

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("vybor"),
		tcpostgres.WithUsername("vybor"),
		tcpostgres.WithPassword("vybor"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(ctr) })

	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dirs := sample()
	require.NoError(t, Project(db, dirs))

	// тип появился и хранит значения в порядке объявления
	rows, err := db.QueryContext(ctx,
		`SELECT e.enumlabel FROM pg_enum e
		 JOIN pg_type t ON t.oid = e.enumtypid
		 WHERE t.typname = 'core_delivery_time'
		 ORDER BY e.enumsortorder`)
	require.NoError(t, err)
	defer rows.Close()

	var vals []string
	for rows.Next() {
		var v string
		require.NoError(t, rows.Scan(&v))
		vals = append(vals, v)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"OneDay", "TwoDays", "OneWeekOrMore"}, vals)

	// повторная проекция не падает (duplicate_object глотается)
	require.NoError(t, Project(db, dirs))

	// метки с фолбэком
	var label string
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT label FROM vybor_enum_labels WHERE directory = 'core.delivery_time' AND code = 'OneWeekOrMore'`).
		Scan(&label))
	assert.Equal(t, "OneWeekOrMore", label)
}
