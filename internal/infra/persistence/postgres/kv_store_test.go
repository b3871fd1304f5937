package postgres

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// statementRecorder keeps every SQL statement gorm traces.
type statementRecorder struct {
	logger.Interface

	mu         sync.Mutex
	statements []string
}

func (r *statementRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *statementRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, sql)
}

func (r *statementRecorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statements) == 0 {
		return ""
	}

	return r.statements[len(r.statements)-1]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *statementRecorder) {
	t.Helper()

	recorder := &statementRecorder{Interface: logger.Discard}
	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=cheeserater dbname=cheeserater sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               recorder,
	})
	require.NoError(t, err)

	return db, recorder
}

func TestKVStore_SetUpsertsByKey(t *testing.T) {
	db, recorder := newDryRunDB(t)
	store := NewKVStore(db)

	require.NoError(t, store.Set(context.Background(), "cheeses", []byte(`[]`)))

	statement := recorder.last()
	assert.True(t, strings.HasPrefix(statement, `INSERT INTO "kv_documents" ("key","value","updated_at")`), statement)
	assert.Contains(t, statement,
		`ON CONFLICT ("key") DO UPDATE SET "value"="excluded"."value","updated_at"="excluded"."updated_at"`)
}

func TestKVStore_GetFiltersByKey(t *testing.T) {
	db, recorder := newDryRunDB(t)
	store := NewKVStore(db)

	_, err := store.Get(context.Background(), "cheeses")
	require.NoError(t, err)

	statement := recorder.last()
	assert.True(t, strings.HasPrefix(statement, `SELECT * FROM "kv_documents"`), statement)
	assert.Contains(t, statement, `WHERE "kv_documents"."key" = 'cheeses'`)
	assert.Contains(t, statement, `LIMIT 1`)
}

func TestKVStore_SetNotifiesSubscribers(t *testing.T) {
	db, _ := newDryRunDB(t)
	store := NewKVStore(db)
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := store.Subscribe(ctx, "cheeses")
	require.NoError(t, err)

	value := []byte(`[{"name":"brie"}]`)
	require.NoError(t, store.Set(ctx, "cheeses", value))
	value[0] = 'x'

	select {
	case got := <-updates:
		assert.Equal(t, `[{"name":"brie"}]`, string(got))
	case <-time.After(time.Second):
		t.Fatal("subscriber was not notified")
	}
}
