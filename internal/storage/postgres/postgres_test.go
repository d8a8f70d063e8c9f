//+build integration

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/blocknews-net/herodotus/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	j   storage.Journal
)

func TestMain(m *testing.M) {
	shutdown := setup()

	j = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	_, err := db.ExecContext(ctx, `TRUNCATE journal RESTART IDENTITY`)
	require.NoError(t, err)
}

func TestPg_Ping(t *testing.T) {
	require.NoError(t, j.Ping(ctx))
}

func TestPg_Head_Empty(t *testing.T) {
	defer cleanup(t)

	head, err := j.Head(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, head)
}

func TestPg_Append(t *testing.T) {
	defer cleanup(t)

	created := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	seq, err := j.Append(ctx, &storage.Operation{
		Kind:      "post",
		Caller:    "0x0100000000000000000000000000000000000000",
		Payload:   json.RawMessage(`{"content":"hello"}`),
		CreatedAt: created,
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, seq)

	seq, err = j.Append(ctx, &storage.Operation{
		Kind:      "upvote",
		Caller:    "0x0200000000000000000000000000000000000000",
		Payload:   json.RawMessage(`{"id":1}`),
		CreatedAt: created,
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, seq)

	head, err := j.Head(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, head)
}

func TestPg_List(t *testing.T) {
	defer cleanup(t)

	created := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := j.Append(ctx, &storage.Operation{
			Kind:      "post",
			Caller:    "0x0100000000000000000000000000000000000000",
			Payload:   json.RawMessage(fmt.Sprintf(`{"n":%d}`, i)),
			CreatedAt: created,
		})
		require.NoError(t, err)
	}

	ops, err := j.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, ops, 5)
	assert.EqualValues(t, 1, ops[0].Seq)
	assert.Equal(t, "post", ops[0].Kind)
	assert.Equal(t, "0x0100000000000000000000000000000000000000", ops[0].Caller)
	assert.JSONEq(t, `{"n":0}`, string(ops[0].Payload))
	assert.Equal(t, created, ops[0].CreatedAt.UTC())

	ops, err = j.List(ctx, 3, 10)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.EqualValues(t, 4, ops[0].Seq)
	assert.EqualValues(t, 5, ops[1].Seq)

	ops, err = j.List(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, ops, 2)

	ops, err = j.List(ctx, 5, 10)
	require.NoError(t, err)
	require.Empty(t, ops)
}
