//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"pickup-rsvp/cmd/bootstrap"
	"pickup-rsvp/cmd/bootstrap/components"
	"pickup-rsvp/internal/infra/db"
	"pickup-rsvp/internal/infra/payment"
	"pickup-rsvp/internal/pkg/config"
	"pickup-rsvp/internal/usecase/commands"
	"pickup-rsvp/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgImage    = "postgres:17"
)

// server is the postgres instance shared by every suite in the process.
var server struct {
	once sync.Once
	c    testcontainers.Container
	host string
	port nat.Port
	err  error
}

func startPostgres(t *testing.T) {
	t.Helper()
	server.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		req := testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			// durability is irrelevant for throwaway data
			Cmd: []string{"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return adminDSN(host, port)
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "pickup-rsvp-e2e"},
		}

		server.c, server.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if server.err != nil {
			return
		}
		if server.host, server.err = server.c.Host(ctx); server.err != nil {
			return
		}
		server.port, server.err = server.c.MappedPort(ctx, "5432/tcp")
	})
	require.NoError(t, server.err, "postgres container did not start")
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// createDatabase makes a fresh database for one suite, applies the schema and
// drops it again on cleanup.
func createDatabase(t *testing.T) config.DBConfig {
	t.Helper()

	name := "rsvp_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(server.host, server.port))
	require.NoError(t, err)
	defer admin.Close()

	// CREATE DATABASE contends on the template database when suites start together.
	for attempt := 1; ; attempt++ {
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil || attempt == 5 {
			break
		}
		time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
	}
	require.NoError(t, err, "create database %s", name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(server.host, server.port))
		if err != nil {
			slog.Warn("drop database skipped", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err.Error())
		}
	})

	cfg := config.DBConfig{
		Host:     server.host,
		Port:     server.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
	applyMigrations(t, cfg)
	return cfg
}

func applyMigrations(t *testing.T, cfg config.DBConfig) {
	t.Helper()

	files, err := filepath.Glob(filepath.Join(migrationsDir(t), "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no migrations found")
	sort.Strings(files)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	pool, closePool, err := db.Connect(ctx, cfg)
	require.NoError(t, err)
	defer closePool()

	for _, f := range files {
		sql, err := os.ReadFile(f)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, string(sql))
		require.NoError(t, err, "migration %s", filepath.Base(f))
	}
}

// migrationsDir walks up from the package directory to the module root.
func migrationsDir(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations")
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "module root not found")
		dir = parent
	}
}

type app struct {
	router  *gin.Engine
	cfg     config.Config
	pool    *pgxpool.Pool
	gateway *payment.MockGateway
}

// startApp wires the production modules against the suite database, with the
// in-memory payment gateway and no external cache or queue.
func startApp(t *testing.T, dbCfg config.DBConfig) app {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg

	pool, closePool, err := db.Connect(context.Background(), dbCfg)
	require.NoError(t, err)
	t.Cleanup(closePool)

	var (
		a       app
		gateway commands.PaymentGateway
	)
	fxApp := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CacheModule,
		bootstrap.NotificationModule,
		bootstrap.PaymentModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&a.router, &gateway),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, fxApp.Start(ctx), "app did not start")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := fxApp.Stop(ctx); err != nil {
			slog.Warn("app stop failed", "error", err.Error())
		}
	})

	mock, ok := gateway.(*payment.MockGateway)
	require.True(t, ok, "test config must select the mock payment gateway")

	a.cfg, a.pool, a.gateway = cfg, pool, mock
	return a
}

// SharedSuite gives every e2e suite its own database behind the full router.
// Tables are truncated before each test and subtest.
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	DB      *pgxpool.Pool
	Config  config.Config
	Gateway *payment.MockGateway
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)
	startPostgres(t)

	a := startApp(t, createDatabase(t))
	s.Router, s.Config, s.DB, s.Gateway = a.router, a.cfg, a.pool, a.gateway
}

func (s *SharedSuite) SetupTest() {
	s.Require().NoError(dbtest.ResetDB(s.DB), "reset database")
}

func (s *SharedSuite) SetupSubTest() {
	s.Require().NoError(dbtest.ResetDB(s.DB), "reset database")
}
