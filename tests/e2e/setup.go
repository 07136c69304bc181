//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/cmd/bootstrap/components"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "hotel"
	pgPassword = "hotelpass"
	pgPort     = "5432/tcp"
	redisPort  = "6379/tcp"
)

// Containers are started once per test binary and shared by every suite in it.
var (
	containersOnce sync.Once
	containersErr  error
	pgContainer    testcontainers.Container
	redisContainer testcontainers.Container
)

var migrationFiles = []string{
	"migrations/001_initial_schema.sql",
}

type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) Addr() string { return e.Host + ":" + e.Port.Port() }

// ------------------------------------------------------------
// コンテナ起動（プロセスごとに一度だけ）
// ------------------------------------------------------------
func ensureContainers(t *testing.T) (pg, rds endpoint) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	containersOnce.Do(func() {
		pgContainer, containersErr = runContainer(postgresRequest(), 180*time.Second)
		if containersErr != nil {
			return
		}
		redisContainer, containersErr = runContainer(redisRequest(), 60*time.Second)
	})
	require.NoError(t, containersErr, "コンテナの起動に失敗")

	pg, err := mappedEndpoint(pgContainer, pgPort)
	require.NoError(t, err, "PostgreSQLのポート取得に失敗")
	rds, err = mappedEndpoint(redisContainer, redisPort)
	require.NoError(t, err, "Redisのポート取得に失敗")
	return pg, rds
}

// postgresRequest trades durability for speed; the concurrency suites need
// more connections than the default.
func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{pgPort},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=300",
			"-c", "log_statement=none",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return adminDSN(endpoint{Host: host, Port: port})
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "hotel-booking-e2e"},
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{redisPort},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
		WaitingFor:   wait.ForListeningPort(redisPort).WithStartupTimeout(30 * time.Second),
		Labels:       map[string]string{"purpose": "hotel-booking-e2e"},
	}
}

func runContainer(req testcontainers.ContainerRequest, timeout time.Duration) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func mappedEndpoint(c testcontainers.Container, port string) (endpoint, error) {
	ctx := context.Background()
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return endpoint{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{Host: host, Port: mapped}, nil
}

func adminDSN(pg endpoint) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, pg.Host, pg.Port.Port())
}

// ------------------------------------------------------------
// スイートごとのデータベース作成とマイグレーション
// ------------------------------------------------------------
func createDatabase(t *testing.T, pg endpoint) config.DBConfig {
	t.Helper()
	name := "hotel_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(pg))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// CREATE DATABASE contends on the template database when suites start together.
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(pg))
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 60,
	}
}

func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, file := range migrationFiles {
		sql, err := readFromRepoRoot(file)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("migration %s: %w", file, err)
		}
	}
	return nil
}

// readFromRepoRoot walks up from the package directory `go test` runs in.
func readFromRepoRoot(rel string) ([]byte, error) {
	dir := "."
	for range 4 {
		b, err := os.ReadFile(filepath.Join(dir, rel))
		if err == nil {
			return b, nil
		}
		dir = filepath.Join(dir, "..")
	}
	return nil, fmt.Errorf("%s not found above the working directory", rel)
}

// ------------------------------------------------------------
// fxアプリケーション構築
// ------------------------------------------------------------
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		bootstrap.NotifyModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------

// SharedSuite gives every suite its own database and Redis key namespace on the
// shared containers, and an application wired exactly like cmd/main.go.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	pg, rds := ensureContainers(t)

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, pg)
	cfg.Redis.Addr = rds.Addr()
	cfg.Redis.KeyNamespace = "e2e_" + uuid.NewString()[:8]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	pool, closePool, err := db.Connect(ctx, cfg.DB)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)
	require.NoError(t, migrate(ctx, pool), "データベースマイグレーションに失敗")

	s.Redis = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	t.Cleanup(func() { _ = s.Redis.Close() })

	s.DB = pool
	s.Config = cfg
	s.Router = startApp(t, pool, cfg)
}

// RouterWith starts another application on the suite's database and cache
// with a modified copy of the suite config. It stops when the calling test ends.
func (s *SharedSuite) RouterWith(mutate func(cfg *config.Config)) *gin.Engine {
	cfg := s.Config
	mutate(&cfg)
	return startApp(s.T(), s.DB, cfg)
}

// SetupSubTest starts every subtest from empty tables and a cold room type cache.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
	require.NoError(s.T(), s.flushCache(context.Background()), "Failed to flush cache")
}

func (s *SharedSuite) flushCache(ctx context.Context) error {
	iter := s.Redis.Scan(ctx, 0, s.Config.Redis.KeyNamespace+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.Redis.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
