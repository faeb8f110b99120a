//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"careerlaunch/cmd/bootstrap"
	"careerlaunch/cmd/bootstrap/components"
	"careerlaunch/internal/infra/kvstore"
	"careerlaunch/internal/infra/repository"
	"careerlaunch/internal/pkg/config"

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

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

// Every collection key the app writes; ResetStore deletes all of them.
var storeKeys = []string{
	repository.KeyNotifications,
	repository.KeyPreferences,
	repository.KeyJobs,
	repository.KeyApplicants,
	repository.KeyEmailTemplates,
	repository.KeyInterviews,
}

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per-process environment for one store driver
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, driver string) config.Config {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.Store.Driver = driver
	cfg.CORS.AllowOrigins = []string{"http://localhost:3000"}
	cfg.CORS.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}
	cfg.Seed.SampleData = true

	switch driver {
	case kvstore.DriverPostgres:
		startPostgreSQLContainerOnce(t)
		info, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
		require.NoError(t, err, "failed to read PostgreSQL container address")
		cfg.DB = prepareDatabase(t, info)
	case kvstore.DriverRedis:
		startRedisContainerOnce(t)
		info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
		require.NoError(t, err, "failed to read Redis container address")
		cfg.Redis = config.RedisConfig{
			Addr: fmt.Sprintf("%s:%s", info.Host, info.Port.Port()),
			// A prefix per process keeps parallel runs apart.
			KeyPrefix: "e2e_" + strings.ReplaceAll(uuid.New().String(), "-", "") + ":",
		}
	default:
		t.Fatalf("unsupported e2e store driver %q", driver)
	}

	slog.Info("E2E environment ready", "driver", driver)
	return cfg
}

// ------------------------------------------------------------
// Database per test process
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, info ContainerInfo) config.DBConfig {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to connect as admin")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			// Backoff
			time.Sleep(min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second))
			slog.Warn("Retrying database creation", "attempt", attempts+1, "error", createErr.Error())
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("Failed to connect for database cleanup", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("Failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

// ------------------------------------------------------------
// Application under test
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App, error) {
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		components.RepositoryModule,
		components.DeliveryModule,
		components.UseCaseModule,
		components.StateModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to start fx app: %w", err)
	}
	return router, app, nil
}

func stopApp(app *fx.App) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		slog.Warn("Failed to stop fx app", "error", err.Error())
	}
}

// ------------------------------------------------------------
// Containers
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Name:   "careerlaunch-postgres-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start PostgreSQL container")

		t.Cleanup(func() { terminate(postgresTestContainer, "PostgreSQL") })
	})
}

func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Name:         "careerlaunch-redis-e2e",
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start Redis container")

		t.Cleanup(func() { terminate(redisTestContainer, "Redis") })
	})
}

func terminate(c testcontainers.Container, name string) {
	if c == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.Terminate(ctx); err != nil {
		slog.Warn("Failed to terminate container", "container", name, "error", err.Error())
	}
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite
// ------------------------------------------------------------

// SharedSuite runs the whole app against a real store. Driver must be set
// before the suite starts.
type SharedSuite struct {
	suite.Suite
	Driver string
	Router *gin.Engine
	Config config.Config

	app *fx.App
}

func (s *SharedSuite) SetupSuite() {
	s.Config = setupE2EEnvironment(s.T(), s.Driver)
	s.startApp()
}

func (s *SharedSuite) TearDownSuite() {
	if s.app != nil {
		stopApp(s.app)
	}
}

// SetupSubTest wipes the store and restarts the app so each case sees the
// freshly seeded sample data.
func (s *SharedSuite) SetupSubTest() {
	s.ResetStore()
	s.Restart()
}

// Restart stops the running app and starts a new one over the same store.
func (s *SharedSuite) Restart() {
	if s.app != nil {
		stopApp(s.app)
	}
	s.startApp()
}

func (s *SharedSuite) ResetStore() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := kvstore.Open(ctx, s.Config, slog.Default())
	require.NoError(t, err, "failed to open store for reset")
	defer store.Close()

	for _, key := range storeKeys {
		require.NoError(t, store.Delete(ctx, key), "failed to delete %s", key)
	}
}

func (s *SharedSuite) startApp() {
	router, app, err := buildE2EApp(s.Config)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), router, "router was not built")
	s.Router = router
	s.app = app
}
