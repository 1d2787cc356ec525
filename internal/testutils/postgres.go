package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/linskybing/apply-service/internal/domain/apply"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgresForIntegration opens a Postgres handle for integration tests.
// When TEST_DB_DSN is set that database is used directly; otherwise a
// throwaway container is started. The returned cleanup must always be called.
func SetupPostgresForIntegration() (*gorm.DB, func(), error) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		return openAndMigrate(dsn, func() {})
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "apply",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=apply sslmode=disable", host, port.Port())

	return openAndMigrate(dsn, func() {
		if err := container.Terminate(ctx); err != nil {
			log.Printf("failed to terminate postgres container: %v", err)
		}
	})
}

func openAndMigrate(dsn string, terminate func()) (*gorm.DB, func(), error) {
	// Sanity ping before handing the DSN to gorm, so a dead database fails
	// fast with a plain error.
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		terminate()
		return nil, nil, err
	}
	if err := waitForPing(sqlDB); err != nil {
		_ = sqlDB.Close()
		terminate()
		return nil, nil, err
	}
	_ = sqlDB.Close()

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		terminate()
		return nil, nil, err
	}
	if err := gormDB.AutoMigrate(&apply.Application{}); err != nil {
		terminate()
		return nil, nil, err
	}

	cleanup := func() {
		if db, err := gormDB.DB(); err == nil {
			_ = db.Close()
		}
		terminate()
	}
	return gormDB, cleanup, nil
}

func waitForPing(db *sql.DB) error {
	var err error
	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
