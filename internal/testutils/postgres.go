package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jaewonk/gpu-admin-go/internal/domain/audit"
	"github.com/jaewonk/gpu-admin-go/internal/domain/pool"
	"github.com/jaewonk/gpu-admin-go/internal/domain/registry"
	"github.com/jaewonk/gpu-admin-go/internal/domain/reservation"
	"github.com/jaewonk/gpu-admin-go/internal/domain/usage"
)

// SetupPostgresForIntegration returns a migrated gorm handle, against either
// an external database (TEST_DB_DSN) or a throwaway postgres container.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal(err)
		}
		migrate(gormDB)
		return gormDB, func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "gpuadmin",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/gpuadmin?sslmode=disable", host, port.Port())

	// wait until the server accepts connections before handing gorm the DSN
	for i := 0; i < 10; i++ {
		probe, perr := sql.Open("postgres", dsn)
		if perr == nil {
			perr = probe.Ping()
			_ = probe.Close()
		}
		if perr == nil {
			break
		}
		time.Sleep(time.Second)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	migrate(gormDB)

	return gormDB, func() {
		_ = pg.Terminate(ctx)
	}
}

func migrate(gormDB *gorm.DB) {
	if err := gormDB.AutoMigrate(
		&pool.GPUPool{},
		&registry.Service{},
		&usage.Record{},
		&reservation.Reservation{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatal(err)
	}
}
