// containers.go
//
// Multi-view database engine and data service for the jam-build second brain
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jam-build-viewdb.
// jam-build-viewdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jam-build-viewdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jam-build-viewdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/localnerve/jam-build-viewdb/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// ContainerDB describes a database image usable by StartDatabase
type ContainerDB struct {
	DBType string
	Image  string
	Port   string
	Env    map[string]string
	Ready  wait.Strategy
}

const (
	testDatabase = "viewdb_test"
	testUser     = "viewdb"
	testPassword = "viewdb-pass"
)

// ContainerFor returns the container settings for a DB_TYPE
func ContainerFor(dbType, image string) (ContainerDB, error) {
	switch dbType {
	case "mysql", "mariadb":
		return ContainerDB{
			DBType: dbType,
			Image:  image,
			Port:   "3306",
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": testPassword,
				"MYSQL_DATABASE":      testDatabase,
				"MYSQL_USER":          testUser,
				"MYSQL_PASSWORD":      testPassword,
			},
			Ready: wait.ForLog("ready for connections").WithStartupTimeout(90 * time.Second),
		}, nil
	case "postgres":
		return ContainerDB{
			DBType: dbType,
			Image:  image,
			Port:   "5432",
			Env: map[string]string{
				"POSTGRES_DB":       testDatabase,
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
			},
			Ready: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90 * time.Second),
		}, nil
	}
	return ContainerDB{}, fmt.Errorf("no container settings for DB_TYPE %q", dbType)
}

// DatabaseContainer is a running database container and the config that
// reaches it from the host
type DatabaseContainer struct {
	Container testcontainers.Container
	Config    *config.Config
}

// Terminate stops and removes the container
func (dc *DatabaseContainer) Terminate(ctx context.Context) error {
	return dc.Container.Terminate(ctx)
}

// RunDatabase starts a database container for dbType from image
func RunDatabase(ctx context.Context, dbType, image string) (*DatabaseContainer, error) {
	cdb, err := ContainerFor(dbType, image)
	if err != nil {
		return nil, err
	}
	port, err := nat.NewPort("tcp", cdb.Port)
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        cdb.Image,
			ExposedPorts: []string{string(port)},
			Env:          cdb.Env,
			WaitingFor:   wait.ForAll(cdb.Ready, wait.ForListeningPort(port)),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s container: %w", dbType, err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	return &DatabaseContainer{
		Container: container,
		Config: &config.Config{
			DBType:            dbType,
			DBHost:            host,
			DBPort:            mapped.Port(),
			DBDatabase:        testDatabase,
			DBUser:            testUser,
			DBPassword:        testPassword,
			DBConnectionLimit: 5,
			DBLogLevel:        "warn",
		},
	}, nil
}

// StartDatabase starts the database container named by DB_TYPE and DB_IMAGE
// and returns a config pointing at it. The test is skipped in short mode or
// when DB_IMAGE is unset.
func StartDatabase(t *testing.T) *config.Config {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}
	image := os.Getenv("DB_IMAGE")
	if image == "" {
		t.Skip("DB_IMAGE not set")
	}
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "mariadb"
	}

	dc, err := RunDatabase(context.Background(), dbType, image)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := dc.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate %s container: %v", dbType, err)
		}
	})
	return dc.Config
}
