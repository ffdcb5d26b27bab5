/*
Copyright © 2026 the geofeat authors.
This file is part of geofeat.

geofeat is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

geofeat is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with geofeat.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package postgis starts a throwaway PostGIS database for tests.
package postgis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Image is the PostGIS container image used by SetupTestDB.
const Image = "postgis/postgis:16-3.4-alpine"

// SetupTestDB starts a PostGIS container, waits until it accepts
// connections with the postgis extension installed, and returns a URL
// to connect to it. The container is terminated when the test ends.
// The test is skipped in -short mode or when no container runtime is
// reachable.
func SetupTestDB(ctx context.Context, t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("postgis: skipping container test in short mode")
	}
	const (
		dbname = "geofeat"
		dbuser = "postgres"
		dbport = "5432/tcp"
	)

	req := testcontainers.ContainerRequest{
		Image:        Image,
		ExposedPorts: []string{dbport},
		Env: map[string]string{
			"POSTGRES_DB":               dbname,
			"POSTGRES_USER":             dbuser,
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		// The server restarts once after initialization.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(2 * time.Minute),
	}
	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("postgis: container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := postgresC.Terminate(context.Background()); err != nil {
			t.Log(err)
		}
	})

	host, err := postgresC.Host(ctx)
	if err != nil {
		t.Fatal(err)
	}
	p, err := postgresC.MappedPort(ctx, dbport)
	if err != nil {
		t.Fatal(err)
	}
	url := fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=disable", dbuser, host, p.Port(), dbname)

	var conn *pgx.Conn
	err = backoff.Retry(func() error {
		conn, err = pgx.Connect(ctx, url)
		return err
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 10))
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close(ctx)

	if _, err = conn.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS postgis"); err != nil {
		t.Fatal(err)
	}
	return url
}
