// containers.go
//
// Local multi-tenant record store for seed distribution, logistics and farmer payments
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of seedledger.
// seedledger is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// seedledger is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with seedledger.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package testutil holds helpers shared by handler and integration tests, and the
// container setup used by cmd/testcontainers.
// Container helpers expect their images and credentials in the environment, usually from a .env file.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/localnerve/seedledger/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestContainers tracks what CreateAllTestContainers started
type TestContainers struct {
	Network        *testcontainers.DockerNetwork
	DBContainer    testcontainers.Container
	RedisContainer testcontainers.Container

	// Connection settings as seen from the host
	DBHost    string
	DBPort    string
	RedisAddr string
}

// Terminate stops every container and removes the network
func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.RedisContainer != nil {
		if err := tc.RedisContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Redis: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Database: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// Config returns a sql store configuration pointing at the started database
func (tc *TestContainers) Config() *config.Config {
	return &config.Config{
		StoreDriver:       "sql",
		DBType:            dbType(),
		DBHost:            tc.DBHost,
		DBPort:            tc.DBPort,
		DBDatabase:        os.Getenv("DB_DATABASE"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBConnectionLimit: 5,
		RedisAddr:         tc.RedisAddr,
		RedisPrefix:       UniquePrefix(),
		PasswordScheme:    "demo",
		ActivityLimit:     5,
	}
}

// UniquePrefix returns a key prefix that keeps concurrent test runs apart
func UniquePrefix() string {
	return "test-" + uuid.New().String() + ":"
}

// CreateAllTestContainers starts the database named by DB_IMAGE and, when REDIS_IMAGE is set, redis
func CreateAllTestContainers(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	testContainers := &TestContainers{}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	testContainers.Network = nw

	if err := startDatabase(ctx, t, testContainers); err != nil {
		testContainers.Terminate(t)
		return nil, err
	}

	if os.Getenv("REDIS_IMAGE") != "" {
		if err := startRedis(ctx, t, testContainers); err != nil {
			testContainers.Terminate(t)
			return nil, err
		}
	}

	logMessage(t, "Test containers started successfully")
	return testContainers, nil
}

// StartRedisContainer starts only redis, for tests of the redis store
func StartRedisContainer(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	testContainers := &TestContainers{}
	if err := startRedis(ctx, t, testContainers); err != nil {
		testContainers.Terminate(t)
		return nil, err
	}
	return testContainers, nil
}

func startDatabase(ctx context.Context, t *testing.T, tc *TestContainers) error {
	image := os.Getenv("DB_IMAGE")
	if image == "" {
		return fmt.Errorf("DB_IMAGE is not set")
	}

	tcpDbPort, err := nat.NewPort("tcp", containerDBPort())
	if err != nil {
		return fmt.Errorf("failed to create DB port: %w", err)
	}

	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{string(tcpDbPort)},
		Env:          getDBInitEnvMap(dbType()),
		WaitingFor:   wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
	}
	if tc.Network != nil {
		req.Networks = []string{tc.Network.Name}
		req.NetworkAliases = map[string][]string{tc.Network.Name: {"db"}}
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return fmt.Errorf("failed to start database: %w", err)
	}
	tc.DBContainer = dbContainer

	host, err := dbContainer.Host(ctx)
	if err != nil {
		return fmt.Errorf("failed to get database host: %w", err)
	}
	port, err := dbContainer.MappedPort(ctx, tcpDbPort)
	if err != nil {
		return fmt.Errorf("failed to get database port: %w", err)
	}
	tc.DBHost = host
	tc.DBPort = port.Port()

	if kind := dbType(); kind == "mysql" || kind == "mariadb" {
		if err := waitForMySQL(tc.DBHost, tc.DBPort); err != nil {
			return err
		}
	}

	logMessage(t, "DB_HOST=%s DB_PORT=%s", tc.DBHost, tc.DBPort)
	return nil
}

func startRedis(ctx context.Context, t *testing.T, tc *TestContainers) error {
	image := os.Getenv("REDIS_IMAGE")
	if image == "" {
		image = "redis:7-alpine"
	}
	tcpRedisPort, err := nat.NewPort("tcp", "6379")
	if err != nil {
		return fmt.Errorf("failed to create Redis port: %w", err)
	}

	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{string(tcpRedisPort)},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	if tc.Network != nil {
		req.Networks = []string{tc.Network.Name}
		req.NetworkAliases = map[string][]string{tc.Network.Name: {"redis"}}
	}

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return fmt.Errorf("failed to start redis: %w", err)
	}
	tc.RedisContainer = redisContainer

	host, _ := redisContainer.Host(ctx)
	port, err := redisContainer.MappedPort(ctx, tcpRedisPort)
	if err != nil {
		return fmt.Errorf("failed to get redis port: %w", err)
	}
	tc.RedisAddr = fmt.Sprintf("%s:%s", host, port.Port())

	logMessage(t, "REDIS_ADDR=%s", tc.RedisAddr)
	return nil
}

func dbType() string {
	if v := strings.ToLower(os.Getenv("DB_TYPE")); v != "" {
		return v
	}
	return "postgres"
}

func containerDBPort() string {
	if v := os.Getenv("DB_PORT"); v != "" {
		return v
	}
	switch dbType() {
	case "mysql", "mariadb":
		return "3306"
	}
	return "5432"
}

func getDBInitEnvMap(dbType string) map[string]string {
	switch dbType {
	case "postgres", "postgresql":
		return map[string]string{
			"POSTGRES_PASSWORD": os.Getenv("DB_PASSWORD"),
			"POSTGRES_USER":     os.Getenv("DB_USER"),
			"POSTGRES_DB":       os.Getenv("DB_DATABASE"),
		}
	case "mariadb", "mysql":
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": os.Getenv("DB_ROOT_PASSWORD"),
			"MYSQL_DATABASE":      os.Getenv("DB_DATABASE"),
			"MYSQL_USER":          os.Getenv("DB_USER"),
			"MYSQL_PASSWORD":      os.Getenv("DB_PASSWORD"),
		}
	}
	return nil
}

// waitForMySQL polls until the server accepts the application user
func waitForMySQL(host, port string) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), host, port, os.Getenv("DB_DATABASE"))
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open mysql for setup: %w", err)
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("mysql not ready after 30 seconds: %w", err)
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
