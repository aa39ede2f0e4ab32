// main.go
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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/jam-build-viewdb/data"
	"github.com/localnerve/jam-build-viewdb/internal/database"
	"github.com/localnerve/jam-build-viewdb/internal/services"
	"github.com/localnerve/jam-build-viewdb/internal/testutil"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var seed bool
	flag.BoolVar(&seed, "seed", false, "seed the demo database once the container is up")
	flag.Parse()

	usage := `
Run a viewdb database container with the DB_TYPE and DB_IMAGE from the .env file.

Usage:

testcontainers [-h] [-seed] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -seed -f /path/to/something/.env
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	dbType, image := os.Getenv("DB_TYPE"), os.Getenv("DB_IMAGE")
	if image == "" {
		log.Fatalf("DB_IMAGE is required\n")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	dc, err := testutil.RunDatabase(ctx, dbType, image)
	if err != nil {
		log.Fatalf("Failed to create test container: %v\n", err)
	}
	defer func() {
		if err := dc.Terminate(context.Background()); err != nil {
			log.Printf("Failed to terminate container: %v\n", err)
		}
	}()

	if seed {
		if err := seedDemo(dc); err != nil {
			log.Printf("Seed failed: %v\n", err)
		}
	}

	cfg := dc.Config
	fmt.Printf("DB_TYPE=%s\nDB_HOST=%s\nDB_PORT=%s\nDB_DATABASE=%s\nDB_USER=%s\nDB_PASSWORD=%s\n",
		cfg.DBType, cfg.DBHost, cfg.DBPort, cfg.DBDatabase, cfg.DBUser, cfg.DBPassword)

	<-ctx.Done()
	log.Printf("\nReceived signal, terminating test container...\n")
}

func seedDemo(dc *testutil.DatabaseContainer) error {
	db, err := database.Connect(dc.Config)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	_, _, err = services.SeedDatabase(db, data.DemoSeed)
	return err
}
