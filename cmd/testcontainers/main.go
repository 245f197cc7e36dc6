// Starts the development database (and redis when REDIS_IMAGE is set) and prints the
// environment a local seedledger server needs to use them.
//
//	go run ./cmd/testcontainers -f .env.dev
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/seedledger/internal/testutil"
)

func main() {
	envFilename := flag.String("f", "", "path to a .env file with DB_IMAGE, DB_TYPE and optional REDIS_IMAGE")
	flag.Parse()

	if *envFilename != "" {
		if err := godotenv.Load(*envFilename); err != nil {
			log.Fatalf("Failed to load %s: %v", *envFilename, err)
		}
		log.Printf("Loaded environment from %s", *envFilename)
	}

	containers, err := testutil.CreateAllTestContainers(nil)
	if err != nil {
		log.Fatalf("Failed to start containers: %v", err)
	}

	cfg := containers.Config()
	fmt.Println("# seedledger development environment")
	fmt.Printf("STORE_DRIVER=sql\nDB_TYPE=%s\nDB_HOST=%s\nDB_PORT=%s\nDB_DATABASE=%s\nDB_USER=%s\nDB_PASSWORD=%s\n",
		cfg.DBType, cfg.DBHost, cfg.DBPort, cfg.DBDatabase, cfg.DBUser, cfg.DBPassword)
	if containers.RedisAddr != "" {
		fmt.Printf("# or STORE_DRIVER=redis\nREDIS_ADDR=%s\n", containers.RedisAddr)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	log.Printf("Containers ready, press Ctrl-C to stop")

	sig := <-sigs
	log.Printf("Received %v, terminating containers", sig)
	containers.Terminate(nil)
}
