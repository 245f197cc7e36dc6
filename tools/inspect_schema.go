//go:build ignore

// Migrates the key/value table into an in-memory sqlite, prints its DDL and
// shows how a record set blob lands in it.
//
//	go run tools/inspect_schema.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/seedledger/internal/models"
	"github.com/localnerve/seedledger/internal/storage"
	"github.com/localnerve/seedledger/internal/storage/sqlstore"
	"gorm.io/gorm"
)

func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := sqlstore.Migrate(db); err != nil {
		log.Fatal(err)
	}

	var ddl string
	db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", models.StorageEntry{}.TableName()).Scan(&ddl)
	fmt.Println(ddl)

	blob, err := json.Marshal(models.NewRecordSet())
	if err != nil {
		log.Fatal(err)
	}
	store := sqlstore.New(db)
	ctx := context.Background()
	if err := store.Put(ctx, storage.DataKey("demo"), blob); err != nil {
		log.Fatal(err)
	}

	var rows []map[string]interface{}
	db.Raw("SELECT * FROM " + models.StorageEntry{}.TableName()).Scan(&rows)
	for _, row := range rows {
		fmt.Printf("%v\n", row)
	}
}
