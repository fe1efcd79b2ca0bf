// Copyright 2023 The suffixtab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sqlite

/*
This file contains the database operations required to create
the statistic tables (one counts table, one pair-counts table and
one probability table per configured descriptor rule).
*/

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mriling/suffixtab/db"

	_ "github.com/mattn/go-sqlite3" // load the driver
)

// openDatabase opens a sqlite3 database specified by
// its filesystem path.
func openDatabase(dbPath string) (*sql.DB, error) {
	if db, err := sql.Open("sqlite3", dbPath); err == nil {
		return db, nil
	} else {
		return nil, fmt.Errorf("failed to open statistics db: %s", err)
	}
}

func joinArgs(args []string) string {
	return strings.Join(args, ", ")
}

// prepareInsert creates a prepared statement for an INSERT
// operation.
func prepareInsert(database *sql.Tx, table string, cols []string) (*sql.Stmt, error) {
	valReplac := make([]string, len(cols))
	for i := range cols {
		valReplac[i] = "?"
	}
	ans, err := database.Prepare(
		fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, joinArgs(cols), joinArgs(valReplac)))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare INSERT: %s", err)
	}
	return ans, nil
}

// dropExisting drops the configured statistic tables if present.
func dropExisting(database *sql.DB, tables []db.TableSpec) error {
	log.Info().Msg("Pre-deleting possible existing statistic tables")
	for _, t := range tables {
		_, err := database.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", t.Name))
		if err != nil {
			return fmt.Errorf("failed to drop table %s: %s", t.Name, err)
		}
	}
	return nil
}

// createSchema creates all the statistic tables.
func createSchema(database *sql.DB, tables []db.TableSpec) error {
	for _, t := range tables {
		_, err := database.Exec(db.GenerateDDL(t))
		if err != nil {
			return fmt.Errorf("failed to create table %s: %s", t.Name, err)
		}
		log.Info().Str("table", t.Name).Msg("Created table")
	}
	return nil
}
