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

package mysql

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mriling/suffixtab/db"
)

func joinArgs(args []string) string {
	return strings.Join(args, ", ")
}

// mysqlColumnDef adjusts the generic column definition for MySQL
// (descriptor values can be long feature sequences).
func mysqlColumnDef(name string) string {
	switch name {
	case "count", "joint", "marginal":
		return name + " INT NOT NULL"
	case "prob":
		return name + " DOUBLE NOT NULL"
	default:
		return name + " VARCHAR(512)"
	}
}

func prepareInsert(tx *sql.Tx, table string, cols []string) (*sql.Stmt, error) {
	valReplac := make([]string, len(cols))
	for i := range cols {
		valReplac[i] = "?"
	}
	stmt, err := tx.Prepare(
		fmt.Sprintf(
			"INSERT INTO `%s` (%s) VALUES (%s)",
			table, joinArgs(cols), joinArgs(valReplac)))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare INSERT: %w", err)
	}
	return stmt, nil
}

func dropExisting(database *sql.DB, tables []db.TableSpec) error {
	log.Info().Msg("Pre-deleting possible existing statistic tables")
	for _, t := range tables {
		_, err := database.Exec(fmt.Sprintf("DROP TABLE IF EXISTS `%s`", t.Name))
		if err != nil {
			return fmt.Errorf("failed to drop table %s: %w", t.Name, err)
		}
	}
	return nil
}

func createSchema(database *sql.DB, tables []db.TableSpec) error {
	for _, t := range tables {
		defs := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			defs[i] = mysqlColumnDef(c)
		}
		_, err := database.Exec(fmt.Sprintf(
			"CREATE TABLE `%s` (%s)", t.Name, joinArgs(defs)))
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.Name, err)
		}
		log.Info().Str("table", t.Name).Msg("Created table")
	}
	return nil
}
