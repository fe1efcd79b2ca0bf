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

// Package db defines the output backends the statistic tables are
// written to - flat TSV files, sqlite3 or MySQL.
package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Conf configures the output backend of an analysis run.
type Conf struct {
	// Type is one of "tsv", "sqlite", "mysql".
	Type string `json:"type"`

	// Name is the output directory (tsv), the database file (sqlite)
	// or the database name (mysql).
	Name string `json:"name"`

	Host     string `json:"host,omitempty"`
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`

	// PreconfQueries are statements applied right after opening
	// the database (sqlite PRAGMAs etc.).
	PreconfQueries []string `json:"preconfSettings,omitempty"`
}

// TableSpec describes one output table of a statistic.
type TableSpec struct {
	Name    string
	Columns []string
}

// Writer is a target the probability and count tables are
// written into.
type Writer interface {
	DatabaseExists() bool
	Initialize(appendMode bool, tables []TableSpec) error
	PrepareInsert(table string, cols []string) (InsertOperation, error)
	Commit() error
	Rollback() error
	Close()
}

type InsertOperation interface {
	Exec(values ...any) error
}

// Insert wraps a prepared SQL statement as an InsertOperation.
type Insert struct {
	Stmt *sql.Stmt
}

func (i *Insert) Exec(values ...any) error {
	_, err := i.Stmt.Exec(values...)
	return err
}

// ColumnDef returns the SQL definition of a known report column.
// Counts are integers, probabilities are reals, the rest is text.
func ColumnDef(name string) string {
	switch name {
	case "count", "joint", "marginal":
		return name + " INTEGER NOT NULL"
	case "prob":
		return name + " REAL NOT NULL"
	default:
		return name + " TEXT"
	}
}

// GenerateDDL builds a CREATE TABLE statement for a table spec.
func GenerateDDL(table TableSpec) string {
	defs := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		defs[i] = ColumnDef(c)
	}
	return fmt.Sprintf(
		"CREATE TABLE %s (%s)", table.Name, strings.Join(defs, ", "))
}
