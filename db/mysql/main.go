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

	"github.com/rs/zerolog/log"

	"github.com/mriling/suffixtab/db"

	"github.com/go-sql-driver/mysql"
)

// Writer stores statistic tables in a MySQL database.
type Writer struct {
	database *sql.DB
	tx       *sql.Tx
	dbName   string
}

// NewWriter opens a connection based on the backend configuration.
func NewWriter(conf *db.Conf) (*Writer, error) {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = conf.Host
	mconf.User = conf.User
	mconf.Passwd = conf.Password
	mconf.DBName = conf.Name
	mconf.ParseTime = true
	database, err := sql.Open("mysql", mconf.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}
	return &Writer{database: database, dbName: conf.Name}, nil
}

// DatabaseExists tests for the presence of any table within the
// configured database. It is usable before Initialize, which is when
// the append pre-check runs.
func (w *Writer) DatabaseExists() bool {
	row := w.database.QueryRow(
		`SELECT COUNT(*) > 0 FROM information_schema.TABLES WHERE TABLE_SCHEMA = ?`,
		w.dbName,
	)
	var ans bool
	err := row.Scan(&ans)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to test data storage existence")
		return false
	}
	return ans
}

func (w *Writer) Initialize(appendMode bool, tables []db.TableSpec) error {
	var err error
	if !appendMode {
		if w.DatabaseExists() {
			log.
				Warn().
				Str("database", w.dbName).
				Msg("The statistic tables already exist. Existing data will be deleted.")
			if err := dropExisting(w.database, tables); err != nil {
				return err
			}
		}
		if err := createSchema(w.database, tables); err != nil {
			return err
		}
	}
	w.tx, err = w.database.Begin()
	return err
}

func (w *Writer) PrepareInsert(table string, cols []string) (db.InsertOperation, error) {
	if w.tx == nil {
		return nil, fmt.Errorf("cannot prepare insert into %s - no transaction active", table)
	}
	stmt, err := prepareInsert(w.tx, table, cols)
	if err != nil {
		return nil, err
	}
	return &db.Insert{Stmt: stmt}, nil
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Rollback()
}

func (w *Writer) Close() {
	err := w.database.Close()
	if err != nil {
		log.Warn().Err(err).Msg("Error closing database")
	}
}
