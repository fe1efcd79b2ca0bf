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

import (
	"database/sql"
	"testing"

	"github.com/mriling/suffixtab/db"
	"github.com/stretchr/testify/assert"
)

func createDatabase() *sql.DB {
	if db, err := sql.Open("sqlite3", ":memory:"); err == nil {
		return db
	} else {
		panic(err)
	}
}

func createTables() []db.TableSpec {
	return []db.TableSpec{
		{Name: "final_vowel", Columns: []string{"descriptor", "count"}},
		{Name: "final_vowel_suffix", Columns: []string{"descriptor", "suffix", "count"}},
		{Name: "final_vowel_prob", Columns: []string{"descriptor", "suffix", "joint", "prob", "marginal"}},
	}
}

func TestCreateSchema(t *testing.T) {
	database := createDatabase()
	err := createSchema(database, createTables())
	assert.NoError(t, err)

	// cid name type notnull dflt_value pk
	res, err := database.Query("PRAGMA table_info(final_vowel_prob)")
	if err != nil {
		panic(err)
	}
	defer res.Close()
	cols := make(map[string]string)
	for res.Next() {
		var cid string
		var name string
		var tp string
		var notnull int
		var dfltValue interface{}
		var pk int
		err := res.Scan(&cid, &name, &tp, &notnull, &dfltValue, &pk)
		if err != nil {
			panic(err)
		}
		cols[name] = tp
	}
	assert.Equal(t, "TEXT", cols["descriptor"])
	assert.Equal(t, "TEXT", cols["suffix"])
	assert.Equal(t, "INTEGER", cols["joint"])
	assert.Equal(t, "REAL", cols["prob"])
	assert.Equal(t, "INTEGER", cols["marginal"])
}

func TestDropExistingIsIdempotent(t *testing.T) {
	database := createDatabase()
	tables := createTables()
	assert.NoError(t, createSchema(database, tables))
	assert.NoError(t, dropExisting(database, tables))
	assert.NoError(t, dropExisting(database, tables))
}

func TestPrepareInsertAndExec(t *testing.T) {
	database := createDatabase()
	tables := createTables()
	assert.NoError(t, createSchema(database, tables))
	tx, err := database.Begin()
	assert.NoError(t, err)
	stmt, err := prepareInsert(tx, "final_vowel", []string{"descriptor", "count"})
	assert.NoError(t, err)
	ins := &db.Insert{Stmt: stmt}
	assert.NoError(t, ins.Exec("a", "412"))
	assert.NoError(t, tx.Commit())

	row := database.QueryRow("SELECT count FROM final_vowel WHERE descriptor = 'a'")
	var cnt int
	assert.NoError(t, row.Scan(&cnt))
	assert.Equal(t, 412, cnt)
}
