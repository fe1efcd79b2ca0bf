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

package factory

import (
	"fmt"

	"github.com/mriling/suffixtab/db"
	"github.com/mriling/suffixtab/db/mysql"
	"github.com/mriling/suffixtab/db/sqlite"
	"github.com/mriling/suffixtab/db/tsv"
)

type NullWriter struct {
}

func (nw *NullWriter) DatabaseExists() bool {
	return false
}

func (nw *NullWriter) Initialize(appendMode bool, tables []db.TableSpec) error {
	return fmt.Errorf("no valid output writer installed")
}

func (nw *NullWriter) PrepareInsert(table string, cols []string) (db.InsertOperation, error) {
	return nil, fmt.Errorf("no valid output writer installed")
}

func (nw *NullWriter) Commit() error {
	return fmt.Errorf("no valid output writer installed")
}

func (nw *NullWriter) Rollback() error {
	return fmt.Errorf("no valid output writer installed")
}

func (nw *NullWriter) Close() {}

// NewDatabaseWriter selects an output backend based on the
// configured type.
func NewDatabaseWriter(conf *db.Conf) (db.Writer, error) {
	switch conf.Type {
	case "tsv", "":
		return &tsv.Writer{Dir: conf.Name}, nil
	case "sqlite":
		return &sqlite.Writer{
			Path:           conf.Name,
			PreconfQueries: conf.PreconfQueries,
		}, nil
	case "mysql":
		return mysql.NewWriter(conf)
	default:
		return &NullWriter{}, fmt.Errorf("unknown output writer type '%s'", conf.Type)
	}
}
