// Command godb-server is a scripted demonstration of the storage engine as
// an embedded library. There is no SQL parser and no wire protocol in this
// engine (statements arrive pre-parsed as structured values); this binary
// exists to exercise the engine end to end the way a host application would.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"toydb/internal/dtype"
	"toydb/internal/engine"
	"toydb/internal/plan"
)

func main() {
	dir, err := os.MkdirTemp("", "godb-demo-*")
	if err != nil {
		log.Fatalf("create demo dir: %v", err)
	}
	defer os.RemoveAll(dir)

	eng := engine.Default()

	movies := dtype.NewTable(dtype.Schema{
		{Name: "movieId", Type: dtype.UInt32},
		{Name: "title", Type: dtype.Text},
		{Name: "genres", Type: dtype.Text},
	}, filepath.Join(dir, "movies.heap"))

	if _, err := eng.Execute(&engine.CreateTable{Table: movies}); err != nil {
		log.Fatalf("create table: %v", err)
	}

	insert := &engine.Insert{
		Into: movies,
		Values: [][]string{
			{"1", "Toy Story (1995)", "Adventure|Animation|Comedy"},
			{"2", "Jumanji (1995)", "Adventure|Children|Fantasy"},
			{"3", "Grumpier Old Men (1995)", "Comedy|Romance"},
		},
	}
	result, err := eng.Execute(insert)
	if err != nil {
		log.Fatalf("insert: %v", err)
	}
	fmt.Printf("inserted %d rows\n", result[0][0].U32)

	query := &engine.Query{
		From:   movies,
		Select: []string{"movieId", "title"},
		Where: &plan.Filter{
			Columns: []string{"genres"},
			Predicate: func(args []dtype.Value) bool {
				return strings.Contains(args[0].Str, "Adventure")
			},
		},
		OrderBy: []plan.SortKey{{Column: "title"}},
	}
	rows, err := eng.Execute(query)
	if err != nil {
		log.Fatalf("query: %v", err)
	}

	for _, row := range rows {
		fmt.Printf("%d | %s\n", row[0].U32, row[1].Str)
	}
}
