package main

import (
	"cheeserater/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Regenerates internal/infra/persistence/postgres/query, the typed DAO the
// postgres document store runs on.
func main() {
	models := []any{
		model.DocumentModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
