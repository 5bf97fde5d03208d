// Package database owns the SQLite connection and schema migration.
//
// Entity-specific queries live in sub-packages, each exposing a Repository
// built on the shared *gorm.DB:
//
//	db, err := database.NewDatabase(cfg.Database.Path, log)
//	pokemonRepo := pokemon.NewRepository(db.DB)
//	runs := syncruns.NewRepository(db.DB)
package database
