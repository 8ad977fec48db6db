// Package database owns the GORM connection to the sqlite catalog store and
// creates the schema idempotently at startup. Entity-specific queries live in
// the per-entity subpackages (users, books, reviews).
package database
