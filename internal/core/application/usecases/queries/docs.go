// Package queries contains read operations of the CQRS architecture.
// Handlers read straight from the database with SQL and return flat
// response structs; they never load aggregates or write.
package queries
