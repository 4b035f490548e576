package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OrderRequestTTL is how long an order may stay REQUESTED before the
	// expiry job cancels it. Zero disables the job.
	OrderRequestTTL time.Duration

	// TransitionMaxAttempts bounds the retries of a status change that lost
	// an optimistic concurrency race.
	TransitionMaxAttempts int

	// CatalogSeedFile optionally names a YAML file of stores, products and
	// customers registered at startup.
	CatalogSeedFile string
}
