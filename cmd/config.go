package cmd

import "time"

// Config carries everything the composition root needs to wire the system.
// Values come from the environment; main translates raw strings into the
// typed fields here.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	AmqpURL    string

	// AcceptTimeout is how long a PLACED order may wait for restaurant
	// acceptance before the enforcer rejects it.
	AcceptTimeout time.Duration

	// PaymentTimeout is how long a PENDING order may wait for payment
	// confirmation before the enforcer cancels it.
	PaymentTimeout time.Duration

	// CleanupRetention is how long terminal orders keep their tickets and
	// history rows before the cleanup job purges them.
	CleanupRetention time.Duration
}
