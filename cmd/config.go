package cmd

import "time"

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	StaleAfter    time.Duration

	// Unit prices in FCFA. Zero values fall back to the standing
	// storefront prices.
	BottlePrice      int
	CartonPrice      int
	DeliveryFee      int
	BottlesPerCarton int
}
