package cmd

import "time"

// Config carries everything the process reads from its environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	CartMaxAge          time.Duration
	CartCleanupSchedule string
}
