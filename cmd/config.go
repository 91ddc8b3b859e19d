package cmd

type Config struct {
	HTTPPort string

	// StorageBackend selects the EntityStore implementation:
	// memory, postgres, or redis.
	StorageBackend string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr string

	// Six-field cron expressions for the repair sweeps.
	ReconcileSchedule string
	ScrubSchedule     string
}
