package constants

import "time"

const (
	PlayerRefreshTTL = 5 * time.Minute
	GamesRefreshTTL  = 5 * time.Minute
	StatsCacheTTL    = 5 * time.Minute
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)

// ladder rules
const (
	DaysInactive              = 60
	NearlyInactiveWarningDays = 14
	OverratedWindow           = 10
	TenNilWinningScore        = 10
)
