package models

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Logger      LoggerConfig
	Redis       RedisConfig
	NATS        NATSConfig
	Pricing     PricingConfig
	Marketplace MarketplaceConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// RedisConfig contains the connection settings for the ride/wallet mirror
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains event publishing configuration
type NATSConfig struct {
	URL string
}

// PricingConfig drives the standard per-seat price estimator
type PricingConfig struct {
	BaseFare  float64 // flat component of a seat price
	RatePerKm float64
	Currency  string
}

// MarketplaceConfig contains the marketplace business constants
type MarketplaceConfig struct {
	CommissionRate      float64 // platform cut of gross ride revenue, 0..1
	ReminderLeadMinutes int     // departure reminder offset
	WithdrawalDelayDays int     // monthly withdrawal cool-down
	MaxSeats            int
	RevenueHistoryLimit int
	PointsPerPassenger  int // loyalty points awarded per settled passenger
}
