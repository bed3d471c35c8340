package constants

import "time"

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

const (
	DefaultRunAddr         = ":8080"
	DefaultIconBaseURL     = "/static/icons"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 10 * time.Second
	RequestIDHeader        = "X-Request-ID"
)
