// Package constants provides shared constants for the goal-planner application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "goal-planner.yaml"

	// DefaultEnvFile is loaded into the environment before configuration when present
	DefaultEnvFile = ".env"

	// EnvPrefix prefixes every environment override (GOAL_PLANNER_SERVER_ADDRESS)
	EnvPrefix = "GOAL_PLANNER"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum /calc request body (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown
	DefaultShutdownTimeoutSeconds = 10
)

// Logging defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Console defaults
const (
	// DefaultCurrency is the label printed after amounts in the console
	DefaultCurrency = "Kč"
)

// Validation constants
const (
	// ToleranceForComparison is the tolerance, in whole currency units, used when
	// comparing computed plans with published reference figures
	ToleranceForComparison = 1.0
)
