// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (HTTP ports and TLS, logging level and format,
// CORS, request limits); AppConfig is everything specific to SchoolHub.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bootstrap teacher seeded at startup so a fresh deployment has one
	// authorized management account. Blank disables seeding.
	SeedTeacher     string // Username of the bootstrap teacher
	SeedTeacherName string // Display name for the bootstrap teacher
}
