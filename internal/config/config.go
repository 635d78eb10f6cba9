package config // package config loads application configuration from environment variables

import (
	"log" // log reports configuration errors and halts execution
	"os"  // os provides access to environment variables

	"golang.org/x/crypto/bcrypt" // bcrypt supplies the default hashing cost
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Almost everything has a sensible default so the
// application can run against a local MySQL out of the box; only the session
// secret is mandatory because a guessable secret would let clients forge
// session cookies.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	SessionSecret string // secret used to sign session cookies
	SessionTTLMin int    // session cookie time-to-live in minutes
	BcryptCost    int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config.  SESSION_SECRET is enforced by must(); a missing value causes the
// program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("PORT", "5000"),
		DBUser:        getenv("DB_USER", "root"),
		DBPass:        os.Getenv("DB_PASS"), // empty allowed
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "3306"),
		DBName:        getenv("DB_NAME", "movie_magic"),
		SessionSecret: must("SESSION_SECRET"),
		SessionTTLMin: envInt("SESSION_TTL_MIN", 60),
		BcryptCost:    envInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
