// Package config loads and validates riftstats configuration.
//
// # Configuration Loading
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables. A .env file in the working directory is read into
// the environment before anything else.
//
//	cfg, err := config.Load("riftstats.yaml")
//	if err != nil { ... }
//	if err := cfg.Validate(); err != nil { ... }
//
// # Environment Variables
//
//	DB                  - database name (default: riftstats)
//	DBUSER              - database user (default: postgres)
//	DBPASSWD            - database password
//	DBHOST              - database host (default: localhost)
//	DBPORT              - database port (default: 5432)
//	DB_DRIVER           - pgx, postgres, sqlite or libsql (default: pgx)
//	DB_PATH             - sqlite file or libsql URL (default: riftstats.db)
//	DB_SSLMODE          - Postgres sslmode (default: disable)
//	DB_AUTH_TOKEN       - libsql auth token
//	RIOT_API_KEY        - match API key
//	RIOT_PLATFORM_URL   - platform host (default: https://euw1.api.riotgames.com)
//	ARCHIVE_PATH        - raw payload archive directory, empty disables it
//	ARCHIVE_MAX_MATCHES - matches per archive file (default: 1000)
//	ARCHIVE_MAX_AGE     - archive file rotation age (default: 1h)
//	LOG_LEVEL           - debug, info, warn or error (default: info)
package config
