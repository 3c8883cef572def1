package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"jobs"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address         string   `envconfig:"JOBS_API_ADDRESS" default:":8080"`
	MetricsAddress  string   `envconfig:"JOBS_API_METRICS_ADDRESS" default:":8081"`
	LogLevel        string   `envconfig:"JOBS_API_LOG_LEVEL" default:"info"`
	CorsOrigins     []string `envconfig:"JOBS_API_CORS_ORIGINS" default:"http://localhost:3000"`
	MigrationFolder string   `envconfig:"JOBS_API_MIGRATIONS_FOLDER" default:""`
	Auth            Auth
}

type Auth struct {
	AuthenticationType string `envconfig:"JOBS_API_AUTH" default:""`
	JwtSecret          string `envconfig:"JOBS_API_JWT_SECRET" default:""`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// NewDefault returns a config populated only with the envconfig defaults.
// Used by tests which override the database settings themselves.
func NewDefault() *Config {
	cfg := new(Config)
	if err := envconfig.Process("jobs_api_test", cfg); err != nil {
		panic(err)
	}
	return cfg
}
