package config

import (
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const envPrefix = "LEGALAID"

// EnvVars holds client configuration sourced from the environment.
// All variables are prefixed with LEGALAID_, e.g. LEGALAID_API_ADDRESS.
type EnvVars struct {
	AppName        string        `envconfig:"APP_NAME" default:"Legal Aid"`
	APIAddress     string        `envconfig:"API_ADDRESS" default:"http://localhost:8000/api"`
	DataFolder     string        `envconfig:"DATA_FOLDER"`
	Environment    string        `envconfig:"ENV" default:"DEV"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	AllowInsecure  bool          `envconfig:"ALLOW_INSECURE" default:"false"`
}

var _ EnvConfig = EnvVars{}
var _ HTTPConfig = EnvVars{}

// NewEnvVars reads configuration from the environment. When no data
// folder is configured, state lives under ~/.legalaid.
func NewEnvVars() (EnvVars, error) {
	var e EnvVars
	if err := envconfig.Process(envPrefix, &e); err != nil {
		return EnvVars{}, errors.Wrap(err, "error processing environment config")
	}
	if e.DataFolder == "" {
		home, err := homedir.Dir()
		if err != nil {
			return EnvVars{}, errors.Wrap(err, "error locating user's home directory")
		}
		e.DataFolder = filepath.Join(home, ".legalaid")
	}
	return e, nil
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetAPIAddress() string {
	return e.APIAddress
}

func (e EnvVars) GetDataFolder() string {
	return e.DataFolder
}

func (e EnvVars) GetEnv() string {
	return e.Environment
}

func (e EnvVars) GetRequestTimeout() time.Duration {
	return e.RequestTimeout
}

func (e EnvVars) GetAllowInsecure() bool {
	return e.AllowInsecure
}
