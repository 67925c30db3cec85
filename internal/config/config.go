package config

import "time"

type Config interface {
	EnvConfig
	HTTPConfig
}

type EnvConfig interface {
	GetAppName() string
	GetAPIAddress() string
	GetDataFolder() string
	GetEnv() string
}

type HTTPConfig interface {
	GetRequestTimeout() time.Duration
	GetAllowInsecure() bool
}

type mainConfig struct {
	EnvVars
}

func New() (Config, error) {
	env, err := NewEnvVars()
	if err != nil {
		return nil, err
	}
	return mainConfig{EnvVars: env}, nil
}
