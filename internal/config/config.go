package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"prochide/internal/proctable"
	"prochide/internal/props"
	"prochide/internal/store"
	"prochide/internal/sysinfo"
	"prochide/internal/uidmap"
)

const (
	defaultStorePath   = "/data/adb/prochide/hide.db"
	defaultWorkRoot    = "/sbin"
	envStoreDriver     = "HIDE_STORE_DRIVER"
	envStorePath       = "HIDE_STORE"
	envAppDataRoot     = "HIDE_APP_DATA_ROOT"
	envWorkRoot        = "HIDE_WORK_ROOT"
	envSDKInt          = "HIDE_SDK_INT"
	envMonitorInterval = "HIDE_MONITOR_INTERVAL"
	envDebug           = "HIDE_DEBUG"
)

// Config aggregates the daemon's paths and tunables.
type Config struct {
	StoreDriver   string
	StorePath     string
	AppDataRoot   string
	ProcRoot      string
	WorkRoot      string
	BuildProp     string
	NamespacePath string
	ResetpropPath string
	// SDKInt overrides the API level read from BuildProp when > 0.
	SDKInt int
	// MonitorInterval enables the polling monitor when > 0.
	MonitorInterval time.Duration
	Debug           bool
}

// Default returns the on-device defaults.
func Default() Config {
	return Config{
		StoreDriver:   store.DriverSQLite,
		StorePath:     defaultStorePath,
		AppDataRoot:   uidmap.DefaultRoot,
		ProcRoot:      proctable.DefaultRoot,
		WorkRoot:      defaultWorkRoot,
		BuildProp:     sysinfo.DefaultBuildProp,
		NamespacePath: sysinfo.DefaultInitMountNS,
		ResetpropPath: props.DefaultResetprop,
	}
}

// Load builds a Config from an optional JSON file path plus environment overrides.
func Load(path string, log *zap.Logger) (Config, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg, log)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config, log *zap.Logger) {
	if v := os.Getenv(envStoreDriver); v != "" {
		cfg.StoreDriver = v
	}
	if v := os.Getenv(envStorePath); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv(envAppDataRoot); v != "" {
		cfg.AppDataRoot = v
	}
	if v := os.Getenv(envWorkRoot); v != "" {
		cfg.WorkRoot = v
	}
	if v := os.Getenv(envSDKInt); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SDKInt = n
		} else {
			log.Warn("ignoring invalid env value", zap.String("env", envSDKInt), zap.String("value", v))
		}
	}
	if v := os.Getenv(envMonitorInterval); v != "" {
		if dur, err := time.ParseDuration(v); err == nil && dur >= 0 {
			cfg.MonitorInterval = dur
		} else {
			log.Warn("ignoring invalid env value", zap.String("env", envMonitorInterval), zap.String("value", v))
		}
	}
	if v := os.Getenv(envDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		} else {
			log.Warn("ignoring invalid env value", zap.String("env", envDebug), zap.String("value", v))
		}
	}
}

type fileConfig struct {
	StoreDriver     string `json:"store_driver"`
	StorePath       string `json:"store_path"`
	AppDataRoot     string `json:"app_data_root"`
	ProcRoot        string `json:"proc_root"`
	WorkRoot        string `json:"work_root"`
	BuildProp       string `json:"build_prop"`
	NamespacePath   string `json:"namespace_path"`
	ResetpropPath   string `json:"resetprop_path"`
	SDKInt          int    `json:"sdk_int"`
	MonitorInterval string `json:"monitor_interval"`
	Debug           bool   `json:"debug"`
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	setString(&cfg.StoreDriver, raw.StoreDriver)
	setString(&cfg.StorePath, raw.StorePath)
	setString(&cfg.AppDataRoot, raw.AppDataRoot)
	setString(&cfg.ProcRoot, raw.ProcRoot)
	setString(&cfg.WorkRoot, raw.WorkRoot)
	setString(&cfg.BuildProp, raw.BuildProp)
	setString(&cfg.NamespacePath, raw.NamespacePath)
	setString(&cfg.ResetpropPath, raw.ResetpropPath)
	if raw.SDKInt < 0 {
		return errors.New("sdk_int must be >= 0")
	}
	if raw.SDKInt > 0 {
		cfg.SDKInt = raw.SDKInt
	}
	if raw.MonitorInterval != "" {
		dur, err := time.ParseDuration(raw.MonitorInterval)
		if err != nil {
			return fmt.Errorf("parse monitor_interval: %w", err)
		}
		if dur < 0 {
			return errors.New("monitor_interval must be >= 0")
		}
		cfg.MonitorInterval = dur
	}
	cfg.Debug = cfg.Debug || raw.Debug
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
