package config

import (
	"errors"
	"fmt"
	"strconv"

	c "github.com/Luis23345432/Ingesta-Hotel2/constants"
	"github.com/Luis23345432/Ingesta-Hotel2/helper"
	"github.com/mitchellh/mapstructure"
)

// Settings are the values that are not given as command line flags.
type Settings struct {
	Region        string `mapstructure:"region" json:"region"`
	LogLevel      string `mapstructure:"log-level" json:"logLevel"`
	LogFile       string `mapstructure:"log-file" json:"logFile,omitempty"`
	OutputDir     string `mapstructure:"output-dir" json:"outputDir,omitempty"`
	PageSize      int64  `mapstructure:"page-size" json:"pageSize"`
	NewlinePolicy string `mapstructure:"newline-policy" json:"newlinePolicy"`
}

// keys in display order, with their defaults.
var keys = []struct {
	name string
	def  string
}{
	{c.ConfigKeyRegion, c.DefaultRegion},
	{c.ConfigKeyLogLevel, c.DefaultLogLevel},
	{c.ConfigKeyLogFile, ""},
	{c.ConfigKeyOutputDir, ""},
	{c.ConfigKeyPageSize, strconv.Itoa(c.DefaultPageSize)},
	{c.ConfigKeyNewlinePolicy, c.DefaultNewlinePolicy},
}

const (
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// Keys returns the names of all settings.
func Keys() []string {
	retval := make([]string, 0, len(keys))
	for _, k := range keys {
		retval = append(retval, k.name)
	}
	return retval
}

func IsKnownKey(key string) bool {
	for _, k := range keys {
		if k.name == key {
			return true
		}
	}
	return false
}

// Lookup returns the value of key from the environment variable INGESTA_<KEY>, else from the
// config file f, else the built-in default. f may be nil to skip the file.
// source says where the value came from.
func Lookup(f *File, key string) (value string, source string, err error) {
	if !IsKnownKey(key) {
		return "", "", fmt.Errorf("unknown config key %q", key)
	}
	if v, _ := helper.GetEnvVar(helper.EnvVarName(key), false); v != "" {
		return v, SourceEnv, nil
	}
	if f != nil {
		err := f.Get(key, &value)
		if err == nil {
			return value, SourceFile, nil
		}
		if !errors.As(err, &KeyNotFoundError{}) {
			return "", "", err
		}
	}
	for _, k := range keys {
		if k.name == key {
			return k.def, SourceDefault, nil
		}
	}
	return "", SourceDefault, nil
}

// Resolve looks up every setting. See Lookup.
func Resolve(f *File) (Settings, error) {
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		v, _, err := Lookup(f, k.name)
		if err != nil {
			return Settings{}, err
		}
		m[k.name] = v
	}
	s := Settings{}
	if err := mapstructure.WeakDecode(m, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %v", err)
	}
	if s.PageSize < 0 {
		return Settings{}, fmt.Errorf("%v must not be negative, got %v", c.ConfigKeyPageSize, s.PageSize)
	}
	return s, nil
}
