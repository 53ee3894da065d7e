package actions

import (
	"errors"
	"fmt"
	"io"

	"github.com/Luis23345432/Ingesta-Hotel2/config"
	"github.com/Luis23345432/Ingesta-Hotel2/helper"
)

type DefaultAddConfig struct {
	ConfigFile *config.File `errorTxt:"config-file" mandatory:"yes"`
	Key        string       `errorTxt:"key" mandatory:"yes"`
	Value      string       `errorTxt:"value" mandatory:"yes"`
	Force      bool
}

type DefaultRemoveConfig struct {
	ConfigFile *config.File `errorTxt:"config-file" mandatory:"yes"`
	Key        string       `errorTxt:"key" mandatory:"yes"`
}

type DefaultListConfig struct {
	ConfigFile *config.File `errorTxt:"config-file" mandatory:"yes"`
}

// RunDefaultAdd adds key+value to the given config file.
// If cfg.Force is not set then it return an error when the key exists.
// The config file is created if it does not exist.
func RunDefaultAdd(cfg *DefaultAddConfig, w io.Writer) error {
	if err := helper.ValidateStructIsPopulated(cfg); err != nil { // if the basics were not supplied...
		return err
	}
	if !config.IsKnownKey(cfg.Key) {
		return fmt.Errorf("unknown key %q, expected one of %v", cfg.Key, config.Keys())
	}
	var val string
	if err := cfg.ConfigFile.Get(cfg.Key, &val); err == nil && !cfg.Force { // if key exists and we're not allowed to overwrite...
		return fmt.Errorf("key %q exists, use force to update the value or remove it first", cfg.Key)
	} else if err != nil && !errors.As(err, &config.KeyNotFoundError{}) { // if there was an unexpected error...
		return err
	}
	if err := cfg.ConfigFile.Set(cfg.Key, cfg.Value); err != nil {
		return fmt.Errorf("error writing config file after adding: %v", err)
	}
	fmt.Fprintf(w, "Key %q added to %q\n", cfg.Key, cfg.ConfigFile.FullPath)
	return nil
}

// RunDefaultRemove removes a key from the given config file.
func RunDefaultRemove(cfg *DefaultRemoveConfig, w io.Writer) error {
	if err := helper.ValidateStructIsPopulated(cfg); err != nil { // if the basics were not supplied...
		return err
	}
	if err := cfg.ConfigFile.Delete(cfg.Key); err != nil {
		return fmt.Errorf("unable to delete key %q from config: %v", cfg.Key, err)
	}
	fmt.Fprintf(w, "Key %q removed\n", cfg.Key)
	return nil
}

// RunDefaultList prints every setting with its effective value and where the value comes from.
func RunDefaultList(cfg *DefaultListConfig, w io.Writer) error {
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	for _, k := range config.Keys() { // for each key...
		v, src, err := config.Lookup(cfg.ConfigFile, k)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v=%v (%v)\n", k, v, src)
	}
	return nil
}
