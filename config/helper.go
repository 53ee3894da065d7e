package config

import (
	"fmt"
	"os"
	"path"

	"github.com/Luis23345432/Ingesta-Hotel2/constants"
	"github.com/mitchellh/go-homedir"
)

const (
	MainFileFullName = constants.ConfigFileName
)

// getConfigHomeDir returns the full path to the directory that stores the config file.
func getConfigHomeDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("unable to find home directory: %v", err)
	}
	return path.Join(home, constants.ConfigDir), nil
}

// makeDir will make the given directory if it does not already exist.
// If it exists then return nil.
// An error is returned if there is a problem creating the dir.
func makeDir(dir string) error {
	// Test if config dir exists.
	_, err := os.Stat(dir)
	if os.IsNotExist(err) { // if it doesn't exist...
		// Create the directory.
		if err = os.MkdirAll(dir, 0755); err != nil { // if the dir was NOT created...
			return fmt.Errorf("error creating directory %v", dir)
		}
	} else if err != nil { // else there was an error getting status...
		return err
	}
	return nil
}
