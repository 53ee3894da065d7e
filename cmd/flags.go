package cmd

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/Luis23345432/Ingesta-Hotel2/config"
	"github.com/Luis23345432/Ingesta-Hotel2/constants"
	"github.com/spf13/cobra"
)

type cliFlag struct {
	name      string // name of flag
	val       string // default value
	shortHand string // single character name for the flag
	desc      string // description of the flag; the long text
}

type cliFlags map[string]cliFlag

var switches = cliFlags{
	"stage": cliFlag{name: "stage", shortHand: "s",
		desc: "Deployment stage used to derive the source table, file, Glue database and table names\n" +
			"(e.g. \"dev\" reads dev-hotel-users)"},
	"bucket": cliFlag{name: "bucket", shortHand: "b",
		desc: "AWS S3 bucket name that receives the CSV files (set AWS environment variables for access)"},
	"output": cliFlag{name: "output", shortHand: "o",
		desc: "Specify \"yaml\" or \"json\" to print the export definition"},
	"key": cliFlag{name: "key", shortHand: "k",
		desc: "The setting to change. One of: " + strings.Join(config.Keys(), ", ")},
	"value": cliFlag{name: "value", shortHand: "v",
		desc: "The default value to set"},
	"force": cliFlag{name: "force", shortHand: "f",
		desc: "Overwrite existing values"},
}

// addFlag adds a flag to cobra.Command c, based on the type of targetVar (which must be a pointer).
// The name of the flag is looked up in map, cliFlags.
// The flag is marked as required in Cobra based on the value of required.
// Supply a value for desc2 to append to the existing description found in map cliFlags.
func (f *cliFlags) addFlag(c *cobra.Command, targetVar interface{}, name string, defaultValue string, required bool, desc2 string) {
	v := reflect.ValueOf(targetVar)
	if v.Kind() != reflect.Ptr {
		fmt.Println("error adding flag: targetVar must be a pointer")
		os.Exit(1)
	}
	sw := f.getCliFlag(name, defaultValue)
	desc := sw.desc + desc2
	if required {
		desc = "* " + desc
	}
	switch p := targetVar.(type) {
	case *string:
		c.Flags().StringVarP(p, sw.name, sw.shortHand, sw.val, desc)
	case *bool:
		c.Flags().BoolVarP(p, sw.name, sw.shortHand, strings.ToLower(sw.val) == "true", desc)
	case *int64:
		var defaultInt int64
		if sw.val != "" {
			var err error
			defaultInt, err = strconv.ParseInt(sw.val, 10, 64)
			if err != nil {
				fmt.Printf("the value for flag %q must be an integer: %v\n", sw.name, err)
				os.Exit(1)
			}
		}
		c.Flags().Int64VarP(p, sw.name, sw.shortHand, defaultInt, desc)
	default:
		panic("Error: unhandled CLI flag target value type")
	}
	if required {
		_ = c.MarkFlagRequired(sw.name)
	}
}

// getCliFlag fetches the registered flag called name and applies defaultValue to it.
func (f *cliFlags) getCliFlag(name string, defaultValue string) cliFlag {
	s, ok := (*f)[name]
	if !ok {
		panic(fmt.Sprintf("unregistered CLI flag, %q", name))
	}
	s.val = defaultValue
	return s
}

// flagNameToEnvVar will form a sanitised environment variable name using constants.EnvVarPrefix.
func flagNameToEnvVar(name string) string {
	return constants.EnvVarPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
