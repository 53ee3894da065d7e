package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Luis23345432/Ingesta-Hotel2/actions"
	"github.com/Luis23345432/Ingesta-Hotel2/config"
	c "github.com/Luis23345432/Ingesta-Hotel2/constants"
	"github.com/Luis23345432/Ingesta-Hotel2/entity"
	"github.com/Luis23345432/Ingesta-Hotel2/helper"
	"github.com/Luis23345432/Ingesta-Hotel2/logger"
)

// init will be called first due to the lexical order in which these functions are executed.
// This ensures the value of twelveFactorMode is set before Execute() decides how to run.
func init() {
	setupTwelveFactorMode()
}

// setupTwelveFactorMode will enable or disable 12 factor mode based on environment variable.
func setupTwelveFactorMode() {
	mode := os.Getenv(envVarTwelveFactorMode)
	if mode != "" { // if variable for 12factor mode is set and we should read env vars to determine actions...
		twelveFactorMode = true
		if strings.ToLower(mode) == "lambda" {
			lambdaMode = true
		}
	} else { // else 12factor mode should be off...
		twelveFactorMode = false // explicitly turn off this mode since tests may have turned it on while others require it off.
		lambdaMode = false
	}
}

var (
	envVarTwelveFactorMode = c.EnvVarPrefix + "_" + "12FACTOR_MODE"
	envVarCommand          = c.EnvVarPrefix + "_" + "COMMAND" // entity name or "all"
	envVarStage            = flagNameToEnvVar("stage")
	envVarBucket           = flagNameToEnvVar("bucket")
	envVarLogLevel         = helper.EnvVarName(c.ConfigKeyLogLevel)
)

var (
	twelveFactorMode bool // true if os env var envVarTwelveFactorMode is set
	lambdaMode       bool // true if os env var envVarTwelveFactorMode is "lambda"
	twelveFactorVars = map[string]string{
		envVarCommand: "",
		envVarStage:   "",
		envVarBucket:  "",
	}
)

type twelveFactorAction struct {
	runnerFunc func(stage string, bucket string) error
}

// twelveFactorActions has one action per entity job plus "all".
var twelveFactorActions = buildTwelveFactorActions()

func buildTwelveFactorActions() map[string]twelveFactorAction {
	names := append(entity.Names(), actions.EntityAll)
	retval := make(map[string]twelveFactorAction, len(names))
	for _, n := range names {
		name := n
		retval[name] = twelveFactorAction{
			runnerFunc: func(stage string, bucket string) error {
				_, err := runIngest(context.Background(), &actions.IngestConfig{Entity: name, Stage: stage, Bucket: bucket})
				return err
			},
		}
	}
	return retval
}

func execute12FactorMode(acts map[string]twelveFactorAction) (err error) {
	logLevel := helper.ReadValueFromEnvWithDefault(envVarLogLevel, c.DefaultLogLevel)
	log := logger.NewLogger(c.ServiceName, logLevel, stackDumpOnPanic)
	log.Info("Ingesta is running in 12 Factor mode...")
	for k := range twelveFactorVars { // for each env variable that we need...
		twelveFactorVars[k] = os.Getenv(k)
		log.Debug(k, "=", twelveFactorVars[k])
	}
	command := strings.ToLower(strings.TrimSpace(twelveFactorVars[envVarCommand]))
	if spec, err := entity.Lookup(command); err == nil { // if the command is an entity alias...
		command = spec.Name
	}
	a, ok := acts[command]
	if !ok {
		known := make([]string, 0, len(acts))
		for k := range acts {
			known = append(known, k)
		}
		sort.Strings(known)
		err = fmt.Errorf("invalid command %q, expected one of %v", twelveFactorVars[envVarCommand], strings.Join(known, ", "))
		log.Error(err.Error())
		return
	}
	err = a.runnerFunc(twelveFactorVars[envVarStage], twelveFactorVars[envVarBucket])
	if err != nil {
		log.Error("Error: ", err)
	}
	return err
}

// twelveFactorSettingVars lists the env vars that override settings, for help output.
func twelveFactorSettingVars() []string {
	retval := make([]string, 0)
	for _, k := range config.Keys() {
		retval = append(retval, helper.EnvVarName(k))
	}
	return retval
}
