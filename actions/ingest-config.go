package actions

import (
	"context"
	"strings"

	"github.com/Luis23345432/Ingesta-Hotel2/aws/s3"
	"github.com/Luis23345432/Ingesta-Hotel2/config"
	"github.com/Luis23345432/Ingesta-Hotel2/constants"
	"github.com/Luis23345432/Ingesta-Hotel2/entity"
	"github.com/Luis23345432/Ingesta-Hotel2/helper"
	"github.com/Luis23345432/Ingesta-Hotel2/logger"
)

// EntityAll selects every entity.
const EntityAll = "all"

type IngestConfig struct {
	Entity           string `errorTxt:"entity" mandatory:"yes"`
	Stage            string `errorTxt:"stage" mandatory:"yes"`
	Bucket           string `errorTxt:"bucket" mandatory:"yes"`
	Settings         config.Settings
	StackDumpOnPanic bool
	NewClients       func(region string) (Clients, error) // nil uses NewAWSClients.
}

// RunIngestCommand runs the job of cfg.Entity, or of every entity for EntityAll.
func RunIngestCommand(ctx context.Context, cfg *IngestConfig) ([]JobResult, error) {
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return nil, err
	}
	bucket, err := s3.ParseBucketName(cfg.Bucket)
	if err != nil {
		return nil, err
	}
	policy, err := entity.ParseNewlinePolicy(cfg.Settings.NewlinePolicy)
	if err != nil {
		return nil, err
	}
	specs, err := selectSpecs(cfg.Entity)
	if err != nil {
		return nil, err
	}
	log := logger.NewLogger(constants.ServiceName, cfg.Settings.LogLevel, cfg.StackDumpOnPanic)
	if err := log.AddFileOutput(cfg.Settings.LogFile); err != nil {
		return nil, err
	}
	defer log.Close()
	log.Debug("settings: ", cfg.Settings)
	newClients := cfg.NewClients
	if newClients == nil {
		newClients = NewAWSClients
	}
	clients, err := newClients(cfg.Settings.Region)
	if err != nil {
		return nil, err
	}
	base := JobContext{
		Log:       log,
		Stage:     strings.TrimSpace(cfg.Stage),
		Bucket:    bucket,
		OutputDir: cfg.Settings.OutputDir,
		PageSize:  cfg.Settings.PageSize,
		Clients:   clients,
	}
	for idx := range specs {
		specs[idx] = specs[idx].WithNewlinePolicy(policy)
	}
	if len(specs) == 1 {
		jc := base
		jc.Spec = specs[0]
		res, err := RunIngest(ctx, &jc)
		return []JobResult{res}, err
	}
	return RunAll(ctx, base, specs)
}

func selectSpecs(name string) ([]entity.Spec, error) {
	if strings.EqualFold(strings.TrimSpace(name), EntityAll) {
		return entity.All(), nil
	}
	spec, err := entity.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []entity.Spec{spec}, nil
}
