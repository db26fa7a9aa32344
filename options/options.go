package options

import (
	"slices"

	"github.com/reusee/myndra/configs"
	"github.com/reusee/myndra/logs"
	"github.com/reusee/myndra/modes"
	"github.com/reusee/myndra/vars"
	"github.com/samber/lo"
)

// Options are the collaborator settings acknowledged at startup.
// They do not change how source is lexed, parsed or evaluated.
type Options struct {
	Context      string
	LiveReload   bool
	Reactive     bool
	Temporal     bool
	DID          bool
	Capabilities []string
}

// KnownContexts are the labels context conditionals are written against.
var KnownContexts = []string{"dev", "prod", "test"}

func (Module) Options(
	flags Flags,
	loader configs.Loader,
	mode modes.Mode,
	logger logs.Logger,
) Options {
	// a broken config is reported by the caller through Loader.Err
	if err := loader.Err(); err != nil {
		logger.Error("config ignored", "error", err)
		loader = configs.NewLoader(nil, "")
	}

	options := Options{
		// flag, config, mode default
		Context: vars.FirstNonZero(
			flags.Context,
			configs.First[string](loader, "context"),
			mode.ContextName(),
		),
		LiveReload: enabled(flags.NoLiveReload, configs.First[*bool](loader, "live_reload")),
		Reactive:   enabled(flags.NoReactive, configs.First[*bool](loader, "reactive")),
		Temporal:   enabled(flags.NoTemporal, configs.First[*bool](loader, "temporal")),
		DID:        enabled(flags.NoDID, configs.First[*bool](loader, "did")),
		// capabilities from every config file are merged
		Capabilities: lo.Uniq(append(
			lo.Flatten(slices.Collect(configs.All[[]string](loader, "capabilities"))),
			flags.Capabilities...,
		)),
	}

	if !lo.Contains(KnownContexts, options.Context) {
		logger.Warn("unknown execution context",
			"context", options.Context,
			"known", KnownContexts,
		)
	}

	return options
}

// enabled: a flag can only disable; an absent config value means enabled.
func enabled(disabledByFlag bool, configured *bool) bool {
	if disabledByFlag {
		return false
	}
	if configured == nil {
		return true
	}
	return *configured
}

// Features lists the names of enabled features in a fixed order.
func (o Options) Features() []string {
	return lo.Compact([]string{
		lo.Ternary(o.LiveReload, "live-reload", ""),
		lo.Ternary(o.Reactive, "reactive", ""),
		lo.Ternary(o.Temporal, "temporal", ""),
		lo.Ternary(o.DID, "did", ""),
	})
}
