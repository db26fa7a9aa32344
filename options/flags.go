package options

import (
	"github.com/reusee/myndra/cmds"
)

// Flags holds command line settings. Zero values leave the decision to config files and mode.
type Flags struct {
	Context      string
	NoLiveReload bool
	NoReactive   bool
	NoTemporal   bool
	NoDID        bool
	Capabilities []string
}

var flags Flags

func init() {
	cmds.Define("-c", cmds.Func(func(name string) {
		flags.Context = name
	}).Desc("set execution context (dev|prod|test)").Alias("-context", "--context"))

	cmds.Define("-no-live-reload", cmds.Func(func() {
		flags.NoLiveReload = true
	}).Desc("disable live code reloading").Alias("--no-live-reload"))
	cmds.Define("-no-reactive", cmds.Func(func() {
		flags.NoReactive = true
	}).Desc("disable reactive programming").Alias("--no-reactive"))
	cmds.Define("-no-temporal", cmds.Func(func() {
		flags.NoTemporal = true
	}).Desc("disable temporal types").Alias("--no-temporal"))
	cmds.Define("-no-did", cmds.Func(func() {
		flags.NoDID = true
	}).Desc("disable decentralized identity").Alias("--no-did"))

}

var capabilities = cmds.Collect[string]("-capability", "add capability to whitelist, repeatable", "--capability")

func (Module) Flags() Flags {
	ret := flags
	ret.Capabilities = *capabilities
	return ret
}
