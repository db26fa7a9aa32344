package options

import (
	_ "embed"

	"github.com/reusee/myndra/configs"
	"github.com/reusee/myndra/logs"
)

//go:embed schema.cue
var schema string

var configFileNames = []string{
	"myndra.cue",
	".myndra.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := configs.ExistingFiles(configs.SearchPaths("myndra", configFileNames...))
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}
