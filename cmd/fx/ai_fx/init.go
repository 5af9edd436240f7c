package ai_fx

import (
	"go.uber.org/fx"

	"voyago/internal/config"
	"voyago/pkg/utils"
)

var Module = fx.Provide(provideGenerationClient)

func provideGenerationClient(cfg config.Config) (utils.GenerationClientInterface, error) {
	// An empty API key is allowed here: the client reports a configuration
	// error on first use so the rest of the API stays up.
	return utils.NewGenerationClient(cfg.AIProvider, cfg.ModelAPIKey(), cfg.AIModel)
}
