package config

import "go.uber.org/fx"

// Module wires the env config and the hot-reloadable pricing defaults.
var Module = fx.Module("config",
	fx.Provide(
		Load,
		NewPricingConfigHolder,
	),
)
