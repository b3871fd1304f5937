package impl

import (
	"cheeserater/internal/util"

	"go.uber.org/fx"
)

// Module provides the use case implementations.
var Module = fx.Module("usecase",
	fx.Provide(
		NewEngine,
		fx.Annotate(util.NewMonotonicClock, fx.As(new(util.Clock))),
		NewCatalogService,
		NewReviewService,
		NewProfileService,
	),
)
