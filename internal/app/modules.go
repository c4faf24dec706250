package app

import (
	"github.com/devgenius/devgenius/internal/config"
	"github.com/devgenius/devgenius/internal/hub"
	"github.com/devgenius/devgenius/internal/module"
	"github.com/devgenius/devgenius/internal/modules/dashboard"
	"github.com/devgenius/devgenius/internal/modules/livereload"
	"github.com/devgenius/devgenius/internal/pubsub"
	"github.com/devgenius/devgenius/internal/rendering"
	"github.com/devgenius/devgenius/internal/status"
	"github.com/devgenius/devgenius/web/src/templates/components"
)

// Dependencies holds the core services that are required by the
// application's modules. This struct is passed from the server to wire up
// the modules.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Hub        *hub.Hub
	Provider   status.Provider
	Cfg        config.Provider
}

// NewModules creates and returns the list of all active modules for the
// application. This is the single source of truth for which features are
// enabled.
func NewModules(deps Dependencies) []module.Module {
	modules := []module.Module{
		dashboard.New(dashboard.Dependencies{
			Publisher:   deps.Publisher,
			Subscriber:  deps.Subscriber,
			Renderer:    deps.Renderer,
			Hub:         deps.Hub,
			Provider:    deps.Provider,
			Fragment:    components.DashboardStatus,
			FragmentOOB: components.DashboardStatusOOB,
		}),
	}

	// Live reload only makes sense when assets are served from disk.
	if deps.Cfg.GetAppEnv() == "development" && deps.Cfg.GetAssetSource() == "disk" {
		modules = append(modules, livereload.New(livereload.Dependencies{
			Publisher:  deps.Publisher,
			Subscriber: deps.Subscriber,
			Renderer:   deps.Renderer,
			Hub:        deps.Hub,
			Dir:        deps.Cfg.GetStaticDir(),
		}))
	}

	return modules
}
