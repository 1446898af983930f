package app

import (
	"github.com/bitlance/web/internal/module"
	"github.com/bitlance/web/internal/modules/dashboard"
	"github.com/bitlance/web/internal/modules/jobs"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled. Modules
// find the core services in the registry when they boot.
func NewModules() []module.Module {
	return []module.Module{
		// Add new application modules here.
		dashboard.New(),
		jobs.New(),
	}
}
