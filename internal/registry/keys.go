package registry

import (
	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/events"
	"github.com/bitlance/web/internal/rendering"
)

// Service keys shared between the server and the modules. Using typed
// constants prevents typos and mismatched types.
const (
	MarketplaceKey Key[domain.Marketplace] = "core.marketplace"
	EmitterKey     Key[*events.Emitter]    = "core.emitter"
	RendererKey    Key[rendering.Renderer] = "core.renderer"
)
