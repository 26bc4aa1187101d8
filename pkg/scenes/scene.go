package scenes

import (
	"github.com/decker502/storefront/pkg/game"
)

// Scene is a type alias for game.Scene.
// StorefrontScene and DestinationScene implement it together with the
// optional game.Disposable and game.ViewportAware interfaces.
type Scene = game.Scene

var (
	_ Scene              = (*StorefrontScene)(nil)
	_ game.Disposable    = (*StorefrontScene)(nil)
	_ game.ViewportAware = (*StorefrontScene)(nil)
	_ game.StoreProvider = (*StorefrontScene)(nil)

	_ Scene              = (*DestinationScene)(nil)
	_ game.Disposable    = (*DestinationScene)(nil)
	_ game.ViewportAware = (*DestinationScene)(nil)
)
