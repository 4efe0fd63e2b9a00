package handlers

import (
	"busbooking/internal/auth"
	"busbooking/internal/cache"
	"busbooking/internal/catalog"
	"busbooking/internal/config"
	"busbooking/internal/services"
)

// Handlers bundles the collaborators the HTTP layer needs. Everything
// is passed in explicitly; there are no package-level singletons.
type Handlers struct {
	Env     config.Env
	Catalog *catalog.Catalog
	Booking *services.BookingService
	Docs    services.DocsService
	Users   *auth.UserStore
	Cache   *cache.Cache
}
