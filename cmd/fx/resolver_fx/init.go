package resolver_fx

import (
	"go.uber.org/fx"

	"roadtrip/internal/services"
	"roadtrip/pkg/memcache"
)

var Module = fx.Provide(
	provideLinkStore, providePlaceResolver)

func provideLinkStore() memcache.ResolvedLinkStore {
	return memcache.NewResolvedLinks()
}

func providePlaceResolver(
	places services.PlacesClientInterface,
	links memcache.ResolvedLinkStore) services.PlaceResolverInterface {

	return services.NewPlaceResolver(places, links)
}
