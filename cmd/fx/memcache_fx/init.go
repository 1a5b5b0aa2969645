package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"

	mem "tripgen/pkg/memcache"
)

const purgeInterval = 5 * time.Minute

var Module = fx.Provide(provideMemcacheClient)

func provideMemcacheClient(lc fx.Lifecycle) mem.StringStore {
	store := mem.NewTTLStore()

	var stop func()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			stop = store.StartJanitor(purgeInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if stop != nil {
				stop()
			}
			return nil
		},
	})
	return store
}
