package memcache_fx

import (
	"accessitrip/internal/services"
	mem "accessitrip/pkg/memcache"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideDraftStore)

func provideDraftStore() mem.TTLStore[*services.SignUpDraft] {
	return mem.NewStore[*services.SignUpDraft]()
}
