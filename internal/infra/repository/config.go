package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"autopneu-api/internal/domain/site"
	"autopneu-api/internal/infra"
	"autopneu-api/internal/infra/docstore"
)

// DocStore is the persistence boundary shared by the document repositories.
// *docstore.Store satisfies it; tests substitute an in-memory map.
type DocStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, raw []byte) error
	Reset(ctx context.Context) error
}

type ConfigRepository struct {
	store DocStore
}

func NewConfigRepository(store DocStore) *ConfigRepository {
	return &ConfigRepository{store: store}
}

// Load returns the stored site config, or the factory default when the
// document is absent or unreadable. An unreadable document must never fail
// startup or a request; it is logged and silently replaced by the default.
func (r *ConfigRepository) Load(ctx context.Context) (site.Config, error) {
	raw, err := r.store.Load(ctx, docstore.KeyConfig)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return site.DefaultConfig(), nil
		}
		return site.Config{}, err
	}

	var cfg site.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		slog.Warn("site config document unreadable, using default", "key", docstore.KeyConfig, "error", err.Error())
		return site.DefaultConfig(), nil
	}
	return cfg, nil
}

func (r *ConfigRepository) Save(ctx context.Context, cfg site.Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal site config", err, infra.KindUnmarshalFailed)
	}
	return r.store.Save(ctx, docstore.KeyConfig, raw)
}
