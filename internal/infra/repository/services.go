package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"autopneu-api/internal/domain/catalog"
	"autopneu-api/internal/domain/site"
	"autopneu-api/internal/infra"
	"autopneu-api/internal/infra/docstore"
)

type ServiceRepository struct {
	store DocStore
}

func NewServiceRepository(store DocStore) *ServiceRepository {
	return &ServiceRepository{store: store}
}

func (r *ServiceRepository) Load(ctx context.Context) ([]catalog.Service, error) {
	raw, err := r.store.Load(ctx, docstore.KeyServices)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return site.DefaultServices(), nil
		}
		return nil, err
	}

	var services []catalog.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		slog.Warn("service catalog document unreadable, using default", "key", docstore.KeyServices, "error", err.Error())
		return site.DefaultServices(), nil
	}
	return services, nil
}

func (r *ServiceRepository) Save(ctx context.Context, services []catalog.Service) error {
	raw, err := json.Marshal(services)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal service catalog", err, infra.KindUnmarshalFailed)
	}
	return r.store.Save(ctx, docstore.KeyServices, raw)
}
