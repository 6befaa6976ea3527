// Package tenant resolve o tenant de cada requisição.
// Ainda não há autenticação real: um tenant fixo vem da configuração,
// ou o mais antigo ativo do banco. A resolução acontece por requisição
// e viaja no context — nunca em estado global de processo.
package tenant

import (
	"context"
	"errors"
	"fmt"

	"galaxia/internal/store"
)

// ErrNoTenant means the system was never set up.
var ErrNoTenant = errors.New("nenhum tenant configurado")

type ctxKey struct{}

// WithID returns a context carrying the resolved tenant id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IDFromContext extracts the tenant id placed by the middleware.
func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Resolver picks the tenant for a request.
type Resolver struct {
	store     store.Store
	defaultID string
}

func NewResolver(st store.Store, defaultID string) *Resolver {
	return &Resolver{store: st, defaultID: defaultID}
}

// Resolve returns the pinned tenant id when configured, otherwise the
// oldest active tenant. ErrNoTenant when the store is empty.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	if r.defaultID != "" {
		if _, err := r.store.Tenants().FindByID(ctx, r.defaultID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", fmt.Errorf("tenant configurado não existe (%s): %w", r.defaultID, ErrNoTenant)
			}
			return "", err
		}
		return r.defaultID, nil
	}
	tenant, err := r.store.Tenants().FirstActive(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNoTenant
		}
		return "", err
	}
	return tenant.ID, nil
}
