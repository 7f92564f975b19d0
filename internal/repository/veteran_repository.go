// Package repository declares the DataSource contracts the use cases depend on.
// The museum REST client in internal/infra/museumapi implements all of them.
//
// Implementations report failures with the sentinels of package entity:
// entity.ErrNotFound for a missing record, entity.ErrUnauthorized for a missing
// or rejected credential, and entity.ErrValidationFailed for a payload the
// remote side refused (with entity.UserMessage carrying its explanation).
package repository

import (
	"context"

	"museum-web/internal/domain/entity"
)

// VeteranRepository reads and writes veterans.
// Mutating methods require a credential bound to ctx.
type VeteranRepository interface {
	ListVeterans(ctx context.Context) ([]*entity.Veteran, error)
	GetVeteran(ctx context.Context, id string) (*entity.Veteran, error)
	// CreateVeteran returns the stored record, including its new ID.
	CreateVeteran(ctx context.Context, v *entity.Veteran) (*entity.Veteran, error)
	UpdateVeteran(ctx context.Context, v *entity.Veteran) error
	DeleteVeteran(ctx context.Context, id string) error
}
