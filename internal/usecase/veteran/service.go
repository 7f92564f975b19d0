package veteran

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"museum-web/internal/domain/entity"
	"museum-web/internal/listview"
	"museum-web/internal/repository"
)

// Service provides veteran management use cases.
// It validates input and delegates storage to the repository.
type Service struct {
	Repo repository.VeteranRepository
}

// Listing is one rendered page of veterans plus the options of the filter
// selects, which are derived from the whole collection.
type Listing struct {
	listview.Result[*entity.Veteran]
	Ranks []string
	Units []string
}

// List retrieves all veterans.
func (s *Service) List(ctx context.Context) ([]*entity.Veteran, error) {
	veterans, err := s.Repo.ListVeterans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list veterans: %w", err)
	}
	return veterans, nil
}

// Browse fetches the collection once and runs it through the list pipeline.
func (s *Service) Browse(ctx context.Context, cfg listview.Config[*entity.Veteran], state listview.State, pageSize int) (*Listing, error) {
	veterans, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return &Listing{
		Result: listview.Compute(veterans, cfg, state, pageSize),
		Ranks:  listview.Options(veterans, rank),
		Units:  listview.Options(veterans, militaryUnit),
	}, nil
}

// Latest returns up to n veterans, most recently added first.
func (s *Service) Latest(ctx context.Context, n int) ([]*entity.Veteran, error) {
	veterans, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Latest(veterans, n), nil
}

// Latest orders veterans by creation time, newest first, and keeps n.
func Latest(veterans []*entity.Veteran, n int) []*entity.Veteran {
	sorted := slices.Clone(veterans)
	slices.SortStableFunc(sorted, func(a, b *entity.Veteran) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Get retrieves a single veteran by its ID.
// Returns ErrInvalidVeteranID for a blank ID and ErrVeteranNotFound when the
// repository does not know it.
func (s *Service) Get(ctx context.Context, id string) (*entity.Veteran, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidVeteranID
	}

	v, err := s.Repo.GetVeteran(ctx, id)
	if errors.Is(err, entity.ErrNotFound) || (err == nil && v == nil) {
		return nil, ErrVeteranNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get veteran: %w", err)
	}
	return v, nil
}

// Create validates v and stores it. Validation failures are returned as
// entity.ValidationErrors without calling the repository.
func (s *Service) Create(ctx context.Context, v *entity.Veteran) (*entity.Veteran, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	created, err := s.Repo.CreateVeteran(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("create veteran: %w", err)
	}
	return created, nil
}

// Update validates v and replaces the stored record with the same ID.
func (s *Service) Update(ctx context.Context, v *entity.Veteran) error {
	if strings.TrimSpace(v.ID) == "" {
		return ErrInvalidVeteranID
	}
	if err := v.Validate(); err != nil {
		return err
	}
	if err := s.Repo.UpdateVeteran(ctx, v); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrVeteranNotFound
		}
		return fmt.Errorf("update veteran: %w", err)
	}
	return nil
}

// Delete removes the veteran from the repository. Callers drop it from any
// local copy only after this returns nil.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidVeteranID
	}
	if err := s.Repo.DeleteVeteran(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrVeteranNotFound
		}
		return fmt.Errorf("delete veteran: %w", err)
	}
	return nil
}
