package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"techfest/internal/catalog"
	"techfest/internal/domain"
)

type sponsorService struct {
	catalog        *catalog.Store[domain.Sponsor]
	contextTimeout time.Duration
}

func NewSponsorService(store *catalog.Store[domain.Sponsor], timeout time.Duration) domain.SponsorService {
	return &sponsorService{
		catalog:        store,
		contextTimeout: timeout,
	}
}

func (s *sponsorService) ListSponsors(ctx context.Context) ([]domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalog.Load(ctx), nil
}

func (s *sponsorService) CreateSponsor(ctx context.Context, sponsor domain.Sponsor) (*domain.Sponsor, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.ValidTier(sponsor.Tier) {
		return nil, false, fmt.Errorf("%w: unknown sponsor tier %q", domain.ErrInvalidInput, sponsor.Tier)
	}
	sponsor.ID = uuid.NewString()
	sponsors := append(s.catalog.Load(ctx), sponsor)
	saved := s.catalog.Save(ctx, sponsors)
	return &sponsor, saved, nil
}

func (s *sponsorService) UpdateSponsor(ctx context.Context, id string, upd domain.SponsorUpdate) (*domain.Sponsor, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if upd.Tier != nil && !domain.ValidTier(*upd.Tier) {
		return nil, false, fmt.Errorf("%w: unknown sponsor tier %q", domain.ErrInvalidInput, *upd.Tier)
	}

	sponsors := s.catalog.Load(ctx)
	var updated *domain.Sponsor
	for i := range sponsors {
		if sponsors[i].ID != id {
			continue
		}
		if upd.Name != nil {
			sponsors[i].Name = *upd.Name
		}
		if upd.Tier != nil {
			sponsors[i].Tier = *upd.Tier
		}
		if upd.Logo != nil {
			sponsors[i].Logo = *upd.Logo
		}
		if upd.Website != nil {
			sponsors[i].Website = *upd.Website
		}
		updated = &sponsors[i]
		break
	}
	if updated == nil {
		return nil, false, domain.ErrNotFound
	}
	saved := s.catalog.Save(ctx, sponsors)
	sponsor := *updated
	return &sponsor, saved, nil
}

func (s *sponsorService) DeleteSponsor(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sponsors := s.catalog.Load(ctx)
	remaining := make([]domain.Sponsor, 0, len(sponsors))
	found := false
	for _, sp := range sponsors {
		if sp.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, sp)
	}
	if !found {
		return false, domain.ErrNotFound
	}
	return s.catalog.Save(ctx, remaining), nil
}
