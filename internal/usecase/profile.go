package usecase

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go-portfolio-backend/internal/domain"

	"gopkg.in/yaml.v3"
)

type profileUsecase struct {
	path string

	mu      sync.RWMutex
	profile *domain.SiteProfile
	modTime int64
}

// NewProfileUsecase serves the site content document at path. The file is
// re-read when its modification time changes.
func NewProfileUsecase(path string) (domain.ProfileUsecase, error) {
	uc := &profileUsecase{path: path}
	if _, err := uc.GetProfile(context.Background()); err != nil {
		return nil, err
	}
	return uc, nil
}

func (uc *profileUsecase) GetProfile(ctx context.Context) (*domain.SiteProfile, error) {
	info, err := os.Stat(uc.path)
	if err != nil {
		return nil, fmt.Errorf("stat site profile: %w", err)
	}

	uc.mu.RLock()
	cached, mod := uc.profile, uc.modTime
	uc.mu.RUnlock()
	if cached != nil && mod == info.ModTime().UnixNano() {
		return cached, nil
	}

	profile, err := LoadSiteProfile(uc.path)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.profile = profile
	uc.modTime = info.ModTime().UnixNano()
	uc.mu.Unlock()
	return profile, nil
}

// LoadSiteProfile parses a YAML site profile and checks the fields the pages rely on.
func LoadSiteProfile(path string) (*domain.SiteProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site profile: %w", err)
	}

	var profile domain.SiteProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parse site profile: %w", err)
	}

	if profile.Profile.Name == "" {
		return nil, fmt.Errorf("site profile: profile.name is required")
	}
	if profile.Contact.Email != "" && !domain.IsValidEmail(profile.Contact.Email) {
		return nil, fmt.Errorf("site profile: contact.email %q is not a valid address", profile.Contact.Email)
	}
	switch profile.Profile.Availability {
	case "", domain.AvailabilityAvailable, domain.AvailabilityBusy, domain.AvailabilityUnavailable:
	default:
		return nil, fmt.Errorf("site profile: unknown availability %q", profile.Profile.Availability)
	}
	for _, s := range profile.Skills {
		if s.Proficiency < 0 || s.Proficiency > 100 {
			return nil, fmt.Errorf("site profile: skill %q proficiency must be 0-100", s.Name)
		}
	}
	return &profile, nil
}
