package service

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finpro-ledger/internal/storage/profile"
)

const DefaultDisplayName = "Usuário"

var DefaultMonthlyGoal = decimal.NewFromInt(2000)

// Profile is the per-device budget configuration.
type Profile struct {
	DisplayName     string
	MonthlyGoal     decimal.Decimal
	ThemePreference bool
}

// DefaultProfile is what a first run starts with.
func DefaultProfile() Profile {
	return Profile{
		DisplayName: DefaultDisplayName,
		MonthlyGoal: DefaultMonthlyGoal,
	}
}

// ProfileForm carries the raw settings form fields.
type ProfileForm struct {
	DisplayName string
	MonthlyGoal string
}

// ProfileService keeps the profile in memory and writes it through to the local store.
type ProfileService struct {
	store profile.IProfileStore

	mu      sync.Mutex
	current Profile
}

// NewProfileService loads the stored profile, saving the defaults when none exists yet.
func NewProfileService(store profile.IProfileStore) (*ProfileService, error) {
	s := &ProfileService{store: store, current: DefaultProfile()}

	stored, ok, err := store.Load()
	if err != nil {
		return nil, err
	}
	if !ok {
		logrus.Info("ProfileService.firstRun.savingDefaults")
		if err := store.Save(s.current.toStorage()); err != nil {
			return nil, err
		}
		return s, nil
	}

	s.current = profileFromStorage(stored)
	return s, nil
}

// Get returns the current profile.
func (s *ProfileService) Get() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update applies the settings form. An empty name keeps the current one; a goal that does not
// parse or is not positive keeps the current goal.
func (s *ProfileService) Update(form ProfileForm) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	if name := strings.TrimSpace(form.DisplayName); name != "" {
		next.DisplayName = name
	}
	if goal, err := ParseAmount(form.MonthlyGoal); err == nil && goal.IsPositive() {
		next.MonthlyGoal = goal
	}

	return s.commit(next)
}

// ToggleTheme flips the dark theme preference.
func (s *ProfileService) ToggleTheme() (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	next.ThemePreference = !next.ThemePreference
	return s.commit(next)
}

// commit must be called with mu held. The in-memory profile only changes once the store
// accepted the write.
func (s *ProfileService) commit(next Profile) (Profile, error) {
	if err := s.store.Save(next.toStorage()); err != nil {
		return s.current, err
	}
	s.current = next
	return next, nil
}

func (p Profile) toStorage() *profile.Profile {
	return &profile.Profile{
		DisplayName: p.DisplayName,
		MonthlyGoal: p.MonthlyGoal,
		Dark:        p.ThemePreference,
	}
}

func profileFromStorage(p *profile.Profile) Profile {
	out := Profile{
		DisplayName:     p.DisplayName,
		MonthlyGoal:     p.MonthlyGoal,
		ThemePreference: p.Dark,
	}
	if out.DisplayName == "" {
		out.DisplayName = DefaultDisplayName
	}
	return out
}
