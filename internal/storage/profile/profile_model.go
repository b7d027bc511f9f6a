package profile

import (
	"github.com/shopspring/decimal"
)

// Profile is the budget configuration kept on the local device.
type Profile struct {
	DisplayName string          `json:"name"`
	MonthlyGoal decimal.Decimal `json:"goal"`
	Dark        bool            `json:"dark"`
}

// IProfileStore persists the profile. Calls are synchronous and never touch the network.
//
//go:generate mockery --name IProfileStore --output mock_IProfileStore.go
type IProfileStore interface {
	// Load returns the stored profile, or false when none has been saved yet.
	Load() (*Profile, bool, error)
	Save(p *Profile) error
}
