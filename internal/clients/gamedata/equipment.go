package gamedata

import (
	"context"

	"github.com/wanderforge/wander-api/internal/clients/external"
	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
)

// StaticEquipmentProvider serves the same loadout snapshot for every user.
// It stands in for the profile service's equipment read path in local and
// single-tenant deployments.
type StaticEquipmentProvider struct {
	stats  entities.Stats
	weapon external.WeaponProfile
}

// NewStaticEquipmentProvider creates an equipment provider with fixed
// aggregate stats and weapon profile
func NewStaticEquipmentProvider(stats entities.Stats, weapon external.WeaponProfile) (*StaticEquipmentProvider, error) {
	if weapon.Bands.Total() != entities.CircleCentidegrees {
		return nil, errors.InvalidArgument("weapon bands must cover the full dial")
	}
	return &StaticEquipmentProvider{stats: stats, weapon: weapon}, nil
}

var _ external.EquipmentProvider = (*StaticEquipmentProvider)(nil)

// EquippedStats returns the fixed aggregate stats
func (p *StaticEquipmentProvider) EquippedStats(_ context.Context, _ string) (entities.Stats, error) {
	return p.stats, nil
}

// EquippedWeapon returns the fixed weapon profile
func (p *StaticEquipmentProvider) EquippedWeapon(_ context.Context, _ string) (*external.WeaponProfile, error) {
	weapon := p.weapon
	return &weapon, nil
}
