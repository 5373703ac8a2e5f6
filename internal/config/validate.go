package config

import (
	"errors"
	"fmt"
)

// Validate checks that every difficulty table increases challenge strictly from
// easy to hard and that the shared tuning is usable.
func (p Profiles) Validate() error {
	var errs []error

	cb := p.CosmicBalance.Difficulty
	errs = append(errs,
		descending("cosmic_balance.zone_size", cb.Easy.ZoneSize, cb.Normal.ZoneSize, cb.Hard.ZoneSize),
		ascending("cosmic_balance.drift_speed", cb.Easy.DriftSpeed, cb.Normal.DriftSpeed, cb.Hard.DriftSpeed),
		descending("cosmic_balance.control_strength", cb.Easy.ControlStrength, cb.Normal.ControlStrength, cb.Hard.ControlStrength),
		positive("cosmic_balance.step", p.CosmicBalance.Step),
		positive("cosmic_balance.round_duration", p.CosmicBalance.RoundDuration),
		positive("cosmic_balance.rounds", float64(p.CosmicBalance.Rounds)),
	)

	sa := p.SpaceAttack.Difficulty
	errs = append(errs,
		descending("space_attack.spawn_interval", sa.Easy.SpawnInterval, sa.Normal.SpawnInterval, sa.Hard.SpawnInterval),
		ascending("space_attack.base_speed", sa.Easy.BaseSpeed, sa.Normal.BaseSpeed, sa.Hard.BaseSpeed),
		positive("space_attack.move_tick", p.SpaceAttack.MoveTick),
		positive("space_attack.level_up_every", float64(p.SpaceAttack.LevelUpEvery)),
		positive("space_attack.area.width", p.SpaceAttack.Area.Width-2*p.SpaceAttack.SpawnMargin),
	)

	mo := p.MindOrbit.Difficulty
	errs = append(errs,
		ascending("mind_orbit.pattern_base", float64(mo.Easy.PatternBase), float64(mo.Normal.PatternBase), float64(mo.Hard.PatternBase)),
		descending("mind_orbit.show_speed", mo.Easy.ShowSpeed, mo.Normal.ShowSpeed, mo.Hard.ShowSpeed),
		positive("mind_orbit.step", p.MindOrbit.Step),
		positive("mind_orbit.grid_size", float64(p.MindOrbit.GridSize)),
	)

	sr := p.StellarReflex.Difficulty
	errs = append(errs,
		descending("stellar_reflex.target_size", sr.Easy.TargetSize, sr.Normal.TargetSize, sr.Hard.TargetSize),
		descending("stellar_reflex.delay_min", sr.Easy.DelayMin, sr.Normal.DelayMin, sr.Hard.DelayMin),
		descending("stellar_reflex.delay_max", sr.Easy.DelayMax, sr.Normal.DelayMax, sr.Hard.DelayMax),
		positive("stellar_reflex.step", p.StellarReflex.Step),
		positive("stellar_reflex.rounds", float64(p.StellarReflex.Rounds)),
		positive("stellar_reflex.level_every", float64(p.StellarReflex.LevelEvery)),
	)
	for _, preset := range Presets() {
		d := sr.For(preset)
		if d.DelayMin > d.DelayMax {
			errs = append(errs, fmt.Errorf("stellar_reflex.%s: delay_min %.2f exceeds delay_max %.2f", preset, d.DelayMin, d.DelayMax))
		}
	}

	return errors.Join(errs...)
}

func ascending(name string, easy, normal, hard float64) error {
	if easy < normal && normal < hard {
		return nil
	}
	return fmt.Errorf("%s must increase easy < normal < hard (got %g, %g, %g)", name, easy, normal, hard)
}

func descending(name string, easy, normal, hard float64) error {
	if easy > normal && normal > hard {
		return nil
	}
	return fmt.Errorf("%s must decrease easy > normal > hard (got %g, %g, %g)", name, easy, normal, hard)
}

func positive(name string, v float64) error {
	if v > 0 {
		return nil
	}
	return fmt.Errorf("%s must be positive (got %g)", name, v)
}
