package factory

import (
	"errors"

	"github.com/automoto/arena-survival/archetypes"
	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/automoto/arena-survival/tags"
	"github.com/yohamta/donburi"
)

// ErrMissingOwner is returned when a projectile is fired by an entry that is
// not a live combatant.
var ErrMissingOwner = errors.New("projectile requires a combatant owner")

// ShotParams describes a projectile at the moment it is fired.
type ShotParams struct {
	Kind      cfg.ProjectileKind
	Position  gamemath.Vec
	Direction gamemath.Vec // normalized on creation
	Speed     float64
	Lifetime  float64
}

// CreateProjectile spawns a projectile and appends it to the owner's
// projectile collection.
func CreateProjectile(w donburi.World, owner *donburi.Entry, shot ShotParams) (*donburi.Entry, error) {
	if owner == nil || !owner.Valid() || !owner.HasComponent(components.Combatant) {
		return nil, ErrMissingOwner
	}

	p := archetypes.Projectile.Spawn(w)

	components.Transform.SetValue(p, components.TransformData{Position: shot.Position})
	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:      owner,
		Kind:       shot.Kind,
		Direction:  shot.Direction.Normalized(),
		Speed:      shot.Speed,
		Radius:     cfg.Projectile.Radius,
		MaxAge:     shot.Lifetime,
		MaxBounces: cfg.Projectile.MaxBounces,
		Alive:      true,
	})

	tag := tags.ResolvPlayerShot
	if shot.Kind == cfg.ShotOpponent {
		tag = tags.ResolvOpponentShot
	}
	attachObject(w, p, cfg.Projectile.Radius, tag)

	combatant := components.Combatant.Get(owner)
	combatant.Projectiles = append(combatant.Projectiles, p)

	addVisual(w, p)
	return p, nil
}

// CreatePlayerShot fires one projectile along the controlled entity's facing,
// starting just outside its radius.
func CreatePlayerShot(w donburi.World, player *donburi.Entry) (*donburi.Entry, error) {
	if player == nil || !player.Valid() {
		return nil, ErrMissingOwner
	}
	pos := components.Transform.Get(player).Position
	facing := gamemath.Facing(components.Pilot.Get(player).Heading)
	offset := facing.Scale(cfg.Player.Radius + cfg.Player.MuzzleGap)

	return CreateProjectile(w, player, ShotParams{
		Kind:      cfg.ShotPlayer,
		Position:  pos.Add(offset),
		Direction: facing,
		Speed:     cfg.Player.ProjectileSpeed,
		Lifetime:  cfg.Player.ProjectileLifetime,
	})
}

// CreateOpponentShot fires one projectile from the opponent's center toward
// its target's current position.
func CreateOpponentShot(w donburi.World, opponent *donburi.Entry) (*donburi.Entry, error) {
	if opponent == nil || !opponent.Valid() {
		return nil, ErrMissingOwner
	}
	pursuit := components.Pursuit.Get(opponent)
	if pursuit.Target == nil || !pursuit.Target.Valid() {
		return nil, ErrMissingTarget
	}
	pos := components.Transform.Get(opponent).Position
	targetPos := components.Transform.Get(pursuit.Target).Position

	return CreateProjectile(w, opponent, ShotParams{
		Kind:      cfg.ShotOpponent,
		Position:  pos,
		Direction: gamemath.DirectionTo(pos, targetPos),
		Speed:     cfg.Opponent.ProjectileSpeed,
		Lifetime:  cfg.Opponent.ProjectileLifetime,
	})
}
