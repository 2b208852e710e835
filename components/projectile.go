package components

import (
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner *donburi.Entry
	Kind  cfg.ProjectileKind

	Direction gamemath.Vec // unit vector, flipped per axis on bounce
	Speed     float64
	Radius    float64

	Age    float64
	MaxAge float64

	Bounces    int
	MaxBounces int

	Alive bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
