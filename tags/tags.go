package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Opponent   = donburi.NewTag().SetName("Opponent")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for broadphase collision
const (
	ResolvPlayer       = "Player"
	ResolvOpponent     = "Opponent"
	ResolvPlayerShot   = "PlayerShot"
	ResolvOpponentShot = "OpponentShot"
)
