package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Projectile  = donburi.NewTag().SetName("Projectile")
	Throwable   = donburi.NewTag().SetName("Throwable")
	Weapon      = donburi.NewTag().SetName("Weapon")
	Collectable = donburi.NewTag().SetName("Collectable")
	BurnChannel = donburi.NewTag().SetName("BurnChannel")
	Gate        = donburi.NewTag().SetName("Gate")
)
