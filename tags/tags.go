package tags

import "github.com/yohamta/donburi"

var (
	Player        = donburi.NewTag().SetName("Player")
	Solid         = donburi.NewTag().SetName("Solid")
	Spring        = donburi.NewTag().SetName("Spring")
	SlopedSolid   = donburi.NewTag().SetName("SlopedSolid")
	LayerSwitcher = donburi.NewTag().SetName("LayerSwitcher")
	Ring          = donburi.NewTag().SetName("Ring")
)

// Resolv tags for overlap checks
const (
	ResolvPlayer = "player"
	ResolvRing   = "ring"
)
