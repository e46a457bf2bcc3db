package components

import (
	"github.com/lmsonic/sonicmaker/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData holds the sprite the character plays its clips on.
type AnimationData struct {
	*animations.Sprite
}

var Animation = donburi.NewComponentType[AnimationData]()
