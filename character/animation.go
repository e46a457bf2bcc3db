package character

import (
	"math"

	"github.com/lmsonic/sonicmaker/shared/gamemath"
)

// updateAnimation picks the movement state from the current speed. States
// entered by an action are left alone.
func (c *Character) updateAnimation() {
	switch c.state {
	case RollingBall, JumpBall, Spindash, SuperPeelOut, Crouch, LookUp, Hurt, SpringBounce:
		return
	}

	speed := math.Abs(c.groundSpeed)
	if !c.grounded {
		speed = math.Abs(c.Velocity.X)
	}

	switch c.state {
	case Skidding:
		if c.groundSpeed != 0 && gamemath.Sign(c.groundSpeed) == c.skidDirection {
			return
		}
	case Pushing:
		held := c.pressed(ActionLeft)
		if !c.facingLeft {
			held = c.pressed(ActionRight)
		}
		if held {
			return
		}
	}

	switch {
	case speed == 0:
		c.setMotionState(Idle)
	case speed >= c.Config.TopSpeed:
		c.setMotionState(FullMotion)
	default:
		c.setMotionState(StartMotion)
	}
}

func (c *Character) setMotionState(s State) {
	if c.state != s {
		c.SetState(s)
	}
}

// AnimationName is the clip matching the current state.
func (c *Character) AnimationName() string {
	switch c.state {
	case StartMotion:
		return AnimStartMotion
	case FullMotion:
		return AnimFullMotion
	case Skidding:
		return AnimSkidding
	case Pushing:
		return AnimPushing
	case JumpBall:
		return AnimRolling
	case RollingBall:
		if math.Abs(c.groundSpeed) >= c.Config.TopSpeed {
			return AnimRollingFast
		}
		return AnimRolling
	case Hurt:
		return AnimHurt
	case SpringBounce:
		return AnimSpringBounce
	case Crouch:
		return AnimCrouch
	case Spindash:
		return AnimSpindash
	case SuperPeelOut:
		return AnimSuperPeelOut
	case LookUp:
		return AnimLookUp
	}
	return AnimIdle
}

// AnimationFrames is how many ticks each image of the current clip is shown.
func (c *Character) AnimationFrames() int {
	speed := math.Abs(c.groundSpeed)
	var frames float64
	switch c.state {
	case JumpBall, RollingBall, Spindash, SuperPeelOut:
		frames = 4 - speed
	case Pushing:
		frames = 8 - speed*4
	default:
		frames = 8 - speed
	}
	return int(math.Max(1, math.Floor(frames)))
}

func (c *Character) refreshAnimation() {
	name := c.AnimationName()
	if name == c.currentAnimation {
		return
	}
	c.currentAnimation = name
	if c.sprite != nil {
		c.sprite.Play(name)
	}
}
