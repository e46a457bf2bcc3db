package character

import (
	"math"

	"github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/shared/gamemath"
)

// handleSpindash runs the configured spindash. It returns true when the jump
// press of this tick was used by the move.
func (c *Character) handleSpindash() bool {
	switch c.Config.SpindashStyle {
	case config.SpindashGenesis:
		return c.genesisSpindash()
	case config.SpindashCD:
		return c.cdSpindash()
	}
	return false
}

// resetGroundCharges drops any spindash or peel-out charge. A charge only
// survives while the character stays in the matching charging state.
func (c *Character) resetGroundCharges() {
	c.spindashGenesis = GenesisIdle{}
	c.spindashCD = NotCharged{}
	c.peelOut = NotCharged{}
}

func (c *Character) startCharging(s State) {
	c.groundSpeed = 0
	c.SetState(s)
}

func (c *Character) genesisSpindash() bool {
	switch s := c.spindashGenesis.(type) {
	case GenesisIdle:
		if c.state != Crouch || !c.justPressed(ActionJump) {
			return false
		}
		c.spindashGenesis = GenesisRevving{}
		c.startCharging(Spindash)
		return true
	case GenesisRevving:
		if c.state != Spindash {
			c.spindashGenesis = GenesisIdle{}
			return false
		}
		if !c.pressed(ActionRoll) {
			c.spindashGenesis = GenesisIdle{}
			c.groundSpeed = c.facing() * (spindashBaseSpeed + math.Floor(s.Charge/2))
			c.SetState(RollingBall)
			return true
		}
		s.Charge -= math.Floor(s.Charge/0.125) / 256
		if c.justPressed(ActionJump) {
			s.Charge = math.Min(s.Charge+spindashTapCharge, maxSpindashCharge)
		}
		c.spindashGenesis = s
		c.groundSpeed = 0
		return true
	}
	return false
}

func (c *Character) cdSpindash() bool {
	if _, idle := c.spindashCD.(NotCharged); idle {
		if c.state != Crouch || !c.justPressed(ActionJump) {
			return false
		}
		c.spindashCD = Charging{Timer: cdSpindashChargeTicks}
		c.startCharging(Spindash)
		return true
	}
	if c.state != Spindash {
		c.spindashCD = NotCharged{}
		return false
	}

	if c.pressed(ActionRoll) {
		c.spindashCD = chargeTick(c.spindashCD)
		c.groundSpeed = 0
		return true
	}
	speed, ok := releaseSpeed(c.spindashCD, cdSpindashChargeTicks, c.Config.VariableCDSpindash)
	c.spindashCD = NotCharged{}
	if !ok {
		c.SetState(Idle)
		return true
	}
	c.groundSpeed = c.facing() * speed
	c.SetState(RollingBall)
	return true
}

func (c *Character) handlePeelOut() bool {
	if _, idle := c.peelOut.(NotCharged); idle {
		if c.state != LookUp || !c.justPressed(ActionJump) {
			return false
		}
		c.peelOut = Charging{Timer: peelOutChargeTicks}
		c.startCharging(SuperPeelOut)
		return true
	}
	if c.state != SuperPeelOut {
		c.peelOut = NotCharged{}
		return false
	}

	if c.pressed(ActionUp) {
		c.peelOut = chargeTick(c.peelOut)
		c.groundSpeed = 0
		return true
	}
	speed, ok := releaseSpeed(c.peelOut, peelOutChargeTicks, c.Config.VariablePeelOut)
	c.peelOut = NotCharged{}
	if !ok {
		c.SetState(Idle)
		return true
	}
	c.groundSpeed = c.facing() * speed
	c.SetState(FullMotion)
	return true
}

// releaseSpeed is the launch speed of a timer-driven charge. An early release
// only launches when variable is set, scaled by the time already charged.
func releaseSpeed(s ChargeState, ticks int, variable bool) (float64, bool) {
	switch s := s.(type) {
	case Charged:
		return chargedDashSpeed, true
	case Charging:
		if !variable {
			return 0, false
		}
		return gamemath.Lerp(chargedDashSpeed, 0, float64(s.Timer)/float64(ticks)), true
	}
	return 0, false
}
