package character

import (
	"math"

	"github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/mode"
	"github.com/lmsonic/sonicmaker/shared/gamemath"
)

const (
	steepSlopeFactor = 0.05078125
	skidSpeed        = 4.0
	turnAroundSpeed  = 0.5
	unrollSpeed      = 0.5
	slipSpeed        = 2.5
	slipLockTicks    = 30
)

func (c *Character) stepGrounded(delta float64) {
	c.checkUnrolling()

	consumed := false
	if c.Config.SpindashStyle != config.SpindashNone {
		consumed = c.handleSpindash()
	}
	if c.Config.SuperPeelOut && !consumed {
		consumed = c.handlePeelOut()
	}

	c.applySlopeFactor(delta)

	if !consumed && c.handleJump() {
		c.updatePosition(delta)
		return
	}

	if !c.holdsStill() {
		c.groundAccelerate(delta)
	}
	c.applyFriction(delta)
	c.handleCrouchAndLookUp()
	c.checkWalls()
	c.updateAnimation()

	if c.standingOn.IsZero() {
		c.checkFloor()
	}

	c.checkRolling()
	c.projectVelocity()
	c.updatePosition(delta)

	if c.grounded {
		c.handleSlipping()
	}
}

// holdsStill reports the states where directional input does not move the character.
func (c *Character) holdsStill() bool {
	return c.state == Crouch || c.state == LookUp || c.state.isCharging()
}

func (c *Character) checkUnrolling() {
	if c.state.IsRolling() && math.Abs(c.groundSpeed) < unrollSpeed {
		c.SetState(Idle)
	}
}

func (c *Character) currentSlopeFactor() float64 {
	if !c.state.IsRolling() {
		return c.Config.SlopeFactorNormal
	}
	uphill := gamemath.Sign(c.groundSpeed) == gamemath.Sign(math.Sin(c.groundAngle))
	if uphill {
		return c.Config.SlopeFactorRollup
	}
	return c.Config.SlopeFactorRolldown
}

func (c *Character) currentFriction() float64 {
	if c.state.IsRolling() {
		return c.Config.RollFriction
	}
	return c.Config.Friction
}

func (c *Character) currentDeceleration() float64 {
	if c.state.IsRolling() {
		return c.Config.RollDeceleration
	}
	return c.Config.Deceleration
}

// applySlopeFactor slows the character uphill and speeds it up downhill.
func (c *Character) applySlopeFactor(delta float64) {
	if c.currentMode() == mode.Ceiling || c.state.isCharging() {
		return
	}
	factor := c.currentSlopeFactor() * math.Sin(c.groundAngle)
	if c.groundSpeed != 0 || c.state.IsRolling() || math.Abs(factor) >= steepSlopeFactor {
		c.groundSpeed -= factor * delta
	}
}

func (c *Character) handleJump() bool {
	if c.state.isCharging() || !c.justPressed(ActionJump) || !c.canJump() {
		return false
	}
	c.projectVelocity()
	sin, cos := math.Sincos(c.groundAngle)
	c.Velocity.X -= c.Config.JumpForce * sin
	c.Velocity.Y -= c.Config.JumpForce * cos

	c.SetGrounded(false)
	c.SetState(JumpBall)
	c.hasJumped = true
	c.hasReleasedJump = false
	c.standingOn = SolidRef{}
	return true
}

func (c *Character) groundAccelerate(delta float64) {
	if c.controlLock > 0 {
		return
	}
	rolling := c.state.IsRolling()
	left, right := c.pressed(ActionLeft), c.pressed(ActionRight)

	switch {
	case left && !right:
		if c.groundSpeed > 0 {
			c.turnAround(-1, delta)
		} else if !rolling && c.groundSpeed > -c.Config.TopSpeed {
			c.groundSpeed = math.Max(c.groundSpeed-c.Config.Acceleration*delta, -c.Config.TopSpeed)
		}
		c.SetFacingLeft(true)
	case right && !left:
		if c.groundSpeed < 0 {
			c.turnAround(1, delta)
		} else if !rolling && c.groundSpeed < c.Config.TopSpeed {
			c.groundSpeed = math.Min(c.groundSpeed+c.Config.Acceleration*delta, c.Config.TopSpeed)
		}
		c.SetFacingLeft(false)
	}

	if rolling {
		c.groundSpeed = gamemath.ClampSpeed(c.groundSpeed, c.Config.RollTopSpeed)
	}
}

// turnAround decelerates against the current motion. dir is the held direction.
func (c *Character) turnAround(dir, delta float64) {
	rolling := c.state.IsRolling()
	c.groundSpeed += dir * c.currentDeceleration() * delta

	if c.state == Pushing {
		c.SetState(Idle)
	}
	if !rolling && -dir*c.groundSpeed > skidSpeed {
		c.SetState(Skidding)
	}

	threshold := (c.Config.RollDeceleration + c.Config.RollFriction) * delta
	crossed := dir*c.groundSpeed >= 0
	if crossed || (rolling && math.Abs(c.groundSpeed) < threshold) {
		c.groundSpeed = dir * turnAroundSpeed
	}
}

// applyFriction runs when rolling or when no direction is held.
func (c *Character) applyFriction(delta float64) {
	held := c.pressed(ActionLeft) || c.pressed(ActionRight)
	if c.state.IsRolling() || !held || c.holdsStill() {
		c.groundSpeed = gamemath.ApplyFriction(c.groundSpeed, c.currentFriction()*delta)
	}
}

func (c *Character) handleCrouchAndLookUp() {
	if c.state.isCharging() {
		return
	}
	roll, up := c.pressed(ActionRoll), c.pressed(ActionUp)

	switch {
	case roll && !c.state.IsRolling() && math.Abs(c.groundSpeed) <= 1:
		c.groundSpeed = 0
		if c.state != Crouch {
			c.SetState(Crouch)
		}
	case c.state == Crouch && !roll:
		c.SetState(Idle)
	case up && c.groundSpeed == 0 && c.state != Crouch:
		if c.state != LookUp {
			c.SetState(LookUp)
		}
	case c.state == LookUp && (!up || c.groundSpeed != 0):
		c.SetState(Idle)
	}
}

func (c *Character) checkWalls() {
	if !c.shouldActivateWallSensors() {
		return
	}
	m := c.currentMode()
	switch {
	case c.groundSpeed > 0:
		if r, ok := c.wallCheck(SensorPushRight, true); ok && r.Distance < 0 {
			right := m.RightVec()
			c.Position.X += right.X * r.Distance
			c.Position.Y += right.Y * r.Distance
			c.groundSpeed = 0
			if c.pressed(ActionRight) && !c.state.IsBall() {
				c.SetState(Pushing)
			}
		}
	case c.groundSpeed < 0:
		if r, ok := c.wallCheck(SensorPushLeft, true); ok && r.Distance < 0 {
			left := m.LeftVec()
			c.Position.X += left.X * r.Distance
			c.Position.Y += left.Y * r.Distance
			c.groundSpeed = 0
			if c.pressed(ActionLeft) && !c.state.IsBall() {
				c.SetState(Pushing)
			}
		}
	}
}

func (c *Character) checkFloor() {
	r, ok := c.groundCheck(false)
	if !ok || !c.shouldSnapToFloor(r) {
		c.SetGrounded(false)
		return
	}
	c.snapToFloor(r.Distance)
	c.setGroundAngleFromResult(r)
}

func (c *Character) checkRolling() {
	if c.grounded && !c.state.IsRolling() && !c.state.isCharging() &&
		c.pressed(ActionRoll) && math.Abs(c.groundSpeed) > 1 {
		c.SetState(RollingBall)
	}
}

// projectVelocity turns the ground speed into a velocity along the surface.
func (c *Character) projectVelocity() {
	sin, cos := math.Sincos(c.groundAngle)
	c.Velocity.X = c.groundSpeed * cos
	c.Velocity.Y = -c.groundSpeed * sin
}

func (c *Character) updatePosition(delta float64) {
	c.Position.X += c.Velocity.X * delta
	c.Position.Y += c.Velocity.Y * delta
}

// handleSlipping uses the Sonic 3 slip and fall bands.
func (c *Character) handleSlipping() {
	if c.controlLock > 0 {
		c.controlLock--
		return
	}
	if math.Abs(c.groundSpeed) >= slipSpeed || !gamemath.InDegrees(c.groundAngle, 35, 326) {
		return
	}
	c.controlLock = slipLockTicks
	if gamemath.InDegrees(c.groundAngle, 69, 293) {
		c.SetGrounded(false)
		c.groundSpeed = 0
		return
	}
	if c.groundAngle < math.Pi {
		c.groundSpeed -= 0.5
	} else {
		c.groundSpeed += 0.5
	}
}
