package character

import (
	"math"

	"github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/sensor"
	"github.com/lmsonic/sonicmaker/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	maxFallSpeed     = 16.0
	jumpCutSpeed     = -4.0
	airDragThreshold = -4.0
	// Sprite rotation returns to upright by this much every airborne tick.
	rotationGlide = 2.8125 * math.Pi / 180
)

func (c *Character) stepAirborne(delta float64) {
	c.handleMidAirAction()

	if c.hasJumped && !c.pressed(ActionJump) && c.Velocity.Y < jumpCutSpeed {
		c.Velocity.Y = jumpCutSpeed
	}

	if c.state != Hurt {
		c.airAccelerate(delta)
	}
	if c.Velocity.Y < 0 && c.Velocity.Y > airDragThreshold {
		c.Velocity.X -= math.Floor(c.Velocity.X/0.125) / 256 * delta
	}

	if c.springBounce > 0 {
		c.springBounce--
		if c.springBounce == 0 && c.state == SpringBounce {
			c.SetState(Idle)
		}
	}
	c.updateAnimation()

	c.updatePosition(delta)
	gravity := c.Config.Gravity
	if c.state == Hurt {
		gravity = c.Config.HurtGravity
	}
	c.Velocity.Y = math.Min(c.Velocity.Y+gravity*delta, maxFallSpeed)

	if c.state.IsBall() {
		c.Rotation = 0
	} else {
		c.Rotation = gamemath.Approach(c.Rotation, 0, rotationGlide*delta)
	}

	dir := gamemath.MotionDirection(c.Velocity)
	c.checkAirWalls(dir)
	if dir != gamemath.Down {
		c.checkAirCeiling(dir)
	}
	if !c.grounded && dir != gamemath.Up {
		c.checkAirFloor(dir)
	}
}

func (c *Character) handleMidAirAction() {
	if c.instaShield > 0 {
		c.instaShield--
	}
	if c.state != JumpBall {
		return
	}
	switch c.Config.MidAirAction {
	case config.MidAirDropDash:
		if !c.pressed(ActionJump) {
			c.hasReleasedJump = true
			c.dropDash = NotCharged{}
			return
		}
		if !c.hasReleasedJump {
			return
		}
		if _, idle := c.dropDash.(NotCharged); idle {
			c.dropDash = Charging{Timer: dropDashChargeTicks}
			return
		}
		c.dropDash = chargeTick(c.dropDash)
	case config.MidAirInstaShield:
		if c.justPressed(ActionJump) && c.instaShield == 0 {
			c.instaShield = instaShieldTicks
		}
	}
}

func (c *Character) airAccelerate(delta float64) {
	top := c.Config.TopSpeed
	accel := c.Config.AirAcceleration * delta
	left, right := c.pressed(ActionLeft), c.pressed(ActionRight)

	switch {
	case left && !right:
		if c.Velocity.X > -top {
			c.Velocity.X = math.Max(c.Velocity.X-accel, -top)
		}
		c.SetFacingLeft(true)
	case right && !left:
		if c.Velocity.X < top {
			c.Velocity.X = math.Min(c.Velocity.X+accel, top)
		}
		c.SetFacingLeft(false)
	}
}

func (c *Character) checkAirWalls(dir gamemath.Direction) {
	if dir != gamemath.Right {
		if r, ok := c.wallCheck(SensorPushLeft, false); ok && r.Distance < 0 {
			c.Position.X -= r.Distance
			c.Velocity.X = 0
		}
	}
	if dir != gamemath.Left {
		if r, ok := c.wallCheck(SensorPushRight, false); ok && r.Distance < 0 {
			c.Position.X += r.Distance
			c.Velocity.X = 0
		}
	}
}

func (c *Character) checkAirCeiling(dir gamemath.Direction) {
	r, ok := c.ceilingCheck(false)
	if !ok || r.Distance >= 0 {
		return
	}
	c.Position.Y -= r.Distance

	if dir == gamemath.Up && gamemath.InDegrees(r.Angle, 91, 225) {
		c.setGroundAngleFromResult(r)
		c.groundSpeed = c.Velocity.Y * -gamemath.Sign(math.Sin(c.groundAngle))
		c.Velocity = dmath.Vec2{}
		c.SetGrounded(true)
		c.Land()
		c.hasJumped = false
		return
	}
	if c.Velocity.Y < 0 {
		c.Velocity.Y = 0
	}
}

func (c *Character) checkAirFloor(dir gamemath.Direction) {
	results := c.sense(false, SensorFloorLeft, SensorFloorRight)
	r, ok := closest(results)
	if !ok || r.Distance >= 0 {
		return
	}

	landed := false
	switch dir {
	case gamemath.Down:
		for _, res := range results {
			if res.Distance >= -(c.Velocity.Y + 8) {
				landed = true
				break
			}
		}
	case gamemath.Left, gamemath.Right:
		landed = c.Velocity.Y >= 0
	}
	if landed {
		c.landOnFloor(r, dir)
	}
}

func (c *Character) landOnFloor(r sensor.DetectionResult, dir gamemath.Direction) {
	c.Position.Y += r.Distance
	c.setGroundAngleFromResult(r)
	c.SetGrounded(true)
	c.hasJumped = false

	theta := c.groundAngle
	horizontal := dir.IsHorizontal()
	downhill := -gamemath.Sign(math.Sin(theta))

	switch {
	case c.state == Hurt:
		c.groundSpeed = 0
	case gamemath.InDegrees(theta, 0, 23) || gamemath.InDegrees(theta, 339, 360):
		c.groundSpeed = c.Velocity.X
	case gamemath.InDegrees(theta, 23, 45) || gamemath.InDegrees(theta, 316, 339):
		if horizontal {
			c.groundSpeed = c.Velocity.X
		} else {
			c.groundSpeed = c.Velocity.Y * 0.5 * downhill
		}
	default:
		if horizontal {
			c.groundSpeed = c.Velocity.X
		} else {
			c.groundSpeed = c.Velocity.Y * downhill
		}
	}
	c.Velocity = dmath.Vec2{}
	c.Land()
}

// Land runs the transitions shared by every way of touching ground: floor,
// ceiling and solid objects.
func (c *Character) Land() {
	switch c.state {
	case JumpBall, SpringBounce, Hurt:
		c.SetState(Idle)
		c.updateAnimation()
	}
	if _, charged := c.dropDash.(Charged); charged {
		c.releaseDropDash()
	}
	c.dropDash = NotCharged{}
	c.resetGroundCharges()
	c.hasReleasedJump = false
	c.instaShield = 0
	c.springBounce = 0
}

func (c *Character) releaseDropDash() {
	dir := c.facing()
	speed := c.Config.DropDashSpeed
	forwards := c.groundSpeed == 0 || gamemath.Sign(c.groundSpeed) == dir

	switch {
	case forwards:
		c.groundSpeed = c.groundSpeed/4 + dir*speed
	case c.groundAngle == 0:
		c.groundSpeed = dir * speed
	default:
		c.groundSpeed = c.groundSpeed/2 + dir*speed
	}
	c.groundSpeed = gamemath.ClampSpeed(c.groundSpeed, c.Config.DropDashMaxSpeed)
	c.SetState(RollingBall)
}
