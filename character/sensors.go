package character

import (
	"math"

	"github.com/lmsonic/sonicmaker/mode"
	"github.com/lmsonic/sonicmaker/sensor"
	"github.com/lmsonic/sonicmaker/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Probe is a sensor snapshot used by debug overlays.
type Probe struct {
	ID        SensorID
	Position  dmath.Vec2
	Direction gamemath.Direction
	Result    sensor.DetectionResult
	Hit       bool
}

// Probes places the sensors at the current position and returns them along
// with their last readings.
func (c *Character) Probes() []Probe {
	c.placeSensors()
	probes := make([]Probe, 0, SensorCount)
	for id, s := range c.sensors {
		if s == nil {
			continue
		}
		result, hit := s.Last()
		probes = append(probes, Probe{
			ID:        SensorID(id),
			Position:  s.Position,
			Direction: s.Direction,
			Result:    result,
			Hit:       hit,
		})
	}
	return probes
}

// placeSensors orients the floor and ceiling sensors to the ground mode and
// the push sensors to the wall mode.
func (c *Character) placeSensors() {
	m := c.currentMode()
	angle := m.Angle()
	w, h := c.widthRadius, c.heightRadius

	c.placeSensor(SensorFloorLeft, dmath.Vec2{X: -w, Y: h}, angle, m.Down())
	c.placeSensor(SensorFloorRight, dmath.Vec2{X: w, Y: h}, angle, m.Down())
	c.placeSensor(SensorCeilingLeft, dmath.Vec2{X: -w, Y: -h}, angle, m.Up())
	c.placeSensor(SensorCeilingRight, dmath.Vec2{X: w, Y: -h}, angle, m.Up())

	wm := c.currentWallMode()
	pushY := 0.0
	if c.grounded && c.groundAngle == 0 {
		pushY = 8
	}
	c.placeSensor(SensorPushLeft, dmath.Vec2{X: -c.pushRadius, Y: pushY}, wm.Angle(), wm.Left())
	c.placeSensor(SensorPushRight, dmath.Vec2{X: c.pushRadius, Y: pushY}, wm.Angle(), wm.Right())
}

func (c *Character) placeSensor(id SensorID, offset dmath.Vec2, angle float64, dir gamemath.Direction) {
	s := c.sensors[id]
	if s == nil {
		return
	}
	offset = gamemath.Rotate(offset, angle)
	s.Position = dmath.Vec2{X: c.Position.X + offset.X, Y: c.Position.Y + offset.Y}
	s.Direction = dir
	s.Mask = c.mask
}

// sense reads the given sensors, optionally moved ahead by the velocity.
func (c *Character) sense(withVelocity bool, ids ...SensorID) []sensor.DetectionResult {
	c.placeSensors()
	results := make([]sensor.DetectionResult, 0, len(ids))
	for _, id := range ids {
		s := c.sensors[id]
		if s == nil {
			continue
		}
		if withVelocity {
			s.Position.X += c.Velocity.X
			s.Position.Y += c.Velocity.Y
		}
		if r, ok := s.Sense(); ok {
			results = append(results, r)
		}
	}
	return results
}

func closest(results []sensor.DetectionResult) (sensor.DetectionResult, bool) {
	if len(results) == 0 {
		return sensor.DetectionResult{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best, true
}

func (c *Character) groundCheck(withVelocity bool) (sensor.DetectionResult, bool) {
	return closest(c.sense(withVelocity, SensorFloorLeft, SensorFloorRight))
}

// ceilingCheck ignores top-solid surfaces, which only block from above.
func (c *Character) ceilingCheck(withVelocity bool) (sensor.DetectionResult, bool) {
	return closest(fullySolid(c.sense(withVelocity, SensorCeilingLeft, SensorCeilingRight)))
}

func (c *Character) wallCheck(id SensorID, withVelocity bool) (sensor.DetectionResult, bool) {
	return closest(fullySolid(c.sense(withVelocity, id)))
}

func fullySolid(results []sensor.DetectionResult) []sensor.DetectionResult {
	kept := results[:0]
	for _, r := range results {
		if r.Solidity == sensor.Fully {
			kept = append(kept, r)
		}
	}
	return kept
}

// canJump needs at least 6px of headroom.
func (c *Character) canJump() bool {
	if r, ok := c.ceilingCheck(false); ok {
		return r.Distance >= 6
	}
	return true
}

// shouldSnapToFloor uses the Sonic 2 speed-scaled tolerance.
func (c *Character) shouldSnapToFloor(r sensor.DetectionResult) bool {
	speed := math.Abs(c.Velocity.X)
	if mode.FromGroundAngle(r.Angle).IsSideways() {
		speed = math.Abs(c.Velocity.Y)
	}
	return r.Distance <= math.Min(speed+4, 14) && r.Distance >= -14
}

func (c *Character) snapToFloor(distance float64) {
	down := c.currentMode().DownVec()
	c.Position.X += down.X * distance
	c.Position.Y += down.Y * distance
}

// shouldActivateWallSensors is true on shallow floors and exact quarter angles.
func (c *Character) shouldActivateWallSensors() bool {
	a := c.groundAngle
	return gamemath.InDegrees(a, 0, 90) ||
		gamemath.InDegrees(a, 270, 360) ||
		math.Mod(a, math.Pi/2) == 0
}
