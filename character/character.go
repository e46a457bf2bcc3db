// Package character implements the Sonic-style character: a state machine
// with slope-aware ground physics, air physics and six collision sensors.
package character

import (
	"math"

	"github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/mode"
	"github.com/lmsonic/sonicmaker/sensor"
	"github.com/lmsonic/sonicmaker/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Action is a logical input the character reacts to.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionJump
	ActionRoll
	ActionCount
)

// Input answers button queries for the current tick.
type Input interface {
	IsPressed(a Action) bool
	IsJustPressed(a Action) bool
}

// Sprite plays the character animations.
type Sprite interface {
	Play(name string)
	SetFlipH(flip bool)
}

// SolidKind tells which registry a SolidRef points into.
type SolidKind int

const (
	SolidNone SolidKind = iota
	SolidSimple
	SolidSloped
)

// SolidRef is a non-owning handle to the solid object the character stands on.
// The zero value means none.
type SolidRef struct {
	Kind SolidKind
	ID   uint64
}

func (r SolidRef) IsZero() bool {
	return r.Kind == SolidNone
}

// SensorID indexes the six sensors.
type SensorID int

const (
	SensorFloorLeft SensorID = iota
	SensorFloorRight
	SensorCeilingLeft
	SensorCeilingRight
	SensorPushLeft
	SensorPushRight
	SensorCount
)

// Character is one simulated player body. Position is the center of the
// collision box, Velocity is in pixels per tick.
type Character struct {
	Config config.CharacterConfig

	Position dmath.Vec2
	Velocity dmath.Vec2
	// Rotation is the visual sprite rotation in radians.
	Rotation float64
	ZIndex   int

	// OnDie is called when the character is hurt without rings or crushed.
	OnDie func()
	// OnRingsChanged is called with the new ring count.
	OnRingsChanged func(rings int)

	state       State
	grounded    bool
	groundSpeed float64
	groundAngle float64
	facingLeft  bool

	widthRadius  float64
	heightRadius float64
	pushRadius   float64
	mask         uint32

	controlLock      int
	invulnerability  int
	regatherRings    int
	springBounce     int
	instaShield      int
	skidDirection    float64
	hasJumped        bool
	hasReleasedJump  bool
	rings            int
	standingOn       SolidRef
	currentAnimation string

	dropDash        ChargeState
	peelOut         ChargeState
	spindashCD      ChargeState
	spindashGenesis GenesisSpindash

	sensors [SensorCount]*sensor.Sensor
	input   Input
	sprite  Sprite
}

// New creates a grounded, idle character. rc may be nil, in which case the
// sensors never detect anything.
func New(cfg config.CharacterConfig, rc sensor.Raycaster) *Character {
	c := &Character{
		Config:          cfg,
		grounded:        true,
		widthRadius:     cfg.WidthRadius,
		heightRadius:    cfg.HeightRadius,
		pushRadius:      cfg.PushRadius,
		mask:            1,
		dropDash:        NotCharged{},
		peelOut:         NotCharged{},
		spindashCD:      NotCharged{},
		spindashGenesis: GenesisIdle{},
	}
	if rc != nil {
		for i := range c.sensors {
			c.sensors[i] = sensor.New(gamemath.Down, c.mask, rc)
		}
	}
	c.placeSensors()
	return c
}

func (c *Character) SetInput(in Input) {
	c.input = in
}

func (c *Character) SetSprite(s Sprite) {
	c.sprite = s
	c.currentAnimation = ""
	c.refreshAnimation()
	if s != nil {
		s.SetFlipH(c.facingLeft)
	}
}

// Step advances the character by one physics tick. dt is the frame time in
// seconds and is only used when FixDelta is off.
func (c *Character) Step(dt float64) {
	delta := 1.0
	if !c.Config.FixDelta {
		delta = dt * 60
	}

	if c.grounded {
		c.stepGrounded(delta)
	} else {
		c.stepAirborne(delta)
	}

	if c.invulnerability > 0 {
		c.invulnerability--
	}
	if c.regatherRings > 0 {
		c.regatherRings--
	}
	c.refreshAnimation()
}

func (c *Character) pressed(a Action) bool {
	return c.input != nil && c.input.IsPressed(a)
}

func (c *Character) justPressed(a Action) bool {
	return c.input != nil && c.input.IsJustPressed(a)
}

// Holds reports whether the action is held this tick.
func (c *Character) Holds(a Action) bool {
	return c.pressed(a)
}

func (c *Character) State() State {
	return c.state
}

// SetState switches state, resizing the collision box when entering or
// leaving a ball state while keeping the feet in place.
func (c *Character) SetState(s State) {
	if c.state == Hurt && s != Hurt {
		c.invulnerability = invulnerableTicks
	}
	wasBall, isBall := c.state.IsBall(), s.IsBall()
	if s == Skidding && c.state != Skidding {
		c.skidDirection = gamemath.Sign(c.groundSpeed)
	}
	c.state = s
	if !s.isCharging() {
		c.resetGroundCharges()
	}

	switch {
	case isBall && !wasBall:
		c.setRadii(c.Config.BallWidthRadius, c.Config.BallHeightRadius)
	case wasBall && !isBall:
		c.setRadii(c.Config.WidthRadius, c.Config.HeightRadius)
	}
	c.refreshAnimation()
}

func (c *Character) setRadii(width, height float64) {
	shift := c.heightRadius - height
	c.widthRadius = width
	c.heightRadius = height
	down := c.currentMode().DownVec()
	c.Position.X += down.X * shift
	c.Position.Y += down.Y * shift
}

func (c *Character) IsGrounded() bool {
	return c.grounded
}

func (c *Character) SetGrounded(grounded bool) {
	c.grounded = grounded
}

func (c *Character) GroundSpeed() float64 {
	return c.groundSpeed
}

func (c *Character) SetGroundSpeed(speed float64) {
	c.groundSpeed = speed
}

// GroundAngle is in radians, in [0, 2π).
func (c *Character) GroundAngle() float64 {
	return c.groundAngle
}

// SetGroundAngle normalizes angle into [0, 2π) and rotates the sprite to match.
func (c *Character) SetGroundAngle(angle float64) {
	c.groundAngle = gamemath.NormalizeAngle(angle)
	if c.state.IsRolling() {
		return
	}
	rotation := c.groundAngle
	if rotation < math.Pi {
		rotation += gamemath.TwoPi
	}
	c.Rotation = gamemath.TwoPi - rotation
}

func (c *Character) setGroundAngleFromResult(r sensor.DetectionResult) {
	if r.Snap {
		c.SetGroundAngle(gamemath.SnapAngle(r.Angle))
		return
	}
	c.SetGroundAngle(r.Angle)
}

func (c *Character) FacingLeft() bool {
	return c.facingLeft
}

// SetFacingLeft is ignored while skidding.
func (c *Character) SetFacingLeft(left bool) {
	if c.state == Skidding {
		return
	}
	c.facingLeft = left
	if c.sprite != nil {
		c.sprite.SetFlipH(left)
	}
}

func (c *Character) facing() float64 {
	if c.facingLeft {
		return -1
	}
	return 1
}

func (c *Character) WidthRadius() float64 {
	return c.widthRadius
}

func (c *Character) HeightRadius() float64 {
	return c.heightRadius
}

func (c *Character) PushRadius() float64 {
	return c.pushRadius
}

func (c *Character) CollisionMask() uint32 {
	return c.mask
}

func (c *Character) SetCollisionMask(mask uint32) {
	c.mask = mask
	for _, s := range c.sensors {
		if s != nil {
			s.Mask = mask
		}
	}
}

func (c *Character) ControlLock() int {
	return c.controlLock
}

func (c *Character) SetControlLock(ticks int) {
	c.controlLock = ticks
}

func (c *Character) HasJumped() bool {
	return c.hasJumped
}

func (c *Character) DropDash() ChargeState {
	return c.dropDash
}

func (c *Character) PeelOut() ChargeState {
	return c.peelOut
}

func (c *Character) SpindashCD() ChargeState {
	return c.spindashCD
}

func (c *Character) SpindashGenesis() GenesisSpindash {
	return c.spindashGenesis
}

// StandingOn returns the solid object the character is standing on.
func (c *Character) StandingOn() SolidRef {
	return c.standingOn
}

// StandOn registers ref as the floor and runs the landing transitions.
func (c *Character) StandOn(ref SolidRef) {
	c.standingOn = ref
	c.Land()
	c.hasJumped = false
}

// ClearStandingOn forgets the solid object and detaches from the ground.
func (c *Character) ClearStandingOn() {
	c.standingOn = SolidRef{}
	c.SetGrounded(false)
}

// Hitbox returns the size of the damage box, swapped on walls.
func (c *Character) Hitbox() (w, h float64) {
	if c.instaShield > 0 {
		return instaShieldHitbox, instaShieldHitbox
	}
	w, h = 15, c.heightRadius*2-3
	if c.currentMode().IsSideways() {
		return h, w
	}
	return w, h
}

// IsAttacking reports whether touching an enemy damages it.
func (c *Character) IsAttacking() bool {
	return c.state.IsAttacking() || c.instaShield > 0
}

// currentMode is the collision mode for floor and ceiling sensors.
func (c *Character) currentMode() mode.Mode {
	if !c.grounded {
		return mode.Floor
	}
	return mode.FromGroundAngle(c.groundAngle)
}

// currentWallMode is the collision mode for the push sensors.
func (c *Character) currentWallMode() mode.Mode {
	if !c.grounded {
		return mode.Floor
	}
	return mode.FromWallAngle(c.groundAngle)
}

// Mode is the current collision mode.
func (c *Character) Mode() mode.Mode {
	return c.currentMode()
}
