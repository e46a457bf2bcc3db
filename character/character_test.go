package character

import (
	"math"
	"testing"

	"github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/sensor"
	"github.com/lmsonic/sonicmaker/shared/gamemath"
	"github.com/lmsonic/sonicmaker/terrain"
	dmath "github.com/yohamta/donburi/features/math"
)

type scriptedInput struct {
	pressed [ActionCount]bool
	just    [ActionCount]bool
}

func (s *scriptedInput) IsPressed(a Action) bool {
	return s.pressed[a]
}

func (s *scriptedInput) IsJustPressed(a Action) bool {
	return s.just[a]
}

// hold sets the held buttons for the next tick; press also marks them just pressed.
func (s *scriptedInput) hold(press []Action, held ...Action) {
	s.pressed = [ActionCount]bool{}
	s.just = [ActionCount]bool{}
	for _, a := range held {
		s.pressed[a] = true
	}
	for _, a := range press {
		s.pressed[a] = true
		s.just[a] = true
	}
}

type recordingSprite struct {
	played []string
	flip   bool
}

func (r *recordingSprite) Play(name string) {
	r.played = append(r.played, name)
}

func (r *recordingSprite) SetFlipH(flip bool) {
	r.flip = flip
}

// newOnFloor places a character standing on a long flat floor whose surface is y=160.
func newOnFloor(cfg config.CharacterConfig) (*Character, *scriptedInput) {
	ter := terrain.New(3200, 400)
	for col := 0; col < 200; col++ {
		ter.AddTile(terrain.Tile{Col: col, Row: 10, Layers: 1})
	}
	c := New(cfg, ter)
	c.Position = dmath.Vec2{X: 100, Y: 160 - cfg.HeightRadius}
	in := &scriptedInput{}
	c.SetInput(in)
	return c, in
}

func TestAccelerationReachesTopSpeed(t *testing.T) {
	c, in := newOnFloor(config.DefaultCharacter())
	in.hold(nil, ActionRight)

	for tick := 1; tick <= 140; tick++ {
		c.Step(1.0 / 60)
		switch tick {
		case 1:
			if c.State() != StartMotion {
				t.Errorf("expected StartMotion after tick 1, got %v", c.State())
			}
		case 127:
			if c.State() != StartMotion {
				t.Errorf("expected StartMotion at tick 127, got %v", c.State())
			}
		case 128:
			if c.GroundSpeed() != 6 {
				t.Errorf("expected ground speed 6 at tick 128, got %f", c.GroundSpeed())
			}
			if c.State() != FullMotion {
				t.Errorf("expected FullMotion at tick 128, got %v", c.State())
			}
		}
	}
	if c.GroundSpeed() != 6 {
		t.Errorf("expected ground speed clamped at 6, got %f", c.GroundSpeed())
	}
	if !c.IsGrounded() {
		t.Error("expected character to stay grounded on flat floor")
	}
}

func TestFrictionStopsCharacter(t *testing.T) {
	c, in := newOnFloor(config.DefaultCharacter())
	c.SetGroundSpeed(1)
	in.hold(nil)

	for i := 0; i < 30; i++ {
		c.Step(1.0 / 60)
	}
	if c.GroundSpeed() != 0 {
		t.Errorf("expected friction to stop the character, got %f", c.GroundSpeed())
	}
	if c.State() != Idle {
		t.Errorf("expected Idle, got %v", c.State())
	}
}

func TestJumpApex(t *testing.T) {
	c, in := newOnFloor(config.DefaultCharacter())
	in.hold([]Action{ActionJump})
	c.Step(1.0 / 60)

	if c.Velocity.X != 0 || c.Velocity.Y != -6.5 {
		t.Errorf("expected velocity (0, -6.5) after jumping, got %v", c.Velocity)
	}
	if c.IsGrounded() || c.State() != JumpBall || !c.HasJumped() {
		t.Errorf("expected airborne JumpBall, got grounded=%v state=%v", c.IsGrounded(), c.State())
	}

	in.hold(nil, ActionJump)
	ticks := 0
	for c.Velocity.Y < 0 && ticks < 100 {
		c.Step(1.0 / 60)
		ticks++
	}
	if ticks != 30 {
		t.Errorf("expected upward motion to end after 30 ticks, got %d", ticks)
	}
}

func TestJumpReleaseCutsVelocity(t *testing.T) {
	c, in := newOnFloor(config.DefaultCharacter())
	in.hold([]Action{ActionJump})
	c.Step(1.0 / 60)

	in.hold(nil)
	c.Step(1.0 / 60)
	want := -4 + c.Config.Gravity
	if c.Velocity.Y != want {
		t.Errorf("expected velocity %f after releasing jump, got %f", want, c.Velocity.Y)
	}
}

func TestFlatLandingKeepsHorizontalSpeed(t *testing.T) {
	c, _ := newOnFloor(config.DefaultCharacter())
	c.SetGrounded(false)
	c.SetState(JumpBall)
	c.Position = dmath.Vec2{X: 100, Y: 145}
	c.Velocity = dmath.Vec2{X: 3, Y: 2}

	c.Step(1.0 / 60)

	if !c.IsGrounded() {
		t.Fatal("expected the character to land")
	}
	if c.GroundSpeed() != 3 {
		t.Errorf("expected ground speed 3, got %f", c.GroundSpeed())
	}
	if c.GroundAngle() != 0 {
		t.Errorf("expected flat ground angle, got %f", c.GroundAngle())
	}
	if c.State() == JumpBall {
		t.Error("expected landing to leave JumpBall")
	}
	if feet := c.Position.Y + c.HeightRadius(); feet != 160 {
		t.Errorf("expected feet on the floor at 160, got %f", feet)
	}
}

func TestShouldSnapToFloor(t *testing.T) {
	c := New(config.DefaultCharacter(), nil)

	tests := []struct {
		name     string
		velocity dmath.Vec2
		result   sensor.DetectionResult
		expected bool
	}{
		{"at limit", dmath.Vec2{X: 12}, sensor.DetectionResult{Distance: 14}, true},
		{"past limit", dmath.Vec2{X: 12}, sensor.DetectionResult{Distance: 14.01}, false},
		{"at negative limit", dmath.Vec2{X: 12}, sensor.DetectionResult{Distance: -14}, true},
		{"past negative limit", dmath.Vec2{X: 12}, sensor.DetectionResult{Distance: -14.01}, false},
		{"slow", dmath.Vec2{X: 0}, sensor.DetectionResult{Distance: 4.5}, false},
		{"slow within tolerance", dmath.Vec2{X: 0.5}, sensor.DetectionResult{Distance: 4.5}, true},
		{"sideways uses vertical speed", dmath.Vec2{X: 12, Y: 1}, sensor.DetectionResult{Distance: 6, Angle: math.Pi / 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Velocity = tt.velocity
			if got := c.shouldSnapToFloor(tt.result); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSetGroundAngleNormalizes(t *testing.T) {
	c := New(config.DefaultCharacter(), nil)

	tests := []struct {
		deg      float64
		expected float64
	}{
		{370, 10},
		{-90, 270},
		{360, 0},
		{45, 45},
	}
	for _, tt := range tests {
		c.SetGroundAngle(gamemath.Rad(tt.deg))
		if got := gamemath.Deg(c.GroundAngle()); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("expected %f degrees for %f, got %f", tt.expected, tt.deg, got)
		}
	}
}

func TestBallResizeKeepsFeet(t *testing.T) {
	c := New(config.DefaultCharacter(), nil)
	c.Position = dmath.Vec2{X: 0, Y: 141}

	c.SetState(RollingBall)
	if c.HeightRadius() != 14 || c.WidthRadius() != 7 {
		t.Errorf("expected ball radii 7x14, got %fx%f", c.WidthRadius(), c.HeightRadius())
	}
	if feet := c.Position.Y + c.HeightRadius(); feet != 160 {
		t.Errorf("expected feet at 160, got %f", feet)
	}

	c.SetState(Idle)
	if c.HeightRadius() != 19 || c.Position.Y != 141 {
		t.Errorf("expected standing radius at y=141, got radius %f at y=%f", c.HeightRadius(), c.Position.Y)
	}
}

func TestGenesisSpindash(t *testing.T) {
	cfg := config.DefaultCharacter()
	cfg.SpindashStyle = config.SpindashGenesis
	c, in := newOnFloor(cfg)

	in.hold(nil, ActionRoll)
	c.Step(1.0 / 60)
	if c.State() != Crouch {
		t.Fatalf("expected Crouch, got %v", c.State())
	}

	in.hold([]Action{ActionJump}, ActionRoll)
	c.Step(1.0 / 60)
	if c.State() != Spindash {
		t.Fatalf("expected Spindash, got %v", c.State())
	}

	for i := 0; i < 12; i++ {
		if i%2 == 0 {
			in.hold([]Action{ActionJump}, ActionRoll)
		} else {
			in.hold(nil, ActionRoll)
		}
		c.Step(1.0 / 60)
		revving, ok := c.SpindashGenesis().(GenesisRevving)
		if !ok {
			t.Fatalf("expected revving spindash, got %T", c.SpindashGenesis())
		}
		if revving.Charge > 8 {
			t.Errorf("expected charge at most 8, got %f", revving.Charge)
		}
		if c.GroundSpeed() != 0 {
			t.Errorf("expected no movement while charging, got %f", c.GroundSpeed())
		}
	}

	charge := c.SpindashGenesis().(GenesisRevving).Charge
	if charge <= 0 {
		t.Fatalf("expected positive charge, got %f", charge)
	}

	in.hold(nil)
	c.Step(1.0 / 60)
	want := 8 + math.Floor(charge/2) - cfg.RollFriction
	if c.GroundSpeed() != want {
		t.Errorf("expected ground speed %f, got %f", want, c.GroundSpeed())
	}
	if c.State() != RollingBall {
		t.Errorf("expected RollingBall, got %v", c.State())
	}
	if _, idle := c.SpindashGenesis().(GenesisIdle); !idle {
		t.Errorf("expected spindash to reset, got %T", c.SpindashGenesis())
	}
}

func TestCDSpindash(t *testing.T) {
	tests := []struct {
		name      string
		variable  bool
		holdTicks int
		state     State
		speed     float64
	}{
		{"charged", false, 45, RollingBall, 12 - 0.0234375},
		{"early release cancels", false, 15, Idle, 0},
		{"early release variable", true, 15, RollingBall, 4 - 0.0234375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultCharacter()
			cfg.SpindashStyle = config.SpindashCD
			cfg.VariableCDSpindash = tt.variable
			c, in := newOnFloor(cfg)

			in.hold(nil, ActionRoll)
			c.Step(1.0 / 60)
			in.hold([]Action{ActionJump}, ActionRoll)
			c.Step(1.0 / 60)
			if c.SpindashCD() != (Charging{Timer: 45}) {
				t.Fatalf("expected 45 tick charge, got %v", c.SpindashCD())
			}

			in.hold(nil, ActionRoll)
			for i := 0; i < tt.holdTicks; i++ {
				c.Step(1.0 / 60)
			}
			in.hold(nil)
			c.Step(1.0 / 60)

			if c.State() != tt.state {
				t.Errorf("expected %v, got %v", tt.state, c.State())
			}
			if math.Abs(c.GroundSpeed()-tt.speed) > 1e-9 {
				t.Errorf("expected ground speed %f, got %f", tt.speed, c.GroundSpeed())
			}
		})
	}
}

func TestDropDashFiresOnLanding(t *testing.T) {
	c := New(config.DefaultCharacter(), nil)
	in := &scriptedInput{}
	c.SetInput(in)
	c.SetGrounded(false)
	c.SetState(JumpBall)

	in.hold(nil)
	c.Step(1.0 / 60)
	in.hold(nil, ActionJump)
	for i := 0; i < 21; i++ {
		c.Step(1.0 / 60)
	}
	if _, charged := c.DropDash().(Charged); !charged {
		t.Fatalf("expected charged drop dash, got %v", c.DropDash())
	}

	c.SetGrounded(true)
	c.Land()
	if c.GroundSpeed() != 8 {
		t.Errorf("expected ground speed 8, got %f", c.GroundSpeed())
	}
	if c.State() != RollingBall {
		t.Errorf("expected RollingBall, got %v", c.State())
	}
	if _, reset := c.DropDash().(NotCharged); !reset {
		t.Errorf("expected drop dash to reset, got %v", c.DropDash())
	}
}

func TestReleaseDropDash(t *testing.T) {
	tests := []struct {
		name       string
		facingLeft bool
		speed      float64
		angle      float64
		expected   float64
	}{
		{"forwards", false, 4, 0, 9},
		{"standing", true, 0, 0, -8},
		{"backwards flat", false, -4, 0, 8},
		{"backwards slope", false, -4, gamemath.Rad(30), 6},
		{"clamped", false, 20, 0, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(config.DefaultCharacter(), nil)
			c.SetFacingLeft(tt.facingLeft)
			c.SetGroundSpeed(tt.speed)
			c.SetGroundAngle(tt.angle)
			c.releaseDropDash()
			if c.GroundSpeed() != tt.expected {
				t.Errorf("expected %f, got %f", tt.expected, c.GroundSpeed())
			}
		})
	}
}

func TestHurtScattersRings(t *testing.T) {
	c := New(config.DefaultCharacter(), nil)
	c.Position = dmath.Vec2{X: 100, Y: 100}
	c.SetRings(5)

	spawns := c.Hurt(dmath.Vec2{X: 90, Y: 100})
	if len(spawns) != 5 {
		t.Errorf("expected 5 scattered rings, got %d", len(spawns))
	}
	if c.State() != Hurt || c.IsGrounded() {
		t.Errorf("expected airborne Hurt, got %v grounded=%v", c.State(), c.IsGrounded())
	}
	if c.Velocity.X != 2 || c.Velocity.Y != -4 {
		t.Errorf("expected knockback (2, -4), got %v", c.Velocity)
	}
	if c.Rings() != 0 {
		t.Errorf("expected rings to drop to 0, got %d", c.Rings())
	}
	if c.CanGatherRings() {
		t.Error("expected ring gathering to be blocked after a hit")
	}
	if again := c.Hurt(dmath.Vec2{}); again != nil {
		t.Error("expected a hurt character to ignore further hits")
	}
}

func TestHurtWithoutRingsDies(t *testing.T) {
	c := New(config.DefaultCharacter(), nil)
	died := false
	c.OnDie = func() { died = true }

	if spawns := c.Hurt(dmath.Vec2{}); spawns != nil {
		t.Errorf("expected no rings, got %d", len(spawns))
	}
	if !died {
		t.Error("expected OnDie to be called")
	}
}

func TestScatterRings(t *testing.T) {
	spawns := scatterRings(dmath.Vec2{}, 50)
	if len(spawns) != 32 {
		t.Fatalf("expected at most 32 rings, got %d", len(spawns))
	}
	first, second := spawns[0].Velocity, spawns[1].Velocity
	if first.X != -second.X || first.Y != second.Y {
		t.Errorf("expected mirrored pair, got %v and %v", first, second)
	}
	if math.Abs(math.Hypot(first.X, first.Y)-4) > 1e-9 {
		t.Errorf("expected speed 4 in the first circle, got %v", first)
	}
	if v := spawns[16].Velocity; math.Abs(math.Hypot(v.X, v.Y)-2) > 1e-9 {
		t.Errorf("expected speed 2 in the second circle, got %v", v)
	}
	if spawns[0].Velocity.Y >= 0 {
		t.Error("expected rings to be thrown upwards")
	}
}

func TestSpringBounceExpires(t *testing.T) {
	c := New(config.DefaultCharacter(), nil)
	c.Spring(dmath.Vec2{Y: -10})

	if c.State() != SpringBounce || c.IsGrounded() {
		t.Fatalf("expected airborne SpringBounce, got %v", c.State())
	}
	for i := 0; i < 47; i++ {
		c.Step(1.0 / 60)
	}
	if c.State() != SpringBounce {
		t.Errorf("expected SpringBounce before the timer expires, got %v", c.State())
	}
	c.Step(1.0 / 60)
	if c.State() == SpringBounce {
		t.Error("expected SpringBounce to end after 48 ticks")
	}
}

func TestOnAttacking(t *testing.T) {
	tests := []struct {
		name     string
		position dmath.Vec2
		velocity dmath.Vec2
		boss     bool
		expected dmath.Vec2
	}{
		{"bounce off from above", dmath.Vec2{Y: 0}, dmath.Vec2{X: 1, Y: 3}, false, dmath.Vec2{X: 1, Y: -3}},
		{"below target", dmath.Vec2{Y: 20}, dmath.Vec2{X: 1, Y: 3}, false, dmath.Vec2{X: 1, Y: 2}},
		{"moving up", dmath.Vec2{Y: 0}, dmath.Vec2{X: 1, Y: -3}, false, dmath.Vec2{X: 1, Y: -2}},
		{"boss", dmath.Vec2{Y: 0}, dmath.Vec2{X: 2, Y: 4}, true, dmath.Vec2{X: -1, Y: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(config.DefaultCharacter(), nil)
			c.SetGrounded(false)
			c.Position = tt.position
			c.Velocity = tt.velocity
			c.OnAttacking(dmath.Vec2{Y: 10}, tt.boss)
			if c.Velocity != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, c.Velocity)
			}
		})
	}
}

func TestInstaShieldHitbox(t *testing.T) {
	cfg := config.DefaultCharacter()
	cfg.MidAirAction = config.MidAirInstaShield
	c := New(cfg, nil)
	in := &scriptedInput{}
	c.SetInput(in)
	c.SetGrounded(false)
	c.SetState(JumpBall)

	in.hold([]Action{ActionJump})
	c.Step(1.0 / 60)
	if w, h := c.Hitbox(); w != 49 || h != 49 {
		t.Errorf("expected 49x49 hitbox, got %fx%f", w, h)
	}
	if !c.IsAttacking() {
		t.Error("expected insta-shield to attack")
	}

	in.hold(nil)
	for i := 0; i < 14; i++ {
		c.Step(1.0 / 60)
	}
	if w, _ := c.Hitbox(); w == 49 {
		t.Error("expected the insta-shield to expire")
	}
}

func TestSpritePlaysOnStateChange(t *testing.T) {
	c := New(config.DefaultCharacter(), nil)
	sprite := &recordingSprite{}
	c.SetSprite(sprite)

	c.SetState(Crouch)
	c.SetState(Crouch)
	c.SetState(RollingBall)

	expected := []string{AnimIdle, AnimCrouch, AnimRolling}
	if len(sprite.played) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, sprite.played)
	}
	for i, name := range expected {
		if sprite.played[i] != name {
			t.Errorf("expected %s at %d, got %s", name, i, sprite.played[i])
		}
	}
}

func TestAnimationFrames(t *testing.T) {
	tests := []struct {
		state    State
		speed    float64
		expected int
	}{
		{Idle, 0, 8},
		{FullMotion, 6, 2},
		{FullMotion, 10, 1},
		{RollingBall, 2.5, 1},
		{JumpBall, 0, 4},
		{Pushing, 0.5, 6},
	}
	for _, tt := range tests {
		c := New(config.DefaultCharacter(), nil)
		c.state = tt.state
		c.groundSpeed = tt.speed
		if got := c.AnimationFrames(); got != tt.expected {
			t.Errorf("expected %d frames for %v at %f, got %d", tt.expected, tt.state, tt.speed, got)
		}
	}
}

func TestRollingStartsAndStops(t *testing.T) {
	cfg := config.DefaultCharacter()
	c, in := newOnFloor(cfg)
	c.SetGroundSpeed(3)
	in.hold(nil, ActionRoll)
	c.Step(1.0 / 60)

	if c.State() != RollingBall {
		t.Fatalf("expected RollingBall, got %v", c.State())
	}
	if c.HeightRadius() != cfg.BallHeightRadius {
		t.Errorf("expected ball height radius %f, got %f", cfg.BallHeightRadius, c.HeightRadius())
	}

	in.hold(nil)
	c.SetGroundSpeed(0.3)
	c.Step(1.0 / 60)
	if c.State().IsRolling() {
		t.Errorf("expected to unroll below 0.5, got %v", c.State())
	}
	if c.HeightRadius() != cfg.HeightRadius {
		t.Errorf("expected height radius %f, got %f", cfg.HeightRadius, c.HeightRadius())
	}
}

func TestSlipping(t *testing.T) {
	tests := []struct {
		name     string
		degrees  float64
		grounded bool
	}{
		{"slides down a slope", 40, true},
		{"falls off a wall", 90, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(config.DefaultCharacter(), nil)
			c.StandOn(SolidRef{Kind: SolidSimple, ID: 1})
			c.SetGroundAngle(tt.degrees * math.Pi / 180)
			c.Step(1.0 / 60)

			if c.IsGrounded() != tt.grounded {
				t.Errorf("expected grounded=%v, got %v", tt.grounded, c.IsGrounded())
			}
			if c.ControlLock() != slipLockTicks {
				t.Errorf("expected control lock %d, got %d", slipLockTicks, c.ControlLock())
			}
			if tt.grounded && c.GroundSpeed() >= -0.5 {
				t.Errorf("expected to slide downhill, got gs=%f", c.GroundSpeed())
			}
			if !tt.grounded && c.GroundSpeed() != 0 {
				t.Errorf("expected gs=0 after falling off, got %f", c.GroundSpeed())
			}
		})
	}
}

func TestNilCollaboratorsAreNoOps(t *testing.T) {
	c := New(config.DefaultCharacter(), nil)
	for i := 0; i < 10; i++ {
		c.Step(1.0 / 60)
	}
	if c.IsGrounded() {
		t.Error("expected to detach without a floor")
	}
	if c.Velocity.Y <= 0 {
		t.Errorf("expected to fall, got vy=%f", c.Velocity.Y)
	}
}

func TestChargesResetWhenLaunched(t *testing.T) {
	tests := []struct {
		name   string
		config func(cfg *config.CharacterConfig)
		charge func(c *Character, in *scriptedInput)
		launch func(c *Character)
	}{
		{
			name:   "genesis spindash then hurt",
			config: func(cfg *config.CharacterConfig) { cfg.SpindashStyle = config.SpindashGenesis },
			charge: func(c *Character, in *scriptedInput) {
				in.hold(nil, ActionRoll)
				c.Step(1.0 / 60)
				in.hold([]Action{ActionJump}, ActionRoll)
				c.Step(1.0 / 60)
				c.Step(1.0 / 60)
			},
			launch: func(c *Character) {
				c.SetRings(5)
				c.Hurt(dmath.Vec2{X: c.Position.X - 8, Y: c.Position.Y})
			},
		},
		{
			name:   "cd spindash then spring",
			config: func(cfg *config.CharacterConfig) { cfg.SpindashStyle = config.SpindashCD },
			charge: func(c *Character, in *scriptedInput) {
				in.hold(nil, ActionRoll)
				c.Step(1.0 / 60)
				in.hold([]Action{ActionJump}, ActionRoll)
				c.Step(1.0 / 60)
				in.hold(nil, ActionRoll)
				for i := 0; i < 45; i++ {
					c.Step(1.0 / 60)
				}
			},
			launch: func(c *Character) { c.Spring(dmath.Vec2{Y: -5}) },
		},
		{
			name: "peel-out then spring",
			config: func(cfg *config.CharacterConfig) {
				cfg.SuperPeelOut = true
				cfg.VariablePeelOut = true
			},
			charge: func(c *Character, in *scriptedInput) {
				in.hold(nil, ActionUp)
				c.Step(1.0 / 60)
				in.hold([]Action{ActionJump}, ActionUp)
				c.Step(1.0 / 60)
				in.hold(nil, ActionUp)
				for i := 0; i < 10; i++ {
					c.Step(1.0 / 60)
				}
			},
			launch: func(c *Character) { c.Spring(dmath.Vec2{Y: -5}) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultCharacter()
			tt.config(&cfg)
			c, in := newOnFloor(cfg)

			tt.charge(c, in)
			if !c.State().isCharging() {
				t.Fatalf("expected a charging state, got %v", c.State())
			}
			tt.launch(c)

			if _, idle := c.SpindashGenesis().(GenesisIdle); !idle {
				t.Errorf("expected genesis spindash to reset, got %T", c.SpindashGenesis())
			}
			if c.SpindashCD() != (NotCharged{}) || c.PeelOut() != (NotCharged{}) {
				t.Errorf("expected charges to reset, got %T and %T", c.SpindashCD(), c.PeelOut())
			}

			in.hold(nil)
			for i := 0; i < 120 && !c.IsGrounded(); i++ {
				c.Step(1.0 / 60)
			}
			if !c.IsGrounded() {
				t.Fatal("expected the character to land")
			}
			c.Step(1.0 / 60)
			if c.State() != Idle {
				t.Errorf("expected Idle after landing, got %v", c.State())
			}
			if c.GroundSpeed() != 0 {
				t.Errorf("expected no launch after landing, got gs=%f", c.GroundSpeed())
			}
		})
	}
}

func TestSuperPeelOut(t *testing.T) {
	tests := []struct {
		name      string
		variable  bool
		holdTicks int
		state     State
		speed     float64
	}{
		{"charged", false, 30, FullMotion, 12 - 0.046875},
		{"early release cancels", false, 15, Idle, 0},
		{"early release variable", true, 15, StartMotion, 6 - 0.046875},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultCharacter()
			cfg.SuperPeelOut = true
			cfg.VariablePeelOut = tt.variable
			c, in := newOnFloor(cfg)

			in.hold(nil, ActionUp)
			c.Step(1.0 / 60)
			if c.State() != LookUp {
				t.Fatalf("expected LookUp, got %v", c.State())
			}
			in.hold([]Action{ActionJump}, ActionUp)
			c.Step(1.0 / 60)
			if c.State() != SuperPeelOut || c.PeelOut() != (Charging{Timer: 30}) {
				t.Fatalf("expected a 30 tick peel-out charge, got %v %v", c.State(), c.PeelOut())
			}

			in.hold(nil, ActionUp)
			for i := 0; i < tt.holdTicks; i++ {
				c.Step(1.0 / 60)
				if c.GroundSpeed() != 0 {
					t.Fatalf("expected no movement while charging, got %f", c.GroundSpeed())
				}
			}
			in.hold(nil)
			c.Step(1.0 / 60)

			if c.State() != tt.state {
				t.Errorf("expected %v, got %v", tt.state, c.State())
			}
			if math.Abs(c.GroundSpeed()-tt.speed) > 1e-9 {
				t.Errorf("expected ground speed %f, got %f", tt.speed, c.GroundSpeed())
			}
			if c.PeelOut() != (NotCharged{}) {
				t.Errorf("expected peel-out to reset, got %v", c.PeelOut())
			}
		})
	}
}

func TestTurnAround(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		state State
		gs    float64
	}{
		{"fast turn skids", 5, Skidding, 4.5},
		{"slow turn decelerates", 3, StartMotion, 2.5},
		{"crossing zero snaps", 0.3, StartMotion, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, in := newOnFloor(config.DefaultCharacter())
			c.SetGroundSpeed(tt.speed)
			in.hold(nil, ActionLeft)
			c.Step(1.0 / 60)

			if c.State() != tt.state {
				t.Errorf("expected %v, got %v", tt.state, c.State())
			}
			if c.GroundSpeed() != tt.gs {
				t.Errorf("expected ground speed %f, got %f", tt.gs, c.GroundSpeed())
			}
		})
	}
}

func TestLookUp(t *testing.T) {
	c, in := newOnFloor(config.DefaultCharacter())

	in.hold(nil, ActionUp)
	c.Step(1.0 / 60)
	if c.State() != LookUp {
		t.Fatalf("expected LookUp, got %v", c.State())
	}
	c.Step(1.0 / 60)
	if c.State() != LookUp {
		t.Errorf("expected to keep looking up, got %v", c.State())
	}

	in.hold(nil)
	c.Step(1.0 / 60)
	if c.State() != Idle {
		t.Errorf("expected Idle after releasing up, got %v", c.State())
	}

	c.SetGroundSpeed(2)
	in.hold(nil, ActionUp)
	c.Step(1.0 / 60)
	if c.State() == LookUp {
		t.Error("expected no LookUp while moving")
	}
}

func TestGroundWallPush(t *testing.T) {
	tests := []struct {
		name  string
		held  []Action
		state State
	}{
		{"holding into the wall pushes", []Action{ActionRight}, Pushing},
		{"coasting into the wall stops", nil, Idle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ter := terrain.New(3200, 400)
			for col := 0; col < 200; col++ {
				ter.AddTile(terrain.Tile{Col: col, Row: 10, Layers: 1})
			}
			ter.AddTile(terrain.Tile{Col: 8, Row: 9, Layers: 1})
			c := New(config.DefaultCharacter(), ter)
			in := &scriptedInput{}
			c.SetInput(in)
			c.Position = dmath.Vec2{X: 119, Y: 141}
			c.SetGroundSpeed(1)
			in.hold(nil, tt.held...)

			c.Step(1.0 / 60)

			if c.Position.X != 118 {
				t.Errorf("expected x=118 against the wall, got %f", c.Position.X)
			}
			if c.GroundSpeed() != 0 {
				t.Errorf("expected gs=0, got %f", c.GroundSpeed())
			}
			if c.State() != tt.state {
				t.Errorf("expected %v, got %v", tt.state, c.State())
			}
		})
	}
}

func TestAirWallPush(t *testing.T) {
	tests := []struct {
		name     string
		wallCol  int
		start    dmath.Vec2
		velocity float64
		x        float64
	}{
		{"wall on the right", 8, dmath.Vec2{X: 115, Y: 100}, 4, 118},
		{"wall on the left", 4, dmath.Vec2{X: 93, Y: 100}, -4, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ter := terrain.New(3200, 400)
			for row := 5; row <= 7; row++ {
				ter.AddTile(terrain.Tile{Col: tt.wallCol, Row: row, Layers: 1})
			}
			c := New(config.DefaultCharacter(), ter)
			c.SetGrounded(false)
			c.Position = tt.start
			c.Velocity = dmath.Vec2{X: tt.velocity}

			c.Step(1.0 / 60)

			if c.Position.X != tt.x {
				t.Errorf("expected x=%f, got %f", tt.x, c.Position.X)
			}
			if c.Velocity.X != 0 {
				t.Errorf("expected vx=0, got %f", c.Velocity.X)
			}
			if c.IsGrounded() {
				t.Error("expected to stay airborne")
			}
		})
	}
}

func TestLandOnCeiling(t *testing.T) {
	ter := terrain.New(3200, 400)
	for col := 0; col <= 20; col++ {
		ter.AddTile(terrain.Tile{Col: col, Row: 5, Slope: terrain.Slope45UpRight, FlipY: true, Layers: 1})
	}
	c := New(config.DefaultCharacter(), ter)
	c.SetGrounded(false)
	c.Position = dmath.Vec2{X: 104, Y: 117}
	c.Velocity = dmath.Vec2{Y: -4}

	c.Step(1.0 / 60)

	if !c.IsGrounded() {
		t.Fatal("expected to attach to the ceiling slope")
	}
	if math.Abs(gamemath.Deg(c.GroundAngle())-135) > 1e-9 {
		t.Errorf("expected ground angle 135, got %f", gamemath.Deg(c.GroundAngle()))
	}
	if want := 4 - 0.21875; c.GroundSpeed() != want {
		t.Errorf("expected gs=%f, got %f", want, c.GroundSpeed())
	}
	if c.Position.Y != 114 {
		t.Errorf("expected y=114, got %f", c.Position.Y)
	}
}

func TestCeilingBump(t *testing.T) {
	ter := terrain.New(3200, 400)
	for col := 0; col <= 20; col++ {
		ter.AddTile(terrain.Tile{Col: col, Row: 5, Layers: 1})
	}
	c := New(config.DefaultCharacter(), ter)
	c.SetGrounded(false)
	c.Position = dmath.Vec2{X: 100, Y: 116}
	c.Velocity = dmath.Vec2{X: 6, Y: -2}

	c.Step(1.0 / 60)

	if c.IsGrounded() {
		t.Error("expected to stay airborne after a head bump")
	}
	if c.Position.Y != 115 {
		t.Errorf("expected y=115, got %f", c.Position.Y)
	}
	if c.Velocity.Y != 0 {
		t.Errorf("expected vy=0, got %f", c.Velocity.Y)
	}
	if c.Velocity.X != 5.8125 {
		t.Errorf("expected vx=5.8125 after air drag, got %f", c.Velocity.X)
	}
}

func TestLandingOnSlopes(t *testing.T) {
	tests := []struct {
		name    string
		polygon []dmath.Vec2
		start   dmath.Vec2
		gs      float64
		degrees float64
	}{
		{
			name:    "slope keeps half of vy",
			polygon: []dmath.Vec2{{X: 0, Y: 200}, {X: 400, Y: 0}, {X: 400, Y: 300}, {X: 0, Y: 300}},
			start:   dmath.Vec2{X: 200, Y: 74},
			gs:      -4.21875 * 0.5,
			degrees: math.Atan(0.5) * 180 / math.Pi,
		},
		{
			name:    "steep keeps all of vy",
			polygon: []dmath.Vec2{{X: 0, Y: 400}, {X: 200, Y: 0}, {X: 200, Y: 500}, {X: 0, Y: 500}},
			start:   dmath.Vec2{X: 100, Y: 160},
			gs:      -4.21875,
			degrees: math.Atan(2) * 180 / math.Pi,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ter := terrain.New(3200, 600)
			ter.AddPolygon(tt.polygon, 1, false, sensor.TileFlags{})
			c := New(config.DefaultCharacter(), ter)
			c.SetGrounded(false)
			c.Position = tt.start
			c.Velocity = dmath.Vec2{Y: 4}

			c.Step(1.0 / 60)

			if !c.IsGrounded() {
				t.Fatal("expected to land")
			}
			if c.GroundSpeed() != tt.gs {
				t.Errorf("expected gs=%f, got %f", tt.gs, c.GroundSpeed())
			}
			if math.Abs(gamemath.Deg(c.GroundAngle())-tt.degrees) > 1e-6 {
				t.Errorf("expected angle %f, got %f", tt.degrees, gamemath.Deg(c.GroundAngle()))
			}
		})
	}
}

func TestLedgeRoundTripKeepsGroundSpeed(t *testing.T) {
	ter := terrain.New(3200, 400)
	for col := 0; col < 8; col++ {
		ter.AddTile(terrain.Tile{Col: col, Row: 10, Layers: 1})
	}
	for col := 0; col < 40; col++ {
		ter.AddTile(terrain.Tile{Col: col, Row: 14, Layers: 1})
	}
	c := New(config.DefaultCharacter(), ter)
	c.Position = dmath.Vec2{X: 100, Y: 141}
	c.SetGroundSpeed(3)

	takeoff := math.NaN()
	for i := 0; i < 200; i++ {
		wasGrounded := c.IsGrounded()
		c.Step(1.0 / 60)
		if wasGrounded && !c.IsGrounded() {
			takeoff = c.Velocity.X
		}
		if !wasGrounded && c.IsGrounded() {
			break
		}
	}

	if math.IsNaN(takeoff) {
		t.Fatal("expected to run off the ledge")
	}
	if !c.IsGrounded() {
		t.Fatal("expected to land on the lower floor")
	}
	if c.GroundSpeed() != takeoff {
		t.Errorf("expected landing gs=%f, got %f", takeoff, c.GroundSpeed())
	}
	if feet := c.Position.Y + c.HeightRadius(); math.Abs(feet-224) > 1e-9 {
		t.Errorf("expected feet on the lower floor at 224, got %f", feet)
	}
}
