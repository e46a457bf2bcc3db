package character

// State drives both the behavior gates and the animation of the character.
type State int

const (
	Idle State = iota
	StartMotion
	FullMotion
	Skidding
	Pushing
	JumpBall
	RollingBall
	Hurt
	SpringBounce
	Crouch
	Spindash
	SuperPeelOut
	LookUp
)

var stateNames = [...]string{
	Idle:         "Idle",
	StartMotion:  "StartMotion",
	FullMotion:   "FullMotion",
	Skidding:     "Skidding",
	Pushing:      "Pushing",
	JumpBall:     "JumpBall",
	RollingBall:  "RollingBall",
	Hurt:         "Hurt",
	SpringBounce: "SpringBounce",
	Crouch:       "Crouch",
	Spindash:     "Spindash",
	SuperPeelOut: "SuperPeelOut",
	LookUp:       "LookUp",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// IsBall reports the states that use the smaller ball radii.
func (s State) IsBall() bool {
	return s == JumpBall || s == RollingBall || s == Spindash
}

// IsAttacking reports the states that damage enemies on contact.
func (s State) IsAttacking() bool {
	return s == JumpBall || s == RollingBall
}

func (s State) IsRolling() bool {
	return s == RollingBall
}

// isCharging reports the states where ground speed is held at zero by a special move.
func (s State) isCharging() bool {
	return s == Spindash || s == SuperPeelOut
}

// Animation clip names played on the Sprite collaborator.
const (
	AnimIdle         = "idle"
	AnimStartMotion  = "start_motion"
	AnimFullMotion   = "full_motion"
	AnimRolling      = "rolling"
	AnimRollingFast  = "rolling_fast"
	AnimHurt         = "hurt"
	AnimSkidding     = "skidding"
	AnimPushing      = "pushing"
	AnimSpringBounce = "spring_bounce"
	AnimCrouch       = "crouch"
	AnimSpindash     = "spindash"
	AnimSuperPeelOut = "super_peel_out"
	AnimLookUp       = "look_up"
)
