package character

// ChargeState is the timer-driven charge of the drop dash, the super peel-out
// and the CD spindash. The variants are NotCharged, Charging and Charged.
type ChargeState interface {
	isChargeState()
}

type NotCharged struct{}

// Charging counts down to Charged.
type Charging struct {
	Timer int
}

type Charged struct{}

func (NotCharged) isChargeState() {}
func (Charging) isChargeState()   {}
func (Charged) isChargeState()    {}

// GenesisSpindash is the tap-to-rev spindash. The variants are
// GenesisIdle and GenesisRevving.
type GenesisSpindash interface {
	isGenesisSpindash()
}

type GenesisIdle struct{}

// GenesisRevving accumulates charge from jump taps, capped at maxSpindashCharge.
type GenesisRevving struct {
	Charge float64
}

func (GenesisIdle) isGenesisSpindash()    {}
func (GenesisRevving) isGenesisSpindash() {}

const (
	dropDashChargeTicks   = 20
	peelOutChargeTicks    = 30
	cdSpindashChargeTicks = 45
	instaShieldTicks      = 14

	maxSpindashCharge  = 8.0
	spindashTapCharge  = 2.0
	spindashBaseSpeed  = 8.0
	chargedDashSpeed   = 12.0
	instaShieldHitbox  = 49.0
	springBounceTicks  = 48
	invulnerableTicks  = 120
	regatherRingsTicks = 64
)

// chargeTick advances a timer-driven charge while its button is held.
func chargeTick(s ChargeState) ChargeState {
	c, ok := s.(Charging)
	if !ok {
		return s
	}
	c.Timer--
	if c.Timer <= 0 {
		return Charged{}
	}
	return c
}
