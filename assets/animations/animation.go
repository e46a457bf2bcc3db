// Package animations steps the character's clips. Images are drawn from
// shapes, so a clip is only an image count.
package animations

type Animation struct {
	Name             string
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
			} else {
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

// SetTicksPerImage shows each image for n ticks.
func (a *Animation) SetTicksPerImage(n int) {
	if n < 1 {
		n = 1
	}
	a.SpeedInTps = float32(n - 1)
	if a.frameCounter > a.SpeedInTps {
		a.frameCounter = a.SpeedInTps
	}
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
	}
}

// Clip is the image count of a named clip.
type Clip struct {
	Images           int
	FreezeOnComplete bool
}

// Clips lists the character clips by name.
var Clips = map[string]Clip{
	"idle":           {Images: 1},
	"start_motion":   {Images: 8},
	"full_motion":    {Images: 4},
	"rolling":        {Images: 5},
	"rolling_fast":   {Images: 5},
	"hurt":           {Images: 2},
	"skidding":       {Images: 4, FreezeOnComplete: true},
	"pushing":        {Images: 4},
	"spring_bounce":  {Images: 2},
	"crouch":         {Images: 1, FreezeOnComplete: true},
	"spindash":       {Images: 5},
	"super_peel_out": {Images: 4},
	"look_up":        {Images: 1, FreezeOnComplete: true},
}

// ForClip returns a fresh animation for a clip. Unknown clips get a single
// image.
func ForClip(name string) *Animation {
	clip, ok := Clips[name]
	if !ok {
		clip = Clip{Images: 1}
	}
	a := NewAnimation(0, clip.Images-1, 1, 0)
	a.Name = name
	a.FreezeOnComplete = clip.FreezeOnComplete
	return a
}

// Sprite plays clips by name for the character.
type Sprite struct {
	Current *Animation
	FlipH   bool
}

func NewSprite() *Sprite {
	return &Sprite{Current: ForClip("idle")}
}

// Play switches clip, restarting it unless it is already playing.
func (s *Sprite) Play(name string) {
	if s.Current != nil && s.Current.Name == name {
		return
	}
	s.Current = ForClip(name)
}

func (s *Sprite) SetFlipH(flip bool) {
	s.FlipH = flip
}

// Update advances the current clip, showing each image for ticksPerImage ticks.
func (s *Sprite) Update(ticksPerImage int) {
	if s.Current == nil {
		return
	}
	s.Current.SetTicksPerImage(ticksPerImage)
	s.Current.Update()
}
