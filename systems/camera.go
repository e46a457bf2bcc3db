package systems

import (
	"math"

	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/components"
	"github.com/lmsonic/sonicmaker/config"
	"github.com/yohamta/donburi/ecs"
)

// lookDelay is how long the character must look up or crouch before the
// camera pans.
const lookDelay = 60

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	c := playerCharacter(e)
	if c == nil {
		return
	}
	level := getLevel(e)
	if level == nil {
		return
	}

	// Only update look-ahead when the character is moving - freeze offset when idle
	speed := c.Velocity.X
	if c.IsGrounded() {
		speed = c.GroundSpeed()
	}
	if math.Abs(speed) > 1 {
		facing := 1.0
		if c.FacingLeft() {
			facing = -1
		}
		target := facing * config.Camera.LookAheadDistanceX * math.Min(math.Abs(speed)/6, 1)
		camera.LookAheadX += (target - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetLookY := 0.0
	switch c.State() {
	case character.LookUp:
		camera.LookTimer++
		if camera.LookTimer > lookDelay {
			targetLookY = -config.Camera.LookUpOffset
		}
	case character.Crouch:
		camera.LookTimer++
		if camera.LookTimer > lookDelay {
			targetLookY = config.Camera.LookUpOffset
		}
	default:
		camera.LookTimer = 0
	}
	camera.LookY += (targetLookY - camera.LookY) * config.Camera.FollowSmoothing

	// Calculate target camera position (following the character with look-ahead)
	targetX := c.Position.X + camera.LookAheadX
	targetY := c.Position.Y + camera.LookY

	// Calculate camera bounds based on screen and level dimensions
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(level.CurrentLevel.Width)
	levelHeight := float64(level.CurrentLevel.Height)

	// Camera bounds: ensure the level always fills the screen
	minCameraX := screenWidth / 2
	maxCameraX := math.Max(minCameraX, levelWidth-screenWidth/2)
	minCameraY := screenHeight / 2
	maxCameraY := math.Max(minCameraY, levelHeight-screenHeight/2)

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// worldToScreen returns the offset that maps world space onto the screen.
func worldToScreen(camera *components.CameraData, width, height int) (float64, float64) {
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y
}
