package ecs

// Entity geometry (pixels)
const (
	PlayerSize      = 32
	PursuerSize     = 32
	WallSize        = 8
	PelletSize      = 4
	PelletOffset    = 8
	PowerPelletSize = 16

	// MoveSpeed is the per-tick step of every moving entity
	MoveSpeed = 2
)

// Session rules
const (
	StartingLives = 3
)

// Pursuer mode durations (ticks at 60 Hz)
const (
	ScatterTicks    = 300
	ChaseTicks      = 1200
	FrightenedTicks = 420

	// FrightenedWarnTicks is how long before the end of Frightened the pursuer flashes
	FrightenedWarnTicks = 120
)

// Targeting distances (pixels)
const (
	AmbushLead       = 64
	FlankLead        = 32
	PatrolRadius     = 256
	FrightenedJitter = 32
)

// BlinkPeriod is the number of ticks a power pellet stays in one blink phase
const BlinkPeriod = 30

// PowerPelletVisible reports whether a power pellet with the given blink
// counter is in its lit phase
func PowerPelletVisible(blink int) bool {
	return (blink/BlinkPeriod)%2 == 0
}
