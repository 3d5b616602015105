package config

// ArenaConfig contains the walled play area and frame pacing
type ArenaConfig struct {
	// Layout
	TileSize      float64
	BoardTiles    int
	WallThickness int
	WindowTiles   int
	TopOffset     float64 // Walls sit slightly inside the tile edge
	BottomOffset  float64

	// Walls (derived from the layout in init, may be replaced by an arena file)
	TopWall    float64
	BottomWall float64
	LeftWall   float64
	RightWall  float64

	// Pacing
	FrameRate int

	// Level rules
	Difficulties int
	Difficulty   int
	LevelTime    float64 // Seconds before the level is lost
	KillsToWin   []int   // Per difficulty

	// Spawning
	FirstWaveDelay      float64
	WaveDelay           float64
	MinWaveSize         int
	MaxWaveSize         int
	ObstructerEveryWave int     // Every Nth wave brings a large enemy
	HealthPackBase      float64 // Seconds between health packs on the easiest difficulty
	HealthPackPerLevel  float64 // Extra seconds per difficulty step

	// Gates, waves only come through while they are open
	GateOpenBase       float64
	GateOpenPerLevel   float64 // Extra open seconds per difficulty step
	GateClosedBase     float64
	GateClosedPerLevel float64 // Fewer closed seconds per difficulty step
	GateFrames         int     // Steps between fully closed and fully open
	GateFrameTime      float64

	ArenaFile string // Empty loads the embedded arena
}

// MaxDeltaTime is the longest step a frame may simulate.
func (a ArenaConfig) MaxDeltaTime() float64 {
	return 1.0 / float64(a.FrameRate)
}

// HealthPackTime is the delay between health packs, longer on harder
// difficulties.
func (a ArenaConfig) HealthPackTime(difficulty int) float64 {
	return a.HealthPackBase + float64(difficulty)*a.HealthPackPerLevel
}

// GateOpenTime is how long the gates stay open on a difficulty.
func (a ArenaConfig) GateOpenTime(difficulty int) float64 {
	return a.GateOpenBase + float64(difficulty)*a.GateOpenPerLevel
}

// GateClosedTime is how long the gates stay shut on a difficulty.
func (a ArenaConfig) GateClosedTime(difficulty int) float64 {
	return a.GateClosedBase - float64(difficulty)*a.GateClosedPerLevel
}

// WindowSize is the viewer window edge in pixels.
func (a ArenaConfig) WindowSize() int {
	return int(a.TileSize) * a.WindowTiles
}

// PhysicsConfig contains movement and trajectory limits shared by all munitions
type PhysicsConfig struct {
	Gravity              float64
	MovableHitDelay      float64
	ProjectileHitDelay   float64 // Wall debounce, also used for floor hits
	MaxProjectileSpeed   float64
	MaxThrowableSpeed    float64
	MinSpreadSpeed       float64 // Spread cones are always faster than any throw
	TrajectoryMaxHeight  float64
	DefaultRange         float64
	AttachAdjustment     float64 // Overshoot correction multiplier for stuck projectiles
	BottomAdjustment     float64 // Pixels above the sprite bottom used as the floor contact
	MaxFootprint         float64
	ActorDyingRotation   float64
	ProjectileDyingAngle float64 // Dying rotation is a random multiple of this

	// Throwable floor and wall responses
	StopSpeed        float64 // Below this on the floor the throwable halts
	RollSpeed        float64 // At or below this it rolls instead of bouncing
	RollDecay        float64
	BounceDecay      float64
	WallBounceDecay  float64
	WallDropSpeed    float64 // Horizontal creep after a lateral wall drop
	WallDropFall     float64 // Fall speed after a lateral wall drop
	WallDropVertical float64 // Speed after a top/bottom wall drop
	WallDropFloorMin int
	WallDropFloorMax int
}

// CollisionConfig contains the tolerances of the per-frame collision pass
type CollisionConfig struct {
	PlayerEnemyCoverage   float64
	ExplosionCoverage     float64
	ActorHitCoverage      float64
	ProjectileHitCoverage float64

	ProjectileTopMin       int
	ProjectileTopMax       int
	ProjectileTopFinishing float64 // Top offset for projectiles about to stop while moving up
	ProjectileBottom       float64
	ProjectileSides        float64
}

var Arena ArenaConfig
var Physics PhysicsConfig
var Collision CollisionConfig

func init() {
	Arena = ArenaConfig{
		TileSize:      63,
		BoardTiles:    9,
		WallThickness: 1,
		WindowTiles:   11,
		TopOffset:     4,
		BottomOffset:  -2,

		FrameRate: 60,

		Difficulties: 3,
		Difficulty:   1,
		LevelTime:    300,
		KillsToWin:   []int{20, 35, 50},

		FirstWaveDelay:      1.0,
		WaveDelay:           5.0,
		MinWaveSize:         1,
		MaxWaveSize:         3,
		ObstructerEveryWave: 6,
		HealthPackBase:      90,
		HealthPackPerLevel:  180,

		GateOpenBase:       10,
		GateOpenPerLevel:   10,
		GateClosedBase:     50,
		GateClosedPerLevel: 10,
		GateFrames:         4,
		GateFrameTime:      0.5,

		ArenaFile: "",
	}
	Arena.TopWall = float64(Arena.WallThickness)*Arena.TileSize + Arena.TopOffset
	Arena.BottomWall = float64(Arena.WallThickness+Arena.BoardTiles)*Arena.TileSize + Arena.BottomOffset
	Arena.LeftWall = float64(Arena.WallThickness) * Arena.TileSize
	Arena.RightWall = float64(Arena.WallThickness+Arena.BoardTiles) * Arena.TileSize

	Physics = PhysicsConfig{
		Gravity:              155.6,
		MovableHitDelay:      0.3,
		ProjectileHitDelay:   0.15,
		MaxProjectileSpeed:   400,
		MaxThrowableSpeed:    250,
		MinSpreadSpeed:       250,
		TrajectoryMaxHeight:  30,
		DefaultRange:         600,
		AttachAdjustment:     1.3,
		BottomAdjustment:     2,
		MaxFootprint:         200,
		ActorDyingRotation:   90,
		ProjectileDyingAngle: 90,

		StopSpeed:        50,
		RollSpeed:        60,
		RollDecay:        0.7,
		BounceDecay:      0.35,
		WallBounceDecay:  0.5,
		WallDropSpeed:    20,
		WallDropFall:     60,
		WallDropVertical: 60,
		WallDropFloorMin: 3,
		WallDropFloorMax: 5,
	}

	Collision = CollisionConfig{
		PlayerEnemyCoverage:   0.35,
		ExplosionCoverage:     0.15,
		ActorHitCoverage:      0.3,
		ProjectileHitCoverage: 0.6,

		ProjectileTopMin:       15,
		ProjectileTopMax:       20,
		ProjectileTopFinishing: 3,
		ProjectileBottom:       6,
		ProjectileSides:        5,
	}
}
