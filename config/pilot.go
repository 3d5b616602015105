package config

// PilotSkill selects how well the headless autopilot plays the player
type PilotSkill int

const (
	PilotCautious PilotSkill = iota
	PilotSteady
	PilotReckless
)

// PilotSkillConfig holds tuning values for the autopilot at one skill level
type PilotSkillConfig struct {
	ReactionDelay     float64 // Seconds between decisions
	EngageRange       float64 // Distance to start shooting
	KeepAwayRange     float64 // Back off when an enemy is closer than this
	AimTolerance      float64 // Max off-axis distance to pull the trigger
	HealthSeekPercent float64 // Go for a health pack below this health fraction
}

// PilotConfigData holds all autopilot configuration
type PilotConfigData struct {
	Skills map[PilotSkill]PilotSkillConfig
}

// Pilot holds autopilot configuration
var Pilot PilotConfigData

func init() {
	Pilot = PilotConfigData{
		Skills: map[PilotSkill]PilotSkillConfig{
			PilotCautious: {
				ReactionDelay:     0.5,
				EngageRange:       220.0,
				KeepAwayRange:     120.0,
				AimTolerance:      8.0,
				HealthSeekPercent: 0.6,
			},
			PilotSteady: {
				ReactionDelay:     0.25,
				EngageRange:       260.0,
				KeepAwayRange:     80.0,
				AimTolerance:      12.0,
				HealthSeekPercent: 0.4,
			},
			PilotReckless: {
				ReactionDelay:     0.1,
				EngageRange:       320.0,
				KeepAwayRange:     30.0,
				AimTolerance:      16.0,
				HealthSeekPercent: 0.2,
			},
		},
	}
}
