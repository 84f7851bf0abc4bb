package config

import (
	"fmt"
	"strings"
	"time"
)

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyHard:
		return "hard"
	}
	return "normal"
}

// ParseBotDifficulty accepts easy, normal or hard. Empty means normal.
func ParseBotDifficulty(s string) (BotDifficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return BotDifficultyEasy, nil
	case "", "normal":
		return BotDifficultyNormal, nil
	case "hard":
		return BotDifficultyHard, nil
	}
	return BotDifficultyNormal, fmt.Errorf("config: unknown bot difficulty %q", s)
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    time.Duration // Delay before the bot commits to a new target
	AttackRange      float64       // Distance to start punching
	ChaseRange       float64       // Distance to start chasing
	RetreatThreshold float64       // Health fraction to start retreating
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulty   BotDifficulty
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Current returns the tuning for the selected difficulty.
func (b BotConfigData) Current() BotDifficultyConfig {
	return b.Difficulties[b.Difficulty]
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulty: BotDifficultyNormal,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    500 * time.Millisecond,
				AttackRange:      110,
				ChaseRange:       1000,
				RetreatThreshold: 0.2,
			},
			BotDifficultyNormal: {
				ReactionDelay:    250 * time.Millisecond,
				AttackRange:      130,
				ChaseRange:       1500,
				RetreatThreshold: 0.3,
			},
			BotDifficultyHard: {
				ReactionDelay:    80 * time.Millisecond,
				AttackRange:      145,
				ChaseRange:       2500,
				RetreatThreshold: 0.15,
			},
		},
	}
}
