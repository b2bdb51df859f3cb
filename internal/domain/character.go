package domain

import "github.com/google/uuid"

// StatName identifies one of the six character stats
type StatName string

const (
	StatForce          StatName = "force"
	StatIntelligence   StatName = "intelligence"
	StatPrecision      StatName = "precision"
	StatEndurance      StatName = "endurance"
	StatCharisma       StatName = "charisma"
	StatTechCompetence StatName = "tech_competence"
)

// StatNames lists the stats in declaration order. Summaries iterate this order.
var StatNames = []StatName{
	StatForce,
	StatIntelligence,
	StatPrecision,
	StatEndurance,
	StatCharisma,
	StatTechCompetence,
}

// IsValidStat reports whether name is one of the six stats
func IsValidStat(name StatName) bool {
	for _, s := range StatNames {
		if s == name {
			return true
		}
	}
	return false
}

// Character is the player's mutable state for a session
type Character struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Appearance map[string]string `json:"appearance"`
	Background string            `json:"background"`
	Stats      map[StatName]int  `json:"stats"`
	Jobs       []string          `json:"jobs"` // declared, not used yet
	CurrentJob *string           `json:"current_job,omitempty"`
	Inventory  []string          `json:"inventory"`
	Money      int               `json:"money"`
}

// HasJob reports whether a job has been assigned
func (c *Character) HasJob() bool {
	return c.CurrentJob != nil
}
