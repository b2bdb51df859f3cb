package domain

// Character creation defaults
const (
	StartingMoney     = 1000
	StartingStatValue = 10
	MinStatValue      = 0
	MaxStatValue      = 100
)

// Appearance trait keys
const (
	TraitHair = "hair"
	TraitEyes = "eyes"

	// TraitDefault is the value assigned to every trait until customization exists
	TraitDefault = "default"
)

// NoJobLabel is shown in character summaries when no job has been taken
const NoJobLabel = "None"
