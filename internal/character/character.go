package character

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/NeoCity_Go/internal/domain"
)

// DefaultAppearance returns the appearance assigned at creation until customization exists
func DefaultAppearance() map[string]string {
	return map[string]string{
		domain.TraitHair: domain.TraitDefault,
		domain.TraitEyes: domain.TraitDefault,
	}
}

// New creates a character with starting stats and money
func New(name string, appearance map[string]string, background string) *domain.Character {
	stats := make(map[domain.StatName]int, len(domain.StatNames))
	for _, s := range domain.StatNames {
		stats[s] = domain.StartingStatValue
	}

	traits := make(map[string]string, len(appearance))
	for k, v := range appearance {
		traits[k] = v
	}

	return &domain.Character{
		ID:         uuid.New(),
		Name:       name,
		Appearance: traits,
		Background: background,
		Stats:      stats,
		Jobs:       []string{},
		Inventory:  []string{},
		Money:      domain.StartingMoney,
	}
}

// UpdateStat adds delta to the named stat, clamping the result to [0,100]
func UpdateStat(c *domain.Character, name domain.StatName, delta int) error {
	if !domain.IsValidStat(name) {
		return fmt.Errorf("%w: stat '%s' does not exist", domain.ErrInvalidStat, name)
	}
	c.Stats[name] = clamp(c.Stats[name]+delta, domain.MinStatValue, domain.MaxStatValue)
	return nil
}

// Stat returns the current value of the named stat
func Stat(c *domain.Character, name domain.StatName) (int, error) {
	if !domain.IsValidStat(name) {
		return 0, fmt.Errorf("%w: stat '%s' does not exist", domain.ErrInvalidStat, name)
	}
	return c.Stats[name], nil
}

// SetJob overwrites the current job. The title is not checked against the job catalog.
func SetJob(c *domain.Character, title string) {
	c.CurrentJob = &title
}

// Render returns the multi-line character summary
func Render(c *domain.Character) string {
	job := domain.NoJobLabel
	if c.HasJob() {
		job = *c.CurrentJob
	}

	stats := make([]string, 0, len(domain.StatNames))
	for _, s := range domain.StatNames {
		stats = append(stats, fmt.Sprintf("%s: %d", StatLabel(s), c.Stats[s]))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Background: %s\n", c.Background)
	fmt.Fprintf(&b, "Job: %s\n", job)
	fmt.Fprintf(&b, "Stats: %s", strings.Join(stats, ", "))
	return b.String()
}

// StatLabel capitalizes a stat name for display: first letter upper, the rest lower.
// Underscores are kept, so tech_competence becomes Tech_competence.
func StatLabel(name domain.StatName) string {
	s := string(name)
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.English).String(s[:size]) + cases.Lower(language.English).String(s[size:])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
