package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osse101/NeoCity_Go/internal/character"
	"github.com/osse101/NeoCity_Go/internal/domain"
	"github.com/osse101/NeoCity_Go/internal/job"
	"github.com/osse101/NeoCity_Go/internal/logger"
	"github.com/osse101/NeoCity_Go/internal/world"
)

// Game runs the console session. It owns the catalogs and, once created, the character.
type Game struct {
	in    *bufio.Reader
	out   io.Writer
	jobs  *job.Catalog
	zones *world.Catalog
}

// New creates a game reading lines from in and writing to out
func New(in io.Reader, out io.Writer, jobs *job.Catalog, zones *world.Catalog) *Game {
	return &Game{
		in:    bufio.NewReader(in),
		out:   out,
		jobs:  jobs,
		zones: zones,
	}
}

// Play creates a character and runs the main menu until the player quits
// or input ends. Running out of input is a normal end of session.
func (g *Game) Play(ctx context.Context) error {
	c, err := g.CreateCharacter(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	return g.Run(ctx, c)
}

// CreateCharacter prompts for a name and background.
// It returns io.EOF if input ends before both are read.
func (g *Game) CreateCharacter(ctx context.Context) (*domain.Character, error) {
	g.println(MsgWelcome)

	name, err := g.readLine(PromptName)
	if err != nil {
		return nil, err
	}
	background, err := g.readLine(PromptBackground)
	if err != nil {
		return nil, err
	}

	c := character.New(name, character.DefaultAppearance(), background)
	logger.FromContext(ctx).Info("Character created", "character_id", c.ID.String(), "name", c.Name)
	return c, nil
}

// Run shows the main menu and dispatches choices until the player quits,
// input ends, or ctx is cancelled.
func (g *Game) Run(ctx context.Context, c *domain.Character) error {
	ctx = logger.WithSessionID(ctx, c.ID.String())
	log := logger.FromContext(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.println(HeaderMainMenu)
		for _, line := range mainMenuLines {
			g.println(line)
		}

		choice, err := g.readLine(PromptMenuOption)
		if errors.Is(err, io.EOF) {
			log.Debug("Input ended at main menu")
			return nil
		}
		if err != nil {
			return err
		}

		log.Debug("Menu choice", "choice", choice)

		switch choice {
		case OptionViewCharacter:
			g.println(HeaderCharacter)
			g.println(character.Render(c))
		case OptionExploreZones:
			err = g.exploreZones(ctx)
		case OptionFindJob:
			err = g.findJob(ctx, c)
		case OptionQuit:
			g.println(MsgGoodbye)
			return nil
		default:
			g.println(MsgInvalidOption)
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (g *Game) exploreZones(ctx context.Context) error {
	g.println(HeaderZones)
	names := g.zones.ListNames()
	for i, name := range names {
		g.printf(FormatZoneListEntry, i+1, name)
	}

	idx, ok, err := g.selectIndex(ctx, PromptZone, len(names), MsgInvalidZone)
	if err != nil || !ok {
		return err
	}

	zone, found := g.zones.Get(names[idx])
	if !found {
		return fmt.Errorf("zone %q listed but not found", names[idx])
	}
	g.printf(FormatZoneArrival, zone.Name)
	g.printf(FormatZoneDesc, zone.Description)
	logger.FromContext(ctx).Debug("Zone visited", "zone", zone.Name)
	return nil
}

func (g *Game) findJob(ctx context.Context, c *domain.Character) error {
	g.println(HeaderJobMarket)
	jobs := g.jobs.List("")
	for i, j := range jobs {
		g.printf(FormatJobListEntry, i+1, j.Title, j.Type, j.Salary)
	}

	idx, ok, err := g.selectIndex(ctx, PromptJob, len(jobs), MsgInvalidJob)
	if err != nil || !ok {
		return err
	}

	// Requirements are not checked; any listed job can be taken.
	selected := jobs[idx]
	character.SetJob(c, selected.Title)
	g.printf(FormatJobAccepted, selected.Title)
	logger.FromContext(ctx).Debug("Job assigned", "job", selected.Title, "type", string(selected.Type))
	return nil
}

// selectIndex reads a 1-based selection from a list of n entries.
// It returns ok=false after going back or reporting bad input.
func (g *Game) selectIndex(ctx context.Context, prompt string, n int, invalidMsg string) (int, bool, error) {
	line, err := g.readLine(prompt)
	if err != nil {
		return 0, false, err
	}

	num, err := parseSelection(line)
	if err != nil {
		logger.FromContext(ctx).Info("Rejected selection", "error", err)
		g.println(MsgInvalidInput)
		return 0, false, nil
	}

	switch {
	case num == BackSelection:
		return 0, false, nil
	case num < 1 || num > n:
		logger.FromContext(ctx).Info("Selection out of range", "selection", num, "max", n)
		g.println(invalidMsg)
		return 0, false, nil
	}
	return num - 1, true, nil
}

func parseSelection(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, line)
	}
	return n, nil
}

// readLine prints prompt and reads one line of any length without its line ending.
// A final line missing its newline is still returned; end of input is io.EOF.
func (g *Game) readLine(prompt string) (string, error) {
	fmt.Fprint(g.out, prompt)
	line, err := g.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", io.EOF
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (g *Game) println(s string) {
	fmt.Fprintln(g.out, s)
}

func (g *Game) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}
