// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gookit/color"

	"delve/pkg/engine/world"
	"delve/pkg/game/actors"
	"delve/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// Styles for the colored dump
var (
	ColorWall     = color.Style{color.FgGray}
	ColorFloor    = color.Style{color.FgGray, color.OpBold}
	ColorVisible  = color.Style{color.FgYellow}
	ColorPlayer   = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorFresh    = color.Style{color.FgRed, color.OpBold}
	ColorStale    = color.Style{color.FgBlue}
	ColorHeadline = color.Style{color.FgMagenta, color.OpBold}
)

// scentLevels is how many staleness steps the scent map distinguishes
const scentLevels = 10

// Options controls what WriteMapDump prints
type Options struct {
	Colored      bool // ANSI colors via gookit/color
	RevealedOnly bool // Skip the full layout section
}

// cellSymbol returns the terrain symbol for a cell, or ' ' for an
// unexplored cell when revealedOnly is set.
func cellSymbol(m *world.Map, x, y int, revealedOnly bool) rune {
	if revealedOnly && !m.IsExplored(x, y) {
		return ' '
	}
	if m.IsWall(x, y) {
		return '#'
	}
	return '.'
}

// actorAt returns the actor drawn on top of a cell: the player first,
// then creatures, then items.
func actorAt(g *state.Game, pos world.Position) *actors.Actor {
	if p := g.Actors.Player(); p.Position() == pos {
		return p
	}
	if found := g.Actors.FindActorsOnCell(pos, g.Actors.Creatures()); len(found) > 0 {
		return found[0]
	}
	if found := g.Actors.FindActorsOnCell(pos, g.Actors.Items()); len(found) > 0 {
		return found[0]
	}
	return nil
}

// actorStyle converts an actor's "rgb(r,g,b)" color into a printable color
func actorStyle(a *actors.Actor) color.RGBColor {
	rgb := strings.TrimSuffix(strings.TrimPrefix(a.Color, "rgb("), ")")
	return color.RGBFromString(rgb)
}

// writeMapGrid writes the map with actors drawn over the terrain. In
// revealed mode only explored cells and the actors standing in view show.
func writeMapGrid(w io.Writer, g *state.Game, revealedOnly, colored bool) {
	m := g.Map
	for y := 0; y < m.Height(); y++ {
		var line strings.Builder
		for x := 0; x < m.Width(); x++ {
			sym := cellSymbol(m, x, y, revealedOnly)
			a := actorAt(g, world.Position{X: x, Y: y})
			if a != nil && revealedOnly && a != g.Actors.Player() && !m.IsVisible(x, y) {
				a = nil
			}

			switch {
			case a != nil && a == g.Actors.Player() && colored:
				line.WriteString(ColorPlayer.Sprint(string(a.Glyph)))
			case a != nil && colored:
				line.WriteString(actorStyle(a).Sprint(string(a.Glyph)))
			case a != nil:
				line.WriteRune(a.Glyph)
			case colored && sym == '#':
				line.WriteString(ColorWall.Sprint("#"))
			case colored && sym == '.' && m.IsVisible(x, y):
				line.WriteString(ColorVisible.Sprint("."))
			case colored && sym == '.':
				line.WriteString(ColorFloor.Sprint("."))
			default:
				line.WriteRune(sym)
			}
		}
		fmt.Fprintln(w, line.String())
	}
}

// scentSymbol renders the staleness of a cell's scent: '0' is fresh, '9'
// is nine updates old, '+' is older and ' ' is never reached.
func scentSymbol(m *world.Map, x, y int) rune {
	if m.Scent(x, y) == 0 {
		return ' '
	}
	// negative after loading a snapshot that did not carry the counter
	age := max(m.ScentStaleness(x, y), 0)
	if age >= scentLevels {
		return '+'
	}
	return rune('0' + age)
}

func writeScentGrid(w io.Writer, m *world.Map, colored bool) {
	for y := 0; y < m.Height(); y++ {
		var line strings.Builder
		for x := 0; x < m.Width(); x++ {
			sym := scentSymbol(m, x, y)
			switch {
			case !colored || sym == ' ':
				line.WriteRune(sym)
			case sym == '+':
				line.WriteString(ColorStale.Sprint(string(sym)))
			case sym <= '2':
				line.WriteString(ColorFresh.Sprint(string(sym)))
			default:
				line.WriteString(ColorVisible.Sprint(string(sym)))
			}
		}
		fmt.Fprintln(w, line.String())
	}
}

func headline(w io.Writer, colored bool, title string) {
	if colored {
		title = ColorHeadline.Sprint(title)
	}
	fmt.Fprintln(w, title)
}

// WriteMapDump writes a debug dump of the current level: metadata, a
// legend, the revealed map, the full layout, the scent field and every
// actor with its position. The format is plain sections of key: value
// lines so it can be diffed between runs.
func WriteMapDump(w io.Writer, g *state.Game, opts Options) error {
	if g.Map == nil {
		return fmt.Errorf("no map")
	}
	m := g.Map
	player := g.Actors.Player()

	headline(w, opts.Colored, "=== MAP DUMP DEBUG (level layout, scent, actors) ===")
	fmt.Fprintln(w, "")
	headline(w, opts.Colored, "--- Metadata ---")
	fmt.Fprintf(w, "level: %d\n", g.Level)
	fmt.Fprintf(w, "seed: %d\n", g.Seed)
	fmt.Fprintf(w, "builder: %s\n", g.Builder.Name())
	fmt.Fprintf(w, "width: %d\n", m.Width())
	fmt.Fprintf(w, "height: %d\n", m.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row growing downward)\n")
	fmt.Fprintf(w, "player: %d,%d\n", player.X, player.Y)
	fmt.Fprintf(w, "turns: %d\n", g.Turns)
	fmt.Fprintf(w, "floor_cells: %d\n", m.FloorCount())
	fmt.Fprintf(w, "explored_cells: %d\n", countExplored(m))
	fmt.Fprintf(w, "current_scent_value: %d\n", m.CurrentScentValue())
	fmt.Fprintln(w, "")

	headline(w, opts.Colored, "--- Legend ---")
	fmt.Fprintln(w, ". = floor  # = wall  (blank) = unexplored  @ = player  o/T = monsters  ! # = items")
	fmt.Fprintln(w, "scent: 0-9 = updates since fresh  + = older  (blank) = never smelled")
	fmt.Fprintln(w, "")

	headline(w, opts.Colored, "--- Map (explored cells only) ---")
	writeMapGrid(w, g, true, opts.Colored)
	fmt.Fprintln(w, "")

	if !opts.RevealedOnly {
		headline(w, opts.Colored, "--- Map (full layout) ---")
		writeMapGrid(w, g, false, opts.Colored)
		fmt.Fprintln(w, "")
	}

	headline(w, opts.Colored, "--- Scent ---")
	writeScentGrid(w, m, opts.Colored)
	fmt.Fprintln(w, "")

	headline(w, opts.Colored, "--- Actors ---")
	fmt.Fprintln(w, "Creatures:")
	for _, a := range g.Actors.Creatures() {
		hp := 0
		if a.Destructible != nil {
			hp = a.Destructible.HP
		}
		fmt.Fprintf(w, "  x: %d y: %d name: %q hp: %d visible: %v\n", a.X, a.Y, a.Name, hp, m.IsVisible(a.X, a.Y))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Items on floor:")
	for _, a := range g.Actors.Items() {
		fmt.Fprintf(w, "  x: %d y: %d name: %q\n", a.X, a.Y, a.Name)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Player inventory:")
	if g.Inventory.Size() == 0 {
		fmt.Fprintln(w, "  (none)")
	} else {
		var names []string
		g.Inventory.Each(func(item *actors.Actor) {
			names = append(names, item.Name)
		})
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(w, "  item_name: %q\n", n)
		}
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Messages:")
	for _, msg := range g.Messages {
		fmt.Fprintf(w, "  %s\n", msg)
	}
	fmt.Fprintln(w, "")

	headline(w, opts.Colored, "=== END MAP DUMP ===")
	return nil
}

func countExplored(m *world.Map) int {
	n := 0
	m.ForEachCell(func(_, _ int, tile world.Tile) {
		if tile.Explored {
			n++
		}
	})
	return n
}

// DumpMapToFile writes an uncolored dump to map.txt in the working
// directory and returns its absolute path.
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, g, Options{}); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
