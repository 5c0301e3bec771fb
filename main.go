package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"delve/pkg/engine/rng"
	"delve/pkg/engine/terminal"
	"delve/pkg/engine/world"
	"delve/pkg/game/devtools"
	"delve/pkg/game/generator"
	"delve/pkg/game/state"
	"delve/pkg/game/store"
)

func main() {
	seed := flag.Int64("seed", 0, "level seed (0 picks one from the clock)")
	width := flag.Int("width", 0, "map width (0 fits the terminal)")
	height := flag.Int("height", 0, "map height (0 fits the terminal)")
	builderName := flag.String("builder", "bsp", "level builder: bsp or walker")
	moves := flag.Int("moves", 0, "random player moves to simulate before dumping")
	radius := flag.Int("radius", state.FovRadius, "field of view radius")
	storeKind := flag.String("store", "", "level store: json, bolt or postgres (empty disables saving)")
	storePath := flag.String("store-path", "levels.json", "file used by the json and bolt stores")
	dsn := flag.String("dsn", "", "postgres connection string")
	lang := flag.String("lang", "en_GB", "language for names and messages")
	locales := flag.String("locales", "locales", "directory holding translation files")
	useColor := flag.Bool("color", false, "colorize the map dump")
	dumpFile := flag.Bool("dump-file", false, "also write the dump to map.txt")
	flag.Parse()

	gotext.Configure(*locales, *lang, "default")

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *width <= 0 || *height <= 0 {
		*width, *height = terminal.MapSize()
	}

	builder, err := generator.ByName(*builderName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	g := state.NewGame(builder, *seed, *width, *height)
	g.FovRadius = *radius
	g.BuildLevel()
	log.Printf("built %dx%d level with %s (seed %d)", *width, *height, builder.Name(), *seed)

	var levels store.Store
	levelName := g.LevelKey()
	if *storeKind != "" {
		levels, err = store.Open(*storeKind, *storePath, *dsn)
		if err != nil {
			log.Fatalf("Failed to open %s store: %v", *storeKind, err)
		}
		defer levels.Close()

		if err := restoreLevel(g, levels, levelName); err != nil {
			log.Fatalf("Failed to restore %s: %v", levelName, err)
		}
	}

	walk(g, *seed, *moves)

	if levels != nil {
		if err := levels.SaveLevel(levelName, g.Map.Save()); err != nil {
			log.Fatalf("Failed to save %s: %v", levelName, err)
		}
		log.Printf("saved %s to %s store", levelName, *storeKind)
	}

	if err := devtools.WriteMapDump(os.Stdout, g, devtools.Options{Colored: *useColor}); err != nil {
		log.Fatalf("Failed to dump map: %v", err)
	}
	if *dumpFile {
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			log.Fatalf("Failed to write map dump: %v", err)
		}
		log.Printf("map dump written to %s", path)
	}
}

// restoreLevel brings back the explored cells and scent of a level saved
// by an earlier run with the same seed, size and builder. A level never
// saved is not an error; a snapshot that does not fit the level is.
func restoreLevel(g *state.Game, levels store.Store, name string) error {
	saved, err := levels.LoadLevel(name)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := g.Restore(saved); err != nil {
		return err
	}
	log.Printf("restored %s", name)
	return nil
}

// walk moves the player in random directions, the way a wandering player
// would, so the dump shows explored cells and a scent trail.
func walk(g *state.Game, seed int64, moves int) {
	r := rng.NewSource(seed)
	dirs := world.AllDirections()
	for i := 0; i < moves; i++ {
		g.MovePlayer(dirs[r.Number(0, len(dirs)-1)])
	}
}
