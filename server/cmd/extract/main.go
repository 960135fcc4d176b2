package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/doomerang-geom/server/core"
	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/automoto/doomerang-geom/shared/preview"
)

func main() {
	mapPath := flag.String("map", "", "Single TMX file to extract (overrides -dir)")
	dir := flag.String("dir", "assets/levels", "Directory of TMX levels")
	layer := flag.String("layer", leveldata.DefaultOptions().SolidLayer, "Tile layer holding solid tiles")
	verify := flag.Bool("verify", false, "Check extracted geometry against the tile grid")
	writePNG := flag.Bool("png", false, "Write a PNG preview per level")
	outDir := flag.String("out", "", "Directory for PNG previews (default: next to each map)")
	scale := flag.Float64("scale", preview.DefaultOptions().Scale, "Preview pixels per world unit")
	flag.Parse()

	opts := leveldata.DefaultOptions()
	opts.SolidLayer = *layer
	opts.Verify = *verify

	levels, names, srcDir, err := load(*mapPath, *dir, opts)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	previewOpts := preview.DefaultOptions()
	previewOpts.Scale = *scale

	for _, name := range names {
		data := levels[name]
		log.Print(summarize(name, data, core.NewServerLevel(data)))

		if !*writePNG {
			continue
		}
		target := *outDir
		if target == "" {
			target = srcDir
		}
		path := filepath.Join(target, name+".png")
		if err := savePreview(path, data, previewOpts); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		log.Printf("%s: wrote %s", name, path)
	}
}

// summarize reports the collision space built for one level.
func summarize(name string, data *leveldata.CollisionData, level *core.ServerLevel) string {
	total, ramps := level.Colliders()
	return fmt.Sprintf("%s: %d solid tiles -> %d colliders (%d ramps), %d occluders",
		name, data.SolidTiles, total, ramps, len(level.Occluders))
}

// load reads one map or a whole directory and returns levels keyed by stem,
// the sorted stems and the directory the maps came from.
func load(mapPath, dir string, opts leveldata.Options) (map[string]*leveldata.CollisionData, []string, string, error) {
	if mapPath != "" {
		abs, err := filepath.Abs(mapPath)
		if err != nil {
			return nil, nil, "", err
		}
		root, base := filepath.Split(abs)
		data, err := leveldata.LoadCollisionDataWith(os.DirFS(root), base, opts)
		if err != nil {
			return nil, nil, "", err
		}
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		return map[string]*leveldata.CollisionData{stem: data}, []string{stem}, root, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, "", err
	}
	levels, names, err := leveldata.LoadAllLevelsWith(os.DirFS(filepath.Dir(abs)), filepath.Base(abs), opts)
	if err != nil {
		return nil, nil, "", err
	}
	return levels, names, abs, nil
}

func savePreview(path string, data *leveldata.CollisionData, opts preview.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	return preview.WritePNG(f, preview.Render(data, opts))
}
