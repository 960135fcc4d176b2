package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/doomerang-geom/shared/colliders"
	"github.com/automoto/doomerang-geom/shared/extract"
	"github.com/automoto/doomerang-geom/shared/tilegrid"
	"github.com/lafriks/go-tiled"
)

// ErrNoSolidLayer indicates the map has no tile layer with the solid layer name.
var ErrNoSolidLayer = errors.New("leveldata: solid layer not found")

// TileLayer is the solid layer of a map split into mergeable box tiles and
// slope tiles.
type TileLayer struct {
	Boxes   *tilegrid.Labels
	Slopes  []SolidRect
	Tiles   int
	Regions map[int]int // region property -> group key
}

// ReadTileLayer reads the solid layer of levelMap. Box tiles go into a label
// grid keyed by region: each distinct region property gets a group key from 1
// up in the order it is first seen, so tiles of different regions never
// merge and no region, negative ones included, maps to the empty label.
// Slope tiles are not boxes and are kept as individual rects.
func ReadTileLayer(levelMap *tiled.Map, opts Options) (*TileLayer, error) {
	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == opts.SolidLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("%q: %w", opts.SolidLayer, ErrNoSolidLayer)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	out := &TileLayer{
		Boxes:   tilegrid.NewLabels(levelMap.Width, levelMap.Height),
		Regions: make(map[int]int),
	}
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			i := y*levelMap.Width + x
			if i >= len(layer.Tiles) {
				continue
			}
			tile := layer.Tiles[i]
			if tile == nil || tile.IsNil() {
				continue
			}
			out.Tiles++

			var slopeType string
			region := 0
			if tile.Tileset != nil {
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					slopeType = tilesetTile.Properties.GetString(opts.SlopeProperty)
					region = tilesetTile.Properties.GetInt(opts.RegionProperty)
				}
			}

			group, ok := out.Regions[region]
			if !ok {
				group = len(out.Regions) + 1
				out.Regions[region] = group
			}

			if slopeType != "" {
				out.Slopes = append(out.Slopes, SolidRect{
					X:         float64(x) * tileW,
					Y:         float64(y) * tileH,
					W:         tileW,
					H:         tileH,
					SlopeType: slopeType,
					Cells:     colliders.Rect{Left: x, Right: x, Bottom: y, Top: y, Group: group},
				})
				continue
			}
			out.Boxes.Set(x, y, group)
		}
	}
	return out, nil
}

// LoadCollisionData parses a TMX file and returns collision data (merged
// solid rects, occluder segments and player spawn points). It takes an fs.FS
// so callers can pass embed.FS (client) or os.DirFS (server).
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	return LoadCollisionDataWith(fsys, tmxPath, DefaultOptions())
}

// LoadCollisionDataWith is LoadCollisionData with explicit layer names.
func LoadCollisionDataWith(fsys fs.FS, tmxPath string, opts Options) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layer, err := ReadTileLayer(levelMap, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	geom, err := extract.Run(layer.Boxes, extract.Options{
		TileWidth:  tileW,
		TileHeight: tileH,
		Verify:     opts.Verify,
	})
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		Occluders:  geom.Segments,
		Grid:       layer.Boxes,
		SolidTiles: layer.Tiles,
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	data.SolidRects = make([]SolidRect, 0, len(geom.Rects)+len(layer.Slopes))
	for _, r := range geom.Rects {
		x, y, w, h := r.World(tileW, tileH)
		data.SolidRects = append(data.SolidRects, SolidRect{X: x, Y: y, W: w, H: h, Cells: r})
	}
	data.SolidRects = append(data.SolidRects, layer.Slopes...)

	// Parse player spawn points from the spawn object group
	for _, og := range levelMap.ObjectGroups {
		if og.Name != opts.SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			spawnIndex := o.Properties.GetInt("spawnIndex")
			data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: spawnIndex,
			})
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	return LoadAllLevelsWith(fsys, levelsDir, DefaultOptions())
}

// LoadAllLevelsWith is LoadAllLevels with explicit layer names.
func LoadAllLevelsWith(fsys fs.FS, levelsDir string, opts Options) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionDataWith(fsys, path, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
