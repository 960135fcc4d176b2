package core

import (
	"fmt"
	"log"
	"os"

	"github.com/automoto/doomerang-geom/shared/gamemath"
	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/automoto/doomerang-geom/shared/occluders"
	"github.com/solarlune/resolv"
)

// Resolv tags on level geometry.
const (
	tagSolid = "solid"
	tagRamp  = "ramp"
)

// ServerLevel holds the server's collision space, occluders and spawn data
// for a level.
type ServerLevel struct {
	Space       *resolv.Space
	Occluders   []occluders.Segment
	SpawnPoints []leveldata.SpawnPoint
	MapWidth    int
	MapHeight   int
}

// NewServerLevel builds a resolv.Space from parsed collision data. Each
// merged rect becomes one static object.
func NewServerLevel(data *leveldata.CollisionData) *ServerLevel {
	cellW, cellH := data.TileWidth, data.TileHeight
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = 16, 16
	}
	space := resolv.NewSpace(data.MapWidth, data.MapHeight, cellW, cellH)

	for _, r := range data.SolidRects {
		space.Add(newLevelObject(r))
	}

	log.Printf("Loaded level: %d solid tiles as %d colliders, %d occluders, %d spawn points, %dx%d map",
		data.SolidTiles, len(data.SolidRects), len(data.Occluders), len(data.SpawnPoints), data.MapWidth, data.MapHeight)

	return &ServerLevel{
		Space:       space,
		Occluders:   data.Occluders,
		SpawnPoints: data.SpawnPoints,
		MapWidth:    data.MapWidth,
		MapHeight:   data.MapHeight,
	}
}

func newLevelObject(r leveldata.SolidRect) *resolv.Object {
	var obj *resolv.Object
	switch {
	case r.SlopeType == "":
		obj = resolv.NewObject(r.X, r.Y, r.W, r.H, tagSolid)
	case gamemath.KnownSlope(r.SlopeType):
		obj = resolv.NewObject(r.X, r.Y, r.W, r.H, tagRamp, r.SlopeType)
	default:
		log.Printf("Unknown slope type %q at (%.0f,%.0f), treating as solid", r.SlopeType, r.X, r.Y)
		obj = resolv.NewObject(r.X, r.Y, r.W, r.H, tagSolid)
	}
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	return obj
}

// Colliders returns the number of objects in the level space and how many
// of them are ramps.
func (l *ServerLevel) Colliders() (total, ramps int) {
	objs := l.Space.Objects()
	for _, o := range objs {
		if o.HasTags(tagRamp) {
			ramps++
		}
	}
	return len(objs), ramps
}

// LoadAllServerLevels loads all .tmx levels from the given assets directory,
// returning a map of ServerLevel keyed by stem name plus a sorted name list.
func LoadAllServerLevels(assetsDir string) (map[string]*ServerLevel, []string, error) {
	collisionMap, names, err := leveldata.LoadAllLevels(os.DirFS(assetsDir), "levels")
	if err != nil {
		return nil, nil, fmt.Errorf("load all levels: %w", err)
	}

	levels := make(map[string]*ServerLevel, len(names))
	for _, name := range names {
		levels[name] = NewServerLevel(collisionMap[name])
	}

	return levels, names, nil
}
