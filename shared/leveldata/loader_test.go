package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/pigking/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="10">
 <tileset firstgid="1" name="collision" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <image source="tiles.png" width="32" height="16"/>
 </tileset>
 <layer id="1" name="collision" width="4" height="3">
  <data encoding="csv">
0,2,2,0,
0,0,0,0,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="8" y="10"/>
 </objectgroup>
 <objectgroup id="3" name="EnemySpawn">
  <object id="2" x="40" y="4">
   <properties>
    <property name="species" value="kingPig"/>
   </properties>
  </object>
  <object id="3" x="20" y="4">
   <properties>
    <property name="species" value="kingPig"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Checkpoint">
  <object id="4" x="48" y="16" width="16" height="16">
   <properties>
    <property name="checkpointID" value="cp1"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Door">
  <object id="5" x="0" y="0" width="16" height="32">
   <properties>
    <property name="kind" value="entry"/>
   </properties>
  </object>
  <object id="6" x="48" y="0" width="16" height="32">
   <properties>
    <property name="kind" value="exit"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/level1.tmx": &fstest.MapFile{Data: []byte(testTMX)},
		"levels/tiles.png":  &fstest.MapFile{Data: []byte{}},
	}
}

func TestLoad(t *testing.T) {
	lvl, err := Load(testFS(), "levels/level1.tmx")
	require.NoError(t, err)

	assert.Equal(t, "level1", lvl.Name)
	assert.Equal(t, 64.0, lvl.Width)
	assert.Equal(t, 48.0, lvl.Height)

	require.Len(t, lvl.Blocks, 4)
	assert.Equal(t, gamemath.NewRect(0, 32, 16, 16), lvl.Blocks[0])
	assert.Equal(t, gamemath.NewRect(48, 32, 16, 16), lvl.Blocks[3])

	require.Len(t, lvl.Platforms, 2)
	assert.Equal(t, gamemath.NewRect(16, 16, 16, PlatformThickness), lvl.Platforms[0])
	assert.Equal(t, gamemath.NewRect(32, 16, 16, PlatformThickness), lvl.Platforms[1])

	assert.Equal(t, gamemath.Vector2{X: 8, Y: 10}, lvl.PlayerSpawn)

	require.Len(t, lvl.Enemies, 2)
	assert.Equal(t, 20.0, lvl.Enemies[0].X, "enemies are sorted left to right")
	assert.Equal(t, "kingPig", lvl.Enemies[0].Species)

	require.Len(t, lvl.Checkpoints, 1)
	assert.Equal(t, "cp1", lvl.Checkpoints[0].ID)

	exit, ok := lvl.Door(DoorExit)
	require.True(t, ok)
	assert.Equal(t, 48.0, exit.Rect.X)
	_, ok = lvl.Door("cellar")
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testFS(), "levels/nope.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "levels/nope.tmx")
}

func TestLoadAllLevels(t *testing.T) {
	fsys := testFS()
	fsys["levels/level0.tmx"] = &fstest.MapFile{Data: []byte(testTMX)}

	levels, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "level0", levels[0].Name)
	assert.Equal(t, "level1", levels[1].Name)
}

func TestLoadAllEmpty(t *testing.T) {
	_, err := LoadAllLevels(fstest.MapFS{}, "levels")
	assert.True(t, errors.Is(err, ErrNoLevels))
}
