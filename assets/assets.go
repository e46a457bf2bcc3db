// Package assets embeds the level files.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/lmsonic/sonicmaker/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// levelsDir is the directory inside the embedded file system holding the .tmx files.
const levelsDir = "levels"

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads from the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS reads from another file system, e.g. os.DirFS for levels
// being edited.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// LoadLevels returns every level sorted by name.
func (l *LevelLoader) LoadLevels() ([]*leveldata.Level, error) {
	byName, names, err := leveldata.LoadAllLevels(l.fsys, levelsDir)
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	levels := make([]*leveldata.Level, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	return levels, nil
}

func (l *LevelLoader) MustLoadLevels() []*leveldata.Level {
	levels, err := l.LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}
