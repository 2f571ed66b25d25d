package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:layouts
	assetFS embed.FS
)

// DefaultLayout is the camera screen loaded at startup.
const DefaultLayout = "layouts/camera.tmx"

// Layout is the camera screen: where the preview inset, the tinted widgets
// and the viewfinder subject sit.
type Layout struct {
	Name       string
	Width      int
	Height     int
	Subject    math.Vec2
	Orbit      float64
	Foreground ForegroundSpawn
	Tintables  []TintableSpawn
}

// ForegroundSpawn is the preview inset before any dragging.
type ForegroundSpawn struct {
	X, Y, Width, Height float64
	Scale               float64
}

type TintableSpawn struct {
	Name string
	Kind string // "glyph", "shutter" or "image"
	X, Y float64
	Size float64
}

type LayoutLoader struct {
	fsys fs.FS
}

// NewLayoutLoader reads layouts from the embedded assets.
func NewLayoutLoader() *LayoutLoader {
	return &LayoutLoader{fsys: assetFS}
}

// NewLayoutLoaderFS reads layouts from fsys.
func NewLayoutLoaderFS(fsys fs.FS) *LayoutLoader {
	return &LayoutLoader{fsys: fsys}
}

func (l *LayoutLoader) MustLoadLayout(path string) Layout {
	layout, err := l.LoadLayout(path)
	if err != nil {
		panic(err)
	}
	return layout
}

// LoadLayout parses a Tiled map into a Layout. Unknown object groups are
// ignored.
func (l *LayoutLoader) LoadLayout(path string) (Layout, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Layout{}, fmt.Errorf("load layout %s: %w", path, err)
	}

	layout := Layout{
		Name:      path,
		Width:     m.Width * m.TileWidth,
		Height:    m.Height * m.TileHeight,
		Subject:   math.Vec2{X: float64(m.Width*m.TileWidth) / 2, Y: float64(m.Height*m.TileHeight) / 2},
		Tintables: []TintableSpawn{},
	}

	foundForeground := false
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Viewfinder":
			for _, o := range og.Objects {
				if o.Name != "subject" {
					continue
				}
				layout.Subject = math.Vec2{X: o.X, Y: o.Y}
				layout.Orbit = o.Properties.GetFloat("orbit")
			}
		case "Foreground":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			scale := o.Properties.GetFloat("scale")
			if scale <= 0 {
				scale = 1
			}
			layout.Foreground = ForegroundSpawn{
				X:      o.X,
				Y:      o.Y,
				Width:  o.Width,
				Height: o.Height,
				Scale:  scale,
			}
			foundForeground = true
		case "Tintables":
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // older TMX files use type=
				}
				switch kind {
				case "glyph", "shutter", "image":
				default:
					return Layout{}, fmt.Errorf("layout %s: tintable %q has unknown kind %q", path, o.Name, kind)
				}
				layout.Tintables = append(layout.Tintables, TintableSpawn{
					Name: o.Name,
					Kind: kind,
					X:    o.X,
					Y:    o.Y,
					Size: o.Width,
				})
			}
			// Left to right, the order widgets are registered in
			sort.Slice(layout.Tintables, func(i, j int) bool {
				return layout.Tintables[i].X < layout.Tintables[j].X
			})
		}
	}

	if !foundForeground {
		return Layout{}, fmt.Errorf("layout %s: no Foreground object", path)
	}
	return layout, nil
}
