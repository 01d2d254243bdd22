package operator

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // avatar decoding
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// AvatarSize is the edge length of loaded avatar thumbnails.
const AvatarSize = 64

// Catalog is the full operator pool plus resolved avatar assets.
type Catalog struct {
	Operators []*Operator
	avatars   map[string]image.Image
	fallback  image.Image
}

// Empty returns a catalog with no operators. Used when the pool file cannot
// be loaded; every evaluation against it yields no results.
func Empty() *Catalog {
	return &Catalog{
		avatars:  make(map[string]image.Image),
		fallback: placeholderAvatar(),
	}
}

// Load reads the operator pool from a JSON file and resolves avatars from
// avatarDir by the <id>.png filename convention. A missing avatar falls back
// to avatarDir/default.png, or to a generated placeholder if that is missing
// too; only a missing or malformed pool file fails the load.
func Load(path, avatarDir string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read operator pool: %w", err)
	}

	var ops []*Operator
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, fmt.Errorf("parse operator pool: %w", err)
	}

	c := &Catalog{
		Operators: ops,
		avatars:   make(map[string]image.Image, len(ops)),
		fallback:  placeholderAvatar(),
	}
	if img, err := loadAvatar(filepath.Join(avatarDir, "default.png")); err == nil {
		c.fallback = img
	}
	for _, op := range ops {
		img, err := loadAvatar(filepath.Join(avatarDir, op.ID+".png"))
		if err != nil {
			continue
		}
		c.avatars[op.ID] = img
	}
	return c, nil
}

// Avatar returns the avatar thumbnail for an operator ID, or the fallback
// asset if none was resolved.
func (c *Catalog) Avatar(id string) image.Image {
	if img, ok := c.avatars[id]; ok {
		return img
	}
	return c.fallback
}

// Size returns the number of operators in the pool.
func (c *Catalog) Size() int {
	return len(c.Operators)
}

func loadAvatar(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode avatar %s: %w", path, err)
	}

	b := src.Bounds()
	if b.Dx() == AvatarSize && b.Dy() == AvatarSize {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst, nil
}

func placeholderAvatar() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	grey := color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	for y := 0; y < AvatarSize; y++ {
		for x := 0; x < AvatarSize; x++ {
			img.SetRGBA(x, y, grey)
		}
	}
	return img
}
