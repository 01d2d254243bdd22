package operator

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePool(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "pool.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write pool: %v", err)
	}
	return path
}

func writeAvatar(t *testing.T, path string, c color.RGBA, size int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create avatar: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode avatar: %v", err)
	}
}

const poolJSON = `[
	{"id": "op_a", "name": "A", "rarity": "TIER_3", "tag_list": ["Ranged"], "position": "RANGED"},
	{"id": "op_b", "name": "B", "rarity": "TIER_6", "tag_list": ["Melee", "Top-Operator"], "position": "MELEE"}
]`

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	pool := writePool(t, dir, poolJSON)
	avatars := filepath.Join(dir, "avatars")
	if err := os.Mkdir(avatars, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeAvatar(t, filepath.Join(avatars, "op_a.png"), color.RGBA{R: 255, A: 255}, AvatarSize)

	cat, err := Load(pool, avatars)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Size() != 2 {
		t.Fatalf("Size = %d, want 2", cat.Size())
	}
	if cat.Avatar("op_a") == nil {
		t.Fatalf("op_a avatar missing")
	}
	// op_b has no avatar file; it must resolve to the fallback, not fail.
	if cat.Avatar("op_b") == nil {
		t.Fatalf("missing avatar must resolve to fallback")
	}
}

func TestLoadCatalogDefaultAvatarFallback(t *testing.T) {
	dir := t.TempDir()
	pool := writePool(t, dir, poolJSON)
	avatars := filepath.Join(dir, "avatars")
	if err := os.Mkdir(avatars, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeAvatar(t, filepath.Join(avatars, "default.png"), color.RGBA{G: 255, A: 255}, 32)

	cat, err := Load(pool, avatars)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	img := cat.Avatar("op_b")
	if img == nil {
		t.Fatalf("fallback avatar is nil")
	}
	b := img.Bounds()
	if b.Dx() != AvatarSize || b.Dy() != AvatarSize {
		t.Fatalf("fallback avatar not scaled to %dx%d: %v", AvatarSize, AvatarSize, b)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json"), ""); err == nil {
		t.Fatalf("expected error for missing pool file")
	}
}

func TestLoadCatalogMalformed(t *testing.T) {
	dir := t.TempDir()
	pool := writePool(t, dir, `{"not": "a list"}`)
	if _, err := Load(pool, ""); err == nil {
		t.Fatalf("expected error for malformed pool file")
	}
}

func TestEmptyCatalog(t *testing.T) {
	cat := Empty()
	if cat.Size() != 0 {
		t.Fatalf("Empty catalog has %d operators", cat.Size())
	}
	if cat.Avatar("anything") == nil {
		t.Fatalf("Empty catalog must still serve a placeholder avatar")
	}
}
