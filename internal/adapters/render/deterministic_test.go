package render_test

import (
	"testing"

	"go.tarn.ch/denv/internal/adapters/render"
	"go.tarn.ch/denv/internal/core/domain"
)

// Rendering iterates grouped maps internally, so hammer it to catch any map
// iteration order leaking into the output.
func TestNixRenderer_Deterministic(t *testing.T) {
	rt, err := domain.ParseRuntimeSpec("python@3.12")
	if err != nil {
		t.Fatalf("ParseRuntimeSpec failed: %v", err)
	}

	pinned := func(name, attr, rev string) domain.Descriptor {
		return domain.Descriptor{
			Name:       domain.NewInternedString(name),
			Version:    domain.NewInternedString("1.0.0"),
			AttrPath:   domain.NewInternedString(attr),
			NixpkgsRev: domain.NewInternedString(rev),
		}
	}

	env := domain.Environment{
		Name:    domain.NewInternedString("mixed"),
		Runtime: rt,
		Packages: []domain.Descriptor{
			pinned("a", "pkgA", "rev_1"),
			pinned("b", "pkgB", "rev_2"),
			pinned("c", "pkgC", "rev_1"),
			pinned("d", "pkgD", "rev_3"),
			pinned("e", "pkgE", "rev_2"),
		},
	}

	renderer := render.NewNixRenderer()

	var first string
	for i := 0; i < 20; i++ {
		out, err := renderer.Render(env)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if i == 0 {
			first = string(out)
		} else if string(out) != first {
			t.Fatalf("render is not deterministic on iteration %d\nFirst:\n%s\n\nCurrent:\n%s", i, first, out)
		}
	}
}
