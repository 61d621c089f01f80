// Package render provides textual renderers for composed environments.
package render

import (
	"fmt"
	"slices"
	"strings"

	"go.tarn.ch/denv/internal/core/domain"
)

// NixRenderer renders an environment as a Nix mkShell expression.
// Descriptors pinned to a nixpkgs commit are grouped by commit into flake
// imports; unpinned descriptors resolve against the ambient package set.
// Output is deterministic: commits, attributes and packages are emitted in
// sorted order, so value-equal environments render byte-identically.
type NixRenderer struct{}

// NewNixRenderer creates a new NixRenderer.
func NewNixRenderer() *NixRenderer {
	return &NixRenderer{}
}

// Format returns "nix".
func (r *NixRenderer) Format() string {
	return "nix"
}

// Render returns the mkShell expression for the environment.
func (r *NixRenderer) Render(env domain.Environment) ([]byte, error) {
	pinned := make(map[string][]string)
	var unpinned []string

	for _, pkg := range env.Packages {
		rev := pkg.NixpkgsRev.String()
		if rev == "" {
			unpinned = append(unpinned, pkg.AttrPath.String())
			continue
		}
		pinned[rev] = append(pinned[rev], pkg.AttrPath.String())
	}

	revs := make([]string, 0, len(pinned))
	for rev := range pinned {
		revs = append(revs, rev)
	}
	slices.Sort(revs)
	slices.Sort(unpinned)

	var builder strings.Builder
	if name := env.Name.String(); name != "" {
		fmt.Fprintf(&builder, "# environment %q\n", name)
	}
	fmt.Fprintf(&builder, "# runtime: %s\n", env.Runtime.Spec())

	builder.WriteString("let\n")
	builder.WriteString("pkgs = import <nixpkgs> { };\n")
	for i, rev := range revs {
		fmt.Fprintf(&builder, "flake_%d = builtins.getFlake \"github:NixOS/nixpkgs/%s\";\n", i, rev)
		fmt.Fprintf(&builder, "pkgs_%d = flake_%d.legacyPackages.${builtins.currentSystem};\n", i, i)
	}

	builder.WriteString("in\n")
	builder.WriteString("pkgs.mkShell {\n")
	builder.WriteString("buildInputs = [\n")
	for i, rev := range revs {
		attrs := pinned[rev]
		slices.Sort(attrs)
		for _, attr := range attrs {
			fmt.Fprintf(&builder, "pkgs_%d.%s\n", i, attr)
		}
	}
	for _, attr := range unpinned {
		fmt.Fprintf(&builder, "pkgs.%s\n", attr)
	}
	builder.WriteString("];\n")
	builder.WriteString("}\n")

	return []byte(builder.String()), nil
}
