// Package app implements the application layer for denv.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"sync"

	"go.tarn.ch/denv/internal/adapters/render"
	"go.tarn.ch/denv/internal/adapters/telemetry"
	"go.tarn.ch/denv/internal/core/domain"
	"go.tarn.ch/denv/internal/core/ports"
	"go.tarn.ch/denv/internal/engine/compose"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	catalogSource ports.CatalogSource
	composer      *compose.Composer
	snapshots     ports.SnapshotStore
	telemetry     ports.Telemetry
}

// New creates a new App instance. A nil telemetry falls back to the no-op
// implementation.
func New(
	loader ports.ConfigLoader,
	source ports.CatalogSource,
	composer *compose.Composer,
	snapshots ports.SnapshotStore,
	tel ports.Telemetry,
) *App {
	if tel == nil {
		tel = telemetry.NewNoOp()
	}
	return &App{
		configLoader:  loader,
		catalogSource: source,
		composer:      composer,
		snapshots:     snapshots,
		telemetry:     tel,
	}
}

// ComposeOptions configures a compose invocation.
type ComposeOptions struct {
	// ManifestPath overrides the default manifest location.
	ManifestPath string

	// CatalogPath overrides the default catalog location.
	CatalogPath string

	// Format selects the output renderer ("nix" or "json"); empty means nix.
	Format string

	// Output receives the rendered environments; defaults to stdout.
	Output io.Writer
}

// Compose resolves and renders the named environments. The name "all"
// expands to every environment declared in the manifest. Environments are
// composed concurrently but rendered in sorted name order, so the output is
// deterministic.
func (a *App) Compose(ctx context.Context, names []string, opts ComposeOptions) error {
	renderer, err := render.For(opts.Format)
	if err != nil {
		return err
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	manifest, err := a.configLoader.Load(opts.ManifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	catalog, err := a.catalogSource.Load(ctx, opts.CatalogPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load catalog")
	}

	specs, err := a.resolveSpecs(manifest, names)
	if err != nil {
		return err
	}

	environments := make(map[string]domain.Environment, len(specs))
	var mu sync.Mutex

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, spec := range specs {
		g.Go(func() error {
			env, err := a.composeOne(groupCtx, spec, catalog)
			if err != nil {
				return err
			}
			mu.Lock()
			environments[spec.Name.String()] = env
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Render in sorted name order for deterministic output.
	sorted := make([]string, 0, len(environments))
	for name := range environments {
		sorted = append(sorted, name)
	}
	slices.Sort(sorted)

	for _, name := range sorted {
		data, err := renderer.Render(environments[name])
		if err != nil {
			return zerr.With(err, "environment", name)
		}
		if _, err := out.Write(data); err != nil {
			return zerr.Wrap(err, "failed to write rendered environment")
		}
	}

	return nil
}

// composeOne composes a single environment under a telemetry vertex and
// records the result in the snapshot store.
func (a *App) composeOne(ctx context.Context, spec domain.EnvironmentSpec, catalog domain.Catalog) (domain.Environment, error) {
	_, vertex := a.telemetry.Record(ctx, fmt.Sprintf("compose %s", spec.Name.String()))

	env, err := a.composer.Compose(spec, catalog)
	if err != nil {
		vertex.Complete(err)
		return domain.Environment{}, err
	}

	if previous, getErr := a.snapshots.Get(env.ID); getErr == nil && previous != nil {
		vertex.Cached()
	} else {
		// Snapshot bookkeeping never fails the composition.
		_ = a.snapshots.Put(env)
	}

	vertex.Complete(nil)
	return env, nil
}

// resolveSpecs expands the requested names against the manifest, failing
// fast on unknown environments.
func (a *App) resolveSpecs(manifest domain.Manifest, names []string) ([]domain.EnvironmentSpec, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoEnvironmentsSpecified
	}

	if slices.Contains(names, "all") {
		names = manifest.Names()
	} else {
		names = slices.Clone(names)
		slices.Sort(names)
		names = slices.Compact(names)
	}

	specs := make([]domain.EnvironmentSpec, 0, len(names))
	for _, name := range names {
		spec, err := manifest.Get(name)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// ListOptions configures a list invocation.
type ListOptions struct {
	// ManifestPath overrides the default manifest location.
	ManifestPath string

	// CatalogPath overrides the default catalog location.
	CatalogPath string

	// Packages lists the catalog packages instead of the manifest
	// environments.
	Packages bool

	// Output receives the listing; defaults to stdout.
	Output io.Writer
}

// List prints the declared environment names, or the catalog package names
// when opts.Packages is set.
func (a *App) List(ctx context.Context, opts ListOptions) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if opts.Packages {
		catalog, err := a.catalogSource.Load(ctx, opts.CatalogPath)
		if err != nil {
			return zerr.Wrap(err, "failed to load catalog")
		}
		for _, name := range catalog.Names() {
			desc, err := catalog.Lookup(name)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "%s@%s\n", name, desc.Version.String()); err != nil {
				return zerr.Wrap(err, "failed to write listing")
			}
		}
		return nil
	}

	manifest, err := a.configLoader.Load(opts.ManifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}
	for _, name := range manifest.Names() {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return zerr.Wrap(err, "failed to write listing")
		}
	}
	return nil
}

// Close releases application resources.
func (a *App) Close() error {
	return a.telemetry.Close()
}
