package compose_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.tarn.ch/denv/internal/core/domain"
	"go.tarn.ch/denv/internal/engine/compose"
	"go.trai.ch/zerr"
)

func descriptor(name, version, attrPath string) domain.Descriptor {
	return domain.Descriptor{
		Name:     domain.NewInternedString(name),
		Version:  domain.NewInternedString(version),
		AttrPath: domain.NewInternedString(attrPath),
	}
}

func testCatalog() domain.Catalog {
	return domain.NewCatalog(map[string]domain.Descriptor{
		"python-lsp-server": descriptor("python-lsp-server", "1.11.0", "python312Packages.python-lsp-server"),
		"virtualenv":        descriptor("virtualenv", "20.26.3", "python312Packages.virtualenv"),
		"python-docx":       descriptor("python-docx", "1.1.2", "python312Packages.python-docx"),
		"funcparserlib":     descriptor("funcparserlib", "1.0.1", "python312Packages.funcparserlib"),
		"regex":             descriptor("regex", "2024.5.15", "python312Packages.regex"),
	}, "catalog-digest")
}

func spec(t *testing.T, name, runtime string, packages ...string) domain.EnvironmentSpec {
	t.Helper()
	rt, err := domain.ParseRuntimeSpec(runtime)
	require.NoError(t, err)
	return domain.EnvironmentSpec{
		Name:      domain.NewInternedString(name),
		Runtime:   rt,
		Selection: domain.NewSelection(packages),
	}
}

func TestCompose_ExactImage(t *testing.T) {
	composer := compose.New()

	env, err := composer.Compose(spec(t, "lsp", "python@3.12", "python-lsp-server", "virtualenv"), testCatalog())
	require.NoError(t, err)

	// Exactly the selected descriptors, no extras, no omissions.
	assert.Equal(t, []string{"python-lsp-server", "virtualenv"}, env.PackageNames())
	assert.Equal(t, "python@3.12", env.Runtime.Spec())
	assert.Equal(t, "catalog-digest", env.CatalogDigest)
}

func TestCompose_EmptySelection(t *testing.T) {
	composer := compose.New()

	env, err := composer.Compose(spec(t, "bare", "python@3.12"), testCatalog())
	require.NoError(t, err)

	assert.Empty(t, env.Packages)
	assert.Equal(t, "python@3.12", env.Runtime.Spec())
	assert.Len(t, env.ID, 64)
}

func TestCompose_MissingPackage(t *testing.T) {
	composer := compose.New()

	_, err := composer.Compose(spec(t, "docs", "python@3.12", "python-docx", "parsy"), testCatalog())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPackageNotFound))

	// The lookup failure must name the missing key.
	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "parsy", zErr.Metadata()["package"])
}

func TestCompose_OrderIrrelevant(t *testing.T) {
	composer := compose.New()
	catalog := testCatalog()

	env1, err := composer.Compose(spec(t, "docs", "python@3.12", "python-docx", "regex"), catalog)
	require.NoError(t, err)
	env2, err := composer.Compose(spec(t, "docs", "python@3.12", "regex", "python-docx"), catalog)
	require.NoError(t, err)

	assert.True(t, env1.Equal(env2))
	assert.Equal(t, env1.ID, env2.ID)
}

func TestCompose_DuplicatesCollapse(t *testing.T) {
	composer := compose.New()

	env, err := composer.Compose(spec(t, "docs", "python@3.12", "regex", "regex", "python-docx"), testCatalog())
	require.NoError(t, err)

	assert.Equal(t, []string{"python-docx", "regex"}, env.PackageNames())
}

func TestCompose_Idempotent(t *testing.T) {
	composer := compose.New()
	catalog := testCatalog()
	s := spec(t, "parse", "python@3.12", "funcparserlib", "regex")

	env1, err := composer.Compose(s, catalog)
	require.NoError(t, err)
	env2, err := composer.Compose(s, catalog)
	require.NoError(t, err)

	assert.True(t, env1.Equal(env2))
}

func TestCompose_DifferentCatalogDigest(t *testing.T) {
	composer := compose.New()
	s := spec(t, "parse", "python@3.12", "regex")

	other := domain.NewCatalog(map[string]domain.Descriptor{
		"regex": descriptor("regex", "2024.5.15", "python312Packages.regex"),
	}, "other-digest")

	env1, err := composer.Compose(s, testCatalog())
	require.NoError(t, err)
	env2, err := composer.Compose(s, other)
	require.NoError(t, err)

	assert.NotEqual(t, env1.ID, env2.ID)
}
