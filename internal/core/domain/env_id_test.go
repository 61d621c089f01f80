package domain_test

import (
	"testing"

	"go.tarn.ch/denv/internal/core/domain"
)

func testRuntime(t *testing.T) domain.Runtime {
	t.Helper()
	rt, err := domain.ParseRuntimeSpec("python@3.12")
	if err != nil {
		t.Fatalf("ParseRuntimeSpec failed: %v", err)
	}
	return rt
}

func TestGenerateEnvID_Deterministic(t *testing.T) {
	rt := testRuntime(t)
	packages := []domain.Descriptor{
		{Name: domain.NewInternedString("python-docx"), Version: domain.NewInternedString("1.1.2")},
		{Name: domain.NewInternedString("regex"), Version: domain.NewInternedString("2024.5.15")},
	}

	id1 := domain.GenerateEnvID(rt, packages, "digest-1")
	id2 := domain.GenerateEnvID(rt, packages, "digest-1")
	if id1 != id2 {
		t.Errorf("GenerateEnvID() not deterministic: %s != %s", id1, id2)
	}
}

func TestGenerateEnvID_HashFormat(t *testing.T) {
	rt := testRuntime(t)
	id := domain.GenerateEnvID(rt, nil, "")
	if len(id) != 64 {
		t.Errorf("GenerateEnvID() length = %d, want 64 (SHA-256 hex)", len(id))
	}
}

func TestGenerateEnvID_DifferentVersions(t *testing.T) {
	rt := testRuntime(t)
	pkgs1 := []domain.Descriptor{
		{Name: domain.NewInternedString("regex"), Version: domain.NewInternedString("2024.5.15")},
	}
	pkgs2 := []domain.Descriptor{
		{Name: domain.NewInternedString("regex"), Version: domain.NewInternedString("2023.12.25")},
	}

	if domain.GenerateEnvID(rt, pkgs1, "d") == domain.GenerateEnvID(rt, pkgs2, "d") {
		t.Error("GenerateEnvID() produced same hash for different package versions")
	}
}

func TestGenerateEnvID_DifferentCatalogs(t *testing.T) {
	rt := testRuntime(t)
	pkgs := []domain.Descriptor{
		{Name: domain.NewInternedString("regex"), Version: domain.NewInternedString("2024.5.15")},
	}

	if domain.GenerateEnvID(rt, pkgs, "digest-1") == domain.GenerateEnvID(rt, pkgs, "digest-2") {
		t.Error("GenerateEnvID() produced same hash for different catalog digests")
	}
}
