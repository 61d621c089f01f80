package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.tarn.ch/denv/cmd/denv/commands"
	"go.tarn.ch/denv/internal/app"
	"go.tarn.ch/denv/internal/core/domain"
	"go.tarn.ch/denv/internal/core/ports/mocks"
	"go.tarn.ch/denv/internal/engine/compose"
	"go.uber.org/mock/gomock"
)

func testManifest(t *testing.T) domain.Manifest {
	t.Helper()
	rt, err := domain.ParseRuntimeSpec("python@3.12")
	if err != nil {
		t.Fatalf("ParseRuntimeSpec failed: %v", err)
	}
	return domain.NewManifest([]domain.EnvironmentSpec{
		{
			Name:      domain.NewInternedString("docs"),
			Runtime:   rt,
			Selection: domain.NewSelection([]string{"python-docx"}),
		},
	})
}

func testCatalog() domain.Catalog {
	return domain.NewCatalog(map[string]domain.Descriptor{
		"python-docx": {
			Name:     domain.NewInternedString("python-docx"),
			Version:  domain.NewInternedString("1.1.2"),
			AttrPath: domain.NewInternedString("python312Packages.python-docx"),
		},
	}, "digest")
}

func TestCompose_WritesOutputFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockSource := mocks.NewMockCatalogSource(ctrl)
	mockStore := mocks.NewMockSnapshotStore(ctrl)

	mockLoader.EXPECT().Load("").Return(testManifest(t), nil).Times(1)
	mockSource.EXPECT().Load(gomock.Any(), "").Return(testCatalog(), nil).Times(1)
	mockStore.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(1)
	mockStore.EXPECT().Put(gomock.Any()).Return(nil).Times(1)

	a := app.New(mockLoader, mockSource, compose.New(), mockStore, nil)
	cli := commands.New(a)

	outputPath := filepath.Join(t.TempDir(), "shell.nix")
	cli.SetArgs([]string{"compose", "docs", "-o", outputPath})

	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(outputPath) //nolint:gosec // test-owned path
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), "pkgs.python312Packages.python-docx") {
		t.Errorf("expected rendered package in output, got:\n%s", data)
	}
}

func TestCompose_ConfigFlagPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockSource := mocks.NewMockCatalogSource(ctrl)
	mockStore := mocks.NewMockSnapshotStore(ctrl)

	mockLoader.EXPECT().Load("custom.yaml").Return(testManifest(t), nil).Times(1)
	mockSource.EXPECT().Load(gomock.Any(), "pins.yaml").Return(testCatalog(), nil).Times(1)
	mockStore.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(1)
	mockStore.EXPECT().Put(gomock.Any()).Return(nil).Times(1)

	a := app.New(mockLoader, mockSource, compose.New(), mockStore, nil)
	cli := commands.New(a)

	outputPath := filepath.Join(t.TempDir(), "shell.nix")
	cli.SetArgs([]string{"compose", "docs", "-c", "custom.yaml", "--catalog", "pins.yaml", "-o", outputPath})

	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestCompose_NoEnvironments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockSource := mocks.NewMockCatalogSource(ctrl)
	mockStore := mocks.NewMockSnapshotStore(ctrl)

	a := app.New(mockLoader, mockSource, compose.New(), mockStore, nil)
	cli := commands.New(a)

	// No environments just displays help.
	cli.SetArgs([]string{"compose"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for no environments, got: %v", err)
	}
}

func TestCompose_UnknownEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockSource := mocks.NewMockCatalogSource(ctrl)
	mockStore := mocks.NewMockSnapshotStore(ctrl)

	mockLoader.EXPECT().Load("").Return(testManifest(t), nil).Times(1)
	mockSource.EXPECT().Load(gomock.Any(), "").Return(testCatalog(), nil).Times(1)

	a := app.New(mockLoader, mockSource, compose.New(), mockStore, nil)
	cli := commands.New(a)

	cli.SetArgs([]string{"compose", "missing"})

	if err := cli.Execute(context.Background()); err == nil {
		t.Error("Expected error for unknown environment, got nil")
	}
}

func TestList_Environments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockSource := mocks.NewMockCatalogSource(ctrl)
	mockStore := mocks.NewMockSnapshotStore(ctrl)

	mockLoader.EXPECT().Load("").Return(testManifest(t), nil).Times(1)

	a := app.New(mockLoader, mockSource, compose.New(), mockStore, nil)
	cli := commands.New(a)

	cli.SetArgs([]string{"list"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestList_Packages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockSource := mocks.NewMockCatalogSource(ctrl)
	mockStore := mocks.NewMockSnapshotStore(ctrl)

	mockSource.EXPECT().Load(gomock.Any(), "").Return(testCatalog(), nil).Times(1)

	a := app.New(mockLoader, mockSource, compose.New(), mockStore, nil)
	cli := commands.New(a)

	cli.SetArgs([]string{"list", "--packages"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRoot_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockSource := mocks.NewMockCatalogSource(ctrl)
	mockStore := mocks.NewMockSnapshotStore(ctrl)

	a := app.New(mockLoader, mockSource, compose.New(), mockStore, nil)
	cli := commands.New(a)

	cli.SetArgs([]string{"--help"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockSource := mocks.NewMockCatalogSource(ctrl)
	mockStore := mocks.NewMockSnapshotStore(ctrl)

	a := app.New(mockLoader, mockSource, compose.New(), mockStore, nil)
	cli := commands.New(a)

	cli.SetArgs([]string{"version"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}
