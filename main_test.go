package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"cover scene", "cover", false},
		{"simple scene", "simple", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, 42)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error for scene type %q, got none", tt.sceneType)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for scene type %q: %v", tt.sceneType, err)
			}
			if s == nil {
				t.Fatalf("expected scene for type %q, got nil", tt.sceneType)
			}
			if s.Camera == nil {
				t.Errorf("scene %q has no camera", tt.sceneType)
			}
			if s.CameraConfig.AspectRatio <= 0 {
				t.Errorf("scene %q aspect ratio = %v, want positive", tt.sceneType, s.CameraConfig.AspectRatio)
			}
		})
	}
}

func TestRun_WritesPPM(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.ppm")

	err := run("simple", 8, 1, 1, 2.0, 42, 1, "ppm", output)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n8 4\n255\n") {
		t.Errorf("output does not start with a P3 header: %q", string(data[:min(len(data), 20)]))
	}
}

func TestRun_RejectsBadInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.ppm")

	if err := run("nonexistent", 8, 1, 1, 2.0, 42, 1, "ppm", output); err == nil {
		t.Error("expected error for unknown scene")
	}
	if err := run("simple", 8, 1, 1, 2.0, 42, 1, "gif", output); err == nil {
		t.Error("expected error for unknown format")
	}
	if err := run("simple", 8, 0, 1, 2.0, 42, 1, "ppm", output); err == nil {
		t.Error("expected error for zero samples")
	}
}
