package prefabs

import (
	"testing"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player: %v", err)
	}
	if player.MoveSpeed != 4.8 || player.Radius != 0.3 || player.CollectRange != 1.2 {
		t.Fatalf("unexpected player spec %+v", *player)
	}

	camera, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("load camera: %v", err)
	}
	if camera.Distance != 4 || camera.MinDistance != 2 || camera.MaxDistance != 8 {
		t.Fatalf("unexpected camera distances %+v", *camera)
	}
	if camera.VerticalAngleDeg != 30 || camera.MaxVerticalAngleDeg != 72 {
		t.Fatalf("unexpected camera angles %+v", *camera)
	}

	maze, err := LoadMazeSpec()
	if err != nil {
		t.Fatalf("load maze: %v", err)
	}
	if maze.Bounds.MinX != -25 || maze.Bounds.MaxZ != 25 {
		t.Fatalf("unexpected maze bounds %+v", maze.Bounds)
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	if _, err := LoadSpec[PlayerSpec]("nope.yaml"); err == nil {
		t.Fatal("expected error for missing spec")
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"player.yaml", "player.yaml"},
		{"prefabs/camera.yaml", "camera.yaml"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := cleanPrefabPath(c.in); got != c.want {
				t.Fatalf("cleanPrefabPath(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestWatchedFileKinds(t *testing.T) {
	cases := []struct {
		path  string
		spec  bool
		level bool
	}{
		{"prefabs/player.yaml", true, false},
		{"prefabs/camera.YML", true, false},
		{"levels/default.json", false, true},
		{"README.md", false, false},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			if got := IsSpecFile(c.path); got != c.spec {
				t.Fatalf("IsSpecFile = %v, want %v", got, c.spec)
			}
			if got := isLevelFile(c.path); got != c.level {
				t.Fatalf("isLevelFile = %v, want %v", got, c.level)
			}
		})
	}
}
