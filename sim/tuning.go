package sim

import (
	"fmt"
	"math"

	"github.com/milk9111/colormaze/ecs"
	"github.com/milk9111/colormaze/physics"
	"github.com/milk9111/colormaze/prefabs"
)

// LoadTuning reads the player, camera and maze specs. Fields left at zero in
// a spec keep their default.
func LoadTuning() (ecs.Tuning, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return ecs.Tuning{}, fmt.Errorf("tuning: load player spec: %w", err)
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return ecs.Tuning{}, fmt.Errorf("tuning: load camera spec: %w", err)
	}
	mazeSpec, err := prefabs.LoadMazeSpec()
	if err != nil {
		return ecs.Tuning{}, fmt.Errorf("tuning: load maze spec: %w", err)
	}
	return TuningFromSpecs(playerSpec, cameraSpec, mazeSpec), nil
}

func TuningFromSpecs(player *prefabs.PlayerSpec, camera *prefabs.CameraSpec, maze *prefabs.MazeSpec) ecs.Tuning {
	t := ecs.DefaultTuning()

	if player != nil {
		t.MoveSpeed = orDefault(player.MoveSpeed, t.MoveSpeed)
		t.PlayerRadius = orDefault(player.Radius, t.PlayerRadius)
		t.CollectRange = orDefault(player.CollectRange, t.CollectRange)
	}

	if camera != nil {
		c := &t.Camera
		c.Distance = orDefault(camera.Distance, c.Distance)
		c.MinDistance = orDefault(camera.MinDistance, c.MinDistance)
		c.MaxDistance = orDefault(camera.MaxDistance, c.MaxDistance)
		c.Height = orDefault(camera.Height, c.Height)
		c.LookHeight = orDefault(camera.LookHeight, c.LookHeight)
		c.HorizontalAngle = radians(camera.HorizontalAngleDeg)
		if camera.VerticalAngleDeg != 0 {
			c.VerticalAngle = radians(camera.VerticalAngleDeg)
		}
		if camera.MaxVerticalAngleDeg != 0 {
			c.MaxVerticalAngle = radians(camera.MaxVerticalAngleDeg)
		}
		c.SensitivityX = orDefault(camera.DragSensitivityX, c.SensitivityX)
		c.SensitivityY = orDefault(camera.DragSensitivityY, c.SensitivityY)
		c.ZoomStep = orDefault(camera.ZoomStep, c.ZoomStep)
		c.Smoothing = orDefault(camera.Smoothness, c.Smoothing)
	}

	if maze != nil {
		b := maze.Bounds
		if b.MaxX > b.MinX && b.MaxZ > b.MinZ {
			t.Bounds = physics.Bounds{MinX: b.MinX, MaxX: b.MaxX, MinZ: b.MinZ, MaxZ: b.MaxZ}
		}
	}

	return t
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
