package ecs

import (
	"github.com/milk9111/colormaze/ecs/component"
	"github.com/milk9111/colormaze/physics"
)

// Tuning collects the numbers the systems read every frame.
type Tuning struct {
	// MoveSpeed is in world units per second.
	MoveSpeed    float64
	PlayerRadius float64
	CollectRange float64
	Bounds       physics.Bounds
	Camera       component.OrbitConfig
}

func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:    4.8,
		PlayerRadius: 0.3,
		CollectRange: 1.2,
		Bounds:       physics.Bounds{MinX: -25, MaxX: 25, MinZ: -25, MaxZ: 25},
		Camera:       component.DefaultOrbitConfig(),
	}
}
