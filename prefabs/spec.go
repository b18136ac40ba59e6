package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	PlayerSpecFile = "player.yaml"
	CameraSpecFile = "camera.yaml"
	MazeSpecFile   = "maze.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec tunes the player avatar. MoveSpeed is in world units per second.
type PlayerSpec struct {
	Name         string  `yaml:"name"`
	MoveSpeed    float64 `yaml:"move_speed"`
	Radius       float64 `yaml:"radius"`
	CollectRange float64 `yaml:"collect_range"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// CameraSpec tunes the orbit camera. Angles ending in _deg are in degrees,
// sensitivities in radians per pixel of drag.
type CameraSpec struct {
	Name                string  `yaml:"name"`
	Distance            float64 `yaml:"distance"`
	MinDistance         float64 `yaml:"min_distance"`
	MaxDistance         float64 `yaml:"max_distance"`
	Height              float64 `yaml:"height"`
	LookHeight          float64 `yaml:"look_height"`
	HorizontalAngleDeg  float64 `yaml:"horizontal_angle_deg"`
	VerticalAngleDeg    float64 `yaml:"vertical_angle_deg"`
	MaxVerticalAngleDeg float64 `yaml:"max_vertical_angle_deg"`
	DragSensitivityX    float64 `yaml:"drag_sensitivity_x"`
	DragSensitivityY    float64 `yaml:"drag_sensitivity_y"`
	ZoomStep            float64 `yaml:"zoom_step"`
	Smoothness          float64 `yaml:"smoothness"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BoundsSpec struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinZ float64 `yaml:"min_z"`
	MaxZ float64 `yaml:"max_z"`
}

// MazeSpec holds the arena limits shared by every level.
type MazeSpec struct {
	Name   string     `yaml:"name"`
	Bounds BoundsSpec `yaml:"bounds"`
}

func LoadMazeSpec() (*MazeSpec, error) {
	spec, err := LoadSpec[MazeSpec](MazeSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
