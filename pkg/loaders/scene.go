package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SceneFile is the JSON scene descriptor. Materials named here add to or
// override the built-in named materials.
type SceneFile struct {
	Materials map[string]MaterialCfg `json:"materials,omitempty"`
	Spheres   []SphereCfg            `json:"spheres"`
	Lights    []LightCfg             `json:"lights"`
	Floor     bool                   `json:"floor,omitempty"`
}

type MaterialCfg struct {
	DiffuseColor     [3]float64 `json:"diffuseColor"`
	Albedo           [4]float64 `json:"albedo"`
	SpecularExponent float64    `json:"specularExponent"`
	RefractiveIndex  float64    `json:"refractiveIndex,omitempty"` // defaults to 1
}

type SphereCfg struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

type LightCfg struct {
	Position  [3]float64 `json:"position"`
	Intensity float64    `json:"intensity"`
}

// LoadScene reads a JSON scene descriptor from a file
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// ParseScene decodes a JSON scene descriptor and validates the result
func ParseScene(r io.Reader) (*scene.Scene, error) {
	var cfg SceneFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return cfg.Build()
}

// Build converts the descriptor into a validated scene
func (cfg SceneFile) Build() (*scene.Scene, error) {
	materials := make(map[string]scene.Material, len(scene.NamedMaterials)+len(cfg.Materials))
	for name, m := range scene.NamedMaterials {
		materials[name] = m
	}
	for name, m := range cfg.Materials {
		materials[name] = m.toMaterial()
	}

	spheres := make([]scene.Sphere, 0, len(cfg.Spheres))
	for i, sc := range cfg.Spheres {
		m, ok := materials[sc.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: unknown material %q", i, sc.Material)
		}
		spheres = append(spheres, scene.NewSphere(vec3(sc.Center), sc.Radius, m))
	}

	lights := make([]scene.Light, 0, len(cfg.Lights))
	for _, lc := range cfg.Lights {
		lights = append(lights, scene.NewLight(vec3(lc.Position), lc.Intensity))
	}

	var floor *scene.Checkerboard
	if cfg.Floor {
		floor = scene.NewCheckerboard()
	}
	return scene.NewScene(spheres, lights, floor)
}

func (m MaterialCfg) toMaterial() scene.Material {
	index := m.RefractiveIndex
	if index == 0 {
		index = 1
	}
	return scene.NewMaterial(
		vec3(m.DiffuseColor),
		core.NewVec4(m.Albedo[0], m.Albedo[1], m.Albedo[2], m.Albedo[3]),
		m.SpecularExponent,
		index,
	)
}

func vec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
