package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_Intersect_AimedAtCenter(t *testing.T) {
	tests := []struct {
		name   string
		origin core.Vec3
		center core.Vec3
		radius float64
	}{
		{"down -z", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -10), 2},
		{"offset origin", core.NewVec3(1, 2, 3), core.NewVec3(-3, 0, -16), 2},
		{"large sphere", core.NewVec3(0, 0, 0), core.NewVec3(20, 20, 20), 15},
		{"tiny sphere", core.NewVec3(5, -5, 0), core.NewVec3(5, 5, 0), 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, Ivory)
			toCenter := tt.center.Subtract(tt.origin)
			ray := core.NewRay(tt.origin, toCenter.Normalize())

			dist, hit := sphere.Intersect(ray)
			if !hit {
				t.Fatal("Expected hit, but got miss")
			}

			expected := toCenter.Length() - tt.radius
			if math.Abs(dist-expected) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", expected, dist)
			}
		})
	}
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -10), 1, Ivory)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"passes above", core.NewRay(core.NewVec3(0, 1.5, 0), core.NewVec3(0, 0, -1))},
		{"passes beside", core.NewRay(core.NewVec3(-1.01, 0, 0), core.NewVec3(0, 0, -1))},
		{"points away", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))},
		{"behind origin", core.NewRay(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, -1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if dist, hit := sphere.Intersect(tt.ray); hit {
				t.Errorf("Expected miss, but got hit at t=%f", dist)
			}
		})
	}
}

func TestSphere_Intersect_FromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2, Glass)
	ray := core.NewRay(core.NewVec3(0, 0, 0.5), core.NewVec3(0, 0, -1))

	dist, hit := sphere.Intersect(ray)
	if !hit {
		t.Fatal("Expected hit from inside the sphere")
	}
	if math.Abs(dist-2.5) > 1e-9 {
		t.Errorf("Expected far distance 2.5, got %f", dist)
	}

	normal := sphere.NormalAt(ray.At(dist))
	if normal.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected outward normal (0,0,-1), got %v", normal)
	}
}

func TestCheckerboard_Intersect(t *testing.T) {
	floor := NewCheckerboard()

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{
			name:      "straight down inside rectangle",
			ray:       core.NewRay(core.NewVec3(0, 0, -20), core.NewVec3(0, -1, 0)),
			expectHit: true,
			expectedT: 4,
		},
		{
			name:      "parallel to plane",
			ray:       core.NewRay(core.NewVec3(0, 0, -20), core.NewVec3(1, 0.0005, 0).Normalize()),
			expectHit: false,
		},
		{
			name:      "pointing up",
			ray:       core.NewRay(core.NewVec3(0, 0, -20), core.NewVec3(0, 1, 0)),
			expectHit: false,
		},
		{
			name:      "outside x range",
			ray:       core.NewRay(core.NewVec3(12, 0, -20), core.NewVec3(0, -1, 0)),
			expectHit: false,
		},
		{
			name:      "too close in z",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, -1, 0)),
			expectHit: false,
		},
		{
			name:      "too far in z",
			ray:       core.NewRay(core.NewVec3(0, 0, -35), core.NewVec3(0, -1, 0)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, point, hit := floor.Intersect(tt.ray)
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, hit)
			}
			if !hit {
				return
			}
			if math.Abs(dist-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, dist)
			}
			if math.Abs(point.Y-floor.Height) > 1e-9 {
				t.Errorf("Expected hit on plane y=%f, got %v", floor.Height, point)
			}
		})
	}
}

func TestCheckerboard_MaterialAt(t *testing.T) {
	floor := NewCheckerboard()

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		// int(0.5*0.5+1000)=1000, int(-5.5)=-5 -> 995 odd
		{"near origin column", core.NewVec3(0.5, -4, -11), floor.OddColor},
		// int(1.5+1000)=1001, int(-5.5)=-5 -> 996 even
		{"next tile in x", core.NewVec3(3, -4, -11), floor.EvenColor},
		// int(-0.5+1000)=999, int(-5.5)=-5 -> 994 even
		{"negative x", core.NewVec3(-1, -4, -11), floor.EvenColor},
		// int(1000.25)=1000, int(-6.5)=-6 -> 994 even
		{"next tile in z", core.NewVec3(0.5, -4, -13), floor.EvenColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			material := floor.MaterialAt(tt.point)
			if material.DiffuseColor != tt.expected {
				t.Errorf("Expected color %v, got %v", tt.expected, material.DiffuseColor)
			}
			if material.Albedo != core.NewVec4(1, 0, 0, 0) {
				t.Errorf("Expected purely diffuse albedo, got %v", material.Albedo)
			}
		})
	}
}

func TestNewScene_Validation(t *testing.T) {
	light := NewLight(core.NewVec3(0, 10, 0), 1)
	badIndex := NewMaterial(core.NewVec3(1, 1, 1), core.NewVec4(0, 0, 0, 1), 0, 0.9)
	badAlbedo := NewMaterial(core.NewVec3(1, 1, 1), core.NewVec4(-0.1, 0, 0, 0), 0, 1)

	tests := []struct {
		name        string
		spheres     []Sphere
		lights      []Light
		expectedErr error
	}{
		{"valid", []Sphere{NewSphere(core.NewVec3(0, 0, -5), 1, Ivory)}, []Light{light}, nil},
		{"empty", nil, nil, nil},
		{"zero radius", []Sphere{NewSphere(core.NewVec3(0, 0, -5), 0, Ivory)}, []Light{light}, ErrInvalidRadius},
		{"negative radius", []Sphere{NewSphere(core.NewVec3(0, 0, -5), -1, Ivory)}, []Light{light}, ErrInvalidRadius},
		{"zero intensity", nil, []Light{NewLight(core.NewVec3(0, 0, 0), 0)}, ErrInvalidIntensity},
		{"refractive index below one", []Sphere{NewSphere(core.NewVec3(0, 0, -5), 1, badIndex)}, nil, ErrInvalidRefractiveIndex},
		{"negative albedo", []Sphere{NewSphere(core.NewVec3(0, 0, -5), 1, badAlbedo)}, nil, ErrNegativeAlbedo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScene(tt.spheres, tt.lights, nil)
			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if s == nil {
					t.Fatal("Expected scene, got nil")
				}
				return
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("Expected error %v, got %v", tt.expectedErr, err)
			}
			if s != nil {
				t.Errorf("Expected nil scene on error, got %v", s)
			}
		})
	}
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if len(s.Spheres) != 4 {
		t.Errorf("Expected 4 spheres, got %d", len(s.Spheres))
	}
	if len(s.Lights) != 3 {
		t.Errorf("Expected 3 lights, got %d", len(s.Lights))
	}
	if s.Floor == nil {
		t.Error("Expected default scene to have a checkerboard floor")
	}
	if s.Spheres[1].Material != Glass {
		t.Errorf("Expected second sphere to be glass, got %+v", s.Spheres[1].Material)
	}
}
