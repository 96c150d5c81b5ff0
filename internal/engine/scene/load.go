package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/instancer/pkg/math"
)

// File is the YAML form of a scene description.
type File struct {
	Meshes    []MeshDesc     `yaml:"meshes"`
	Materials []MaterialDesc `yaml:"materials"`
	Objects   []ObjectDesc   `yaml:"objects"`
}

// MeshDesc describes a mesh by its local bounding box.
type MeshDesc struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Center [3]float32 `yaml:"center"`
	Size   [3]float32 `yaml:"size"`
}

// MaterialDesc describes a material. Instancing defaults to true when
// omitted.
type MaterialDesc struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	Instancing *bool      `yaml:"instancing"`
	Color      [4]float32 `yaml:"color"`
}

// ObjectDesc places a mesh with its materials. An empty mesh is allowed and
// produces an object that is not ready for batching.
type ObjectDesc struct {
	Name      string      `yaml:"name"`
	Mesh      string      `yaml:"mesh"`
	Materials []string    `yaml:"materials"`
	Position  [3]float32  `yaml:"position"`
	Rotation  [3]float32  `yaml:"rotation"` // Euler degrees
	Scale     *[3]float32 `yaml:"scale"`
	Parent    string      `yaml:"parent"`
}

// LoadFile reads and resolves a scene description.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scene description and resolves its references.
func Parse(data []byte) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return f.Resolve()
}

// Resolve turns descriptors into linked scene objects.
func (f *File) Resolve() (*Scene, error) {
	s := &Scene{
		Meshes:    make(map[MeshID]*Mesh, len(f.Meshes)),
		Materials: make(map[MaterialID]*Material, len(f.Materials)),
		Objects:   make([]*Renderable, 0, len(f.Objects)),
	}

	for _, md := range f.Meshes {
		id := MeshID(md.ID)
		if id == "" {
			return nil, fmt.Errorf("mesh without id")
		}
		if _, dup := s.Meshes[id]; dup {
			return nil, fmt.Errorf("duplicate mesh %q", id)
		}
		s.Meshes[id] = &Mesh{
			ID:          id,
			Name:        nameOr(md.Name, md.ID),
			LocalBounds: math.NewAABBFromCenterSize(vec3(md.Center), vec3(md.Size)),
		}
	}

	for _, md := range f.Materials {
		id := MaterialID(md.ID)
		if id == "" {
			return nil, fmt.Errorf("material without id")
		}
		if _, dup := s.Materials[id]; dup {
			return nil, fmt.Errorf("duplicate material %q", id)
		}
		instancing := true
		if md.Instancing != nil {
			instancing = *md.Instancing
		}
		s.Materials[id] = &Material{
			ID:         id,
			Name:       nameOr(md.Name, md.ID),
			Instancing: instancing,
			Color:      md.Color,
		}
	}

	byName := make(map[string]*Renderable, len(f.Objects))
	for i, od := range f.Objects {
		obj := &Renderable{
			Name:    nameOr(od.Name, fmt.Sprintf("object_%d", i)),
			Visible: true,
		}

		if od.Mesh != "" {
			mesh, ok := s.Meshes[MeshID(od.Mesh)]
			if !ok {
				return nil, fmt.Errorf("object %q: unknown mesh %q", obj.Name, od.Mesh)
			}
			obj.Mesh = mesh
		}

		for _, matID := range od.Materials {
			mat, ok := s.Materials[MaterialID(matID)]
			if !ok {
				return nil, fmt.Errorf("object %q: unknown material %q", obj.Name, matID)
			}
			obj.Materials = append(obj.Materials, mat)
		}

		tr := NewTransform(vec3(od.Position))
		tr.Rotation = math.QuatFromEulerDegrees(vec3(od.Rotation))
		if od.Scale != nil {
			tr.Scale = vec3(*od.Scale)
		}
		if od.Parent != "" {
			parent, ok := byName[od.Parent]
			if !ok {
				return nil, fmt.Errorf("object %q: parent %q must be declared earlier", obj.Name, od.Parent)
			}
			tr.Parent = parent.Transform
		}
		obj.Transform = tr

		if _, dup := byName[obj.Name]; dup {
			return nil, fmt.Errorf("duplicate object name %q", obj.Name)
		}
		byName[obj.Name] = obj
		s.Objects = append(s.Objects, obj)
	}

	return s, nil
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func nameOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
