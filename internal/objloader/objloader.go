// Package objloader parses a Wavefront OBJ file and its companion MTL
// material library into triangle meshes: a bufio.Scanner line tokenizer
// reading whitespace-separated fields per line, one case in a switch
// per directive keyword, and fmt.Errorf-wrapped errors naming the
// failing file. Each OBJ shape ("o"/"g" group) becomes one TriangleMesh
// and each material becomes a Lambertian BSDF keyed by its diffuse
// color.
package objloader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arcflux/pathtracer/pkg/bsdf"
	"github.com/arcflux/pathtracer/pkg/core"
	"github.com/arcflux/pathtracer/pkg/shape"
)

// Material is one parsed MTL entry: a name plus the diffuse (and,
// unused by the Lambertian model but retained for round-tripping)
// specular color.
type Material struct {
	Name     string
	Diffuse  core.Spectrum
	Specular core.Spectrum
}

// Mesh is one parsed "o"/"g" group's raw geometry, positions already
// resolved from the OBJ's face indices, ready for shape.NewTriangleMesh.
type Mesh struct {
	Name      string
	Positions []core.Vec3
	Indices   []int
	Material  string // material name, empty if none assigned
}

// LoadResult is everything an OBJ+MTL pair parses to: the raw per-group
// geometry and the material library, before materials have been turned
// into BSDFs and groups into shape.TriangleMesh values.
type LoadResult struct {
	Meshes    []Mesh
	Materials map[string]Material
}

// Load parses path (a .obj file) and any "mtllib" library it references,
// resolved relative to path's directory.
func Load(path string) (*LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objloader: failed to open %s: %w", path, err)
	}
	defer file.Close()

	dir := filepath.Dir(path)
	result := &LoadResult{Materials: map[string]Material{}}

	var positions []core.Vec3
	var current *Mesh
	var currentMaterial string

	flush := func() {
		if current != nil && len(current.Indices) > 0 {
			result.Meshes = append(result.Meshes, *current)
		}
		current = nil
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		directive := fields[0]
		args := fields[1:]

		switch directive {
		case "v":
			v, err := parseVec3(args)
			if err != nil {
				return nil, fmt.Errorf("objloader: %s: bad vertex %q: %w", path, line, err)
			}
			positions = append(positions, v)

		case "mtllib":
			if len(args) == 0 {
				continue
			}
			mtlPath := filepath.Join(dir, args[0])
			mats, err := loadMTL(mtlPath)
			if err != nil {
				return nil, err
			}
			for name, mat := range mats {
				result.Materials[name] = mat
			}

		case "usemtl":
			if len(args) > 0 {
				currentMaterial = args[0]
			}
			if current != nil {
				current.Material = currentMaterial
			}

		case "o", "g":
			flush()
			name := "mesh"
			if len(args) > 0 {
				name = args[0]
			}
			current = &Mesh{Name: name, Material: currentMaterial}

		case "f":
			if current == nil {
				current = &Mesh{Name: "mesh", Material: currentMaterial}
			}
			if err := appendFace(current, positions, args); err != nil {
				return nil, fmt.Errorf("objloader: %s: bad face %q: %w", path, line, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objloader: failed to read %s: %w", path, err)
	}
	flush()

	return result, nil
}

// appendFace triangulates an OBJ face (a fan from vertex 0, so quads and
// higher n-gons are supported) and appends its positions/indices to m.
// Each face vertex's position is copied into m.Positions so the
// resulting mesh is self-contained, matching shape.NewTriangleMesh's
// flat position/index contract.
func appendFace(m *Mesh, positions []core.Vec3, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("face has fewer than 3 vertices")
	}

	faceIndices := make([]int, len(args))
	for i, arg := range args {
		idx, err := parseFaceVertexIndex(arg, len(positions))
		if err != nil {
			return err
		}
		m.Positions = append(m.Positions, positions[idx])
		faceIndices[i] = len(m.Positions) - 1
	}

	for i := 1; i < len(faceIndices)-1; i++ {
		m.Indices = append(m.Indices, faceIndices[0], faceIndices[i], faceIndices[i+1])
	}
	return nil
}

// parseFaceVertexIndex extracts the leading position index from an OBJ
// face vertex token ("v", "v/vt", "v/vt/vn", or "v//vn"), resolving
// negative (relative-to-end) indices per the OBJ spec.
func parseFaceVertexIndex(token string, vertexCount int) (int, error) {
	parts := strings.SplitN(token, "/", 2)
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("bad vertex index %q: %w", token, err)
	}
	if n < 0 {
		n = vertexCount + n + 1
	}
	if n < 1 || n > vertexCount {
		return 0, fmt.Errorf("vertex index %d out of range (have %d vertices)", n, vertexCount)
	}
	return n - 1, nil
}

func parseVec3(args []string) (core.Vec3, error) {
	if len(args) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(args))
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}

// loadMTL parses a material library file into name-keyed Material
// records, tracking "Kd" (diffuse) and "Ks" (specular) directives within
// each "newmtl" block.
func loadMTL(path string) (map[string]Material, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objloader: failed to open material library %s: %w", path, err)
	}
	defer file.Close()

	materials := map[string]Material{}
	var current *Material

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		directive := fields[0]
		args := fields[1:]

		switch directive {
		case "newmtl":
			if current != nil {
				materials[current.Name] = *current
			}
			name := "material"
			if len(args) > 0 {
				name = args[0]
			}
			current = &Material{Name: name}

		case "Kd":
			if current == nil {
				continue
			}
			c, err := parseVec3(args)
			if err != nil {
				return nil, fmt.Errorf("objloader: %s: bad Kd %q: %w", path, line, err)
			}
			current.Diffuse = core.NewSpectrum(c.X, c.Y, c.Z)

		case "Ks":
			if current == nil {
				continue
			}
			c, err := parseVec3(args)
			if err != nil {
				return nil, fmt.Errorf("objloader: %s: bad Ks %q: %w", path, line, err)
			}
			current.Specular = core.NewSpectrum(c.X, c.Y, c.Z)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objloader: failed to read %s: %w", path, err)
	}
	if current != nil {
		materials[current.Name] = *current
	}

	return materials, nil
}

// BuildMeshes turns a LoadResult's raw groups and materials into scene
// shapes: each material becomes a Lambertian BSDF keyed by its diffuse
// color, and each group becomes one shape.TriangleMesh bound to that
// BSDF (or a mid-grey default Lambertian if the group names no
// material).
func BuildMeshes(result *LoadResult) []*shape.TriangleMesh {
	bsdfs := make(map[string]bsdf.BSDF, len(result.Materials))
	for name, mat := range result.Materials {
		bsdfs[name] = bsdf.NewLambertian(mat.Diffuse)
	}
	defaultBSDF := bsdf.NewLambertian(core.NewSpectrum(0.5, 0.5, 0.5))

	meshes := make([]*shape.TriangleMesh, 0, len(result.Meshes))
	for _, m := range result.Meshes {
		var material bsdf.BSDF = defaultBSDF
		if b, ok := bsdfs[m.Material]; ok {
			material = b
		}
		meshes = append(meshes, shape.NewTriangleMesh(m.Positions, m.Indices, material))
	}
	return meshes
}
