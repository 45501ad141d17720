package main

import (
	"github.com/arcflux/pathtracer/internal/objloader"
	"github.com/arcflux/pathtracer/pkg/bsdf"
	"github.com/arcflux/pathtracer/pkg/core"
	"github.com/arcflux/pathtracer/pkg/light"
	"github.com/arcflux/pathtracer/pkg/scene"
	"github.com/arcflux/pathtracer/pkg/shape"
)

// buildScene loads objPath if non-empty, otherwise returns the built-in
// Cornell box scene, so the CLI produces an image with zero arguments.
func buildScene(objPath string) (*scene.Scene, error) {
	if objPath != "" {
		return loadOBJScene(objPath)
	}
	return cornellBoxScene(), nil
}

func loadOBJScene(path string) (*scene.Scene, error) {
	result, err := objloader.Load(path)
	if err != nil {
		return nil, err
	}

	s := scene.New()
	for _, mesh := range objloader.BuildMeshes(result) {
		s.AddShape(mesh)
	}
	s.AddLight(light.NewPointLight(core.NewVec3(0, 1000, 0), core.NewSpectrum(2e6, 2e6, 2e6)))
	s.Preprocess()
	return s, nil
}

// cornellBoxScene builds the classic 100x80x230 Cornell box: red left
// wall, blue right wall, grey back/floor/ceiling, a mirror sphere, a
// Fresnel-dielectric sphere, and a single point light.
func cornellBoxScene() *scene.Scene {
	s := scene.New()

	red := bsdf.NewLambertian(core.NewSpectrum(0.75, 0.25, 0.25))
	blue := bsdf.NewLambertian(core.NewSpectrum(0.25, 0.25, 0.75))
	grey := bsdf.NewLambertian(core.NewSpectrum(0.75, 0.75, 0.75))
	mirror := bsdf.NewPerfectConductor(core.NewSpectrum(0.99, 0.99, 0.99))
	glass := bsdf.NewFresnelDielectric(core.NewSpectrum(1, 1, 1), 1.5)

	const w, h, d = 100.0, 80.0, 230.0

	addQuad(s, grey,
		core.NewVec3(0, 0, 0), core.NewVec3(w, 0, 0), core.NewVec3(w, 0, d), core.NewVec3(0, 0, d)) // floor
	addQuad(s, grey,
		core.NewVec3(0, h, d), core.NewVec3(w, h, d), core.NewVec3(w, h, 0), core.NewVec3(0, h, 0)) // ceiling
	addQuad(s, grey,
		core.NewVec3(0, 0, d), core.NewVec3(w, 0, d), core.NewVec3(w, h, d), core.NewVec3(0, h, d)) // back
	addQuad(s, red,
		core.NewVec3(0, 0, d), core.NewVec3(0, 0, 0), core.NewVec3(0, h, 0), core.NewVec3(0, h, d)) // left
	addQuad(s, blue,
		core.NewVec3(w, 0, 0), core.NewVec3(w, 0, d), core.NewVec3(w, h, d), core.NewVec3(w, h, 0)) // right

	s.AddShape(shape.NewSphere(core.NewVec3(27, 16.5, 47), 16.5, mirror))
	s.AddShape(shape.NewSphere(core.NewVec3(73, 16.5, 88), 16.5, glass))

	s.AddLight(light.NewPointLight(core.NewVec3(80, 60, 85), core.NewSpectrum(700, 700, 700)))

	s.Preprocess()
	return s
}

// addQuad adds two triangles spanning v0..v3 (v0,v1,v2 and v0,v2,v3, so
// both follow the winding of the v0..v3 order) as one mesh sharing mat.
func addQuad(s *scene.Scene, mat bsdf.BSDF, v0, v1, v2, v3 core.Vec3) {
	positions := []core.Vec3{v0, v1, v2, v3}
	indices := []int{0, 1, 2, 0, 2, 3}
	s.AddShape(shape.NewTriangleMesh(positions, indices, mat))
}
