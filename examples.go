package raytracer

import "github.com/pkg/errors"

// ExampleScene1 returns a small canned scene: a single specular sphere
// over a checkered floor plane lit by one point light, the scene that
// cmd/render always renders. It stands in
// for the external parser collaborator, which would normally build a
// Scene/Camera/Config triple from a declarative description.
func ExampleScene1(width, height int) (*Scene, *Camera, Config, error) {
	scene := NewScene()

	sphereMat := DefaultMaterial()
	sphereMat.Diffuse = NewColor(200, 30, 30)
	sphereMat.Reflection = 80
	sphere := NewSphere(SimpleMaterialProvider{Material: sphereMat})
	if err := sphere.MoveGlobal(0, 0, 10); err != nil {
		return nil, nil, Config{}, errors.Wrap(err, "position sphere")
	}

	floorA := DefaultMaterial()
	floorA.Diffuse = Gray(230)
	floorB := DefaultMaterial()
	floorB.Diffuse = Gray(40)
	floor := NewPlane(GridMaterialProvider{A: floorA, B: floorB, RepeatX: 1, RepeatY: 1})
	if err := floor.MoveGlobal(0, -1, 0); err != nil {
		return nil, nil, Config{}, errors.Wrap(err, "position floor")
	}
	if err := floor.RotateX(-90); err != nil {
		return nil, nil, Config{}, errors.Wrap(err, "tilt floor")
	}

	scene.Objects = append(scene.Objects, sphere, floor)

	light := NewPointLight(White, White)
	if err := light.MoveGlobal(-10, 10, -5); err != nil {
		return nil, nil, Config{}, errors.Wrap(err, "position light")
	}
	scene.Lights = append(scene.Lights, light)

	camera := NewCamera(width, height, Focal{Kind: FocalPerspective, F: 1.7}, FlagAntiAliasing)
	cfg := Config{OutputPath: "out.png", Threads: 4, Depth: 4}
	return scene, camera, cfg, nil
}
