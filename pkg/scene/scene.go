// Package scene builds (Camera, World) pairs in Go, standing in for the
// textual scene-file parser that is out of scope for the core renderer.
package scene

import (
	"github.com/andrely/gorustracer/pkg/camera"
	"github.com/andrely/gorustracer/pkg/world"
)

// Scene bundles a camera and the world it observes.
type Scene struct {
	Camera camera.Camera
	World  *world.World
}
