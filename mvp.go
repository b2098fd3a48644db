// Package mvp implements invertible coordinate transformations in one, two
// and three dimensions and a stack to compose them into nested coordinate
// frames: model space, world space, camera space and normalized device
// coordinates (NDC).
//
// Transformations are built from constructors like Translate, Rotate,
// UniformScale, Ortho and Perspective and combined with Compose. Every
// Function carries its own inverse.
//
//  camera := mvp.Compose(mvp.Translate(pos), mvp.RotateY(rotY))
//  view, _ := camera.Inverse()
//  toNDC := mvp.Compose(mvp.CameraSpaceToNDC(), view, model)
//  ndc := toNDC.Apply(vertex)
package mvp

import (
	"strings"

	"github.com/akeil/mvp/internal/logging"
)

// SetLogLevel sets the log level by name.
// One of "debug", "info", "warning", "error"; anything else disables logging.
func SetLogLevel(level string) {
	lvl, err := logging.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
