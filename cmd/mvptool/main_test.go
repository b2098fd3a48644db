package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/mvp"
	"github.com/akeil/mvp/pkg/chain"
)

func defaultCamera() cameraFlags {
	pos := "0,0,40"
	zero := func() *float64 { f := 0.0; return &f }
	return cameraFlags{
		position: &pos,
		rotX:     zero(),
		rotY:     zero(),
		orbit:    zero(),
		spin:     zero(),
		forward:  zero(),
	}
}

func TestApplyAll(t *testing.T) {
	fn, err := chain.Parse2D("translate(2,3)")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = applyAll(&buf, fn, false, []string{"0,0", "1,1"}, chain.ParsePoint2D)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "translate((2, 3))", lines[0])
	assert.Equal(t, "  (0, 0) -> (2, 3)", lines[1])
	assert.Equal(t, "  (1, 1) -> (3, 4)", lines[2])
}

func TestApplyAllInverse(t *testing.T) {
	fn, err := chain.Parse2D("translate(2,3)")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = applyAll(&buf, fn, true, []string{"2,3"}, chain.ParsePoint2D)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "(2, 3) -> (0, 0)")
}

func TestApplyAllErrors(t *testing.T) {
	fn, err := chain.Parse3D("perspective(45,1,-0.1,-100)")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = applyAll(&buf, fn, true, []string{"0,0,-1"}, chain.ParsePoint3D)
	assert.True(t, mvp.IsUnsupportedInverse(err))

	err = applyAll(&buf, fn, false, []string{"0,0,-1", "a,b"}, chain.ParsePoint3D)
	assert.Error(t, err)
	assert.Equal(t, 0, buf.Len())
}

func TestBuildScene(t *testing.T) {
	cam := defaultCamera()
	*cam.rotY = 90
	*cam.forward = 10

	s, err := buildScene(cam)
	require.NoError(t, err)
	assert.InDelta(t, mvp.Radians(90), s.Camera.RotY, 1e-12)
	assert.True(t, s.Camera.Position.IsClose(mvp.Vector3D{X: -10, Y: 0, Z: 40}, 0, 1e-9), "%v", s.Camera.Position)

	bad := defaultCamera()
	pos := "1,2"
	bad.position = &pos
	_, err = buildScene(bad)
	assert.Error(t, err)
}

func TestShowOutlines(t *testing.T) {
	s, err := buildScene(defaultCamera())
	require.NoError(t, err)
	outlines, err := s.Frame()
	require.NoError(t, err)

	var buf bytes.Buffer
	showOutlines(&buf, s, outlines)
	out := buf.String()
	for _, name := range []string{"paddle1", "paddle2", "square"} {
		assert.Contains(t, out, checkmark+" "+name)
	}
}

func TestOrbitFrames(t *testing.T) {
	s, err := buildScene(defaultCamera())
	require.NoError(t, err)

	pages, err := orbitFrames(s, 4)
	require.NoError(t, err)
	assert.Len(t, pages, 4)
	assert.Equal(t, 0.0, s.Orbit)
}

func TestDoPlot(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	s := settings{outDir: dir, size: 64}

	err := doPlot(s, defaultCamera(), []string{"png", "pdf"}, 2)
	require.NoError(t, err)

	for _, name := range []string{"scene.png", "scene.pdf"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, info.Size() > 0, name)
	}
}

func TestDoPlotErrors(t *testing.T) {
	dir := t.TempDir()
	s := settings{outDir: dir, size: 64}

	err := doPlot(s, defaultCamera(), []string{"png"}, 0)
	assert.True(t, mvp.IsInvalidParameter(err))

	err = doPlot(s, defaultCamera(), []string{"svg"}, 1)
	assert.Error(t, err)

	s.size = 0
	err = doPlot(s, defaultCamera(), []string{"png"}, 1)
	assert.True(t, mvp.IsInvalidParameter(err))
	_, err = os.Stat(filepath.Join(dir, "scene.png"))
	assert.True(t, os.IsNotExist(err))
}
