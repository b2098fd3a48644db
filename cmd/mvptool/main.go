package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/mvp"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

type settings struct {
	logLevel string
	outDir   string
	size     int
}

// cameraFlags are shared by the scene and plot commands.
type cameraFlags struct {
	position *string
	rotX     *float64
	rotY     *float64
	orbit    *float64
	spin     *float64
	forward  *float64
}

func addCameraFlags(cmd *kingpin.CmdClause) cameraFlags {
	return cameraFlags{
		position: cmd.Flag("camera", "Camera position as x,y,z").Default("0,0,40").String(),
		rotX:     cmd.Flag("rot-x", "Camera rotation around x in degrees").Default("0").Float64(),
		rotY:     cmd.Flag("rot-y", "Camera rotation around y in degrees").Default("0").Float64(),
		orbit:    cmd.Flag("orbit", "Orbit angle of the square in degrees").Default("0").Float64(),
		spin:     cmd.Flag("spin", "Rotation of the square in degrees").Default("0").Float64(),
		forward:  cmd.Flag("forward", "Move the camera forward along its view").Default("0").Float64(),
	}
}

func main() {
	app := kingpin.New("mvptool", "Model, view and projection transforms")
	app.HelpFlag.Short('h')

	var s settings
	app.Flag("log-level", "Log level (debug|info|warning|error|none)").
		Short('l').
		Envar("MVP_LOG_LEVEL").
		Default("warning").
		EnumVar(&s.logLevel, "debug", "info", "warning", "error", "none")

	apply := app.Command("apply", "Apply a transform chain to points")
	var (
		dim     = apply.Flag("dim", "Dimension of the points").Short('d').Default("2").Enum("2", "3")
		inverse = apply.Flag("inverse", "Apply the inverse of the chain").Short('i').Bool()
		expr    = apply.Flag("chain", "Transform chain, e.g. \"translate(1,2) rotate(90)\"").Short('c').Required().String()
		points  = apply.Arg("points", "Points as x,y or x,y,z").Required().Strings()
	)

	sceneCmd := app.Command("scene", "Print the demo scene in NDC").Default()
	sceneCam := addCameraFlags(sceneCmd)

	plotCmd := app.Command("plot", "Plot the demo scene")
	plotCam := addCameraFlags(plotCmd)
	var (
		formats = plotCmd.Flag("format", "Output format, repeat for several").Short('f').Default("png").Enums("png", "pdf")
		frames  = plotCmd.Flag("frames", "Number of PDF pages, orbit advances per page").Default("1").Int()
	)
	plotCmd.Flag("output", "Output directory").Short('o').Envar("MVP_OUTPUT").Default(".").StringVar(&s.outDir)
	plotCmd.Flag("size", "Edge length of the plot").Envar("MVP_PLOT_SIZE").Default("512").IntVar(&s.size)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	mvp.SetLogLevel(s.logLevel)

	var err error
	switch command {
	case apply.FullCommand():
		err = doApply(*dim, *expr, *inverse, *points)
	case sceneCmd.FullCommand():
		err = doScene(sceneCam)
	case plotCmd.FullCommand():
		err = doPlot(s, plotCam, *formats, *frames)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
