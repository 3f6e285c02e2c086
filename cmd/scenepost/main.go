// scenepost is a CLI utility for running the post-import processing
// pipeline over scene description files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/scenepost/internal/config"
	"github.com/Faultbox/scenepost/internal/logger"
	"github.com/Faultbox/scenepost/pkg/postprocess"
	"github.com/Faultbox/scenepost/pkg/postprocess/uvtrans"
	"github.com/Faultbox/scenepost/pkg/scene"
)

func main() {
	config.ParseFlags()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	rest := args[1:]

	switch command {
	case "run":
		cmdRun(cfg, rest)
	case "info":
		cmdInfo(rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`scenepost - post-import scene processing pipeline

Usage:
  scenepost [flags] <command> [arguments]

Commands:
  run <scene.yaml> [output.yaml]  Run the pipeline, write the processed scene
  info <scene.yaml>               Summarize materials, meshes and UV transforms

Flags:
  -config path     Explicit config file
  -debug           Debug logging
  -log-file path   Log to a rotated file
  -tolerance f     Override the UV transform merge tolerance
  -force-baking    Always bake UV transforms, never share channels

Examples:
  scenepost run scene.yaml processed.yaml
  scenepost -force-baking run scene.yaml
  scenepost info processed.yaml`)
}

func cmdRun(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: scenepost run <scene.yaml> [output.yaml]")
		os.Exit(1)
	}
	input := args[0]
	output := input
	if len(args) >= 2 {
		output = args[1]
	}

	sc, err := scene.Load(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runner := postprocess.NewRunner(cfg.Properties())
	runner.Register(uvtrans.New())

	if err := runner.Run(sc, postprocess.FlagTransformUVCoords); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := scene.Save(output, sc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Processed %d materials, %d meshes -> %s\n", len(sc.Materials), len(sc.Meshes), output)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: scenepost info <scene.yaml>")
		os.Exit(1)
	}

	sc, err := scene.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scene: %s\n", args[0])
	fmt.Printf("  Materials: %d\n", len(sc.Materials))
	for _, mat := range sc.Materials {
		fmt.Printf("    %-20s %d texture slot(s)\n", mat.Name, len(mat.Textures))
		for _, slot := range mat.Textures {
			tr := slot.Transform
			transformed := tr != scene.DefaultUVTransform()
			fmt.Printf("      %s[%d] src=%d channel=%d transformed=%v\n",
				slot.Semantic, slot.Index, slot.UVSource, slot.UVChannel, transformed)
		}
	}
	fmt.Printf("  Meshes: %d\n", len(sc.Meshes))
	for _, mesh := range sc.Meshes {
		verts := 0
		if mesh.UVChannelCount() > 0 && mesh.UV[0] != nil {
			verts = len(mesh.UV[0])
		}
		fmt.Printf("    %-20s material=%d uv-channels=%d vertices=%d\n",
			mesh.Name, mesh.MaterialIndex, mesh.UVChannelCount(), verts)
	}
}
