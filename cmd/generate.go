package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/smasonuk/cubemesh"
	"github.com/spf13/cobra"
)

const defaultOutput = "synthetic_cube.off"

var generateOpts struct {
	output    string
	dumpGrids bool
}

var generateCmd = &cobra.Command{
	Use:   "generate [N]",
	Short: "Write a cube with N subdivisions per edge",
	Long:  "Generate a subdivided cube mesh. N is read from standard input when it is not given as an argument.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.InOrStdin(), args, generateOpts.output, generateOpts.dumpGrids)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateOpts.output, "output", "o", defaultOutput, "OFF file to write")
	generateCmd.Flags().BoolVar(&generateOpts.dumpGrids, "dump-grids", false, "log the vertex index grid of every face")
	rootCmd.AddCommand(generateCmd)
}

// readSubdivisions takes N from args when present, otherwise the first token of in.
func readSubdivisions(in io.Reader, args []string) (int, error) {
	var token string
	if len(args) > 0 {
		token = args[0]
	} else if _, err := fmt.Fscan(in, &token); err != nil {
		return 0, fmt.Errorf("reading subdivision count: %w", err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("subdivision count %q is not an integer", token)
	}
	if n < 1 {
		return 0, fmt.Errorf("subdivision count %d: %w", n, cubemesh.ErrInvalidSubdivisions)
	}
	return n, nil
}

func runGenerate(in io.Reader, args []string, output string, dumpGrids bool) error {
	n, err := readSubdivisions(in, args)
	if err != nil {
		return err
	}

	log.Printf("Generating cube mesh with %d subdivisions...", n)
	cube, err := cubemesh.Generate(n)
	if err != nil {
		return err
	}

	if dumpGrids {
		for i, g := range cube.Grids {
			log.Printf("face %d (%s):\n%s", i, cubemesh.Faces[i].Name, g)
		}
	}

	if err := cubemesh.SaveOFF(output, cube.Mesh); err != nil {
		return err
	}
	log.Printf("Wrote %s: %d vertices, %d triangles", output, cube.Mesh.VertexCount(), cube.Mesh.TriangleCount())
	return nil
}
