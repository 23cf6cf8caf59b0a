// Command booleanop reads a subject and a clip polygon as JSON and prints the
// result of a boolean operation between them as JSON.
//
// Input format (stdin, or a file via --input):
//
//	{"subject": [{"x":0,"y":0}, ...], "clip": [{"x":5,"y":5}, ...]}
//
// The output is a JSON array of polygons, each an array of points. Hole rings wind
// opposite to their enclosing outer ring.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chuong9x/graphical/point"
	"github.com/chuong9x/graphical/polygon"
	"github.com/chuong9x/graphical/sweep"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "booleanop",
		Usage:     "Computes the intersection, union or difference of two polygons and outputs result polygons to stdout as JSON",
		UsageText: "booleanop --op <intersection|union|difference> [--input <file>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "op",
				Usage:    "The boolean operation to perform: intersection, union or difference",
				Value:    "intersection",
				Aliases:  []string{"o"},
				OnlyOnce: true,
				Validator: func(s string) error {
					switch s {
					case "intersection", "union", "difference":
						return nil
					}
					return fmt.Errorf("unknown operation %q", s)
				},
			},
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Path of the JSON input file (defaults to stdin)",
				Aliases:  []string{"i"},
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type input struct {
	Subject []point.Point `json:"subject"`
	Clip    []point.Point `json:"clip"`
}

func app(_ context.Context, cmd *cli.Command) error {

	var op sweep.BooleanOperation
	switch cmd.String("op") {
	case "union":
		op = sweep.BooleanUnion
	case "difference":
		op = sweep.BooleanDifference
	default:
		op = sweep.BooleanIntersection
	}

	reader := io.Reader(os.Stdin)
	if path := cmd.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		reader = f
	}

	var in input
	if err := json.NewDecoder(reader).Decode(&in); err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	subject := polygon.New(in.Subject...)
	clip := polygon.New(in.Clip...)

	result, err := sweep.NewFromPolygons(subject, clip).ComputeBoolean(op)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
