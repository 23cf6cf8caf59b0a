package sweep_test

import (
	"fmt"
	"log"

	"github.com/chuong9x/graphical/linesegment"
	"github.com/chuong9x/graphical/point"
	"github.com/chuong9x/graphical/polygon"
	"github.com/chuong9x/graphical/sweep"
)

func ExampleSweep_HasIntersection() {
	s := sweep.NewFromSegments([]linesegment.LineSegment{
		linesegment.New(0, 0, 10, 10),
		linesegment.New(0, 10, 10, 0),
	})

	crosses, err := s.HasIntersection()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(crosses)
	// Output:
	// true
}

func ExampleSweep_Intersections() {
	s := sweep.NewFromSegments([]linesegment.LineSegment{
		linesegment.New(0, 0, 10, 10),
		linesegment.New(0, 10, 10, 0),
	})

	results, err := s.Intersections()
	if err != nil {
		log.Fatal(err)
	}
	for _, res := range results {
		fmt.Println(res)
	}
	// Output:
	// point (5.000000,5.000000)
}

func ExampleSweep_ComputeBoolean() {
	subject := polygon.New(
		point.New(0, 0),
		point.New(10, 0),
		point.New(10, 10),
		point.New(0, 10),
	)
	clip := polygon.New(
		point.New(5, 5),
		point.New(15, 5),
		point.New(15, 15),
		point.New(5, 15),
	)

	result, err := sweep.NewFromPolygons(subject, clip).ComputeBoolean(sweep.BooleanIntersection)
	if err != nil {
		log.Fatal(err)
	}
	for _, pg := range result {
		fmt.Println(pg)
	}
	// Output:
	// Polygon[(5.000000,5.000000) (10.000000,5.000000) (10.000000,10.000000) (5.000000,10.000000)]
}
