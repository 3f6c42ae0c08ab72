// Command pointcloud generates a point cloud and prints the size of its
// convex hull.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/akmonengine/convexhull"
	"github.com/pkg/profile"
)

func main() {
	var (
		shape     = flag.String("shape", ShapeSphere, "point cloud shape: cube, sphere, grid or random")
		n         = flag.Int("n", 10000, "number of points")
		dim       = flag.Int("dim", 3, "dimension")
		seed      = flag.Uint64("seed", 1, "random seed")
		perturb   = flag.Float64("perturb", 0, "jitter amplitude for degenerate input, well above -tolerance (1e-2 for a unit grid), 0 disables it")
		tolerance = flag.Float64("tolerance", convexhull.DefaultPlaneDistanceTolerance, "plane distance tolerance")
		verbose   = flag.Bool("v", false, "debug logging")
		profiling = flag.Bool("profile", false, "write a CPU profile")
	)
	flag.Parse()

	if *verbose {
		convexhull.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(*shape, *n, *dim, *seed, *perturb, *tolerance, *profiling); err != nil {
		log.Fatal(err)
	}
}

// run generates the cloud and computes its hull. The profiler, if any, is
// stopped before it returns.
func run(shape string, n, dim int, seed uint64, perturb, tolerance float64, profiling bool) error {
	if profiling {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	points, err := Generate(shape, n, dim, seed)
	if err != nil {
		return fmt.Errorf("failed to generate points: %w", err)
	}

	cfg := convexhull.DefaultConfig()
	cfg.PlaneDistanceTolerance = tolerance
	if perturb > 0 {
		cfg.DegenerateInputHandling = convexhull.DegeneratePerturbInternal
		cfg.PerturbationGenerator = convexhull.RandomPerturbation(seed, perturb)
	}

	start := time.Now()
	hull, err := convexhull.Create(points, &cfg)
	if err != nil {
		return fmt.Errorf("failed to compute hull: %w", err)
	}
	elapsed := time.Since(start)

	log.Printf("%s: %d points in %dD", shape, len(points), dim)
	log.Printf("hull: %d faces, %d vertices (%v)", len(hull.Faces), len(hull.Points), elapsed)
	return nil
}
