package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/taxopath/taxopath/combine"
	"github.com/taxopath/taxopath/runner"
)

var (
	pathsDirection      string
	pathsNumClasses     int
	pathsMinDepth       int
	pathsMaxDepth       int
	pathsMaxPaths       int
	pathsBatchSize      int
	pathsChildToParents string
	pathsClassCounts    string
	pathsOut            string
	pathsSeed           int64
	pathsConfigFile     string

	pathsCmd = &cobra.Command{
		Use:   "paths",
		Short: "Generate, deduplicate, combine, and batch taxonomy paths",
		Long: `paths loads a child→parents mapping and a frequency-ranked node list,
then for each of the top-ranked seed nodes enumerates bounded upward and/or
downward paths, deduplicates them, combines them per --direction, and writes
shuffled TSV batches plus a summary log under <out>/<node>/.`,
		RunE: runPaths,
	}
)

func init() {
	f := pathsCmd.Flags()
	f.StringVar(&pathsDirection, "direction", "", "path direction: upward, downward, or both (required)")
	f.IntVar(&pathsNumClasses, "num-classes", runner.DefaultNumClasses, "how many top-ranked seed nodes to process")
	f.IntVar(&pathsMinDepth, "min-depth", 0, "minimum path length in nodes; 0 means no minimum")
	f.IntVar(&pathsMaxDepth, "max-depth", 0, "maximum path length in nodes; 0 means unbounded")
	f.IntVar(&pathsMaxPaths, "max-paths-per-class", 0, "cap on raw paths per node per direction; 0 means unbounded")
	f.IntVar(&pathsBatchSize, "batch-size", combine.DefaultBatchSize, "rows per TSV batch file")
	f.StringVar(&pathsChildToParents, "child-to-parents", "child_to_parents.json", "child→parents mapping file")
	f.StringVar(&pathsClassCounts, "class-counts", "class_counts.json", "ranked node-count file; file order is rank order")
	f.StringVar(&pathsOut, "out", "extracted_paths", "root output directory")
	f.Int64Var(&pathsSeed, "seed", 0, "RNG seed; 0 seeds from the clock")
	f.StringVar(&pathsConfigFile, "config", "", "optional YAML config file; explicit flags win over it")
	rootCmd.AddCommand(pathsCmd)
}

// pathsFileConfig mirrors the paths flags for the optional YAML config
// file. Only fields the command line did not set are taken from it.
type pathsFileConfig struct {
	Direction        string `yaml:"direction"`
	NumClasses       int    `yaml:"num_classes"`
	MinDepth         int    `yaml:"min_depth"`
	MaxDepth         int    `yaml:"max_depth"`
	MaxPathsPerClass int    `yaml:"max_paths_per_class"`
	BatchSize        int    `yaml:"batch_size"`
	ChildToParents   string `yaml:"child_to_parents"`
	ClassCounts      string `yaml:"class_counts"`
	Out              string `yaml:"out"`
	Seed             int64  `yaml:"seed"`
}

func runPaths(cmd *cobra.Command, _ []string) error {
	// 1. Merge the optional config file under the explicit flags.
	if pathsConfigFile != "" {
		if err := mergePathsConfig(cmd); err != nil {
			return err
		}
	}

	// 2. Direction has no default; refusing to guess beats silently
	//    producing paths in the wrong orientation.
	if pathsDirection == "" {
		return errors.New("taxopath: --direction is required (upward, downward, or both)")
	}
	dir, err := combine.ParseDirection(pathsDirection)
	if err != nil {
		return err
	}

	r := runner.New(runner.Config{
		ChildToParents:   pathsChildToParents,
		ClassCounts:      pathsClassCounts,
		OutDir:           pathsOut,
		NumClasses:       pathsNumClasses,
		MinDepth:         pathsMinDepth,
		MaxDepth:         pathsMaxDepth,
		MaxPathsPerClass: pathsMaxPaths,
		BatchSize:        pathsBatchSize,
		Direction:        dir,
		Seed:             pathsSeed,
	}, log)
	return r.Run(cmd.Context())
}

// mergePathsConfig loads the YAML config file and fills in every setting
// whose flag was not changed on the command line.
func mergePathsConfig(cmd *cobra.Command) error {
	data, err := os.ReadFile(pathsConfigFile)
	if err != nil {
		return fmt.Errorf("taxopath: config file: %w", err)
	}
	var fc pathsFileConfig
	if err = yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("taxopath: config file %s: %w", pathsConfigFile, err)
	}

	flags := cmd.Flags()
	fromFile := func(name string, apply func()) {
		if !flags.Changed(name) {
			apply()
		}
	}
	fromFile("direction", func() {
		if fc.Direction != "" {
			pathsDirection = fc.Direction
		}
	})
	fromFile("num-classes", func() {
		if fc.NumClasses != 0 {
			pathsNumClasses = fc.NumClasses
		}
	})
	fromFile("min-depth", func() {
		if fc.MinDepth != 0 {
			pathsMinDepth = fc.MinDepth
		}
	})
	fromFile("max-depth", func() {
		if fc.MaxDepth != 0 {
			pathsMaxDepth = fc.MaxDepth
		}
	})
	fromFile("max-paths-per-class", func() {
		if fc.MaxPathsPerClass != 0 {
			pathsMaxPaths = fc.MaxPathsPerClass
		}
	})
	fromFile("batch-size", func() {
		if fc.BatchSize != 0 {
			pathsBatchSize = fc.BatchSize
		}
	})
	fromFile("child-to-parents", func() {
		if fc.ChildToParents != "" {
			pathsChildToParents = fc.ChildToParents
		}
	})
	fromFile("class-counts", func() {
		if fc.ClassCounts != "" {
			pathsClassCounts = fc.ClassCounts
		}
	})
	fromFile("out", func() {
		if fc.Out != "" {
			pathsOut = fc.Out
		}
	})
	fromFile("seed", func() {
		if fc.Seed != 0 {
			pathsSeed = fc.Seed
		}
	})
	return nil
}
