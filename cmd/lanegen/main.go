// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lanegen generates the fixed-width vector types of package hwy from
// a YAML type table.
//
// Usage:
//
//	lanegen --config lanes.yaml --output .
//
// Or via go:generate (see hwy/generate.go):
//
//	//go:generate go run ../cmd/lanegen --config lanes.yaml --output .
//
// For every shape in the table the generator emits one vector type per lane
// kind plus the boolean sibling, and writes four files:
//  1. vectors.gen.go: types, constructors, lane access, load/store
//  2. arith.gen.go: arithmetic, min/max and comparisons
//  3. bitops.gen.go: bit logic, shifts, masked select, boolean reductions
//  4. convert.gen.go: kind and width conversions
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		configFile string
		outputDir  string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "lanegen",
		Short:         "Generate fixed-width vector types from a lane type table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			gen := &Generator{
				ConfigFile: configFile,
				OutputDir:  outputDir,
				Log:        log,
			}
			return gen.Run()
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "lanes.yaml", "Lane type table")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Output directory")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every written file")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("lanegen failed")
		os.Exit(1)
	}
}
