// Copyright 2025 the original author or authors.
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

// Package cli holds the root command and the flag helpers shared by the
// svgmap sub-commands.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the svgmap command; sub-commands register themselves with it.
var RootCmd = &cobra.Command{
	Use:   "svgmap",
	Short: "Render GeoJSON as SVG maps",
	Long:  "Render GeoJSON as SVG maps and inspect GeoJSON files",
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil || !verbose {
			return
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debugging information to stderr")
}

// Execute runs the command line.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
