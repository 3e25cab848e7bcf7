// Copyright 2025 Wikidown Authors
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

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikidown/wikidown/pkg/errs"
	"github.com/wikidown/wikidown/pkg/log"
	"github.com/wikidown/wikidown/pkg/lsp"
	"github.com/wikidown/wikidown/pkg/version"
	"github.com/wikidown/wikidown/pkg/wikidownls"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the language server",
	Long: `Start the wikidown language server. The server communicates over
stdin/stdout using the Language Server Protocol; diagnostics, logging, and
every other side channel go to the log file (or stderr, by default).`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("log-file", "", "path to write logs to (default: stderr)")
	serveCmd.Flags().String("log-level", "info", "log level: debug, info, warn, error")
	serveCmd.Flags().String("log-format", "text", "log format: text, json")
}

func runServe(cmd *cobra.Command, args []string) error {
	logFile, _ := cmd.Flags().GetString("log-file")
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	logFormatStr, _ := cmd.Flags().GetString("log-format")

	level := log.ParseLevel(logLevelStr)
	format := log.ParseFormat(logFormatStr)

	var logger *log.Logger
	if logFile != "" {
		var err error
		logger, err = log.NewFile(logFile, level, format)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
	} else {
		logger = log.NewLsp(level, format)
	}

	reader := bufio.NewReader(os.Stdin)
	writer := bufio.NewWriter(os.Stdout)

	server := wikidownls.NewServer(version.Get(), logger)
	mux := lsp.NewMux(reader, writer, version.Get(), logger)
	mux.SetServer(server)

	// Run returns either when the transport can no longer be read (a
	// client disconnecting, a normal end of life) or when initialize
	// failed with NoWorkspace, which is fatal per §7 and must exit
	// nonzero instead of idling with no handlers registered.
	if err := mux.Run(); err != nil {
		if errors.Is(err, errs.NoWorkspace) {
			logger.Error("no workspace folder could be resolved, exiting", "error", err)
			return err
		}
		logger.Info("lsp message loop ended", "error", err)
	}
	return nil
}
