package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/loss-pager/loss"
)

var version = "dev" // set during build via -ldflags

var (
	flagLogFile   string
	flagChunkSize int64
	flagMaxChunks int
	flagFollow    bool
	flagEncoding  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "loss: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "loss <filename>",
	Short:   "A terminal pager built for byte-offset navigation of large log files",
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runLoss,
}

func init() {
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "loss.log", "diagnostic log file path")
	rootCmd.Flags().Int64Var(&flagChunkSize, "chunk-size", 0, "override the document chunk size in bytes (0: use the default)")
	rootCmd.Flags().IntVar(&flagMaxChunks, "max-chunks", 0, "override the bounded chunk-cache size (0: use the default)")
	rootCmd.Flags().BoolVarP(&flagFollow, "follow", "f", false, "start in follow mode, tailing the file as it grows")
	rootCmd.Flags().StringVar(&flagEncoding, "encoding", "", "source file encoding, if not UTF-8 (see docnav.SupportedEncodings)")
	rootCmd.SetVersionTemplate("loss {{.Version}}\n")
}

func runLoss(cmd *cobra.Command, args []string) error {
	logFile, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags|log.Lmicroseconds)

	opts := []loss.Option{
		loss.WithLogger(logger),
		loss.WithFollow(flagFollow),
	}
	if flagChunkSize > 0 {
		opts = append(opts, loss.WithChunkSize(flagChunkSize))
	}
	if flagMaxChunks > 0 {
		opts = append(opts, loss.WithMaxChunks(flagMaxChunks))
	}
	if flagEncoding != "" {
		opts = append(opts, loss.WithSourceEncoding(flagEncoding))
	}

	pager, err := loss.New(args[0], opts...)
	if err != nil {
		return err
	}
	defer pager.Close()

	program := tea.NewProgram(pager.Model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
