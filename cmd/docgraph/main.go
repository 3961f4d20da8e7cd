// Command docgraph is a thin CLI wrapper around the docgraph indexing
// core. The core itself owns no CLI surface (spec.md §6); this is one
// possible collaborator, in the shape of the teacher project's own
// cobra-based command.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkrause/docgraph"
	"github.com/mkrause/docgraph/internal/frontend"
)

var (
	flagRoot                 string
	flagInclude               []string
	flagIgnorePath            []string
	flagIgnoreNamespace       []string
	flagIgnorePrivateMembers bool
	flagDebugLimit            int
	flagJobs                  int
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "docgraph",
		Short: "Build a cross-referenced symbol index from a C++ compilation database",
	}
	root.AddCommand(indexCmd())
	return root
}

func indexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <compile_commands.json>",
		Short: "Index every translation unit in a compilation database and print stats",
		Args:  cobra.ExactArgs(1),
		RunE:  runIndex,
	}

	cmd.Flags().StringVar(&flagRoot, "root", ".", "project root, anchors relative file names and ignore-path matching")
	cmd.Flags().StringArrayVar(&flagInclude, "include", nil, "existing directory passed to the front end as a system include (repeatable)")
	cmd.Flags().StringArrayVar(&flagIgnorePath, "ignore-path", nil, "substring match against a declaration's repo-relative file path (repeatable)")
	cmd.Flags().StringArrayVar(&flagIgnoreNamespace, "ignore-namespace", nil, "substring match against an enclosing namespace name (repeatable)")
	cmd.Flags().BoolVar(&flagIgnorePrivateMembers, "ignore-private-members", false, "drop private members from the index")
	cmd.Flags().IntVar(&flagDebugLimit, "debug-limit", 0, "index only the first N translation units, 0 means no limit")
	cmd.Flags().IntVar(&flagJobs, "jobs", 0, "worker pool size, 0 means runtime.NumCPU()")

	return cmd
}

func runIndex(cmd *cobra.Command, args []string) error {
	cdb, err := frontend.LoadCompilationDatabase(args[0])
	if err != nil {
		return err
	}

	cfg := docgraph.Config{
		RootDir:              flagRoot,
		IncludePaths:         flagInclude,
		IgnorePaths:          flagIgnorePath,
		IgnoreNamespaces:     flagIgnoreNamespace,
		IgnorePrivateMembers: flagIgnorePrivateMembers,
		WorkerCount:          flagJobs,
	}
	if flagDebugLimit > 0 {
		cfg.DebugLimitNumIndexedFiles = &flagDebugLimit
	}

	e, err := docgraph.NewEngine(cfg, cdb)
	if err != nil {
		return err
	}
	if err := e.Run(context.Background()); err != nil {
		return err
	}

	e.PrintStats(cmd.OutOrStdout())
	return nil
}
