package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/vlint/internal/configloader"
	"github.com/yaklabco/vlint/internal/ui/pretty"
)

func newSuffixesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suffixes",
		Short: "List the recognized source file suffixes",
		Long: `List the source file suffixes used to recognize file paths inside
Verilator output. The set comes from configuration; paths ending in a
listed suffix are parsed into structured diagnostics.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuffixes(cmd)
		},
	}

	return cmd
}

func runSuffixes(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.Bold.Render("Recognized source suffixes:"))
	for _, suf := range loadResult.Config.SuffixSet().Suffixes() {
		fmt.Fprintf(out, "  %s\n", suf)
	}

	return nil
}
