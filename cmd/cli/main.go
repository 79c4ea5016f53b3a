package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/hiveden/hwprobe/internal/hw"
	"github.com/hiveden/hwprobe/internal/render"
	"github.com/hiveden/hwprobe/internal/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	logger := stdr.New(log.New(os.Stderr, "hwprobe: ", log.LstdFlags))
	os.Exit(run(os.Args[1:], hw.NewProber(logger), os.Stdout, os.Stderr, logger))
}

// run executes the command with args and returns the process exit code.
func run(args []string, prober *hw.Prober, out, errOut io.Writer, logger logr.Logger) int {
	rootCmd := newRootCmd(prober, out, errOut, logger)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		var missing *hw.MissingCapabilityError
		if errors.As(err, &missing) {
			fmt.Fprintf(errOut, "Error: %v\n", missing)
			fmt.Fprintf(errOut, "Please make it available: %s\n", missing.Remediation())
		} else {
			fmt.Fprintln(errOut, err)
		}
		return 1
	}
	return 0
}

func newRootCmd(prober *hw.Prober, out, errOut io.Writer, logger logr.Logger) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "hwprobe",
		Short:         "A general-purpose hardware enumerator and compiler optimizer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return prober.CheckCapabilities(cmd.Context()).Err()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := report.NewAssembler(prober, logger).Assemble(cmd.Context())
			if v.GetBool("json") {
				return render.JSON(cmd.OutOrStdout(), r)
			}
			return render.Text(cmd.OutOrStdout(), r)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().Bool("json", false, "Output the report in JSON format instead of human-readable text.")
	v.BindPFlag("json", rootCmd.Flags().Lookup("json"))

	return rootCmd
}
