// Command hasm assembles a single .asm file into a sibling .hack file
// of 16-bit ASCII binary words.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hlmerscher/n2t-toolchain/hasm"
	"github.com/hlmerscher/n2t-toolchain/internal/config"
	"github.com/hlmerscher/n2t-toolchain/internal/onerror"
	"github.com/hlmerscher/n2t-toolchain/internal/xlog"
)

func main() {
	opts := &config.Options{}

	root := &cobra.Command{
		Use:   "hasm <file.asm>",
		Short: "Assemble Hack assembly into 16-bit binary machine code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			xlog.Toggle(opts.Debug)
			return assemble(opts)
		},
	}
	root.Flags().StringVarP(&opts.Output, "output", "o", "", "override output path")
	root.Flags().BoolVarP(&opts.Debug, "debug", "d", false, "verbose logs")

	onerror.Log(root.Execute())
}

func assemble(opts *config.Options) error {
	src, err := os.ReadFile(opts.Input)
	if err != nil {
		return err
	}

	outPath := opts.Output
	if outPath == "" {
		outPath = strings.TrimSuffix(opts.Input, ".asm") + ".hack"
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	xlog.Debugf("assembling %s -> %s", opts.Input, outPath)
	return hasm.Assemble(string(src), opts.Input, outFile)
}
