// Command vmtranslate lowers .vm files into a single .asm file, for a
// single file or a directory of them (concatenated in lexicographic
// order, with the bootstrap emitted exactly once).
package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hlmerscher/n2t-toolchain/internal/config"
	"github.com/hlmerscher/n2t-toolchain/internal/onerror"
	"github.com/hlmerscher/n2t-toolchain/internal/xlog"
	"github.com/hlmerscher/n2t-toolchain/vmtranslate"
)

func main() {
	opts := &config.Options{}

	root := &cobra.Command{
		Use:   "vmtranslate <file|dir>",
		Short: "Translate VM code into Hack assembly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			xlog.Toggle(opts.Debug)
			return translate(opts)
		},
	}
	root.Flags().StringVarP(&opts.Output, "output", "o", "", "override output path")
	root.Flags().BoolVarP(&opts.Debug, "debug", "d", false, "verbose logs, plus per-instruction ASM comments")

	onerror.Log(root.Execute())
}

func translate(opts *config.Options) error {
	info, err := os.Stat(opts.Input)
	if err != nil {
		return err
	}

	var (
		paths   []string
		outPath string
		isDir   = info.IsDir()
	)

	if isDir {
		entries, err := os.ReadDir(opts.Input)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".vm") {
				paths = append(paths, filepath.Join(opts.Input, e.Name()))
			}
		}
		sort.Strings(paths)
		outPath = filepath.Join(opts.Input, filepath.Base(strings.TrimSuffix(opts.Input, string(filepath.Separator)))+".asm")
	} else {
		paths = []string{opts.Input}
		outPath = strings.TrimSuffix(opts.Input, ".vm") + ".asm"
	}

	if opts.Output != "" {
		outPath = opts.Output
	}

	units := make([]vmtranslate.FileUnit, 0, len(paths))
	for _, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		base := strings.TrimSuffix(filepath.Base(p), ".vm")
		units = append(units, vmtranslate.FileUnit{Basename: base, Source: string(src)})
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	xlog.Debugf("translating %d unit(s) -> %s", len(units), outPath)
	return vmtranslate.Translate(units, outFile, opts.Debug, isDir)
}
