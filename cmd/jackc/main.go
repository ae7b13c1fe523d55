// Command jackc compiles Jack source into either VM code (default) or
// an XML token dump, for a single .jack file or a directory of them.
package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hlmerscher/n2t-toolchain/analyzer"
	"github.com/hlmerscher/n2t-toolchain/engine"
	"github.com/hlmerscher/n2t-toolchain/internal/config"
	"github.com/hlmerscher/n2t-toolchain/internal/onerror"
	"github.com/hlmerscher/n2t-toolchain/internal/xlog"
	"github.com/hlmerscher/n2t-toolchain/tokenizer"
	"github.com/hlmerscher/n2t-toolchain/vm"
)

func main() {
	opts := &config.Options{}
	var outMode string

	root := &cobra.Command{
		Use:   "jackc <file|dir>",
		Short: "Compile Jack source into VM code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			opts.OutMode = config.OutMode(outMode)
			xlog.Toggle(opts.Debug)
			return compile(opts)
		},
	}
	root.Flags().StringVarP(&opts.Output, "output", "o", "", "override output path")
	root.Flags().BoolVarP(&opts.Debug, "debug", "d", false, "verbose logs")
	root.Flags().StringVarP(&outMode, "outmode", "m", string(config.OutVM), "output mode: vm or xml")

	onerror.Log(root.Execute())
}

func compile(opts *config.Options) error {
	info, err := os.Stat(opts.Input)
	if err != nil {
		return err
	}

	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(opts.Input)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".jack") {
				files = append(files, filepath.Join(opts.Input, e.Name()))
			}
		}
		sort.Strings(files)
	} else {
		files = []string{opts.Input}
	}

	for _, f := range files {
		if err := compileFile(f, opts); err != nil {
			return err
		}
	}
	return nil
}

func compileFile(path string, opts *config.Options) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	toks, err := tokenizer.Tokenize(string(src), path)
	if err != nil {
		return err
	}

	outPath := opts.Output
	if outPath == "" {
		trimmed := strings.TrimSuffix(path, ".jack")
		if opts.OutMode == config.OutXML {
			outPath = trimmed + ".xml"
		} else {
			outPath = trimmed + ".vm"
		}
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	xlog.Debugf("compiling %s -> %s", path, outPath)

	if opts.OutMode == config.OutXML {
		return analyzer.WriteTokensXML(toks, outFile)
	}

	p := engine.New(toks, path, vm.New(outFile))
	return p.Compile()
}
