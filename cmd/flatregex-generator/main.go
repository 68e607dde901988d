// Package main provides the CLI entrypoint for flatregex-generator.
//
// flatregex-generator is a codegen tool that:
//   - Parses Go packages (AST + go/types) to find flatregex-tagged structs
//   - Validates the annotations (pattern, map type, key access function)
//   - Generates UnmarshalJSON methods that route unmatched JSON keys
//     matching the pattern into the tagged map field
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"flatregex-generator/internal/analyze"
	"flatregex-generator/internal/attr"
	"flatregex-generator/internal/config"
	"flatregex-generator/internal/diagnostic"
	"flatregex-generator/internal/gen"
)

const usage = `flatregex-generator - generate pattern-routing UnmarshalJSON methods

Usage:
  flatregex-generator gen   [-pkg pattern]... [-config file] [-suffix s] [-dry-run] [-v]
  flatregex-generator check [-pkg pattern]... [-config file] [-v]
  flatregex-generator list  [-pkg pattern]... [-config file]

Commands:
  gen    analyze, validate and write generated files
  check  analyze and validate only; print diagnostics
  list   print annotated structs found
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "gen":
		err = runGen(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	case "list":
		err = runList(os.Args[2:])
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// options are the effective settings after merging config file and flags.
type options struct {
	packages []string
	suffix   string
	runtime  string
	comments bool
	dryRun   bool
	verbose  bool
}

// parseOptions parses common flags for a subcommand and merges them over the
// config file.
func parseOptions(name string, args []string, withGenFlags bool) (*options, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)

	var pkgs stringList
	fs.Var(&pkgs, "pkg", "package pattern to scan (repeatable, default from config or ./...)")

	configPath := fs.String("config", "", "config file (default .flatregex.yaml if present)")
	verbose := fs.Bool("v", false, "verbose output")

	var suffix *string
	var dryRun *bool
	if withGenFlags {
		suffix = fs.String("suffix", "", "generated filename suffix (default _flatregex)")
		dryRun = fs.Bool("dry-run", false, "print target filenames without writing")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return nil, err
	}

	opts := &options{
		packages: cfg.Packages,
		suffix:   cfg.Suffix,
		runtime:  cfg.RuntimeImport,
		comments: cfg.CommentsEnabled(),
		verbose:  *verbose,
	}

	if len(pkgs) > 0 {
		opts.packages = pkgs
	}

	if withGenFlags {
		if *suffix != "" {
			opts.suffix = *suffix
		}

		opts.dryRun = *dryRun
	}

	return opts, nil
}

// loadConfig loads the named config file, or the default one when present,
// or built-in defaults.
func loadConfig(path string) (*config.File, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	if _, err := os.Stat(config.DefaultFilename); err == nil {
		return config.LoadFile(config.DefaultFilename)
	}

	return config.Parse(nil)
}

// scan loads packages and reads annotations, printing diagnostics.
func scan(opts *options) (*analyze.TypeGraph, []attr.StructSpec, error) {
	analyzer := analyze.NewAnalyzer()

	graph, err := analyzer.LoadPackages(opts.packages...)
	if err != nil {
		return nil, nil, err
	}

	specs, diags := attr.Scan(graph)
	printDiagnostics(diags, opts.verbose)

	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("%d definition error(s)", len(diags.Errors))
	}

	return graph, specs, nil
}

func printDiagnostics(diags *diagnostic.Diagnostics, verbose bool) {
	for _, d := range diags.Errors {
		fmt.Fprintln(os.Stderr, "error:", d.String())
	}

	for _, d := range diags.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", d.String())
	}

	if verbose {
		for _, d := range diags.Infos {
			fmt.Fprintln(os.Stderr, "info:", d.String())
		}
	}
}

func runGen(args []string) error {
	opts, err := parseOptions("gen", args, true)
	if err != nil {
		return err
	}

	graph, specs, err := scan(opts)
	if err != nil {
		return err
	}

	if len(specs) == 0 {
		fmt.Fprintln(os.Stderr, "no flatregex annotations found")
		return nil
	}

	cfg := gen.DefaultGeneratorConfig()
	if opts.suffix != "" {
		cfg.Suffix = opts.suffix
	}

	if opts.runtime != "" {
		cfg.RuntimeImport = opts.runtime
	}

	cfg.GenerateComments = opts.comments

	generator := gen.NewGenerator(cfg)

	files, err := generator.Generate(graph, specs)
	if err != nil {
		return err
	}

	if opts.dryRun {
		for _, f := range files {
			fmt.Println(filepath.Join(f.Dir, f.Filename))
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	if opts.verbose {
		for _, f := range files {
			fmt.Fprintln(os.Stderr, "wrote", filepath.Join(f.Dir, f.Filename))
		}
	}

	fmt.Fprintf(os.Stderr, "generated %d file(s)\n", len(files))

	return nil
}

func runCheck(args []string) error {
	opts, err := parseOptions("check", args, false)
	if err != nil {
		return err
	}

	_, specs, err := scan(opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "ok: %d annotated struct(s)\n", len(specs))

	return nil
}

func runList(args []string) error {
	opts, err := parseOptions("list", args, false)
	if err != nil {
		return err
	}

	_, specs, err := scan(opts)
	if err != nil {
		return err
	}

	for i := range specs {
		s := &specs[i]
		fmt.Printf("%s\t%s\t%q", s.QualifiedName(), s.Pattern.GoName, s.Pattern.Pattern)

		if s.Pattern.KeyAccess != "" {
			fmt.Printf("\tflatkey=%s", s.Pattern.KeyAccess)
		}

		fmt.Println()
	}

	return nil
}
