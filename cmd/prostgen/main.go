package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/kbirk/prostgen/internal/config"
	"github.com/kbirk/prostgen/internal/logging"
	"github.com/kbirk/prostgen/internal/parse"
	"github.com/kbirk/prostgen/internal/util"
	"github.com/kbirk/prostgen/pkg/prostgen"
)

const (
	version = "0.0.1"
)

type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

var (
	input      string
	output     string
	includes   stringList
	glob       string
	configPath string
	verbose    bool
	showVer    bool
)

// overlayFlags applies the flags explicitly set on the command line on top
// of the config file values.
func overlayFlags(fs *flag.FlagSet, cfg config.Config) config.Config {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = input
		case "output":
			cfg.Output = output
		case "include":
			cfg.Includes = includes
		case "glob":
			cfg.Glob = glob
		case "verbose":
			cfg.Verbose = verbose
		}
	})
	return cfg
}

func registerFlags(fs *flag.FlagSet) {
	includes = nil
	fs.StringVar(&input, "input", "", "Input dir")
	fs.StringVar(&output, "output", "", "Output dir")
	fs.Var(&includes, "include", "Include dir, may be repeated")
	fs.StringVar(&glob, "glob", prostgen.DefaultPattern, "Glob pattern matching schema files under the input dir")
	fs.StringVar(&configPath, "config", "", "Config file (.toml, .yaml or .yml)")
	fs.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&showVer, "version", false, "Print the version and exit")
}

func loadConfig(fs *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
	}
	cfg = overlayFlags(fs, cfg)
	return cfg, cfg.Validate()
}

func main() {

	registerFlags(flag.CommandLine)
	flag.Parse()

	if showVer {
		os.Stdout.WriteString(version + "\n")
		return
	}

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()

	cfg, err := loadConfig(flag.CommandLine)
	if err != nil {
		os.Stderr.WriteString(red("ERROR: ") + fmt.Sprintf("%v\n", err.Error()))
		os.Exit(1)
	}

	logger := logging.New("prostgen", cfg.Verbose)

	protos := cfg.Protos
	if cfg.Input != "" {
		found, err := prostgen.FindProtos(cfg.Input, cfg.Glob)
		if err != nil {
			os.Stderr.WriteString(red("ERROR: ") + fmt.Sprintf("Failed to find input files: %v\n", err.Error()))
			os.Exit(1)
		}
		protos = append(protos, found...)
	}
	protos = util.RemoveDuplicates(protos)

	if len(protos) == 0 {
		os.Stderr.WriteString(red("ERROR: ") + "No files to generate\n")
		os.Exit(1)
	}

	writer := prostgen.NewDirWriter(cfg.Output)
	c := prostgen.NewCompiler(cfg.Output)
	c.Writer = writer
	c.Logger = logger

	if len(cfg.Includes) > 0 {
		logger.Debug().Strs("includes", util.RemoveDuplicates(cfg.Includes)).Msg("include directories are not resolved")
	}

	outputs, err := c.Generate(protos)
	if err == nil {
		err = c.Write(outputs)
	}
	if err != nil {
		var perr *parse.ParsingError
		if errors.As(err, &perr) {
			os.Stderr.WriteString(red("PARSE ERROR: ") + fmt.Sprintf("%v\n", perr.Error()))
		} else {
			os.Stderr.WriteString(red("I/O ERROR: ") + fmt.Sprintf("%v\n", err.Error()))
		}
		os.Exit(1)
	}

	os.Stdout.WriteString(green("SUCCESS: ") + fmt.Sprintf("Generated code for %d files\n", len(protos)))

	for _, out := range outputs {
		os.Stdout.WriteString(fmt.Sprintf("%s: %s -> %s\n", magenta("[package]"), white(out.Package), cyan(writer.Path(out.Package))))
		for _, file := range out.Files {
			os.Stdout.WriteString(fmt.Sprintf("    %s %s\n", green("[file]"), white(file)))
		}
	}
}
