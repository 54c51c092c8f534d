package main

import (
	"errors"
	"os"
	"strings"

	"github.com/Alia5/zmkjis/internal/config"
	"github.com/Alia5/zmkjis/internal/configpaths"
	"github.com/Alia5/zmkjis/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	userCfg := findUserConfig(args)
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	parser, err := kong.New(&cli,
		kong.Name("zmkjis"),
		kong.Description("Convert US layout key names in a ZMK keymap to JIS layout aliases"),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to build command line: " + err.Error() + "\n")
		return 1
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		var perr *kong.ParseError
		if errors.As(err, &perr) && perr.Context != nil {
			_ = perr.Context.PrintUsage(false)
		}
		parser.Errorf("%s", err)
		return 1
	}

	logger, closeFiles, err := log.SetupLogger(cli.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger, &cli.Globals)
	if err := ctx.Run(); err != nil {
		logger.Error("Command failed", "command", ctx.Command(), "error", err)
		return 1
	}
	return 0
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("ZMKJIS_CONFIG")
}
