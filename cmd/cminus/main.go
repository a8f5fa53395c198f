// Command cminus runs name analysis and type checking over a JSON AST
// fixture, exercising the core end to end and producing the golden-file
// output used in testing (SPEC_FULL.md §6.1).
//
// It owns no semantic logic of its own: it parses flags with the teacher's
// argument-parsing library, optionally loads a cminus.toml config, decodes
// the fixture, and hands both off to the resolve and typecheck packages.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ComedicChimera/olive"

	"cminus/config"
	"cminus/fixture"
	"cminus/report"
	"cminus/resolve"
	"cminus/typecheck"
)

func main() {
	cli := olive.NewCLI("cminus", "cminus analyzes the name and type correctness of a C-- AST fixture", true)
	cli.AddPrimaryArg("fixture-path", "the path to a JSON AST fixture produced by an earlier parsing stage", true)

	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the diagnostic log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	cli.AddStringArg("config", "c", "path to a cminus.toml configuration file", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fixturePath, _ := result.PrimaryArg()

	configPath := config.FileName
	if v, ok := result.Arguments["config"]; ok {
		configPath = v.(string)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// A CLI flag overrides whatever the config file said.
	if v, ok := result.Arguments["loglevel"]; ok {
		cfg.LogLevel = v.(string)
	}

	level, ok := report.ParseLogLevel(cfg.LogLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "cminus: unrecognized log level %q\n", cfg.LogLevel)
		os.Exit(2)
	}

	data, err := ioutil.ReadFile(fixturePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	prog, err := fixture.Build(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sink := report.NewSink(level, "")
	sink.TreatWarningsAsErrors = cfg.TreatWarningsAsErrors

	resolve.Resolve(prog, sink)

	// Type checking only runs if name analysis came back clean: running it
	// over a program with name errors is still well-defined (see
	// typecheck.Checker.checkId), but there is nothing useful left to type
	// check once the program is already known to fail.
	if !sink.HadError() {
		typecheck.TypeCheck(prog, sink)
	}

	if sink.HadError() {
		os.Exit(1)
	}
}
