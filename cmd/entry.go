package cmd

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"rdparser/config"
	"rdparser/repl"
	"slices"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
)

type (
	// Streams are the files a command reads from and writes to
	Streams struct {
		In  io.Reader
		Out io.Writer
		Err io.Writer
	}

	// args[0] is the command name, getopt expects it there
	CommandFunc func(std Streams, args []string) int

	FlagInfo struct {
		Name        string
		Description string
	}

	CommandInfo struct {
		Description string
		Function    CommandFunc
		Opts        string
		Flags       []FlagInfo
	}
)

var commands map[string]CommandInfo

var (
	configFlag = FlagInfo{Name: "-c", Description: "config file path (default ./" + config.DefaultFile + ")"}
	traceFlag  = FlagInfo{Name: "-t", Description: "trace every statement on stderr"}
	colorFlag  = FlagInfo{Name: "-C", Description: "colored prompt, errors and trace"}
)

func init() {
	commands = map[string]CommandInfo{
		"repl": {
			Description: "Reads programs line by line from stdin until `terminate`",
			Function:    Repl,
			Opts:        "c:p:tC",
			Flags: []FlagInfo{
				configFlag,
				{Name: "-p", Description: "prompt printed before every line"},
				traceFlag,
				colorFlag,
			},
		},
		"run": {
			Description: "Takes the filepath of a source file, and executes every line of it",
			Function:    Run,
			Opts:        "f:c:tC",
			Flags: []FlagInfo{
				{Name: "-f", Description: "program file path"},
				configFlag,
				traceFlag,
				colorFlag,
			},
		},
		"help": {
			Description: "Prints the usage of all commands",
			Function:    Help,
			Flags:       []FlagInfo{},
		},
	}
}

type options struct {
	file      string
	config    string
	prompt    string
	promptSet bool
	trace     bool
	color     bool
}

func parseOptions(args []string, optstring string) (options, []string, error) {
	var o options
	opts, optind, err := getopt.Getopts(args, optstring)
	if err != nil {
		return o, nil, err
	}
	for _, optV := range opts {
		switch optV.Option {
		case 'f':
			o.file = optV.Value
		case 'c':
			o.config = optV.Value
		case 'p':
			o.prompt = optV.Value
			o.promptSet = true
		case 't':
			o.trace = true
		case 'C':
			o.color = true
		}
	}
	return o, args[optind:], nil
}

// loadConfig resolves the config file, flags win over the file values
func loadConfig(o options, std Streams) (config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return config.Default(), err
	}
	cfg, err := config.Resolve(o.config, dir)
	if err != nil {
		return cfg, err
	}

	if o.promptSet {
		cfg.Prompt = o.prompt
	}
	if o.trace {
		cfg.Trace = true
	}
	if o.color {
		cfg.Color = true
	}
	cfg.TraceOutput = std.Err
	return cfg, nil
}

func Help(std Streams, args []string) int {
	title := color.New(color.Bold, color.FgMagenta)
	name := color.New(color.Bold, color.FgCyan)
	label := color.New(color.Bold, color.FgWhite)
	flagName := color.New(color.Bold, color.FgYellow)

	describe := func(cmd CommandInfo, indent string) string {
		printResult := fmt.Sprintf("%s%s %s\n", indent, label.Sprint("Description:"), cmd.Description)
		if len(cmd.Flags) > 0 {
			printResult += fmt.Sprintf("%s%s\n", indent, label.Sprint("Flags:"))
			for _, flag := range cmd.Flags {
				printResult += fmt.Sprintf("%s  %s - %s\n", indent, flagName.Sprint(flag.Name), flag.Description)
			}
		} else {
			printResult += indent + "(No flags available)\n"
		}
		return printResult
	}

	if len(args) < 2 {
		// show the whole help catalog
		printResult := "\n" + title.Sprint("Supported Commands:") + "\n\n"
		for _, cmdName := range slices.Sorted(maps.Keys(commands)) {
			printResult += fmt.Sprintf("  %s\n", name.Sprint(cmdName))
			printResult += describe(commands[cmdName], "    ")
			printResult += "\n"
		}
		fmt.Fprintln(std.Out, printResult)
		return 0
	}

	// print the help of the specified command
	cmdName := args[1]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintln(std.Err, "ERROR: provided command, isn't supported")
		return 2
	}

	printResult := fmt.Sprintf("\n%s %s\n", title.Sprint("Command:"), name.Sprint(cmdName))
	printResult += describe(cmd, "")
	fmt.Fprintln(std.Out, printResult)
	return 0
}

func Repl(std Streams, args []string) int {
	o, _, err := parseOptions(args, commands["repl"].Opts)
	if err != nil {
		fmt.Fprintf(std.Err, "ERROR: %v\n", err)
		return 2
	}
	cfg, err := loadConfig(o, std)
	if err != nil {
		fmt.Fprintf(std.Err, "ERROR: %v\n", err)
		return 2
	}

	if _, err := repl.Start(std.In, std.Out, cfg); err != nil {
		fmt.Fprintf(std.Err, "ERROR: %v\n", err)
		return 1
	}
	return 0
}

func Run(std Streams, args []string) int {
	o, _, err := parseOptions(args, commands["run"].Opts)
	if err != nil {
		fmt.Fprintf(std.Err, "ERROR: %v\n", err)
		return 2
	}
	if len(o.file) <= 0 {
		fmt.Fprintln(std.Err, "ERROR: provide the filepath flag -f to assign the path to it")
		return 2
	}
	cfg, err := loadConfig(o, std)
	if err != nil {
		fmt.Fprintf(std.Err, "ERROR: %v\n", err)
		return 2
	}
	// no prompt when the lines come from a file
	cfg.Prompt = ""

	targetFile, err := filepath.Abs(o.file)
	if err != nil {
		fmt.Fprintf(std.Err, "ERROR: %v\n", err)
		return 2
	}
	byteContent, err := os.ReadFile(targetFile)
	if err != nil {
		fmt.Fprintf(std.Err, "ERROR: %v\n", err)
		return 1
	}

	errs, err := repl.Start(bytes.NewReader(byteContent), std.Out, cfg)
	if err != nil {
		fmt.Fprintf(std.Err, "ERROR: %v\n", err)
		return 1
	}
	if errs.Len() > 0 {
		for _, failed := range errs.Errors {
			fmt.Fprintf(std.Err, "%s:%d: %v\n", filepath.Base(targetFile), failed.Number, failed.Err)
		}
		return 1
	}
	return 0
}

// execute dispatches to the command named by args[0], repl when there is none
func execute(std Streams, args []string) int {
	if len(args) < 1 {
		args = []string{"repl"}
	}

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(std.Err, "ERROR: unknown command %v, check help for manual.\n", name)
		return 2
	}
	return cmd.Function(std, args)
}

func Execute() int {
	return execute(Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}, os.Args[1:])
}
