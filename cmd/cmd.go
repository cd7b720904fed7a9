package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/1hpEcVns/ComplierFrontEnd/analysis"
	"github.com/1hpEcVns/ComplierFrontEnd/ast"
	"github.com/1hpEcVns/ComplierFrontEnd/codec"
	"github.com/1hpEcVns/ComplierFrontEnd/config"
	"github.com/1hpEcVns/ComplierFrontEnd/doc"
	"github.com/1hpEcVns/ComplierFrontEnd/printer"
	"github.com/1hpEcVns/ComplierFrontEnd/rewrite"
)

// Execute runs the astool CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "astool",
		Usage:                  "Transform and inspect program trees",
		Version:                version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:      "print",
				Usage:     "Render a JSON tree as source text",
				ArgsUsage: "<tree.json | ->",
				Action:    printAction,
			},
			{
				Name:      "rewrite",
				Usage:     "Run a configured pass pipeline over a JSON tree",
				ArgsUsage: "<tree.json | ->",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "pipeline",
						Aliases: []string{"c"},
						Usage:   "YAML pipeline file",
						Value:   "pipeline.yaml",
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Emit the rewritten tree as JSON instead of source",
					},
				},
				Action: rewriteAction,
			},
			{
				Name:      "edit",
				Usage:     "Apply a mapping-form edit without decoding the tree",
				ArgsUsage: "<edit-name> <tree.json | ->",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "param",
						Aliases: []string{"p"},
						Usage:   "Edit parameter as key=value (repeatable)",
					},
				},
				Action: editAction,
			},
			{
				Name:   "edits",
				Usage:  "List available mapping-form edits",
				Action: editsAction,
			},
			{
				Name:      "lint",
				Usage:     "Report variables that are defined but never used",
				ArgsUsage: "<tree.json | ->",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "no-color",
						Aliases: []string{"C"},
						Usage:   "Disable ANSI color output",
					},
				},
				Action: lintAction,
			},
			{
				Name:      "doc",
				Usage:     "Generate markdown documentation for a JSON tree",
				ArgsUsage: "<tree.json | ->",
				Action:    docAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// readModule loads and decodes the tree argument; "-" reads stdin.
func readModule(path string) (*ast.Module, error) {
	m, err := readMapping(path)
	if err != nil {
		return nil, err
	}
	return codec.DecodeModule(m)
}

func readMapping(path string) (codec.Mapping, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading tree: %w", err)
	}
	return codec.FromJSON(data)
}

func treeArg(cmd *cli.Command) (string, error) {
	if cmd.NArg() < 1 {
		return "", fmt.Errorf("usage: astool %s <tree.json | ->", cmd.Name)
	}
	return cmd.Args().First(), nil
}

func printAction(ctx context.Context, cmd *cli.Command) error {
	path, err := treeArg(cmd)
	if err != nil {
		return err
	}
	m, err := readModule(path)
	if err != nil {
		return err
	}
	fmt.Print(printer.Print(m))
	return nil
}

func rewriteAction(ctx context.Context, cmd *cli.Command) error {
	path, err := treeArg(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(cmd.String("pipeline"))
	if err != nil {
		return err
	}
	m, err := readModule(path)
	if err != nil {
		return err
	}

	out := rewrite.Chain(cfg.Build()...).Apply(m)

	if cmd.Bool("json") {
		data, err := codec.ToJSON(codec.Encode(out))
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Print(printer.Print(out))
	return nil
}

func editAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 2 {
		return fmt.Errorf("usage: astool edit <edit-name> <tree.json | -> [-p key=value]...")
	}
	name := cmd.Args().First()
	params, err := parseParams(cmd.StringSlice("param"))
	if err != nil {
		return err
	}

	m, err := readMapping(cmd.Args().Get(1))
	if err != nil {
		return err
	}

	out, err := applyEdit(name, m, params)
	if err != nil {
		return err
	}

	data, err := codec.ToJSON(out)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func applyEdit(name string, m codec.Mapping, params map[string]string) (codec.Mapping, error) {
	need := func(key string) (string, error) {
		v, ok := params[key]
		if !ok {
			return "", fmt.Errorf("edit %q requires -p %s=...", name, key)
		}
		return v, nil
	}

	switch name {
	case "rename-function":
		oldName, err := need("old")
		if err != nil {
			return nil, err
		}
		newName, err := need("new")
		if err != nil {
			return nil, err
		}
		return codec.RenameFunction(m, oldName, newName), nil
	case "inject-logging":
		msg, err := need("message")
		if err != nil {
			return nil, err
		}
		return codec.InjectLogging(m, msg), nil
	case "replace-constant":
		oldVal, err := need("old")
		if err != nil {
			return nil, err
		}
		newVal, err := need("new")
		if err != nil {
			return nil, err
		}
		return codec.ReplaceConstant(m, scalar(oldVal), scalar(newVal)), nil
	case "remove-statements":
		typ, err := need("type")
		if err != nil {
			return nil, err
		}
		return codec.RemoveStatements(m, typ), nil
	default:
		return nil, fmt.Errorf("unknown edit %q (see: astool edits)", name)
	}
}

func editsAction(ctx context.Context, cmd *cli.Command) error {
	for _, e := range codec.AvailableEdits() {
		fmt.Printf("%s\n    %s\n", e.Name, e.Description)
		for _, p := range e.Params {
			fmt.Printf("    -p %s=<%s>  %s\n", p.Name, p.Type, p.Description)
		}
	}
	return nil
}

func lintAction(ctx context.Context, cmd *cli.Command) error {
	path, err := treeArg(cmd)
	if err != nil {
		return err
	}
	m, err := readModule(path)
	if err != nil {
		return err
	}

	findings := analysis.UnusedVars(m)
	if len(findings) == 0 {
		fmt.Println("no unused variables")
		return nil
	}

	useColor := !cmd.Bool("no-color") &&
		os.Getenv("NO_COLOR") == "" &&
		term.IsTerminal(int(os.Stdout.Fd()))
	warn, reset := "\033[33m", "\033[0m"
	if !useColor {
		warn, reset = "", ""
	}
	for _, f := range findings {
		fmt.Printf("%s%s%s\n", warn, f, reset)
	}
	return nil
}

func docAction(ctx context.Context, cmd *cli.Command) error {
	path, err := treeArg(cmd)
	if err != nil {
		return err
	}
	m, err := readModule(path)
	if err != nil {
		return err
	}
	fmt.Print(doc.Markdown(doc.Extract(m)))
	return nil
}

func parseParams(raw []string) (map[string]string, error) {
	params := make(map[string]string, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed parameter %q, want key=value", kv)
		}
		params[key] = value
	}
	return params, nil
}

// scalar interprets a parameter string as the most specific constant type:
// null, bool, int, float, then string.
func scalar(s string) any {
	switch s {
	case "null", "None":
		return nil
	case "true", "True":
		return true
	case "false", "False":
		return false
	}
	var i int
	if _, err := fmt.Sscanf(s, "%d", &i); err == nil && fmt.Sprintf("%d", i) == s {
		return i
	}
	var f float64
	if _, err := fmt.Sscanf(s, "%g", &f); err == nil && strings.ContainsAny(s, ".eE") {
		return f
	}
	return s
}
