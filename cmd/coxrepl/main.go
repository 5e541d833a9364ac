/*
Command coxrepl is an interactive shell over the Brink–Howlett automaton: it
loads a Coxeter matrix, builds the automaton, and then accepts words to test
for short-lex reducedness, or "dump" to print the root table. Modeled closely
on gorgo/terex/terexlang/trepl/repl.go's readline+pterm REPL.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/coxctl/braid/automaton"
	"github.com/coxctl/braid/config"
	"github.com/coxctl/braid/coxeter"
	"github.com/coxctl/braid/coxeter/matrixfile"
	"github.com/coxctl/braid/wordparse"
)

func tracer() tracing.Trace {
	return tracing.Select("coxrepl")
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()

	matrixPath := flag.String("matrix", "", "path to a Coxeter matrix file")
	configPath := flag.String("config", "", "path to a TOML config file")
	traceLevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	maxRoots := flag.Int("max-roots", 0, "abort enumeration past this many roots (0 = unbounded)")
	maxStates := flag.Int("max-states", 0, "abort construction past this many states (0 = unbounded)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	level := cfg.TraceLevel
	if flag.CommandLine.Changed("trace") {
		level = *traceLevel
	}
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	wordparse.MaxWordLen = cfg.MaxWordLen
	wordparse.MaxNestedWordLen = cfg.MaxNestedWordLen
	coxeter.MaxGenerators = cfg.MaxGenerators
	matrixfile.MaxFilenameLen = cfg.MaxFilenameLen

	pterm.Info.Println("Welcome to coxrepl")
	path := *matrixPath
	if path == "" {
		path = cfg.DefaultMatrixPath
	}
	if path == "" {
		pterm.Error.Println("no matrix file given (use --matrix)")
		os.Exit(1)
	}

	mx, err := matrixfile.Load(path)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	sys, err := coxeter.NewSystem(mx, coxeter.WithEpsilon(cfg.Epsilon), coxeter.WithMaxRoots(*maxRoots))
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	graph, err := automaton.Build(sys, automaton.WithMaxStates(*maxStates))
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	pterm.Info.Printfln("loaded %d generators, %d minimal roots, %d states",
		mx.N(), len(sys.Minimal), graph.Catalog.Len())

	repl, err := readline.New("cox> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	intp := &interp{mx: mx, sys: sys, graph: graph, repl: repl, maxRootOutput: cfg.MaxRootOutputLength}
	tracer().Infof("Quit with <ctrl>D")
	intp.loop()
}

type interp struct {
	mx    *coxeter.Matrix
	sys   *coxeter.System
	graph *automaton.Graph
	repl  *readline.Instance

	maxRootOutput int
}

func (intp *interp) loop() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF on ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		intp.eval(line)
	}
}

func (intp *interp) eval(line string) {
	switch {
	case line == "dump":
		if err := intp.sys.Registry.Dump(os.Stdout, intp.maxRootOutput); err != nil {
			pterm.Error.Println(err.Error())
		}
	case line == "quit" || line == "exit":
		os.Exit(0)
	default:
		intp.checkWord(line)
	}
}

func (intp *interp) checkWord(line string) {
	indices, err := wordparse.Parse(line, intp.mx.N())
	if err != nil {
		tracer().Errorf("parse %q: %s", line, err.Error())
		pterm.Error.Println(err.Error())
		return
	}
	result, err := intp.graph.Reduce(indices)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if result.Reduced {
		fmt.Printf("%q is reduced\n", line)
	} else {
		fmt.Printf("%q is NOT reduced (rejects at position %d)\n", line, result.Position)
	}
}
