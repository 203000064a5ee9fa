package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/host-bridge/adapter"
	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/engine"
	"github.com/wippyai/host-bridge/stdlib"
	"github.com/wippyai/host-bridge/value"
	"github.com/wippyai/host-bridge/wasmhost"
)

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Wasm module whose exports join the registry")
		funcSig     = flag.String("fn", "", "Function to call (module::function)")
		argStr      = flag.String("args", "", "Named arguments (name=value,name2=value2)")
		timeout     = flag.Duration("timeout", 0, "Abort the call after this duration")
		list        = flag.Bool("list", false, "List registered functions and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		configureLogging()
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*wasmFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *funcSig == "" && !*list {
		fmt.Fprintln(os.Stderr, "Usage: run -fn module::function [-args name=value,...] [-wasm file.wasm]")
		fmt.Fprintln(os.Stderr, "       run -list [-wasm file.wasm]")
		fmt.Fprintln(os.Stderr, "       run -i [-wasm file.wasm]  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*wasmFile, *funcSig, *argStr, *timeout, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configureLogging routes every package logger to one development logger.
func configureLogging() {
	l, err := zap.NewDevelopment()
	if err != nil {
		return
	}
	engine.SetLogger(l)
	adapter.SetLogger(l)
	stdlib.SetLogger(l)
	wasmhost.SetLogger(l)
}

func run(wasmFile, signature, argStr string, timeout time.Duration, listOnly bool) error {
	ctx := context.Background()

	reg := stdlib.Default()

	if wasmFile != "" {
		data, err := os.ReadFile(wasmFile)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}

		host := wasmhost.New(ctx)
		defer host.Close(ctx)

		mod, err := host.Load(ctx, moduleName(wasmFile), data)
		if err != nil {
			return fmt.Errorf("load wasm: %w", err)
		}
		reg.Add(mod.Entries(ctx))

		fmt.Printf("Module: %s\n", wasmFile)
		fmt.Printf("Exported functions: %d\n", len(mod.Exports()))
	}

	if listOnly {
		printEntries(reg)
		return nil
	}

	entry, err := reg.Lookup(signature)
	if err != nil {
		return err
	}

	arg, err := parseArgs(argStr)
	if err != nil {
		return err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fmt.Printf("Calling %s...\n", entry.Signature)
	result, err := entry.Call(ctx, bridge.NewRuntime(), arg)
	if err != nil {
		return fmt.Errorf("call %s: %w", entry.Signature, err)
	}

	fmt.Printf("Result: %s\n", renderValue(result))
	return nil
}

func printEntries(reg *stdlib.Registry) {
	fmt.Println("Registered functions:")
	for _, m := range reg.Modules() {
		fmt.Printf("\n%s\n", m.Name())
		for _, e := range m.Entries() {
			suffix := ""
			if e.Async {
				suffix = " [async]"
			}
			fmt.Printf("  %s(%s)%s\n", e.Signature, formatParams(e.Params), suffix)
		}
	}
}

// formatParams renders a descriptor tuple as a parameter list. Placeholder
// parameters show their name, bound ones their default.
func formatParams(params value.Tuple) string {
	var parts []string
	for _, v := range params.Values() {
		n, ok := v.(value.Named)
		if !ok {
			parts = append(parts, renderValue(v))
			continue
		}
		if _, ok := n.Value().(value.Undefined); ok {
			parts = append(parts, textOf(n.Key()))
		} else {
			parts = append(parts, textOf(n.Key())+" = "+renderValue(n.Value()))
		}
	}
	return strings.Join(parts, ", ")
}

// renderValue is the lossy display form: values whose representation fails
// fall back to their type name.
func renderValue(v value.Value) string {
	if v == nil {
		return "null"
	}
	r, err := v.Repr()
	if err != nil {
		return value.TypeNameOf(v)
	}
	return r
}

func textOf(v value.Value) string {
	t, err := v.Text()
	if err != nil {
		return value.TypeNameOf(v)
	}
	return t
}

// parseArgs builds the named argument tuple from name=value pairs. Empty
// input returns nil so entry defaults apply.
func parseArgs(argStr string) (value.Value, error) {
	if argStr == "" {
		return nil, nil
	}
	var elems []value.Value
	for _, kv := range strings.Split(argStr, ",") {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("malformed argument %q, want name=value", kv)
		}
		elems = append(elems, value.NamedOf(name, parseValue(raw)))
	}
	return value.NewTuple(elems...), nil
}

// parseValue infers the value type from its literal form.
func parseValue(raw string) value.Value {
	switch raw {
	case "true", "false":
		return value.Boolean(raw == "true")
	case "null":
		return value.Null{}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return value.Integer(n)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return value.Float(f)
	}
	return value.String(raw)
}

func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
