package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/rational-ffi/errors"
	"github.com/wippyai/rational-ffi/export"
)

func main() {
	var (
		expr        = flag.String("e", "", "RPN expression to evaluate (e.g. \"0.5 0.25 +\")")
		verbose     = flag.Bool("v", false, "Log failed operations to stderr")
		interactive = flag.Bool("i", false, "Interactive calculator")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		export.SetLogger(log)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *expr == "" {
		fmt.Fprintln(os.Stderr, "Usage: ratcalc -e \"0.5 0.25 +\"")
		fmt.Fprintln(os.Stderr, "       ratcalc -i  (interactive mode)")
		os.Exit(1)
	}

	lib := export.New()
	defer lib.Close()

	res, err := evalRPN(lib, *expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s (≈ %g)\n", res.Text, res.Float)
}

// result of one evaluated expression, detached from any handle.
type result struct {
	Text  string
	Float float64
}

// evalRPN evaluates a whitespace-separated reverse-polish expression against
// lib. Numbers become handles; + - * / pop two and push one. Every handle
// issued during evaluation is released before returning.
func evalRPN(lib *export.Library, expr string) (result, error) {
	var stack []int64

	// Anything still on the stack gets released on every exit path.
	defer func() {
		for _, h := range stack {
			lib.Delete(h)
		}
	}()

	for _, tok := range strings.Fields(expr) {
		var op func(a, b int64) int64
		switch tok {
		case "+", "add":
			op = lib.Add
		case "-", "sub":
			op = lib.Sub
		case "*", "mul":
			op = lib.Mul
		case "/", "div":
			op = lib.Div
		default:
			x, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return result{}, fmt.Errorf("bad token %q", tok)
			}
			h := lib.FromFloat(x)
			if h == export.Invalid {
				return result{}, errors.NonFinite(errors.ScopeConvert, x)
			}
			stack = append(stack, h)
			continue
		}

		if len(stack) < 2 {
			return result{}, fmt.Errorf("operator %q needs two operands", tok)
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		r := op(a, b)
		// The short-circuit paths may hand back a retained operand, so
		// releasing the operands after the operation is always safe.
		lib.Delete(a)
		lib.Delete(b)
		if r == export.Invalid {
			return result{}, fmt.Errorf("%q failed (run with -v for details)", tok)
		}
		stack = append(stack, r)
	}

	if len(stack) != 1 {
		return result{}, fmt.Errorf("expression left %d values on the stack, want 1", len(stack))
	}

	h := stack[0]
	s := lib.ToString(h)
	if s.Ptr == nil {
		return result{}, fmt.Errorf("render failed")
	}
	text := string(s.Ptr)
	lib.FreeString(s)

	f := lib.ToFloat(h)
	return result{Text: text, Float: f.Value}, nil
}
