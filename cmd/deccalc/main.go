// Command deccalc applies one operator to fixed precision numerals.
//
//  deccalc [--radix N] [--precision N] <a> <op> <b>
//  deccalc [--radix N] [--precision N] neg <a>
//
// Operators are + - * / and cmp. Operands may be numerals or inf, -inf and
// nan. Put -- before a negative first operand so it is not read as a flag.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/urfave/cli.v1"

	"github.com/calebcase/decnum/decimal"
)

// Error is the error class for this command.
var Error = errs.Class("deccalc")

var (
	RadixFlag = cli.UintFlag{
		Name:  "radix",
		Usage: "radix of the numerals (2 to 36)",
		Value: uint(decimal.Base10.Radix),
	}
	PrecisionFlag = cli.IntFlag{
		Name:  "precision",
		Usage: "number of places a value may span",
		Value: decimal.Base10.Precision,
	}
)

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "deccalc"
	app.Usage = "fixed precision decimal calculator"
	app.ArgsUsage = "<a> <op> <b> | neg <a>"
	app.HideVersion = true
	app.Writer = w
	app.Flags = []cli.Flag{
		RadixFlag,
		PrecisionFlag,
	}
	app.Action = run

	return app
}

func run(c *cli.Context) (err error) {
	defer Error.WrapP(&err)

	ctx := decimal.Context{
		Radix:     uint32(c.Uint(RadixFlag.Name)),
		Precision: c.Int(PrecisionFlag.Name),
	}

	err = ctx.Validate()
	if err != nil {
		return err
	}

	args := c.Args()

	var out fmt.Stringer

	switch {
	case len(args) == 2 && args[0] == "neg":
		a, err := ctx.ParseNumber(args[1])
		if err != nil {
			return err
		}

		out = a.Neg()
	case len(args) == 3:
		out, err = apply(ctx, args[0], args[1], args[2])
		if err != nil {
			return err
		}
	default:
		return Error.New("expected <a> <op> <b> or neg <a>, got %d arguments", len(args))
	}

	_, err = fmt.Fprintln(c.App.Writer, out)

	return err
}

// cmpResult prints the outcome of a comparison.
type cmpResult struct {
	c  int
	ok bool
}

func (r cmpResult) String() string {
	if !r.ok {
		return "unordered"
	}

	return fmt.Sprint(r.c)
}

func apply(ctx decimal.Context, x, op, y string) (fmt.Stringer, error) {
	a, err := ctx.ParseNumber(x)
	if err != nil {
		return nil, err
	}

	b, err := ctx.ParseNumber(y)
	if err != nil {
		return nil, err
	}

	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*", "x":
		return a.Mul(b), nil
	case "/":
		return a.Div(b), nil
	case "cmp":
		c, ok := a.Cmp(b)

		return cmpResult{c: c, ok: ok}, nil
	}

	return nil, Error.New("unknown operator %q", op)
}

func main() {
	err := newApp(os.Stdout).Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
