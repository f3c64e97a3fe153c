// Command arbitdump parses integers into arbitrary precision numbers and
// prints their raw unit layout.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/kratuvid/simple-calculator/arbit"
)

var negative = color.New(color.FgRed).SprintFunc()

func main() {
	app := cli.NewApp()
	app.Name = "arbitdump"
	app.Usage = "print the unit layout of arbitrary precision numbers"
	app.ArgsUsage = "[--] NUMBER... (use -- before negative numbers)"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "mode, m",
			Value: "u",
			Usage: "unit rendering: u(nsigned), b(inary), x (hex) or s(igned)",
		},
		cli.BoolFlag{
			Name:  "size, s",
			Usage: "print the storage size of each part",
		},
	}
	app.Action = dump

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func dump(c *cli.Context) error {
	mode, err := arbit.ParseMode(c.String("mode"))
	if err != nil {
		return err
	}

	if c.NArg() == 0 {
		return cli.NewExitError("no numbers given", 2)
	}

	failed := 0

	for _, arg := range c.Args() {
		n, err := arbit.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			failed++

			continue
		}

		out := n.RawFormat(mode)
		if n.IsNegative() {
			out = negative(out)
		}

		if c.Bool("size") {
			out = fmt.Sprintf("%s [%d+%d=%d bytes]", out, n.Bytes(), n.BytesDecimal(), n.BytesTotal())
		}

		fmt.Printf("%s: %s\n", arg, out)
	}

	if failed > 0 {
		return cli.NewExitError(fmt.Sprintf("%d of %d numbers failed to parse", failed, c.NArg()), 1)
	}

	return nil
}
