// Command svgbob renders ASCII/Unicode box-drawing diagrams to SVG. It is a
// thin front door over the svgbob package: all recognition logic lives
// there, this binary only wires flags, I/O, and exit codes.
package main

import "github.com/svgbob-go/svgbob/cmd/svgbob/cmd"

func main() {
	cmd.Execute()
}
