// Command sqldoc formats and highlights SQL scripts.
package main

import "github.com/waveform-computing/sqldoc/internal/cli"

func main() {
	cli.Execute()
}
