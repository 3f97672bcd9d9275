// Command popgen checks parameter files for forward-time population-genetics
// simulations.
package main

import "github.com/sarchlab/popgen/popgen/cmd"

func main() {
	cmd.Execute()
}
