package main

import "github.com/sharpton/seq-scripts/cmd"

func main() {
	cmd.Execute()
}
