package main

import "github.com/abhishekvash/bare-minimum-theory/cmd"

func main() {
	cmd.Execute()
}
