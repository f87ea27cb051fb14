package main

import "github.com/fribbit/swayscale/cmd"

func main() {
	cmd.Execute()
}
