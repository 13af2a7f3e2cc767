package main

import "github.com/andrely/gorustracer/cmd"

func main() {
	cmd.Execute()
}
