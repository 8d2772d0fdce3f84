package main

import "github.com/OpenTraceLab/modconv/cmd/modconv/cmd"

func main() {
	cmd.Execute()
}
