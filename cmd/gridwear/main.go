package main

import "github.com/apexgrid/gridwear/internal/cmd"

func main() {
	cmd.Execute()
}
