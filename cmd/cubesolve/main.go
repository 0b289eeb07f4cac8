package main

import "github.com/seamusw/cubesolve/internal/cli"

func main() {
	cli.Execute()
}
