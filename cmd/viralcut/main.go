package main

import "github.com/clipsafari/viralcut/internal/cli"

func main() {
	cli.Main()
}
