package main

import "github.com/btechwala999/Ignitia-client/internal/cli"

func main() {
	cli.Execute()
}
