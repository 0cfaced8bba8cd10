package main

import (
	"github.com/MeKo-Tech/textscan/cmd/textscan/cmd"
)

func main() {
	cmd.Execute()
}
