package main

import (
	_ "time/tzdata"

	"github.com/kentdenver/events-digest/internal/cli"
)

func main() {
	cli.Execute()
}
