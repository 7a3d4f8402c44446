package main

import (
	"github.com/mraditya/warungo/internal/cmd"
)

func main() {
	cmd.Execute()
}
