package main

import (
	"os"

	"github.com/hashicorp-forge/clientdesk/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
