package main

import (
	_ "embed"

	"github.com/spf13/cobra"
)

var (
	GitVersion string
)

//go:embed gallows.txt
var banner string

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}
