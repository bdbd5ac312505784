package main

import (
	"github.com/mchmarny/aic-catalog/pkg/cli"
)

func main() {
	cli.Execute()
}
