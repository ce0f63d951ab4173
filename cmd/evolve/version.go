package main

import (
	"fmt"
)

var version = "dev"

type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *cmdContext) error {
	fmt.Printf("evolve %v\n", version)
	return nil
}
