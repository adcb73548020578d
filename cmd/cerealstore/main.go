// Package main provides the cerealstore CLI.
package main

import "github.com/mesh-intelligence/cerealstore/internal/cli"

func main() {
	cli.Execute()
}
