// Package main provides the grapholint CLI for Graphol diagram validation.
package main

func main() {
	Execute()
}
