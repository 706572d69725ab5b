package main

import "bundletui/internal/cli"

func main() {
	cli.Execute()
}
