package main

import "dircompare/cmd/dircompare/cmd"

func main() {
	cmd.Execute()
}
