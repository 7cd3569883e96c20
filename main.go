package main

import "type-extractor/cmd"

func main() {
	cmd.Execute()
}
