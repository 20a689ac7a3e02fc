package main

import "github.com/tanq16/sheetgrab/cmd"

func main() {
	cmd.Execute()
}
