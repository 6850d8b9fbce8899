package main

import "github.com/chriscorrea/promptdeck/internal/cmd"

func main() {
	cmd.Execute()
}
