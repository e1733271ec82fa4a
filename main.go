package main

import (
	"os"

	"rephraser/cmd"
)

//	@title			Mood-Based Text Rephraser
//	@version		1.0.0
//	@description	API for rephrasing text according to specified mood using Groq AI
//	@BasePath		/

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
