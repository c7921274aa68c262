package main

import (
	"errors"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"supercli/pkg/cli"
	"supercli/pkg/prompt"
	"supercli/pkg/utils"
)

func main() {
	err := cli.Execute()
	utils.CloseLogger()

	switch {
	case err == nil:
	case errors.Is(err, prompt.ErrAborted):
		// ctrl+c in a prompt ends the program quietly
		os.Exit(130)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if path := utils.LogFile(); path != "" {
			fmt.Fprintf(os.Stderr, "See %s for details\n", path)
		}
		os.Exit(1)
	}
}
