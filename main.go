package main

import (
	"os"
	"rdparser/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
