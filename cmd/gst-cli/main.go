package main

import (
	"gstscan-backend/cmd/gst-cli/cmd"
)

func main() {
	cmd.Execute()
}
