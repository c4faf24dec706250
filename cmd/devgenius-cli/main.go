package main

import "github.com/devgenius/devgenius/cmd/devgenius-cli/cmd"

func main() {
	cmd.Execute()
}
