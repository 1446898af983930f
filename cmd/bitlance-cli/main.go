package main

import "github.com/bitlance/web/cmd/bitlance-cli/cmd"

func main() {
	cmd.Execute()
}
