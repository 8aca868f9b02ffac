package main

import "github.com/tessera-labs/wfc/cmd"

func main() {
	cmd.Execute()
}
