package main

import "github.com/theirongolddev/llminfo/cmd"

func main() {
	cmd.Execute()
}
