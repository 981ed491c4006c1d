package main

import "github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/cli"

func main() {
	cli.Execute()
}
