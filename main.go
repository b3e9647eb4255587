// Command aula is the terminal client for the Aula learning platform.
package main

import "github.com/aula-dev/aula/internal/cli"

func main() {
	cli.Execute()
}
