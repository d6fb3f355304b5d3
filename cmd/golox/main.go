// Command golox runs the Lox tree-walking interpreter: a script file or an
// interactive REPL.
package main

import "github.com/cwbudde/golox/cmd/golox/cmd"

func main() {
	cmd.Execute()
}
