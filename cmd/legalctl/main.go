// Command legalctl is the operator CLI: schema migrations, admin
// promotion and configuration reference.
package main

import (
	"fmt"
	"os"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
