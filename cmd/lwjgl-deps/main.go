// Command lwjgl-deps resolves LWJGL module selections into Maven
// coordinates.
package main

import (
	"fmt"
	"os"

	"github.com/albertocavalcante/go-lwjgl/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
