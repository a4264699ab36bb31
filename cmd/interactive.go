// cmd/interactive.go
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// runInteractive loops over stdin, looking up one domain per line. A failed
// lookup prints its error and the prompt comes back; only exit/quit or EOF
// ends the session.
func runInteractive() {
	reader := bufio.NewReader(os.Stdin)
	color.Blue("🔧 Interactive mode - type a domain name, or 'exit' to quit.")
	for {
		fmt.Print("dns> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			return
		}
		// Errors are already printed by runLookup; keep prompting.
		_ = runLookup(line)
	}
}
