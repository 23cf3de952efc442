package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"scicalc/engine"
	"scicalc/tui"
)

func main() {
	// --eval flag: evaluate one expression and exit (for testing / scripting)
	if len(os.Args) > 1 && os.Args[1] == "--eval" {
		expr := strings.Join(os.Args[2:], " ")
		if strings.TrimSpace(expr) == "" {
			fmt.Fprintln(os.Stderr, "usage: scicalc --eval EXPRESSION")
			os.Exit(2)
		}
		v, err := engine.Eval(expr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s = %s\n", expr, engine.Format(v))
		return
	}

	p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
