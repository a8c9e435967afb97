package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen/fortune-service/internal/ui"
)

const replHelp = `commands:
  new            fetch another random fortune
  type <text>    set the draft
  submit         send the draft
  show           redraw the view
  help           show this help
  quit           leave
`

// runREPL mounts the component, renders it, then turns each input line into
// a component event until quit or EOF.
func runREPL(ctx context.Context, c *ui.Component, in io.Reader, out io.Writer) error {
	c.Mount(ctx)

	if err := c.Render(out); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprint(out, "> "); err != nil {
			return err
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd, arg, _ := strings.Cut(strings.TrimLeft(scanner.Text(), " \t"), " ")

		switch cmd {
		case "":
			continue
		case "new":
			c.NewFortune(ctx)
		case "type":
			c.Change(arg)
		case "submit":
			c.Submit(ctx)
		case "show":
		case "help":
			if _, err := fmt.Fprint(out, replHelp); err != nil {
				return err
			}
			continue
		case "quit", "exit":
			return nil
		default:
			if _, err := fmt.Fprintf(out, "unknown command %q, try help\n", cmd); err != nil {
				return err
			}
			continue
		}

		if err := c.Render(out); err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
