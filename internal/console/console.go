package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/jwalitptl/clinic-console/internal/view"
)

// Console is the interactive loop: one command per line, one screen open
// at a time. It renders whatever the screen controllers expose and owns
// no entity logic of its own.
type Console struct {
	screens map[string]Screen
	current Screen
	name    string
	out     io.Writer
}

func New(screens map[string]Screen, out io.Writer) *Console {
	return &Console{screens: screens, out: out}
}

func (c *Console) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(c.out, "clinic console - type 'help' for commands")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		c.dispatch(ctx, line)
	}
}

func (c *Console) dispatch(ctx context.Context, line string) {
	parts := strings.Fields(line)
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help":
		c.printHelp()
	case "collections":
		c.printCollections()
	case "open":
		if len(args) != 1 {
			c.errorf("usage: open <collection>")
			return
		}
		screen, ok := c.screens[args[0]]
		if !ok {
			c.errorf("unknown collection %q", args[0])
			return
		}
		c.current, c.name = screen, args[0]
		screen.Refetch(ctx)
		c.render()
	case "search":
		if c.requireScreen() {
			return
		}
		c.current.SetSearch(strings.Join(args, " "))
		c.render()
	case "next":
		if c.requireScreen() {
			return
		}
		c.current.NextPage()
		c.render()
	case "prev":
		if c.requireScreen() {
			return
		}
		c.current.PrevPage()
		c.render()
	case "refresh":
		if c.requireScreen() {
			return
		}
		c.current.Refetch(ctx)
		c.render()
	case "new":
		if c.requireScreen() {
			return
		}
		if err := c.current.New(); err != nil {
			c.errorf("%v", err)
			return
		}
		fmt.Fprintf(c.out, "creating - fields: %s\n", strings.Join(c.current.Fields(), ", "))
	case "edit":
		if c.requireScreen() {
			return
		}
		if len(args) != 1 {
			c.errorf("usage: edit <id>")
			return
		}
		if err := c.current.Edit(args[0]); err != nil {
			c.errorf("%v", err)
			return
		}
		fmt.Fprintf(c.out, "editing %s - fields: %s\n", args[0], strings.Join(c.current.Fields(), ", "))
	case "set":
		if c.requireScreen() {
			return
		}
		if len(args) < 2 {
			c.errorf("usage: set <field> <value>")
			return
		}
		if err := c.current.Set(args[0], strings.Join(args[1:], " ")); err != nil {
			c.errorf("%v", err)
		}
	case "submit":
		if c.requireScreen() {
			return
		}
		if err := c.current.Submit(ctx); err == nil {
			c.render()
		}
	case "cancel":
		if c.requireScreen() {
			return
		}
		if c.current.Mode() != view.Closed {
			c.current.CancelForm()
			fmt.Fprintln(c.out, "form cancelled")
			return
		}
		if c.current.PendingDelete() != "" {
			c.current.CancelDelete()
			fmt.Fprintln(c.out, "delete cancelled")
		}
	case "delete":
		if c.requireScreen() {
			return
		}
		if len(args) != 1 {
			c.errorf("usage: delete <id>")
			return
		}
		if err := c.current.RequestDelete(args[0]); err != nil {
			c.errorf("%v", err)
			return
		}
		fmt.Fprintf(c.out, "confirm deletion of %s? (confirm/cancel)\n", args[0])
	case "confirm":
		if c.requireScreen() {
			return
		}
		if err := c.current.ConfirmDelete(ctx); err == nil {
			c.render()
		}
	default:
		c.errorf("unknown command %q - type 'help'", cmd)
	}
}

func (c *Console) render() {
	screen := c.current
	fmt.Fprintf(c.out, "\n%s\n", screen.Title())
	if msg := screen.Err(); msg != "" {
		fmt.Fprintf(c.out, "! %s\n", msg)
	}

	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(screen.Headers(), "\t"))
	for _, row := range screen.Rows() {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	fmt.Fprintf(c.out, "page %d of %d\n", screen.Page(), screen.TotalPages())
}

func (c *Console) printCollections() {
	names := make([]string, 0, len(c.screens))
	for name := range c.screens {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(c.out, strings.Join(names, "\n"))
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `commands:
  collections            list available collections
  open <collection>      fetch and show a collection
  search <text>          filter the open collection
  next | prev            page through results
  refresh                refetch the open collection
  new                    start a creation form
  edit <id>              start an edit form for a row
  set <field> <value>    set a form field
  submit                 validate and send the form
  delete <id>            stage a row for deletion
  confirm                confirm the staged deletion
  cancel                 close the form or cancel the staged deletion
  quit`)
}

func (c *Console) requireScreen() bool {
	if c.current == nil {
		c.errorf("no collection open - use 'open <collection>'")
		return true
	}
	return false
}

func (c *Console) errorf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "error: "+format+"\n", args...)
}
