// Package console is the interactive menu over a reminder store.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	v1 "github.com/aevon-lab/remindex/internal/api/v1"
	"github.com/aevon-lab/remindex/internal/core/storage"
	"github.com/aevon-lab/remindex/internal/reminder"
)

const (
	choiceAdd = iota + 1
	choiceList
	choiceCompleted
	choiceRemove
	choiceUndo
	choiceSearch
	choiceStats
	choiceExit
)

const menu = `
** Event Reminder Menu **
1. Add event
2. Display events
3. Show completed events
4. Remove event
5. Undo last delete
6. Search events
7. View system stats
8. Exit
Enter your choice: `

// errQuit ends the loop without an error: the user chose exit or input ran out.
var errQuit = errors.New("quit")

// Console reads menu choices line by line. Bad input is reported and the
// menu is shown again.
type Console struct {
	store *reminder.Store
	lines <-chan string
	out   io.Writer
}

// New starts reading in. The reader goroutine ends when in is exhausted.
func New(store *reminder.Store, in io.Reader, out io.Writer) *Console {
	if store == nil {
		panic("console: store must not be nil")
	}
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			lines <- sc.Text()
		}
		if err := sc.Err(); err != nil {
			slog.Error("[Console] Failed to read input", "error", err)
		}
	}()
	return &Console{store: store, lines: lines, out: out}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	c.println("Event Reminder System - Console Interface")

	for {
		c.printf("%s", menu)

		line, err := c.readLine(ctx)
		if err != nil {
			return c.finish(err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			c.printf("Invalid input: %q is not a number\n", strings.TrimSpace(line))
			continue
		}

		if err := c.dispatch(ctx, choice); err != nil {
			return c.finish(err)
		}
	}
}

func (c *Console) finish(err error) error {
	if errors.Is(err, errQuit) {
		c.println("Thank you for using Event Reminder System!")
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (c *Console) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case choiceAdd:
		return c.add(ctx)
	case choiceList:
		c.list()
	case choiceCompleted:
		c.completed()
	case choiceRemove:
		return c.remove(ctx)
	case choiceUndo:
		if c.store.Undo(ctx) {
			c.println("Last deleted event restored!")
		} else {
			c.println("Nothing to undo.")
		}
	case choiceSearch:
		return c.search(ctx)
	case choiceStats:
		c.stats()
	case choiceExit:
		return errQuit
	default:
		c.println("Invalid choice! Please try again.")
	}
	return nil
}

func (c *Console) add(ctx context.Context) error {
	title, err := c.prompt(ctx, "Enter Title: ")
	if err != nil {
		return err
	}
	description, err := c.prompt(ctx, "Enter Description: ")
	if err != nil {
		return err
	}
	rawDate, err := c.prompt(ctx, "Enter Date (yyyy-MM-dd): ")
	if err != nil {
		return err
	}

	date, parseErr := v1.ParseDate(rawDate)
	if parseErr != nil {
		c.printf("Invalid input: %v\n", parseErr)
		return nil
	}

	c.store.Add(ctx, title, description, date)
	c.println("Event added to the list of events!")
	return nil
}

func (c *Console) list() {
	events := c.store.Events()
	if len(events) == 0 {
		c.println("There is no event to be listed!")
		return
	}
	for i, evt := range events {
		c.printf("%d. %s\n", i+1, evt.Title())
		c.printf("   %s (%s)\n", evt.Description(), evt.Date().Format(v1.DateLayout))
	}
}

func (c *Console) completed() {
	if len(c.store.Events()) == 0 {
		c.println("No event in the list")
		return
	}
	entries := c.store.Completed()
	if len(entries) == 0 {
		c.println("No completed events.")
		return
	}
	for _, e := range entries {
		c.println(e.String())
		c.printf("   %s\n", e.Event.Description())
	}
}

func (c *Console) remove(ctx context.Context) error {
	c.list()
	raw, err := c.prompt(ctx, "Enter index to remove: ")
	if err != nil {
		return err
	}

	index, convErr := strconv.Atoi(strings.TrimSpace(raw))
	if convErr != nil {
		c.printf("Invalid input: %q is not a number\n", strings.TrimSpace(raw))
		return nil
	}

	if _, err := c.store.Remove(ctx, index); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.printf("Error: Event not found at index: %d\n", index)
			return nil
		}
		return err
	}
	c.println("Event removed!")
	return nil
}

func (c *Console) search(ctx context.Context) error {
	keyword, err := c.prompt(ctx, "Enter search keyword: ")
	if err != nil {
		return err
	}

	results := c.store.Search(keyword)
	if len(results) == 0 {
		c.println("No events found.")
		return nil
	}
	c.printf("Found %d event(s):\n", len(results))
	for i, evt := range results {
		c.printf("%d. %s\n", i+1, evt.Title())
	}
	return nil
}

func (c *Console) stats() {
	s := c.store.Stats()
	c.println("=== Internal System Status ===")
	c.printf("Primary store size: %d\n", s.Primary)
	c.printf("Custom array size: %d/%d\n", s.Array, s.ArrayCapacity)
	c.printf("Internal LinkedList - Size: %d\n", s.Linked)
	c.printf("Internal Stack - Size: %d/%d\n", s.Undo, s.UndoCapacity)
	c.printf("Internal Queue - Size: %d/%d\n", s.Queue, s.QueueCapacity)
	c.printf("Internal Binary Tree - Nodes: %d\n", s.Tree)
}

func (c *Console) prompt(ctx context.Context, label string) (string, error) {
	c.printf("%s", label)
	return c.readLine(ctx)
}

// readLine returns errQuit at end of input.
func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", errQuit
		}
		return line, nil
	}
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
