package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nbdavies/isola/isola"
)

// readDirection prompts until the line parses as a keypad direction.
func (c *CLI) readDirection(p isola.Player) isola.Direction {
	for {
		fmt.Fprintf(c.Out, "Turn: %s\nUse the number pad to move in a direction 1-9, but not 5 (see key): ", p)
		d, err := isola.ParseDirection(c.readLine())
		if err != nil {
			fmt.Fprintln(c.Out, "Invalid Input!")
			continue
		}
		return d
	}
}

// readCoordinate prompts until the line is an integer in [1, max].
// The result is 1-based, as typed.
func (c *CLI) readCoordinate(prompt string, max int) int {
	for {
		fmt.Fprint(c.Out, prompt)
		n, err := strconv.Atoi(strings.TrimSpace(c.readLine()))
		if err != nil || n < 1 || n > max {
			fmt.Fprintln(c.Out, "Invalid coordinate!")
			continue
		}
		return n
	}
}

// pause waits for the user to press enter. End of input is tolerated
// so a piped game can run to completion.
func (c *CLI) pause(msg string) {
	fmt.Fprintln(c.Out, msg)
	_, err := c.In.ReadString('\n')
	if err != nil && err != io.EOF {
		panic(err)
	}
}

// readLine reads one line of input. A final unterminated line is
// accepted; input ending mid-prompt is a caller bug and panics, the
// real stream blocks instead of ending.
func (c *CLI) readLine() string {
	line, err := c.In.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		panic(err)
	}
	return line
}
