package quirks

import (
	"strings"

	"github.com/atomicstack/quirks/internal/logging/events"
	"github.com/atomicstack/quirks/internal/terminal"
)

const inputSnippet = `
package main

import (
	"bufio"
	"fmt"
	"os"
)

func main() {
	fmt.Println("What is 1+1?")
	input, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if input == "2" {
		fmt.Println("It is 2!")
	} else {
		fmt.Println("It is not 2!")
	}
}
`

const inputExplainedSnippet = `
package main

import (
	"bufio"
	"fmt"
	"os"
)

func main() {
	fmt.Println("What is 1+1?")
	input, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	fmt.Printf("%q\n", input)
}
`

const inputFixedSnippet = `
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func main() {
	fmt.Println("What is 1+1?")
	input, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.TrimSpace(input) == "2" {
		fmt.Println("It is 2!")
	} else {
		fmt.Println("It is not 2!")
	}
}
`

func inputPuzzles() []Puzzle {
	return []Puzzle{
		{
			Label:   "Input End-of-line Parsing",
			Snippet: inputSnippet,
			Run: func(c *terminal.Console) error {
				line, err := askOnePlusOne(c, "Input End-of-line Parsing")
				if err != nil {
					return err
				}
				return verdict(c, line == "2")
			},
		},
		{
			Label:   "Input End-of-line Parsing Explained",
			Snippet: inputExplainedSnippet,
			Run: func(c *terminal.Console) error {
				line, err := askOnePlusOne(c, "Input End-of-line Parsing Explained")
				if err != nil {
					return err
				}
				return c.Printf("%q\n", line)
			},
		},
		{
			Label:   "Input End-of-line Parsing Fixed",
			Snippet: inputFixedSnippet,
			Run: func(c *terminal.Console) error {
				line, err := askOnePlusOne(c, "Input End-of-line Parsing Fixed")
				if err != nil {
					return err
				}
				return verdict(c, strings.TrimSpace(line) == "2")
			},
		},
	}
}

func askOnePlusOne(c *terminal.Console, label string) (string, error) {
	if err := c.Printf("What is %s?\n", c.Bold("1+1")); err != nil {
		return "", err
	}
	line, err := c.ReadLine()
	if err != nil {
		return "", err
	}
	events.Quirk.Input(label, line)
	return line, nil
}

func verdict(c *terminal.Console, two bool) error {
	if two {
		return c.Printf("It is %s!\n", c.Good("2"))
	}
	return c.Printf("It is not %s!\n", c.Bad("2"))
}
