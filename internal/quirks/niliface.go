package quirks

import "github.com/atomicstack/quirks/internal/terminal"

const nilSnippet = `
package main

import "fmt"

type MyError struct{}

func (*MyError) Error() string { return "boom" }

func find() error {
	var err *MyError
	return err
}

func main() {
	fmt.Println(find() == nil)
}
`

const nilFixedSnippet = `
package main

import "fmt"

type MyError struct{}

func (*MyError) Error() string { return "boom" }

func find() error {
	var err *MyError
	if err == nil {
		return nil
	}
	return err
}

func main() {
	fmt.Println(find() == nil)
}
`

type quirkError struct{}

func (*quirkError) Error() string { return "boom" }

// typedNil returns a nil *quirkError inside a non-nil error interface.
func typedNil() error {
	var err *quirkError
	return err
}

func untypedNil() error {
	var err *quirkError
	if err == nil {
		return nil
	}
	return err
}

func nilPuzzles() []Puzzle {
	return []Puzzle{
		{
			Label:   "Nil interface",
			Snippet: nilSnippet,
			Wait:    true,
			Run: func(c *terminal.Console) error {
				return c.Println(typedNil() == nil)
			},
		},
		{
			Label:   "Nil interface Fixed",
			Snippet: nilFixedSnippet,
			Wait:    true,
			Run: func(c *terminal.Console) error {
				return c.Println(untypedNil() == nil)
			},
		},
	}
}
