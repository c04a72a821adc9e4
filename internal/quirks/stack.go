package quirks

import "github.com/atomicstack/quirks/internal/terminal"

const bigArrayLen = 10_000_000

const stackSnippet = `
package main

import "fmt"

func main() {
	var c [10_000_000]float64
	fmt.Println(len(c))
}
`

const stackFixedSnippet = `
package main

import "fmt"

func main() {
	c := make([]float64, 10_000_000)
	fmt.Println(len(c))
}
`

func stackPuzzles() []Puzzle {
	return []Puzzle{
		{
			Label:   "Stack Overflow",
			Snippet: stackSnippet,
			Wait:    true,
			Run: func(c *terminal.Console) error {
				return c.Println(localArray())
			},
		},
		{
			Label:   "Stack Overflow Fixed",
			Snippet: stackFixedSnippet,
			Wait:    true,
			Run: func(c *terminal.Console) error {
				return c.Println(heapSlice())
			},
		},
	}
}

// localArray declares an 80 MB local. The compiler moves locals this large
// to the heap, so the goroutine stack never has to hold it.
func localArray() int {
	var c [bigArrayLen]float64
	c[len(c)-1] = 1
	n := 0
	for range c {
		n++
	}
	return n
}

func heapSlice() int {
	c := make([]float64, bigArrayLen)
	c[len(c)-1] = 1
	return len(c)
}
