package quirks

import (
	"math"
	"sort"

	"github.com/atomicstack/quirks/internal/terminal"
)

const sortIntSnippet = `
package main

import (
	"fmt"
	"sort"
)

func main() {
	numbers := []int{5, 2, 4, 1, 3}
	sort.Ints(numbers)
	fmt.Println(numbers)
}
`

const sortFloatSnippet = `
package main

import (
	"fmt"
	"math"
	"sort"
)

func main() {
	numbers := []float64{5, math.NaN(), 3, 1, 2}
	sort.Float64s(numbers)
	fmt.Println(numbers)
}
`

const sortSliceSnippet = `
package main

import (
	"fmt"
	"math"
	"sort"
)

func main() {
	numbers := []float64{5, math.NaN(), 3, 1, 2}
	sort.Slice(numbers, func(i, j int) bool {
		return numbers[i] < numbers[j]
	})
	fmt.Println(numbers)
}
`

func sortPuzzles() []Puzzle {
	return []Puzzle{
		{
			Label:   "Sort int",
			Snippet: sortIntSnippet,
			Wait:    true,
			Run: func(c *terminal.Console) error {
				numbers := []int{5, 2, 4, 1, 3}
				sort.Ints(numbers)
				return c.Println(numbers)
			},
		},
		{
			Label:   "Sort float",
			Snippet: sortFloatSnippet,
			Wait:    true,
			Run: func(c *terminal.Console) error {
				numbers := []float64{5, math.NaN(), 3, 1, 2}
				sort.Float64s(numbers)
				return c.Println(numbers)
			},
		},
		{
			Label:   "Sort float with sort.Slice",
			Snippet: sortSliceSnippet,
			Wait:    true,
			Run: func(c *terminal.Console) error {
				numbers := []float64{5, math.NaN(), 3, 1, 2}
				// a NaN makes < an inconsistent ordering
				sort.Slice(numbers, func(i, j int) bool {
					return numbers[i] < numbers[j]
				})
				return c.Println(numbers)
			},
		},
	}
}
