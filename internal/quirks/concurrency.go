package quirks

import (
	"time"

	"github.com/atomicstack/quirks/internal/terminal"
	"golang.org/x/sync/errgroup"
)

const workersSnippet = `
package main

import (
	"fmt"
	"sync"
	"time"
)

func main() {
	var wg sync.WaitGroup
	for i := 1; i <= 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(time.Duration(4-i) * 10 * time.Millisecond)
			fmt.Println("worker", i)
		}()
	}
	wg.Wait()
}
`

const closedChannelSnippet = `
package main

import "fmt"

func main() {
	ch := make(chan int, 1)
	ch <- 42
	close(ch)
	fmt.Println(<-ch)
	fmt.Println(<-ch)
	v, ok := <-ch
	fmt.Println(v, ok)
}
`

const timerSnippet = `
package main

import (
	"fmt"
	"sync"
	"time"
)

func main() {
	var wg sync.WaitGroup
	wg.Add(2)
	time.AfterFunc(40*time.Millisecond, func() {
		fmt.Println("second")
		wg.Done()
	})
	time.AfterFunc(10*time.Millisecond, func() {
		fmt.Println("first")
		wg.Done()
	})
	fmt.Println("main")
	wg.Wait()
}
`

const tick = 10 * time.Millisecond

func concurrencyPuzzles() []Puzzle {
	return []Puzzle{
		{
			Label:   "Workers sleep and print",
			Snippet: workersSnippet,
			Wait:    true,
			Run: func(c *terminal.Console) error {
				var g errgroup.Group
				for i := 1; i <= 3; i++ {
					g.Go(func() error {
						time.Sleep(time.Duration(4-i) * tick)
						return c.Println("worker", i)
					})
				}
				return g.Wait()
			},
		},
		{
			Label:   "Closed channel receive",
			Snippet: closedChannelSnippet,
			Wait:    true,
			Run: func(c *terminal.Console) error {
				ch := make(chan int, 1)
				ch <- 42
				close(ch)
				if err := c.Println(<-ch); err != nil {
					return err
				}
				if err := c.Println(<-ch); err != nil {
					return err
				}
				v, ok := <-ch
				return c.Println(v, ok)
			},
		},
		{
			Label:   "Timer ordering",
			Snippet: timerSnippet,
			Wait:    true,
			Run: func(c *terminal.Console) error {
				fired := make(chan error, 2)
				time.AfterFunc(4*tick, func() { fired <- c.Println("second") })
				time.AfterFunc(tick, func() { fired <- c.Println("first") })
				err := c.Println("main")
				for range 2 {
					if timerErr := <-fired; err == nil {
						err = timerErr
					}
				}
				return err
			},
		},
	}
}
