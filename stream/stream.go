package stream

import (
	"context"
	"sync"
)

// Slice sends the elements of in until done or ctx is cancelled.
func Slice[T any](ctx context.Context, in []T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for _, element := range in {
			select {
			case <-ctx.Done():
				return
			case out <- element:
			}
		}
	}()
	return out
}

// Workers applies transformer to every element of in using n goroutines. Output order is not preserved.
// A cancelled context stops workers between elements; an element being
// transformed is finished first.
func Workers[I any, O any](ctx context.Context, n int, transformer func(I) O, in <-chan I) <-chan O {
	if n < 1 {
		n = 1
	}
	out := make(chan O)
	wg := sync.WaitGroup{}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			for {
				var element I
				var ok bool
				select {
				case <-ctx.Done():
					return
				case element, ok = <-in:
					if !ok {
						return
					}
				}
				select {
				case <-ctx.Done():
					return
				case out <- transformer(element):
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Collect drains in into a slice.
func Collect[T any](ctx context.Context, in <-chan T) []T {
	out := make([]T, 0)
	for element := range in {
		select {
		case <-ctx.Done():
			return out
		default:
			out = append(out, element)
		}
	}
	return out
}
