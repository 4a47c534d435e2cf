package statistics

import (
	"strings"
	"sync"
	"testing"
)

func TestCounters(t *testing.T) {
	Init()

	t.Run("ChangeAccumulates", func(t *testing.T) {
		Change("placements", 2)
		Change("placements", 3)
		Set("stations", 7)

		display := Display()
		if !strings.Contains(display, "Number of placements is 5") {
			t.Fatalf("display misses the accumulated counter:\n%s", display)
		}
		if !strings.Contains(display, "Number of stations is 7") {
			t.Fatalf("display misses the set counter:\n%s", display)
		}
	})

	t.Run("SortedOutput", func(t *testing.T) {
		Init()
		Change("zebra", 1)
		Change("alpha", 1)

		display := Display()
		if strings.Index(display, "alpha") > strings.Index(display, "zebra") {
			t.Fatalf("keys are not sorted:\n%s", display)
		}
	})

	t.Run("ConcurrentChange", func(t *testing.T) {
		Init()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				Change("rows", 1)
			}()
		}
		wg.Wait()

		if !strings.Contains(Display(), "Number of rows is 20") {
			t.Fatalf("lost updates:\n%s", Display())
		}
	})
}
