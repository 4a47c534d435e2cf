package statistics

import (
	"fmt"
	"sort"
	"sync"
)

// Process-wide counters for the planning run, written from whichever
// goroutine happens to do the work.
type statisticsData struct {
	dataMap map[string]int

	mutex sync.Mutex
}

var stats = &statisticsData{
	dataMap: make(map[string]int),
}

// Init resets every counter.
func Init() {
	stats.mutex.Lock()
	defer stats.mutex.Unlock()

	stats.dataMap = make(map[string]int)
}

func Set(key string, value int) {
	stats.mutex.Lock()
	defer stats.mutex.Unlock()

	stats.dataMap[key] = value
}

func Change(key string, value int) {
	stats.mutex.Lock()
	defer stats.mutex.Unlock()

	stats.dataMap[key] += value
}

// Display renders the counters sorted by key, so runs can be diffed.
func Display() string {
	stats.mutex.Lock()
	defer stats.mutex.Unlock()

	keys := make([]string, 0, len(stats.dataMap))
	for key := range stats.dataMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := "Planner statistics:\n"
	for _, key := range keys {
		result += fmt.Sprintf("Number of %s is %d\n", key, stats.dataMap[key])
	}

	return result
}
