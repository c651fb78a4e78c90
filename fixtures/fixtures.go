// Package fixtures gives random test data for the test suites of this module.
package fixtures

import (
	"math/rand"
	"sort"
	"sync"

	randomdata "github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
)

var mutex sync.Mutex

// RandomName returns a random human readable name.
func RandomName() string {
	mutex.Lock()
	defer mutex.Unlock()

	return randomdata.SillyName()
}

// RandomNames returns the requested amount of random human readable names.
func RandomNames(length int) []string {
	names := make([]string, 0, length)

	for i := 0; i < length; i++ {
		names = append(names, RandomName())
	}

	return names
}

// RandomIntByRange returns, as an int, a pseudo-random number based on the received int range's [min,max).
func RandomIntByRange(intRange ...int) int {
	sort.Ints(intRange)
	from := intRange[0]
	to := intRange[len(intRange)-1]
	if from == to {
		return from
	}
	return from + rand.Intn(to-from)
}

// UniqueName suffixes the received prefix with an uuid,
// so external resources like database files don't collide between test runs.
func UniqueName(prefix string) string {
	return prefix + `-` + uuid.NewV4().String()
}
