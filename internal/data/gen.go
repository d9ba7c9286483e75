// ABOUTME: Deterministic synthetic data source for the demo mode and tests
// ABOUTME: Mixes short and long cells so row heights actually vary

package data

import (
	"fmt"
	"math/rand"
	"strings"
)

var (
	genStatuses = []string{"open", "closed", "pending", "blocked", "merged"}
	genOwners   = []string{"ada", "brian", "curry", "dennis", "grace", "ken", "rob"}
	genWords    = strings.Fields(
		"virtual rows scroll anchor buffer slot offset viewport height table " +
			"render reuse pool eviction window incremental measure estimate " +
			"column cell wrap layout session cache prefix sum walk")
)

// Generate builds a deterministic synthetic source with n rows. The same n
// always yields the same rows.
func Generate(n int) *Source {
	rng := rand.New(rand.NewSource(int64(n)))
	src := &Source{
		Name: fmt.Sprintf("demo(%d)", n),
		Keys: []string{"id", "owner", "status", "title", "notes"},
		Rows: make([]Row, 0, n),
	}
	for i := 0; i < n; i++ {
		src.Rows = append(src.Rows, Row{
			"id":     fmt.Sprintf("%d", i+1),
			"owner":  genOwners[rng.Intn(len(genOwners))],
			"status": genStatuses[rng.Intn(len(genStatuses))],
			"title":  genSentence(rng, 3+rng.Intn(5)),
			"notes":  genSentence(rng, rng.Intn(40)),
		})
	}
	return src
}

// genSentence produces a pseudo-random sentence of n words.
func genSentence(rng *rand.Rand, n int) string {
	if n == 0 {
		return ""
	}
	words := make([]string, n)
	for i := range words {
		words[i] = genWords[rng.Intn(len(genWords))]
	}
	return strings.Join(words, " ")
}
