package doctor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireResultByCheckName returns the single result named checkName.
func requireResultByCheckName(t *testing.T, results []Result, checkName string) Result {
	t.Helper()
	var matches []Result
	for _, result := range results {
		if result.CheckName == checkName {
			matches = append(matches, result)
		}
	}
	require.Len(t, matches, 1, "results for %s in %#v", checkName, results)
	return matches[0]
}
