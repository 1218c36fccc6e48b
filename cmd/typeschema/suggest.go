package main

// knownCommands are the commands suggestCommand matches against.
var knownCommands = []string{"generate", "inspect", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance
// 2 of the input, or empty when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := levenshtein(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
