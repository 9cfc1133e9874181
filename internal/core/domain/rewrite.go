package domain

// Outcome is what happened to a single ABI directory or file during a rewrite
type Outcome int

const (
	OutcomeDirectoryNotFound Outcome = iota
	OutcomeFileNotFound
	OutcomeFixed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDirectoryNotFound:
		return "directory not found"
	case OutcomeFileNotFound:
		return "file not found"
	case OutcomeFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

type RewriteEntry struct {
	AbiDir  string
	Path    string
	Outcome Outcome

	// Replacements is the number of occurrences replaced. Zero still counts as fixed.
	Replacements int
}

// RewriteSummary lists the outcome of every directory and file visited, in visit order.
type RewriteSummary struct {
	Entries []RewriteEntry
}

func (s *RewriteSummary) Count(outcome Outcome) int {
	count := 0
	for _, entry := range s.Entries {
		if entry.Outcome == outcome {
			count++
		}
	}
	return count
}

func (s *RewriteSummary) FixedPaths() []string {
	var paths []string
	for _, entry := range s.Entries {
		if entry.Outcome == OutcomeFixed {
			paths = append(paths, entry.Path)
		}
	}
	return paths
}

// Replacements is the number of occurrences replaced across all fixed files
func (s *RewriteSummary) Replacements() int {
	total := 0
	for _, entry := range s.Entries {
		total += entry.Replacements
	}
	return total
}
