package naming

import "sort"

// Static vocabulary tables, loaded once and referenced read-only. Domains not
// listed here still play fine; they fall back to the generic base concept.

// spawnVocabulary maps a knowledge domain to the base concepts a random spawn
// can be labeled with.
var spawnVocabulary = map[string][]string{
	"python": {
		"variables", "strings", "lists", "dicts", "loops", "functions",
		"classes", "imports", "exceptions", "decorators", "generators",
		"comprehensions", "lambda", "async", "typing", "dataclasses",
	},
	"javascript": {
		"variables", "functions", "objects", "arrays", "promises",
		"async-await", "dom", "events", "classes", "modules",
		"closures", "prototypes", "this", "arrow-functions", "spread",
	},
	"algorithms": {
		"big-o", "arrays", "sorting", "searching", "recursion",
		"trees", "graphs", "dp", "greedy", "backtracking",
		"binary-search", "two-pointers", "sliding-window", "hash-maps",
	},
	"mathematics": {
		"algebra", "equations", "functions", "graphs", "calculus",
		"derivatives", "integrals", "limits", "geometry", "trigonometry",
		"statistics", "probability", "matrices", "vectors",
	},
	"data-structures": {
		"arrays", "linked-lists", "stacks", "queues", "trees",
		"heaps", "hash-tables", "graphs", "tries", "sets",
	},
}

// genericConcept is the fallback base concept for unknown domains.
const genericConcept = "concept"

// conceptFamilies maps a domain to its family tables: a family name and the
// member concepts that synthesize within it when merged.
var conceptFamilies = map[string]map[string][]string{
	"python": {
		"variables":       {"types", "assignment", "scope", "naming"},
		"functions":       {"parameters", "return", "lambda", "decorators", "generators"},
		"classes":         {"objects", "inheritance", "methods", "properties", "magic-methods"},
		"data-structures": {"lists", "dicts", "sets", "tuples", "collections"},
		"control-flow":    {"if-else", "loops", "comprehensions", "exceptions"},
		"modules":         {"imports", "packages", "pip", "virtual-environments"},
		"async":           {"coroutines", "await", "asyncio", "concurrency"},
	},
	"javascript": {
		"variables": {"let", "const", "var", "hoisting", "scope"},
		"functions": {"arrow-functions", "callbacks", "closures", "this"},
		"objects":   {"prototypes", "classes", "destructuring", "spread"},
		"async":     {"promises", "async-await", "fetch", "event-loop"},
		"dom":       {"selectors", "events", "manipulation", "forms"},
		"modern":    {"modules", "es6+", "typescript", "jsx"},
	},
	"algorithms": {
		"sorting":             {"bubble", "merge", "quick", "heap", "radix"},
		"searching":           {"binary", "linear", "dfs", "bfs", "dijkstra"},
		"dynamic-programming": {"memoization", "tabulation", "optimal-substructure"},
		"graphs":              {"traversal", "shortest-path", "spanning-tree", "topological"},
		"trees":               {"binary-tree", "bst", "avl", "red-black", "trie"},
	},
	"mathematics": {
		"algebra":        {"equations", "inequalities", "polynomials", "factoring"},
		"calculus":       {"derivatives", "integrals", "limits", "series"},
		"geometry":       {"shapes", "angles", "area", "volume", "trigonometry"},
		"statistics":     {"mean", "median", "variance", "probability", "distributions"},
		"linear-algebra": {"vectors", "matrices", "eigenvalues", "transformations"},
	},
}

// KnownDomains returns the domains with a dedicated spawn vocabulary, sorted
// lexically for stable presentation.
func KnownDomains() []string {
	domains := make([]string, 0, len(spawnVocabulary))
	for domain := range spawnVocabulary {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	return domains
}
