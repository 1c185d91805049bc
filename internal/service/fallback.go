package service

import "strings"

// ProblemCategory is an algorithmic topic tag used only to select fallback text.
type ProblemCategory string

const (
	CategoryArray   ProblemCategory = "array"
	CategoryString  ProblemCategory = "string"
	CategoryTree    ProblemCategory = "tree"
	CategoryGraph   ProblemCategory = "graph"
	CategoryDP      ProblemCategory = "dp"
	CategoryMath    ProblemCategory = "math"
	CategoryGeneral ProblemCategory = "general"
)

const genericEncouragement = "Keep working on it! You're making good progress."

// fallbackHints maps category -> hint level -> canned hint text. Built once;
// never mutated after init.
var fallbackHints = map[ProblemCategory]map[int]string{
	CategoryArray: {
		1: "This is an array manipulation problem. Consider what operations you need to perform on the elements and think about using hash maps or two-pointer techniques for efficiency.",
		2: "Look at the pattern in the examples. You might need to iterate through the array while tracking indices or values. Consider the time complexity - can you solve it in O(n) time?",
		3: "For implementation, consider using a hash map to store values and their indices. Iterate through the array once, and for each element, check if its complement exists in your hash map.",
	},
	CategoryString: {
		1: "This is a string processing problem. Think about character manipulation, pattern matching, or string transformation. Consider if you need to process characters individually or in groups.",
		2: "Consider using string methods, character arrays, or sliding window techniques. Pay attention to edge cases like empty strings, single characters, or special characters.",
		3: "You might need to iterate through characters using indices or convert the string to a list for easier manipulation. Consider using two pointers if you need to compare characters from different positions.",
	},
	CategoryTree: {
		1: "This is a tree problem involving traversal or manipulation. Think about whether you need depth-first search (DFS), breadth-first search (BFS), or tree modification.",
		2: "Consider recursive solutions with proper base cases. Think about what information you need to pass down (top-down) or return up (bottom-up) during traversal.",
		3: "Implement recursive functions with base cases for null nodes. For DFS, consider pre-order, in-order, or post-order traversal. For BFS, use a queue to process nodes level by level.",
	},
	CategoryGraph: {
		1: "This is a graph problem involving nodes and connections. Think about graph traversal, shortest paths, or connectivity. Consider how the graph is represented.",
		2: "Consider BFS for shortest paths or level-order problems, DFS for connectivity or path-finding. You'll need to track visited nodes to avoid cycles.",
		3: "Use a visited set or array to track processed nodes. For BFS, use a queue; for DFS, use recursion or a stack. Consider the graph representation - adjacency list or matrix.",
	},
	CategoryDP: {
		1: "This looks like a dynamic programming problem with overlapping subproblems. Think about breaking the problem into smaller, similar subproblems.",
		2: "Consider what state you need to track and how previous states relate to the current one. Look for optimal substructure and overlapping subproblems.",
		3: "Define your recurrence relation and identify base cases. You can use memoization (top-down) with recursion or tabulation (bottom-up) with iteration.",
	},
	CategoryMath: {
		1: "This is a mathematical problem that requires algorithmic thinking. Consider the mathematical properties and patterns in the problem.",
		2: "Think about mathematical operations, number properties, or geometric relationships. Consider edge cases like negative numbers, zero, or overflow.",
		3: "Break down the mathematical operations step by step. Consider using mathematical formulas, modular arithmetic, or iterative calculations.",
	},
	CategoryGeneral: {
		1: "Break down this problem into smaller steps. What is the main operation or transformation you need to perform?",
		2: "Consider the time and space complexity requirements. Can you solve it with a direct approach, or do you need optimization?",
		3: "Think about the data structures and algorithms that best fit this problem. Consider edge cases and implement step by step.",
	},
}

var (
	arrayKeywords  = []string{"array", "subarray", "sum", "sorted", "matrix", "rotate", "merge"}
	stringKeywords = []string{"string", "substring", "palindrome", "character", "anagram", "pattern"}
	treeKeywords   = []string{"tree", "binary", "node", "root", "leaf", "depth", "height"}
	graphKeywords  = []string{"graph", "island", "path", "connected", "route", "network"}
	dpKeywords     = []string{"optimal", "minimum", "maximum", "dynamic", "subproblem", "overlapping"}
	mathKeywords   = []string{"number", "digit", "integer", "math", "calculate", "reverse", "factorial"}
)

// ClassifyProblem tags a problem by ordered keyword matching: title-based
// categories first, then the dp keywords against the description. The first
// match wins.
func ClassifyProblem(title, description string) ProblemCategory {
	titleLower := strings.ToLower(title)
	descriptionLower := strings.ToLower(description)

	switch {
	case containsAny(titleLower, arrayKeywords):
		return CategoryArray
	case containsAny(titleLower, stringKeywords):
		return CategoryString
	case containsAny(titleLower, treeKeywords):
		return CategoryTree
	case containsAny(titleLower, graphKeywords):
		return CategoryGraph
	case containsAny(descriptionLower, dpKeywords):
		return CategoryDP
	case containsAny(titleLower, mathKeywords):
		return CategoryMath
	default:
		return CategoryGeneral
	}
}

// FallbackHint returns the canned hint for a category and level. This path
// never fails: unknown categories use the general hints and unknown levels a
// generic encouragement.
func FallbackHint(category ProblemCategory, level int) string {
	hints, ok := fallbackHints[category]
	if !ok {
		hints = fallbackHints[CategoryGeneral]
	}
	if hint, ok := hints[level]; ok {
		return hint
	}
	return genericEncouragement
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
