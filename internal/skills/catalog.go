package skills

// Category classifies a skill in the catalog.
type Category string

const (
	CategoryDataStructure    Category = "data_structure"
	CategoryAlgorithm        Category = "algorithm"
	CategoryParadigm         Category = "paradigm"
	CategoryConcept          Category = "concept"
	CategoryLanguageSpecific Category = "language_specific"
	CategoryAutoDetected     Category = "auto_detected"
	CategoryCodeReview       Category = "code_review"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryDataStructure,
		CategoryAlgorithm,
		CategoryParadigm,
		CategoryConcept,
		CategoryLanguageSpecific,
		CategoryAutoDetected,
		CategoryCodeReview,
	}
}

// DisplayName returns a human-readable name for a category.
func DisplayName(c Category) string {
	switch c {
	case CategoryDataStructure:
		return "Data Structures"
	case CategoryAlgorithm:
		return "Algorithms"
	case CategoryParadigm:
		return "Paradigms"
	case CategoryConcept:
		return "Concepts"
	case CategoryLanguageSpecific:
		return "Language Specific"
	case CategoryAutoDetected:
		return "Auto Detected"
	case CategoryCodeReview:
		return "Code Review"
	default:
		return string(c)
	}
}

// CatalogEntry is one skill in the default catalog.
type CatalogEntry struct {
	Name     string
	Category Category
}

// DefaultCatalog returns the skills seeded at initialization.
// Oracle-discovered skills outside this list are created lazily with
// the auto_detected category.
func DefaultCatalog() []CatalogEntry {
	return []CatalogEntry{
		{"Arrays/Lists", CategoryDataStructure},
		{"Linked Lists", CategoryDataStructure},
		{"Stacks", CategoryDataStructure},
		{"Queues", CategoryDataStructure},
		{"Hash Tables", CategoryDataStructure},
		{"Trees", CategoryDataStructure},
		{"Graphs", CategoryDataStructure},
		{"Heaps", CategoryDataStructure},

		{"Sorting", CategoryAlgorithm},
		{"Searching", CategoryAlgorithm},
		{"Recursion", CategoryAlgorithm},
		{"Dynamic Programming", CategoryAlgorithm},
		{"Greedy Algorithms", CategoryAlgorithm},
		{"Divide and Conquer", CategoryAlgorithm},
		{"Backtracking", CategoryAlgorithm},

		{"Object-Oriented Programming", CategoryParadigm},
		{"Functional Programming", CategoryParadigm},
		{"Procedural Programming", CategoryParadigm},

		{"Time Complexity", CategoryConcept},
		{"Space Complexity", CategoryConcept},
		{"Error Handling", CategoryConcept},
		{"Debugging", CategoryConcept},
		{"Testing", CategoryConcept},
		{"String Manipulation", CategoryConcept},
		{"File I/O", CategoryConcept},
		{"API Integration", CategoryConcept},
		{"Database Operations", CategoryConcept},
		{"Concurrency", CategoryConcept},
		{"Memory Management", CategoryConcept},
		{"Regular Expressions", CategoryConcept},

		{"Python Collections", CategoryLanguageSpecific},
		{"JavaScript Async", CategoryLanguageSpecific},
		{"Java Multithreading", CategoryLanguageSpecific},
		{"C++ STL", CategoryLanguageSpecific},
	}
}

// DefaultLanguages returns the programming-language catalog seeded at
// initialization.
func DefaultLanguages() []string {
	return []string{
		"Python", "JavaScript", "Java", "C++", "C#", "Go",
		"Ruby", "PHP", "TypeScript", "Rust", "Swift", "Kotlin",
	}
}
