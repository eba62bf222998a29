package content

import "method-quiz-service/internal/domain"

func callback(desc string) domain.Argument {
	return domain.Argument{Name: "callback", Type: "function", Description: desc}
}

var javascriptMethods = []domain.Method{
	{
		Name:        "map",
		Category:    "Array",
		Syntax:      "array.map(callback(element, index, array), thisArg)",
		Description: "Creates a new array with the results of calling a function on every element.",
		Arguments: []domain.Argument{
			callback("Function called for each element"),
			{Name: "thisArg", Type: "any", Description: "Value used as this inside callback", Optional: true},
		},
		Returns: domain.Returns{Type: "Array", Description: "A new array of callback results"},
		Examples: []domain.Example{
			{Code: "[1, 2, 3].map(x => x * 2)", Output: "[2, 4, 6]", Explanation: "Each element is doubled into a new array."},
			{Code: "['a', 'b'].map(s => s.toUpperCase())", Output: "['A', 'B']"},
		},
		RelatedMethods: []string{"forEach", "filter", "flatMap"},
	},
	{
		Name:        "filter",
		Category:    "Array",
		Syntax:      "array.filter(callback(element, index, array), thisArg)",
		Description: "Creates a new array with the elements that pass the callback test.",
		Arguments: []domain.Argument{
			callback("Predicate called for each element"),
			{Name: "thisArg", Type: "any", Description: "Value used as this inside callback", Optional: true},
		},
		Returns: domain.Returns{Type: "Array", Description: "Elements for which the predicate returned truthy"},
		Examples: []domain.Example{
			{Code: "[1, 2, 3, 4].filter(x => x % 2 === 0)", Output: "[2, 4]", Explanation: "Only even numbers pass the test."},
		},
		RelatedMethods: []string{"find", "map", "some"},
	},
	{
		Name:        "reduce",
		Category:    "Array",
		Syntax:      "array.reduce(callback(acc, element, index, array), initialValue)",
		Description: "Reduces the array to a single value by applying a function against an accumulator.",
		Arguments: []domain.Argument{
			callback("Reducer called for each element"),
			{Name: "initialValue", Type: "any", Description: "Starting accumulator", Optional: true},
			{Name: "index", Type: "number", Description: "Index of the current element", Optional: true},
		},
		Returns: domain.Returns{Type: "any", Description: "The final accumulator"},
		Examples: []domain.Example{
			{Code: "[1, 2, 3, 4].reduce((a, b) => a + b, 0)", Output: "10", Explanation: "Sums all elements starting from 0."},
		},
		RelatedMethods: []string{"reduceRight", "map"},
	},
	{
		Name:        "find",
		Category:    "Array",
		Syntax:      "array.find(callback(element, index, array))",
		Description: "Returns the first element that satisfies the callback, or undefined.",
		Arguments:   []domain.Argument{callback("Predicate called for each element")},
		Returns:     domain.Returns{Type: "any", Description: "The first matching element or undefined"},
		Examples: []domain.Example{
			{Code: "[5, 12, 8, 130].find(x => x > 10)", Output: "12"},
		},
		RelatedMethods: []string{"findIndex", "filter", "includes"},
	},
	{
		Name:        "includes",
		Category:    "Array",
		Syntax:      "array.includes(searchElement, fromIndex)",
		Description: "Determines whether an array contains a value.",
		Arguments: []domain.Argument{
			{Name: "searchElement", Type: "any", Description: "Value to search for"},
			{Name: "fromIndex", Type: "number", Description: "Position to start searching", Optional: true},
		},
		Returns: domain.Returns{Type: "boolean", Description: "true if the value is found"},
		Examples: []domain.Example{
			{Code: "[1, 2, 3].includes(2)", Output: "true"},
		},
		RelatedMethods: []string{"indexOf", "find", "some"},
	},
	{
		Name:        "flat",
		Category:    "Array",
		Syntax:      "array.flat(depth)",
		Description: "Creates a new array with sub-array elements concatenated up to the given depth.",
		Arguments: []domain.Argument{
			{Name: "depth", Type: "number", Description: "How deep to flatten", Optional: true},
		},
		Returns: domain.Returns{Type: "Array", Description: "The flattened array"},
		Examples: []domain.Example{
			{Code: "[[1, 2], [3, [4]]].flat()", Output: "[1, 2, 3, [4]]", Explanation: "Flattens one level by default."},
		},
		RelatedMethods: []string{"flatMap", "concat"},
	},
	{
		Name:        "reverse",
		Category:    "Array",
		Syntax:      "array.reverse()",
		Description: "Reverses an array in place.",
		Returns:     domain.Returns{Type: "Array", Description: "The same array, reversed"},
		Examples: []domain.Example{
			{Code: "[1, 2, 3].reverse()", Output: "[3, 2, 1]"},
		},
		RelatedMethods: []string{"sort"},
	},
	{
		Name:        "toUpperCase",
		Category:    "String",
		Syntax:      "str.toUpperCase()",
		Description: "Returns the string converted to upper case.",
		Returns:     domain.Returns{Type: "string", Description: "Upper-cased copy"},
		Examples: []domain.Example{
			{Code: `"hello".toUpperCase()`, Output: `"HELLO"`},
		},
		RelatedMethods: []string{"toLowerCase"},
	},
	{
		Name:        "toLowerCase",
		Category:    "String",
		Syntax:      "str.toLowerCase()",
		Description: "Returns the string converted to lower case.",
		Returns:     domain.Returns{Type: "string", Description: "Lower-cased copy"},
		Examples: []domain.Example{
			{Code: `"HeLLo".toLowerCase()`, Output: `"hello"`},
		},
		RelatedMethods: []string{"toUpperCase"},
	},
	{
		Name:        "split",
		Category:    "String",
		Syntax:      "str.split(separator, limit)",
		Description: "Divides a string into an ordered list of substrings.",
		Arguments: []domain.Argument{
			{Name: "separator", Type: "string | RegExp", Description: "Where each split occurs"},
			{Name: "limit", Type: "number", Description: "Maximum number of pieces", Optional: true},
		},
		Returns: domain.Returns{Type: "Array", Description: "Array of substrings"},
		Examples: []domain.Example{
			{Code: "'a-b-c'.split('-')", Output: "['a', 'b', 'c']"},
		},
		RelatedMethods: []string{"join", "slice"},
	},
	{
		Name:        "trim",
		Category:    "String",
		Syntax:      "str.trim()",
		Description: "Removes whitespace from both ends of a string.",
		Returns:     domain.Returns{Type: "string", Description: "Trimmed copy"},
		Examples: []domain.Example{
			{Code: `"  hi  ".trim()`, Output: `"hi"`},
		},
		RelatedMethods: []string{"trimStart", "trimEnd"},
	},
	{
		Name:        "replace",
		Category:    "String",
		Syntax:      "str.replace(pattern, replacement)",
		Description: "Returns a new string with the first match of a pattern replaced.",
		Arguments: []domain.Argument{
			{Name: "pattern", Type: "string | RegExp", Description: "What to replace"},
			{Name: "replacement", Type: "string | function", Description: "Replacement text or callback"},
		},
		Returns: domain.Returns{Type: "string", Description: "The new string"},
		Examples: []domain.Example{
			{Code: `"cat hat".replace("at", "og")`, Output: `"cog hat"`, Explanation: "Only the first occurrence is replaced."},
		},
		RelatedMethods: []string{"replaceAll", "split"},
	},
	{
		Name:        "keys",
		Category:    "Object",
		Syntax:      "Object.keys(obj)",
		Description: "Returns an array of an object's own enumerable property names.",
		Arguments: []domain.Argument{
			{Name: "obj", Type: "object", Description: "Object to inspect"},
		},
		Returns: domain.Returns{Type: "Array", Description: "Property names"},
		Examples: []domain.Example{
			{Code: "Object.keys({a: 1, b: 2})", Output: "['a', 'b']"},
		},
		RelatedMethods: []string{"values", "entries"},
	},
	{
		Name:        "values",
		Category:    "Object",
		Syntax:      "Object.values(obj)",
		Description: "Returns an array of an object's own enumerable property values.",
		Arguments: []domain.Argument{
			{Name: "obj", Type: "object", Description: "Object to inspect"},
		},
		Returns: domain.Returns{Type: "Array", Description: "Property values"},
		Examples: []domain.Example{
			{Code: "Object.values({a: 1, b: 2})", Output: "[1, 2]"},
		},
		RelatedMethods: []string{"keys", "entries"},
	},
	{
		Name:        "entries",
		Category:    "Object",
		Syntax:      "Object.entries(obj)",
		Description: "Returns an array of an object's own [key, value] pairs.",
		Arguments: []domain.Argument{
			{Name: "obj", Type: "object", Description: "Object to inspect"},
		},
		Returns: domain.Returns{Type: "Array", Description: "Key/value pairs"},
		Examples: []domain.Example{
			{Code: "Object.entries({a: 1})", Output: "[['a', 1]]"},
		},
		RelatedMethods: []string{"keys", "values", "fromEntries"},
	},
	{
		Name:        "max",
		Category:    "Math",
		Syntax:      "Math.max(value1, value2, ...)",
		Description: "Returns the largest of the given numbers.",
		Arguments: []domain.Argument{
			{Name: "values", Type: "number", Description: "Numbers to compare"},
		},
		Returns: domain.Returns{Type: "number", Description: "The largest value"},
		Examples: []domain.Example{
			{Code: "Math.max(...[1, 2, 3])", Output: "3"},
		},
		RelatedMethods: []string{"min"},
	},
	{
		Name:        "min",
		Category:    "Math",
		Syntax:      "Math.min(value1, value2, ...)",
		Description: "Returns the smallest of the given numbers.",
		Arguments: []domain.Argument{
			{Name: "values", Type: "number", Description: "Numbers to compare"},
		},
		Returns: domain.Returns{Type: "number", Description: "The smallest value"},
		Examples: []domain.Example{
			{Code: "Math.min(4, 2, 8)", Output: "2"},
		},
		RelatedMethods: []string{"max"},
	},
	{
		Name:        "round",
		Category:    "Math",
		Syntax:      "Math.round(x)",
		Description: "Returns the value of a number rounded to the nearest integer.",
		Arguments: []domain.Argument{
			{Name: "x", Type: "number", Description: "Number to round"},
		},
		Returns: domain.Returns{Type: "number", Description: "Nearest integer"},
		Examples: []domain.Example{
			{Code: "Math.round(4.6)", Output: "5"},
		},
		RelatedMethods: []string{"floor", "ceil"},
	},
	{
		Name:        "toFixed",
		Category:    "Number",
		Syntax:      "num.toFixed(digits)",
		Description: "Formats a number using fixed-point notation.",
		Arguments: []domain.Argument{
			{Name: "digits", Type: "number", Description: "Digits after the decimal point", Optional: true},
		},
		Returns: domain.Returns{Type: "string", Description: "Formatted number"},
		Examples: []domain.Example{
			{Code: "(3.14159).toFixed(2)", Output: `"3.14"`},
		},
		RelatedMethods: []string{"toPrecision", "toString"},
	},
	{
		Name:        "isInteger",
		Category:    "Number",
		Syntax:      "Number.isInteger(value)",
		Description: "Determines whether the passed value is an integer.",
		Arguments: []domain.Argument{
			{Name: "value", Type: "any", Description: "Value to test"},
		},
		Returns: domain.Returns{Type: "boolean", Description: "true if value is an integer"},
		Examples: []domain.Example{
			{Code: "Number.isInteger(5.0)", Output: "true"},
		},
		RelatedMethods: []string{"isFinite", "parseInt"},
	},
}
