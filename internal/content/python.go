package content

import "method-quiz-service/internal/domain"

var pythonMethods = []domain.Method{
	{
		Name:        "append",
		Category:    "List",
		Syntax:      "list.append(x)",
		Description: "Adds an item to the end of the list.",
		Arguments:   []domain.Argument{{Name: "x", Type: "object", Description: "Item to add"}},
		Returns:     domain.Returns{Type: "None", Description: "Modifies the list in place"},
		Examples: []domain.Example{
			{Code: "nums = [1, 2]; nums.append(3)", Output: "[1, 2, 3]"},
		},
		RelatedMethods: []string{"extend", "insert"},
	},
	{
		Name:        "extend",
		Category:    "List",
		Syntax:      "list.extend(iterable)",
		Description: "Extends the list by appending all items from the iterable.",
		Arguments:   []domain.Argument{{Name: "iterable", Type: "iterable", Description: "Items to add"}},
		Returns:     domain.Returns{Type: "None", Description: "Modifies the list in place"},
		Examples: []domain.Example{
			{Code: "[1, 2].extend([3, 4])", Output: "[1, 2, 3, 4]"},
		},
		RelatedMethods: []string{"append", "insert"},
	},
	{
		Name:        "insert",
		Category:    "List",
		Syntax:      "list.insert(i, x)",
		Description: "Inserts an item at a given position.",
		Arguments: []domain.Argument{
			{Name: "i", Type: "int", Description: "Index to insert before"},
			{Name: "x", Type: "object", Description: "Item to insert"},
		},
		Returns: domain.Returns{Type: "None", Description: "Modifies the list in place"},
		Examples: []domain.Example{
			{Code: "[1, 3].insert(1, 2)", Output: "[1, 2, 3]"},
		},
		RelatedMethods: []string{"append"},
	},
	{
		Name:        "sort",
		Category:    "List",
		Syntax:      "list.sort(key=None, reverse=False)",
		Description: "Sorts the list in place.",
		Arguments: []domain.Argument{
			{Name: "key", Type: "function", Description: "Extracts a comparison key", Optional: true},
			{Name: "reverse", Type: "bool", Description: "Sort descending", Optional: true},
		},
		Returns: domain.Returns{Type: "None", Description: "Modifies the list in place"},
		Examples: []domain.Example{
			{Code: "[3, 1, 2].sort()", Output: "[1, 2, 3]"},
		},
		RelatedMethods: []string{"sorted", "reverse"},
	},
	{
		Name:        "upper",
		Category:    "String",
		Syntax:      "str.upper()",
		Description: "Returns a copy of the string converted to uppercase.",
		Returns:     domain.Returns{Type: "str", Description: "Upper-cased copy"},
		Examples: []domain.Example{
			{Code: `"hello".upper()`, Output: `'HELLO'`},
		},
		RelatedMethods: []string{"lower", "title"},
	},
	{
		Name:        "lower",
		Category:    "String",
		Syntax:      "str.lower()",
		Description: "Returns a copy of the string converted to lowercase.",
		Returns:     domain.Returns{Type: "str", Description: "Lower-cased copy"},
		Examples: []domain.Example{
			{Code: `"HeLLo".lower()`, Output: `'hello'`},
		},
		RelatedMethods: []string{"upper"},
	},
	{
		Name:        "join",
		Category:    "String",
		Syntax:      "str.join(iterable)",
		Description: "Concatenates the strings of an iterable using the string as separator.",
		Arguments:   []domain.Argument{{Name: "iterable", Type: "iterable", Description: "Strings to join"}},
		Returns:     domain.Returns{Type: "str", Description: "The joined string"},
		Examples: []domain.Example{
			{Code: `"-".join(['a', 'b', 'c'])`, Output: `'a-b-c'`},
		},
		RelatedMethods: []string{"split"},
	},
	{
		Name:        "split",
		Category:    "String",
		Syntax:      "str.split(sep=None, maxsplit=-1)",
		Description: "Returns a list of the words in the string, using sep as the delimiter.",
		Arguments: []domain.Argument{
			{Name: "sep", Type: "str", Description: "Delimiter", Optional: true},
			{Name: "maxsplit", Type: "int", Description: "Maximum number of splits", Optional: true},
		},
		Returns: domain.Returns{Type: "list", Description: "List of substrings"},
		Examples: []domain.Example{
			{Code: `"a,b,c".split(",")`, Output: "['a', 'b', 'c']"},
		},
		RelatedMethods: []string{"join", "strip"},
	},
	{
		Name:        "get",
		Category:    "Dictionary",
		Syntax:      "dict.get(key, default=None)",
		Description: "Returns the value for key if present, else default.",
		Arguments: []domain.Argument{
			{Name: "key", Type: "hashable", Description: "Key to look up"},
			{Name: "default", Type: "object", Description: "Fallback value", Optional: true},
		},
		Returns: domain.Returns{Type: "object", Description: "The value or default"},
		Examples: []domain.Example{
			{Code: "{'a': 1}.get('b', 0)", Output: "0"},
		},
		RelatedMethods: []string{"setdefault", "items"},
	},
	{
		Name:        "items",
		Category:    "Dictionary",
		Syntax:      "dict.items()",
		Description: "Returns a view of the dictionary's (key, value) pairs.",
		Returns:     domain.Returns{Type: "dict_items", Description: "View of pairs"},
		Examples: []domain.Example{
			{Code: "list({'a': 1}.items())", Output: "[('a', 1)]"},
		},
		RelatedMethods: []string{"keys", "values"},
	},
	{
		Name:        "sorted",
		Category:    "Built-in",
		Syntax:      "sorted(iterable, key=None, reverse=False)",
		Description: "Returns a new sorted list from the items in iterable.",
		Arguments: []domain.Argument{
			{Name: "iterable", Type: "iterable", Description: "Items to sort"},
			{Name: "key", Type: "function", Description: "Extracts a comparison key", Optional: true},
			{Name: "reverse", Type: "bool", Description: "Sort descending", Optional: true},
		},
		Returns: domain.Returns{Type: "list", Description: "A new sorted list"},
		Examples: []domain.Example{
			{Code: "sorted([3, 1, 2])", Output: "[1, 2, 3]"},
		},
		RelatedMethods: []string{"sort", "reversed"},
	},
	{
		Name:        "len",
		Category:    "Built-in",
		Syntax:      "len(s)",
		Description: "Returns the number of items in a container.",
		Arguments:   []domain.Argument{{Name: "s", Type: "sized", Description: "Sequence or collection"}},
		Returns:     domain.Returns{Type: "int", Description: "Number of items"},
		Examples: []domain.Example{
			{Code: "len([1, 2, 3])", Output: "3"},
		},
		RelatedMethods: []string{"sum"},
	},
}
