package content

import "method-quiz-service/internal/domain"

var algorithmProblems = []domain.AlgorithmProblem{
	{
		ID:          "two-sum",
		Title:       "Two Sum",
		Category:    "Hash Map",
		Difficulty:  domain.DifficultyEasy,
		Description: "Return the indices of the two numbers that add up to the target.",
		Examples: []domain.ProblemExample{
			{Input: "nums = [2, 7, 11, 15], target = 9", Output: "[0, 1]", Explanation: "nums[0] + nums[1] == 9"},
		},
		Constraints:     []string{"2 <= nums.length <= 10^4", "Exactly one solution exists"},
		Hints:           []string{"Store each value's index as you scan."},
		RelatedProblems: []string{"Three Sum", "Group Anagrams"},
	},
	{
		ID:          "group-anagrams",
		Title:       "Group Anagrams",
		Category:    "Hash Map",
		Difficulty:  domain.DifficultyMedium,
		Description: "Group strings that are anagrams of each other.",
		Examples: []domain.ProblemExample{
			{Input: `strs = ["eat", "tea", "tan", "ate", "nat", "bat"]`, Output: `[["bat"], ["nat", "tan"], ["ate", "eat", "tea"]]`},
		},
		Hints:           []string{"Sorted characters make a good key."},
		RelatedProblems: []string{"Valid Anagram", "Two Sum"},
	},
	{
		ID:          "valid-anagram",
		Title:       "Valid Anagram",
		Category:    "Hash Map",
		Difficulty:  domain.DifficultyEasy,
		Description: "Decide whether t is an anagram of s.",
		Examples: []domain.ProblemExample{
			{Input: `s = "anagram", t = "nagaram"`, Output: "true"},
		},
		RelatedProblems: []string{"Group Anagrams"},
	},
	{
		ID:          "three-sum",
		Title:       "Three Sum",
		Category:    "Two Pointers",
		Difficulty:  domain.DifficultyMedium,
		Description: "Find all unique triplets that sum to zero.",
		Examples: []domain.ProblemExample{
			{Input: "nums = [-1, 0, 1, 2, -1, -4]", Output: "[[-1, -1, 2], [-1, 0, 1]]"},
		},
		Hints:           []string{"Sort first, then fix one element and move two pointers."},
		RelatedProblems: []string{"Two Sum", "Container With Most Water"},
	},
	{
		ID:          "container-with-most-water",
		Title:       "Container With Most Water",
		Category:    "Two Pointers",
		Difficulty:  domain.DifficultyMedium,
		Description: "Pick two lines that together with the x-axis hold the most water.",
		Examples: []domain.ProblemExample{
			{Input: "height = [1, 8, 6, 2, 5, 4, 8, 3, 7]", Output: "49"},
		},
		RelatedProblems: []string{"Trapping Rain Water"},
	},
	{
		ID:          "trapping-rain-water",
		Title:       "Trapping Rain Water",
		Category:    "Two Pointers",
		Difficulty:  domain.DifficultyHard,
		Description: "Compute how much water is trapped between bars after raining.",
		Examples: []domain.ProblemExample{
			{Input: "height = [0, 1, 0, 2, 1, 0, 1, 3, 2, 1, 2, 1]", Output: "6"},
		},
		RelatedProblems: []string{"Container With Most Water"},
	},
	{
		ID:          "longest-substring",
		Title:       "Longest Substring Without Repeating Characters",
		Category:    "Sliding Window",
		Difficulty:  domain.DifficultyMedium,
		Description: "Find the length of the longest substring without repeating characters.",
		Examples: []domain.ProblemExample{
			{Input: `s = "abcabcbb"`, Output: "3", Explanation: `The answer is "abc".`},
			{Input: `s = "bbbbb"`, Output: "1"},
		},
		RelatedProblems: []string{"Minimum Window Substring"},
	},
	{
		ID:          "minimum-window-substring",
		Title:       "Minimum Window Substring",
		Category:    "Sliding Window",
		Difficulty:  domain.DifficultyHard,
		Description: "Find the smallest window of s containing every character of t.",
		Examples: []domain.ProblemExample{
			{Input: `s = "ADOBECODEBANC", t = "ABC"`, Output: `"BANC"`},
		},
		RelatedProblems: []string{"Longest Substring Without Repeating Characters"},
	},
	{
		ID:          "binary-search",
		Title:       "Binary Search",
		Category:    "Binary Search",
		Difficulty:  domain.DifficultyEasy,
		Description: "Return the index of target in a sorted array, or -1.",
		Examples: []domain.ProblemExample{
			{Input: "nums = [-1, 0, 3, 5, 9, 12], target = 9", Output: "4"},
		},
		RelatedProblems: []string{"Search in Rotated Sorted Array"},
	},
	{
		ID:          "search-rotated",
		Title:       "Search in Rotated Sorted Array",
		Category:    "Binary Search",
		Difficulty:  domain.DifficultyMedium,
		Description: "Search a target in an ascending array rotated at an unknown pivot.",
		Examples: []domain.ProblemExample{
			{Input: "nums = [4, 5, 6, 7, 0, 1, 2], target = 0", Output: "4"},
		},
		RelatedProblems: []string{"Binary Search"},
	},
}
