package game

// stages holds the gallows drawing for each number of tries left, from a
// complete figure at 0 to an empty frame at MaxTries.
var stages = [MaxTries + 1]string{
	`
   --------
   |      |
   |      O
   |     \|/
   |      |
   |     / \
   -
`,
	`
   --------
   |      |
   |      O
   |     \|/
   |      |
   |     /
   -
`,
	`
   --------
   |      |
   |      O
   |     \|/
   |      |
   |
   -
`,
	`
   --------
   |      |
   |      O
   |     \|
   |      |
   |
   -
`,
	`
   --------
   |      |
   |      O
   |      |
   |      |
   |
   -
`,
	`
   --------
   |      |
   |      O
   |
   |
   |
   -
`,
	`
   --------
   |
   |
   |
   |
   |
   -
`,
}

// Stage returns the drawing for the given number of tries left. Values
// outside 0..MaxTries are clamped.
func Stage(tries int) string {
	tries = max(0, min(tries, MaxTries))
	return stages[tries]
}
