// Package extract finds injected-markup candidates in decoded query values.
package extract

// Tags returns every candidate fragment of value that looks like injected
// markup: rule order first, then left to right within a rule, matches
// non-overlapping per rule. Duplicates across rules are kept so the checker
// sees candidates exactly as the rules produced them. A nil result means no
// rule matched.
func Tags(value string) []string {
	var tags []string
	for _, re := range rules {
		tags = append(tags, re.FindAllString(value, -1)...)
	}
	return tags
}
