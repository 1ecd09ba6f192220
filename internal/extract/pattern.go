package extract

import "regexp"

// rules is the detection table applied to every decoded parameter value.
// Order matters: earlier rules win when the checker walks candidates, so
// the whole-tag rules sit ahead of the attribute rules. Matching is
// case-sensitive; the mixed-case spellings are separate rules covering
// common filter-evasion variants.
var rules = []*regexp.Regexp{
	regexp.MustCompile(`<[^>]+>[^<]*</[^>]+>`), // paired tag with content
	regexp.MustCompile(`<[^>]+>`),              // lone or self-closing tag
	regexp.MustCompile(`onerror=[^>\s]+`),
	regexp.MustCompile(`OnError=[^>\s]+`),
	regexp.MustCompile(`onclick=[^>\s]+`),
	regexp.MustCompile(`OnCliCk=[^>\s]+`),
	regexp.MustCompile(`onload=[^>\s]+`),
	regexp.MustCompile(`OnLoAd=[^>\s]+`),
	regexp.MustCompile(`ontoggle=[^>\s]+`),
	regexp.MustCompile(`OnToGgLe=[^>\s]+`),
	regexp.MustCompile(`src=[^>\s]+`),
}
