package insults

// Tiers groups insults by the level they are eligible at. Any is eligible
// at every level.
type Tiers struct {
	Any    []string
	Mild   []string
	Medium []string
	Brutal []string
}

// Corpus is a set of insults ready to be loaded into a Store.
type Corpus struct {
	Generic    Tiers
	Categories map[string]Tiers
}

// DefaultCorpus returns the built-in insults. Every category carries all
// three tiers so a level override always changes the tone.
func DefaultCorpus() Corpus {
	return Corpus{
		Generic: Tiers{
			Mild: []string{
				"Not your finest moment, but we all have those.",
				"Close! Well, not really, but it's the thought that counts.",
				"Your code tried its best. Its best was not enough.",
				"Have you tried turning your brain off and on again?",
			},
			Medium: []string{
				"This code runs about as well as a screen door on a submarine.",
				"I've seen better logic in a fortune cookie.",
				"Your program just filed a complaint with HR.",
				"Somewhere a rubber duck is shaking its head.",
			},
			Brutal: []string{
				"This code is the reason compilers have trust issues.",
				"If this code were a building it would be condemned.",
				"Stack Overflow would close this as 'needs more competence'.",
				"Even your CPU is embarrassed to execute this.",
			},
		},
		Categories: map[string]Tiers{
			CategoryGeneral: {
				Mild:   []string{"Something went wrong. Something usually does."},
				Medium: []string{"An error occurred, which is the least surprising thing today."},
				Brutal: []string{"Your code failed in a way so original it deserves a patent."},
			},
			CategorySyntax: {
				Mild:   []string{"A little typo never hurt anyone. Except the parser."},
				Medium: []string{"The parser read your input and asked for a translator."},
				Brutal: []string{"That syntax is a war crime against the grammar."},
			},
			CategoryType: {
				Mild:   []string{"Types are hard. Apparently very hard."},
				Medium: []string{"You asserted it was a duck. It was, in fact, a toaster."},
				Brutal: []string{"Your type system is held together with duct tape and denial."},
			},
			CategoryNil: {
				Mild:   []string{"You reached for something that wasn't there. Happens to the best of us."},
				Medium: []string{"Dereferencing nil: bold strategy, let's see how it plays out. Oh. Badly."},
				Brutal: []string{"Tony Hoare apologized for null. You apologize for this."},
			},
			CategoryIndex: {
				Mild:   []string{"Off by one? Happens to everyone at least once. Or twice."},
				Medium: []string{"That index lives outside the slice, like your logic lives outside reason."},
				Brutal: []string{"You counted past the end. Kindergarten wants its curriculum back."},
			},
			CategoryKey: {
				Mild:   []string{"That key isn't in the map. Maybe check the spelling?"},
				Medium: []string{"You looked for a key that never existed, like your test coverage."},
				Brutal: []string{"That key is as missing as your understanding of maps."},
			},
			CategoryValue: {
				Mild:   []string{"That value didn't quite fit. Close enough isn't, though."},
				Medium: []string{"You passed a value so wrong it looped back to wrong again."},
				Brutal: []string{"That input is so invalid it should be quarantined."},
			},
			CategoryMath: {
				Mild:   []string{"Dividing by zero: a classic, like bell-bottoms."},
				Medium: []string{"Your math would make a calculator resign."},
				Brutal: []string{"You divided by zero. The universe is filing a bug report against you."},
			},
			CategoryFile: {
				Mild:   []string{"The file isn't where you think it is. Few things are."},
				Medium: []string{"That file is playing hide and seek, and it's winning."},
				Brutal: []string{"You've lost a file. Is there anything you can keep track of?"},
			},
			CategoryPermission: {
				Mild:   []string{"Access denied. Politely, for now."},
				Medium: []string{"The OS took one look at you and said 'absolutely not'."},
				Brutal: []string{"Even the filesystem doesn't trust you, and it's seen everything."},
			},
			CategoryTimeout: {
				Mild:   []string{"That took a while. Then it took longer. Then it gave up."},
				Medium: []string{"Your code is so slow the deadline left without it."},
				Brutal: []string{"Glaciers have better throughput than this."},
			},
			CategoryNetwork: {
				Mild:   []string{"The network hiccupped. Or maybe it just didn't want to talk to you."},
				Medium: []string{"The remote host saw your request coming and pretended not to be home."},
				Brutal: []string{"Even the packets are ghosting you."},
			},
			CategoryConcurrency: {
				Mild:   []string{"Goroutines are tricky. This one tripped over a closed channel."},
				Medium: []string{"You sent on a closed channel, like texting your ex."},
				Brutal: []string{"Your concurrency model is two goroutines in a trench coat."},
			},
		},
	}
}
