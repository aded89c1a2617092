package insults

import (
	"strings"

	"github.com/utkarsh5026/coderoast/pkg/level"
)

// pool holds the insults of one category (or of the generic pool).
// Untiered insults are eligible at every level; tiered ones only at theirs.
type pool struct {
	untiered []string
	tiers    map[level.Level][]string
}

func newPool() *pool {
	return &pool{tiers: make(map[level.Level][]string)}
}

// add appends the non-blank texts and returns how many were accepted.
func (p *pool) add(texts []string) int {
	accepted := 0
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		p.untiered = append(p.untiered, text)
		accepted++
	}
	return accepted
}

// addTier appends the non-blank texts to the sub-bucket of lvl.
func (p *pool) addTier(lvl level.Level, texts []string) int {
	accepted := 0
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		p.tiers[lvl] = append(p.tiers[lvl], text)
		accepted++
	}
	return accepted
}

// at returns the insults eligible at lvl. The result is a fresh slice.
func (p *pool) at(lvl level.Level) []string {
	eligible := make([]string, 0, len(p.untiered)+len(p.tiers[lvl]))
	eligible = append(eligible, p.untiered...)
	return append(eligible, p.tiers[lvl]...)
}

// all returns every insult in the pool regardless of tier.
func (p *pool) all() []string {
	eligible := make([]string, 0, p.len())
	eligible = append(eligible, p.untiered...)
	for _, lvl := range level.All() {
		eligible = append(eligible, p.tiers[lvl]...)
	}
	return eligible
}

func (p *pool) len() int {
	n := len(p.untiered)
	for _, texts := range p.tiers {
		n += len(texts)
	}
	return n
}
