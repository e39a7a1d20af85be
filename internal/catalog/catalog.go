// Package catalog provides the read-only skill vocabulary used to recognize skills in free text.
package catalog

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/ats-checker/internal/parsing"
	"github.com/jonathan/ats-checker/internal/types"
)

// Catalog is an immutable, validated set of skill descriptors with a phrase index.
// A Catalog is safe for concurrent use by any number of goroutines.
type Catalog struct {
	entries   []types.SkillDescriptor
	byKey     map[string]int
	bySynonym map[string]int
}

// New validates entries and builds the key and synonym indexes.
// Entries keep their given order, which is the tie-break order for lookups.
func New(entries []types.SkillDescriptor) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, &ValidationError{Index: -1, Message: "catalog has no entries"}
	}

	validate := validator.New()
	c := &Catalog{
		entries:   make([]types.SkillDescriptor, 0, len(entries)),
		byKey:     make(map[string]int, len(entries)),
		bySynonym: make(map[string]int),
	}
	names := make(map[string]int, len(entries))

	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			return nil, &ValidationError{Index: i, Key: entry.Key, Message: "invalid entry", Cause: err}
		}
		if prev, exists := c.byKey[entry.Key]; exists {
			return nil, &ValidationError{Index: i, Key: entry.Key, Message: fmt.Sprintf("duplicate key (first declared at entry %d)", prev)}
		}
		if prev, exists := names[entry.DisplayName]; exists {
			return nil, &ValidationError{Index: i, Key: entry.Key, Message: fmt.Sprintf("duplicate name %q (first declared at entry %d)", entry.DisplayName, prev)}
		}

		synonyms := make([]string, len(entry.Synonyms))
		copy(synonyms, entry.Synonyms)
		entry.Synonyms = synonyms

		c.byKey[entry.Key] = i
		names[entry.DisplayName] = i
		c.entries = append(c.entries, entry)
	}

	// Synonyms are indexed after all keys are known so a synonym can be checked
	// against keys declared later in the list.
	for i, entry := range c.entries {
		for _, syn := range entry.Synonyms {
			if prev, exists := c.bySynonym[syn]; exists && prev != i {
				return nil, &ValidationError{Index: i, Key: entry.Key, Message: fmt.Sprintf("synonym %q already belongs to %q", syn, c.entries[prev].Key)}
			}
			if owner, exists := c.byKey[syn]; exists && owner != i {
				return nil, &ValidationError{Index: i, Key: entry.Key, Message: fmt.Sprintf("synonym %q is the key of %q", syn, c.entries[owner].Key)}
			}
			c.bySynonym[syn] = i
		}
	}

	return c, nil
}

// MustNew is like New but panics if entries are invalid.
func MustNew(entries []types.SkillDescriptor) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Default builds the catalog from the built-in vocabulary.
func Default() *Catalog {
	return MustNew(DefaultEntries())
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns copies of the entries in declaration order.
func (c *Catalog) Entries() []types.SkillDescriptor {
	out := make([]types.SkillDescriptor, len(c.entries))
	for i, entry := range c.entries {
		out[i] = cloneEntry(entry)
	}
	return out
}

// ByCategory returns the entries of one category in declaration order.
func (c *Catalog) ByCategory(category types.Category) []types.SkillDescriptor {
	var out []types.SkillDescriptor
	for _, entry := range c.entries {
		if entry.Category == category {
			out = append(out, cloneEntry(entry))
		}
	}
	return out
}

// LookupKey returns the entry whose canonical key equals phrase.
func (c *Catalog) LookupKey(phrase string) (types.SkillDescriptor, bool) {
	i, ok := c.byKey[phrase]
	if !ok {
		return types.SkillDescriptor{}, false
	}
	return cloneEntry(c.entries[i]), true
}

// LookupSynonym returns the entry listing phrase as a synonym.
func (c *Catalog) LookupSynonym(phrase string) (types.SkillDescriptor, bool) {
	i, ok := c.bySynonym[phrase]
	if !ok {
		return types.SkillDescriptor{}, false
	}
	return cloneEntry(c.entries[i]), true
}

// Unmatchable describes every key and synonym that skill extraction can never find, either
// because normalization rewrites it or because it is longer than the longest n-gram.
// Entries are reported in declaration order.
func (c *Catalog) Unmatchable() []string {
	var out []string
	for _, entry := range c.entries {
		if msg := unmatchable("key", entry.Key, entry.Key); msg != "" {
			out = append(out, msg)
		}
		for _, syn := range entry.Synonyms {
			if msg := unmatchable("synonym", syn, entry.Key); msg != "" {
				out = append(out, msg)
			}
		}
	}
	return out
}

func unmatchable(kind, phrase, key string) string {
	normalized := parsing.NormalizeText(phrase)
	if normalized != phrase {
		return fmt.Sprintf("%s %q of %q normalizes to %q and can never match", kind, phrase, key, normalized)
	}
	if len(parsing.Tokenize(phrase)) > parsing.MaxNGram {
		return fmt.Sprintf("%s %q of %q has more than %d words and can never match", kind, phrase, key, parsing.MaxNGram)
	}
	return ""
}

// cloneEntry copies the synonym slice so callers cannot write into the shared catalog.
func cloneEntry(entry types.SkillDescriptor) types.SkillDescriptor {
	entry.Synonyms = slices.Clone(entry.Synonyms)
	return entry
}
