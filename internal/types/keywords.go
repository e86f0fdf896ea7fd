package types

// KeywordSet holds the ranked keywords extracted from a job posting.
// Critical and Optional are disjoint; All is the full ranked list.
// A KeywordSet is built once by the extractor and never mutated.
type KeywordSet struct {
	Critical []string `json:"critical"`
	Optional []string `json:"optional"`
	All      []string `json:"all"`
}

// IsEmpty reports whether the set carries no scored keywords at all.
func (k *KeywordSet) IsEmpty() bool {
	return k == nil || (len(k.Critical) == 0 && len(k.Optional) == 0)
}
