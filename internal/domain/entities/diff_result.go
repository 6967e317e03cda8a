package entities

// DiffResult classifies a current dependency sequence against a previous one.
type DiffResult struct {
	// Added holds current entries whose identity is absent from previous.
	Added []Dependency `json:"added"    yaml:"added"`
	// Deleted holds previous entries whose identity is absent from current.
	Deleted []Dependency `json:"deleted"  yaml:"deleted"`
	// Modified holds the current entry once per previous entry sharing its
	// identity with a different version.
	Modified []Dependency `json:"modified" yaml:"modified"`
}

// IsEmpty reports whether no dependency was added, deleted or modified.
func (it DiffResult) IsEmpty() bool {
	return len(it.Added) == 0 && len(it.Deleted) == 0 && len(it.Modified) == 0
}
