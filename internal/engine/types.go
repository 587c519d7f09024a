package engine

// Finding is one problem the linter found in a settings snapshot.
type Finding struct {
	Section string
	Key     string // empty when the whole section is concerned
	Message string
}

// Path returns the qualified option name, or the section alone.
func (f Finding) Path() string {
	if f.Key == "" {
		return f.Section
	}
	return f.Section + "." + f.Key
}

// CheckResult holds the outcome of a check operation.
type CheckResult struct {
	Clean   bool
	Unknown []Finding
	Invalid []Finding
}

// LayerStatus describes a settings layer's load status for display.
type LayerStatus struct {
	Scope  string // "user", "workspace", "explicit"
	Path   string
	Loaded bool
}

// SectionInfo summarizes one catalog section against a snapshot.
type SectionInfo struct {
	Name       string
	Options    int
	Overridden int
}

// InfoResult holds tool information for the info command.
type InfoResult struct {
	Version     string
	Fingerprint string
	Chain       []LayerStatus
	Sections    []SectionInfo
}
