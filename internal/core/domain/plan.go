package domain

// RepoRef identifies one commit of one repository.
type RepoRef struct {
	URL    CanonicalURL
	Commit string
}

// Plan is the outcome of planning a single locked package: the fetch
// operations that vendor it and the source replacement that points cargo at
// the vendored copy.
type Plan struct {
	Sources []Source

	// EntryName is the cargo source name the entry is registered under.
	EntryName string
	Entry     VendorEntry

	// Repository is set for git packages and names the clone the sources copy from.
	Repository *RepoRef
}
