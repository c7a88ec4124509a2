package domain

// Request is everything the user typed for a single run.
type Request struct {
	Credentials Credentials
	URL         string
	FileName    string // without extension
	Folder      string
}
