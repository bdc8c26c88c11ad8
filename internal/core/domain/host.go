package domain

// HostContext is what the launcher hands over once at startup.
type HostContext struct {
	PluginName    string
	Version       string
	ActionKeyword string
}

// Query is one keystroke-driven request from the launcher.
type Query struct {
	Search        string
	ActionKeyword string
}

// HasActionKeyword reports whether the query was addressed to the plugin by its keyword.
func (q Query) HasActionKeyword() bool {
	return q.ActionKeyword != ""
}
