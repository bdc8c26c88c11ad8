package desktop

// File is the structure of a desktop snapshot.
type File struct {
	Windows []WindowDTO `yaml:"windows"`
}

// WindowDTO is one top-level window with its accessibility tree.
type WindowDTO struct {
	Handle  uint64    `yaml:"handle"`
	Class   string    `yaml:"class"`
	Title   string    `yaml:"title"`
	Visible *bool     `yaml:"visible"`
	Tree    []NodeDTO `yaml:"tree"`
}

// NodeDTO is one accessibility element.
type NodeDTO struct {
	Class    string    `yaml:"class"`
	Type     string    `yaml:"type"`
	Name     string    `yaml:"name"`
	Flaky    int       `yaml:"flaky"`
	Children []NodeDTO `yaml:"children"`
}
