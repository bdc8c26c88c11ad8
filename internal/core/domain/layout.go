package domain

// Layout is the arrangement of the tab strip inside a browser window.
type Layout uint8

const (
	// LayoutHorizontal is the classic tab strip above the page.
	LayoutHorizontal Layout = iota + 1
	// LayoutVertical is the side tab strip with an optional scrollable overflow list.
	LayoutVertical
)

// String returns the lowercase layout name.
func (l Layout) String() string {
	switch l {
	case LayoutHorizontal:
		return "horizontal"
	case LayoutVertical:
		return "vertical"
	default:
		return "unknown"
	}
}
