// Package domain holds the core types shared by the engine, the ports and the adapters.
package domain

import "strconv"

// WindowHandle identifies one top-level browser window for as long as the window lives.
// It carries no ordering; two handles are only ever compared for identity.
type WindowHandle uintptr

// String formats the handle in the hexadecimal form window tools print.
func (h WindowHandle) String() string {
	return "0x" + strconv.FormatUint(uint64(h), 16)
}
