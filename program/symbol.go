package program

// SymbolInfo is a named location in the code image. A symbol is "defined"
// once Offset has been set by a label definition; until then it is
// "imported" (forward-referenced).
type SymbolInfo struct {
	Name       string
	Offset     Address
	Defined    bool
	Imported   bool // true while the symbol has no offset yet
	Segment    Segment
	References []int // weak handles: indices into Program.Relocations
}

// RelocationInfo records that a byte sequence in the image depends on a
// symbol's final address. Symbol is a weak reference by name, resolved
// through Program.Symbols — relocations never hold a strong pointer back
// to the symbol that owns them.
type RelocationInfo struct {
	Symbol   string
	Position Address
	Mode     RelocMode
	live     bool // cleared once patched, so a stale reference is a no-op
}

// Live reports whether this relocation has not yet been superseded.
func (r RelocationInfo) Live() bool { return r.live }
