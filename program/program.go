package program

import "sort"

// Program is the immutable-once-built output of the assembler: the sparse
// code image, the symbol table, the alias table, and the ordered
// relocation set. Program owns its symbols and relocations; see the
// package doc for the weak-reference convention between them.
type Program struct {
	Code        *SparseBinaryCode
	Symbols     map[string]*SymbolInfo
	Aliases     map[string]ValueAlias
	Relocations []RelocationInfo
}

// New creates an empty Program.
func New() *Program {
	return &Program{
		Code:    NewSparseBinaryCode(),
		Symbols: make(map[string]*SymbolInfo),
		Aliases: make(map[string]ValueAlias),
	}
}

// Symbol returns the named symbol, creating it as an imported (forward)
// reference at SegmentUnknown if it does not already exist.
func (p *Program) Symbol(name string) *SymbolInfo {
	if sym, ok := p.Symbols[name]; ok {
		return sym
	}
	sym := &SymbolInfo{Name: name, Imported: true, Segment: SegmentUnknown}
	p.Symbols[name] = sym
	return sym
}

// DefineSymbol returns ErrSymbolDuplicate if name is already defined.
// Otherwise it sets the offset and segment and marks it defined,
// creating the symbol if it did not exist yet.
func (p *Program) DefineSymbol(name string, offset Address, segment Segment) (*SymbolInfo, error) {
	sym, ok := p.Symbols[name]
	if !ok {
		sym = &SymbolInfo{Name: name}
		p.Symbols[name] = sym
	}
	if sym.Defined {
		return nil, ErrSymbolDuplicate
	}
	sym.Offset = offset
	sym.Defined = true
	sym.Imported = false
	sym.Segment = segment
	return sym, nil
}

// AddRelocation appends a RelocationInfo to the Program's ordered set and
// records a weak back-reference on the target symbol.
func (p *Program) AddRelocation(symbolName string, position Address, mode RelocMode) RelocationInfo {
	reloc := RelocationInfo{
		Symbol:   symbolName,
		Position: position,
		Mode:     mode,
		live:     true,
	}
	p.Relocations = append(p.Relocations, reloc)
	p.sortRelocations()
	p.reindexReferences()
	return reloc
}

// sortRelocations keeps the relocation set ordered by (position, mode),
// so back-patching can walk it in image order.
func (p *Program) sortRelocations() {
	sort.SliceStable(p.Relocations, func(i, j int) bool {
		a, b := p.Relocations[i], p.Relocations[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.Mode < b.Mode
	})
}

// reindexReferences rebuilds every symbol's weak reference-index list after
// a sort has shuffled relocation positions.
func (p *Program) reindexReferences() {
	for _, sym := range p.Symbols {
		sym.References = sym.References[:0]
	}
	for i, r := range p.Relocations {
		sym := p.Symbol(r.Symbol)
		sym.References = append(sym.References, i)
	}
}

// MarkPatched clears the live flag on the relocation at index i, once
// the assembler has written its target bytes into the image.
func (p *Program) MarkPatched(i int) {
	p.Relocations[i].live = false
}

// AddAlias defines a new ValueAlias. Redefining an existing alias is an
// error (ErrAliasDuplicate).
func (p *Program) AddAlias(name string, value []byte) error {
	if _, exists := p.Aliases[name]; exists {
		return ErrAliasDuplicate
	}
	p.Aliases[name] = ValueAlias{Name: name, Value: value}
	return nil
}

// Undefined returns the names of all symbols still lacking an offset,
// sorted, for a final-pass unresolved-symbol check.
func (p *Program) Undefined() []string {
	var names []string
	for name, sym := range p.Symbols {
		if !sym.Defined {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Debug returns the name of the symbol defined exactly at addr, if any.
// m6502asm's -labels listing uses it to name each defined address with
// the label a programmer would recognize.
func (p *Program) Debug(addr Address) (name string, ok bool) {
	for _, sym := range p.Symbols {
		if sym.Defined && sym.Offset == addr {
			return sym.Name, true
		}
	}
	return "", false
}
