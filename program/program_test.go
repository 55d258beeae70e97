package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineSymbolRejectsDuplicate(t *testing.T) {
	assert := assert.New(t)
	p := New()

	_, err := p.DefineSymbol("loop", 0x1000, SegmentCode)
	assert.NoError(err)

	_, err = p.DefineSymbol("loop", 0x2000, SegmentCode)
	assert.ErrorIs(err, ErrSymbolDuplicate)
}

func TestSymbolCreatesImportedReference(t *testing.T) {
	assert := assert.New(t)
	p := New()

	sym := p.Symbol("fwd")
	assert.True(sym.Imported)
	assert.False(sym.Defined)

	// A second lookup returns the same symbol, not a fresh one.
	again := p.Symbol("fwd")
	assert.Same(sym, again)
}

func TestAddRelocationTracksWeakReferenceOnSymbol(t *testing.T) {
	assert := assert.New(t)
	p := New()

	p.AddRelocation("fwd", 0x10, RelocAbsolute)
	p.AddRelocation("fwd", 0x05, RelocRelative)

	sym := p.Symbol("fwd")
	require.Len(t, sym.References, 2)
	// Relocations are kept sorted by position, so the reindex after the
	// second AddRelocation call must reflect that order.
	assert.Equal(Address(0x05), p.Relocations[sym.References[0]].Position)
	assert.Equal(Address(0x10), p.Relocations[sym.References[1]].Position)
}

func TestMarkPatchedClearsLiveFlag(t *testing.T) {
	assert := assert.New(t)
	p := New()

	p.AddRelocation("fwd", 0x10, RelocAbsolute)
	assert.True(p.Relocations[0].Live())

	p.MarkPatched(0)
	assert.False(p.Relocations[0].Live())
}

func TestAddAliasRejectsDuplicate(t *testing.T) {
	assert := assert.New(t)
	p := New()

	assert.NoError(p.AddAlias("WIDTH", []byte{0x28}))
	assert.ErrorIs(p.AddAlias("WIDTH", []byte{0x1E}), ErrAliasDuplicate)
}

func TestUndefinedListsOnlyUnresolvedSymbolsSorted(t *testing.T) {
	assert := assert.New(t)
	p := New()

	p.Symbol("zeta")
	p.Symbol("alpha")
	_, err := p.DefineSymbol("beta", 0x10, SegmentCode)
	require.NoError(t, err)

	assert.Equal([]string{"alpha", "zeta"}, p.Undefined())
}

func TestDebugFindsLabelAtAddress(t *testing.T) {
	assert := assert.New(t)
	p := New()
	_, err := p.DefineSymbol("start", 0x0600, SegmentCode)
	require.NoError(t, err)

	name, ok := p.Debug(0x0600)
	assert.True(ok)
	assert.Equal("start", name)

	_, ok = p.Debug(0x0601)
	assert.False(ok)
}
