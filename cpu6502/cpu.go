package cpu6502

import (
	"errors"
	"log"
	"time"

	"github.com/pgrabas/emu502/clock"
	"github.com/pgrabas/emu502/mem"
	"github.com/pgrabas/emu502/opcode"
	"github.com/pgrabas/emu502/program"
)

// CPU is the interpreter's execution context: the register file plus
// non-owning references to the bus and clock it runs against. Mem and
// Clock must outlive the CPU for the duration of a run.
type CPU struct {
	Verbose bool

	// FixIndirectJMPBug disables the classic 6502 hardware bug where
	// JMP ($xxFF) fetches its high byte from $xx00 instead of crossing
	// into the next page. Bug-compatible by default.
	FixIndirectJMPBug bool

	Reg   Registers
	Mem   mem.Memory16
	Clock *clock.Clock
}

// New creates a CPU with its registers at power-on state. PC is left
// at zero; set it explicitly or call Reset with a vector address.
func New(m mem.Memory16, c *clock.Clock) *CPU {
	cpu := &CPU{Mem: m, Clock: c}
	cpu.Reg.Reset()
	return cpu
}

// Reset loads PC from the two bytes at vector and clears the rest of
// the register file to its power-on state.
func (c *CPU) Reset(vector program.Address) error {
	c.Reg.Reset()
	lo, err := c.Mem.Load(vector)
	if err != nil {
		return err
	}
	hi, err := c.Mem.Load(vector + 1)
	if err != nil {
		return err
	}
	c.Reg.PC = program.Address(lo) | program.Address(hi)<<8
	return nil
}

// ExecuteNextInstruction fetches, decodes, and executes the
// instruction at PC, advancing PC and the clock by the end. It returns
// *Halted, wrapped with errors.As-compatibility, when a BRK with no
// installed IRQ vector is reached.
func (c *CPU) ExecuteNextInstruction() error {
	start := c.Clock.Cycles()
	pc := c.Reg.PC

	opByte, err := c.fetchByte()
	if err != nil {
		return err
	}
	entry, ok := opcode.Decode(opByte)
	if !ok {
		return ErrUnknownOpcode{PC: pc, Opcode: opByte}
	}
	if c.Verbose {
		log.Printf("cpu: %04x: %s %s", pc, entry.Mnemonic, entry.Mode)
	}

	if err := c.dispatch(entry, pc); err != nil {
		return err
	}

	if spent := c.Clock.Cycles() - start; spent < int64(entry.BaseCycles) {
		c.Clock.Advance(entry.BaseCycles - int(spent))
	}
	return nil
}

// Run drives ExecuteNextInstruction until a BRK halts the CPU, an
// instruction errors, or budget elapses. A halt is not treated as a
// run failure: it is returned separately so a caller can inspect the
// final register file via the Halted value.
func (c *CPU) Run(budget time.Duration) (*Halted, error) {
	var halted *Halted
	err := c.Clock.ExecuteWithTimeout(budget, func() (bool, error) {
		stepErr := c.ExecuteNextInstruction()
		if stepErr == nil {
			return false, nil
		}
		if errors.As(stepErr, &halted) {
			return true, nil
		}
		return false, stepErr
	})
	return halted, err
}

// fetchByte loads the byte at PC, advancing PC past it. Every call is
// a real bus access and ticks the clock once through Mem.
func (c *CPU) fetchByte() (byte, error) {
	b, err := c.Mem.Load(c.Reg.PC)
	if err != nil {
		return 0, err
	}
	c.Reg.PC++
	return b, nil
}

// fetchWord reads a little-endian 16-bit operand from the instruction
// stream.
func (c *CPU) fetchWord() (program.Address, error) {
	lo, err := c.fetchByte()
	if err != nil {
		return 0, err
	}
	hi, err := c.fetchByte()
	if err != nil {
		return 0, err
	}
	return program.Address(lo) | program.Address(hi)<<8, nil
}

// push writes b to the stack page and decrements S, the hardware's
// unchecked byte wraparound included.
func (c *CPU) push(b byte) error {
	err := c.Mem.Store(program.Address(0x0100)+program.Address(c.Reg.S), b)
	c.Reg.S--
	return err
}

// pull increments S and reads the byte now on top of the stack.
func (c *CPU) pull() (byte, error) {
	c.Reg.S++
	return c.Mem.Load(program.Address(0x0100) + program.Address(c.Reg.S))
}

func (c *CPU) pushWord(addr program.Address) error {
	if err := c.push(byte(addr >> 8)); err != nil {
		return err
	}
	return c.push(byte(addr))
}

func (c *CPU) pullWord() (program.Address, error) {
	lo, err := c.pull()
	if err != nil {
		return 0, err
	}
	hi, err := c.pull()
	if err != nil {
		return 0, err
	}
	return program.Address(lo) | program.Address(hi)<<8, nil
}

// operandAddress resolves the effective address for entry's mode,
// consuming whatever operand bytes the mode requires. It is never
// called for Implied, Accumulator, or Immediate, which have no memory
// effective address of their own.
func (c *CPU) operandAddress(entry opcode.Entry) (program.Address, error) {
	switch entry.Mode {
	case opcode.ZeroPage:
		b, err := c.fetchByte()
		return program.Address(b), err

	case opcode.ZeroPageX:
		b, err := c.fetchByte()
		if err != nil {
			return 0, err
		}
		c.Clock.Advance(1) // index-add cycle; no bus access on real hardware
		return program.Address(b + c.Reg.X), nil

	case opcode.ZeroPageY:
		b, err := c.fetchByte()
		if err != nil {
			return 0, err
		}
		c.Clock.Advance(1)
		return program.Address(b + c.Reg.Y), nil

	case opcode.Absolute:
		return c.fetchWord()

	case opcode.AbsoluteX:
		return c.indexedAbsolute(entry, c.Reg.X)

	case opcode.AbsoluteY:
		return c.indexedAbsolute(entry, c.Reg.Y)

	case opcode.IndirectX:
		zp, err := c.fetchByte()
		if err != nil {
			return 0, err
		}
		c.Clock.Advance(1) // dummy read while X is added to the zp pointer
		ptr := zp + c.Reg.X
		lo, err := c.Mem.Load(program.Address(ptr))
		if err != nil {
			return 0, err
		}
		hi, err := c.Mem.Load(program.Address(ptr + 1))
		if err != nil {
			return 0, err
		}
		return program.Address(lo) | program.Address(hi)<<8, nil

	case opcode.IndirectY:
		zp, err := c.fetchByte()
		if err != nil {
			return 0, err
		}
		lo, err := c.Mem.Load(program.Address(zp))
		if err != nil {
			return 0, err
		}
		hi, err := c.Mem.Load(program.Address(zp + 1))
		if err != nil {
			return 0, err
		}
		base := program.Address(lo) | program.Address(hi)<<8
		addr := base + program.Address(c.Reg.Y)
		crossed := addr&0xFF00 != base&0xFF00
		if entry.PageCrossPenalty {
			if crossed {
				c.Clock.Advance(1)
			}
		} else {
			c.Clock.Advance(1) // write-style (zp),Y always pays
		}
		return addr, nil

	default:
		return 0, ErrUnsupportedMode{Mnemonic: entry.Mnemonic, Mode: entry.Mode.String()}
	}
}

// indexedAbsolute resolves Absolute,X or Absolute,Y. Read-style
// instructions (PageCrossPenalty set) pay the extra cycle only when
// the index carries into a new page; write and read-modify-write
// instructions always take the slow path, matching the opcode table's
// fixed higher BaseCycles for those entries.
func (c *CPU) indexedAbsolute(entry opcode.Entry, index byte) (program.Address, error) {
	base, err := c.fetchWord()
	if err != nil {
		return 0, err
	}
	addr := base + program.Address(index)
	crossed := addr&0xFF00 != base&0xFF00
	if entry.PageCrossPenalty {
		if crossed {
			c.Clock.Advance(1)
		}
	} else {
		c.Clock.Advance(1)
	}
	return addr, nil
}

// indirectJMPTarget resolves JMP ($xxxx), optionally reproducing the
// hardware bug where the pointer's high byte is fetched from the start
// of the same page instead of the next one when the pointer's low byte
// is 0xFF.
func (c *CPU) indirectJMPTarget() (program.Address, error) {
	ptr, err := c.fetchWord()
	if err != nil {
		return 0, err
	}
	lo, err := c.Mem.Load(ptr)
	if err != nil {
		return 0, err
	}
	hiAddr := ptr + 1
	if !c.FixIndirectJMPBug && byte(ptr) == 0xFF {
		hiAddr = ptr & 0xFF00
	}
	hi, err := c.Mem.Load(hiAddr)
	if err != nil {
		return 0, err
	}
	return program.Address(lo) | program.Address(hi)<<8, nil
}

// readOperand fetches the value an instruction reads, for Immediate
// mode directly from the instruction stream, otherwise through the
// resolved effective address.
func (c *CPU) readOperand(entry opcode.Entry) (byte, error) {
	if entry.Mode == opcode.Immediate {
		return c.fetchByte()
	}
	addr, err := c.operandAddress(entry)
	if err != nil {
		return 0, err
	}
	return c.Mem.Load(addr)
}
