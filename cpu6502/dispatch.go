package cpu6502

import (
	"github.com/pgrabas/emu502/opcode"
	"github.com/pgrabas/emu502/program"
)

// dispatch executes one decoded instruction. pc is the address the
// opcode byte was fetched from, needed by branches/JSR/BRK for their
// return-address and branch-target arithmetic.
func (c *CPU) dispatch(entry opcode.Entry, pc program.Address) error {
	switch entry.Mnemonic {

	case "LDA":
		v, err := c.readOperand(entry)
		if err != nil {
			return err
		}
		c.Reg.A = v
		c.Reg.P.setNZ(v)

	case "LDX":
		v, err := c.readOperand(entry)
		if err != nil {
			return err
		}
		c.Reg.X = v
		c.Reg.P.setNZ(v)

	case "LDY":
		v, err := c.readOperand(entry)
		if err != nil {
			return err
		}
		c.Reg.Y = v
		c.Reg.P.setNZ(v)

	case "STA":
		return c.store(entry, c.Reg.A)
	case "STX":
		return c.store(entry, c.Reg.X)
	case "STY":
		return c.store(entry, c.Reg.Y)

	case "TAX":
		c.Reg.X = c.Reg.A
		c.Reg.P.setNZ(c.Reg.X)
	case "TXA":
		c.Reg.A = c.Reg.X
		c.Reg.P.setNZ(c.Reg.A)
	case "TAY":
		c.Reg.Y = c.Reg.A
		c.Reg.P.setNZ(c.Reg.Y)
	case "TYA":
		c.Reg.A = c.Reg.Y
		c.Reg.P.setNZ(c.Reg.A)
	case "TSX":
		c.Reg.X = c.Reg.S
		c.Reg.P.setNZ(c.Reg.X)
	case "TXS":
		c.Reg.S = c.Reg.X // flags untouched, matching hardware

	case "PHA":
		return c.push(c.Reg.A)
	case "PLA":
		v, err := c.pull()
		if err != nil {
			return err
		}
		c.Reg.A = v
		c.Reg.P.setNZ(v)
	case "PHP":
		p := c.Reg.P
		p.B = true // software pushes always record B=1
		return c.push(p.Pack())
	case "PLP":
		v, err := c.pull()
		if err != nil {
			return err
		}
		c.Reg.P = UnpackFlags(v)

	case "ADC":
		v, err := c.readOperand(entry)
		if err != nil {
			return err
		}
		c.adc(v)
	case "SBC":
		v, err := c.readOperand(entry)
		if err != nil {
			return err
		}
		c.sbc(v)

	case "INC":
		return c.rmw(entry, func(v byte) byte { v++; c.Reg.P.setNZ(v); return v })
	case "DEC":
		return c.rmw(entry, func(v byte) byte { v--; c.Reg.P.setNZ(v); return v })

	case "INX":
		c.Reg.X++
		c.Reg.P.setNZ(c.Reg.X)
	case "INY":
		c.Reg.Y++
		c.Reg.P.setNZ(c.Reg.Y)
	case "DEX":
		c.Reg.X--
		c.Reg.P.setNZ(c.Reg.X)
	case "DEY":
		c.Reg.Y--
		c.Reg.P.setNZ(c.Reg.Y)

	case "AND":
		v, err := c.readOperand(entry)
		if err != nil {
			return err
		}
		c.Reg.A &= v
		c.Reg.P.setNZ(c.Reg.A)
	case "ORA":
		v, err := c.readOperand(entry)
		if err != nil {
			return err
		}
		c.Reg.A |= v
		c.Reg.P.setNZ(c.Reg.A)
	case "EOR":
		v, err := c.readOperand(entry)
		if err != nil {
			return err
		}
		c.Reg.A ^= v
		c.Reg.P.setNZ(c.Reg.A)

	case "BIT":
		v, err := c.readOperand(entry)
		if err != nil {
			return err
		}
		c.Reg.P.Z = c.Reg.A&v == 0
		c.Reg.P.N = v&0x80 != 0
		c.Reg.P.V = v&0x40 != 0

	case "ASL":
		return c.shiftOrRotate(entry, c.asl)
	case "LSR":
		return c.shiftOrRotate(entry, c.lsr)
	case "ROL":
		return c.shiftOrRotate(entry, c.rol)
	case "ROR":
		return c.shiftOrRotate(entry, c.ror)

	case "CMP":
		v, err := c.readOperand(entry)
		if err != nil {
			return err
		}
		c.compare(c.Reg.A, v)
	case "CPX":
		v, err := c.readOperand(entry)
		if err != nil {
			return err
		}
		c.compare(c.Reg.X, v)
	case "CPY":
		v, err := c.readOperand(entry)
		if err != nil {
			return err
		}
		c.compare(c.Reg.Y, v)

	case "BCC":
		return c.branch(!c.Reg.P.C)
	case "BCS":
		return c.branch(c.Reg.P.C)
	case "BEQ":
		return c.branch(c.Reg.P.Z)
	case "BNE":
		return c.branch(!c.Reg.P.Z)
	case "BMI":
		return c.branch(c.Reg.P.N)
	case "BPL":
		return c.branch(!c.Reg.P.N)
	case "BVC":
		return c.branch(!c.Reg.P.V)
	case "BVS":
		return c.branch(c.Reg.P.V)

	case "JMP":
		var target program.Address
		var err error
		if entry.Mode == opcode.Indirect {
			target, err = c.indirectJMPTarget()
		} else {
			target, err = c.fetchWord()
		}
		if err != nil {
			return err
		}
		c.Reg.PC = target

	case "JSR":
		target, err := c.fetchWord()
		if err != nil {
			return err
		}
		if err := c.pushWord(c.Reg.PC - 1); err != nil {
			return err
		}
		c.Reg.PC = target

	case "RTS":
		addr, err := c.pullWord()
		if err != nil {
			return err
		}
		c.Reg.PC = addr + 1

	case "RTI":
		p, err := c.pull()
		if err != nil {
			return err
		}
		addr, err := c.pullWord()
		if err != nil {
			return err
		}
		c.Reg.P = UnpackFlags(p)
		c.Reg.PC = addr

	case "BRK":
		return c.brk(pc)

	case "CLC":
		c.Reg.P.C = false
	case "SEC":
		c.Reg.P.C = true
	case "CLI":
		c.Reg.P.I = false
	case "SEI":
		c.Reg.P.I = true
	case "CLV":
		c.Reg.P.V = false
	case "CLD":
		c.Reg.P.D = false
	case "SED":
		c.Reg.P.D = true

	case "NOP":
		// nothing to do

	default:
		return ErrUnsupportedMode{Mnemonic: entry.Mnemonic, Mode: entry.Mode.String()}
	}
	return nil
}

func (c *CPU) store(entry opcode.Entry, value byte) error {
	addr, err := c.operandAddress(entry)
	if err != nil {
		return err
	}
	return c.Mem.Store(addr, value)
}

// rmw implements the read-modify-write instructions that always touch
// memory (INC/DEC): read, write the unmodified value back, then write
// the result. The dummy write reproduces the extra bus cycle real
// hardware spends before committing the new value.
func (c *CPU) rmw(entry opcode.Entry, f func(byte) byte) error {
	addr, err := c.operandAddress(entry)
	if err != nil {
		return err
	}
	v, err := c.Mem.Load(addr)
	if err != nil {
		return err
	}
	if err := c.Mem.Store(addr, v); err != nil {
		return err
	}
	return c.Mem.Store(addr, f(v))
}

// shiftOrRotate implements ASL/LSR/ROL/ROR, which operate on the
// accumulator directly in Accumulator mode and on memory (with the
// same dummy-write pattern as rmw) otherwise.
func (c *CPU) shiftOrRotate(entry opcode.Entry, f func(byte) byte) error {
	if entry.Mode == opcode.Accumulator {
		c.Reg.A = f(c.Reg.A)
		return nil
	}
	return c.rmw(entry, f)
}

// branch consumes the relative offset operand and, if taken, moves PC
// to the target, charging the taken and page-cross penalties the
// opcode table doesn't encode as BaseCycles.
func (c *CPU) branch(taken bool) error {
	offsetByte, err := c.fetchByte()
	if err != nil {
		return err
	}
	if !taken {
		return nil
	}
	c.Clock.Advance(1)
	from := c.Reg.PC
	target := program.Address(int32(from) + int32(int8(offsetByte)))
	if target&0xFF00 != from&0xFF00 {
		c.Clock.Advance(1)
	}
	c.Reg.PC = target
	return nil
}

// brk reproduces the BRK/IRQ sequence (push PC+2, push P with B=1, set
// I, load PC from the IRQ vector) and then reports a halt, since this
// interpreter has no installed interrupt handler.
func (c *CPU) brk(pc program.Address) error {
	if _, err := c.fetchByte(); err != nil { // padding byte
		return err
	}
	if err := c.pushWord(c.Reg.PC); err != nil {
		return err
	}
	p := c.Reg.P
	p.B = true
	if err := c.push(p.Pack()); err != nil {
		return err
	}
	c.Reg.P.I = true

	lo, err := c.Mem.Load(0xFFFE)
	if err != nil {
		return err
	}
	hi, err := c.Mem.Load(0xFFFF)
	if err != nil {
		return err
	}
	c.Reg.PC = program.Address(lo) | program.Address(hi)<<8

	return &Halted{PC: pc, Reg: c.Reg}
}
