package console

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Debugger is an interactive single-keystroke REPL over a Machine,
// adapted from the teacher's BIOS console: breakpoints, stepping, memory
// inspection, and PPU status, generalized from the 6502 instruction
// stream to the PPU's own tick/scanline granularity.
type Debugger struct {
	m  *Machine
	bp uint8 // line_y breakpoint, 0xFF = disarmed
}

// NewDebugger returns a Debugger over m with no breakpoint armed.
func NewDebugger(m *Machine) *Debugger {
	return &Debugger{m: m, bp: 0xFF}
}

// Run puts the terminal in raw mode and drives the REPL until the user
// quits. Commands:
//
//	r - run tick by tick until the armed breakpoint fires or 1,000,000
//	    ticks have passed; keystrokes are not read while it runs
//	s - step one frame
//	t - step one tick
//	b - arm a line_y breakpoint (prompts for value)
//	m - dump a 16-byte bus memory window (prompts for address)
//	p - print PPU status
//	q - quit
func (d *Debugger) Run() error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("console: couldn't enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	in := bufio.NewReader(os.Stdin)
	fmt.Print("gintendo debug console — r/s/t/b/m/p/q\r\n")

	for {
		fmt.Print("> ")
		c, _, err := in.ReadRune()
		if err != nil {
			return err
		}
		fmt.Printf("%c\r\n", c)

		switch c {
		case 'r':
			d.runUntilBreak(in)
		case 's':
			d.m.StepFrame()
			d.printStatus()
		case 't':
			d.m.StepTicks(1)
			d.printStatus()
		case 'b':
			d.promptBreakpoint(in)
		case 'm':
			d.promptMemory(in)
		case 'p':
			d.printStatus()
		case 'q':
			fmt.Print("bye\r\n")
			return nil
		}
	}
}

func (d *Debugger) runUntilBreak(in *bufio.Reader) {
	for i := 0; i < 1_000_000; i++ {
		d.m.StepTicks(1)
		if d.bp != 0xFF && d.m.PPU().Read8(0xFF44) == d.bp {
			fmt.Printf("breakpoint hit at line_y=%d\r\n", d.bp)
			return
		}
	}
	fmt.Print("run: safety limit reached without hitting breakpoint\r\n")
}

// readLine echoes and accumulates runes until Enter, a necessity in raw
// mode where the terminal driver no longer does either for us.
func (d *Debugger) readLine(in *bufio.Reader) string {
	var line []rune
	for {
		r, _, err := in.ReadRune()
		if err != nil || r == '\r' || r == '\n' {
			break
		}
		fmt.Printf("%c", r)
		line = append(line, r)
	}
	fmt.Print("\r\n")
	return string(line)
}

func (d *Debugger) promptBreakpoint(in *bufio.Reader) {
	fmt.Print("line_y to break on (0-153): ")
	var v uint8
	if _, err := fmt.Sscanf(d.readLine(in), "%d", &v); err != nil {
		fmt.Printf("bad value: %v\r\n", err)
		return
	}
	d.bp = v
}

func (d *Debugger) promptMemory(in *bufio.Reader) {
	fmt.Print("address (hex, e.g. 8000): ")
	var addr uint16
	if _, err := fmt.Sscanf(d.readLine(in), "%x", &addr); err != nil {
		fmt.Printf("bad address: %v\r\n", err)
		return
	}
	for i := 0; i < 16; i++ {
		fmt.Printf("%04x: %02x\r\n", addr+uint16(i), d.m.Bus().Read8(addr+uint16(i)))
	}
}

func (d *Debugger) printStatus() {
	p := d.m.PPU()
	fmt.Printf("line_y=%d lcdc=%#02x lcds=%#02x pending_irq=%#02x\r\n",
		p.Read8(0xFF44), p.Read8(0xFF40), p.Read8(0xFF41), d.m.Interrupts().Pending())
}
