package vmtranslate

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Context is the explicit, per-invocation state a package-level global
// would otherwise hold: the output sink, the currently emitting VM
// function (for label scoping), the current file's static base name,
// and the process-wide unique-label counter.
type Context struct {
	out             io.Writer
	debug           bool
	currentFunction string
	staticBase      string
	seq             int
}

func NewContext(out io.Writer, debug bool) *Context {
	return &Context{out: out, debug: debug}
}

// SetFile switches the static-segment basename used for `static i`
// resolution; called once per input .vm file.
func (c *Context) SetFile(basename string) {
	c.staticBase = basename
}

func (c *Context) emit(lines ...string) error {
	_, err := io.WriteString(c.out, strings.Join(lines, "\n")+"\n")
	return err
}

func (c *Context) annotate(instr *Instruction) error {
	if !c.debug || instr == nil {
		return nil
	}
	_, err := fmt.Fprintf(c.out, "// %s\n", strings.TrimSpace(instr.Raw))
	return err
}

// EmitBootstrap writes the standard SP initialization followed by a
// synthetic call to Sys.init, for directory (multi-file) inputs.
func (c *Context) EmitBootstrap() error {
	if err := c.emit("@256", "D=A", "@SP", "M=D"); err != nil {
		return err
	}
	return c.emitCall("Sys.init", 0)
}

// Translate lowers a single decoded VM instruction to assembly.
func (c *Context) Translate(instr *Instruction) error {
	if err := c.annotate(instr); err != nil {
		return err
	}

	switch instr.Op {
	case OpAdd, OpSub, OpAnd, OpOr:
		return c.emitBinary(binaryComp[instr.Op])
	case OpNeg, OpNot:
		return c.emitUnary(unaryComp[instr.Op])
	case OpEq, OpGt, OpLt:
		return c.emitComparison(jumpFor[instr.Op])
	case OpPush:
		return c.emitPush(instr.Segment, instr.Index)
	case OpPop:
		return c.emitPop(instr.Segment, instr.Index)
	case OpLabel:
		return c.emit(fmt.Sprintf("(%s)", c.scoped(instr.Name)))
	case OpGoto:
		return c.emit("@"+c.scoped(instr.Name), "0;JMP")
	case OpIfGoto:
		return c.emit(popD(), "@"+c.scoped(instr.Name), "D;JNE")
	case OpFunction:
		c.currentFunction = instr.Name
		return c.emitFunction(instr.Name, instr.NLocals)
	case OpCall:
		return c.emitCall(instr.Name, instr.NArgs)
	case OpReturn:
		return c.emitReturn()
	default:
		return fmt.Errorf("vmtranslate: unhandled op %q", instr.Op)
	}
}

func (c *Context) scoped(label string) string {
	if c.currentFunction == "" {
		return label
	}
	return c.currentFunction + "$" + label
}

var binaryComp = map[Op]string{
	OpAdd: "M=D+M",
	OpSub: "M=M-D",
	OpAnd: "M=D&M",
	OpOr:  "M=D|M",
}

var unaryComp = map[Op]string{
	OpNeg: "M=-M",
	OpNot: "M=!M",
}

var jumpFor = map[Op]string{
	OpEq: "JEQ",
	OpGt: "JGT",
	OpLt: "JLT",
}

func pushD() string {
	return "@SP\nA=M\nM=D\n@SP\nM=M+1"
}

func popD() string {
	return "@SP\nAM=M-1\nD=M"
}

func (c *Context) emitBinary(comp string) error {
	return c.emit(popD(), "A=A-1", comp)
}

func (c *Context) emitUnary(comp string) error {
	return c.emit("@SP", "A=M-1", comp)
}

// emitComparison computes x-y and jumps on the condition: the taken
// branch writes true(-1) into the result slot, the fall-through branch
// writes false(0). It uses one unique label triple drawn from the
// process-wide counter.
func (c *Context) emitComparison(jump string) error {
	id := c.seq
	c.seq++
	trueL := fmt.Sprintf("TRUE%d", id)
	falseL := fmt.Sprintf("FALSE%d", id)
	endL := fmt.Sprintf("END%d", id)

	return c.emit(
		popD(), "A=A-1", "D=M-D",
		"@"+trueL, "D;"+jump,
		"@"+falseL, "0;JMP",
		"("+trueL+")", "@SP", "A=M-1", "M=-1",
		"@"+endL, "0;JMP",
		"("+falseL+")", "@SP", "A=M-1", "M=0",
		"("+endL+")",
	)
}

func (c *Context) emitPush(segment string, index int) error {
	var code []string
	idx := strconv.Itoa(index)

	switch segment {
	case "constant":
		code = []string{"@" + idx, "D=A"}
	case "argument":
		code = derefPush("ARG", idx)
	case "local":
		code = derefPush("LCL", idx)
	case "this":
		code = derefPush("THIS", idx)
	case "that":
		code = derefPush("THAT", idx)
	case "pointer":
		code = []string{"@" + strconv.Itoa(3+index), "D=M"}
	case "temp":
		code = []string{"@" + strconv.Itoa(5+index), "D=M"}
	case "static":
		code = []string{"@" + c.staticBase + "." + idx, "D=M"}
	default:
		return fmt.Errorf("vmtranslate: unknown segment %q", segment)
	}
	code = append(code, pushD())
	return c.emit(code...)
}

func derefPush(base, idx string) []string {
	return []string{"@" + idx, "D=A", "@" + base, "A=D+M", "D=M"}
}

func (c *Context) emitPop(segment string, index int) error {
	var code []string
	idx := strconv.Itoa(index)

	switch segment {
	case "argument":
		code = derefPop("ARG", idx)
	case "local":
		code = derefPop("LCL", idx)
	case "this":
		code = derefPop("THIS", idx)
	case "that":
		code = derefPop("THAT", idx)
	case "pointer":
		code = []string{popD(), "@" + strconv.Itoa(3+index), "M=D"}
	case "temp":
		code = []string{popD(), "@" + strconv.Itoa(5+index), "M=D"}
	case "static":
		code = []string{popD(), "@" + c.staticBase + "." + idx, "M=D"}
	default:
		return fmt.Errorf("vmtranslate: unknown segment %q", segment)
	}
	return c.emit(code...)
}

func derefPop(base, idx string) []string {
	return []string{
		"@" + idx, "D=A", "@" + base, "D=D+M", "@R13", "M=D",
		popD(), "@R13", "A=M", "M=D",
	}
}

func (c *Context) emitFunction(name string, nLocals int) error {
	if err := c.emit("(" + name + ")"); err != nil {
		return err
	}
	for i := 0; i < nLocals; i++ {
		if err := c.emit("@0", "D=A", pushD()); err != nil {
			return err
		}
	}
	return nil
}

// emitCall pushes the 5-word frame (return address, LCL, ARG, THIS,
// THAT), repositions ARG and LCL, and jumps to f.
func (c *Context) emitCall(f string, nArgs int) error {
	id := c.seq
	c.seq++
	ret := fmt.Sprintf("RET_ADDRESS%d", id)

	return c.emit(
		"@"+ret, "D=A", pushD(),
		"@LCL", "D=M", pushD(),
		"@ARG", "D=M", pushD(),
		"@THIS", "D=M", pushD(),
		"@THAT", "D=M", pushD(),
		"@SP", "D=M", "@"+strconv.Itoa(nArgs+5), "D=D-A", "@ARG", "M=D",
		"@SP", "D=M", "@LCL", "M=D",
		"@"+f, "0;JMP",
		"("+ret+")",
	)
}

// emitReturn restores the caller's frame in the reverse of the order
// emitCall saved it: THAT, THIS, ARG, LCL, then jumps through the saved
// return address.
func (c *Context) emitReturn() error {
	return c.emit(
		"@LCL", "D=M", "@R13", "M=D", // R13 = frame = LCL
		"@5", "A=D-A", "D=M", "@R14", "M=D", // R14 = retAddr = *(frame-5)
		popD(), "@ARG", "A=M", "M=D", // *ARG = pop()
		"@ARG", "D=M+1", "@SP", "M=D", // SP = ARG+1
		"@R13", "AM=M-1", "D=M", "@THAT", "M=D", // THAT = *(frame-1)
		"@R13", "AM=M-1", "D=M", "@THIS", "M=D", // THIS = *(frame-2)
		"@R13", "AM=M-1", "D=M", "@ARG", "M=D", // ARG = *(frame-3)
		"@R13", "AM=M-1", "D=M", "@LCL", "M=D", // LCL = *(frame-4)
		"@R14", "A=M", "0;JMP",
	)
}
