package hasm

import (
	"strconv"

	"github.com/hlmerscher/n2t-toolchain/internal/perr"
)

var destTable = map[string]string{
	"":    "000",
	"M":   "001",
	"D":   "010",
	"MD":  "011",
	"A":   "100",
	"AM":  "101",
	"AD":  "110",
	"AMD": "111",
}

var jmpTable = map[string]string{
	"":    "000",
	"JGT": "001",
	"JEQ": "010",
	"JGE": "011",
	"JLT": "100",
	"JNE": "101",
	"JLE": "110",
	"JMP": "111",
}

// compTable covers the 28 mandatory mnemonics: a=0 forms use A, a=1
// forms substitute M. The leading bit of each 7-bit value is the a-bit.
var compTable = map[string]string{
	"0":   "0101010",
	"1":   "0111111",
	"-1":  "0111010",
	"D":   "0001100",
	"A":   "0110000",
	"!D":  "0001101",
	"!A":  "0110001",
	"-D":  "0001111",
	"-A":  "0110011",
	"D+1": "0011111",
	"A+1": "0110111",
	"D-1": "0001110",
	"A-1": "0110010",
	"D+A": "0000010",
	"D-A": "0010011",
	"A-D": "0000111",
	"D&A": "0000000",
	"D|A": "0010101",

	"M":   "1110000",
	"!M":  "1110001",
	"-M":  "1110011",
	"M+1": "1110111",
	"M-1": "1110010",
	"D+M": "1000010",
	"D-M": "1010011",
	"M-D": "1000111",
	"D&M": "1000000",
	"D|M": "1010101",
}

func validMnemonics(table map[string]string) []string {
	names := make([]string, 0, len(table))
	for k := range table {
		names = append(names, k)
	}
	return names
}

// EncodeC assembles a C-instruction's three fields into the fixed
// "111 comp[7] dest[3] jmp[3]" bit layout.
func EncodeC(dest, comp, jmp string, file string, lineNo int) (string, error) {
	compBits, ok := compTable[comp]
	if !ok {
		return "", perr.Newf(perr.AsmEncode, file, lineNo, comp, "unknown comp mnemonic (valid: %v)", validMnemonics(compTable))
	}
	destBits, ok := destTable[dest]
	if !ok {
		return "", perr.Newf(perr.AsmEncode, file, lineNo, dest, "unknown dest mnemonic")
	}
	jmpBits, ok := jmpTable[jmp]
	if !ok {
		return "", perr.Newf(perr.AsmEncode, file, lineNo, jmp, "unknown jmp mnemonic")
	}
	return "111" + compBits + destBits + jmpBits, nil
}

// EncodeA renders a non-negative address as a 16-bit ASCII binary word.
func EncodeA(address int) (string, error) {
	if address < 0 || address > maxRAMAddress {
		return "", perr.Newf(perr.AsmEncode, "", 0, strconv.Itoa(address), "address out of range")
	}
	bits := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		if address&1 == 1 {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
		address >>= 1
	}
	return string(bits), nil
}
