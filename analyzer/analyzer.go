// Package analyzer provides the Jack compiler's `-m xml` output mode: a
// literal token-stream dump, in the same shape the nand2tetris tools
// use to cross-check a hand-written tokenizer against the reference
// implementation.
package analyzer

import (
	"encoding/xml"
	"io"

	"github.com/hlmerscher/n2t-toolchain/tokenizer"
	"github.com/hlmerscher/n2t-toolchain/writer"
)

type tokensWrapper struct {
	XMLName xml.Name
	Tokens  []xmlToken
}

type xmlToken struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// WriteTokensXML renders toks as an XML token stream to out.
func WriteTokensXML(toks []tokenizer.Token, out io.Writer) error {
	tw := tokensWrapper{
		XMLName: xml.Name{Local: "tokens"},
		Tokens:  make([]xmlToken, 0, len(toks)),
	}
	for _, t := range toks {
		tw.Tokens = append(tw.Tokens, xmlToken{
			XMLName: xml.Name{Local: string(t.Type)},
			Value:   " " + t.Raw + " ",
		})
	}
	return writer.Output(out, tw)
}
