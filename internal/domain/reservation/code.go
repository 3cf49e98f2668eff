package reservation

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// CodeAlphabet omits 0/O, 1/I/L so codes survive being read aloud or
// copied by hand.
const CodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	DefaultCodePrefix = "PKP"
	DefaultCodeLength = 8
)

type CodeGenerator interface {
	Generate() (Code, error)
}

// Code is a confirmation code such as "PKP-7KQ2MZXA".
type Code struct {
	value string
}

func ReconstructCode(s string) Code { return Code{value: s} }

func (c Code) String() string { return c.value }
func (c Code) IsZero() bool   { return c.value == "" }

type RandomCodeGenerator struct {
	prefix string
	length int
}

func NewRandomCodeGenerator(prefix string, length int) *RandomCodeGenerator {
	if prefix == "" {
		prefix = DefaultCodePrefix
	}
	if length <= 0 {
		length = DefaultCodeLength
	}
	return &RandomCodeGenerator{prefix: strings.ToUpper(prefix), length: length}
}

func (g *RandomCodeGenerator) Prefix() string { return g.prefix }

func (g *RandomCodeGenerator) Generate() (Code, error) {
	alphabetSize := big.NewInt(int64(len(CodeAlphabet)))
	var b strings.Builder
	b.Grow(len(g.prefix) + 1 + g.length)
	b.WriteString(g.prefix)
	b.WriteByte('-')
	for range g.length {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return Code{}, err
		}
		b.WriteByte(CodeAlphabet[n.Int64()])
	}
	return Code{value: b.String()}, nil
}

// ParseCode normalizes user input and returns the candidates to look up:
// the input itself and, when the prefix is missing, the prefixed form.
func ParseCode(input, prefix string) []Code {
	s := strings.ToUpper(strings.TrimSpace(input))
	if s == "" {
		return nil
	}
	prefix = strings.ToUpper(prefix)
	candidates := []Code{{value: s}}
	if !strings.HasPrefix(s, prefix+"-") {
		candidates = append(candidates, Code{value: prefix + "-" + strings.TrimPrefix(s, "-")})
	}
	return candidates
}
