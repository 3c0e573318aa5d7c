package gvm1

import (
	"bufio"
	"io"
)

const maxTokenSize = 1 << 24

// Tokens splits an input stream into whitespace separated tokens for Input.
// A Tokens can be shared by VMs which run one after another on the same stream.
type Tokens struct {
	sc *bufio.Scanner
}

func NewTokens(r io.Reader) *Tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxTokenSize)
	sc.Split(bufio.ScanWords)
	return &Tokens{sc: sc}
}

// Next returns the next token, or io.EOF when the stream is exhausted.
func (t *Tokens) Next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.sc.Text(), nil
}
