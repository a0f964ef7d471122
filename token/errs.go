package token

import (
	"errors"
	"fmt"
)

var ErrUnterminated = errors.New("unterminated")

// TokenizeErr is a lexical error at a position of the input.
type TokenizeErr struct {
	Err error
	Pos *Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (t *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", t.Err.Error(), t.Pos.String())
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}
