// SPDX-License-Identifier: Apache-2.0

// Package policy parses and evaluates identifier-validation policy strings.
//
// A policy is a boolean expression over patient fields, e.g.
//
//	forename AND surname AND dob AND sex AND (idnum1 OR idnum2)
//
// Atoms name a patient field whose presence satisfies them: forename,
// surname, dob, sex, anyidnum, or idnumN for an identifier slot N. Operators
// are AND and OR (case insensitive) with parentheses for grouping; AND binds
// tighter than OR. The server supplies one policy gating upload and a
// stricter one gating finalization.
package policy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/clinitab/uplink/models"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("policy syntax error")

// Policy is a compiled identifier-validation policy.
type Policy struct {
	source string
	root   node
}

type node interface {
	eval(p models.Patient) bool
}

type andNode struct{ children []node }
type orNode struct{ children []node }

type atomNode struct {
	field string
	slot  int // identifier slot for idnumN atoms, 0 otherwise
}

func (n andNode) eval(p models.Patient) bool {
	for _, c := range n.children {
		if !c.eval(p) {
			return false
		}
	}
	return true
}

func (n orNode) eval(p models.Patient) bool {
	for _, c := range n.children {
		if c.eval(p) {
			return true
		}
	}
	return false
}

func (n atomNode) eval(p models.Patient) bool {
	switch n.field {
	case "forename":
		return p.Forename != ""
	case "surname":
		return p.Surname != ""
	case "dob":
		return p.DOB != ""
	case "sex":
		return p.Sex != ""
	case "anyidnum":
		return p.HasAnyIDNum()
	case "idnum":
		return p.HasIDNum(n.slot)
	default:
		return false
	}
}

// Compile parses a policy string. An empty or malformed policy is a parse
// error; callers treat an uncompilable policy as satisfiable by nothing.
func Compile(source string) (*Policy, error) {
	tokens, err := tokenize(source)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("%w: unexpected token %q", ErrSyntax, p.tokens[p.pos])
	}

	return &Policy{source: source, root: root}, nil
}

// Source returns the original policy string.
func (p *Policy) Source() string {
	return p.source
}

// Satisfies reports whether the patient satisfies the policy. A nil policy
// is satisfied by nothing.
func (p *Policy) Satisfies(pat models.Patient) bool {
	if p == nil || p.root == nil {
		return false
	}
	return p.root.eval(pat)
}

func tokenize(source string) ([]string, error) {
	replaced := strings.NewReplacer("(", " ( ", ")", " ) ").Replace(source)
	tokens := strings.Fields(replaced)
	return tokens, nil
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return strings.ToLower(p.tokens[p.pos]), true
}

func (p *parser) next() (string, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// expr := term { OR term }
func (p *parser) parseExpr() (node, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	children := []node{first}
	for {
		tok, ok := p.peek()
		if !ok || tok != "or" {
			break
		}
		p.pos++

		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}

	if len(children) == 1 {
		return first, nil
	}
	return orNode{children: children}, nil
}

// term := factor { AND factor }
func (p *parser) parseTerm() (node, error) {
	first, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	children := []node{first}
	for {
		tok, ok := p.peek()
		if !ok || tok != "and" {
			break
		}
		p.pos++

		next, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}

	if len(children) == 1 {
		return first, nil
	}
	return andNode{children: children}, nil
}

// factor := atom | "(" expr ")"
func (p *parser) parseFactor() (node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of policy", ErrSyntax)
	}

	switch tok {
	case "(":
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closer, ok := p.next()
		if !ok || closer != ")" {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		return inner, nil
	case ")", "and", "or":
		return nil, fmt.Errorf("%w: unexpected token %q", ErrSyntax, tok)
	}

	return parseAtom(tok)
}

func parseAtom(tok string) (node, error) {
	switch tok {
	case "forename", "surname", "dob", "sex", "anyidnum":
		return atomNode{field: tok}, nil
	}

	if rest, found := strings.CutPrefix(tok, "idnum"); found {
		slot, err := strconv.Atoi(rest)
		if err != nil || slot < 1 || slot > models.IDSlotCount {
			return nil, fmt.Errorf("%w: bad identifier slot %q", ErrSyntax, tok)
		}
		return atomNode{field: "idnum", slot: slot}, nil
	}

	return nil, fmt.Errorf("%w: unknown field %q", ErrSyntax, tok)
}
