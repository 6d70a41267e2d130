package check

import (
	"errors"
	"fmt"
	"sort"
)

// ErrAlreadyDeclared is wrapped by Declare when the name is bound in any
// active scope. Inner scopes may not shadow outer ones.
var ErrAlreadyDeclared = errors.New("already declared")

var errNoScope = errors.New("no active scope")

// Role says what a name is bound to. Only variables may be read or
// assigned.
type Role int

const (
	RoleVar Role = iota
	RoleMethod
	RoleClass
)

func (r Role) String() string {
	switch r {
	case RoleMethod:
		return "method"
	case RoleClass:
		return "class"
	default:
		return "variable"
	}
}

type varInfo struct {
	kind     Kind
	role     Role
	declName string
	order    int
}

type scope struct {
	parent *scope
	vars   map[string]*varInfo
}

func (s *scope) lookup(name string) (*varInfo, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Scopes is the chain of active lexical scopes for one parse.
// The innermost scope is consulted first.
type Scopes struct {
	top *scope
}

func NewScopes() *Scopes { return &Scopes{} }

// Push opens a new innermost scope.
func (s *Scopes) Push() {
	s.top = &scope{parent: s.top, vars: map[string]*varInfo{}}
}

// Pop closes the innermost scope and drops its bindings.
func (s *Scopes) Pop() {
	if s.top == nil {
		return
	}
	s.top = s.top.parent
}

// Declare binds the variable name to k in the innermost scope.
func (s *Scopes) Declare(name string, k Kind) error {
	return s.DeclareRole(name, k, RoleVar)
}

// DeclareRole binds name in the innermost scope with the given role; for
// a method k is its return kind.
func (s *Scopes) DeclareRole(name string, k Kind, r Role) error {
	if s.top == nil {
		return errNoScope
	}
	if _, exists := s.top.lookup(name); exists {
		return fmt.Errorf("%q %w", name, ErrAlreadyDeclared)
	}
	s.top.vars[name] = &varInfo{kind: k, role: r, declName: name, order: len(s.top.vars)}
	return nil
}

// Lookup returns the kind and role bound to name in the nearest enclosing
// scope.
func (s *Scopes) Lookup(name string) (Kind, Role, bool) {
	v, ok := s.top.lookup(name)
	if !ok {
		return KindUnknown, RoleVar, false
	}
	return v.kind, v.role, true
}

// Names lists every visible name, innermost scope first and declaration
// order within a scope.
func (s *Scopes) Names() []string {
	var out []string
	for cur := s.top; cur != nil; cur = cur.parent {
		vs := make([]*varInfo, 0, len(cur.vars))
		for _, v := range cur.vars {
			vs = append(vs, v)
		}
		sort.Slice(vs, func(i, j int) bool { return vs[i].order < vs[j].order })
		for _, v := range vs {
			out = append(out, v.declName)
		}
	}
	return out
}
