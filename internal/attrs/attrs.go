// Package attrs implements declaration modifiers: a mutable Handler filled
// while the parser scans modifier keywords, frozen into a read-only Set that
// is attached to the declaration node.
package attrs

import (
	"fmt"
	"strings"
)

// Kind identifies one modifier family. A Set holds at most one Attr per Kind.
type Kind uint8

const (
	KindPrivacy Kind = iota
	KindStatic
	KindInline
	KindExternal
	KindAbstract
	KindFinal

	kindCount
)

var kindNames = [...]string{
	KindPrivacy:  "privacy",
	KindStatic:   "static",
	KindInline:   "inline",
	KindExternal: "external",
	KindAbstract: "abstract",
	KindFinal:    "final",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Linkage selects the calling convention of an external declaration.
type Linkage uint8

const (
	LinkageC Linkage = iota
	LinkageSnowball
	LinkageSystem
)

var linkageByName = map[string]Linkage{
	"C":        LinkageC,
	"snowball": LinkageSnowball,
	"system":   LinkageSystem,
}

// ParseLinkage maps the literal text of an external specifier to a Linkage.
// Matching is case-sensitive.
func ParseLinkage(s string) (Linkage, bool) {
	l, ok := linkageByName[s]
	return l, ok
}

func (l Linkage) String() string {
	switch l {
	case LinkageC:
		return "C"
	case LinkageSnowball:
		return "snowball"
	case LinkageSystem:
		return "system"
	default:
		return fmt.Sprintf("Linkage(%d)", uint8(l))
	}
}

// Attr is a single modifier. Public is meaningful only for KindPrivacy,
// Linkage only for KindExternal.
type Attr struct {
	Kind    Kind
	Public  bool
	Linkage Linkage
}

func Privacy(public bool) Attr { return Attr{Kind: KindPrivacy, Public: public} }
func Static() Attr             { return Attr{Kind: KindStatic} }
func Inline() Attr             { return Attr{Kind: KindInline} }
func External(l Linkage) Attr  { return Attr{Kind: KindExternal, Linkage: l} }
func Abstract() Attr           { return Attr{Kind: KindAbstract} }
func Final() Attr              { return Attr{Kind: KindFinal} }

func (a Attr) String() string {
	switch a.Kind {
	case KindPrivacy:
		if a.Public {
			return "public"
		}
		return "private"
	case KindExternal:
		return fmt.Sprintf("external %q", a.Linkage.String())
	default:
		return a.Kind.String()
	}
}

// Handler accumulates modifiers in source order.
type Handler struct {
	attrs []Attr
}

func NewHandler() *Handler {
	return &Handler{}
}

// Add records a. Nothing is validated here: repeated and contradictory
// modifiers are kept and resolved by Freeze.
func (h *Handler) Add(a Attr) {
	h.attrs = append(h.attrs, a)
}

// Len returns the number of modifiers added since the last Reset.
func (h *Handler) Len() int {
	return len(h.attrs)
}

func (h *Handler) Empty() bool {
	return len(h.attrs) == 0
}

// Reset clears the handler for the next declaration.
func (h *Handler) Reset() {
	h.attrs = h.attrs[:0]
}

// Freeze snapshots the accumulated modifiers. For every kind the last added
// attribute wins. The handler stays usable and is not modified.
func (h *Handler) Freeze() *Set {
	s := &Set{}
	for _, a := range h.attrs {
		s.slots[a.Kind] = a
		s.present |= 1 << a.Kind
	}
	return s
}

// Set is an immutable modifier set in canonical kind order, so two sets built
// from the same modifiers in different orders compare equal.
type Set struct {
	slots   [kindCount]Attr
	present uint8
}

// Has reports whether a modifier of kind k is present.
func (s *Set) Has(k Kind) bool {
	return s != nil && k < kindCount && s.present&(1<<k) != 0
}

// Get returns the attribute stored for k.
func (s *Set) Get(k Kind) (Attr, bool) {
	if !s.Has(k) {
		return Attr{}, false
	}
	return s.slots[k], true
}

// Public reports the declared visibility; ok is false when none was given.
func (s *Set) Public() (public, ok bool) {
	a, ok := s.Get(KindPrivacy)
	return a.Public, ok
}

func (s *Set) Linkage() (Linkage, bool) {
	a, ok := s.Get(KindExternal)
	return a.Linkage, ok
}

func (s *Set) IsStatic() bool   { return s.Has(KindStatic) }
func (s *Set) IsInline() bool   { return s.Has(KindInline) }
func (s *Set) IsAbstract() bool { return s.Has(KindAbstract) }
func (s *Set) IsFinal() bool    { return s.Has(KindFinal) }

// Len returns the number of distinct kinds present.
func (s *Set) Len() int {
	n := 0
	for k := range kindCount {
		if s.Has(k) {
			n++
		}
	}
	return n
}

// All returns the present attributes in canonical order.
func (s *Set) All() []Attr {
	out := make([]Attr, 0, kindCount)
	for k := range kindCount {
		if s.Has(k) {
			out = append(out, s.slots[k])
		}
	}
	return out
}

func (s *Set) String() string {
	parts := make([]string, 0, kindCount)
	for _, a := range s.All() {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}
