/*
 * Copyright (c) 2020 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"io"
	"strings"

	"github.com/jackal-xmpp/saslstanza/xmpp"
	"github.com/pkg/errors"
)

// ErrNoMechanisms is returned by NewMechanisms when no mechanism name
// is provided.
var ErrNoMechanisms = errors.New("sasl: at least one mechanism must be advertised")

// Mechanisms represents a 'mechanisms' element, advertising the
// authentication mechanisms offered by the receiving entity.
type Mechanisms struct {
	names []string
}

// NewMechanisms creates a Mechanisms element from a list of mechanism
// names, preserving the given preference order.
func NewMechanisms(names ...string) (*Mechanisms, error) {
	if len(names) == 0 {
		return nil, ErrNoMechanisms
	}
	for _, name := range names {
		if len(strings.TrimSpace(name)) == 0 {
			return nil, ErrMissingMechanism
		}
	}
	m := &Mechanisms{names: make([]string, len(names))}
	copy(m.names, names)
	return m, nil
}

// NewMechanismsFromElement creates a Mechanisms element from its XML
// element form.
func NewMechanismsFromElement(elem xmpp.XElement) (*Mechanisms, error) {
	if err := checkStanzaElement(elem, MechanismsName); err != nil {
		return nil, err
	}
	var names []string
	for _, child := range elem.Elements().Children(MechanismName) {
		names = append(names, child.Text())
	}
	return NewMechanisms(names...)
}

// Names returns the advertised mechanism names.
func (m *Mechanisms) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Name returns "mechanisms" element name.
func (m *Mechanisms) Name() string {
	return MechanismsName
}

// Element returns stanza XML element form.
func (m *Mechanisms) Element() *xmpp.Element {
	el := xmpp.NewElementNamespace(MechanismsName, Namespace)
	for _, name := range m.names {
		mechanism := xmpp.NewElementName(MechanismName)
		mechanism.SetText(name)
		el.AppendElement(mechanism)
	}
	return el
}

// ToXML serializes stanza to a raw XML representation.
func (m *Mechanisms) ToXML(w io.Writer) {
	m.Element().ToXML(w, true)
}

// String returns a string representation of the stanza.
func (m *Mechanisms) String() string {
	return stanzaString(m)
}
