/*
 * Copyright (c) 2020 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"io"

	"github.com/jackal-xmpp/saslstanza/xmpp"
)

// Success represents a 'success' stanza, sent by the receiving entity
// to report a successful negotiation, optionally carrying additional
// data for the SASL layer (RFC 6120 6.3.10).
type Success struct {
	data string
}

// NewSuccess creates a Success stanza carrying an optional payload.
// Blank or whitespace-only payloads are normalized to the absent form.
func NewSuccess(data string) *Success {
	return &Success{data: normalizeData(data)}
}

// NewSuccessFromElement creates a Success stanza from its XML element form.
func NewSuccessFromElement(elem xmpp.XElement) (*Success, error) {
	if err := checkStanzaElement(elem, SuccessName); err != nil {
		return nil, err
	}
	return NewSuccess(elem.Text()), nil
}

// Data returns additional data for the SASL layer.
// Returns an empty string if the stanza carries no payload.
func (s *Success) Data() string {
	return s.data
}

// Name returns "success" stanza name.
func (s *Success) Name() string {
	return SuccessName
}

// Element returns stanza XML element form.
func (s *Success) Element() *xmpp.Element {
	el := xmpp.NewElementNamespace(SuccessName, Namespace)
	el.SetText(s.data)
	return el
}

// ToXML serializes stanza to a raw XML representation.
func (s *Success) ToXML(w io.Writer) {
	s.Element().ToXML(w, true)
}

// String returns a string representation of the stanza.
func (s *Success) String() string {
	return stanzaString(s)
}
