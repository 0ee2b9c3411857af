/*
 * Copyright (c) 2020 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"io"

	"github.com/jackal-xmpp/saslstanza/xmpp"
)

// Abort represents an 'abort' stanza, sent by the initiating entity to
// abort an ongoing negotiation.
type Abort struct{}

// NewAbort creates an Abort stanza.
func NewAbort() *Abort {
	return &Abort{}
}

// NewAbortFromElement creates an Abort stanza from its XML element form.
func NewAbortFromElement(elem xmpp.XElement) (*Abort, error) {
	if err := checkStanzaElement(elem, AbortName); err != nil {
		return nil, err
	}
	return NewAbort(), nil
}

// Name returns "abort" stanza name.
func (a *Abort) Name() string {
	return AbortName
}

// Element returns stanza XML element form.
func (a *Abort) Element() *xmpp.Element {
	return xmpp.NewElementNamespace(AbortName, Namespace)
}

// ToXML serializes stanza to a raw XML representation.
func (a *Abort) ToXML(w io.Writer) {
	a.Element().ToXML(w, true)
}

// String returns a string representation of the stanza.
func (a *Abort) String() string {
	return stanzaString(a)
}
