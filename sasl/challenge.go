/*
 * Copyright (c) 2020 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"io"

	"github.com/jackal-xmpp/saslstanza/xmpp"
)

// Challenge represents a 'challenge' stanza, sent by the receiving
// entity to challenge the initiating entity during negotiation.
type Challenge struct {
	data string
}

// NewChallenge creates a Challenge stanza carrying an optional payload.
// Blank or whitespace-only payloads are normalized to the absent form.
func NewChallenge(data string) *Challenge {
	return &Challenge{data: normalizeData(data)}
}

// NewChallengeFromElement creates a Challenge stanza from its XML element form.
func NewChallengeFromElement(elem xmpp.XElement) (*Challenge, error) {
	if err := checkStanzaElement(elem, ChallengeName); err != nil {
		return nil, err
	}
	return NewChallenge(elem.Text()), nil
}

// Data returns the challenge payload.
// Returns an empty string if the stanza carries no payload.
func (c *Challenge) Data() string {
	return c.data
}

// Name returns "challenge" stanza name.
func (c *Challenge) Name() string {
	return ChallengeName
}

// Element returns stanza XML element form.
func (c *Challenge) Element() *xmpp.Element {
	el := xmpp.NewElementNamespace(ChallengeName, Namespace)
	el.SetText(c.data)
	return el
}

// ToXML serializes stanza to a raw XML representation.
func (c *Challenge) ToXML(w io.Writer) {
	c.Element().ToXML(w, true)
}

// String returns a string representation of the stanza.
func (c *Challenge) String() string {
	return stanzaString(c)
}
