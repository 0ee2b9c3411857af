/*
 * Copyright (c) 2020 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"io"

	"github.com/jackal-xmpp/saslstanza/xmpp"
	"github.com/pkg/errors"
)

var (
	// ErrMissingMechanism is returned by NewAuth when no mechanism
	// name is provided.
	ErrMissingMechanism = errors.New("sasl: mechanism must not be empty")

	// ErrMissingAuthenticationText is returned by NewAuth when no
	// authentication text is provided.
	ErrMissingAuthenticationText = errors.New("sasl: authentication text must not be empty")
)

// Auth represents an 'auth' stanza, sent by the initiating entity to
// select an authentication mechanism.
type Auth struct {
	mechanism string
	text      string
}

// NewAuth creates an Auth stanza carrying an initial authentication text.
// RFC 6120 6.4.2 mandates that the initial request always include a
// payload: callers wishing to transmit "no initial response" must pass
// an explicit placeholder token, typically "=".
func NewAuth(mechanism, authenticationText string) (*Auth, error) {
	if len(mechanism) == 0 {
		return nil, ErrMissingMechanism
	}
	if len(authenticationText) == 0 {
		return nil, ErrMissingAuthenticationText
	}
	return &Auth{mechanism: mechanism, text: authenticationText}, nil
}

// NewAuthFromElement creates an Auth stanza from its XML element form.
func NewAuthFromElement(elem xmpp.XElement) (*Auth, error) {
	if err := checkStanzaElement(elem, AuthName); err != nil {
		return nil, err
	}
	return NewAuth(elem.Attributes().Get(MechanismName), elem.Text())
}

// Mechanism returns the selected mechanism name.
func (a *Auth) Mechanism() string {
	return a.mechanism
}

// AuthenticationText returns the initial authentication payload.
func (a *Auth) AuthenticationText() string {
	return a.text
}

// Name returns "auth" stanza name.
func (a *Auth) Name() string {
	return AuthName
}

// Element returns stanza XML element form.
func (a *Auth) Element() *xmpp.Element {
	el := xmpp.NewElementNamespace(AuthName, Namespace)
	el.SetAttribute(MechanismName, a.mechanism)
	el.SetText(a.text)
	return el
}

// ToXML serializes stanza to a raw XML representation.
func (a *Auth) ToXML(w io.Writer) {
	a.Element().ToXML(w, true)
}

// String returns a string representation of the stanza.
func (a *Auth) String() string {
	return stanzaString(a)
}
