/*
 * Copyright (c) 2020 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"testing"

	"github.com/jackal-xmpp/saslstanza/xmpp"
	"github.com/stretchr/testify/require"
)

func TestAuth_New(t *testing.T) {
	a, err := NewAuth("PLAIN", "AGFkbWluAHBhc3M=")
	require.Nil(t, err)
	require.Equal(t, "PLAIN", a.Mechanism())
	require.Equal(t, "AGFkbWluAHBhc3M=", a.AuthenticationText())
	require.Equal(t, AuthName, a.Name())
}

func TestAuth_NewInvalid(t *testing.T) {
	_, err := NewAuth("", "AGFkbWluAHBhc3M=")
	require.Equal(t, ErrMissingMechanism, err)

	_, err = NewAuth("PLAIN", "")
	require.Equal(t, ErrMissingAuthenticationText, err)

	_, err = NewAuth("SCRAM-SHA-1", "")
	require.Equal(t, ErrMissingAuthenticationText, err)

	_, err = NewAuth("", "")
	require.Equal(t, ErrMissingMechanism, err)
}

func TestAuth_WhitespaceTextPreserved(t *testing.T) {
	// whitespace-only text is content here, unlike optional payloads
	a, err := NewAuth("EXTERNAL", " ")
	require.Nil(t, err)
	require.Equal(t, " ", a.AuthenticationText())
}

func TestAuth_ToXML(t *testing.T) {
	a, err := NewAuth("PLAIN", "AGFkbWluAHBhc3M=")
	require.Nil(t, err)
	require.Equal(t, `<auth xmlns="urn:ietf:params:xml:ns:xmpp-sasl" mechanism="PLAIN">AGFkbWluAHBhc3M=</auth>`, a.String())
}

func TestAuth_FromElement(t *testing.T) {
	el := xmpp.NewElementNamespace(AuthName, Namespace)
	el.SetAttribute(MechanismName, "PLAIN")
	el.SetText("AGFkbWluAHBhc3M=")

	a, err := NewAuthFromElement(el)
	require.Nil(t, err)
	require.Equal(t, "PLAIN", a.Mechanism())
	require.Equal(t, "AGFkbWluAHBhc3M=", a.AuthenticationText())
	require.Equal(t, el.String(), a.String())

	_, err = NewAuthFromElement(xmpp.NewElementNamespace("response", Namespace))
	require.NotNil(t, err)

	_, err = NewAuthFromElement(xmpp.NewElementNamespace(AuthName, "wrong:ns"))
	require.NotNil(t, err)

	// missing mechanism attribute
	el = xmpp.NewElementNamespace(AuthName, Namespace)
	el.SetText("AGFkbWluAHBhc3M=")
	_, err = NewAuthFromElement(el)
	require.Equal(t, ErrMissingMechanism, err)
}
