/*
 * Copyright (c) 2020 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"strings"
	"testing"

	"github.com/jackal-xmpp/saslstanza/xmpp"
	"github.com/stretchr/testify/require"
)

func TestResponse_New(t *testing.T) {
	r := NewResponse("Yz1iaXdz")
	require.Equal(t, "Yz1iaXdz", r.AuthenticationText())
	require.Equal(t, ResponseName, r.Name())
	require.Equal(t, `<response xmlns="urn:ietf:params:xml:ns:xmpp-sasl">Yz1iaXdz</response>`, r.String())
}

func TestResponse_NewEmpty(t *testing.T) {
	r := NewEmptyResponse()
	require.Equal(t, "", r.AuthenticationText())
	require.Equal(t, `<response xmlns="urn:ietf:params:xml:ns:xmpp-sasl"/>`, r.String())

	// blank text yields the same absent form
	require.Equal(t, r.String(), NewResponse(" \t ").String())
}

func TestResponse_RoundTrip(t *testing.T) {
	r0 := NewResponse("Yz1iaXdz")

	p := xmpp.NewParser(strings.NewReader(r0.String()), xmpp.DefaultMode, 0)
	el, err := p.ParseElement()
	require.Nil(t, err)
	require.NotNil(t, el)

	r1, err := NewResponseFromElement(el)
	require.Nil(t, err)
	require.Equal(t, r0.AuthenticationText(), r1.AuthenticationText())
	require.Equal(t, r0.String(), r1.String())
}

func TestResponse_FromElement(t *testing.T) {
	_, err := NewResponseFromElement(xmpp.NewElementNamespace("challenge", Namespace))
	require.NotNil(t, err)
}
