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

func TestChallenge_New(t *testing.T) {
	c := NewChallenge("cj0zcmZjZGE=")
	require.Equal(t, "cj0zcmZjZGE=", c.Data())
	require.Equal(t, ChallengeName, c.Name())
	require.Equal(t, `<challenge xmlns="urn:ietf:params:xml:ns:xmpp-sasl">cj0zcmZjZGE=</challenge>`, c.String())
}

func TestChallenge_BlankDataNormalized(t *testing.T) {
	blanks := []string{"", " ", "\t", " \t\n\r "}
	for _, blank := range blanks {
		c := NewChallenge(blank)
		require.Equal(t, "", c.Data())
		require.Equal(t, `<challenge xmlns="urn:ietf:params:xml:ns:xmpp-sasl"/>`, c.String())
	}
}

func TestChallenge_SurroundingWhitespaceTrimmed(t *testing.T) {
	c := NewChallenge("  cj0zcmZjZGE=\n")
	require.Equal(t, "cj0zcmZjZGE=", c.Data())
}

func TestChallenge_RoundTrip(t *testing.T) {
	c0 := NewChallenge("cj0zcmZjZGE=")

	p := xmpp.NewParser(strings.NewReader(c0.String()), xmpp.DefaultMode, 0)
	el, err := p.ParseElement()
	require.Nil(t, err)
	require.NotNil(t, el)

	c1, err := NewChallengeFromElement(el)
	require.Nil(t, err)
	require.Equal(t, c0.Data(), c1.Data())
	require.Equal(t, c0.String(), c1.String())
}

func TestChallenge_FromElement(t *testing.T) {
	_, err := NewChallengeFromElement(xmpp.NewElementNamespace("success", Namespace))
	require.NotNil(t, err)

	_, err = NewChallengeFromElement(xmpp.NewElementName(ChallengeName))
	require.NotNil(t, err)
}
