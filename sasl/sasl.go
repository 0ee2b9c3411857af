/*
 * Copyright (c) 2020 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"fmt"
	"io"
	"strings"

	"github.com/jackal-xmpp/saslstanza/pool"
	"github.com/jackal-xmpp/saslstanza/xmpp"
	"github.com/pkg/errors"
)

// Namespace defines the SASL protocol namespace.
const Namespace = "urn:ietf:params:xml:ns:xmpp-sasl"

const (
	// MechanismsName represents "mechanisms" element name.
	MechanismsName = "mechanisms"

	// MechanismName represents "mechanism" element name.
	MechanismName = "mechanism"

	// AuthName represents "auth" stanza name.
	AuthName = "auth"

	// ChallengeName represents "challenge" stanza name.
	ChallengeName = "challenge"

	// ResponseName represents "response" stanza name.
	ResponseName = "response"

	// SuccessName represents "success" stanza name.
	SuccessName = "success"

	// FailureName represents "failure" stanza name.
	FailureName = "failure"

	// AbortName represents "abort" stanza name.
	AbortName = "abort"
)

var bufPool = pool.NewBufferPool()

// Stanza represents a SASL negotiation element.
// Implementations are immutable once constructed and safe for
// concurrent use.
type Stanza interface {
	fmt.Stringer

	// Name returns stanza element name.
	Name() string

	// Element returns the stanza XML element form.
	// A fresh element is built on every call.
	Element() *xmpp.Element

	// ToXML serializes stanza to a raw XML representation.
	ToXML(w io.Writer)
}

// FromElement builds a SASL stanza from its parsed XML element form,
// applying the same validation and normalization rules as outbound
// construction.
func FromElement(elem xmpp.XElement) (Stanza, error) {
	switch elem.Name() {
	case MechanismsName:
		return NewMechanismsFromElement(elem)
	case AuthName:
		return NewAuthFromElement(elem)
	case ChallengeName:
		return NewChallengeFromElement(elem)
	case ResponseName:
		return NewResponseFromElement(elem)
	case SuccessName:
		return NewSuccessFromElement(elem)
	case FailureName:
		return NewFailureFromElement(elem)
	case AbortName:
		return NewAbortFromElement(elem)
	}
	return nil, errors.Errorf("sasl: unrecognized stanza name: %s", elem.Name())
}

func checkStanzaElement(elem xmpp.XElement, name string) error {
	if elem.Name() != name {
		return errors.Errorf("sasl: wrong %s element name: %s", name, elem.Name())
	}
	if ns := elem.Namespace(); ns != Namespace {
		return errors.Errorf("sasl: wrong %s element namespace: %s", name, ns)
	}
	return nil
}

// normalizeData trims surrounding whitespace from an optional payload,
// reducing blank payloads to the absent form.
func normalizeData(data string) string {
	return strings.TrimSpace(data)
}

func stanzaString(st Stanza) string {
	buf := bufPool.Get()
	defer bufPool.Put(buf)

	st.ToXML(buf)
	return buf.String()
}
