/*
 * Copyright (c) 2020 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

import (
	"io"

	"github.com/jackal-xmpp/saslstanza/xmpp"
)

// Response represents a 'response' stanza, sent by the initiating
// entity to reply to a previously received challenge.
type Response struct {
	text string
}

// NewResponse creates a Response stanza carrying an optional payload.
// Blank or whitespace-only payloads are normalized to the absent form.
func NewResponse(authenticationText string) *Response {
	return &Response{text: normalizeData(authenticationText)}
}

// NewEmptyResponse creates a Response stanza carrying no payload.
func NewEmptyResponse() *Response {
	return &Response{}
}

// NewResponseFromElement creates a Response stanza from its XML element form.
func NewResponseFromElement(elem xmpp.XElement) (*Response, error) {
	if err := checkStanzaElement(elem, ResponseName); err != nil {
		return nil, err
	}
	return NewResponse(elem.Text()), nil
}

// AuthenticationText returns the response payload.
// Returns an empty string if the stanza carries no payload.
func (r *Response) AuthenticationText() string {
	return r.text
}

// Name returns "response" stanza name.
func (r *Response) Name() string {
	return ResponseName
}

// Element returns stanza XML element form.
func (r *Response) Element() *xmpp.Element {
	el := xmpp.NewElementNamespace(ResponseName, Namespace)
	el.SetText(r.text)
	return el
}

// ToXML serializes stanza to a raw XML representation.
func (r *Response) ToXML(w io.Writer) {
	r.Element().ToXML(w, true)
}

// String returns a string representation of the stanza.
func (r *Response) String() string {
	return stanzaString(r)
}
