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

// ErrMissingCondition is returned by NewFailureFromElement when the
// failure element carries no condition child.
var ErrMissingCondition = errors.New("sasl: failure element must contain a condition")

// Failure represents a 'failure' stanza, sent by the receiving entity
// to report an unsuccessful negotiation.
type Failure struct {
	reason    string
	condition ErrorCondition
}

// NewFailure creates a Failure stanza from a failure condition token.
// The verbatim token is preserved and round-trips on the wire; the
// classified condition is derived from it and is always a recognized
// value, falling back to NotAuthorized for unknown tokens.
func NewFailure(reason string) *Failure {
	return &Failure{
		reason:    reason,
		condition: ErrorConditionFromReason(reason),
	}
}

// NewFailureFromElement creates a Failure stanza from its XML element form.
// The condition is read from the first child element, skipping the
// optional descriptive 'text' child.
func NewFailureFromElement(elem xmpp.XElement) (*Failure, error) {
	if err := checkStanzaElement(elem, FailureName); err != nil {
		return nil, err
	}
	for _, child := range elem.Elements().All() {
		if child.Name() == "text" {
			continue
		}
		return NewFailure(child.Name()), nil
	}
	return nil, ErrMissingCondition
}

// Condition returns the classified failure condition.
func (f *Failure) Condition() ErrorCondition {
	return f.condition
}

// Reason returns the failure condition token as received, preserved
// verbatim for diagnostics even when unrecognized.
func (f *Failure) Reason() string {
	return f.reason
}

// Name returns "failure" stanza name.
func (f *Failure) Name() string {
	return FailureName
}

// Element returns stanza XML element form.
// The nested condition element is named after the verbatim token, not
// the classified condition.
func (f *Failure) Element() *xmpp.Element {
	el := xmpp.NewElementNamespace(FailureName, Namespace)
	el.AppendElement(xmpp.NewElementName(f.reason))
	return el
}

// ToXML serializes stanza to a raw XML representation.
func (f *Failure) ToXML(w io.Writer) {
	f.Element().ToXML(w, true)
}

// String returns a string representation of the stanza.
func (f *Failure) String() string {
	return stanzaString(f)
}
