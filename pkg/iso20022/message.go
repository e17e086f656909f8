// Package iso20022 builds and reads the ISO 20022 credit transfer messages
// whose party accounts and agents need screening: pain.001 customer
// initiations and pacs.008 interbank transfers.
package iso20022

import (
	"strings"
	"time"
)

// MessageType represents ISO 20022 message types.
type MessageType string

const (
	Pain001 MessageType = "pain.001.001.12" // CustomerCreditTransferInitiation
	Pacs008 MessageType = "pacs.008.001.12" // FIToFICustomerCreditTransfer
)

const namespacePrefix = "urn:iso:std:iso:20022:tech:xsd:"

// Namespace returns the XML namespace URI of the message type.
func (t MessageType) Namespace() string { return namespacePrefix + string(t) }

// Family returns the message family without its version, e.g. "pain.001".
func (t MessageType) Family() string {
	parts := strings.SplitN(string(t), ".", 3)
	if len(parts) < 2 {
		return string(t)
	}
	return parts[0] + "." + parts[1]
}

func typeFromNamespace(ns string, fallback MessageType) MessageType {
	if v, ok := strings.CutPrefix(ns, namespacePrefix); ok && v != "" {
		return MessageType(v)
	}
	return fallback
}

// Message is the base interface for all ISO 20022 messages.
type Message interface {
	Type() MessageType
	ToXML() ([]byte, error)
}

// MessageHeader contains the group header fields shared by both messages.
type MessageHeader struct {
	MessageID       string
	CreationDate    time.Time
	InitiatingParty string
}
