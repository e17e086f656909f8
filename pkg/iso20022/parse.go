package iso20022

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedMessage is returned for well-formed documents that are
	// neither pain.001 nor pacs.008.
	ErrUnsupportedMessage = errors.New("iso20022: unsupported message type")
	// ErrEmptyDocument is returned when no XML was supplied.
	ErrEmptyDocument = errors.New("iso20022: empty document")
)

// Role identifies which side of a transfer an account or agent belongs to.
type Role string

const (
	RoleDebtor   Role = "debtor"
	RoleCreditor Role = "creditor"
)

// AccountRef is a party account found in a message. IBAN is set when the
// account is identified by IBAN, Other when it uses a proprietary scheme.
type AccountRef struct {
	Locator string
	Role    Role
	IBAN    string
	Other   string
}

// AgentRef is a financial institution identified by BIC.
type AgentRef struct {
	Locator string
	Role    Role
	BIC     string
}

// Parties is everything that needs screening in one message, in document
// order.
type Parties struct {
	Type             MessageType
	MessageID        string
	TransactionCount int
	Accounts         []AccountRef
	Agents           []AgentRef
}

type envelope struct {
	XMLName xml.Name
	Pain    *pain001Body `xml:"CstmrCdtTrfInitn"`
	Pacs    *pacs008Body `xml:"FIToFICstmrCdtTrf"`
}

// Parse decodes a pain.001 or pacs.008 document and lists its accounts and
// agents. The schema version is taken from the document namespace.
func Parse(data []byte) (*Parties, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var env envelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode iso20022 document: %w", err)
	}
	if env.XMLName.Local != "Document" {
		return nil, fmt.Errorf("%w: root element %q", ErrUnsupportedMessage, env.XMLName.Local)
	}

	switch {
	case env.Pain != nil:
		p := env.Pain.parties()
		p.Type = typeFromNamespace(env.XMLName.Space, Pain001)
		return p, nil
	case env.Pacs != nil:
		p := env.Pacs.parties()
		p.Type = typeFromNamespace(env.XMLName.Space, Pacs008)
		return p, nil
	default:
		return nil, fmt.Errorf("%w: namespace %q", ErrUnsupportedMessage, env.XMLName.Space)
	}
}

func (b *pain001Body) parties() *Parties {
	p := &Parties{MessageID: b.GrpHdr.MsgID}
	for i, pmt := range b.PmtInf {
		prefix := fmt.Sprintf("PmtInf[%d]", i)
		p.addAccount(prefix+".DbtrAcct", RoleDebtor, pmt.DbtrAcct)
		p.addAgent(prefix+".DbtrAgt", RoleDebtor, pmt.DbtrAgt)
		for j, tx := range pmt.CdtTrfTxInf {
			txPrefix := fmt.Sprintf("%s.CdtTrfTxInf[%d]", prefix, j)
			p.addAgent(txPrefix+".CdtrAgt", RoleCreditor, tx.CdtrAgt)
			p.addAccount(txPrefix+".CdtrAcct", RoleCreditor, tx.CdtrAcct)
			p.TransactionCount++
		}
	}
	return p
}

func (b *pacs008Body) parties() *Parties {
	p := &Parties{MessageID: b.GrpHdr.MsgID}
	for i, tx := range b.CdtTrfTxInf {
		prefix := fmt.Sprintf("CdtTrfTxInf[%d]", i)
		p.addAccount(prefix+".DbtrAcct", RoleDebtor, tx.DbtrAcct)
		p.addAgent(prefix+".DbtrAgt", RoleDebtor, tx.DbtrAgt)
		p.addAgent(prefix+".CdtrAgt", RoleCreditor, tx.CdtrAgt)
		p.addAccount(prefix+".CdtrAcct", RoleCreditor, tx.CdtrAcct)
		p.TransactionCount++
	}
	return p
}

func (p *Parties) addAccount(locator string, role Role, acct *xmlAccount) {
	if acct == nil {
		return
	}
	ref := AccountRef{Locator: locator, Role: role, IBAN: acct.ID.IBAN}
	if acct.ID.Other != nil {
		ref.Other = acct.ID.Other.ID
	}
	p.Accounts = append(p.Accounts, ref)
}

func (p *Parties) addAgent(locator string, role Role, agt *xmlAgent) {
	if agt == nil {
		return
	}
	bic := agt.FinInstnID.BICFI
	if bic == "" {
		bic = agt.FinInstnID.BIC
	}
	if bic == "" {
		return
	}
	p.Agents = append(p.Agents, AgentRef{Locator: locator, Role: role, BIC: bic})
}
