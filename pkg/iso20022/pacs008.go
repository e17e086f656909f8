package iso20022

import (
	"encoding/xml"
	"strconv"
	"time"
)

// FIToFICreditTransfer represents pacs.008 message.
type FIToFICreditTransfer struct {
	Header       MessageHeader
	Transactions []FICreditTransferTransaction
}

func (f FIToFICreditTransfer) Type() MessageType { return Pacs008 }

func (f FIToFICreditTransfer) ToXML() ([]byte, error) {
	body := pacs008Body{
		GrpHdr: xmlGroupHeader{
			MsgID:    f.Header.MessageID,
			CreDtTm:  f.Header.CreationDate.Format(time.RFC3339),
			NbOfTxs:  strconv.Itoa(len(f.Transactions)),
			SttlmInf: &xmlSttlm{SttlmMtd: "CLRG"},
		},
	}
	for _, tx := range f.Transactions {
		body.CdtTrfTxInf = append(body.CdtTrfTxInf, pacs008Tx{
			PmtID:          xmlPaymentID{EndToEndID: tx.EndToEndID, TxID: tx.TransactionID},
			IntrBkSttlmAmt: xmlAmount{Currency: tx.Currency, Value: tx.Amount},
			Dbtr:           newParty(tx.DebtorName),
			DbtrAcct:       newAccount(tx.DebtorAccount),
			DbtrAgt:        newAgent(tx.DebtorAgent),
			CdtrAgt:        newAgent(tx.CreditorAgent),
			Cdtr:           newParty(tx.CreditorName),
			CdtrAcct:       newAccount(tx.CreditorAccount),
		})
	}

	return marshalDocument(pacs008Document{
		XMLName:           xml.Name{Local: "Document"},
		Xmlns:             Pacs008.Namespace(),
		FIToFICstmrCdtTrf: body,
	})
}

// FICreditTransferTransaction contains FI-level transaction details.
type FICreditTransferTransaction struct {
	TransactionID   string
	EndToEndID      string
	Amount          string
	Currency        string
	DebtorAgent     string // BIC
	CreditorAgent   string // BIC
	DebtorName      string
	DebtorAccount   string
	CreditorName    string
	CreditorAccount string
}

type pacs008Document struct {
	XMLName           xml.Name    `xml:"Document"`
	Xmlns             string      `xml:"xmlns,attr"`
	FIToFICstmrCdtTrf pacs008Body `xml:"FIToFICstmrCdtTrf"`
}

type pacs008Body struct {
	GrpHdr      xmlGroupHeader `xml:"GrpHdr"`
	CdtTrfTxInf []pacs008Tx    `xml:"CdtTrfTxInf"`
}

type pacs008Tx struct {
	PmtID          xmlPaymentID `xml:"PmtId"`
	IntrBkSttlmAmt xmlAmount    `xml:"IntrBkSttlmAmt"`
	Dbtr           *xmlParty    `xml:"Dbtr,omitempty"`
	DbtrAcct       *xmlAccount  `xml:"DbtrAcct,omitempty"`
	DbtrAgt        *xmlAgent    `xml:"DbtrAgt,omitempty"`
	CdtrAgt        *xmlAgent    `xml:"CdtrAgt,omitempty"`
	Cdtr           *xmlParty    `xml:"Cdtr,omitempty"`
	CdtrAcct       *xmlAccount  `xml:"CdtrAcct,omitempty"`
}
