package iso20022

import (
	"encoding/xml"
	"strconv"
	"time"
)

// CreditTransferInitiation represents pain.001 message.
type CreditTransferInitiation struct {
	Header      MessageHeader
	PaymentInfo []PaymentInstructionInfo
}

func (c CreditTransferInitiation) Type() MessageType { return Pain001 }

func (c CreditTransferInitiation) ToXML() ([]byte, error) {
	body := pain001Body{
		GrpHdr: xmlGroupHeader{
			MsgID:    c.Header.MessageID,
			CreDtTm:  c.Header.CreationDate.Format(time.RFC3339),
			NbOfTxs:  strconv.Itoa(countTransactions(c.PaymentInfo)),
			InitgPty: newParty(c.Header.InitiatingParty),
		},
	}
	for _, info := range c.PaymentInfo {
		pmt := pain001PmtInf{
			PmtInfID: info.PaymentInfoID,
			PmtMtd:   info.PaymentMethod,
			Dbtr:     newParty(info.DebtorName),
			DbtrAcct: newAccount(info.DebtorAccount),
			DbtrAgt:  newAgent(info.DebtorAgent),
		}
		if pmt.PmtMtd == "" {
			pmt.PmtMtd = "TRF"
		}
		for _, tx := range info.Transactions {
			pmt.CdtTrfTxInf = append(pmt.CdtTrfTxInf, pain001Tx{
				PmtID:    xmlPaymentID{EndToEndID: tx.EndToEndID},
				Amt:      pain001Amt{InstdAmt: xmlAmount{Currency: tx.Currency, Value: tx.Amount}},
				CdtrAgt:  newAgent(tx.CreditorAgent),
				Cdtr:     newParty(tx.CreditorName),
				CdtrAcct: newAccount(tx.CreditorAccount),
				RmtInf:   newRemittance(tx.RemittanceInfo),
			})
		}
		body.PmtInf = append(body.PmtInf, pmt)
	}

	return marshalDocument(pain001Document{
		XMLName:          xml.Name{Local: "Document"},
		Xmlns:            Pain001.Namespace(),
		CstmrCdtTrfInitn: body,
	})
}

// PaymentInstructionInfo contains payment instruction details.
type PaymentInstructionInfo struct {
	PaymentInfoID string
	PaymentMethod string // "TRF" for credit transfer
	DebtorName    string
	DebtorAccount string
	DebtorAgent   string // BIC
	Transactions  []CreditTransferTransaction
}

// CreditTransferTransaction contains individual transaction details.
type CreditTransferTransaction struct {
	EndToEndID      string
	Amount          string // decimal string
	Currency        string
	CreditorName    string
	CreditorAccount string
	CreditorAgent   string // BIC
	RemittanceInfo  string
}

type pain001Document struct {
	XMLName          xml.Name    `xml:"Document"`
	Xmlns            string      `xml:"xmlns,attr"`
	CstmrCdtTrfInitn pain001Body `xml:"CstmrCdtTrfInitn"`
}

type pain001Body struct {
	GrpHdr xmlGroupHeader  `xml:"GrpHdr"`
	PmtInf []pain001PmtInf `xml:"PmtInf"`
}

type pain001PmtInf struct {
	PmtInfID    string      `xml:"PmtInfId"`
	PmtMtd      string      `xml:"PmtMtd"`
	Dbtr        *xmlParty   `xml:"Dbtr,omitempty"`
	DbtrAcct    *xmlAccount `xml:"DbtrAcct,omitempty"`
	DbtrAgt     *xmlAgent   `xml:"DbtrAgt,omitempty"`
	CdtTrfTxInf []pain001Tx `xml:"CdtTrfTxInf"`
}

type pain001Amt struct {
	InstdAmt xmlAmount `xml:"InstdAmt"`
}

type pain001Tx struct {
	PmtID    xmlPaymentID   `xml:"PmtId"`
	Amt      pain001Amt     `xml:"Amt"`
	CdtrAgt  *xmlAgent      `xml:"CdtrAgt,omitempty"`
	Cdtr     *xmlParty      `xml:"Cdtr,omitempty"`
	CdtrAcct *xmlAccount    `xml:"CdtrAcct,omitempty"`
	RmtInf   *xmlRemittance `xml:"RmtInf,omitempty"`
}

func newRemittance(text string) *xmlRemittance {
	if text == "" {
		return nil
	}
	return &xmlRemittance{Unstructured: text}
}

func countTransactions(infos []PaymentInstructionInfo) int {
	count := 0
	for _, info := range infos {
		count += len(info.Transactions)
	}
	return count
}
