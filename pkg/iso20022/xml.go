package iso20022

import "encoding/xml"

// Element structs shared by the builders and the parser. Tags carry no
// namespace so documents of any schema version decode.

type xmlAmount struct {
	Currency string `xml:"Ccy,attr"`
	Value    string `xml:",chardata"`
}

type xmlParty struct {
	Name string `xml:"Nm,omitempty"`
}

type xmlOtherID struct {
	ID string `xml:"Id"`
}

type xmlAccountID struct {
	IBAN  string      `xml:"IBAN,omitempty"`
	Other *xmlOtherID `xml:"Othr,omitempty"`
}

type xmlAccount struct {
	ID xmlAccountID `xml:"Id"`
}

// Older schema versions name the agent identifier BIC instead of BICFI.
type xmlFinInstnID struct {
	BICFI string `xml:"BICFI,omitempty"`
	BIC   string `xml:"BIC,omitempty"`
}

type xmlAgent struct {
	FinInstnID xmlFinInstnID `xml:"FinInstnId"`
}

type xmlPaymentID struct {
	InstrID    string `xml:"InstrId,omitempty"`
	EndToEndID string `xml:"EndToEndId"`
	TxID       string `xml:"TxId,omitempty"`
}

type xmlRemittance struct {
	Unstructured string `xml:"Ustrd,omitempty"`
}

type xmlGroupHeader struct {
	MsgID    string    `xml:"MsgId"`
	CreDtTm  string    `xml:"CreDtTm"`
	NbOfTxs  string    `xml:"NbOfTxs"`
	InitgPty *xmlParty `xml:"InitgPty,omitempty"`
	SttlmInf *xmlSttlm `xml:"SttlmInf,omitempty"`
}

type xmlSttlm struct {
	SttlmMtd string `xml:"SttlmMtd"`
}

func newAccount(id string) *xmlAccount {
	if id == "" {
		return nil
	}
	return &xmlAccount{ID: xmlAccountID{IBAN: id}}
}

func newAgent(bic string) *xmlAgent {
	if bic == "" {
		return nil
	}
	return &xmlAgent{FinInstnID: xmlFinInstnID{BICFI: bic}}
}

func newParty(name string) *xmlParty {
	if name == "" {
		return nil
	}
	return &xmlParty{Name: name}
}

func marshalDocument(doc interface{}) ([]byte, error) {
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
